package tui

import (
	"fmt"
	"strings"

	"github.com/ccdocs/ccd/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// maxListed caps long per-file listings so terminal output stays readable.
const maxListed = 15

// RenderFreshness formats per-document freshness with an aggregate line.
func RenderFreshness(s *domain.FreshnessSummary) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Context Freshness") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	if s.TotalCount == 0 {
		b.WriteString("  " + dimStyle.Render("No context cards found.") + "\n")
		return b.String()
	}

	for _, r := range s.Reports {
		icon := failStyle.Render("●")
		if r.Fresh {
			icon = passStyle.Render("●")
		} else if r.Status == domain.StatusStale {
			icon = warnStyle.Render("●")
		}

		age := "—"
		if r.AgeHours != nil {
			age = fmt.Sprintf("%.1fh", *r.AgeHours)
		}

		status := lipgloss.NewStyle().Foreground(statusColor(r.Status)).Render(r.Status)
		fmt.Fprintf(&b, "  %s %s  %s %s\n",
			icon, dimStyle.Render(padRight(r.Path, 44)), status, faintStyle.Render(age))
	}

	b.WriteString("\n")
	pctStyled := lipgloss.NewStyle().Bold(true).Foreground(scoreColor(s.FreshnessPct)).Render(fmt.Sprintf("%.1f%%", s.FreshnessPct))
	fmt.Fprintf(&b, "  %s %d/%d fresh  %s\n",
		titleStyle.Render("Summary:"), s.FreshCount, s.TotalCount, pctStyled)

	return b.String()
}

// RenderDocHealth formats a single document's structural health report.
func RenderDocHealth(r *domain.HealthReport) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Document Health") + "\n")
	if r.Path != "" {
		b.WriteString("  " + dimStyle.Render(r.Path) + "\n")
	}
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	scoreStyled := lipgloss.NewStyle().Bold(true).Foreground(scoreColor(float64(r.Score))).Render(fmt.Sprintf("%d/100", r.Score))
	status := lipgloss.NewStyle().Foreground(statusColor(r.Status)).Render(r.Status)
	fmt.Fprintf(&b, "  %s %s  %s\n\n", titleStyle.Render("Score:"), scoreStyled, status)

	for _, factor := range r.Factors {
		icon := failStyle.Render("−")
		if factor == "has_metadata" {
			icon = passStyle.Render("+")
		}
		fmt.Fprintf(&b, "    %s %s\n", icon, dimStyle.Render(factor))
	}
	if len(r.Factors) == 0 {
		b.WriteString("    " + passStyle.Render("No deductions.") + "\n")
	}

	return b.String()
}

// RenderCoverage formats the coverage report, listing undocumented files up
// to a cap.
func RenderCoverage(r *domain.CoverageReport) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Context Coverage") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	pctStyled := lipgloss.NewStyle().Bold(true).Foreground(scoreColor(r.Percentage)).Render(fmt.Sprintf("%.1f%%", r.Percentage))
	fmt.Fprintf(&b, "  %s %s  %s\n", coloredBar(r.Percentage, 20), pctStyled,
		dimStyle.Render(fmt.Sprintf("%d cards / %d source files", r.ContextCards, r.SourceFiles)))

	if len(r.Undocumented) > 0 {
		b.WriteString("\n")
		b.WriteString("  " + titleStyle.Render("Undocumented") + "\n")
		for i, f := range r.Undocumented {
			if i == maxListed {
				fmt.Fprintf(&b, "    %s\n",
					faintStyle.Render(fmt.Sprintf("… and %d more", len(r.Undocumented)-maxListed)))
				break
			}
			fmt.Fprintf(&b, "    %s %s\n", warnStyle.Render("·"), dimStyle.Render(f))
		}
	}

	return b.String()
}

// RenderDrift formats drift findings grouped under an aggregate severity.
func RenderDrift(r *domain.DriftReport) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Context Drift") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	if r.Drifted == 0 {
		b.WriteString("  " + passStyle.Render("No drift detected.") + " " +
			dimStyle.Render(fmt.Sprintf("%d cards checked", r.TotalCards)) + "\n")
		return b.String()
	}

	fmt.Fprintf(&b, "  %s %d/%d cards drifted  severity: %s\n\n",
		titleStyle.Render("Summary:"), r.Drifted, r.TotalCards, severityTag(r.Severity))

	for _, f := range r.Findings {
		fmt.Fprintf(&b, "    %s %s\n", severityTag(f.Severity), dimStyle.Render(f.ContextFile))
		fmt.Fprintf(&b, "         %s\n", faintStyle.Render(f.Type))
		for _, d := range f.Details {
			fmt.Fprintf(&b, "         %s\n", faintStyle.Render(d))
		}
	}

	return b.String()
}

// RenderGates formats quality gate results with the overall score.
func RenderGates(g *domain.GatesReport) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Quality Gates") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for _, gate := range g.Gates {
		scoreStyled := lipgloss.NewStyle().Bold(true).Foreground(scoreColor(float64(gate.Score))).Render(fmt.Sprintf("%3d", gate.Score))
		status := lipgloss.NewStyle().Foreground(statusColor(gate.Status)).Render(gate.Status)
		fmt.Fprintf(&b, "  %s %s  %s %s  %s\n",
			titleStyle.Render(padRight(gate.Name, 12)),
			coloredBar(float64(gate.Score), 20),
			scoreStyled, status,
			faintStyle.Render(fmt.Sprintf("%s %.1f", gate.Metric, gate.Value)))
	}

	b.WriteString("\n")
	overall := lipgloss.NewStyle().Bold(true).Foreground(scoreColor(g.OverallScore)).Render(fmt.Sprintf("%.1f/100", g.OverallScore))
	fmt.Fprintf(&b, "  %s %s\n", titleStyle.Render("Overall:"), overall)

	if len(g.Recommendations) > 0 {
		b.WriteString("\n")
		for _, rec := range g.Recommendations {
			fmt.Fprintf(&b, "    %s %s\n", warnStyle.Render("→"), dimStyle.Render(rec))
		}
	}

	return b.String()
}
