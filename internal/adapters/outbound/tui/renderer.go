package tui

import (
	"fmt"
	"strings"

	"github.com/ccdocs/ccd/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// ── warm terminal palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	lime    = lipgloss.Color("#A3E635")
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	orange  = lipgloss.Color("#FB923C")
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	infoStyle     = lipgloss.NewStyle().Foreground(info)
	highTagStyle  = lipgloss.NewStyle().Foreground(danger).Bold(true)
	medTagStyle   = lipgloss.NewStyle().Foreground(warning).Bold(true)
	lowTagStyle   = lipgloss.NewStyle().Foreground(info)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderProjectHealth formats the composite health report. With detailed set,
// the weighted component breakdown is included.
func RenderProjectHealth(h *domain.ProjectHealth, detailed bool) string {
	var b strings.Builder

	title := headerStyle.Render("ccd")
	subtitle := dimStyle.Render("Context Documentation Health")
	scoreStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(scoreColor(h.Score)).
		Render(fmt.Sprintf("%.1f / 100", h.Score))

	name := h.ProjectName
	if name != "" {
		subtitle = dimStyle.Render(name)
	}

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + scoreStyled))
	b.WriteString("\n\n")

	renderMetric(&b, "Coverage", h.CoveragePct)
	renderMetric(&b, "Freshness", h.FreshnessPct)
	renderMetric(&b, "Module coverage", h.ModuleCoveragePct)

	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s %s\n",
		dimStyle.Render(padRight("Source files", 20)),
		titleStyle.Render(fmt.Sprintf("%d", h.TotalSourceFiles)))
	fmt.Fprintf(&b, "  %s %s\n",
		dimStyle.Render(padRight("Context cards", 20)),
		titleStyle.Render(fmt.Sprintf("%d", h.TotalContextCards)))
	fmt.Fprintf(&b, "  %s %s\n",
		dimStyle.Render(padRight("Modules indexed", 20)),
		titleStyle.Render(fmt.Sprintf("%d/%d", h.IndexedModules, h.DeclaredModules)))

	codemap := failStyle.Render("missing")
	if h.HasCodemap {
		codemap = passStyle.Render("present")
	}
	fmt.Fprintf(&b, "  %s %s\n", dimStyle.Render(padRight("Codemap", 20)), codemap)

	if h.CommitHash != "" {
		fmt.Fprintf(&b, "  %s %s\n",
			dimStyle.Render(padRight("Commit", 20)),
			faintStyle.Render(h.CommitHash))
	}

	if detailed {
		b.WriteString("\n")
		b.WriteString("  " + titleStyle.Render("Score breakdown") + "\n")
		renderContribution(&b, "Coverage", h.CoveragePct, 0.4)
		renderContribution(&b, "Freshness", h.FreshnessPct, 0.3)
		renderContribution(&b, "Module coverage", h.ModuleCoveragePct, 0.2)
		presence := 0.0
		if h.TotalContextCards > 0 {
			presence = 10.0
		}
		fmt.Fprintf(&b, "    %s %s\n",
			dimStyle.Render(padRight("Card presence", 20)),
			titleStyle.Render(fmt.Sprintf("%+.1f", presence)))
	}

	if len(h.Recommendations) > 0 {
		b.WriteString("\n")
		b.WriteString("  " + separatorLine + "\n\n")
		b.WriteString("  " + titleStyle.Render("Recommendations") + "\n")
		for _, rec := range h.Recommendations {
			fmt.Fprintf(&b, "    %s %s\n", warnStyle.Render("→"), dimStyle.Render(rec))
		}
	}

	b.WriteString("\n")
	return b.String()
}

func renderMetric(b *strings.Builder, name string, pct float64) {
	scoreText := lipgloss.NewStyle().
		Bold(true).
		Foreground(scoreColor(pct)).
		Render(fmt.Sprintf("%.1f%%", pct))
	fmt.Fprintf(b, "  %s %s  %s\n",
		titleStyle.Render(padRight(name, 20)), coloredBar(pct, 20), scoreText)
}

func renderContribution(b *strings.Builder, name string, pct, weight float64) {
	clamped := max(0.0, min(pct, 100.0))
	fmt.Fprintf(b, "    %s %s %s\n",
		dimStyle.Render(padRight(name, 20)),
		titleStyle.Render(fmt.Sprintf("%+.1f", clamped*weight)),
		faintStyle.Render(fmt.Sprintf("(%.1f%% × %.0f%%)", pct, weight*100)))
}

// RenderHistory formats the persisted health history, newest last, with
// deltas between consecutive runs.
func RenderHistory(entries []domain.HealthEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No health history found. Run `ccd health` to record an entry.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Health History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for i, e := range entries {
		hash := e.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "·······"
		}

		day := e.Timestamp
		if len(day) > 10 {
			day = day[:10]
		}

		scoreStyled := lipgloss.NewStyle().
			Foreground(scoreColor(e.Score)).
			Render(fmt.Sprintf("%.1f/100", e.Score))

		line := fmt.Sprintf("  %s  %s  %s",
			dimStyle.Render(day), faintStyle.Render(hash), scoreStyled)

		if i > 0 {
			diff := e.Score - entries[i-1].Score
			if diff > 0 {
				line += "  " + passStyle.Render(fmt.Sprintf("↑%.1f", diff))
			} else if diff < 0 {
				line += "  " + failStyle.Render(fmt.Sprintf("↓%.1f", -diff))
			}
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func coloredBar(pct float64, width int) string {
	filled := max(0, min(int(pct)*width/100, width))
	empty := width - filled

	color := scoreColor(pct)
	filledStr := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	emptyStr := lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("░", empty))
	return filledStr + emptyStr
}

func scoreColor(score float64) lipgloss.Color {
	switch {
	case score >= 80:
		return success
	case score >= 60:
		return lime
	case score >= 40:
		return warning
	default:
		return danger
	}
}

func statusColor(status string) lipgloss.Color {
	switch status {
	case domain.StatusFresh, domain.StatusExcellent:
		return success
	case domain.StatusGood:
		return lime
	case domain.StatusStale, domain.StatusFair:
		return warning
	case domain.StatusOutdated, domain.StatusPoor:
		return orange
	default: // missing
		return danger
	}
}

func severityTag(severity string) string {
	switch severity {
	case domain.SeverityHigh:
		return highTagStyle.Render("high")
	case domain.SeverityMedium:
		return medTagStyle.Render("med ")
	case domain.SeverityLow:
		return lowTagStyle.Render("low ")
	default:
		return infoStyle.Render("none")
	}
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
