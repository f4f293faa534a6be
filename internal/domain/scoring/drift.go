package scoring

import (
	"fmt"
	"time"

	"github.com/ccdocs/ccd/internal/domain"
)

// Drift severity gap thresholds, in hours.
const (
	driftHighGapHours   = 168 // one week
	driftMediumGapHours = 72  // three days
)

// CardState is everything the drift detector needs to know about one context
// card and the source file it declares.
type CardState struct {
	ContextFile  string
	DeclaredPath string // source path from frontmatter, "" if absent
	SourceExists bool
	SourceMod    time.Time
	CardMod      time.Time
}

// DetectDrift classifies the drift of one context card, or returns nil when
// the card is in sync with its source. Missing inputs map to terminal
// classifications, never errors.
func DetectDrift(state CardState) *domain.DriftFinding {
	if state.DeclaredPath == "" {
		return &domain.DriftFinding{
			ContextFile: state.ContextFile,
			Type:        domain.DriftMissingFilePath,
			Severity:    domain.SeverityHigh,
		}
	}

	if !state.SourceExists {
		return &domain.DriftFinding{
			ContextFile: state.ContextFile,
			Type:        domain.DriftSourceFileMissing,
			Severity:    domain.SeverityHigh,
			Details:     []string{fmt.Sprintf("Source file not found: %s", state.DeclaredPath)},
		}
	}

	if !state.SourceMod.After(state.CardMod) {
		return nil
	}

	gapHours := state.SourceMod.Sub(state.CardMod).Hours()
	severity := domain.SeverityLow
	switch {
	case gapHours > driftHighGapHours:
		severity = domain.SeverityHigh
	case gapHours > driftMediumGapHours:
		severity = domain.SeverityMedium
	}

	return &domain.DriftFinding{
		ContextFile: state.ContextFile,
		Type:        domain.DriftContextOutdated,
		Severity:    severity,
		Details:     []string{fmt.Sprintf("Context outdated by %.1f hours", gapHours)},
	}
}

// AggregateDriftSeverity buckets the number of drifted cards into an overall
// severity: 0 -> none, 1-3 -> low, 4-10 -> medium, >10 -> high.
func AggregateDriftSeverity(drifted int) string {
	switch {
	case drifted == 0:
		return domain.SeverityNone
	case drifted <= 3:
		return domain.SeverityLow
	case drifted <= 10:
		return domain.SeverityMedium
	default:
		return domain.SeverityHigh
	}
}
