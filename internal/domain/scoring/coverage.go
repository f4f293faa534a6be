package scoring

import "github.com/ccdocs/ccd/internal/domain"

// CoveragePercent returns documented/total as a percentage, or 0 when there
// are no candidates at all.
func CoveragePercent(total, documented int) float64 {
	if total == 0 {
		return 0
	}
	return float64(documented) / float64(total) * 100
}

// Clamp limits a score or percentage to [0, 100]. Callers never see negative
// values.
func Clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// The three gates bucket their raw metric into tiered scores. Each gate has
// its own threshold table; they only happen to share the output scores.

// CoverageGate buckets a coverage percentage.
func CoverageGate(pct float64) (int, string) {
	switch {
	case pct >= 90:
		return 100, domain.StatusExcellent
	case pct >= 75:
		return 80, domain.StatusGood
	case pct >= 50:
		return 60, domain.StatusFair
	default:
		return 30, domain.StatusPoor
	}
}

// FreshnessGate buckets the percentage of individually fresh documents.
func FreshnessGate(pct float64) (int, string) {
	switch {
	case pct >= 95:
		return 100, domain.StatusExcellent
	case pct >= 80:
		return 80, domain.StatusGood
	case pct >= 60:
		return 60, domain.StatusFair
	default:
		return 30, domain.StatusPoor
	}
}

// HealthGate buckets the average per-document health score.
func HealthGate(avg float64) (int, string) {
	switch {
	case avg >= 85:
		return 100, domain.StatusExcellent
	case avg >= 70:
		return 80, domain.StatusGood
	case avg >= 50:
		return 60, domain.StatusFair
	default:
		return 30, domain.StatusPoor
	}
}
