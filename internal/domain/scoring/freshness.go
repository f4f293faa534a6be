// Package scoring implements the CCD scoring engine: pure, deterministic
// functions that turn document metadata and content into freshness, health,
// coverage and drift classifications. Nothing here touches the filesystem or
// the wall clock; callers supply timestamps and content.
package scoring

import (
	"time"

	"github.com/ccdocs/ccd/internal/domain"
)

// ClassifyFreshness classifies a document's age against a threshold.
// A nil lastModified means the document does not exist and yields the
// missing status. Age is measured in fractional hours at the supplied now.
//
//	age <= threshold      -> fresh
//	age <= 2 * threshold  -> stale
//	otherwise             -> outdated
func ClassifyFreshness(lastModified *time.Time, threshold time.Duration, now time.Time) domain.FreshnessReport {
	report := domain.FreshnessReport{
		ThresholdHours: int(threshold.Hours()),
	}

	if lastModified == nil {
		report.Status = domain.StatusMissing
		return report
	}

	ageHours := now.Sub(*lastModified).Hours()
	report.AgeHours = &ageHours
	report.LastModified = lastModified
	report.Fresh = ageHours <= threshold.Hours()

	switch {
	case report.Fresh:
		report.Status = domain.StatusFresh
	case ageHours <= threshold.Hours()*2:
		report.Status = domain.StatusStale
	default:
		report.Status = domain.StatusOutdated
	}

	return report
}
