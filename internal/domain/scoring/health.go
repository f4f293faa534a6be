package scoring

import (
	"strings"

	"github.com/ccdocs/ccd/internal/domain"
)

// RequiredSections are the headings every context card must carry. Matching
// is an exact, case-sensitive substring check on the "## <name>" form.
var RequiredSections = []string{
	"Overview",
	"Purpose",
	"Dependencies",
	"Key Components",
}

// Health deduction weights.
const (
	missingSectionPenalty  = 15
	fileTooLargePenalty    = 10
	fileLargeWarnPenalty   = 5
	stalePenalty           = 20
	missingMetadataPenalty = 10
	noFrontmatterPenalty   = 15

	largeFileLines    = 200
	largeWarningLines = 160
)

// Factor tags recorded by ScoreDocument.
const (
	FactorFileMissing      = "file_missing"
	FactorFileTooLarge     = "file_too_large"
	FactorFileLargeWarning = "file_large_warning"
	FactorContextStale     = "context_stale"
	FactorHasMetadata      = "has_metadata"
	FactorMissingMetadata  = "missing_metadata"
	FactorNoFrontmatter    = "no_frontmatter"
)

// MissingDocument is the health report for a document that does not exist:
// score zero, terminal missing status.
func MissingDocument() domain.HealthReport {
	return domain.HealthReport{
		Score:   0,
		Factors: []string{FactorFileMissing},
		Status:  domain.StatusMissing,
	}
}

// ScoreDocument computes a 0-100 structural health score for a context card.
// It starts at 100 and applies fixed deductions for missing required
// sections, oversized content, staleness and incomplete metadata. Factors are
// appended in deduction-application order. The score never goes below zero.
func ScoreDocument(content string, fresh bool) domain.HealthReport {
	score := 100
	factors := []string{}

	for _, section := range RequiredSections {
		if !strings.Contains(content, "## "+section) {
			factors = append(factors, missingSectionFactor(section))
			score -= missingSectionPenalty
		}
	}

	// Size deductions are mutually exclusive: the larger threshold wins.
	lines := len(strings.Split(content, "\n"))
	switch {
	case lines > largeFileLines:
		factors = append(factors, FactorFileTooLarge)
		score -= fileTooLargePenalty
	case lines > largeWarningLines:
		factors = append(factors, FactorFileLargeWarning)
		score -= fileLargeWarnPenalty
	}

	if !fresh {
		factors = append(factors, FactorContextStale)
		score -= stalePenalty
	}

	// Exactly one metadata factor is recorded.
	switch {
	case !strings.Contains(content, "---"):
		factors = append(factors, FactorNoFrontmatter)
		score -= noFrontmatterPenalty
	case strings.Contains(content, "updated_at:"):
		factors = append(factors, FactorHasMetadata)
	default:
		factors = append(factors, FactorMissingMetadata)
		score -= missingMetadataPenalty
	}

	if score < 0 {
		score = 0
	}

	return domain.HealthReport{
		Score:   score,
		Factors: factors,
		Status:  HealthStatus(score),
	}
}

// HealthStatus buckets a document health score.
func HealthStatus(score int) string {
	switch {
	case score >= 85:
		return domain.StatusExcellent
	case score >= 70:
		return domain.StatusGood
	case score >= 50:
		return domain.StatusFair
	default:
		return domain.StatusPoor
	}
}

func missingSectionFactor(section string) string {
	name := strings.ToLower(strings.ReplaceAll(section, " ", "_"))
	return "missing_section_" + name
}
