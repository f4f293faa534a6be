package scoring

import (
	"fmt"
	"math"
)

// Composite health score weights.
const (
	coverageWeight       = 0.4
	freshnessWeight      = 0.3
	moduleCoverageWeight = 0.2
	docPresencePoints    = 10.0
)

// ProjectHealthScore combines the project sub-scores into the single health
// number surfaced for a project. Each sub-score is clamped to [0,100] before
// weighting; the result is rounded to one decimal place.
func ProjectHealthScore(coveragePct, freshnessPct, moduleCoveragePct float64, hasCards bool) float64 {
	score := Clamp(coveragePct)*coverageWeight +
		Clamp(freshnessPct)*freshnessWeight +
		Clamp(moduleCoveragePct)*moduleCoverageWeight
	if hasCards {
		score += docPresencePoints
	}
	return math.Round(score*10) / 10
}

// ModuleCoverage returns the percentage of declared modules that have an
// index file, or 0 when the codemap declares no modules.
func ModuleCoverage(indexed, declared int) float64 {
	if declared == 0 {
		return 0
	}
	return Clamp(float64(indexed) / float64(declared) * 100)
}

// ProjectRecommendations suggests the highest-leverage improvements for a
// project health report.
func ProjectRecommendations(coveragePct, freshnessPct float64, declaredModules int, hasCodemap bool) []string {
	var recs []string
	if coveragePct < 80 {
		recs = append(recs, "Increase context coverage by adding context cards for undocumented files")
	}
	if freshnessPct < 90 {
		recs = append(recs, "Update stale context documentation")
	}
	if declaredModules == 0 {
		recs = append(recs, "Add module indexes for better organization")
	}
	if !hasCodemap {
		recs = append(recs, "Create docs/CODEMAP.yaml for repository-level context")
	}
	return recs
}

// GateRecommendations suggests fixes for failing quality gates. Gates scoring
// 80 or above are considered passing.
func GateRecommendations(coveragePct, freshnessPct, avgHealth float64) []string {
	var recs []string
	if coverageScore, _ := CoverageGate(coveragePct); coverageScore < 80 && coveragePct < 75 {
		recs = append(recs, fmt.Sprintf("Increase context coverage from %.1f%% to at least 75%%", coveragePct))
	}
	if freshnessScore, _ := FreshnessGate(freshnessPct); freshnessScore < 80 && freshnessPct < 80 {
		recs = append(recs, fmt.Sprintf("Update stale context files to improve freshness from %.1f%% to at least 80%%", freshnessPct))
	}
	if healthScore, _ := HealthGate(avgHealth); healthScore < 80 && avgHealth < 70 {
		recs = append(recs, fmt.Sprintf("Improve context health from %.1f to at least 70", avgHealth))
	}
	if len(recs) == 0 {
		recs = append(recs, "All quality gates are passing. Keep up the good work!")
	}
	return recs
}
