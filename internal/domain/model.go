package domain

import "time"

// Freshness and health status values. A missing document is a valid terminal
// state, not an error.
const (
	StatusFresh    = "fresh"
	StatusStale    = "stale"
	StatusOutdated = "outdated"
	StatusMissing  = "missing"

	StatusExcellent = "excellent"
	StatusGood      = "good"
	StatusFair      = "fair"
	StatusPoor      = "poor"
)

// Drift severity values, ordered none < low < medium < high.
const (
	SeverityNone   = "none"
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// Drift classification values.
const (
	DriftMissingFilePath   = "missing_file_path"
	DriftSourceFileMissing = "source_file_missing"
	DriftContextOutdated   = "context_outdated"
)

// FreshnessReport classifies a single document's age against a threshold.
// AgeHours and LastModified are nil for a missing document.
type FreshnessReport struct {
	Path           string     `json:"path,omitempty"`
	Fresh          bool       `json:"fresh"`
	AgeHours       *float64   `json:"age_hours,omitempty"`
	ThresholdHours int        `json:"threshold_hours"`
	Status         string     `json:"status"`
	LastModified   *time.Time `json:"last_modified,omitempty"`
}

// FreshnessSummary aggregates per-document freshness across a project.
type FreshnessSummary struct {
	Reports      []FreshnessReport `json:"reports"`
	FreshCount   int               `json:"fresh_count"`
	TotalCount   int               `json:"total_count"`
	FreshnessPct float64           `json:"freshness_percentage"`
}

// HealthReport holds the structural health score of a single context document.
// Factors are recorded in deduction-application order.
type HealthReport struct {
	Path    string   `json:"path,omitempty"`
	Score   int      `json:"score"`
	Factors []string `json:"factors"`
	Status  string   `json:"status"`
}

// CoverageReport relates documented context cards to candidate source files.
type CoverageReport struct {
	SourceFiles  int      `json:"source_files"`
	ContextCards int      `json:"context_cards"`
	Percentage   float64  `json:"coverage_percentage"`
	Undocumented []string `json:"undocumented,omitempty"`
}

// GateResult is the outcome of a single quality gate. Value carries the raw
// metric (a percentage or an average health score) backing the bucketed Score.
type GateResult struct {
	Name   string  `json:"name"`
	Score  int     `json:"score"`
	Status string  `json:"status"`
	Metric string  `json:"metric"`
	Value  float64 `json:"value"`
}

// GatesReport holds the results of all quality gates for a project.
type GatesReport struct {
	Timestamp       time.Time    `json:"timestamp"`
	ProjectPath     string       `json:"project_dir"`
	OverallScore    float64      `json:"overall_score"`
	Gates           []GateResult `json:"gates"`
	Recommendations []string     `json:"recommendations"`
}

// Gate names.
const (
	GateCoverage  = "coverage"
	GateFreshness = "freshness"
	GateHealth    = "health"
)

// ProjectHealth is the composite health report for a whole project:
// coverage (40%), freshness (30%), module coverage (20%) and context-card
// presence (10%), combined into a single 0-100 score.
type ProjectHealth struct {
	ProjectName       string    `json:"project_name"`
	Score             float64   `json:"health_score"`
	CoveragePct       float64   `json:"coverage_percentage"`
	FreshnessPct      float64   `json:"freshness_percentage"`
	ModuleCoveragePct float64   `json:"module_coverage_percentage"`
	DeclaredModules   int       `json:"total_modules"`
	IndexedModules    int       `json:"indexed_modules"`
	TotalSourceFiles  int       `json:"total_files"`
	TotalContextCards int       `json:"total_context_cards"`
	HasCodemap        bool      `json:"has_codemap"`
	CommitHash        string    `json:"commit_hash,omitempty"`
	Timestamp         time.Time `json:"timestamp"`
	Recommendations   []string  `json:"recommendations"`
}

// HealthEntry is a single point in the persisted project health history.
type HealthEntry struct {
	Timestamp    string  `json:"timestamp"`
	CommitHash   string  `json:"commit_hash,omitempty"`
	Score        float64 `json:"health_score"`
	CoveragePct  float64 `json:"coverage_percentage"`
	FreshnessPct float64 `json:"freshness_percentage"`
}

// DriftFinding describes divergence between one context card and the source
// file it documents.
type DriftFinding struct {
	ContextFile string   `json:"context_file"`
	Type        string   `json:"drift_type"`
	Severity    string   `json:"severity"`
	Details     []string `json:"details,omitempty"`
}

// DriftReport aggregates drift findings across a project's context cards.
type DriftReport struct {
	TotalCards int            `json:"total_files"`
	Drifted    int            `json:"drift_detected"`
	Findings   []DriftFinding `json:"drift_details"`
	Severity   string         `json:"severity"`
}

// ScanResult holds what the project scanner found on disk. Paths are relative
// to RootPath.
type ScanResult struct {
	RootPath       string   `json:"root_path"`
	SourceFiles    []string `json:"source_files"`
	ContextCards   []string `json:"context_cards"`
	IndexedModules []string `json:"indexed_modules"`
	HasCodemap     bool     `json:"has_codemap"`
	Codemap        *Codemap `json:"codemap,omitempty"`
	HasConfig      bool     `json:"has_config"`
}

// DeclaredModules returns the number of modules the codemap declares.
func (s *ScanResult) DeclaredModules() int {
	if s == nil || s.Codemap == nil {
		return 0
	}
	return len(s.Codemap.Modules)
}

// Codemap is the repository-level context map stored at docs/CODEMAP.yaml.
type Codemap struct {
	Project     string          `yaml:"project" json:"project"`
	Description string          `yaml:"description,omitempty" json:"description,omitempty"`
	Modules     []CodemapModule `yaml:"modules" json:"modules"`
}

// CodemapModule declares one module within the codemap.
type CodemapModule struct {
	Name        string   `yaml:"name" json:"name"`
	Path        string   `yaml:"path" json:"path"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Files       []string `yaml:"files,omitempty" json:"files,omitempty"`
}

// Heading is a markdown heading extracted from a context card.
type Heading struct {
	Level int    `json:"level"`
	Title string `json:"title"`
	Line  int    `json:"line"`
}
