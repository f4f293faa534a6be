package domain

import "time"

// DocSource is the file-access collaborator the scoring pipeline reads
// documents through. Scoring treats it as a black-box lookup of
// (existence, content, timestamp, size) triples.
type DocSource interface {
	Exists(path string) bool
	ReadText(path string) (string, error)
	LastModified(path string) (time.Time, error)
	SizeBytes(path string) (int64, error)
}

// ProjectScanner walks a project directory and returns the CCD artifacts and
// source files it contains.
type ProjectScanner interface {
	Scan(projectPath string, cfg Config) (*ScanResult, error)
}

// ConfigLoader loads project configuration (ccd.yaml / .ccd.yaml).
type ConfigLoader interface {
	Load(projectPath string) (Config, error)
}

// HistoryStore persists project health entries over time.
type HistoryStore interface {
	Save(projectPath string, entry HealthEntry) error
	Load(projectPath string) ([]HealthEntry, error)
}

// GitInfo provides repository metadata attached to reports.
type GitInfo interface {
	IsGitRepo(projectPath string) bool
	CommitHash(projectPath string) (string, error)
}

// MarkdownParser extracts structured pieces from context card content.
type MarkdownParser interface {
	// Frontmatter returns the parsed YAML frontmatter and whether a
	// frontmatter block was present at all.
	Frontmatter(content []byte) (map[string]any, bool)
	// Headings returns the document outline.
	Headings(content []byte) []Heading
}

// Clock supplies wall-clock time. Injected so scoring stays deterministic
// under test.
type Clock func() time.Time
