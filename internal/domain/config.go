package domain

import (
	"fmt"
	"time"
)

// Default configuration values.
const (
	DefaultThresholdHours = 24
	DefaultDocsDir        = "docs"
)

// DefaultSourceExtensions lists the file extensions counted as documentation
// candidates.
var DefaultSourceExtensions = []string{
	".py", ".go", ".js", ".ts", ".java", ".cs", ".cpp", ".c", ".rs",
}

// Config holds project-level configuration loaded from ccd.yaml / .ccd.yaml.
type Config struct {
	FreshnessThresholdHours int      `mapstructure:"freshness_threshold_hours" yaml:"freshness_threshold_hours"`
	SourceExtensions        []string `mapstructure:"source_extensions"         yaml:"source_extensions"`
	ExcludePaths            []string `mapstructure:"exclude_paths"             yaml:"exclude_paths"`
	DocsDir                 string   `mapstructure:"docs_dir"                  yaml:"docs_dir"`
}

// DefaultConfig returns the configuration used when no ccd.yaml exists.
func DefaultConfig() Config {
	return Config{
		FreshnessThresholdHours: DefaultThresholdHours,
		SourceExtensions:        DefaultSourceExtensions,
		DocsDir:                 DefaultDocsDir,
	}
}

// Validate rejects configurations the scoring pipeline cannot work with.
func (c Config) Validate() error {
	if c.FreshnessThresholdHours <= 0 {
		return fmt.Errorf("freshness_threshold_hours must be positive, got %d", c.FreshnessThresholdHours)
	}
	if c.DocsDir == "" {
		return fmt.Errorf("docs_dir must not be empty")
	}
	for _, ext := range c.SourceExtensions {
		if len(ext) < 2 || ext[0] != '.' {
			return fmt.Errorf("source extension %q must start with a dot", ext)
		}
	}
	return nil
}

// FreshnessThreshold returns the configured threshold as a duration.
func (c Config) FreshnessThreshold() time.Duration {
	return time.Duration(c.FreshnessThresholdHours) * time.Hour
}

// IsSourceExtension reports whether ext (including the dot) counts as a
// documentation candidate.
func (c Config) IsSourceExtension(ext string) bool {
	for _, e := range c.SourceExtensions {
		if e == ext {
			return true
		}
	}
	return false
}
