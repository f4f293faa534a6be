// Package config loads project configuration from ccd.yaml / .ccd.yaml via
// viper, with defaults applied and CCD_* environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ccdocs/ccd/internal/domain"
	"github.com/spf13/viper"
)

// ConfigFileNames are checked in order; the first one found wins.
var ConfigFileNames = []string{"ccd.yaml", ".ccd.yaml"}

// Loader implements domain.ConfigLoader.
type Loader struct{}

func New() *Loader { return &Loader{} }

// Load reads the project's ccd.yaml. A missing file yields DefaultConfig;
// a malformed or invalid file is an error.
func (l *Loader) Load(projectPath string) (domain.Config, error) {
	v := viper.New()

	defaults := domain.DefaultConfig()
	v.SetDefault("freshness_threshold_hours", defaults.FreshnessThresholdHours)
	v.SetDefault("source_extensions", defaults.SourceExtensions)
	v.SetDefault("exclude_paths", defaults.ExcludePaths)
	v.SetDefault("docs_dir", defaults.DocsDir)

	v.SetEnvPrefix("CCD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path, ok := findConfigFile(projectPath); ok {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return domain.Config{}, fmt.Errorf("reading %s: %w", filepath.Base(path), err)
		}
	}

	var cfg domain.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func findConfigFile(projectPath string) (string, bool) {
	for _, name := range ConfigFileNames {
		path := filepath.Join(projectPath, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}
