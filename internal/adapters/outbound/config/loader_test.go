package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ccdocs/ccd/internal/adapters/outbound/config"
	"github.com/ccdocs/ccd/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_NoFileReturnsDefaults(t *testing.T) {
	cfg, err := config.New().Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultConfig().FreshnessThresholdHours, cfg.FreshnessThresholdHours)
	assert.Equal(t, domain.DefaultConfig().DocsDir, cfg.DocsDir)
	assert.Equal(t, domain.DefaultSourceExtensions, cfg.SourceExtensions)
}

func TestLoad_ReadsCCDYaml(t *testing.T) {
	dir := t.TempDir()
	content := "freshness_threshold_hours: 48\nexclude_paths:\n  - generated\ndocs_dir: documentation\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ccd.yaml"), []byte(content), 0o644))

	cfg, err := config.New().Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 48, cfg.FreshnessThresholdHours)
	assert.Equal(t, []string{"generated"}, cfg.ExcludePaths)
	assert.Equal(t, "documentation", cfg.DocsDir)
	// Unset keys keep defaults.
	assert.Equal(t, domain.DefaultSourceExtensions, cfg.SourceExtensions)
}

func TestLoad_HiddenFileFallback(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".ccd.yaml"), []byte("freshness_threshold_hours: 12\n"), 0o644))

	cfg, err := config.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.FreshnessThresholdHours)
}

func TestLoad_PlainFileWinsOverHidden(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ccd.yaml"), []byte("freshness_threshold_hours: 10\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".ccd.yaml"), []byte("freshness_threshold_hours: 99\n"), 0o644))

	cfg, err := config.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.FreshnessThresholdHours)
}

func TestLoad_InvalidValuesRejected(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ccd.yaml"), []byte("freshness_threshold_hours: -1\n"), 0o644))

	_, err := config.New().Load(dir)
	assert.Error(t, err)
}

func TestLoad_MalformedYAMLRejected(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ccd.yaml"), []byte("docs_dir: [unclosed\n"), 0o644))

	_, err := config.New().Load(dir)
	assert.Error(t, err)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("CCD_FRESHNESS_THRESHOLD_HOURS", "72")

	cfg, err := config.New().Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 72, cfg.FreshnessThresholdHours)
}
