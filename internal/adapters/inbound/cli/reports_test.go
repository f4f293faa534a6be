package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFreshnessCommand(t *testing.T) {
	root := newProject(t)

	out, err := runCommand(t, "freshness", root)
	require.NoError(t, err)
	assert.Contains(t, out, "main.ctx.md")
	assert.Contains(t, out, "orphan.ctx.md")
	assert.Contains(t, out, "1/2 fresh")
}

func TestFreshnessCommand_JSON(t *testing.T) {
	root := newProject(t)

	out, err := runCommand(t, "freshness", root, "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"freshness_percentage"`)
	assert.Contains(t, out, `"stale"`)
}

func TestFreshnessCommand_ThresholdOverride(t *testing.T) {
	root := newProject(t)

	out, err := runCommand(t, "freshness", root, "--threshold", "48")
	require.NoError(t, err)
	assert.Contains(t, out, "2/2 fresh")
}

func TestFreshnessCommand_SingleFile(t *testing.T) {
	root := newProject(t)

	out, err := runCommand(t, "freshness", root, "--file", "docs/context-cards/orphan.ctx.md", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"stale"`)
	assert.Contains(t, out, `"age_hours"`)
}

func TestCoverageCommand(t *testing.T) {
	root := newProject(t)

	out, err := runCommand(t, "coverage", root)
	require.NoError(t, err)
	assert.Contains(t, out, "100.0%")
	assert.Contains(t, out, "Undocumented")
	assert.Contains(t, out, "util.go")
}

func TestCoverageCommand_MinFails(t *testing.T) {
	root := newProject(t)

	_, err := runCommand(t, "coverage", root, "--min", "101")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "below minimum")
}

func TestDriftCommand(t *testing.T) {
	root := newProject(t)

	out, err := runCommand(t, "drift", root)
	require.NoError(t, err)
	assert.Contains(t, out, "1/2 cards drifted")
	assert.Contains(t, out, "missing_file_path")
}

func TestDriftCommand_JSON(t *testing.T) {
	root := newProject(t)

	out, err := runCommand(t, "drift", root, "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"drift_detected"`)
	assert.Contains(t, out, `"missing_file_path"`)
}

func TestDriftCommand_FailOn(t *testing.T) {
	root := newProject(t)

	_, err := runCommand(t, "drift", root, "--fail-on", "low")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fail threshold")
}

func TestDriftCommand_FailOnNotReached(t *testing.T) {
	root := newProject(t)

	_, err := runCommand(t, "drift", root, "--fail-on", "medium")
	assert.NoError(t, err)
}

func TestDriftCommand_OutputFile(t *testing.T) {
	root := newProject(t)
	reportPath := filepath.Join(t.TempDir(), "drift.json")

	_, err := runCommand(t, "drift", root, "--output", reportPath)
	require.NoError(t, err)

	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"drift_detected"`)
	assert.Contains(t, string(data), `"missing_file_path"`)
}

func TestGatesCommand(t *testing.T) {
	root := newProject(t)

	out, err := runCommand(t, "gates", root)
	require.NoError(t, err)
	assert.Contains(t, out, "Quality Gates")
	assert.Contains(t, out, "coverage")
	assert.Contains(t, out, "freshness")
	assert.Contains(t, out, "health")
	assert.Contains(t, out, "Overall:")
}

func TestGatesCommand_JSON(t *testing.T) {
	root := newProject(t)

	out, err := runCommand(t, "gates", root, "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"overall_score"`)
	assert.Contains(t, out, `"gates"`)
}

func TestGatesCommand_MinFails(t *testing.T) {
	root := newProject(t)

	_, err := runCommand(t, "gates", root, "--min", "100")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "below minimum")
}

func TestGatesCommand_OutputFile(t *testing.T) {
	root := newProject(t)
	reportPath := filepath.Join(t.TempDir(), "gates.json")

	_, err := runCommand(t, "gates", root, "--output", reportPath)
	require.NoError(t, err)

	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"overall_score"`)
	assert.Contains(t, string(data), `"gates"`)
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "ccd dev")
}
