package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCommand_DefaultTUI(t *testing.T) {
	root := newProject(t)

	out, err := runCommand(t, "health", root)
	require.NoError(t, err)
	assert.Contains(t, out, "ccd")
	assert.Contains(t, out, "Coverage")
	assert.Contains(t, out, "Freshness")
}

func TestHealthCommand_JSON(t *testing.T) {
	root := newProject(t)

	out, err := runCommand(t, "health", root, "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"health_score"`)
	assert.Contains(t, out, `"coverage_percentage"`)
	assert.Contains(t, out, `"recommendations"`)
}

func TestHealthCommand_Detailed(t *testing.T) {
	root := newProject(t)

	out, err := runCommand(t, "health", root, "--detailed")
	require.NoError(t, err)
	assert.Contains(t, out, "Score breakdown")
}

func TestHealthCommand_CIFails(t *testing.T) {
	root := newProject(t)

	_, err := runCommand(t, "health", root, "--ci", "--min", "100")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "below minimum")
}

func TestHealthCommand_CIPasses(t *testing.T) {
	root := newProject(t)

	_, err := runCommand(t, "health", root, "--ci", "--min", "1")
	assert.NoError(t, err)
}

func TestHealthCommand_History(t *testing.T) {
	root := newProject(t)

	// Two runs, then the history view shows both.
	_, err := runCommand(t, "health", root)
	require.NoError(t, err)
	_, err = runCommand(t, "health", root)
	require.NoError(t, err)

	out, err := runCommand(t, "health", root, "--history")
	require.NoError(t, err)
	assert.Contains(t, out, "Health History")
}

func TestHealthCommand_HistoryEmpty(t *testing.T) {
	out, err := runCommand(t, "health", t.TempDir(), "--history")
	require.NoError(t, err)
	assert.Contains(t, out, "No health history")
}

func TestDocHealthCommand(t *testing.T) {
	root := newProject(t)

	out, err := runCommand(t, "doc-health", "docs/context-cards/main.ctx.md", "--path", root)
	require.NoError(t, err)
	assert.Contains(t, out, "100/100")
	assert.Contains(t, out, "excellent")
}

func TestDocHealthCommand_JSON(t *testing.T) {
	root := newProject(t)

	out, err := runCommand(t, "doc-health", "docs/context-cards/orphan.ctx.md", "--path", root, "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"score"`)
	assert.Contains(t, out, "no_frontmatter")
	assert.Contains(t, out, "context_stale")
}

func TestDocHealthCommand_MissingFile(t *testing.T) {
	root := newProject(t)

	out, err := runCommand(t, "doc-health", "docs/context-cards/nope.ctx.md", "--path", root, "--json")
	require.NoError(t, err)
	assert.Contains(t, out, "file_missing")
	assert.Contains(t, out, `"missing"`)
}
