package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ccdocs/ccd/internal/adapters/inbound/cli"
	"github.com/stretchr/testify/require"
)

const mainCard = `---
updated_at: 2026-08-01
file_path: main.go
---

## Overview
Entry point.

## Purpose
Start the app.

## Dependencies
- none

## Key Components
- main
`

const orphanCard = `## Overview
No frontmatter here.
`

// newProject builds a project with one fresh, fully-structured card covering
// main.go and one stale orphan card covering nothing.
func newProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	now := time.Now()

	writeAt(t, root, "main.go", "package main\n", now.Add(-2*time.Hour))
	writeAt(t, root, "util.go", "package main\n", now.Add(-2*time.Hour))
	writeAt(t, root, "docs/context-cards/main.ctx.md", mainCard, now.Add(-1*time.Hour))
	writeAt(t, root, "docs/context-cards/orphan.ctx.md", orphanCard, now.Add(-30*time.Hour))

	return root
}

func writeAt(t *testing.T, root, rel, content string, mtime time.Time) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}
