package application_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fixture builds a small project with three context cards in known freshness
// states, a codemap declaring two modules and one indexed module.
type fixture struct {
	root string
	now  time.Time
}

func (f fixture) clock() time.Time { return f.now }

const loginCard = `---
updated_at: 2026-08-01
file_path: src/auth/login.go
---

## Overview
Login flow.

## Purpose
Authenticate users.

## Dependencies
- token store

## Key Components
- Login handler
`

const invoiceCard = `## Overview
Invoice handling, undocumented structure.
`

const userServiceCard = `---
updated_at: 2026-08-01
file_path: src/missing/gone.go
---

## Overview
User service.

## Purpose
Manage users.

## Dependencies
- none

## Key Components
- UserService
`

const codemapYAML = `project: demo
modules:
  - name: auth
    path: src/auth
  - name: billing
    path: src/billing
`

func newFixture(t *testing.T) fixture {
	t.Helper()
	f := fixture{root: t.TempDir(), now: time.Now().Truncate(time.Second)}

	f.write(t, "src/auth/login.go", "package auth\n", f.now.Add(-2*time.Hour))
	f.write(t, "src/auth/token.go", "package auth\n", f.now.Add(-2*time.Hour))
	f.write(t, "src/billing/invoice.go", "package billing\n", f.now.Add(-2*time.Hour))
	f.write(t, "src/billing/UserService.ts", "export {}\n", f.now.Add(-2*time.Hour))

	f.write(t, "docs/CODEMAP.yaml", codemapYAML, f.now)
	f.write(t, "docs/modules/auth/INDEX.yaml", "module: auth\n", f.now)

	f.write(t, "docs/context-cards/login.ctx.md", loginCard, f.now.Add(-1*time.Hour))
	f.write(t, "docs/context-cards/invoice.ctx.md", invoiceCard, f.now.Add(-30*time.Hour))
	f.write(t, "docs/context-cards/user-service.ctx.md", userServiceCard, f.now.Add(-1*time.Hour))

	return f
}

func (f fixture) write(t *testing.T, rel, content string, mtime time.Time) {
	t.Helper()
	path := filepath.Join(f.root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
}
