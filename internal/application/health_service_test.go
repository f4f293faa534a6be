package application_test

import (
	"testing"

	"github.com/ccdocs/ccd/internal/adapters/outbound/config"
	"github.com/ccdocs/ccd/internal/adapters/outbound/docsource"
	"github.com/ccdocs/ccd/internal/adapters/outbound/gitinfo"
	"github.com/ccdocs/ccd/internal/adapters/outbound/history"
	"github.com/ccdocs/ccd/internal/adapters/outbound/scanner"
	"github.com/ccdocs/ccd/internal/application"
	"github.com/ccdocs/ccd/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHealthService(f fixture) *application.HealthService {
	return application.NewHealthService(
		config.New(), scanner.New(), docsource.New(), gitinfo.New(), history.New(), f.clock)
}

func TestHealthService_ProjectHealth(t *testing.T) {
	f := newFixture(t)
	svc := newHealthService(f)

	health, err := svc.ProjectHealth(f.root)
	require.NoError(t, err)

	// coverage 3/4, freshness 2/3, module coverage 1/2, cards present:
	// 75×0.4 + 66.7×0.3 + 50×0.2 + 10 = 70.0
	assert.Equal(t, 70.0, health.Score)
	assert.Equal(t, 75.0, health.CoveragePct)
	assert.InDelta(t, 66.7, health.FreshnessPct, 0.1)
	assert.Equal(t, 50.0, health.ModuleCoveragePct)
	assert.Equal(t, 2, health.DeclaredModules)
	assert.Equal(t, 1, health.IndexedModules)
	assert.Equal(t, 4, health.TotalSourceFiles)
	assert.Equal(t, 3, health.TotalContextCards)
	assert.True(t, health.HasCodemap)
	assert.Equal(t, f.now, health.Timestamp)
}

func TestHealthService_ProjectHealth_Recommendations(t *testing.T) {
	f := newFixture(t)
	svc := newHealthService(f)

	health, err := svc.ProjectHealth(f.root)
	require.NoError(t, err)

	require.Len(t, health.Recommendations, 2)
	assert.Contains(t, health.Recommendations[0], "coverage")
	assert.Contains(t, health.Recommendations[1], "stale")
}

func TestHealthService_ProjectHealth_RecordsHistory(t *testing.T) {
	f := newFixture(t)
	svc := newHealthService(f)

	_, err := svc.ProjectHealth(f.root)
	require.NoError(t, err)
	_, err = svc.ProjectHealth(f.root)
	require.NoError(t, err)

	entries, err := svc.History(f.root)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 70.0, entries[0].Score)
	assert.Equal(t, 75.0, entries[0].CoveragePct)
	assert.NotEmpty(t, entries[0].Timestamp)
}

func TestHealthService_ProjectHealth_EmptyProject(t *testing.T) {
	f := fixture{root: t.TempDir(), now: newFixture(t).now}
	svc := newHealthService(f)

	health, err := svc.ProjectHealth(f.root)
	require.NoError(t, err)

	assert.Equal(t, 0.0, health.Score)
	assert.False(t, health.HasCodemap)
	assert.Contains(t, health.Recommendations, "Create docs/CODEMAP.yaml for repository-level context")
}

func TestHealthService_DocumentHealth_PerfectCard(t *testing.T) {
	f := newFixture(t)
	svc := newHealthService(f)

	report, err := svc.DocumentHealth(f.root, "docs/context-cards/login.ctx.md")
	require.NoError(t, err)

	assert.Equal(t, 100, report.Score)
	assert.Equal(t, domain.StatusExcellent, report.Status)
	assert.Equal(t, []string{"has_metadata"}, report.Factors)
}

func TestHealthService_DocumentHealth_StaleSparseCard(t *testing.T) {
	f := newFixture(t)
	svc := newHealthService(f)

	report, err := svc.DocumentHealth(f.root, "docs/context-cards/invoice.ctx.md")
	require.NoError(t, err)

	// Three missing sections, stale, no frontmatter: 100−45−20−15.
	assert.Equal(t, 20, report.Score)
	assert.Equal(t, domain.StatusPoor, report.Status)
	assert.Contains(t, report.Factors, "context_stale")
	assert.Contains(t, report.Factors, "no_frontmatter")
}

func TestHealthService_DocumentHealth_Missing(t *testing.T) {
	f := newFixture(t)
	svc := newHealthService(f)

	report, err := svc.DocumentHealth(f.root, "docs/context-cards/nope.ctx.md")
	require.NoError(t, err)

	assert.Equal(t, 0, report.Score)
	assert.Equal(t, domain.StatusMissing, report.Status)
	assert.Equal(t, []string{"file_missing"}, report.Factors)
}
