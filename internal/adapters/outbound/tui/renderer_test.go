package tui_test

import (
	"testing"
	"time"

	"github.com/ccdocs/ccd/internal/adapters/outbound/tui"
	"github.com/ccdocs/ccd/internal/domain"
	"github.com/stretchr/testify/assert"
)

func sampleHealth() *domain.ProjectHealth {
	return &domain.ProjectHealth{
		ProjectName:       "demo",
		Score:             72.4,
		CoveragePct:       66.7,
		FreshnessPct:      90.0,
		ModuleCoveragePct: 50.0,
		DeclaredModules:   4,
		IndexedModules:    2,
		TotalSourceFiles:  30,
		TotalContextCards: 20,
		HasCodemap:        true,
		CommitHash:        "abc1234",
		Timestamp:         time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC),
		Recommendations:   []string{"Increase context coverage - run 'ccd generate' for undocumented modules"},
	}
}

func TestRenderProjectHealth_ContainsScore(t *testing.T) {
	output := tui.RenderProjectHealth(sampleHealth(), false)
	assert.Contains(t, output, "72.4")
	assert.Contains(t, output, "100")
}

func TestRenderProjectHealth_ContainsMetrics(t *testing.T) {
	output := tui.RenderProjectHealth(sampleHealth(), false)
	assert.Contains(t, output, "Coverage")
	assert.Contains(t, output, "Freshness")
	assert.Contains(t, output, "Module coverage")
	assert.Contains(t, output, "66.7%")
	assert.Contains(t, output, "90.0%")
}

func TestRenderProjectHealth_ContainsCounts(t *testing.T) {
	output := tui.RenderProjectHealth(sampleHealth(), false)
	assert.Contains(t, output, "30")
	assert.Contains(t, output, "20")
	assert.Contains(t, output, "2/4")
	assert.Contains(t, output, "abc1234")
}

func TestRenderProjectHealth_Recommendations(t *testing.T) {
	output := tui.RenderProjectHealth(sampleHealth(), false)
	assert.Contains(t, output, "Recommendations")
	assert.Contains(t, output, "Increase context coverage")
}

func TestRenderProjectHealth_DetailedBreakdown(t *testing.T) {
	output := tui.RenderProjectHealth(sampleHealth(), true)
	assert.Contains(t, output, "Score breakdown")
	assert.Contains(t, output, "Card presence")
	assert.Contains(t, output, "+26.7") // 66.7 × 0.4
	assert.Contains(t, output, "+27.0") // 90.0 × 0.3
	assert.Contains(t, output, "+10.0")
}

func TestRenderProjectHealth_NoBreakdownByDefault(t *testing.T) {
	output := tui.RenderProjectHealth(sampleHealth(), false)
	assert.NotContains(t, output, "Score breakdown")
}

func TestRenderProjectHealth_ProgressBars(t *testing.T) {
	output := tui.RenderProjectHealth(sampleHealth(), false)
	assert.Contains(t, output, "█")
}

func TestRenderHistory_Empty(t *testing.T) {
	output := tui.RenderHistory(nil)
	assert.Contains(t, output, "No health history")
}

func TestRenderHistory_ShowsEntriesAndDeltas(t *testing.T) {
	entries := []domain.HealthEntry{
		{Timestamp: "2026-08-18T10:00:00Z", CommitHash: "aaa1111", Score: 60.0},
		{Timestamp: "2026-08-19T10:00:00Z", CommitHash: "bbb2222", Score: 72.5},
		{Timestamp: "2026-08-20T10:00:00Z", CommitHash: "ccc3333", Score: 70.0},
	}

	output := tui.RenderHistory(entries)
	assert.Contains(t, output, "2026-08-18")
	assert.Contains(t, output, "aaa1111")
	assert.Contains(t, output, "60.0/100")
	assert.Contains(t, output, "↑12.5")
	assert.Contains(t, output, "↓2.5")
}

func TestRenderHistory_MissingHashPlaceholder(t *testing.T) {
	output := tui.RenderHistory([]domain.HealthEntry{{Timestamp: "2026-08-20T10:00:00Z", Score: 50.0}})
	assert.Contains(t, output, "·······")
}
