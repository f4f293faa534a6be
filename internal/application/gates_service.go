package application

import (
	"fmt"
	"path/filepath"

	"github.com/ccdocs/ccd/internal/domain"
	"github.com/ccdocs/ccd/internal/domain/scoring"
)

// GatesService runs the quality gates used by CI: coverage, freshness and
// average document health, each bucketed into a tiered score.
type GatesService struct {
	configLoader domain.ConfigLoader
	scanner      domain.ProjectScanner
	source       domain.DocSource
	clock        domain.Clock
}

func NewGatesService(
	configLoader domain.ConfigLoader,
	scanner domain.ProjectScanner,
	source domain.DocSource,
	clock domain.Clock,
) *GatesService {
	return &GatesService{
		configLoader: configLoader,
		scanner:      scanner,
		source:       source,
		clock:        clock,
	}
}

// Report evaluates all quality gates. The overall score is the mean of the
// gate scores.
func (s *GatesService) Report(projectPath string) (*domain.GatesReport, error) {
	cfg, err := s.configLoader.Load(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	scan, err := s.scanner.Scan(projectPath, cfg)
	if err != nil {
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	coveragePct := scoring.Clamp(scoring.CoveragePercent(len(scan.SourceFiles), len(scan.ContextCards)))
	freshnessPct, avgHealth := s.cardMetrics(scan, cfg)

	coverageScore, coverageStatus := scoring.CoverageGate(coveragePct)
	freshnessScore, freshnessStatus := scoring.FreshnessGate(freshnessPct)
	healthScore, healthStatus := scoring.HealthGate(avgHealth)
	if len(scan.ContextCards) == 0 {
		// No cards means nothing to measure: the freshness and health
		// gates report missing, not the bottom tier.
		freshnessScore, freshnessStatus = 0, domain.StatusMissing
		healthScore, healthStatus = 0, domain.StatusMissing
	}

	gates := []domain.GateResult{
		{Name: domain.GateCoverage, Score: coverageScore, Status: coverageStatus, Metric: "coverage_percentage", Value: coveragePct},
		{Name: domain.GateFreshness, Score: freshnessScore, Status: freshnessStatus, Metric: "freshness_percentage", Value: freshnessPct},
		{Name: domain.GateHealth, Score: healthScore, Status: healthStatus, Metric: "average_health", Value: avgHealth},
	}

	total := 0
	for _, g := range gates {
		total += g.Score
	}

	return &domain.GatesReport{
		Timestamp:       s.clock(),
		ProjectPath:     scan.RootPath,
		OverallScore:    float64(total) / float64(len(gates)),
		Gates:           gates,
		Recommendations: scoring.GateRecommendations(coveragePct, freshnessPct, avgHealth),
	}, nil
}

// cardMetrics computes the freshness percentage and the average document
// health across all context cards in one pass.
func (s *GatesService) cardMetrics(scan *domain.ScanResult, cfg domain.Config) (freshnessPct, avgHealth float64) {
	if len(scan.ContextCards) == 0 {
		return 0, 0
	}

	now := s.clock()
	fresh := 0
	healthTotal := 0

	for _, card := range scan.ContextCards {
		absPath := filepath.Join(scan.RootPath, card)

		isFresh := false
		if mod, err := s.source.LastModified(absPath); err == nil {
			isFresh = scoring.ClassifyFreshness(&mod, cfg.FreshnessThreshold(), now).Fresh
		}
		if isFresh {
			fresh++
		}

		content, err := s.source.ReadText(absPath)
		if err != nil {
			continue
		}
		healthTotal += scoring.ScoreDocument(content, isFresh).Score
	}

	total := float64(len(scan.ContextCards))
	return float64(fresh) / total * 100, float64(healthTotal) / total
}
