package application

import (
	"fmt"
	"path/filepath"

	"github.com/ccdocs/ccd/internal/domain"
	"github.com/ccdocs/ccd/internal/domain/scoring"
)

// HealthService computes per-document health and the composite project
// health score, recording each project run in the history store.
type HealthService struct {
	configLoader domain.ConfigLoader
	scanner      domain.ProjectScanner
	source       domain.DocSource
	gitInfo      domain.GitInfo
	history      domain.HistoryStore
	clock        domain.Clock
}

func NewHealthService(
	configLoader domain.ConfigLoader,
	scanner domain.ProjectScanner,
	source domain.DocSource,
	gitInfo domain.GitInfo,
	history domain.HistoryStore,
	clock domain.Clock,
) *HealthService {
	return &HealthService{
		configLoader: configLoader,
		scanner:      scanner,
		source:       source,
		gitInfo:      gitInfo,
		history:      history,
		clock:        clock,
	}
}

// DocumentHealth scores one context card. A missing file yields the terminal
// missing report, not an error.
func (s *HealthService) DocumentHealth(projectPath, filePath string) (domain.HealthReport, error) {
	cfg, err := s.configLoader.Load(projectPath)
	if err != nil {
		return domain.HealthReport{}, fmt.Errorf("loading config: %w", err)
	}

	absPath := filePath
	if !filepath.IsAbs(filePath) {
		absPath = filepath.Join(projectPath, filePath)
	}

	if !s.source.Exists(absPath) {
		report := scoring.MissingDocument()
		report.Path = filePath
		return report, nil
	}

	content, err := s.source.ReadText(absPath)
	if err != nil {
		return domain.HealthReport{}, fmt.Errorf("reading %s: %w", filePath, err)
	}

	fresh := false
	if mod, err := s.source.LastModified(absPath); err == nil {
		fresh = scoring.ClassifyFreshness(&mod, cfg.FreshnessThreshold(), s.clock()).Fresh
	}

	report := scoring.ScoreDocument(content, fresh)
	report.Path = filePath
	return report, nil
}

// ProjectHealth computes the composite project health report and appends it
// to the health history. History and git failures never fail the report.
func (s *HealthService) ProjectHealth(projectPath string) (*domain.ProjectHealth, error) {
	cfg, err := s.configLoader.Load(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	scan, err := s.scanner.Scan(projectPath, cfg)
	if err != nil {
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	coveragePct := scoring.Clamp(scoring.CoveragePercent(len(scan.SourceFiles), len(scan.ContextCards)))
	freshnessPct := s.projectFreshness(scan, cfg)
	moduleCoveragePct := scoring.ModuleCoverage(len(scan.IndexedModules), scan.DeclaredModules())
	hasCards := len(scan.ContextCards) > 0

	health := &domain.ProjectHealth{
		ProjectName:       filepath.Base(scan.RootPath),
		Score:             scoring.ProjectHealthScore(coveragePct, freshnessPct, moduleCoveragePct, hasCards),
		CoveragePct:       coveragePct,
		FreshnessPct:      freshnessPct,
		ModuleCoveragePct: moduleCoveragePct,
		DeclaredModules:   scan.DeclaredModules(),
		IndexedModules:    len(scan.IndexedModules),
		TotalSourceFiles:  len(scan.SourceFiles),
		TotalContextCards: len(scan.ContextCards),
		HasCodemap:        scan.HasCodemap,
		Timestamp:         s.clock(),
		Recommendations:   scoring.ProjectRecommendations(coveragePct, freshnessPct, scan.DeclaredModules(), scan.HasCodemap),
	}

	if s.gitInfo.IsGitRepo(projectPath) {
		if hash, err := s.gitInfo.CommitHash(projectPath); err == nil {
			health.CommitHash = hash
		}
	}

	// Best effort: a read-only checkout should still get its report.
	_ = s.history.Save(projectPath, domain.HealthEntry{
		Timestamp:    health.Timestamp.UTC().Format("2006-01-02T15:04:05Z"),
		CommitHash:   health.CommitHash,
		Score:        health.Score,
		CoveragePct:  health.CoveragePct,
		FreshnessPct: health.FreshnessPct,
	})

	return health, nil
}

// History returns the persisted project health entries, oldest first.
func (s *HealthService) History(projectPath string) ([]domain.HealthEntry, error) {
	return s.history.Load(projectPath)
}

func (s *HealthService) projectFreshness(scan *domain.ScanResult, cfg domain.Config) float64 {
	if len(scan.ContextCards) == 0 {
		return 0
	}

	now := s.clock()
	fresh := 0
	for _, card := range scan.ContextCards {
		mod, err := s.source.LastModified(filepath.Join(scan.RootPath, card))
		if err != nil {
			continue
		}
		if scoring.ClassifyFreshness(&mod, cfg.FreshnessThreshold(), now).Fresh {
			fresh++
		}
	}

	return float64(fresh) / float64(len(scan.ContextCards)) * 100
}
