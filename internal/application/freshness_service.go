// Package application wires the ports together into the CCD use cases:
// load config → scan → score → report. Services hold no state beyond their
// collaborators and an injected clock.
package application

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/ccdocs/ccd/internal/domain"
	"github.com/ccdocs/ccd/internal/domain/scoring"
)

// FreshnessService classifies context card age against the configured
// threshold.
type FreshnessService struct {
	configLoader domain.ConfigLoader
	scanner      domain.ProjectScanner
	source       domain.DocSource
	clock        domain.Clock
}

func NewFreshnessService(
	configLoader domain.ConfigLoader,
	scanner domain.ProjectScanner,
	source domain.DocSource,
	clock domain.Clock,
) *FreshnessService {
	return &FreshnessService{
		configLoader: configLoader,
		scanner:      scanner,
		source:       source,
		clock:        clock,
	}
}

// CheckFile classifies a single document. thresholdHours overrides the
// configured threshold when positive. A missing file is a valid result, not
// an error.
func (s *FreshnessService) CheckFile(projectPath, filePath string, thresholdHours int) (domain.FreshnessReport, error) {
	cfg, err := s.configLoader.Load(projectPath)
	if err != nil {
		return domain.FreshnessReport{}, fmt.Errorf("loading config: %w", err)
	}

	threshold := effectiveThreshold(cfg, thresholdHours)

	absPath := filePath
	if !filepath.IsAbs(filePath) {
		absPath = filepath.Join(projectPath, filePath)
	}

	report := s.classify(absPath, threshold)
	report.Path = filePath
	return report, nil
}

// CheckProject classifies every context card in the project.
func (s *FreshnessService) CheckProject(projectPath string, thresholdHours int) (*domain.FreshnessSummary, error) {
	cfg, err := s.configLoader.Load(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	scan, err := s.scanner.Scan(projectPath, cfg)
	if err != nil {
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	threshold := effectiveThreshold(cfg, thresholdHours)

	summary := &domain.FreshnessSummary{TotalCount: len(scan.ContextCards)}
	for _, card := range scan.ContextCards {
		report := s.classify(filepath.Join(scan.RootPath, card), threshold)
		report.Path = card
		if report.Fresh {
			summary.FreshCount++
		}
		summary.Reports = append(summary.Reports, report)
	}

	if summary.TotalCount > 0 {
		summary.FreshnessPct = float64(summary.FreshCount) / float64(summary.TotalCount) * 100
	}

	return summary, nil
}

func (s *FreshnessService) classify(absPath string, threshold time.Duration) domain.FreshnessReport {
	var lastModified *time.Time
	if mod, err := s.source.LastModified(absPath); err == nil {
		lastModified = &mod
	}
	return scoring.ClassifyFreshness(lastModified, threshold, s.clock())
}

func effectiveThreshold(cfg domain.Config, overrideHours int) time.Duration {
	if overrideHours > 0 {
		return time.Duration(overrideHours) * time.Hour
	}
	return cfg.FreshnessThreshold()
}
