package application

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/ccdocs/ccd/internal/domain"
	"github.com/ccdocs/ccd/internal/domain/scoring"
)

// DriftService detects divergence between context cards and the source files
// their frontmatter declares.
type DriftService struct {
	configLoader domain.ConfigLoader
	scanner      domain.ProjectScanner
	source       domain.DocSource
	parser       domain.MarkdownParser
}

func NewDriftService(
	configLoader domain.ConfigLoader,
	scanner domain.ProjectScanner,
	source domain.DocSource,
	parser domain.MarkdownParser,
) *DriftService {
	return &DriftService{
		configLoader: configLoader,
		scanner:      scanner,
		source:       source,
		parser:       parser,
	}
}

// Report checks every context card against its declared source file.
func (s *DriftService) Report(projectPath string) (*domain.DriftReport, error) {
	cfg, err := s.configLoader.Load(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	scan, err := s.scanner.Scan(projectPath, cfg)
	if err != nil {
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	report := &domain.DriftReport{TotalCards: len(scan.ContextCards)}
	for _, card := range scan.ContextCards {
		state, err := s.cardState(scan.RootPath, card)
		if err != nil {
			return nil, err
		}
		if finding := scoring.DetectDrift(state); finding != nil {
			report.Findings = append(report.Findings, *finding)
		}
	}

	report.Drifted = len(report.Findings)
	report.Severity = scoring.AggregateDriftSeverity(report.Drifted)
	return report, nil
}

func (s *DriftService) cardState(rootPath, card string) (scoring.CardState, error) {
	cardPath := filepath.Join(rootPath, card)

	content, err := s.source.ReadText(cardPath)
	if err != nil {
		return scoring.CardState{}, fmt.Errorf("reading %s: %w", card, err)
	}

	state := scoring.CardState{ContextFile: card}

	fm, _ := s.parser.Frontmatter([]byte(content))
	declared, _ := fm["file_path"].(string)
	if declared == "" {
		return state, nil
	}
	state.DeclaredPath = declared

	sourcePath := filepath.Join(rootPath, filepath.FromSlash(declared))
	if !s.source.Exists(sourcePath) {
		return state, nil
	}
	state.SourceExists = true

	state.SourceMod = modTime(s.source, sourcePath)
	state.CardMod = modTime(s.source, cardPath)
	return state, nil
}

func modTime(source domain.DocSource, path string) time.Time {
	mod, err := source.LastModified(path)
	if err != nil {
		return time.Time{}
	}
	return mod
}
