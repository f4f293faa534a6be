package application

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ccdocs/ccd/internal/domain"
	"github.com/ccdocs/ccd/internal/domain/scoring"
	"github.com/fatih/camelcase"
)

// CoverageService relates context cards to the source files they document.
type CoverageService struct {
	configLoader domain.ConfigLoader
	scanner      domain.ProjectScanner
}

func NewCoverageService(configLoader domain.ConfigLoader, scanner domain.ProjectScanner) *CoverageService {
	return &CoverageService{configLoader: configLoader, scanner: scanner}
}

const cardSuffix = ".ctx.md"

// Report computes project coverage and lists source files with no matching
// context card. Matching is by name: a card covers a source file when its
// base name equals the file's base name or its kebab-case form, so both
// user_service.ctx.md and user-service.ctx.md cover UserService.go.
func (s *CoverageService) Report(projectPath string) (*domain.CoverageReport, error) {
	cfg, err := s.configLoader.Load(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	scan, err := s.scanner.Scan(projectPath, cfg)
	if err != nil {
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	documented := make(map[string]bool, len(scan.ContextCards))
	for _, card := range scan.ContextCards {
		name := strings.TrimSuffix(filepath.Base(card), cardSuffix)
		documented[strings.ToLower(name)] = true
	}

	var undocumented []string
	for _, file := range scan.SourceFiles {
		if !hasCard(documented, file) {
			undocumented = append(undocumented, file)
		}
	}
	sort.Strings(undocumented)

	return &domain.CoverageReport{
		SourceFiles:  len(scan.SourceFiles),
		ContextCards: len(scan.ContextCards),
		Percentage:   scoring.Clamp(scoring.CoveragePercent(len(scan.SourceFiles), len(scan.ContextCards))),
		Undocumented: undocumented,
	}, nil
}

func hasCard(documented map[string]bool, sourceFile string) bool {
	base := filepath.Base(sourceFile)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	for _, candidate := range cardNameCandidates(base) {
		if documented[candidate] {
			return true
		}
	}
	return false
}

// cardNameCandidates lists the card names that would cover a source file:
// the name itself, snake_case normalized to dashes, and the kebab-case split
// of a CamelCase name.
func cardNameCandidates(base string) []string {
	lower := strings.ToLower(base)
	candidates := []string{lower, strings.ReplaceAll(lower, "_", "-")}

	if words := camelcase.Split(base); len(words) > 1 {
		for i, w := range words {
			words[i] = strings.ToLower(w)
		}
		candidates = append(candidates, strings.Join(words, "-"))
	}

	return candidates
}
