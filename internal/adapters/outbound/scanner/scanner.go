// Package scanner implements domain.ProjectScanner by walking the project
// tree and collecting CCD artifacts: context cards, module indexes, the
// codemap and documentation-candidate source files.
package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ccdocs/ccd/internal/domain"
	"gopkg.in/yaml.v3"
)

const (
	cardSuffix  = ".ctx.md"
	codemapFile = "CODEMAP.yaml"
	indexFile   = "INDEX.yaml"
	modulesDir  = "modules"
)

var skipDirs = map[string]bool{
	"vendor":       true,
	"node_modules": true,
	".git":         true,
	"dist":         true,
	"bin":          true,
	"testdata":     true,
	".ccd":         true,
}

// FileScanner walks the filesystem.
type FileScanner struct{}

func New() *FileScanner {
	return &FileScanner{}
}

func (s *FileScanner) Scan(projectPath string, cfg domain.Config) (*domain.ScanResult, error) {
	absPath, err := filepath.Abs(projectPath)
	if err != nil {
		return nil, fmt.Errorf("resolving project path: %w", err)
	}

	// Exclude entries with a separator match the directory path relative to
	// the root; bare names match any directory of that name.
	excludeNames := make(map[string]bool, len(cfg.ExcludePaths))
	excludePaths := make(map[string]bool, len(cfg.ExcludePaths))
	for _, p := range cfg.ExcludePaths {
		p = strings.Trim(filepath.ToSlash(p), "/")
		if strings.Contains(p, "/") {
			excludePaths[p] = true
		} else {
			excludeNames[p] = true
		}
	}

	result := &domain.ScanResult{RootPath: absPath}
	docsPrefix := cfg.DocsDir + string(filepath.Separator)

	err = filepath.WalkDir(absPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, _ := filepath.Rel(absPath, path)

		if d.IsDir() {
			if path == absPath {
				return nil
			}
			if skipDirs[d.Name()] || excludeNames[d.Name()] || excludePaths[filepath.ToSlash(relPath)] {
				return filepath.SkipDir
			}
			return nil
		}

		switch {
		case strings.HasSuffix(d.Name(), cardSuffix):
			result.ContextCards = append(result.ContextCards, relPath)
		case relPath == "ccd.yaml" || relPath == ".ccd.yaml":
			result.HasConfig = true
		case !strings.HasPrefix(relPath, docsPrefix) && cfg.IsSourceExtension(filepath.Ext(d.Name())):
			result.SourceFiles = append(result.SourceFiles, relPath)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", absPath, err)
	}

	if err := loadCodemap(absPath, cfg.DocsDir, result); err != nil {
		return nil, err
	}
	result.IndexedModules = indexedModules(absPath, cfg.DocsDir)

	return result, nil
}

// loadCodemap parses docs/CODEMAP.yaml when present. A missing codemap is a
// valid state, not an error.
func loadCodemap(rootPath, docsDir string, result *domain.ScanResult) error {
	path := filepath.Join(rootPath, docsDir, codemapFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading codemap: %w", err)
	}

	var codemap domain.Codemap
	if err := yaml.Unmarshal(data, &codemap); err != nil {
		return fmt.Errorf("parsing %s: %w", codemapFile, err)
	}

	result.HasCodemap = true
	result.Codemap = &codemap
	return nil
}

// indexedModules lists module names under docs/modules that carry an
// INDEX.yaml.
func indexedModules(rootPath, docsDir string) []string {
	entries, err := os.ReadDir(filepath.Join(rootPath, docsDir, modulesDir))
	if err != nil {
		return nil
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		indexPath := filepath.Join(rootPath, docsDir, modulesDir, e.Name(), indexFile)
		if _, err := os.Stat(indexPath); err == nil {
			names = append(names, e.Name())
		}
	}
	return names
}
