// Package watcher monitors a project tree with fsnotify and reports changes
// to source files and context cards, so scores can be recomputed live.
package watcher

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

var skipDirs = map[string]bool{
	"vendor":       true,
	"node_modules": true,
	".git":         true,
	"dist":         true,
	"bin":          true,
	".ccd":         true,
}

// Watch monitors projectPath recursively and calls onChange with the path of
// each written or created file. It runs until ctx is cancelled.
//
// Directories created while watching are added to the watch set, so cards
// written into fresh docs/context-cards subtrees are still seen.
func Watch(ctx context.Context, projectPath string, onChange func(path string)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := addRecursive(w, projectPath); err != nil {
		return err
	}

	slog.Info("watching for changes", "path", projectPath)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
				if !skipDirs[filepath.Base(event.Name)] {
					_ = addRecursive(w, event.Name)
				}
				continue
			}

			slog.Debug("change detected", "path", event.Name)
			onChange(event.Name)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Error("watcher error", "err", err)
		}
	}
}

func addRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		name := d.Name()
		if path != root && (skipDirs[name] || strings.HasPrefix(name, ".")) {
			return filepath.SkipDir
		}
		return w.Add(path)
	})
}
