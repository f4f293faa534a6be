// Package docsource implements domain.DocSource on top of the local
// filesystem.
package docsource

import (
	"fmt"
	"os"
	"time"
)

// FileSource reads document metadata and content from disk.
type FileSource struct{}

func New() *FileSource {
	return &FileSource{}
}

func (f *FileSource) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func (f *FileSource) ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

func (f *FileSource) LastModified(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, fmt.Errorf("stat %s: %w", path, err)
	}
	return info.ModTime(), nil
}

func (f *FileSource) SizeBytes(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", path, err)
	}
	return info.Size(), nil
}
