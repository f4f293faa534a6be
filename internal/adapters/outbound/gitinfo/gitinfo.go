// Package gitinfo reads repository metadata via go-git so health reports and
// history entries can be pinned to a commit.
package gitinfo

import (
	"fmt"

	"github.com/go-git/go-git/v5"
)

const shortHashLen = 7

// Adapter implements domain.GitInfo.
type Adapter struct{}

func New() *Adapter {
	return &Adapter{}
}

func (a *Adapter) IsGitRepo(projectPath string) bool {
	_, err := a.open(projectPath)
	return err == nil
}

// CommitHash returns the abbreviated HEAD hash.
func (a *Adapter) CommitHash(projectPath string) (string, error) {
	repo, err := a.open(projectPath)
	if err != nil {
		return "", fmt.Errorf("opening git repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("resolving HEAD: %w", err)
	}

	return head.Hash().String()[:shortHashLen], nil
}

// open walks up from projectPath so scoring a subdirectory of a repository
// still finds the enclosing .git.
func (a *Adapter) open(projectPath string) (*git.Repository, error) {
	return git.PlainOpenWithOptions(projectPath, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
}
