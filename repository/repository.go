// Package repository locates the git worktree the command runs in.
package repository

import (
	"path/filepath"

	"github.com/jiangxin/goconfig"
	log "github.com/sirupsen/logrus"
)

// Repository holds repository and error.
type Repository struct {
	repository *goconfig.Repository
	error      error
}

var theRepository Repository

// Open will try to find repository in dir.
func (v *Repository) Open(dir string) error {
	v.repository, v.error = goconfig.FindRepository(dir)
	return v.error
}

// OpenRepository will try to find repository in dir. Running outside of a
// worktree is not an error: the repo-level configuration is just skipped.
func OpenRepository(dir string) {
	if err := theRepository.Open(dir); err != nil {
		log.Debugf("not in a git worktree: %v", err)
	}
}

// Opened returns true if a repository was successfully opened.
func Opened() bool {
	return theRepository.error == nil && theRepository.repository != nil
}

// WorkDir returns root dir of worktree, or empty string outside of a worktree.
func WorkDir() string {
	if !Opened() {
		return ""
	}
	return theRepository.repository.WorkDir()
}

// ConfigPath returns the path of a file at the top of the worktree, or
// empty string when not in a worktree.
func ConfigPath(name string) string {
	dir := WorkDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, name)
}
