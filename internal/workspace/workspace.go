// Package workspace manages the ephemeral checkouts a formatting run works in.
package workspace

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

const (
	dirPattern = "clang-format-*"
	gitDirName = ".git"
)

// Workspace is an exclusively owned temporary directory. Callers must call
// Remove on every exit path, typically with defer right after New.
type Workspace struct {
	path string
}

// New creates a fresh workspace under root. An empty root uses the OS temp dir.
func New(root string) (*Workspace, error) {
	if root != "" {
		if err := os.MkdirAll(root, 0o750); err != nil {
			return nil, fmt.Errorf("failed to create workspace root %s: %w", root, err)
		}
	}
	dir, err := os.MkdirTemp(root, dirPattern)
	if err != nil {
		return nil, fmt.Errorf("failed to create temp directory: %w", err)
	}
	return &Workspace{path: dir}, nil
}

// Path returns the absolute workspace directory.
func (w *Workspace) Path() string {
	return w.path
}

// Remove deletes the workspace and everything beneath it.
func (w *Workspace) Remove() error {
	if err := os.RemoveAll(w.path); err != nil {
		return fmt.Errorf("failed to remove workspace %s: %w", w.path, err)
	}
	return nil
}

// ListFiles returns every regular file under root as a forward-slash path
// relative to root, sorted. Entries named ".git" are skipped at any depth,
// which covers the metadata directory and submodule gitlink files without
// touching siblings such as ".github". Symlinks are never returned.
func ListFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		if d.Name() == gitDirName {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list files in %s: %w", root, err)
	}
	sort.Strings(files)
	return files, nil
}
