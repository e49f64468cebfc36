package fs

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/reattach/internal/core/domain"
	"go.trai.ch/zerr"
)

// Walker finds the tests recorded under an application directory of a previous run.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// FindTests returns the paths, relative to appDir, of every directory that holds a
// framework_tmp directory or that is a leaf holding result files.
// framework_tmp directories are never descended into.
func (w *Walker) FindTests(appDir string) ([]string, error) {
	var tests []string
	err := filepath.WalkDir(appDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if w.shouldSkipDir(d) {
			return filepath.SkipDir
		}
		if path == appDir {
			return nil
		}

		isTest, err := w.isTestDir(path)
		if err != nil {
			return err
		}
		if isTest {
			rel, err := filepath.Rel(appDir, path)
			if err != nil {
				return err
			}
			tests = append(tests, filepath.ToSlash(rel))
		}
		return nil
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrTestDiscoveryFailed.Error()), "path", appDir)
	}

	slices.Sort(tests)
	return tests, nil
}

// shouldSkipDir reports whether a directory is never part of a test tree.
func (w *Walker) shouldSkipDir(d fs.DirEntry) bool {
	switch d.Name() {
	case domain.FrameworkTmpDirName, ".git", ".jj":
		return true
	}
	return false
}

func (w *Walker) isTestDir(path string) (bool, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return false, err
	}

	hasFiles, hasDirs := false, false
	for _, entry := range entries {
		switch {
		case entry.IsDir() && entry.Name() == domain.FrameworkTmpDirName:
			return true, nil
		case entry.IsDir():
			hasDirs = true
		default:
			hasFiles = true
		}
	}
	return hasFiles && !hasDirs, nil
}
