package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/fresh/internal/core/domain"
	"go.trai.ch/fresh/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Locator = (*Locator)(nil)

// Locator finds files in the current directory and a list of search paths.
type Locator struct {
	paths []string
}

// NewLocator creates a Locator searching the given directories after the current one.
func NewLocator(paths ...string) *Locator {
	return &Locator{paths: paths}
}

// Paths returns the configured search paths.
func (l *Locator) Paths() []string {
	return l.paths
}

// AddPaths appends search directories after the existing ones.
func (l *Locator) AddPaths(paths ...string) {
	l.paths = append(l.paths, paths...)
}

// Locate resolves name to absolute paths of existing files or directories.
func (l *Locator) Locate(name, currentDir string, all bool) ([]string, error) {
	if name == "" {
		return nil, zerr.With(domain.ErrInvalidResource, "reason", "empty file name")
	}

	if filepath.IsAbs(name) {
		if exists(name) {
			return []string{filepath.Clean(name)}, nil
		}
		return nil, &domain.NotFoundError{Name: name}
	}

	dirs := make([]string, 0, len(l.paths)+1)
	if currentDir != "" {
		dirs = append(dirs, currentDir)
	}
	dirs = append(dirs, l.paths...)

	var (
		found []string
		tried []string
		seen  = make(map[string]bool, len(dirs))
	)
	for _, dir := range dirs {
		abs, err := filepath.Abs(dir)
		if err != nil || seen[abs] {
			continue
		}
		seen[abs] = true
		tried = append(tried, abs)

		candidate := filepath.Join(abs, name)
		if !exists(candidate) {
			continue
		}
		if !all {
			return []string{candidate}, nil
		}
		found = append(found, candidate)
	}

	if len(found) == 0 {
		return nil, &domain.NotFoundError{Name: name, Tried: tried}
	}
	return found, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
