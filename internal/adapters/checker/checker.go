// Package checker implements freshness checks for tracked resources.
package checker

import (
	"os"
	"time"

	"go.trai.ch/fresh/internal/adapters/fs"
	"go.trai.ch/fresh/internal/core/domain"
	"go.trai.ch/fresh/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ResourceChecker = (*SelfChecking)(nil)

// SelfChecking evaluates the file system backed resource kinds against the
// current state of the disk.
type SelfChecking struct {
	hasher *fs.Hasher
}

// NewSelfChecking creates a SelfChecking checker.
func NewSelfChecking(hasher *fs.Hasher) *SelfChecking {
	return &SelfChecking{hasher: hasher}
}

// Supports reports whether res has a file system backed kind.
func (c *SelfChecking) Supports(res domain.TrackedResource) bool {
	switch res.Kind {
	case domain.KindFile, domain.KindDirectory, domain.KindExistence, domain.KindGlob, domain.KindContent:
		return true
	default:
		return false
	}
}

// IsFresh reports whether res is unchanged since builtAt.
func (c *SelfChecking) IsFresh(res domain.TrackedResource, builtAt time.Time) (bool, error) {
	switch res.Kind {
	case domain.KindFile:
		return notModifiedSince(res.Path, builtAt), nil
	case domain.KindDirectory:
		return c.directoryFresh(res.Path, builtAt), nil
	case domain.KindExistence:
		_, err := os.Stat(res.Path)
		return (err == nil) == res.Exists, nil
	case domain.KindGlob:
		glob := fs.NewGlob(res.Path, res.Pattern, res.Recursive, false, nil)
		return glob.Hash() == res.Hash, nil
	case domain.KindContent:
		hash, err := c.hasher.ComputeContentHash(res.Path)
		if err != nil {
			return false, nil
		}
		return hash == res.Hash, nil
	default:
		return false, zerr.With(domain.ErrUnknownResourceKind, "kind", string(res.Kind))
	}
}

// directoryFresh checks the directory itself and every entry below it.
func (c *SelfChecking) directoryFresh(dir string, builtAt time.Time) bool {
	if !notModifiedSince(dir, builtAt) {
		return false
	}
	it := fs.NewDirIterator(dir)
	for _, info, ok := it.NextEntry(); ok; _, info, ok = it.NextEntry() {
		if info.ModTime().After(builtAt) {
			return false
		}
	}
	return true
}

// notModifiedSince reports whether path exists with an mtime not after t.
func notModifiedSince(path string, t time.Time) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.ModTime().After(t)
}
