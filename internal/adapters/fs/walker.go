// Package fs provides file system adapters for enumerating, globbing, locating and hashing files.
package fs

import (
	"iter"
	"os"
	"path/filepath"
	"slices"
)

// cursor is the walk state of one directory level.
type cursor struct {
	root    string
	info    os.FileInfo
	pending []string
}

// DirIterator lazily enumerates every path under a root directory, depth first.
// A subdirectory's own path is produced after all of its descendants. Directories
// that cannot be listed produce nothing, and the walk continues with their siblings.
type DirIterator struct {
	root     string
	maxDepth int
	skip     func(name string, isDir bool) bool
	stack    []*cursor
	started  bool
}

// DirOption configures a DirIterator.
type DirOption func(*DirIterator)

// WithMaxDepth stops descending below depth n (1 is the root's direct entries).
// Directories at depth n are still produced. Zero means unlimited.
func WithMaxDepth(n int) DirOption {
	return func(it *DirIterator) {
		it.maxDepth = n
	}
}

// WithSkip prunes entries for which fn returns true. Skipped directories are not descended.
func WithSkip(fn func(name string, isDir bool) bool) DirOption {
	return func(it *DirIterator) {
		it.skip = fn
	}
}

// NewDirIterator creates an iterator rooted at root. Nothing is read until Next is called.
func NewDirIterator(root string, opts ...DirOption) *DirIterator {
	it := &DirIterator{root: root}
	for _, opt := range opts {
		opt(it)
	}
	return it
}

// Next returns the next path, or false once the walk is exhausted.
func (it *DirIterator) Next() (string, bool) {
	path, _, ok := it.NextEntry()
	return path, ok
}

// NextEntry is Next that also returns the entry's file info.
func (it *DirIterator) NextEntry() (string, os.FileInfo, bool) {
	if !it.started {
		it.started = true
		info, err := os.Stat(it.root)
		if err != nil || !info.IsDir() {
			return "", nil, false
		}
		if c, ok := openCursor(it.root, info); ok {
			it.stack = append(it.stack, c)
		}
	}

	for len(it.stack) > 0 {
		top := it.stack[len(it.stack)-1]

		if len(top.pending) == 0 {
			it.stack = it.stack[:len(it.stack)-1]
			if len(it.stack) == 0 {
				// The root itself is never produced.
				return "", nil, false
			}
			return top.root, top.info, true
		}

		name := top.pending[0]
		top.pending = top.pending[1:]
		path := filepath.Join(top.root, name)

		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		isDir := info.IsDir()
		if it.skip != nil && it.skip(name, isDir) {
			continue
		}
		if !isDir {
			return path, info, true
		}

		if it.maxDepth > 0 && len(it.stack) >= it.maxDepth {
			return path, info, true
		}
		if it.onStack(info) {
			return path, info, true
		}
		child, ok := openCursor(path, info)
		if !ok {
			continue
		}
		it.stack = append(it.stack, child)
	}

	return "", nil, false
}

// All returns the remaining paths as a sequence. Stopping early leaves the
// iterator positioned after the last yielded path.
func (it *DirIterator) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			path, ok := it.Next()
			if !ok || !yield(path) {
				return
			}
		}
	}
}

// onStack reports whether info is the same directory as one being walked,
// which happens with symlink loops.
func (it *DirIterator) onStack(info os.FileInfo) bool {
	for _, c := range it.stack {
		if os.SameFile(c.info, info) {
			return true
		}
	}
	return false
}

// readDirNames lists the entry names of a directory.
var readDirNames = func(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // Path comes from the walk itself
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck // Best effort close of a read-only handle

	return f.Readdirnames(-1)
}

func openCursor(path string, info os.FileInfo) (*cursor, bool) {
	names, err := readDirNames(path)
	if err != nil {
		return nil, false
	}
	slices.Sort(names)
	return &cursor{root: path, info: info, pending: names}, true
}

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields all files under root, skipping .git, .jj and entries whose
// name matches one of the ignore patterns.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		it := NewDirIterator(root, WithSkip(func(name string, isDir bool) bool {
			return shouldSkip(name, isDir, ignores)
		}))
		for path, info, ok := it.NextEntry(); ok; path, info, ok = it.NextEntry() {
			if info.IsDir() {
				continue
			}
			if !yield(path) {
				return
			}
		}
	}
}

func shouldSkip(name string, isDir bool, ignores []string) bool {
	if isDir && (name == ".git" || name == ".jj") {
		return true
	}
	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			return true
		}
	}
	return false
}
