package fs

import (
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cespare/xxhash/v2"
)

// GlobChars are the metacharacters that turn a resource string into a pattern.
const GlobChars = "*?{["

// Glob expands a pattern under a located prefix directory.
//
// Pattern is matched against paths relative to Prefix, using forward slashes; a
// leading separator is ignored. Without Recursive, only entries at the pattern's
// own depth are considered and matching directories are produced as-is. With
// Recursive, every file inside a matching directory is produced too.
// ForExclusion inverts the selection within the same scope. Entries in Excluded,
// or below one of its members, are never produced.
type Glob struct {
	Prefix       string
	Pattern      string
	Recursive    bool
	ForExclusion bool
	Excluded     map[string]struct{}
}

// NewGlob creates a Glob. excluded holds absolute paths to leave out.
func NewGlob(prefix, pattern string, recursive, forExclusion bool, excluded []string) *Glob {
	set := make(map[string]struct{}, len(excluded))
	for _, e := range excluded {
		set[filepath.Clean(e)] = struct{}{}
	}
	return &Glob{
		Prefix:       prefix,
		Pattern:      pattern,
		Recursive:    recursive,
		ForExclusion: forExclusion,
		Excluded:     set,
	}
}

// String renders the glob as prefix plus pattern.
func (g *Glob) String() string {
	return g.Prefix + g.Pattern
}

// Paths yields the selected paths lazily, in enumeration order.
func (g *Glob) Paths() iter.Seq[string] {
	return func(yield func(string) bool) {
		info, err := os.Stat(g.Prefix)
		if err != nil {
			return
		}
		pattern := strings.TrimPrefix(filepath.ToSlash(g.Pattern), "/")

		if pattern == "" {
			g.yieldWhole(info, yield)
			return
		}
		if !info.IsDir() {
			return
		}

		var opts []DirOption
		depth := strings.Count(pattern, "/") + 1
		unbounded := g.Recursive || strings.Contains(pattern, "**")
		if !unbounded {
			opts = append(opts, WithMaxDepth(depth))
		}

		it := NewDirIterator(g.Prefix, opts...)
		for path, entry, ok := it.NextEntry(); ok; path, entry, ok = it.NextEntry() {
			if g.excluded(path) {
				continue
			}
			rel, err := filepath.Rel(g.Prefix, path)
			if err != nil {
				continue
			}
			rel = filepath.ToSlash(rel)

			if !unbounded && strings.Count(rel, "/")+1 != depth {
				continue
			}
			if g.Recursive && entry.IsDir() {
				continue
			}

			if g.selects(pattern, rel) != g.ForExclusion {
				if !yield(path) {
					return
				}
			}
		}
	}
}

// Match collects every selected path.
func (g *Glob) Match() []string {
	return slices.Collect(g.Paths())
}

// Hash fingerprints the sorted selection. It changes when a matching entry
// appears or disappears.
func (g *Glob) Hash() string {
	paths := g.Match()
	slices.Sort(paths)

	h := xxhash.New()
	for _, p := range paths {
		_, _ = h.WriteString(p)
		_, _ = h.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

func (g *Glob) yieldWhole(info os.FileInfo, yield func(string) bool) {
	if !g.Recursive || g.ForExclusion {
		return
	}
	if !info.IsDir() {
		if !g.excluded(g.Prefix) {
			yield(g.Prefix)
		}
		return
	}
	it := NewDirIterator(g.Prefix)
	for path, entry, ok := it.NextEntry(); ok; path, entry, ok = it.NextEntry() {
		if entry.IsDir() || g.excluded(path) {
			continue
		}
		if !yield(path) {
			return
		}
	}
}

// selects reports whether rel matches the pattern directly or, in recursive
// mode, through one of its parent directories.
func (g *Glob) selects(pattern, rel string) bool {
	if ok, _ := doublestar.Match(pattern, rel); ok {
		return true
	}
	if !g.Recursive {
		return false
	}
	for i := range len(rel) {
		if rel[i] != '/' {
			continue
		}
		if ok, _ := doublestar.Match(pattern, rel[:i]); ok {
			return true
		}
	}
	return false
}

func (g *Glob) excluded(path string) bool {
	if len(g.Excluded) == 0 {
		return false
	}
	for p := filepath.Clean(path); ; {
		if _, ok := g.Excluded[p]; ok {
			return true
		}
		parent := filepath.Dir(p)
		if parent == p {
			return false
		}
		p = parent
	}
}
