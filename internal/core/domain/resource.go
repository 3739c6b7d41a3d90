package domain

import "fmt"

// ResourceKind names the freshness strategy for a tracked resource.
type ResourceKind string

const (
	// KindFile is fresh while the file's mtime is not after the build time.
	KindFile ResourceKind = "file"
	// KindDirectory is fresh while no entry under the directory is newer than the build.
	KindDirectory ResourceKind = "directory"
	// KindExistence is fresh while the path's existence matches what was recorded.
	KindExistence ResourceKind = "existence"
	// KindGlob is fresh while the set of paths matching a glob is unchanged.
	KindGlob ResourceKind = "glob"
	// KindContent is fresh while the content hash of a file or directory is unchanged.
	KindContent ResourceKind = "content"
	// KindMarker is an abstract dependency with no filesystem backing.
	KindMarker ResourceKind = "marker"
)

// TrackedResource is the recorded state of one dependency of a cache artifact.
type TrackedResource struct {
	Kind      ResourceKind `json:"kind"`
	Path      string       `json:"path"`
	Pattern   string       `json:"pattern,omitzero"`
	Recursive bool         `json:"recursive,omitzero"`
	Exists    bool         `json:"exists,omitzero"`
	Hash      string       `json:"hash,omitzero"`
}

// Key identifies the resource for deduplication.
func (r TrackedResource) Key() string {
	return fmt.Sprintf("%s:%s%s", r.Kind, r.Path, r.Pattern)
}

func (r TrackedResource) String() string {
	if r.Pattern != "" {
		return fmt.Sprintf("%s(%s%s)", r.Kind, r.Path, r.Pattern)
	}
	return fmt.Sprintf("%s(%s)", r.Kind, r.Path)
}

// FileResource tracks a file by modification time.
func FileResource(path string) TrackedResource {
	return TrackedResource{Kind: KindFile, Path: path}
}

// DirectoryResource tracks every entry under a directory by modification time.
func DirectoryResource(path string) TrackedResource {
	return TrackedResource{Kind: KindDirectory, Path: path}
}

// ExistenceResource tracks whether a path exists.
func ExistenceResource(path string, exists bool) TrackedResource {
	return TrackedResource{Kind: KindExistence, Path: path, Exists: exists}
}

// GlobResource tracks the set of paths a glob expands to.
func GlobResource(prefix, pattern string, recursive bool, hash string) TrackedResource {
	return TrackedResource{Kind: KindGlob, Path: prefix, Pattern: pattern, Recursive: recursive, Hash: hash}
}

// ContentResource tracks a file or directory by content hash.
func ContentResource(path, hash string) TrackedResource {
	return TrackedResource{Kind: KindContent, Path: path, Hash: hash}
}

// MarkerResource is an abstract dependency. No filesystem checker evaluates it.
func MarkerResource(name string) TrackedResource {
	return TrackedResource{Kind: KindMarker, Path: name}
}

// ResourceSet is an insertion-ordered, deduplicated collection of tracked resources.
type ResourceSet struct {
	items []TrackedResource
	seen  map[string]struct{}
}

// NewResourceSet creates an empty ResourceSet.
func NewResourceSet() *ResourceSet {
	return &ResourceSet{seen: make(map[string]struct{})}
}

// Add records a resource. Duplicates are ignored.
func (s *ResourceSet) Add(r TrackedResource) {
	if _, ok := s.seen[r.Key()]; ok {
		return
	}
	s.seen[r.Key()] = struct{}{}
	s.items = append(s.items, r)
}

// Resources returns a copy of the recorded resources in insertion order.
func (s *ResourceSet) Resources() []TrackedResource {
	out := make([]TrackedResource, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of recorded resources.
func (s *ResourceSet) Len() int {
	return len(s.items)
}
