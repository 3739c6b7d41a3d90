package ports

import (
	"time"

	"go.trai.ch/fresh/internal/core/domain"
)

// ResourceChecker decides whether a tracked resource changed since a cache was built.
//
//go:generate go run go.uber.org/mock/mockgen -source=checker.go -destination=mocks/mock_checker.go -package=mocks
type ResourceChecker interface {
	// Supports reports whether this checker can evaluate the resource.
	Supports(res domain.TrackedResource) bool
	// IsFresh reports whether the resource is unchanged since builtAt.
	IsFresh(res domain.TrackedResource, builtAt time.Time) (bool, error)
}

// ConfigCache is a cache artifact guarded by a freshness check.
type ConfigCache interface {
	// Path returns the artifact path.
	Path() string
	// IsFresh reports whether the artifact can be reused without recompilation.
	IsFresh() (bool, error)
	// Read returns the artifact content.
	Read() ([]byte, error)
	// Write stores the artifact and the dependency state it was built from.
	Write(content []byte, resources []domain.TrackedResource) error
}

// CacheOpener opens the cache artifact stored at a path.
type CacheOpener interface {
	// Open returns the cache at path. In debug mode freshness is always
	// decided by the resource checkers.
	Open(path string, debug bool) ConfigCache
}
