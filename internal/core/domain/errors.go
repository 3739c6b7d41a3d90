package domain

import (
	"fmt"
	"strings"

	"go.trai.ch/zerr"
)

var (
	// ErrResourceNotFound is returned when the locator cannot resolve a resource or glob prefix.
	ErrResourceNotFound = zerr.New("resource not found")

	// ErrCircularImport is returned when an import chain revisits a resource that is still loading.
	ErrCircularImport = zerr.New("circular import detected")

	// ErrLoadFailed is returned when resolving or loading an imported resource fails.
	ErrLoadFailed = zerr.New("failed to load resource")

	// ErrLoaderNotFound is returned when no registered loader supports a resource/type pair.
	ErrLoaderNotFound = zerr.New("no loader supports resource")

	// ErrUncomparableResource is returned when a resource cannot be tracked as in flight.
	ErrUncomparableResource = zerr.New("resource is not comparable")

	// ErrInvalidResource is returned when a resource identifier is empty or malformed.
	ErrInvalidResource = zerr.New("invalid resource")

	// ErrInvalidDocument is returned when a configuration document has an unexpected shape.
	ErrInvalidDocument = zerr.New("invalid configuration document")

	// ErrCacheStale is returned by the check command when the cache must be rebuilt.
	ErrCacheStale = zerr.New("cache is stale")

	// ErrCacheReadFailed is returned when the cache artifact cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read cache")

	// ErrCacheWriteFailed is returned when the cache artifact or its metadata cannot be written.
	ErrCacheWriteFailed = zerr.New("failed to write cache")

	// ErrUnknownResourceKind is returned when a tracked resource carries a kind no checker knows.
	ErrUnknownResourceKind = zerr.New("unknown tracked resource kind")

	// ErrWatchFailed is returned when the file system watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to watch tracked resources")
)

// NotFoundError reports that a name could not be located in any search path.
type NotFoundError struct {
	Name  string
	Tried []string
}

func (e *NotFoundError) Error() string {
	if len(e.Tried) == 0 {
		return fmt.Sprintf("resource %q not found", e.Name)
	}
	return fmt.Sprintf("resource %q not found in: %s", e.Name, strings.Join(e.Tried, ", "))
}

// Is reports whether target is ErrResourceNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrResourceNotFound
}

// CircularImportError reports an import cycle. Chain holds the in-flight
// resources in the order they started loading.
type CircularImportError struct {
	Resource any
	Chain    []any
}

func (e *CircularImportError) Error() string {
	parts := make([]string, 0, len(e.Chain)+1)
	for _, r := range e.Chain {
		parts = append(parts, FormatResource(r))
	}
	parts = append(parts, FormatResource(e.Resource))
	return "circular import detected: " + strings.Join(parts, " > ")
}

// Is reports whether target is ErrCircularImport.
func (e *CircularImportError) Is(target error) bool {
	return target == ErrCircularImport
}

// LoadError wraps any failure raised while resolving or loading a resource.
type LoadError struct {
	Resource any
	Source   string
	Type     string
	Cause    error
}

func (e *LoadError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "failed to load %s", FormatResource(e.Resource))
	if e.Source != "" {
		fmt.Fprintf(&b, " (imported from %q)", e.Source)
	}
	if e.Type != "" {
		fmt.Fprintf(&b, " as type %q", e.Type)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is ErrLoadFailed.
func (e *LoadError) Is(target error) bool {
	return target == ErrLoadFailed
}

// FormatResource renders a resource identifier for messages.
func FormatResource(r any) string {
	if s, ok := r.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	if s, ok := r.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", r)
}
