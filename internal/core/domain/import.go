package domain

// ImportRequest describes a single call into the import resolver.
type ImportRequest struct {
	// Resource is the import target. Strings containing any of "*?{[" are
	// treated as glob patterns.
	Resource any
	// Type is an optional loader type hint.
	Type string
	// IgnoreErrors swallows load failures. Circular imports are never swallowed.
	IgnoreErrors bool
	// SourceResource names the resource that requested this import.
	SourceResource string
	// CurrentDir is the directory relative resources are resolved against.
	CurrentDir string
}

// ImportStatus tags the outcome of a successful import call.
type ImportStatus uint8

const (
	// ImportLoaded means exactly one resource was loaded.
	ImportLoaded ImportStatus = iota
	// ImportExpanded means a glob matched several resources.
	ImportExpanded
	// ImportSuppressed means a failure was swallowed because IgnoreErrors was set.
	ImportSuppressed
	// ImportEmpty means a glob matched nothing.
	ImportEmpty
)

// String returns the status name.
func (s ImportStatus) String() string {
	switch s {
	case ImportLoaded:
		return "loaded"
	case ImportExpanded:
		return "expanded"
	case ImportSuppressed:
		return "suppressed"
	case ImportEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// ImportResult is the tagged outcome of an import. Values holds the
// per-resource loader results in match order.
type ImportResult struct {
	Status ImportStatus
	Values []any
}

// Value collapses the result: nil when nothing was loaded, the value itself
// for a single load, and the ordered slice otherwise.
func (r ImportResult) Value() any {
	switch len(r.Values) {
	case 0:
		return nil
	case 1:
		return r.Values[0]
	default:
		return r.Values
	}
}

// Loaded wraps a single loader result.
func Loaded(v any) ImportResult {
	return ImportResult{Status: ImportLoaded, Values: []any{v}}
}

// Suppressed is the result of a swallowed failure.
func Suppressed() ImportResult {
	return ImportResult{Status: ImportSuppressed}
}

// Expanded builds the result of a glob import from its per-match values.
func Expanded(values []any) ImportResult {
	switch len(values) {
	case 0:
		return ImportResult{Status: ImportEmpty}
	case 1:
		return ImportResult{Status: ImportLoaded, Values: values}
	default:
		return ImportResult{Status: ImportExpanded, Values: values}
	}
}
