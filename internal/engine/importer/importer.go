// Package importer resolves import statements: it expands glob patterns,
// delegates each resource to its loader and detects circular imports.
package importer

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"go.trai.ch/fresh/internal/adapters/fs" //nolint:depguard // Glob expansion lives with the file system adapter
	"go.trai.ch/fresh/internal/core/domain"
	"go.trai.ch/fresh/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Importer = (*Importer)(nil)

// GlobOptions controls pattern expansion.
type GlobOptions struct {
	// Recursive also selects every file below a matching directory.
	Recursive bool
	// IgnoreErrors turns an unresolvable prefix into an empty match set.
	IgnoreErrors bool
	// ForExclusion selects the entries that do not match instead.
	ForExclusion bool
	// Excluded lists paths that are never selected. Relative entries are
	// resolved against CurrentDir.
	Excluded []string
	// CurrentDir is the directory relative prefixes are resolved against.
	CurrentDir string
}

// Importer resolves resources through a set of loaders.
type Importer struct {
	locator   ports.Locator
	loaders   ports.LoaderResolver
	logger    ports.Logger
	telemetry ports.Telemetry
}

// New creates an Importer.
func New(
	locator ports.Locator,
	loaders ports.LoaderResolver,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *Importer {
	return &Importer{
		locator:   locator,
		loaders:   loaders,
		logger:    logger,
		telemetry: telemetry,
	}
}

// Import loads req.Resource. Strings containing glob metacharacters are
// expanded first and every match is imported on its own.
func (i *Importer) Import(ctx context.Context, req domain.ImportRequest) (domain.ImportResult, error) {
	if pattern, ok := req.Resource.(string); ok && strings.ContainsAny(pattern, fs.GlobChars) {
		return i.importPattern(ctx, pattern, req)
	}
	return i.doImport(ctx, req)
}

// Glob expands pattern into matching paths without loading them. Plain globs
// are recorded with the context's resource tracker.
func (i *Importer) Glob(ctx context.Context, pattern string, opts GlobOptions) ([]string, error) {
	prefix, rest, subpath := splitPattern(pattern)

	located, err := i.locator.Locate(prefix, opts.CurrentDir, true)
	if err != nil {
		if errors.Is(err, domain.ErrResourceNotFound) && (opts.IgnoreErrors || !subpath) {
			i.logger.Debug(fmt.Sprintf("glob prefix %q not found, no matches for %q", prefix, pattern))
			return nil, nil
		}
		return nil, err
	}

	excluded := make([]string, 0, len(opts.Excluded))
	for _, p := range opts.Excluded {
		if !filepath.IsAbs(p) {
			p = filepath.Join(opts.CurrentDir, p)
		}
		excluded = append(excluded, p)
	}

	var (
		matches []string
		seen    = make(map[string]struct{})
	)
	for _, dir := range located {
		glob := fs.NewGlob(dir, rest, opts.Recursive, opts.ForExclusion, excluded)
		if !opts.ForExclusion && len(excluded) == 0 {
			ports.TrackResource(ctx, domain.GlobResource(glob.Prefix, glob.Pattern, glob.Recursive, glob.Hash()))
		}

		for path := range glob.Paths() {
			if _, dup := seen[path]; dup {
				continue
			}
			seen[path] = struct{}{}
			matches = append(matches, path)
		}
	}
	return matches, nil
}

func (i *Importer) importPattern(
	ctx context.Context,
	pattern string,
	req domain.ImportRequest,
) (domain.ImportResult, error) {
	matches, err := i.Glob(ctx, pattern, GlobOptions{
		IgnoreErrors: req.IgnoreErrors,
		CurrentDir:   req.CurrentDir,
	})
	if err != nil {
		return domain.ImportResult{}, err
	}

	if len(matches) == 0 {
		if _, _, subpath := splitPattern(pattern); !subpath {
			// A bare pattern may still name something a loader understands.
			return i.doImport(ctx, req)
		}
		return domain.Expanded(nil), nil
	}

	values := make([]any, 0, len(matches))
	for _, match := range matches {
		sub := req
		sub.Resource = match
		res, err := i.doImport(ctx, sub)
		if err != nil {
			return domain.ImportResult{}, err
		}
		values = append(values, res.Values...)
	}
	return domain.Expanded(values), nil
}

// doImport loads a single resource, guarding the in-flight chain.
func (i *Importer) doImport(ctx context.Context, req domain.ImportRequest) (domain.ImportResult, error) {
	ctx, vertex := i.telemetry.Record(ctx, "import "+domain.FormatResource(req.Resource))

	value, chosen, err := i.load(ctx, req)
	if err == nil {
		vertex.Complete(nil)
		return domain.Loaded(value), nil
	}

	var (
		cycle   *domain.CircularImportError
		loadErr *domain.LoadError
	)
	switch {
	case errors.As(err, &cycle):
		vertex.Complete(err)
		return domain.ImportResult{}, err
	case req.IgnoreErrors:
		vertex.Log(domain.LogLevelWarn, err.Error())
		vertex.Complete(nil)
		i.logger.Debug(fmt.Sprintf("ignoring failed import of %s: %v", domain.FormatResource(req.Resource), err))
		return domain.Suppressed(), nil
	case errors.As(err, &loadErr):
		vertex.Complete(err)
		return domain.ImportResult{}, err
	default:
		resource := req.Resource
		if chosen != nil {
			resource = chosen
		}
		err = &domain.LoadError{
			Resource: resource,
			Source:   req.SourceResource,
			Type:     req.Type,
			Cause:    err,
		}
		vertex.Complete(err)
		return domain.ImportResult{}, err
	}
}

// load resolves a loader for req, picks the first located candidate that is
// not in flight and loads it. chosen is set once a candidate was picked.
func (i *Importer) load(ctx context.Context, req domain.ImportRequest) (value, chosen any, err error) {
	loader, err := i.loaders.Resolve(req.Resource, req.Type)
	if err != nil {
		return nil, nil, err
	}

	candidates := []any{req.Resource}
	if fl, ok := loader.(ports.FileLoader); ok && req.CurrentDir != "" {
		if name, ok := req.Resource.(string); ok {
			paths, err := fl.Locator().Locate(name, req.CurrentDir, true)
			if err != nil {
				return nil, nil, err
			}
			candidates = make([]any, 0, len(paths))
			for _, p := range paths {
				candidates = append(candidates, p)
			}
		}
	}

	found := false
	for _, c := range candidates {
		if c == nil || !reflect.ValueOf(c).Comparable() {
			return nil, nil, zerr.With(domain.ErrUncomparableResource, "resource_type", fmt.Sprintf("%T", c))
		}
		if !isInFlight(ctx, c) {
			chosen, found = c, true
			break
		}
	}
	if !found {
		return nil, nil, &domain.CircularImportError{
			Resource: candidates[0],
			Chain:    InFlight(ctx),
		}
	}

	i.logger.Debug(fmt.Sprintf("importing %s", domain.FormatResource(chosen)))
	value, err = loader.Load(withInFlight(ctx, chosen), chosen, req.Type, i)
	return value, chosen, err
}

// splitPattern separates the literal directory prefix of a pattern from the
// part that must be matched. subpath reports whether a separator precedes the
// first metacharacter.
func splitPattern(pattern string) (prefix, rest string, subpath bool) {
	idx := strings.IndexAny(pattern, fs.GlobChars)
	if idx < 0 {
		return pattern, "", false
	}
	j := strings.LastIndex(pattern[:idx], "/")
	switch j {
	case -1:
		return ".", "/" + pattern, false
	case 0:
		return "/", pattern, true
	}
	// The prefix is kept verbatim so rest still lines up with the pattern.
	return pattern[:j], pattern[j:], true
}
