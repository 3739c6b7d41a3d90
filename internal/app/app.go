// Package app implements the application layer for fresh.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"go.trai.ch/fresh/internal/adapters/watcher" //nolint:depguard // Debouncing is part of the watch use case
	"go.trai.ch/fresh/internal/core/domain"
	"go.trai.ch/fresh/internal/core/ports"
	"go.trai.ch/fresh/internal/engine/importer"
	"go.trai.ch/zerr"
)

// SearchPaths accepts additional locator search directories.
type SearchPaths interface {
	AddPaths(paths ...string)
}

// CompileOptions configures a compilation.
type CompileOptions struct {
	// Dir is the directory the entry and a relative CachePath are resolved
	// against. It defaults to the working directory.
	Dir string
	// CachePath is the cache artifact location. It defaults to domain.DefaultCacheFile.
	CachePath string
	// Debug validates the cache against its tracked resources.
	Debug bool
	// Force recompiles even when the cache is fresh.
	Force bool
}

// App represents the main application logic.
type App struct {
	importer  *importer.Importer
	caches    ports.CacheOpener
	watchers  ports.WatcherFactory
	paths     SearchPaths
	logger    ports.Logger
	telemetry ports.Telemetry

	debounce time.Duration
}

// New creates a new App instance.
func New(
	imp *importer.Importer,
	caches ports.CacheOpener,
	watchers ports.WatcherFactory,
	paths SearchPaths,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		importer:  imp,
		caches:    caches,
		watchers:  watchers,
		paths:     paths,
		logger:    logger,
		telemetry: telemetry,
		debounce:  watcher.DefaultDebounceWindow,
	}
}

// WithDebounce sets the window used to coalesce file changes in Watch.
func (a *App) WithDebounce(window time.Duration) *App {
	a.debounce = window
	return a
}

// AddSearchPaths appends directories the locator searches after the current one.
func (a *App) AddSearchPaths(paths ...string) {
	if len(paths) > 0 && a.paths != nil {
		a.paths.AddPaths(paths...)
	}
}

// Compile returns the compiled document for entry, reusing the cache when it is fresh.
func (a *App) Compile(ctx context.Context, entry string, opts CompileOptions) (*domain.Compiled, error) {
	opts, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	cache := a.caches.Open(opts.CachePath, opts.Debug)

	ctx, vertex := a.telemetry.Record(ctx, "compile "+entry)

	if !opts.Force {
		if compiled, ok := a.fromCache(cache, entry); ok {
			vertex.Cached()
			vertex.Complete(nil)
			return compiled, nil
		}
	}

	compiled, err := a.build(ctx, entry, opts.Dir)
	if err != nil {
		vertex.Complete(err)
		return nil, zerr.With(zerr.Wrap(err, "failed to compile configuration"), "entry", entry)
	}

	data, err := json.MarshalIndent(compiled, "", "  ")
	if err != nil {
		vertex.Complete(err)
		return nil, zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}
	if err := cache.Write(data, compiled.Resources); err != nil {
		vertex.Complete(err)
		return nil, err
	}

	a.logger.Info(fmt.Sprintf("compiled %s (%d tracked resources)", entry, len(compiled.Resources)))
	vertex.Complete(nil)
	return compiled, nil
}

// Check reports whether the cache for entry can be reused.
func (a *App) Check(_ context.Context, entry string, opts CompileOptions) (bool, error) {
	opts, err := resolveOptions(opts)
	if err != nil {
		return false, err
	}
	_, ok := a.fromCache(a.caches.Open(opts.CachePath, opts.Debug), entry)
	return ok, nil
}

// Glob expands pattern relative to opts.CurrentDir, or the working directory.
func (a *App) Glob(ctx context.Context, pattern string, opts importer.GlobOptions) ([]string, error) {
	if opts.CurrentDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, zerr.Wrap(err, "failed to get working directory")
		}
		opts.CurrentDir = cwd
	}
	return a.importer.Glob(ctx, pattern, opts)
}

// Watch compiles entry and recompiles it whenever one of its tracked
// resources changes, until ctx is done. onCompile receives every outcome.
// Compilation failures after the first are reported but do not stop watching.
func (a *App) Watch(
	ctx context.Context,
	entry string,
	opts CompileOptions,
	onCompile func(*domain.Compiled, error),
) error {
	opts.Force = true

	compiled, err := a.Compile(ctx, entry, opts)
	onCompile(compiled, err)
	if err != nil {
		return err
	}

	changes := make(chan []string, 1)
	debouncer := watcher.NewDebouncer(a.debounce, func(paths []string) {
		select {
		case changes <- paths:
		default:
			// A recompilation is already pending.
		}
	})

	resources := compiled.Resources
	for {
		w, err := a.startWatcher(ctx, resources, debouncer)
		if err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			_ = w.Stop()
			return nil
		case paths := <-changes:
			_ = w.Stop()
			a.logger.Info(fmt.Sprintf("change detected in %s, recompiling", strings.Join(paths, ", ")))

			compiled, err := a.Compile(ctx, entry, opts)
			onCompile(compiled, err)
			if err != nil {
				a.logger.Error(err)
				continue
			}
			resources = compiled.Resources
		}
	}
}

// startWatcher watches the directories holding resources and feeds relevant
// changes to the debouncer.
func (a *App) startWatcher(
	ctx context.Context,
	resources []domain.TrackedResource,
	debouncer *watcher.Debouncer,
) (ports.Watcher, error) {
	w, err := a.watchers()
	if err != nil {
		return nil, err
	}
	if err := w.Start(ctx, WatchDirs(resources)); err != nil {
		_ = w.Stop()
		return nil, err
	}

	go func() {
		for event := range w.Events() {
			if Affects(resources, event.Path) {
				a.logger.Debug(fmt.Sprintf("tracked path changed: %s", event.Path))
				debouncer.Add(event.Path)
			}
		}
	}()
	return w, nil
}

// WatchDirs returns the existing directories to watch for resources, sorted.
func WatchDirs(resources []domain.TrackedResource) []string {
	var dirs []string
	for _, r := range resources {
		var dir string
		switch r.Kind {
		case domain.KindDirectory, domain.KindGlob:
			dir = r.Path
		case domain.KindFile, domain.KindExistence, domain.KindContent:
			dir = filepath.Dir(r.Path)
		default:
			continue
		}
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			continue
		}
		dirs = append(dirs, filepath.Clean(dir))
	}
	slices.Sort(dirs)
	return slices.Compact(dirs)
}

// Affects reports whether a change at path can invalidate one of resources.
func Affects(resources []domain.TrackedResource, path string) bool {
	path = filepath.Clean(path)
	for _, r := range resources {
		switch r.Kind {
		case domain.KindFile, domain.KindExistence:
			if path == filepath.Clean(r.Path) {
				return true
			}
		case domain.KindDirectory, domain.KindGlob, domain.KindContent:
			root := filepath.Clean(r.Path)
			if path == root || strings.HasPrefix(path, root+string(filepath.Separator)) {
				return true
			}
		}
	}
	return false
}

// fromCache returns the cached compilation of entry when the cache is fresh
// and was built for the same entry.
func (a *App) fromCache(cache ports.ConfigCache, entry string) (*domain.Compiled, bool) {
	fresh, err := cache.IsFresh()
	if err != nil {
		a.logger.Warn(fmt.Sprintf("cache freshness check failed, recompiling: %v", err))
		return nil, false
	}
	if !fresh {
		a.logger.Debug(fmt.Sprintf("cache %s is stale", cache.Path()))
		return nil, false
	}

	data, err := cache.Read()
	if err != nil {
		a.logger.Warn(fmt.Sprintf("cache unreadable, recompiling: %v", err))
		return nil, false
	}
	var compiled domain.Compiled
	if err := json.Unmarshal(data, &compiled); err != nil {
		a.logger.Warn(fmt.Sprintf("cache corrupt, recompiling: %v", err))
		return nil, false
	}
	if compiled.Entry != entry {
		a.logger.Debug(fmt.Sprintf("cache %s was built for %s", cache.Path(), compiled.Entry))
		return nil, false
	}
	if compiled.Document == nil {
		compiled.Document = domain.Document{}
	}
	compiled.FromCache = true
	return &compiled, true
}

// build imports entry with a fresh resource tracker.
func (a *App) build(ctx context.Context, entry, dir string) (*domain.Compiled, error) {
	set := domain.NewResourceSet()
	ctx = ports.ContextWithTracker(ctx, set)

	res, err := a.importer.Import(ctx, domain.ImportRequest{
		Resource:   entry,
		CurrentDir: dir,
	})
	if err != nil {
		return nil, err
	}

	docs, err := domain.DocumentsFrom(res.Value())
	if err != nil {
		return nil, err
	}

	return &domain.Compiled{
		Entry:     entry,
		Document:  domain.MergeDocuments(docs...),
		Resources: set.Resources(),
		BuiltAt:   time.Now(),
	}, nil
}

func resolveOptions(opts CompileOptions) (CompileOptions, error) {
	if opts.Dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return opts, zerr.Wrap(err, "failed to get working directory")
		}
		opts.Dir = cwd
	}
	if opts.CachePath == "" {
		opts.CachePath = domain.DefaultCacheFile
	}
	if !filepath.IsAbs(opts.CachePath) {
		opts.CachePath = filepath.Join(opts.Dir, opts.CachePath)
	}
	return opts, nil
}
