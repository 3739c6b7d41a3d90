// Package cache implements the freshness-gated configuration cache.
package cache

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.trai.ch/fresh/internal/core/domain"
	"go.trai.ch/fresh/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ConfigCache = (*ConfigCache)(nil)

// ConfigCache stores a compiled artifact together with a metadata file
// listing the resources it was built from.
type ConfigCache struct {
	path     string
	debug    bool
	checkers []ports.ResourceChecker
	mu       sync.RWMutex
}

// New creates a ConfigCache at path. Checkers are consulted in order.
func New(path string, debug bool, checkers ...ports.ResourceChecker) *ConfigCache {
	return &ConfigCache{
		path:     filepath.Clean(path),
		debug:    debug,
		checkers: checkers,
	}
}

// NewDefault creates a ConfigCache that validates tracked resources with self
// in debug mode. Outside debug mode an existing artifact is always reused.
func NewDefault(path string, debug bool, self ports.ResourceChecker) *ConfigCache {
	if !debug || self == nil {
		return New(path, debug)
	}
	return New(path, debug, self)
}

// Path returns the artifact path.
func (c *ConfigCache) Path() string {
	return c.path
}

// Debug reports whether freshness is validated against tracked resources.
func (c *ConfigCache) Debug() bool {
	return c.debug
}

// MetaPath returns the path of the metadata file.
func (c *ConfigCache) MetaPath() string {
	return c.path + domain.MetaSuffix
}

// IsFresh reports whether the artifact can be reused. Outside debug mode an
// existing artifact is fresh without consulting any checker.
func (c *ConfigCache) IsFresh() (bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.debug {
		if _, err := os.Stat(c.path); err == nil {
			return true, nil
		}
	}
	return c.checkResources()
}

func (c *ConfigCache) checkResources() (bool, error) {
	info, err := os.Stat(c.path)
	if err != nil {
		return false, nil
	}
	if len(c.checkers) == 0 {
		return true, nil
	}

	meta, err := c.readMeta()
	if err != nil {
		return false, nil
	}

	builtAt := info.ModTime()
	for _, res := range meta.Resources {
		fresh, err := c.check(res, builtAt)
		if err != nil {
			return false, err
		}
		if !fresh {
			return false, nil
		}
	}
	return true, nil
}

// check asks the first checker that supports res. Resources nobody supports
// are considered fresh.
func (c *ConfigCache) check(res domain.TrackedResource, builtAt time.Time) (bool, error) {
	for _, checker := range c.checkers {
		if checker.Supports(res) {
			return checker.IsFresh(res, builtAt)
		}
	}
	return true, nil
}

func (c *ConfigCache) readMeta() (*domain.CacheMeta, error) {
	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(c.MetaPath())
	if err != nil {
		return nil, err
	}
	var meta domain.CacheMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// Read returns the artifact content.
func (c *ConfigCache) Read() ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(c.path)
	if err != nil {
		err = zerr.Wrap(err, domain.ErrCacheReadFailed.Error())
		return nil, zerr.With(err, "path", c.path)
	}
	return data, nil
}

// Write stores content and the resources it depends on. Both files are
// replaced atomically, metadata first.
func (c *ConfigCache) Write(content []byte, resources []domain.TrackedResource) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if resources == nil {
		resources = []domain.TrackedResource{}
	}
	meta, err := json.MarshalIndent(domain.CacheMeta{Resources: resources}, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}

	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		err = zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
		return zerr.With(err, "directory", dir)
	}

	if err := writeAtomic(c.MetaPath(), meta); err != nil {
		return err
	}
	return writeAtomic(c.path, content)
}

// Remove deletes the artifact and its metadata. Missing files are ignored.
func (c *ConfigCache) Remove() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, p := range []string{c.path, c.MetaPath()} {
		if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return zerr.With(zerr.Wrap(err, "failed to remove cache file"), "path", p)
		}
	}
	return nil
}

func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		err = zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
		return zerr.With(err, "path", path)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		err = zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
		return zerr.With(err, "path", path)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		err = zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
		return zerr.With(err, "path", path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		err = zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
		return zerr.With(err, "path", path)
	}
	return nil
}
