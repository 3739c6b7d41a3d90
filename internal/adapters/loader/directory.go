package loader

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/fresh/internal/adapters/fs"
	"go.trai.ch/fresh/internal/core/domain"
	"go.trai.ch/fresh/internal/core/ports"
	"go.trai.ch/zerr"
)

// DirectoryType is the type hint selecting the directory loader.
const DirectoryType = "directory"

var _ ports.FileLoader = (*DirectoryLoader)(nil)

// DirectoryLoader imports every file directly inside a directory whose
// extension is in exts, in name order, and merges them.
type DirectoryLoader struct {
	locator ports.Locator
	logger  ports.Logger
	exts    []string
}

// NewDirectoryLoader creates a DirectoryLoader for the given extensions.
func NewDirectoryLoader(locator ports.Locator, logger ports.Logger, exts ...string) *DirectoryLoader {
	return &DirectoryLoader{
		locator: locator,
		logger:  logger,
		exts:    exts,
	}
}

// Supports reports whether typ is "directory" or, without a type, the
// resource is a path ending in a separator.
func (l *DirectoryLoader) Supports(resource any, typ string) bool {
	if typ != "" {
		return typ == DirectoryType
	}
	path, ok := resource.(string)
	return ok && strings.HasSuffix(path, "/")
}

// Locator returns the locator used to resolve directories.
func (l *DirectoryLoader) Locator() ports.Locator {
	return l.locator
}

// Load imports the directory's files through imp.
func (l *DirectoryLoader) Load(ctx context.Context, resource any, _ string, imp ports.Importer) (any, error) {
	path, ok := resource.(string)
	if !ok {
		return nil, zerr.With(domain.ErrInvalidResource, "resource_type", fmt.Sprintf("%T", resource))
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve path"), "path", path)
	}
	ports.TrackResource(ctx, domain.DirectoryResource(abs))

	it := fs.NewDirIterator(abs, fs.WithMaxDepth(1))
	layers := []domain.Document{}
	for file, info, ok := it.NextEntry(); ok; file, info, ok = it.NextEntry() {
		if info.IsDir() || !slices.Contains(l.exts, strings.ToLower(filepath.Ext(file))) {
			continue
		}
		res, err := imp.Import(ctx, domain.ImportRequest{
			Resource:       file,
			SourceResource: abs,
			CurrentDir:     abs,
		})
		if err != nil {
			return nil, err
		}
		docs, err := domain.DocumentsFrom(res.Value())
		if err != nil {
			return nil, zerr.With(err, "import", file)
		}
		layers = append(layers, docs...)
	}

	l.logger.Debug(fmt.Sprintf("loaded %d documents from %s", len(layers), abs))
	return domain.MergeDocuments(layers...), nil
}
