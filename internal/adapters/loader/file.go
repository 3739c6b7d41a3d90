// Package loader provides the configuration loaders the importer delegates to.
package loader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/fresh/internal/core/domain"
	"go.trai.ch/fresh/internal/core/ports"
	"go.trai.ch/zerr"
)

// decodeFunc parses raw file content into a document.
type decodeFunc func(data []byte) (domain.Document, error)

// fileLoader holds the behavior shared by the per-format loaders: resolve the
// path, track the file, decode it and merge its imports.
type fileLoader struct {
	typ     string
	exts    []string
	locator ports.Locator
	logger  ports.Logger
	decode  decodeFunc
}

// Supports reports whether resource is a path with one of the loader's
// extensions, or typ names the loader's format.
func (l *fileLoader) Supports(resource any, typ string) bool {
	if typ != "" {
		return typ == l.typ
	}
	path, ok := resource.(string)
	if !ok {
		return false
	}
	return slices.Contains(l.exts, strings.ToLower(filepath.Ext(path)))
}

// Locator returns the locator used to resolve resources.
func (l *fileLoader) Locator() ports.Locator {
	return l.locator
}

// Extensions returns the file extensions this loader handles.
func (l *fileLoader) Extensions() []string {
	return l.exts
}

// Load reads and decodes the file, then merges its imports beneath it.
func (l *fileLoader) Load(ctx context.Context, resource any, _ string, imp ports.Importer) (any, error) {
	path, ok := resource.(string)
	if !ok {
		return nil, zerr.With(domain.ErrInvalidResource, "resource_type", fmt.Sprintf("%T", resource))
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve path"), "path", path)
	}

	data, err := os.ReadFile(abs) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", abs)
	}
	ports.TrackResource(ctx, domain.FileResource(abs))

	doc, err := l.decode(data)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", abs)
	}

	l.logger.Debug(fmt.Sprintf("loaded %s document %s", l.typ, abs))
	return resolveImports(ctx, doc, abs, filepath.Dir(abs), imp)
}

// resolveImports imports every entry of doc's imports list, in order, and
// merges doc over them. The imports key is dropped from the result.
func resolveImports(
	ctx context.Context,
	doc domain.Document,
	source, dir string,
	imp ports.Importer,
) (domain.Document, error) {
	entries, err := parseImports(doc[domain.ImportsKey])
	if err != nil {
		return nil, zerr.With(err, "source", source)
	}

	layers := make([]domain.Document, 0, len(entries)+1)
	for _, entry := range entries {
		res, err := imp.Import(ctx, domain.ImportRequest{
			Resource:       entry.Resource,
			Type:           entry.Type,
			IgnoreErrors:   entry.IgnoreErrors,
			SourceResource: source,
			CurrentDir:     dir,
		})
		if err != nil {
			return nil, err
		}
		docs, err := domain.DocumentsFrom(res.Value())
		if err != nil {
			return nil, zerr.With(zerr.With(err, "import", entry.Resource), "source", source)
		}
		layers = append(layers, docs...)
	}

	own := make(domain.Document, len(doc))
	for k, v := range doc {
		if k != domain.ImportsKey {
			own[k] = v
		}
	}
	layers = append(layers, own)
	return domain.MergeDocuments(layers...), nil
}
