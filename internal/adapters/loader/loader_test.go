package loader_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fresh/internal/adapters/fs"
	"go.trai.ch/fresh/internal/adapters/loader"
	"go.trai.ch/fresh/internal/adapters/logger"
	"go.trai.ch/fresh/internal/adapters/telemetry"
	"go.trai.ch/fresh/internal/core/domain"
	"go.trai.ch/fresh/internal/core/ports"
	"go.trai.ch/fresh/internal/engine/importer"
)

func writeConfig(t *testing.T, root, name, content string) string {
	t.Helper()
	path := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newImporter(searchPaths ...string) *importer.Importer {
	log := logger.New()
	log.SetOutput(io.Discard)
	locator := fs.NewLocator(searchPaths...)
	return importer.New(locator, loader.Default(locator, log), log, telemetry.NewNoOp())
}

func load(t *testing.T, ctx context.Context, dir, entry string) (domain.Document, error) {
	t.Helper()
	res, err := newImporter().Import(ctx, domain.ImportRequest{Resource: entry, CurrentDir: dir})
	if err != nil {
		return nil, err
	}
	doc, ok := res.Value().(domain.Document)
	require.True(t, ok, "unexpected result %T", res.Value())
	return doc, nil
}

func TestYAMLLoader_MergesImportsBeneathDocument(t *testing.T) {
	dir := t.TempDir()
	base := writeConfig(t, dir, "base.yaml", `
a: 1
nested:
  x: 1
  y: 1
`)
	app := writeConfig(t, dir, "app.yaml", `
imports:
  - base.yaml
b: 2
nested:
  y: 2
`)

	set := domain.NewResourceSet()
	doc, err := load(t, ports.ContextWithTracker(context.Background(), set), dir, "app.yaml")
	require.NoError(t, err)

	assert.Equal(t, domain.Document{
		"a": 1,
		"b": 2,
		"nested": map[string]any{
			"x": 1,
			"y": 2,
		},
	}, doc)
	assert.NotContains(t, doc, domain.ImportsKey)
	assert.Equal(t, []domain.TrackedResource{
		domain.FileResource(app),
		domain.FileResource(base),
	}, set.Resources())
}

func TestJSONCLoader_CommentsAndTypedImports(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "defaults.conf", "level: debug\nport: 80\n")
	writeConfig(t, dir, "app.jsonc", `{
	// Pull defaults from a YAML file with an unusual extension.
	"imports": [
		{"resource": "defaults.conf", "type": "yaml"},
	],
	"port": 8080,
}`)

	doc, err := load(t, context.Background(), dir, "app.jsonc")
	require.NoError(t, err)
	assert.Equal(t, domain.Document{"level": "debug", "port": float64(8080)}, doc)
}

func TestYAMLLoader_GlobImportsInNameOrder(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "conf.d/10-base.yaml", "name: base\nbase: true\n")
	writeConfig(t, dir, "conf.d/20-override.yaml", "name: override\n")
	writeConfig(t, dir, "conf.d/notes.txt", "ignored")
	writeConfig(t, dir, "app.yaml", "imports:\n  - conf.d/*.yaml\n")

	set := domain.NewResourceSet()
	doc, err := load(t, ports.ContextWithTracker(context.Background(), set), dir, "app.yaml")
	require.NoError(t, err)
	assert.Equal(t, domain.Document{"name": "override", "base": true}, doc)

	var globs int
	for _, r := range set.Resources() {
		if r.Kind == domain.KindGlob {
			globs++
			assert.Equal(t, filepath.Join(dir, "conf.d"), r.Path)
		}
	}
	assert.Equal(t, 1, globs)
}

func TestYAMLLoader_IgnoreErrors(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "app.yaml", `
imports:
  - resource: local.yaml
    ignore_errors: true
a: 1
`)

	doc, err := load(t, context.Background(), dir, "app.yaml")
	require.NoError(t, err)
	assert.Equal(t, domain.Document{"a": 1}, doc)

	writeConfig(t, dir, "strict.yaml", "imports: [local.yaml]\n")
	_, err = load(t, context.Background(), dir, "strict.yaml")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLoadFailed)
	assert.ErrorIs(t, err, domain.ErrResourceNotFound)
}

func TestYAMLLoader_CircularImport(t *testing.T) {
	dir := t.TempDir()
	a := writeConfig(t, dir, "a.yaml", "imports: [b.yaml]\n")
	b := writeConfig(t, dir, "b.yaml", "imports: [a.yaml]\n")

	ctx := context.Background()
	_, err := load(t, ctx, dir, "a.yaml")
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrCircularImport)

	var cycle *domain.CircularImportError
	require.ErrorAs(t, err, &cycle)
	assert.Equal(t, []any{a, b}, cycle.Chain)
	assert.Equal(t, a, cycle.Resource)
	assert.Empty(t, importer.InFlight(ctx))
}

func TestYAMLLoader_SearchPathOverride(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "vendor/app.yaml", "a: vendor\nb: vendor\n")
	writeConfig(t, root, "project/app.yaml", "imports: [app.yaml]\na: project\n")

	res, err := newImporter(filepath.Join(root, "vendor")).Import(context.Background(), domain.ImportRequest{
		Resource:   "app.yaml",
		CurrentDir: filepath.Join(root, "project"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.Document{"a": "project", "b": "vendor"}, res.Value())
}

func TestDirectoryLoader_ImportsSupportedFiles(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "conf.d/a.yaml", "a: 1\nshared: yaml\n")
	writeConfig(t, dir, "conf.d/b.json", `{"b": 2, "shared": "json"}`)
	writeConfig(t, dir, "conf.d/README.md", "# docs")
	writeConfig(t, dir, "conf.d/nested/c.yaml", "c: 3\n")
	writeConfig(t, dir, "app.yaml", "imports: [conf.d/]\n")

	set := domain.NewResourceSet()
	doc, err := load(t, ports.ContextWithTracker(context.Background(), set), dir, "app.yaml")
	require.NoError(t, err)
	assert.Equal(t, domain.Document{"a": 1, "b": float64(2), "shared": "json"}, doc)
	assert.Contains(t, set.Resources(), domain.DirectoryResource(filepath.Join(dir, "conf.d")))
}

func TestLoader_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "imports not a list", content: "imports: base.yaml\n", want: "imports must be a list"},
		{name: "entry without resource", content: "imports:\n  - type: yaml\n", want: "import entry requires a resource"},
		{name: "bad entry type", content: "imports:\n  - 42\n", want: "import entry must be a string or a mapping"},
		{name: "invalid yaml", content: "a: [1, 2\n", want: "failed to parse config file"},
		{name: "unsupported import", content: "imports: [base.toml]\n", want: "no loader supports resource"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, "app.yaml", tt.content)

			_, err := load(t, context.Background(), dir, "app.yaml")
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrLoadFailed)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestLoader_EmptyDocument(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "empty.yaml", "")

	doc, err := load(t, context.Background(), dir, "empty.yaml")
	require.NoError(t, err)
	assert.Empty(t, doc)
}

func TestResolver_Resolve(t *testing.T) {
	log := logger.New()
	log.SetOutput(io.Discard)
	resolver := loader.Default(fs.NewLocator(), log)

	l, err := resolver.Resolve("app.YML", "")
	require.NoError(t, err)
	assert.IsType(t, &loader.YAMLLoader{}, l)

	l, err = resolver.Resolve("app.conf", loader.JSONCType)
	require.NoError(t, err)
	assert.IsType(t, &loader.JSONCLoader{}, l)

	l, err = resolver.Resolve("conf.d/", "")
	require.NoError(t, err)
	assert.IsType(t, &loader.DirectoryLoader{}, l)

	_, err = resolver.Resolve("app.toml", "")
	require.Error(t, err)
	assert.ErrorContains(t, err, "no loader supports resource")

	_, err = resolver.Resolve(42, "")
	assert.Error(t, err)
}
