package fs_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fresh/internal/adapters/fs"
	"go.trai.ch/fresh/internal/core/domain"
)

func TestLocator_Locate(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "current/app.yaml", "shared/app.yaml", "shared/only.yaml")
	current := filepath.Join(root, "current")
	shared := filepath.Join(root, "shared")

	locator := fs.NewLocator(shared)

	t.Run("first match prefers current dir", func(t *testing.T) {
		got, err := locator.Locate("app.yaml", current, false)
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(current, "app.yaml")}, got)
	})

	t.Run("all matches in search order", func(t *testing.T) {
		got, err := locator.Locate("app.yaml", current, true)
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(current, "app.yaml"), filepath.Join(shared, "app.yaml")}, got)
	})

	t.Run("falls back to search paths", func(t *testing.T) {
		got, err := locator.Locate("only.yaml", current, false)
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(shared, "only.yaml")}, got)
	})

	t.Run("directory names resolve", func(t *testing.T) {
		got, err := locator.Locate(".", current, true)
		require.NoError(t, err)
		assert.Equal(t, current, got[0])
	})

	t.Run("absolute path", func(t *testing.T) {
		abs := filepath.Join(shared, "only.yaml")
		got, err := locator.Locate(abs, "", false)
		require.NoError(t, err)
		assert.Equal(t, []string{abs}, got)
	})

	t.Run("not found reports tried paths", func(t *testing.T) {
		_, err := locator.Locate("missing.yaml", current, false)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrResourceNotFound)

		var nf *domain.NotFoundError
		require.True(t, errors.As(err, &nf))
		assert.Equal(t, "missing.yaml", nf.Name)
		assert.Equal(t, []string{current, shared}, nf.Tried)
	})

	t.Run("missing absolute path", func(t *testing.T) {
		_, err := locator.Locate(filepath.Join(root, "nope.yaml"), current, false)
		assert.ErrorIs(t, err, domain.ErrResourceNotFound)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := locator.Locate("", current, false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid resource")
	})
}

func TestLocator_AddPaths(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "extra/x.yaml")

	locator := fs.NewLocator()
	_, err := locator.Locate("x.yaml", "", false)
	require.Error(t, err)

	locator.AddPaths(filepath.Join(root, "extra"))
	got, err := locator.Locate("x.yaml", "", false)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "extra", "x.yaml")}, got)
	assert.Equal(t, []string{filepath.Join(root, "extra")}, locator.Paths())
}
