package cache_test

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fresh/internal/adapters/cache"
	"go.trai.ch/fresh/internal/adapters/checker"
	"go.trai.ch/fresh/internal/adapters/fs"
	"go.trai.ch/fresh/internal/core/domain"
	"go.trai.ch/fresh/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeCache(t *testing.T, path string, resources ...domain.TrackedResource) {
	t.Helper()
	require.NoError(t, cache.New(path, true).Write([]byte(`{"a":1}`), resources))
}

func TestConfigCache_NonDebugSkipsCheckers(t *testing.T) {
	ctrl := gomock.NewController(t)
	// No expectations: any checker call fails the test.
	mockChecker := mocks.NewMockResourceChecker(ctrl)

	path := filepath.Join(t.TempDir(), "cache.json")
	writeCache(t, path, domain.FileResource("/does/not/exist"))

	c := cache.New(path, false, mockChecker)
	fresh, err := c.IsFresh()
	require.NoError(t, err)
	assert.True(t, fresh)
}

func TestConfigCache_DebugEvaluatesCheckers(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockChecker := mocks.NewMockResourceChecker(ctrl)

	path := filepath.Join(t.TempDir(), "cache.json")
	res := domain.FileResource("/etc/app.yaml")
	writeCache(t, path, res)

	mockChecker.EXPECT().Supports(res).Return(true)
	mockChecker.EXPECT().IsFresh(res, gomock.Any()).Return(false, nil)

	c := cache.New(path, true, mockChecker)
	fresh, err := c.IsFresh()
	require.NoError(t, err)
	assert.False(t, fresh)
}

func TestConfigCache_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")

	for _, debug := range []bool{false, true} {
		fresh, err := cache.New(path, debug).IsFresh()
		require.NoError(t, err)
		assert.False(t, fresh, "debug=%v", debug)
	}
}

func TestConfigCache_NoCheckersIsFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	writeCache(t, path)

	fresh, err := cache.New(path, true).IsFresh()
	require.NoError(t, err)
	assert.True(t, fresh)
}

func TestConfigCache_CheckerOrderAndUnsupported(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := mocks.NewMockResourceChecker(ctrl)
	second := mocks.NewMockResourceChecker(ctrl)

	path := filepath.Join(t.TempDir(), "cache.json")
	marker := domain.MarkerResource("env")
	file := domain.FileResource("/etc/app.yaml")
	writeCache(t, path, marker, file)

	// Nobody supports the marker, so it is ignored.
	first.EXPECT().Supports(marker).Return(false)
	second.EXPECT().Supports(marker).Return(false)
	// The first supporting checker decides; the second is never asked.
	first.EXPECT().Supports(file).Return(true)
	first.EXPECT().IsFresh(file, gomock.Any()).Return(true, nil)

	fresh, err := cache.New(path, true, first, second).IsFresh()
	require.NoError(t, err)
	assert.True(t, fresh)
}

func TestConfigCache_CheckerErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockChecker := mocks.NewMockResourceChecker(ctrl)

	path := filepath.Join(t.TempDir(), "cache.json")
	res := domain.ContentResource("/etc/app.yaml", "abc")
	writeCache(t, path, res)

	boom := errors.New("checker failed")
	mockChecker.EXPECT().Supports(res).Return(true)
	mockChecker.EXPECT().IsFresh(res, gomock.Any()).Return(false, boom)

	_, err := cache.New(path, true, mockChecker).IsFresh()
	assert.ErrorIs(t, err, boom)
}

func TestConfigCache_InvalidMetadataIsStale(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockChecker := mocks.NewMockResourceChecker(ctrl)

	path := filepath.Join(t.TempDir(), "cache.json")
	writeCache(t, path)
	require.NoError(t, os.WriteFile(path+domain.MetaSuffix, []byte("{not json"), 0o600))

	fresh, err := cache.New(path, true, mockChecker).IsFresh()
	require.NoError(t, err)
	assert.False(t, fresh)

	require.NoError(t, os.Remove(path+domain.MetaSuffix))
	fresh, err = cache.New(path, true, mockChecker).IsFresh()
	require.NoError(t, err)
	assert.False(t, fresh)
}

func TestConfigCache_WriteAndRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "cache.json")
	c := cache.New(path, false)
	resources := []domain.TrackedResource{
		domain.FileResource("/etc/app.yaml"),
		domain.GlobResource("/etc/app", "/*.yaml", false, "0123"),
	}

	require.NoError(t, c.Write([]byte(`{"key":"value"}`), resources))

	data, err := c.Read()
	require.NoError(t, err)
	assert.JSONEq(t, `{"key":"value"}`, string(data))

	raw, err := os.ReadFile(c.MetaPath())
	require.NoError(t, err)
	var meta domain.CacheMeta
	require.NoError(t, json.Unmarshal(raw, &meta))
	assert.Equal(t, resources, meta.Resources)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 2, "no temporary files are left behind")
}

func TestConfigCache_ReadMissing(t *testing.T) {
	c := cache.New(filepath.Join(t.TempDir(), "cache.json"), false)

	_, err := c.Read()
	assert.ErrorContains(t, err, "failed to read cache")
}

func TestConfigCache_Remove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	writeCache(t, path)
	c := cache.New(path, false)

	require.NoError(t, c.Remove())
	require.NoError(t, c.Remove())

	fresh, err := c.IsFresh()
	require.NoError(t, err)
	assert.False(t, fresh)
}

func TestConfigCache_DebugDetectsTouchedFile(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "app.yaml")
	require.NoError(t, os.WriteFile(source, []byte("a: 1"), 0o600))

	path := filepath.Join(dir, ".fresh", "cache.json")
	self := checker.NewSelfChecking(fs.NewHasher(fs.NewWalker()))
	c := cache.NewDefault(path, true, self)
	require.NoError(t, c.Write([]byte(`{"a":1}`), []domain.TrackedResource{domain.FileResource(source)}))

	fresh, err := c.IsFresh()
	require.NoError(t, err)
	assert.True(t, fresh)

	future := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(source, future, future))

	fresh, err = c.IsFresh()
	require.NoError(t, err)
	assert.False(t, fresh)

	// Outside debug mode the existing artifact is still reused.
	fresh, err = cache.NewDefault(path, false, self).IsFresh()
	require.NoError(t, err)
	assert.True(t, fresh)
}

func TestOpener_Open(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockChecker := mocks.NewMockResourceChecker(ctrl)
	opener := cache.NewOpener(mockChecker)

	path := filepath.Join(t.TempDir(), "cache.json")
	c := opener.Open(path, true)
	assert.Equal(t, path, c.Path())

	concrete, ok := c.(*cache.ConfigCache)
	require.True(t, ok)
	assert.True(t, concrete.Debug())
}
