package media

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeClip(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestImport_CopiesClip(t *testing.T) {
	src := writeClip(t, "capture.MOV", "frames")
	lib := NewLibrary(filepath.Join(t.TempDir(), "media"))

	dst, err := lib.Import(src)
	require.NoError(t, err)

	assert.True(t, filepath.IsAbs(dst))
	assert.True(t, strings.HasPrefix(filepath.Base(dst), "vlog-"))
	assert.Equal(t, ".mov", filepath.Ext(dst))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "frames", string(data))

	_, err = os.Stat(src)
	assert.NoError(t, err, "source clip must be kept")
}

func TestImport_DefaultExtension(t *testing.T) {
	src := writeClip(t, "capture", "x")
	lib := &Library{Dir: t.TempDir(), NewID: func() (string, error) { return "fixed", nil }}

	dst, err := lib.Import(src)
	require.NoError(t, err)
	assert.Equal(t, "vlog-fixed.mov", filepath.Base(dst))
}

func TestImport_UniqueNames(t *testing.T) {
	src := writeClip(t, "capture.mp4", "x")
	lib := NewLibrary(t.TempDir())

	first, err := lib.Import(src)
	require.NoError(t, err)
	require.NoError(t, lib.Remove(first))

	second, err := lib.Import(src)
	require.NoError(t, err)
	third, err := lib.Import(src)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NotEqual(t, second, third)
}

func TestImport_RefusesToOverwrite(t *testing.T) {
	src := writeClip(t, "capture.mov", "new")
	dir := t.TempDir()
	existing := filepath.Join(dir, "vlog-dup.mov")
	require.NoError(t, os.WriteFile(existing, []byte("old"), 0o644))

	lib := &Library{Dir: dir, NewID: func() (string, error) { return "dup", nil }}
	_, err := lib.Import(src)
	require.Error(t, err)

	data, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))
}

func TestImport_MissingSource(t *testing.T) {
	lib := NewLibrary(t.TempDir())
	_, err := lib.Import(filepath.Join(t.TempDir(), "missing.mov"))
	assert.Error(t, err)
}

func TestImport_DirectorySource(t *testing.T) {
	lib := NewLibrary(t.TempDir())
	_, err := lib.Import(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is a directory")
}

func TestImport_NoDir(t *testing.T) {
	src := writeClip(t, "capture.mov", "x")
	_, err := (&Library{}).Import(src)
	assert.Error(t, err)
}

func TestRemove_Idempotent(t *testing.T) {
	src := writeClip(t, "capture.mov", "x")
	lib := NewLibrary(t.TempDir())

	dst, err := lib.Import(src)
	require.NoError(t, err)

	require.NoError(t, lib.Remove(dst))
	_, err = os.Stat(dst)
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, lib.Remove(dst))
}
