package sys

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestWriteFileCreatesParents(t *testing.T) {
	chdir(t, t.TempDir())

	require.NoError(t, WriteFile("data/nested/theme.yaml", []byte("alpha: 1\n")))
	assert.True(t, FileExists("data/nested/theme.yaml"))
	assert.False(t, FileExists("data/nested"))

	got, err := ReadFile("data/nested/theme.yaml")
	require.NoError(t, err)
	assert.Equal(t, "alpha: 1\n", string(got))
}

func TestWriteFileRefusesAbsolute(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.txt")
	err := WriteFile(path, []byte("x"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAbsolutePath))
	assert.False(t, FileExists(path))
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestUniqueFiles(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "a", "b"), 0o755))
	for _, p := range []string{"one.png", "a/two.png", "a/b/three.lua"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, p), nil, 0o644))
	}

	files, err := UniqueFiles(root)
	require.NoError(t, err)
	assert.Len(t, files, 3)
	assert.Equal(t, filepath.Join(root, "a", "b", "three.lua"), files["three.lua"])

	files, err = UniqueFiles(filepath.Join(root, "missing"))
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestAbsPath(t *testing.T) {
	abs, err := AbsPath("x")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(abs))
}
