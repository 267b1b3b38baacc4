package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	return path
}

func TestFindFilesByExtension(t *testing.T) {
	dir := t.TempDir()
	b := touch(t, filepath.Join(dir, "b.hcl"))
	a := touch(t, filepath.Join(dir, "nested", "a.hcl"))
	touch(t, filepath.Join(dir, "notes.txt"))

	files, err := FindFilesByExtension(dir, ".hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{b, a}, files)

	assert.Panics(t, func() { _, _ = FindFilesByExtension(dir, "") })
}

func TestExpandPaths(t *testing.T) {
	dir := t.TempDir()
	single := touch(t, filepath.Join(dir, "single.manifest"))
	x := touch(t, filepath.Join(dir, "lib", "x.hcl"))
	y := touch(t, filepath.Join(dir, "lib", "y.hcl"))
	touch(t, filepath.Join(dir, "lib", "readme.md"))

	out, err := ExpandPaths([]string{single, filepath.Join(dir, "lib")}, ".hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{single, x, y}, out)

	_, err = ExpandPaths([]string{filepath.Join(dir, "absent")}, ".hcl")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
