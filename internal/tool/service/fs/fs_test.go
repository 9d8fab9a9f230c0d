package fs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic_ReplacesAndSetsMode(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0o600))

	fsys := NewOSFileSystem()
	require.NoError(t, fsys.WriteFileAtomic(target, []byte("new content"), 0o640))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "new content", string(got))

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not be left behind")
}

func TestWriteFileAtomicFrom_CountsBytes(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "stream.txt")

	n, err := NewOSFileSystem().WriteFileAtomicFrom(target, strings.NewReader("0123456789"), 0o644)
	require.NoError(t, err)
	assert.Equal(t, int64(10), n)
}

func TestWriteFileAtomic_MissingDir(t *testing.T) {
	err := NewOSFileSystem().WriteFileAtomic(filepath.Join(t.TempDir(), "nope", "f"), nil, 0o644)
	var writeErr *AtomicWriteError
	require.ErrorAs(t, err, &writeErr)
	assert.Equal(t, StageCreateTemp, writeErr.Stage)
}

func TestReadFileRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello world"), 0o644))
	fsys := NewOSFileSystem()

	tests := []struct {
		name          string
		offset, limit int64
		want          string
	}{
		{"whole file", 0, 0, "hello world"},
		{"prefix", 0, 5, "hello"},
		{"middle", 6, 3, "wor"},
		{"offset to end", 6, 0, "world"},
		{"past end", 50, 4, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fsys.ReadFileRange(path, tt.offset, tt.limit)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}

	_, err := fsys.ReadFileRange(path, -1, 0)
	assert.ErrorIs(t, err, ErrInvalidOffset)
}

func TestMapFile(t *testing.T) {
	dir := t.TempDir()
	fsys := NewOSFileSystem()

	full := filepath.Join(dir, "full.txt")
	require.NoError(t, os.WriteFile(full, []byte("a\nb\n"), 0o644))
	m, err := fsys.MapFile(full)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", string(m.Bytes()))
	require.NoError(t, m.Close())
	assert.NoError(t, m.Close())

	empty := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	m, err = fsys.MapFile(empty)
	require.NoError(t, err)
	assert.Empty(t, m.Bytes())
	assert.NoError(t, m.Close())

	_, err = fsys.MapFile(filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
