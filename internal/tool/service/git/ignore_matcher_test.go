package git

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Cyclone1070/gitfs/internal/tool/service/fs"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockFileSystem serves file contents from memory.
type mockFileSystem struct {
	files   map[string]string
	readErr error
}

func (m *mockFileSystem) ReadFileRange(path string, offset, limit int64) ([]byte, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	data, ok := m.files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return []byte(data), nil
}

func TestIgnoreMatcher_RootRules(t *testing.T) {
	mfs := &mockFileSystem{files: map[string]string{
		"/repo/.gitignore": "# build output\n*.log\nbuild/\n\n!keep.log\n",
	}}
	m, err := NewIgnoreMatcher("/repo", "/repo", "", mfs, nil)
	require.NoError(t, err)

	tests := []struct {
		path  string
		isDir bool
		want  bool
	}{
		{"/repo/app.log", false, true},
		{"/repo/keep.log", false, false},
		{"/repo/src/deep/trace.log", false, true},
		{"/repo/build", true, true},
		{"/repo/build", false, false},
		{"/repo/main.go", false, false},
		{"/repo", true, false},
		{"/elsewhere/app.log", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, m.ShouldIgnore(tt.path, tt.isDir))
		})
	}
}

func TestIgnoreMatcher_NestedOverrides(t *testing.T) {
	mfs := &mockFileSystem{files: map[string]string{
		"/repo/.gitignore":     "*.tmp\n",
		"/repo/sub/.gitignore": "!special.tmp\n",
		"/repo/sub/.ignore":    "local.txt\n",
	}}
	m, err := NewIgnoreMatcher("/repo", "/repo", "", mfs, nil)
	require.NoError(t, err)

	// sub rules are not known until the directory is visited
	assert.True(t, m.ShouldIgnore("/repo/sub/special.tmp", false))
	assert.False(t, m.ShouldIgnore("/repo/sub/local.txt", false))

	require.NoError(t, m.LoadDir("/repo/sub"))
	assert.False(t, m.ShouldIgnore("/repo/sub/special.tmp", false))
	assert.True(t, m.ShouldIgnore("/repo/sub/other.tmp", false))
	assert.True(t, m.ShouldIgnore("/repo/sub/local.txt", false))
	assert.False(t, m.ShouldIgnore("/repo/local.txt", false), "nested rules only apply below their directory")
}

func TestIgnoreMatcher_StartBelowRepoRoot(t *testing.T) {
	mfs := &mockFileSystem{files: map[string]string{
		"/repo/.gitignore":        "vendor/\n",
		"/repo/a/.gitignore":      "*.gen.go\n",
		"/repo/.git/info/exclude": "secret.env\n",
	}}
	m, err := NewIgnoreMatcher("/repo", "/repo/a/b", "/repo", mfs, nil)
	require.NoError(t, err)

	assert.True(t, m.ShouldIgnore("/repo/a/b/x.gen.go", false))
	assert.True(t, m.ShouldIgnore("/repo/a/b/vendor", true))
	assert.True(t, m.ShouldIgnore("/repo/a/b/secret.env", false))
	assert.False(t, m.ShouldIgnore("/repo/a/b/main.go", false))
}

func TestIgnoreMatcher_GlobalLowestPrecedence(t *testing.T) {
	global := []gitignore.Pattern{gitignore.ParsePattern("*.bak", nil), gitignore.ParsePattern("*.swp", nil)}
	mfs := &mockFileSystem{files: map[string]string{
		"/repo/.gitignore": "!important.bak\n",
	}}
	m, err := NewIgnoreMatcher("/repo", "/repo", "", mfs, global)
	require.NoError(t, err)

	assert.True(t, m.ShouldIgnore("/repo/x.swp", false))
	assert.True(t, m.ShouldIgnore("/repo/old.bak", false))
	assert.False(t, m.ShouldIgnore("/repo/important.bak", false))
}

func TestIgnoreMatcher_ReadError(t *testing.T) {
	mfs := &mockFileSystem{readErr: os.ErrPermission}
	_, err := NewIgnoreMatcher("/repo", "/repo", "", mfs, nil)

	var readErr *IgnoreFileReadError
	require.ErrorAs(t, err, &readErr)
	assert.ErrorIs(t, err, os.ErrPermission)
}

func TestIgnoreMatcher_RealFileSystem(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("out\r\n"), 0o644))

	m, err := NewIgnoreMatcher(dir, dir, "", fs.NewOSFileSystem(), nil)
	require.NoError(t, err)
	assert.True(t, m.ShouldIgnore(filepath.Join(dir, "out"), true))
	assert.False(t, m.ShouldIgnore(filepath.Join(dir, "in"), true))
}

func TestParsePatterns_SkipsCommentsAndBlanks(t *testing.T) {
	ps := ParsePatterns([]byte("# comment\n\n   \n*.o\n"), nil)
	assert.Len(t, ps, 1)
}
