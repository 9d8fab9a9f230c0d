package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Cyclone1070/gitfs/internal/config"
	"github.com/Cyclone1070/gitfs/internal/tool/service/fs"
	"github.com/Cyclone1070/gitfs/internal/tool/service/path"
	"github.com/stretchr/testify/require"
)

// layout:
//
//	base/ws/.git/       workspace root and repository
//	base/other/.git/    a second repository
//	base/outside/       no repository
type fixture struct {
	base     string
	root     string
	fs       *fs.OSFileSystem
	resolver *path.Resolver
	cfg      *config.Config
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	base, err := path.CanonicaliseRoot(t.TempDir())
	require.NoError(t, err)

	root := filepath.Join(base, "ws")
	for _, dir := range []string{
		filepath.Join(root, ".git"),
		filepath.Join(base, "other", ".git"),
		filepath.Join(base, "outside"),
	} {
		require.NoError(t, os.MkdirAll(dir, 0o755))
	}

	return &fixture{
		base:     base,
		root:     root,
		fs:       fs.NewOSFileSystem(),
		resolver: path.NewResolver(root, ""),
		cfg:      config.DefaultConfig(),
	}
}

// write creates a file below the workspace root.
func (f *fixture) write(t *testing.T, rel, data string) string {
	t.Helper()
	full := filepath.Join(f.root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(data), 0o644))
	return full
}

func (f *fixture) read(t *testing.T, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(f.root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(data)
}

func int64Ptr(v int64) *int64 { return &v }
func boolPtr(v bool) *bool    { return &v }
