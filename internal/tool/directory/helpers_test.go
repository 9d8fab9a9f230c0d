package directory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Cyclone1070/gitfs/internal/config"
	"github.com/Cyclone1070/gitfs/internal/tool/service/fs"
	"github.com/Cyclone1070/gitfs/internal/tool/service/path"
	"github.com/Cyclone1070/gitfs/internal/tool/service/walk"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fixture struct {
	root     string
	fs       *fs.OSFileSystem
	resolver *path.Resolver
	walker   *walk.Walker
	cfg      *config.Config
}

func newFixture(t *testing.T, workers int, files ...string) *fixture {
	t.Helper()
	root, err := path.CanonicaliseRoot(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0o755))

	for _, f := range files {
		full := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(f), 0o644))
	}

	osfs := fs.NewOSFileSystem()
	resolver := path.NewResolver(root, "")
	return &fixture{
		root:     root,
		fs:       osfs,
		resolver: resolver,
		walker:   walk.NewWalker(osfs, resolver, zaptest.NewLogger(t), nil, workers),
		cfg:      config.DefaultConfig(),
	}
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }
