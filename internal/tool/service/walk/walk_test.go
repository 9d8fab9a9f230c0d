package walk

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/Cyclone1070/gitfs/internal/tool/globutil"
	"github.com/Cyclone1070/gitfs/internal/tool/service/fs"
	"github.com/Cyclone1070/gitfs/internal/tool/service/path"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func writeFile(t *testing.T, root, rel, data string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(data), 0o644))
}

func setupRepo(t *testing.T) (string, *Walker) {
	t.Helper()
	root, err := path.CanonicaliseRoot(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0o755))
	writeFile(t, root, ".gitignore", "*.log\nbuild/\n")
	writeFile(t, root, "a.txt", "a")
	writeFile(t, root, "app.log", "log")
	writeFile(t, root, "build/out.bin", "bin")
	writeFile(t, root, ".hidden/x", "x")
	writeFile(t, root, "src/.gitignore", "gen.go\n")
	writeFile(t, root, "src/gen.go", "package src")
	writeFile(t, root, "src/main.go", "package src")
	writeFile(t, root, "src/trace.log", "log")
	writeFile(t, root, "src/deep/x.go", "package deep")
	require.NoError(t, os.Symlink(filepath.Join(root, "src"), filepath.Join(root, "link")))

	w := NewWalker(fs.NewOSFileSystem(), path.NewResolver(root, ""), zaptest.NewLogger(t), nil, 4)
	return root, w
}

func collect(t *testing.T, walkFn func(context.Context, string, Options, VisitFunc) error, start string, opts Options) []string {
	t.Helper()
	var mu sync.Mutex
	var got []string
	err := walkFn(context.Background(), start, opts, func(e Entry) error {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, e.Rel)
		return nil
	})
	require.NoError(t, err)
	return got
}

func TestWalk_SequentialLexicalOrder(t *testing.T) {
	root, w := setupRepo(t)

	got := collect(t, w.Walk, root, Options{Recursive: true})

	assert.Equal(t, []string{"a.txt", "link", "src", "src/deep", "src/deep/x.go", "src/main.go"}, got)
}

func TestWalk_NonRecursive(t *testing.T) {
	root, w := setupRepo(t)

	got := collect(t, w.Walk, root, Options{Recursive: false})

	assert.Equal(t, []string{"a.txt", "link", "src"}, got)
}

func TestWalk_Filters(t *testing.T) {
	root, w := setupRepo(t)
	filters, err := globutil.NewFilterSet([]string{"*.go"}, []string{"deep/**"})
	require.NoError(t, err)

	got := collect(t, w.Walk, filepath.Join(root, "src"), Options{Recursive: true, Filters: filters})

	assert.Equal(t, []string{"main.go"}, got)
}

func TestWalk_StartBelowRepoRootUsesRootRules(t *testing.T) {
	root, w := setupRepo(t)

	got := collect(t, w.Walk, filepath.Join(root, "src"), Options{Recursive: true})

	assert.Equal(t, []string{"deep", "deep/x.go", "main.go"}, got)
}

func TestWalkParallel_SameEntries(t *testing.T) {
	root, w := setupRepo(t)

	got := collect(t, w.WalkParallel, root, Options{Recursive: true})
	sort.Strings(got)

	assert.Equal(t, []string{"a.txt", "link", "src", "src/deep", "src/deep/x.go", "src/main.go"}, got)
}

func TestWalk_SymlinkReportedNotFollowed(t *testing.T) {
	root, w := setupRepo(t)

	var link *Entry
	err := w.Walk(context.Background(), root, Options{Recursive: true}, func(e Entry) error {
		if e.Rel == "link" {
			found := e
			link = &found
		}
		return nil
	})
	require.NoError(t, err)
	require.NotNil(t, link)
	assert.True(t, link.IsSymlink())
	assert.False(t, link.IsDir)
	assert.Equal(t, "link", link.Name())
}

func TestWalk_StopEndsWalkWithoutError(t *testing.T) {
	root, w := setupRepo(t)

	for name, fn := range map[string]func(context.Context, string, Options, VisitFunc) error{
		"sequential": w.Walk,
		"parallel":   w.WalkParallel,
	} {
		t.Run(name, func(t *testing.T) {
			var mu sync.Mutex
			count := 0
			err := fn(context.Background(), root, Options{Recursive: true}, func(e Entry) error {
				mu.Lock()
				defer mu.Unlock()
				count++
				return ErrStop
			})
			assert.NoError(t, err)
			assert.GreaterOrEqual(t, count, 1)
			if name == "sequential" {
				assert.Equal(t, 1, count)
			}
		})
	}
}

func TestWalkParallel_StopInNestedTree(t *testing.T) {
	root, err := path.CanonicaliseRoot(t.TempDir())
	require.NoError(t, err)
	for i := 0; i < 40; i++ {
		writeFile(t, root, fmt.Sprintf("d%02d/f.txt", i), "x")
	}
	w := NewWalker(fs.NewOSFileSystem(), path.NewResolver(root, ""), zaptest.NewLogger(t), nil, 4)

	for run := 0; run < 20; run++ {
		var mu sync.Mutex
		files := 0
		err := w.WalkParallel(context.Background(), root, Options{Recursive: true}, func(e Entry) error {
			if e.IsDir {
				return nil
			}
			mu.Lock()
			defer mu.Unlock()
			files++
			return ErrStop
		})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, files, 1)
	}
}

func TestWalk_UnreadableDirectorySkipped(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permissions are not enforced for root")
	}
	root, err := path.CanonicaliseRoot(t.TempDir())
	require.NoError(t, err)
	writeFile(t, root, "a.go", "a")
	writeFile(t, root, "locked/x.go", "x")
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })
	w := NewWalker(fs.NewOSFileSystem(), path.NewResolver(root, ""), zaptest.NewLogger(t), nil, 4)

	for name, fn := range map[string]func(context.Context, string, Options, VisitFunc) error{
		"sequential": w.Walk,
		"parallel":   w.WalkParallel,
	} {
		t.Run(name, func(t *testing.T) {
			got := collect(t, fn, root, Options{Recursive: true})
			sort.Strings(got)
			assert.Equal(t, []string{"a.go", "locked"}, got)
		})
	}
}

func TestWalk_CancelledContext(t *testing.T) {
	root, w := setupRepo(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := w.Walk(ctx, root, Options{Recursive: true}, func(e Entry) error { return nil })

	assert.ErrorIs(t, err, context.Canceled)
}

func TestWalk_MissingStart(t *testing.T) {
	root, w := setupRepo(t)

	err := w.Walk(context.Background(), filepath.Join(root, "nope"), Options{Recursive: true}, func(e Entry) error { return nil })

	var walkErr *WalkError
	require.ErrorAs(t, err, &walkErr)
	assert.True(t, walkErr.FileMissing())
}
