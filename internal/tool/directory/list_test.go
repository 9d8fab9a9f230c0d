package directory

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Cyclone1070/gitfs/internal/tool/errutil"
	"github.com/Cyclone1070/gitfs/internal/tool/globutil"
	"github.com/Cyclone1070/gitfs/internal/tool/service/walk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listPaths(entries []FileEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Path)
	}
	return out
}

func TestListFiles_Defaults(t *testing.T) {
	f := newFixture(t, 2, "a.txt", "b/c.txt", "b/d/e.go", ".env", "ignored.log")
	require.NoError(t, os.WriteFile(filepath.Join(f.root, ".gitignore"), []byte("*.log\n"), 0o644))
	tool := NewListFilesTool(f.fs, f.resolver, f.walker, f.cfg)

	resp, err := tool.Run(context.Background(), &ListFilesRequest{})

	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b/c.txt", "b/d/e.go"}, listPaths(resp.Entries))
	assert.False(t, resp.HasMore)
	assert.Nil(t, resp.Entries[0].Size)
}

func TestListFiles_IncludeDirsNonRecursive(t *testing.T) {
	f := newFixture(t, 2, "a.txt", "b/c.txt")
	tool := NewListFilesTool(f.fs, f.resolver, f.walker, f.cfg)

	resp, err := tool.Run(context.Background(), &ListFilesRequest{
		Request:     walk.Request{Recursive: boolPtr(false)},
		IncludeDirs: true,
	})

	require.NoError(t, err)
	require.Len(t, resp.Entries, 2)
	assert.Equal(t, FileEntry{Path: "a.txt"}, resp.Entries[0])
	assert.Equal(t, FileEntry{Path: "b", IsDir: true}, resp.Entries[1])
}

func TestListFiles_Pagination(t *testing.T) {
	f := newFixture(t, 2, "f1", "f2", "f3", "f4", "f5")
	tool := NewListFilesTool(f.fs, f.resolver, f.walker, f.cfg)

	tests := []struct {
		name    string
		skip    int
		max     int
		want    []string
		hasMore bool
	}{
		{"first page", 0, 2, []string{"f1", "f2"}, true},
		{"middle page", 2, 2, []string{"f3", "f4"}, true},
		{"exact tail", 3, 2, []string{"f4", "f5"}, false},
		{"all in one", 0, 5, []string{"f1", "f2", "f3", "f4", "f5"}, false},
		{"skip past end", 10, 2, []string{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := tool.Run(context.Background(), &ListFilesRequest{
				Request: walk.Request{Skip: tt.skip, MaxResults: intPtr(tt.max)},
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, listPaths(resp.Entries))
			assert.Equal(t, tt.hasMore, resp.HasMore)
		})
	}
}

func TestListFiles_Metadata(t *testing.T) {
	f := newFixture(t, 2, "sized.txt")
	tool := NewListFilesTool(f.fs, f.resolver, f.walker, f.cfg)

	resp, err := tool.Run(context.Background(), &ListFilesRequest{IncludeMetadata: true})

	require.NoError(t, err)
	require.Len(t, resp.Entries, 1)
	require.NotNil(t, resp.Entries[0].Size)
	require.NotNil(t, resp.Entries[0].Modified)
	assert.Equal(t, int64(len("sized.txt")), *resp.Entries[0].Size)
	assert.Greater(t, *resp.Entries[0].Modified, int64(0))
}

func TestListFiles_GlobsRelativeToStart(t *testing.T) {
	f := newFixture(t, 2, "src/a.go", "src/a_test.go", "src/sub/b.go", "README.md")
	tool := NewListFilesTool(f.fs, f.resolver, f.walker, f.cfg)

	resp, err := tool.Run(context.Background(), &ListFilesRequest{
		Request: walk.Request{Root: "src", IncludeGlobs: []string{"*.go"}, ExcludeGlobs: []string{"*_test.go"}},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"a.go", "sub/b.go"}, listPaths(resp.Entries))
}

func TestListFiles_ZeroMaxResults(t *testing.T) {
	f := newFixture(t, 2, "a.txt")
	tool := NewListFilesTool(f.fs, f.resolver, f.walker, f.cfg)

	// a missing start would fail if traversal happened
	resp, err := tool.Run(context.Background(), &ListFilesRequest{
		Request: walk.Request{Root: "missing", MaxResults: intPtr(0)},
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Entries)
	assert.NotNil(t, resp.Entries)
	assert.False(t, resp.HasMore)
}

func TestListFiles_Errors(t *testing.T) {
	f := newFixture(t, 2, "a.txt")
	tool := NewListFilesTool(f.fs, f.resolver, f.walker, f.cfg)

	tests := []struct {
		name string
		req  *ListFilesRequest
		want errutil.Category
	}{
		{"escape", &ListFilesRequest{Request: walk.Request{Root: "../"}}, errutil.CategoryOutsideWorkspace},
		{"missing", &ListFilesRequest{Request: walk.Request{Root: "nope"}}, errutil.CategoryFileMissing},
		{"file start", &ListFilesRequest{Request: walk.Request{Root: "a.txt"}}, errutil.CategoryInvalidInput},
		{"negative skip", &ListFilesRequest{Request: walk.Request{Skip: -1}}, errutil.CategoryInvalidInput},
		{"limit above cap", &ListFilesRequest{Request: walk.Request{MaxResults: intPtr(f.cfg.Tools.MaxListLimit + 1)}}, errutil.CategoryInvalidInput},
		{"bad glob", &ListFilesRequest{Request: walk.Request{IncludeGlobs: []string{"[x"}}}, errutil.CategoryInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tool.Run(context.Background(), tt.req)
			require.Error(t, err)
			assert.Equal(t, tt.want, errutil.Classify(err))
		})
	}

	_, err := tool.Run(context.Background(), &ListFilesRequest{Request: walk.Request{IncludeGlobs: []string{"[x"}}})
	var globErr *globutil.InvalidGlobError
	assert.ErrorAs(t, err, &globErr)
}
