package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Cyclone1070/gitfs/internal/tool/errutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFile(t *testing.T) {
	f := newFixture(t)
	tool := NewCreateFileTool(f.fs, f.resolver, f.cfg)
	ctx := context.Background()

	resp, err := tool.Run(ctx, &CreateFileRequest{Path: "new.txt", Content: "hi"})
	require.NoError(t, err)
	assert.Equal(t, &CreateFileResponse{Path: "new.txt", Created: true, BytesWritten: 2}, resp)
	assert.Equal(t, "hi", f.read(t, "new.txt"))

	_, err = tool.Run(ctx, &CreateFileRequest{Path: "new.txt", Content: "again"})
	var exists *DestinationExistsError
	require.ErrorAs(t, err, &exists)
	assert.Equal(t, errutil.CategoryConflict, errutil.Classify(err))

	resp, err = tool.Run(ctx, &CreateFileRequest{Path: "new.txt", Content: "again", Overwrite: true})
	require.NoError(t, err)
	assert.True(t, resp.Overwritten)
	assert.False(t, resp.Created)
	assert.Equal(t, "again", f.read(t, "new.txt"))
}

func TestCreateFile_EmptyContent(t *testing.T) {
	f := newFixture(t)
	tool := NewCreateFileTool(f.fs, f.resolver, f.cfg)

	resp, err := tool.Run(context.Background(), &CreateFileRequest{Path: "empty"})
	require.NoError(t, err)
	assert.Zero(t, resp.BytesWritten)
	assert.Equal(t, "", f.read(t, "empty"))
}

func TestCreateFile_Parents(t *testing.T) {
	f := newFixture(t)
	tool := NewCreateFileTool(f.fs, f.resolver, f.cfg)
	ctx := context.Background()

	_, err := tool.Run(ctx, &CreateFileRequest{Path: "a/b/c.txt", Content: "x"})
	var parentErr *ParentMissingError
	require.ErrorAs(t, err, &parentErr)
	assert.Equal(t, errutil.CategoryFileMissing, errutil.Classify(err))

	_, err = tool.Run(ctx, &CreateFileRequest{Path: "a/b/c.txt", Content: "x", CreateParents: true})
	require.NoError(t, err)
	assert.Equal(t, "x", f.read(t, "a/b/c.txt"))

	f.write(t, "plain", "p")
	_, err = tool.Run(ctx, &CreateFileRequest{Path: "plain/child.txt", CreateParents: true})
	var notDir *ParentNotDirectoryError
	assert.ErrorAs(t, err, &notDir)

	_, err = tool.Run(ctx, &CreateFileRequest{Path: "plain/deeper/child.txt", CreateParents: true})
	assert.ErrorAs(t, err, &notDir)
}

func TestCreateFile_Refusals(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, os.Mkdir(filepath.Join(f.root, "dir"), 0o755))
	tool := NewCreateFileTool(f.fs, f.resolver, f.cfg)
	ctx := context.Background()

	tests := []struct {
		name string
		req  CreateFileRequest
		want errutil.Category
	}{
		{name: "existing directory even with overwrite", req: CreateFileRequest{Path: "dir", Overwrite: true}, want: errutil.CategoryConflict},
		{name: "escapes root", req: CreateFileRequest{Path: "../outside/x.txt"}, want: errutil.CategoryOutsideWorkspace},
		{name: "absolute outside repository", req: CreateFileRequest{Path: filepath.Join(f.base, "outside", "x.txt")}, want: errutil.CategoryNotInRepository},
		{name: "empty path", req: CreateFileRequest{}, want: errutil.CategoryInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tool.Run(ctx, &tt.req)
			require.Error(t, err)
			assert.Equal(t, tt.want, errutil.Classify(err))
		})
	}

	f.cfg.Tools.MaxWriteSize = 4
	_, err := tool.Run(ctx, &CreateFileRequest{Path: "big.txt", Content: "12345"})
	var tooLarge *ContentTooLargeError
	assert.ErrorAs(t, err, &tooLarge)
}

func TestCreateFile_AbsoluteInOtherRepository(t *testing.T) {
	f := newFixture(t)
	tool := NewCreateFileTool(f.fs, f.resolver, f.cfg)
	target := filepath.Join(f.base, "other", "made.txt")

	resp, err := tool.Run(context.Background(), &CreateFileRequest{Path: target, Content: "ok"})
	require.NoError(t, err)
	assert.Equal(t, target, resp.Path)
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(data))
}
