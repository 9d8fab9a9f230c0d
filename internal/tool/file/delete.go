package file

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/Cyclone1070/gitfs/internal/config"
)

// DeletePathTool removes files, symlinks and (with Recursive) directories.
type DeletePathTool struct {
	fs       fileWriter
	resolver pathResolver
	config   *config.Config
}

// NewDeletePathTool creates a new DeletePathTool with injected dependencies.
func NewDeletePathTool(fs fileWriter, resolver pathResolver, cfg *config.Config) *DeletePathTool {
	return &DeletePathTool{
		fs:       fs,
		resolver: resolver,
		config:   cfg,
	}
}

// Run deletes req.Path. The final component is not followed, so a symlink is removed
// rather than its target. A missing path is an error unless Force is set.
func (t *DeletePathTool) Run(ctx context.Context, req *DeletePathRequest) (*DeletePathResponse, error) {
	if err := req.Validate(t.config); err != nil {
		return nil, err
	}

	res, err := t.resolver.ResolveTarget(req.Path)
	if err != nil {
		return nil, err
	}
	if containsPath(res.Abs, t.resolver.Root()) {
		return nil, &RootDeletionError{Path: req.Path}
	}

	resp := &DeletePathResponse{Path: t.resolver.Display(res.Abs)}
	info, err := lstatOptional(t.fs, res.Abs)
	if err != nil {
		return nil, err
	}
	if info == nil {
		if req.Force {
			return resp, nil
		}
		return nil, &FileMissingError{Path: req.Path}
	}
	resp.Existed = true
	resp.WasDir = info.IsDir()

	if resp.WasDir {
		if !req.Recursive {
			return nil, &RecursiveRequiredError{Path: req.Path}
		}
		err = t.fs.RemoveAll(res.Abs)
	} else {
		err = t.fs.Remove(res.Abs)
	}
	if err != nil {
		return nil, &OpError{Op: "delete", Path: res.Abs, Cause: err}
	}
	resp.Removed = true
	return resp, nil
}

// containsPath reports whether target is dir itself or lies below it.
func containsPath(dir, target string) bool {
	if dir == target {
		return true
	}
	return strings.HasPrefix(target, strings.TrimSuffix(dir, string(filepath.Separator))+string(filepath.Separator))
}
