package inspect

import (
	"context"
	"errors"
	"io/fs"

	"github.com/Cyclone1070/gitfs/internal/tool/errutil"
)

// StatPathTool reports metadata for a single path.
type StatPathTool struct {
	fs       fileSystem
	resolver pathResolver
}

// NewStatPathTool creates a new StatPathTool with injected dependencies.
func NewStatPathTool(fs fileSystem, resolver pathResolver) *StatPathTool {
	return &StatPathTool{fs: fs, resolver: resolver}
}

// Run stats req.Path without following a final symlink. Relative inputs must stay inside
// the root both lexically and after canonicalization; a repository is not required.
// A missing path is reported with Exists false.
func (t *StatPathTool) Run(ctx context.Context, req *StatPathRequest) (*StatResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := t.resolver.CheckLexical(req.Path); err != nil {
		return nil, err
	}

	joined := t.resolver.Join(req.Path)
	result := &StatResult{Path: t.resolver.Display(joined)}
	if _, err := t.resolver.Resolve(req.Path); err != nil {
		if errutil.IsFileMissing(err) {
			return result, nil
		}
		return nil, err
	}

	info, err := t.fs.Lstat(joined)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return result, nil
		}
		return nil, &StatError{Path: joined, Cause: err}
	}

	result.Exists = true
	result.Kind = kindOf(info.Mode())
	result.Size = info.Size()
	result.Modified = info.ModTime().Unix()
	result.Mode = uint32(info.Mode().Perm())
	if result.Kind == KindSymlink {
		if target, err := t.fs.Readlink(joined); err == nil {
			result.LinkTarget = target
		}
	}
	return result, nil
}
