package inspect

import (
	"context"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
)

// PathInfoTool explains how a path would be resolved. It is best-effort: apart from an
// empty input nothing is an error, and a nonexistent path is simply reported as such.
type PathInfoTool struct {
	fs       fileSystem
	resolver pathResolver
}

// NewPathInfoTool creates a new PathInfoTool with injected dependencies.
func NewPathInfoTool(fs fileSystem, resolver pathResolver) *PathInfoTool {
	return &PathInfoTool{fs: fs, resolver: resolver}
}

func (t *PathInfoTool) Run(ctx context.Context, req *PathInfoRequest) (*PathInfoResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	joined := t.resolver.Join(req.Path)
	result := &PathInfoResult{
		Input:      req.Path,
		IsAbsolute: filepath.IsAbs(req.Path),
		Resolved:   joined,
	}

	effective := joined
	if canonical, err := t.fs.EvalSymlinks(joined); err == nil {
		result.Canonical = &canonical
		result.Exists = true
		effective = canonical
	}
	result.WithinRoot = t.resolver.Within(effective)

	repo, inRepo := t.resolver.FindRepoRoot(effective)
	if inRepo {
		result.RepoRoot = &repo
	}
	if !result.Exists {
		return result, nil
	}

	info, err := t.fs.Lstat(effective)
	if err != nil {
		return result, nil
	}
	result.Kind = kindOf(info.Mode())
	if result.Kind == KindFile && (result.WithinRoot || inRepo) {
		result.MimeType = t.detectMime(effective)
	}
	return result, nil
}

func (t *PathInfoTool) detectMime(abs string) string {
	f, err := t.fs.Open(abs)
	if err != nil {
		return ""
	}
	defer f.Close()

	mt, err := mimetype.DetectReader(f)
	if err != nil {
		return ""
	}
	return mt.String()
}
