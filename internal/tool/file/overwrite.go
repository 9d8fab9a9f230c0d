package file

import (
	"context"

	"github.com/Cyclone1070/gitfs/internal/config"
)

// OverwriteFileTool replaces the content of an existing regular file.
type OverwriteFileTool struct {
	fs       fileWriter
	resolver pathResolver
	config   *config.Config
}

// NewOverwriteFileTool creates a new OverwriteFileTool with injected dependencies.
func NewOverwriteFileTool(fs fileWriter, resolver pathResolver, cfg *config.Config) *OverwriteFileTool {
	return &OverwriteFileTool{
		fs:       fs,
		resolver: resolver,
		config:   cfg,
	}
}

// Run atomically replaces the file's content, keeping its permission bits.
func (t *OverwriteFileTool) Run(ctx context.Context, req *OverwriteFileRequest) (*OverwriteFileResponse, error) {
	if err := req.Validate(t.config); err != nil {
		return nil, err
	}

	res, err := t.resolver.ResolveTarget(req.Path)
	if err != nil {
		return nil, err
	}
	info, err := lstatOptional(t.fs, res.Abs)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, &FileMissingError{Path: req.Path}
	}
	if !info.Mode().IsRegular() {
		return nil, &NotRegularFileError{Path: req.Path}
	}

	data := []byte(req.Content)
	if err := t.fs.WriteFileAtomic(res.Abs, data, info.Mode().Perm()); err != nil {
		return nil, &OpError{Op: "write", Path: res.Abs, Cause: err}
	}
	return &OverwriteFileResponse{
		Path:         t.resolver.Display(res.Abs),
		BytesWritten: int64(len(data)),
		PreviousSize: info.Size(),
	}, nil
}
