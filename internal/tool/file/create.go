package file

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/Cyclone1070/gitfs/internal/config"
)

const defaultFilePerm os.FileMode = 0o644

// CreateFileTool writes new files, optionally replacing existing ones.
type CreateFileTool struct {
	fs       fileWriter
	resolver pathResolver
	config   *config.Config
}

// NewCreateFileTool creates a new CreateFileTool with injected dependencies.
func NewCreateFileTool(fs fileWriter, resolver pathResolver, cfg *config.Config) *CreateFileTool {
	return &CreateFileTool{
		fs:       fs,
		resolver: resolver,
		config:   cfg,
	}
}

// Run creates the file at req.Path. An existing directory is never replaced, and an
// existing file only when Overwrite is set. The write is atomic (temp file + rename).
//
// Note: ctx is accepted for API consistency but not used - file I/O is synchronous.
func (t *CreateFileTool) Run(ctx context.Context, req *CreateFileRequest) (*CreateFileResponse, error) {
	if err := req.Validate(t.config); err != nil {
		return nil, err
	}

	res, err := t.resolver.ResolveTarget(req.Path)
	if err != nil {
		return nil, err
	}

	existing, err := lstatOptional(t.fs, res.Abs)
	if err != nil {
		return nil, err
	}
	perm := defaultFilePerm
	if existing != nil {
		if existing.IsDir() {
			return nil, &DestinationExistsError{Path: req.Path, IsDir: true}
		}
		if !req.Overwrite {
			return nil, &DestinationExistsError{Path: req.Path}
		}
		if existing.Mode().IsRegular() {
			perm = existing.Mode().Perm()
		}
	}

	if err := prepareParent(t.fs, res.Abs, req.CreateParents); err != nil {
		return nil, err
	}

	data := []byte(req.Content)
	if err := t.fs.WriteFileAtomic(res.Abs, data, perm); err != nil {
		return nil, &OpError{Op: "write", Path: res.Abs, Cause: err}
	}

	return &CreateFileResponse{
		Path:         t.resolver.Display(res.Abs),
		Created:      existing == nil,
		Overwritten:  existing != nil,
		BytesWritten: int64(len(data)),
	}, nil
}

// lstatOptional returns nil info and no error when abs does not exist,
// including when one of its parents is not a directory.
func lstatOptional(fsys fileWriter, abs string) (os.FileInfo, error) {
	info, err := fsys.Lstat(abs)
	if err == nil {
		return info, nil
	}
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
		return nil, nil
	}
	return nil, &OpError{Op: "stat", Path: abs, Cause: err}
}

// prepareParent makes sure the parent directory of abs exists, creating it when allowed.
func prepareParent(fsys fileWriter, abs string, create bool) error {
	parent := filepath.Dir(abs)
	info, err := fsys.Stat(parent)
	switch {
	case err == nil && info.IsDir():
		return nil
	case err == nil, errors.Is(err, syscall.ENOTDIR):
		return &ParentNotDirectoryError{Path: parent}
	case !errors.Is(err, fs.ErrNotExist):
		return &OpError{Op: "stat", Path: parent, Cause: err}
	case !create:
		return &ParentMissingError{Path: parent}
	}
	if err := fsys.EnsureDirs(parent); err != nil {
		return &OpError{Op: "create directory", Path: parent, Cause: err}
	}
	return nil
}
