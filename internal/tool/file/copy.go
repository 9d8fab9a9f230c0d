package file

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Cyclone1070/gitfs/internal/config"
	"github.com/Cyclone1070/gitfs/internal/tool/service/fs"
	"github.com/Cyclone1070/gitfs/internal/tool/service/path"
	"github.com/cespare/xxhash/v2"
)

// transfer is a validated copy or move: both endpoints resolved and the source checked.
type transfer struct {
	from, to    path.Resolved
	src         os.FileInfo // nil when the source does not exist
	overwriting bool
}

// resolveTransfer applies the shared copy/move rules. Both parents must belong to the same
// repository, the source must be a regular file and the destination may only be replaced
// when overwrite is set.
func resolveTransfer(fsys fileWriter, resolver pathResolver, from, to string, overwrite bool) (*transfer, error) {
	src, err := resolver.ResolveTarget(from)
	if err != nil {
		return nil, err
	}
	dst, err := resolver.ResolveTarget(to)
	if err != nil {
		return nil, err
	}

	srcRepo, ok := resolver.FindRepoRoot(filepath.Dir(src.Abs))
	if !ok {
		return nil, &path.NotInRepositoryError{Path: from}
	}
	dstRepo, ok := resolver.FindRepoRoot(filepath.Dir(dst.Abs))
	if !ok {
		return nil, &path.NotInRepositoryError{Path: to}
	}
	if srcRepo != dstRepo {
		return nil, &CrossRepositoryError{From: from, To: to}
	}

	tr := &transfer{from: src, to: dst}
	if tr.src, err = lstatOptional(fsys, src.Abs); err != nil {
		return nil, err
	}
	if tr.src != nil && !tr.src.Mode().IsRegular() {
		return nil, &NotRegularFileError{Path: from}
	}

	existing, err := lstatOptional(fsys, dst.Abs)
	if err != nil {
		return nil, err
	}
	if existing != nil && src.Abs != dst.Abs {
		if existing.IsDir() {
			return nil, &DestinationExistsError{Path: to, IsDir: true}
		}
		if !overwrite {
			return nil, &DestinationExistsError{Path: to}
		}
		tr.overwriting = true
	}
	return tr, nil
}

// copyFile streams src into dst atomically and returns the byte count and xxhash digest.
func copyFile(fsys fileWriter, src, dst string, perm os.FileMode) (int64, string, error) {
	f, err := fsys.Open(src)
	if err != nil {
		return 0, "", &OpError{Op: "open", Path: src, Cause: err}
	}
	defer f.Close()

	digest := xxhash.New()
	n, err := fsys.WriteFileAtomicFrom(dst, io.TeeReader(f, digest), perm)
	if err != nil {
		return 0, "", &OpError{Op: "copy", Path: dst, Cause: err}
	}
	return n, fmt.Sprintf("%016x", digest.Sum64()), nil
}

// CopyPathTool copies regular files within one repository.
type CopyPathTool struct {
	fs       fileWriter
	resolver pathResolver
	config   *config.Config
}

// NewCopyPathTool creates a new CopyPathTool with injected dependencies.
func NewCopyPathTool(fs fileWriter, resolver pathResolver, cfg *config.Config) *CopyPathTool {
	return &CopyPathTool{
		fs:       fs,
		resolver: resolver,
		config:   cfg,
	}
}

// Run copies req.From to req.To, preserving permission bits.
func (t *CopyPathTool) Run(ctx context.Context, req *CopyPathRequest) (*CopyPathResponse, error) {
	if err := req.Validate(t.config); err != nil {
		return nil, err
	}

	tr, err := resolveTransfer(t.fs, t.resolver, req.From, req.To, req.Overwrite)
	if err != nil {
		return nil, err
	}
	if tr.src == nil {
		return nil, &FileMissingError{Path: req.From}
	}
	if err := prepareParent(t.fs, tr.to.Abs, boolOr(req.CreateParents, true)); err != nil {
		return nil, err
	}

	n, sum, err := copyFile(t.fs, tr.from.Abs, tr.to.Abs, tr.src.Mode().Perm())
	if err != nil {
		return nil, err
	}
	return &CopyPathResponse{
		From:        t.resolver.Display(tr.from.Abs),
		To:          t.resolver.Display(tr.to.Abs),
		BytesCopied: n,
		Overwritten: tr.overwriting,
		Checksum:    sum,
	}, nil
}

// MovePathTool renames regular files within one repository.
type MovePathTool struct {
	fs       fileWriter
	resolver pathResolver
	config   *config.Config
}

// NewMovePathTool creates a new MovePathTool with injected dependencies.
func NewMovePathTool(fs fileWriter, resolver pathResolver, cfg *config.Config) *MovePathTool {
	return &MovePathTool{
		fs:       fs,
		resolver: resolver,
		config:   cfg,
	}
}

// Run moves req.From to req.To. A missing source is reported, not returned as an error.
// Renames that cross a device boundary fall back to copy and remove.
func (t *MovePathTool) Run(ctx context.Context, req *MovePathRequest) (*MovePathResponse, error) {
	if err := req.Validate(t.config); err != nil {
		return nil, err
	}

	tr, err := resolveTransfer(t.fs, t.resolver, req.From, req.To, req.Overwrite)
	if err != nil {
		return nil, err
	}
	resp := &MovePathResponse{
		From: t.resolver.Display(tr.from.Abs),
		To:   t.resolver.Display(tr.to.Abs),
	}
	if tr.src == nil {
		return resp, nil
	}
	resp.SourceExisted = true

	if err := prepareParent(t.fs, tr.to.Abs, boolOr(req.CreateParents, true)); err != nil {
		return nil, err
	}

	if err := t.fs.Rename(tr.from.Abs, tr.to.Abs); err != nil {
		if !fs.IsCrossDevice(err) {
			return nil, &OpError{Op: "move", Path: tr.from.Abs, Cause: err}
		}
		if _, _, err := copyFile(t.fs, tr.from.Abs, tr.to.Abs, tr.src.Mode().Perm()); err != nil {
			return nil, err
		}
		if err := t.fs.Remove(tr.from.Abs); err != nil {
			return nil, &OpError{Op: "remove", Path: tr.from.Abs, Cause: err}
		}
	}
	resp.Moved = true
	resp.Overwritten = tr.overwriting
	return resp, nil
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
