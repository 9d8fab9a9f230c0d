package directory

import (
	"context"

	"github.com/Cyclone1070/gitfs/internal/config"
	"github.com/Cyclone1070/gitfs/internal/tool/service/walk"
)

// ListFilesTool handles directory listing operations.
type ListFilesTool struct {
	fs       dirStatter
	resolver pathResolver
	walker   treeWalker
	config   *config.Config
}

// NewListFilesTool creates a new ListFilesTool with injected dependencies.
func NewListFilesTool(fs dirStatter, resolver pathResolver, walker treeWalker, cfg *config.Config) *ListFilesTool {
	return &ListFilesTool{
		fs:       fs,
		resolver: resolver,
		walker:   walker,
		config:   cfg,
	}
}

// Run lists entries below the requested directory in lexical walk order.
// Entries are counted after ignore rules and filters; the first skip are dropped and at most
// max_results are returned. has_more is set only when a further entry was actually seen.
func (t *ListFilesTool) Run(ctx context.Context, req *ListFilesRequest) (*ListFilesResponse, error) {
	if err := req.Validate(t.config); err != nil {
		return nil, err
	}
	limit := req.Limit(t.config.Tools.DefaultListLimit)
	if limit == 0 {
		return &ListFilesResponse{Entries: []FileEntry{}}, nil
	}

	filters, err := req.Filters()
	if err != nil {
		return nil, err
	}
	start, err := resolveDir(t.resolver, t.fs, req.StartPath())
	if err != nil {
		return nil, err
	}

	entries := make([]FileEntry, 0, min(limit, 256))
	seen := 0
	hasMore := false

	err = t.walker.Walk(ctx, start, walk.Options{Recursive: req.IsRecursive(), Filters: filters}, func(e walk.Entry) error {
		if e.IsDir && !req.IncludeDirs {
			return nil
		}
		seen++
		if seen <= req.Skip {
			return nil
		}
		if len(entries) >= limit {
			hasMore = true
			return walk.ErrStop
		}

		entry := FileEntry{Path: e.Rel, IsDir: e.IsDir}
		if req.IncludeMetadata {
			if info, err := e.Info(); err == nil {
				size := info.Size()
				modified := info.ModTime().Unix()
				entry.Size = &size
				entry.Modified = &modified
			}
		}
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ListFilesResponse{Entries: entries, HasMore: hasMore}, nil
}

// resolveDir resolves a traversal start and checks that it is a directory.
func resolveDir(resolver pathResolver, fs dirStatter, input string) (string, error) {
	res, err := resolver.ResolveScoped(input)
	if err != nil {
		return "", err
	}
	info, err := fs.Stat(res.Abs)
	if err != nil {
		return "", &StatError{Path: res.Abs, Cause: err}
	}
	if !info.IsDir() {
		return "", &NotDirectoryError{Path: input}
	}
	return res.Abs, nil
}
