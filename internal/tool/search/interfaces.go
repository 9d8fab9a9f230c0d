package search

import (
	"context"
	"os"

	"github.com/Cyclone1070/gitfs/internal/tool/service/fs"
	"github.com/Cyclone1070/gitfs/internal/tool/service/path"
	"github.com/Cyclone1070/gitfs/internal/tool/service/walk"
)

// pathResolver defines workspace path resolution operations.
type pathResolver interface {
	ResolveScoped(input string) (path.Resolved, error)
	Within(abs string) bool
	Display(abs string) string
}

// fileSystem defines the minimal filesystem interface needed by search tools.
type fileSystem interface {
	Stat(path string) (os.FileInfo, error)
	MapFile(path string) (*fs.MappedFile, error)
}

// treeWalker enumerates a directory tree in parallel under ignore rules.
type treeWalker interface {
	WalkParallel(ctx context.Context, start string, opts walk.Options, visit walk.VisitFunc) error
}
