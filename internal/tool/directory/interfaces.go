package directory

import (
	"context"
	"os"

	"github.com/Cyclone1070/gitfs/internal/tool/service/path"
	"github.com/Cyclone1070/gitfs/internal/tool/service/walk"
)

// pathResolver defines workspace path resolution operations.
type pathResolver interface {
	ResolveScoped(input string) (path.Resolved, error)
}

// dirStatter checks the traversal start.
type dirStatter interface {
	Stat(path string) (os.FileInfo, error)
}

// treeWalker enumerates a directory tree under ignore rules.
type treeWalker interface {
	Walk(ctx context.Context, start string, opts walk.Options, visit walk.VisitFunc) error
	WalkParallel(ctx context.Context, start string, opts walk.Options, visit walk.VisitFunc) error
}
