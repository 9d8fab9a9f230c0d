package inspect

import (
	"os"

	"github.com/Cyclone1070/gitfs/internal/tool/service/path"
)

// pathResolver defines the resolution operations the inspector relies on.
type pathResolver interface {
	Join(input string) string
	Within(abs string) bool
	CheckLexical(input string) error
	Resolve(input string) (path.Resolved, error)
	FindRepoRoot(p string) (string, bool)
	Display(abs string) string
}

// fileSystem defines the read-only filesystem operations the inspector needs.
type fileSystem interface {
	Lstat(path string) (os.FileInfo, error)
	Open(path string) (*os.File, error)
	Readlink(path string) (string, error)
	EvalSymlinks(path string) (string, error)
}
