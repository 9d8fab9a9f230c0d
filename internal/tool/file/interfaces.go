package file

import (
	"io"
	"os"

	"github.com/Cyclone1070/gitfs/internal/tool/service/path"
)

// pathResolver defines workspace path resolution operations.
type pathResolver interface {
	Root() string
	ResolveScoped(input string) (path.Resolved, error)
	ResolveTarget(input string) (path.Resolved, error)
	FindRepoRoot(p string) (string, bool)
	Display(abs string) string
}

// fileReader defines the minimal filesystem operations needed for reading files.
type fileReader interface {
	Stat(path string) (os.FileInfo, error)
	Open(path string) (*os.File, error)
	ReadFileRange(path string, offset, limit int64) ([]byte, error)
}

// fileWriter defines the filesystem operations needed by mutating tools.
type fileWriter interface {
	Stat(path string) (os.FileInfo, error)
	Lstat(path string) (os.FileInfo, error)
	Open(path string) (*os.File, error)
	WriteFileAtomic(path string, content []byte, perm os.FileMode) error
	WriteFileAtomicFrom(path string, r io.Reader, perm os.FileMode) (int64, error)
	EnsureDirs(path string) error
	Remove(path string) error
	RemoveAll(path string) error
	Rename(oldPath, newPath string) error
}
