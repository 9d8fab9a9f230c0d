//go:build unix

package fs

import (
	"math"
	"os"

	"golang.org/x/sys/unix"
)

// MapFile maps path read-only into memory. Empty files are returned without a mapping.
func (fs *OSFileSystem) MapFile(path string) (*MappedFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := info.Size()
	if size == 0 {
		return &MappedFile{}, nil
	}
	if size > math.MaxInt {
		return nil, &MapError{Path: path, Cause: ErrFileTooLarge}
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, &MapError{Path: path, Cause: err}
	}
	return &MappedFile{data: data, unmap: func() error { return unix.Munmap(data) }}, nil
}
