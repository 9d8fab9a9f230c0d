package fs

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"
)

// OSFileSystem implements filesystem operations using the local OS filesystem primitives.
type OSFileSystem struct{}

// NewOSFileSystem creates a new OSFileSystem.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// Stat returns file info for a path (follows symlinks).
func (fs *OSFileSystem) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// Lstat returns file info for a path without following symlinks.
func (fs *OSFileSystem) Lstat(path string) (os.FileInfo, error) {
	return os.Lstat(path)
}

// Open opens a file for reading.
func (fs *OSFileSystem) Open(path string) (*os.File, error) {
	return os.Open(path)
}

// ReadFileRange reads a range of bytes from a file.
// If offset and limit are both 0, reads the entire file.
func (fs *OSFileSystem) ReadFileRange(path string, offset, limit int64) ([]byte, error) {
	if offset < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOffset, offset)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	// If both offset and limit are 0, read entire file
	if offset == 0 && limit == 0 {
		return io.ReadAll(file)
	}

	if offset > 0 {
		if _, err := file.Seek(offset, io.SeekStart); err != nil {
			return nil, err
		}
	}

	var r io.Reader = file
	if limit > 0 {
		r = io.LimitReader(file, limit)
	}
	return io.ReadAll(r)
}

// WriteFileAtomic writes content to a file atomically using temp file + rename pattern.
// This ensures that if the process crashes mid-write, the original file remains intact.
// The temp file is created in the same directory as the target to ensure atomic rename.
func (fs *OSFileSystem) WriteFileAtomic(path string, content []byte, perm os.FileMode) error {
	_, err := fs.WriteFileAtomicFrom(path, bytes.NewReader(content), perm)
	return err
}

// WriteFileAtomicFrom streams r into path with the same temp file + rename guarantees
// as WriteFileAtomic and returns the number of bytes written.
func (fs *OSFileSystem) WriteFileAtomicFrom(path string, r io.Reader, perm os.FileMode) (int64, error) {
	dir := filepath.Dir(path)

	tmpFile, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return 0, &AtomicWriteError{Stage: StageCreateTemp, Path: path, Cause: err}
	}

	tmpPath := tmpFile.Name()
	needsCleanup := true

	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
		}
		if needsCleanup {
			_ = os.Remove(tmpPath)
		}
	}()

	n, err := io.Copy(tmpFile, r)
	if err != nil {
		return n, &AtomicWriteError{Stage: StageWrite, Path: path, Cause: err}
	}

	if err := tmpFile.Sync(); err != nil {
		return n, &AtomicWriteError{Stage: StageSync, Path: path, Cause: err}
	}

	// Close file before rename (required on some systems)
	if err := tmpFile.Close(); err != nil {
		tmpFile = nil
		return n, &AtomicWriteError{Stage: StageClose, Path: path, Cause: err}
	}
	tmpFile = nil

	// CreateTemp uses 0600; set the final mode before the file becomes visible.
	if err := os.Chmod(tmpPath, perm); err != nil {
		return n, &AtomicWriteError{Stage: StageChmod, Path: path, Cause: err}
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return n, &AtomicWriteError{Stage: StageRename, Path: path, Cause: err}
	}
	needsCleanup = false

	return n, nil
}

// EnsureDirs creates parent directories recursively if they don't exist.
func (fs *OSFileSystem) EnsureDirs(path string) error {
	return os.MkdirAll(path, 0o755)
}

// Remove deletes a file, a symlink or an empty directory.
func (fs *OSFileSystem) Remove(path string) error {
	return os.Remove(path)
}

// RemoveAll deletes path and any children it contains.
func (fs *OSFileSystem) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

// Rename moves oldPath to newPath, replacing newPath if it is a file.
func (fs *OSFileSystem) Rename(oldPath, newPath string) error {
	return os.Rename(oldPath, newPath)
}

// IsCrossDevice reports whether err is the rename failure raised when source and
// destination live on different filesystems.
func IsCrossDevice(err error) bool {
	return errors.Is(err, syscall.EXDEV)
}

// EvalSymlinks returns the canonical form of path with every symlink resolved.
func (fs *OSFileSystem) EvalSymlinks(path string) (string, error) {
	return filepath.EvalSymlinks(path)
}

// Readlink reads the target of a symlink.
func (fs *OSFileSystem) Readlink(path string) (string, error) {
	return os.Readlink(path)
}
