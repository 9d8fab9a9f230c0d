package path

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

// -- Error Types --

// WorkspaceRootError is returned when the workspace root is invalid.
type WorkspaceRootError struct {
	Root  string
	Cause error
}

func (e *WorkspaceRootError) Error() string {
	return fmt.Sprintf("invalid workspace root %s: %v", e.Root, e.Cause)
}
func (e *WorkspaceRootError) Unwrap() error          { return e.Cause }
func (e *WorkspaceRootError) InvalidWorkspace() bool { return true }

// OutsideWorkspaceError is returned when a relative input resolves outside the root.
type OutsideWorkspaceError struct {
	Path string
}

func (e *OutsideWorkspaceError) Error() string {
	return fmt.Sprintf("path %s is outside workspace root", e.Path)
}
func (e *OutsideWorkspaceError) OutsideWorkspace() bool { return true }

// NotInRepositoryError is returned when an absolute input has no repository above it.
type NotInRepositoryError struct {
	Path string
}

func (e *NotInRepositoryError) Error() string {
	return fmt.Sprintf("path %s is not inside a repository", e.Path)
}
func (e *NotInRepositoryError) NotInRepository() bool { return true }

// CanonicalizeError is returned when a path cannot be made canonical.
type CanonicalizeError struct {
	Path  string
	Cause error
}

func (e *CanonicalizeError) Error() string {
	return fmt.Sprintf("failed to canonicalize %s: %v", e.Path, e.Cause)
}
func (e *CanonicalizeError) Unwrap() error     { return e.Cause }
// FileMissing is also true when a parent component is a regular file, since such a path cannot exist.
func (e *CanonicalizeError) FileMissing() bool {
	return errors.Is(e.Cause, fs.ErrNotExist) || errors.Is(e.Cause, syscall.ENOTDIR)
}
func (e *CanonicalizeError) IOError() bool     { return true }

// InvalidPathError is returned for inputs that cannot name a target at all.
type InvalidPathError struct {
	Path   string
	Reason string
}

func (e *InvalidPathError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid path: %s", e.Reason)
	}
	return fmt.Sprintf("invalid path %q: %s", e.Path, e.Reason)
}
func (e *InvalidPathError) InvalidInput() bool { return true }

// -- Sentinels --

var (
	ErrNotADirectory = errors.New("not a directory")
)
