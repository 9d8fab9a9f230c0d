package file

import (
	"errors"
	"fmt"
	"io/fs"
)

// -- Input --

// PathRequiredError is returned when a required path argument is empty.
type PathRequiredError struct {
	Field string
}

func (e *PathRequiredError) Error() string      { return e.Field + " is required" }
func (e *PathRequiredError) InvalidInput() bool { return true }

// InvalidArgumentError is returned when a numeric argument is out of range.
type InvalidArgumentError struct {
	Field  string
	Value  int64
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s %d: %s", e.Field, e.Value, e.Reason)
}
func (e *InvalidArgumentError) InvalidInput() bool { return true }

// InvalidRangeTypeError is returned for a range_type other than bytes or lines.
type InvalidRangeTypeError struct {
	Value string
}

func (e *InvalidRangeTypeError) Error() string {
	return fmt.Sprintf("invalid range_type %q: expected %q or %q", e.Value, RangeBytes, RangeLines)
}
func (e *InvalidRangeTypeError) InvalidInput() bool { return true }

// MixedRangeError is returned when byte and line parameters are combined.
type MixedRangeError struct {
	RangeType string
}

func (e *MixedRangeError) Error() string {
	if e.RangeType == "" {
		return "byte range and line range parameters cannot be combined"
	}
	return fmt.Sprintf("range_type %q does not accept parameters of the other range kind", e.RangeType)
}
func (e *MixedRangeError) InvalidInput() bool { return true }

// ContentTooLargeError is returned when content exceeds the configured write limit.
type ContentTooLargeError struct {
	Size int64
	Max  int64
}

func (e *ContentTooLargeError) Error() string {
	return fmt.Sprintf("content size %d exceeds maximum %d", e.Size, e.Max)
}
func (e *ContentTooLargeError) InvalidInput() bool { return true }

// NotRegularFileError is returned when an operation needs a regular file.
type NotRegularFileError struct {
	Path string
}

func (e *NotRegularFileError) Error() string      { return "not a regular file: " + e.Path }
func (e *NotRegularFileError) InvalidInput() bool { return true }

// RootDeletionError is returned when a delete would remove the workspace root or one of its ancestors.
type RootDeletionError struct {
	Path string
}

func (e *RootDeletionError) Error() string      { return "refusing to delete workspace root: " + e.Path }
func (e *RootDeletionError) InvalidInput() bool { return true }

// -- State --

// DestinationExistsError is returned when a target exists and may not be replaced.
type DestinationExistsError struct {
	Path  string
	IsDir bool
}

func (e *DestinationExistsError) Error() string {
	if e.IsDir {
		return "destination is an existing directory: " + e.Path
	}
	return "destination already exists (use overwrite=true to replace): " + e.Path
}
func (e *DestinationExistsError) Conflict() bool { return true }

// RecursiveRequiredError is returned when deleting a directory without recursive=true.
type RecursiveRequiredError struct {
	Path string
}

func (e *RecursiveRequiredError) Error() string {
	return "cannot delete directory without recursive=true: " + e.Path
}
func (e *RecursiveRequiredError) Conflict() bool { return true }

// FileMissingError is returned when a required path does not exist.
type FileMissingError struct {
	Path string
}

func (e *FileMissingError) Error() string     { return "path does not exist: " + e.Path }
func (e *FileMissingError) FileMissing() bool { return true }

// ParentMissingError is returned when the parent directory is absent and create_parents is false.
type ParentMissingError struct {
	Path string
}

func (e *ParentMissingError) Error() string {
	return "parent directory does not exist (use create_parents=true): " + e.Path
}
func (e *ParentMissingError) FileMissing() bool { return true }

// ParentNotDirectoryError is returned when the parent of a target exists but is not a directory.
type ParentNotDirectoryError struct {
	Path string
}

func (e *ParentNotDirectoryError) Error() string  { return "parent is not a directory: " + e.Path }
func (e *ParentNotDirectoryError) Conflict() bool { return true }

// CrossRepositoryError is returned when copy or move endpoints live in different repositories.
type CrossRepositoryError struct {
	From string
	To   string
}

func (e *CrossRepositoryError) Error() string {
	return fmt.Sprintf("operation across different repositories is not allowed: %s -> %s", e.From, e.To)
}
func (e *CrossRepositoryError) CrossRepository() bool { return true }

// -- I/O --

// OpError wraps a failed filesystem call.
type OpError struct {
	Op    string
	Path  string
	Cause error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Cause)
}
func (e *OpError) Unwrap() error     { return e.Cause }
func (e *OpError) FileMissing() bool { return errors.Is(e.Cause, fs.ErrNotExist) }
func (e *OpError) IOError() bool     { return true }

// NotUTF8Error is returned when read content is not valid UTF-8.
type NotUTF8Error struct {
	Path    string
	Charset string
	Binary  bool
}

func (e *NotUTF8Error) Error() string {
	switch {
	case e.Binary:
		return "file is not valid UTF-8, binary files are not supported: " + e.Path
	case e.Charset != "":
		return fmt.Sprintf("file is not valid UTF-8 (looks like %s): %s", e.Charset, e.Path)
	}
	return "file is not valid UTF-8: " + e.Path
}
func (e *NotUTF8Error) IOError() bool { return true }
