package directory

import (
	"errors"
	"fmt"
	"io/fs"
)

// StatError is returned when the traversal start cannot be inspected.
type StatError struct {
	Path  string
	Cause error
}

func (e *StatError) Error() string {
	return fmt.Sprintf("failed to stat %s: %v", e.Path, e.Cause)
}
func (e *StatError) Unwrap() error     { return e.Cause }
func (e *StatError) FileMissing() bool { return errors.Is(e.Cause, fs.ErrNotExist) }
func (e *StatError) IOError() bool     { return true }

// NotDirectoryError is returned when the traversal start is not a directory.
type NotDirectoryError struct {
	Path string
}

func (e *NotDirectoryError) Error() string {
	return fmt.Sprintf("%s is not a directory", e.Path)
}
func (e *NotDirectoryError) InvalidInput() bool { return true }

// InvalidMatchModeError is returned for a match_mode other than name or path.
type InvalidMatchModeError struct {
	Mode string
}

func (e *InvalidMatchModeError) Error() string {
	return fmt.Sprintf("invalid match_mode %q: expected %q or %q", e.Mode, MatchModeName, MatchModePath)
}
func (e *InvalidMatchModeError) InvalidInput() bool { return true }

// QueryRequiredError is returned when query is empty.
type QueryRequiredError struct{}

func (e *QueryRequiredError) Error() string { return "query is required" }

func (e *QueryRequiredError) InvalidInput() bool { return true }
