package search

import (
	"errors"
	"fmt"
	"io/fs"
)

// QueryRequiredError is returned when query is empty.
type QueryRequiredError struct{}

func (e *QueryRequiredError) Error() string { return "query is required" }

func (e *QueryRequiredError) InvalidInput() bool { return true }

// InvalidModeError is returned for a mode other than literal or regex.
type InvalidModeError struct {
	Mode string
}

func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("invalid mode %q: expected %q or %q", e.Mode, ModeLiteral, ModeRegex)
}

func (e *InvalidModeError) InvalidInput() bool { return true }

// InvalidRegexError is returned when the query does not compile.
type InvalidRegexError struct {
	Query string
	Cause error
}

func (e *InvalidRegexError) Error() string {
	return fmt.Sprintf("invalid regular expression %q: %v", e.Query, e.Cause)
}
func (e *InvalidRegexError) Unwrap() error      { return e.Cause }
func (e *InvalidRegexError) InvalidInput() bool { return true }

// NotDirectoryError is returned when the search root is not a directory.
type NotDirectoryError struct {
	Path string
}

func (e *NotDirectoryError) Error() string {
	return "search path is not a directory: " + e.Path
}

func (e *NotDirectoryError) InvalidInput() bool { return true }

// StatError is returned when stat fails.
type StatError struct {
	Path  string
	Cause error
}

func (e *StatError) Error() string {
	return fmt.Sprintf("failed to stat search path %s: %v", e.Path, e.Cause)
}
func (e *StatError) Unwrap() error     { return e.Cause }
func (e *StatError) FileMissing() bool { return errors.Is(e.Cause, fs.ErrNotExist) }
func (e *StatError) IOError() bool     { return true }
