package inspect

import (
	"errors"
	"fmt"
	"io/fs"
)

// PathRequiredError is returned when the path argument is empty.
type PathRequiredError struct{}

func (e *PathRequiredError) Error() string      { return "path is required" }
func (e *PathRequiredError) InvalidInput() bool { return true }

// StatError is returned when an existing path cannot be inspected.
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
