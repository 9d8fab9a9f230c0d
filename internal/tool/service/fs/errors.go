package fs

import (
	"errors"
	"fmt"
)

// Stages of an atomic write, reported by AtomicWriteError.
const (
	StageCreateTemp = "create temp file"
	StageWrite      = "write temp file"
	StageSync       = "sync temp file"
	StageClose      = "close temp file"
	StageChmod      = "set permissions"
	StageRename     = "rename into place"
)

// AtomicWriteError is returned when one stage of WriteFileAtomicFrom fails.
// The target is left untouched whatever the stage.
type AtomicWriteError struct {
	Stage string
	Path  string
	Cause error
}

func (e *AtomicWriteError) Error() string {
	return fmt.Sprintf("atomic write of %s failed to %s: %v", e.Path, e.Stage, e.Cause)
}
func (e *AtomicWriteError) Unwrap() error { return e.Cause }

// MapError is returned when a file cannot be memory-mapped.
type MapError struct {
	Path  string
	Cause error
}

func (e *MapError) Error() string {
	return fmt.Sprintf("failed to map %s: %v", e.Path, e.Cause)
}
func (e *MapError) Unwrap() error { return e.Cause }

var (
	ErrInvalidOffset = errors.New("invalid offset")
	ErrFileTooLarge  = errors.New("file too large to map")
)
