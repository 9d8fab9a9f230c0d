package errutil

import "errors"

// Category is the coarse error class surfaced to callers of the engine.
type Category string

const (
	CategoryInvalidWorkspace Category = "invalid_workspace"
	CategoryOutsideWorkspace Category = "outside_workspace"
	CategoryNotInRepository  Category = "not_in_repository"
	CategoryCrossRepository  Category = "cross_repository"
	CategoryInvalidInput     Category = "invalid_input"
	CategoryConflict         Category = "conflict"
	CategoryFileMissing      Category = "file_missing"
	CategoryIO               Category = "io"
	CategoryInternal         Category = "internal"
)

// Behavioral interfaces implemented by the typed errors of each tool package.
// Packages never import each other's error types; they only agree on these methods.
type (
	invalidWorkspace interface{ InvalidWorkspace() bool }
	outsideWorkspace interface{ OutsideWorkspace() bool }
	notInRepository  interface{ NotInRepository() bool }
	crossRepository  interface{ CrossRepository() bool }
	invalidInput     interface{ InvalidInput() bool }
	conflict         interface{ Conflict() bool }
	fileMissing      interface{ FileMissing() bool }
	ioError          interface{ IOError() bool }
)

// Classify maps an error chain onto a Category.
// The most specific marker wins: path safety before input, input before state, state before I/O.
func Classify(err error) Category {
	if err == nil {
		return ""
	}

	var iw invalidWorkspace
	if errors.As(err, &iw) && iw.InvalidWorkspace() {
		return CategoryInvalidWorkspace
	}
	var ow outsideWorkspace
	if errors.As(err, &ow) && ow.OutsideWorkspace() {
		return CategoryOutsideWorkspace
	}
	var nr notInRepository
	if errors.As(err, &nr) && nr.NotInRepository() {
		return CategoryNotInRepository
	}
	var cr crossRepository
	if errors.As(err, &cr) && cr.CrossRepository() {
		return CategoryCrossRepository
	}
	var ii invalidInput
	if errors.As(err, &ii) && ii.InvalidInput() {
		return CategoryInvalidInput
	}
	var c conflict
	if errors.As(err, &c) && c.Conflict() {
		return CategoryConflict
	}
	var fm fileMissing
	if errors.As(err, &fm) && fm.FileMissing() {
		return CategoryFileMissing
	}
	var io ioError
	if errors.As(err, &io) && io.IOError() {
		return CategoryIO
	}
	return CategoryInternal
}

// IsOutsideWorkspace reports whether err marks a sandbox escape.
func IsOutsideWorkspace(err error) bool {
	var ow outsideWorkspace
	return errors.As(err, &ow) && ow.OutsideWorkspace()
}

// IsFileMissing reports whether err marks a missing path.
func IsFileMissing(err error) bool {
	var fm fileMissing
	return errors.As(err, &fm) && fm.FileMissing()
}
