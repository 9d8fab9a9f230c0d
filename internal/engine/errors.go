package engine

import (
	"fmt"

	"github.com/Cyclone1070/gitfs/internal/tool/errutil"
)

// ErrorResult is the error shape returned to callers of Call.
// The underlying error stays reachable through errors.As.
type ErrorResult struct {
	Code    errutil.Category `json:"code"`
	Message string           `json:"message"`

	cause error
}

func newErrorResult(err error) *ErrorResult {
	return &ErrorResult{Code: errutil.Classify(err), Message: err.Error(), cause: err}
}

func (e *ErrorResult) Error() string { return fmt.Sprintf("%s: %s", e.Code, e.Message) }
func (e *ErrorResult) Unwrap() error { return e.cause }

// UnknownToolError is returned by Call for a name with no registered tool.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string      { return fmt.Sprintf("tool %q does not exist", e.Name) }
func (e *UnknownToolError) InvalidInput() bool { return true }

// ArgumentError is returned when call arguments cannot be decoded into the tool's request.
type ArgumentError struct {
	Tool  string
	Cause error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid arguments for tool %q: %v", e.Tool, e.Cause)
}
func (e *ArgumentError) Unwrap() error      { return e.Cause }
func (e *ArgumentError) InvalidInput() bool { return true }
