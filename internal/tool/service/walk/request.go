package walk

import (
	"fmt"

	"github.com/Cyclone1070/gitfs/internal/tool/globutil"
)

// Request holds the fields shared by every enumerating operation.
type Request struct {
	Root         string   `json:"root,omitempty"`
	Recursive    *bool    `json:"recursive,omitempty"`
	IncludeGlobs []string `json:"include_globs,omitempty"`
	ExcludeGlobs []string `json:"exclude_globs,omitempty"`
	MaxResults   *int     `json:"max_results,omitempty"`
	Skip         int      `json:"skip,omitempty"`
}

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

// Validate checks skip and max_results against the configured hard cap.
func (r *Request) Validate(maxLimit int) error {
	if r.Skip < 0 {
		return &InvalidArgumentError{Field: "skip", Value: int64(r.Skip), Reason: "must not be negative"}
	}
	if r.MaxResults != nil {
		if *r.MaxResults < 0 {
			return &InvalidArgumentError{Field: "max_results", Value: int64(*r.MaxResults), Reason: "must not be negative"}
		}
		if maxLimit > 0 && *r.MaxResults > maxLimit {
			return &InvalidArgumentError{Field: "max_results", Value: int64(*r.MaxResults), Reason: fmt.Sprintf("exceeds maximum %d", maxLimit)}
		}
	}
	return nil
}

// StartPath returns the requested start, "." when unset.
func (r *Request) StartPath() string {
	if r.Root == "" {
		return "."
	}
	return r.Root
}

// IsRecursive returns the recursive flag, true when unset.
func (r *Request) IsRecursive() bool {
	return r.Recursive == nil || *r.Recursive
}

// Limit returns max_results or def when unset.
func (r *Request) Limit(def int) int {
	if r.MaxResults == nil {
		return def
	}
	return *r.MaxResults
}

// Filters compiles the glob lists.
func (r *Request) Filters() (*globutil.FilterSet, error) {
	return globutil.NewFilterSet(r.IncludeGlobs, r.ExcludeGlobs)
}

// Bool returns *p, or def when p is nil.
func Bool(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
