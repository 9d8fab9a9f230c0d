package globutil

import (
	"fmt"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// InvalidGlobError is returned when a pattern does not compile.
type InvalidGlobError struct {
	Pattern string
}

func (e *InvalidGlobError) Error() string {
	return fmt.Sprintf("invalid glob pattern %q", e.Pattern)
}
func (e *InvalidGlobError) InvalidInput() bool { return true }

// FilterSet keeps entries matched by any include pattern and by no exclude pattern.
// A nil include list matches everything; a nil exclude list matches nothing.
type FilterSet struct {
	include []string
	exclude []string
}

// NewFilterSet validates every pattern up front so a bad pattern fails before any traversal.
func NewFilterSet(include, exclude []string) (*FilterSet, error) {
	for _, list := range [][]string{include, exclude} {
		for _, p := range list {
			if !doublestar.ValidatePattern(p) {
				return nil, &InvalidGlobError{Pattern: p}
			}
		}
	}
	return &FilterSet{include: include, exclude: exclude}, nil
}

// Keep reports whether rel, a slash-separated path relative to the traversal start, survives the filters.
func (f *FilterSet) Keep(rel string) bool {
	if f == nil {
		return true
	}
	if len(f.include) > 0 && !matchAny(f.include, rel) {
		return false
	}
	return !matchAny(f.exclude, rel)
}

func matchAny(patterns []string, rel string) bool {
	base := path.Base(rel)
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
		if !strings.Contains(p, "/") {
			if ok, _ := doublestar.Match(p, base); ok {
				return true
			}
		}
	}
	return false
}
