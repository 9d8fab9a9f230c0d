package search

import (
	"github.com/Cyclone1070/gitfs/internal/config"
	"github.com/Cyclone1070/gitfs/internal/tool/service/walk"
)

const (
	ModeLiteral = "literal"
	ModeRegex   = "regex"
)

// SearchTextRequest represents the parameters for a SearchText operation
type SearchTextRequest struct {
	walk.Request
	Query         string `json:"query"`
	Mode          string `json:"mode,omitempty"`
	CaseSensitive bool   `json:"case_sensitive,omitempty"`
	ContextLines  *int   `json:"context_lines,omitempty"`
}

func (r *SearchTextRequest) Validate(cfg *config.Config) error {
	if r.Query == "" {
		return &QueryRequiredError{}
	}
	switch r.Mode {
	case "", ModeLiteral, ModeRegex:
	default:
		return &InvalidModeError{Mode: r.Mode}
	}
	if r.ContextLines != nil {
		if *r.ContextLines < 0 {
			return &walk.InvalidArgumentError{Field: "context_lines", Value: int64(*r.ContextLines), Reason: "must not be negative"}
		}
		if *r.ContextLines > cfg.Tools.MaxContextLines {
			return &walk.InvalidArgumentError{Field: "context_lines", Value: int64(*r.ContextLines), Reason: "exceeds maximum"}
		}
	}
	return r.Request.Validate(cfg.Tools.MaxSearchLimit)
}

// SearchHit is one matching line.
type SearchHit struct {
	Path          string   `json:"path"`
	Line          int      `json:"line"`   // 1-based
	Column        int      `json:"column"` // byte offset of the first match
	LineText      string   `json:"line_text"`
	ContextBefore []string `json:"context_before"`
	ContextAfter  []string `json:"context_after"`
}

// SearchTextResponse contains the result of a SearchText operation
type SearchTextResponse struct {
	Hits    []SearchHit `json:"hits"`
	HasMore bool        `json:"has_more"`
}
