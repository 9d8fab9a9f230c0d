package directory

import (
	"github.com/Cyclone1070/gitfs/internal/config"
	"github.com/Cyclone1070/gitfs/internal/tool/service/walk"
)

// -- List Files --

type ListFilesRequest struct {
	walk.Request
	IncludeDirs     bool `json:"include_dirs,omitempty"`
	IncludeMetadata bool `json:"include_metadata,omitempty"`
}

func (r *ListFilesRequest) Validate(cfg *config.Config) error {
	return r.Request.Validate(cfg.Tools.MaxListLimit)
}

// FileEntry is one listed entry. Size and Modified are set only when metadata was requested.
type FileEntry struct {
	Path     string `json:"path"`
	IsDir    bool   `json:"is_dir"`
	Size     *int64 `json:"size,omitempty"`
	Modified *int64 `json:"modified,omitempty"`
}

type ListFilesResponse struct {
	Entries []FileEntry `json:"entries"`
	HasMore bool        `json:"has_more"`
}

// -- Find Files --

const (
	MatchModeName = "name"
	MatchModePath = "path"
)

type FindFilesRequest struct {
	walk.Request
	Query         string `json:"query"`
	MatchMode     string `json:"match_mode,omitempty"`
	CaseSensitive bool   `json:"case_sensitive,omitempty"`
	IncludeDirs   *bool  `json:"include_dirs,omitempty"`
}

func (r *FindFilesRequest) Validate(cfg *config.Config) error {
	if r.Query == "" {
		return &QueryRequiredError{}
	}
	switch r.MatchMode {
	case "", MatchModeName, MatchModePath:
	default:
		return &InvalidMatchModeError{Mode: r.MatchMode}
	}
	return r.Request.Validate(cfg.Tools.MaxFindLimit)
}

type FindMatch struct {
	Path  string `json:"path"`
	IsDir bool   `json:"is_dir"`
}

type FindFilesResponse struct {
	Matches []FindMatch `json:"matches"`
	HasMore bool        `json:"has_more"`
}
