package inspect

import (
	"os"
)

const (
	KindFile    = "file"
	KindDir     = "dir"
	KindSymlink = "symlink"
	KindOther   = "other"
)

func kindOf(mode os.FileMode) string {
	switch {
	case mode&os.ModeSymlink != 0:
		return KindSymlink
	case mode.IsDir():
		return KindDir
	case mode.IsRegular():
		return KindFile
	}
	return KindOther
}

// -- Stat --

type StatPathRequest struct {
	Path string `json:"path"`
}

func (r *StatPathRequest) Validate() error {
	if r.Path == "" {
		return &PathRequiredError{}
	}
	return nil
}

type StatResult struct {
	Path       string `json:"path"`
	Exists     bool   `json:"exists"`
	Kind       string `json:"kind,omitempty"`
	Size       int64  `json:"size"`
	Modified   int64  `json:"modified"`
	Mode       uint32 `json:"mode"`
	LinkTarget string `json:"link_target,omitempty"`
}

// -- Path Info --

type PathInfoRequest struct {
	Path string `json:"path"`
}

func (r *PathInfoRequest) Validate() error {
	if r.Path == "" {
		return &PathRequiredError{}
	}
	return nil
}

type PathInfoResult struct {
	Input      string  `json:"input"`
	IsAbsolute bool    `json:"is_absolute"`
	Resolved   string  `json:"resolved"`
	Canonical  *string `json:"canonical,omitempty"`
	Exists     bool    `json:"exists"`
	WithinRoot bool    `json:"within_root"`
	RepoRoot   *string `json:"repo_root,omitempty"`
	Kind       string  `json:"kind,omitempty"`
	MimeType   string  `json:"mime_type,omitempty"`
}
