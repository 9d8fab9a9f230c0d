package file

import (
	"github.com/Cyclone1070/gitfs/internal/config"
)

const (
	RangeBytes = "bytes"
	RangeLines = "lines"
)

// -- Read File --

type ReadFileRequest struct {
	Path        string `json:"path"`
	RangeType   string `json:"range_type,omitempty"`
	OffsetBytes *int64 `json:"offset_bytes,omitempty"`
	MaxBytes    *int64 `json:"max_bytes,omitempty"`
	StartLine   *int64 `json:"start_line,omitempty"`
	MaxLines    *int64 `json:"max_lines,omitempty"`
}

func (r *ReadFileRequest) Validate(cfg *config.Config) error {
	if r.Path == "" {
		return &PathRequiredError{Field: "path"}
	}

	hasBytes := r.OffsetBytes != nil || r.MaxBytes != nil
	hasLines := r.StartLine != nil || r.MaxLines != nil
	switch r.RangeType {
	case "":
		if hasBytes && hasLines {
			return &MixedRangeError{}
		}
	case RangeBytes:
		if hasLines {
			return &MixedRangeError{RangeType: r.RangeType}
		}
	case RangeLines:
		if hasBytes {
			return &MixedRangeError{RangeType: r.RangeType}
		}
	default:
		return &InvalidRangeTypeError{Value: r.RangeType}
	}

	if r.OffsetBytes != nil && *r.OffsetBytes < 0 {
		return &InvalidArgumentError{Field: "offset_bytes", Value: *r.OffsetBytes, Reason: "must not be negative"}
	}
	if r.MaxBytes != nil && (*r.MaxBytes < 0 || *r.MaxBytes > cfg.Tools.MaxReadBytes) {
		return &InvalidArgumentError{Field: "max_bytes", Value: *r.MaxBytes, Reason: "must be between 0 and the configured maximum"}
	}
	if r.StartLine != nil && *r.StartLine < 1 {
		return &InvalidArgumentError{Field: "start_line", Value: *r.StartLine, Reason: "must be positive"}
	}
	if r.MaxLines != nil && (*r.MaxLines < 0 || *r.MaxLines > cfg.Tools.MaxReadLines) {
		return &InvalidArgumentError{Field: "max_lines", Value: *r.MaxLines, Reason: "must be between 0 and the configured maximum"}
	}
	return nil
}

// Kind returns the effective range type: lines when any line parameter is set, else bytes.
func (r *ReadFileRequest) Kind() string {
	if r.RangeType != "" {
		return r.RangeType
	}
	if r.StartLine != nil || r.MaxLines != nil {
		return RangeLines
	}
	return RangeBytes
}

// FileRange describes the window that was read.
type FileRange struct {
	RangeType   string `json:"range_type"`
	OffsetBytes *int64 `json:"offset_bytes,omitempty"`
	MaxBytes    *int64 `json:"max_bytes,omitempty"`
	StartLine   *int64 `json:"start_line,omitempty"`
	MaxLines    *int64 `json:"max_lines,omitempty"`
}

type ReadFileResponse struct {
	Path        string    `json:"path"`
	Content     string    `json:"content"`
	IsTruncated bool      `json:"is_truncated"`
	Range       FileRange `json:"range"`
}

// -- Create File --

type CreateFileRequest struct {
	Path          string `json:"path"`
	Content       string `json:"content,omitempty"`
	Overwrite     bool   `json:"overwrite,omitempty"`
	CreateParents bool   `json:"create_parents,omitempty"`
}

func (r *CreateFileRequest) Validate(cfg *config.Config) error {
	if r.Path == "" {
		return &PathRequiredError{Field: "path"}
	}
	if int64(len(r.Content)) > cfg.Tools.MaxWriteSize {
		return &ContentTooLargeError{Size: int64(len(r.Content)), Max: cfg.Tools.MaxWriteSize}
	}
	return nil
}

type CreateFileResponse struct {
	Path         string `json:"path"`
	Created      bool   `json:"created"`
	Overwritten  bool   `json:"overwritten"`
	BytesWritten int64  `json:"bytes_written"`
}

// -- Delete Path --

type DeletePathRequest struct {
	Path      string `json:"path"`
	Recursive bool   `json:"recursive,omitempty"`
	Force     bool   `json:"force,omitempty"`
}

func (r *DeletePathRequest) Validate(cfg *config.Config) error {
	if r.Path == "" {
		return &PathRequiredError{Field: "path"}
	}
	return nil
}

type DeletePathResponse struct {
	Path    string `json:"path"`
	Existed bool   `json:"existed"`
	Removed bool   `json:"removed"`
	WasDir  bool   `json:"was_dir"`
}

// -- Copy / Move --

type CopyPathRequest struct {
	From          string `json:"from"`
	To            string `json:"to"`
	Overwrite     bool   `json:"overwrite,omitempty"`
	CreateParents *bool  `json:"create_parents,omitempty"`
}

func (r *CopyPathRequest) Validate(cfg *config.Config) error {
	return validateEndpoints(r.From, r.To)
}

type CopyPathResponse struct {
	From        string `json:"from"`
	To          string `json:"to"`
	BytesCopied int64  `json:"bytes_copied"`
	Overwritten bool   `json:"overwritten"`
	Checksum    string `json:"checksum"`
}

type MovePathRequest struct {
	From          string `json:"from"`
	To            string `json:"to"`
	Overwrite     bool   `json:"overwrite,omitempty"`
	CreateParents *bool  `json:"create_parents,omitempty"`
}

func (r *MovePathRequest) Validate(cfg *config.Config) error {
	return validateEndpoints(r.From, r.To)
}

type MovePathResponse struct {
	From          string `json:"from"`
	To            string `json:"to"`
	Moved         bool   `json:"moved"`
	SourceExisted bool   `json:"source_existed"`
	Overwritten   bool   `json:"overwritten"`
}

func validateEndpoints(from, to string) error {
	if from == "" {
		return &PathRequiredError{Field: "from"}
	}
	if to == "" {
		return &PathRequiredError{Field: "to"}
	}
	return nil
}

// -- Overwrite File --

type OverwriteFileRequest struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

func (r *OverwriteFileRequest) Validate(cfg *config.Config) error {
	if r.Path == "" {
		return &PathRequiredError{Field: "path"}
	}
	if int64(len(r.Content)) > cfg.Tools.MaxWriteSize {
		return &ContentTooLargeError{Size: int64(len(r.Content)), Max: cfg.Tools.MaxWriteSize}
	}
	return nil
}

type OverwriteFileResponse struct {
	Path         string `json:"path"`
	BytesWritten int64  `json:"bytes_written"`
	PreviousSize int64  `json:"previous_size"`
}
