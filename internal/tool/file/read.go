package file

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/Cyclone1070/gitfs/internal/config"
	"github.com/Cyclone1070/gitfs/internal/tool/helper/content"
	"github.com/saintfish/chardet"
)

// ReadFileTool handles file reading operations.
type ReadFileTool struct {
	fs       fileReader
	resolver pathResolver
	config   *config.Config
}

// NewReadFileTool creates a new ReadFileTool with injected dependencies.
func NewReadFileTool(fs fileReader, resolver pathResolver, cfg *config.Config) *ReadFileTool {
	return &ReadFileTool{
		fs:       fs,
		resolver: resolver,
		config:   cfg,
	}
}

// Run reads one window of a file, addressed either by bytes or by lines.
// Parameter conflicts are rejected before the file is touched.
//
// Note: ctx is accepted for API consistency but not used - file I/O is synchronous.
func (t *ReadFileTool) Run(ctx context.Context, req *ReadFileRequest) (*ReadFileResponse, error) {
	if err := req.Validate(t.config); err != nil {
		return nil, err
	}

	res, err := t.resolver.ResolveScoped(req.Path)
	if err != nil {
		return nil, err
	}
	info, err := t.fs.Stat(res.Abs)
	if err != nil {
		return nil, &OpError{Op: "stat", Path: res.Abs, Cause: err}
	}
	if !info.Mode().IsRegular() {
		return nil, &NotRegularFileError{Path: req.Path}
	}

	resp := &ReadFileResponse{Path: t.resolver.Display(res.Abs)}
	if req.Kind() == RangeLines {
		start := valueOr(req.StartLine, 1)
		limit := valueOr(req.MaxLines, t.config.Tools.DefaultReadLines)
		resp.Range = FileRange{RangeType: RangeLines, StartLine: &start, MaxLines: &limit}
		resp.Content, resp.IsTruncated, err = t.readLines(res.Abs, start, limit)
	} else {
		offset := valueOr(req.OffsetBytes, 0)
		limit := valueOr(req.MaxBytes, t.config.Tools.DefaultReadBytes)
		resp.Range = FileRange{RangeType: RangeBytes, OffsetBytes: &offset, MaxBytes: &limit}
		resp.Content, err = t.readBytes(res.Abs, offset, limit)
		resp.IsTruncated = offset+limit < info.Size()
	}
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (t *ReadFileTool) readBytes(abs string, offset, limit int64) (string, error) {
	if limit == 0 {
		return "", nil
	}
	data, err := t.fs.ReadFileRange(abs, offset, limit)
	if err != nil {
		return "", &OpError{Op: "read", Path: abs, Cause: err}
	}
	if !utf8.Valid(data) {
		return "", notUTF8(abs, data)
	}
	return string(data), nil
}

// readLines collects up to limit lines starting at the 1-based start line, each terminated by
// a single newline. The window is truncated only when another line follows it.
func (t *ReadFileTool) readLines(abs string, start, limit int64) (string, bool, error) {
	f, err := t.fs.Open(abs)
	if err != nil {
		return "", false, &OpError{Op: "open", Path: abs, Cause: err}
	}
	defer f.Close()

	r := bufio.NewReader(f)
	var b strings.Builder
	var lineNo, collected int64
	for {
		line, err := r.ReadBytes('\n')
		if len(line) > 0 {
			lineNo++
			if lineNo >= start {
				if collected == limit {
					return b.String(), true, nil
				}
				line = content.TrimCR(bytes.TrimSuffix(line, []byte{'\n'}))
				if !utf8.Valid(line) {
					return "", false, notUTF8(abs, line)
				}
				b.Write(line)
				b.WriteByte('\n')
				collected++
			}
		}
		if errors.Is(err, io.EOF) {
			return b.String(), false, nil
		}
		if err != nil {
			return "", false, &OpError{Op: "read", Path: abs, Cause: err}
		}
	}
}

func notUTF8(abs string, sample []byte) *NotUTF8Error {
	e := &NotUTF8Error{Path: abs, Binary: content.IsBinaryContent(sample)}
	if !e.Binary {
		if guess, err := chardet.NewTextDetector().DetectBest(sample); err == nil {
			e.Charset = guess.Charset
		}
	}
	return e
}

func valueOr(p *int64, def int64) int64 {
	if p == nil {
		return def
	}
	return *p
}
