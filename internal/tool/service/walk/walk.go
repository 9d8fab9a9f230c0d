package walk

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/Cyclone1070/gitfs/internal/tool/globutil"
	"github.com/Cyclone1070/gitfs/internal/tool/service/git"
	"github.com/charlievieth/fastwalk"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
	"go.uber.org/zap"
)

// ErrStop is returned by a VisitFunc to end the walk without an error.
var ErrStop = errors.New("walk stopped")

// WalkError is returned when the start directory itself cannot be walked.
type WalkError struct {
	Path  string
	Cause error
}

func (e *WalkError) Error() string {
	return fmt.Sprintf("failed to walk %s: %v", e.Path, e.Cause)
}
func (e *WalkError) Unwrap() error     { return e.Cause }
func (e *WalkError) FileMissing() bool { return errors.Is(e.Cause, fs.ErrNotExist) }
func (e *WalkError) IOError() bool     { return true }

// Entry is one filesystem entry that survived the ignore rules and filters.
type Entry struct {
	Path  string // absolute
	Rel   string // slash-separated, relative to the walk start
	IsDir bool

	dirent fs.DirEntry
}

// Name returns the base name of the entry.
func (e Entry) Name() string { return e.dirent.Name() }

// IsSymlink reports whether the entry is a symbolic link. Links are never followed.
func (e Entry) IsSymlink() bool { return e.dirent.Type()&fs.ModeSymlink != 0 }

// IsRegular reports whether the entry is a regular file.
func (e Entry) IsRegular() bool { return e.dirent.Type().IsRegular() }

// Info returns the lstat information of the entry.
func (e Entry) Info() (fs.FileInfo, error) { return e.dirent.Info() }

// VisitFunc receives each surviving entry. In parallel walks it is called concurrently.
type VisitFunc func(e Entry) error

// Options controls a single walk.
type Options struct {
	Recursive bool
	Filters   *globutil.FilterSet
}

// fileSystem is what the ignore rules need to read their files.
type fileSystem interface {
	ReadFileRange(path string, offset, limit int64) ([]byte, error)
}

// repoLocator finds the repository that anchors the ignore rules.
type repoLocator interface {
	FindRepoRoot(path string) (string, bool)
}

// Walker enumerates directory trees with gitignore semantics. Hidden entries are skipped,
// symlinks are reported but not followed, and the start itself is never visited.
type Walker struct {
	fs      fileSystem
	repos   repoLocator
	logger  *zap.Logger
	global  []gitignore.Pattern
	workers int
}

// NewWalker creates a Walker. workers <= 0 means one worker per CPU for parallel walks.
func NewWalker(fs fileSystem, repos repoLocator, logger *zap.Logger, global []gitignore.Pattern, workers int) *Walker {
	if fs == nil {
		panic("fs is required")
	}
	if repos == nil {
		panic("repos is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Walker{fs: fs, repos: repos, logger: logger, global: global, workers: workers}
}

// Walk visits entries one at a time in lexical order.
func (w *Walker) Walk(ctx context.Context, start string, opts Options, visit VisitFunc) error {
	fn, err := w.callback(ctx, start, opts, visit)
	if err != nil {
		return err
	}
	return finish(filepath.WalkDir(start, fn), start)
}

// WalkParallel visits entries from several goroutines in no particular order.
func (w *Walker) WalkParallel(ctx context.Context, start string, opts Options, visit VisitFunc) error {
	fn, err := w.callback(ctx, start, opts, visit)
	if err != nil {
		return err
	}
	conf := fastwalk.Config{Follow: false, NumWorkers: w.workers}
	return finish(fastwalk.Walk(&conf, start, fn), start)
}

func finish(err error, start string) error {
	switch {
	case err == nil, errors.Is(err, ErrStop), errors.Is(err, fs.SkipDir), errors.Is(err, fs.SkipAll):
		return nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	}
	var walkErr *WalkError
	if errors.As(err, &walkErr) {
		return err
	}
	return &WalkError{Path: start, Cause: err}
}

func (w *Walker) callback(ctx context.Context, start string, opts Options, visit VisitFunc) (fs.WalkDirFunc, error) {
	repoRoot, _ := w.repos.FindRepoRoot(start)
	base := start
	if repoRoot != "" {
		base = repoRoot
	}
	matcher, err := git.NewIgnoreMatcher(base, start, repoRoot, w.fs, w.global)
	if err != nil {
		return nil, &WalkError{Path: start, Cause: err}
	}

	return func(p string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if p == start {
			if err != nil {
				return &WalkError{Path: start, Cause: err}
			}
			return nil
		}
		if err != nil {
			// fastwalk reports a visitor's early stop a second time as a readDir failure
			if errors.Is(err, ErrStop) {
				return err
			}
			// fastwalk would return SkipDir from here as the walk result
			w.logger.Warn("skipping unreadable entry", zap.String("path", p), zap.Error(err))
			return nil
		}

		isDir := d.IsDir()
		if strings.HasPrefix(d.Name(), ".") || matcher.ShouldIgnore(p, isDir) {
			if isDir {
				return filepath.SkipDir
			}
			return nil
		}
		if isDir && opts.Recursive {
			if err := matcher.LoadDir(p); err != nil {
				w.logger.Warn("ignoring unreadable ignore file", zap.String("path", p), zap.Error(err))
			}
		}

		rel, relErr := filepath.Rel(start, p)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if opts.Filters.Keep(rel) {
			if err := visit(Entry{Path: p, Rel: rel, IsDir: isDir, dirent: d}); err != nil {
				return err
			}
		}
		if isDir && !opts.Recursive {
			return filepath.SkipDir
		}
		return nil
	}, nil
}
