package git

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Cyclone1070/gitfs/internal/tool/helper/content"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// IgnoreFiles are the per-directory rule files, lowest precedence first.
var IgnoreFiles = []string{".gitignore", ".ignore"}

// IgnoreFileReadError is returned when an ignore file exists but cannot be read.
type IgnoreFileReadError struct {
	Path  string
	Cause error
}

func (e *IgnoreFileReadError) Error() string {
	return fmt.Sprintf("failed to read ignore file at %s: %v", e.Path, e.Cause)
}
func (e *IgnoreFileReadError) Unwrap() error { return e.Cause }
func (e *IgnoreFileReadError) IOError() bool { return true }

// fileSystem defines the minimal filesystem interface needed for ignore matching.
type fileSystem interface {
	ReadFileRange(path string, offset, limit int64) ([]byte, error)
}

// IgnoreMatcher evaluates gitignore rules for one traversal.
// Rules are anchored at a base directory (the repository root when there is one) and
// loaded lazily, one directory at a time, as the traversal descends. Safe for concurrent use.
type IgnoreMatcher struct {
	base string
	fs   fileSystem

	// lowest precedence rules: global excludes, then .git/info/exclude
	fallback []gitignore.Pattern

	mu     sync.RWMutex
	byDir  map[string][]gitignore.Pattern
	loaded map[string]bool
}

// NewIgnoreMatcher creates a matcher anchored at base and preloads the rule files of
// every directory from base down to start. repoRoot is empty when base is not a repository.
func NewIgnoreMatcher(base, start, repoRoot string, fs fileSystem, global []gitignore.Pattern) (*IgnoreMatcher, error) {
	if base == "" {
		panic("base is required")
	}
	if fs == nil {
		panic("fs is required")
	}

	m := &IgnoreMatcher{
		base:   base,
		fs:     fs,
		byDir:  make(map[string][]gitignore.Pattern),
		loaded: make(map[string]bool),
	}
	m.fallback = append(m.fallback, global...)

	if repoRoot != "" {
		exclude, err := m.readPatterns(filepath.Join(repoRoot, ".git", "info", "exclude"), nil)
		if err != nil {
			return nil, err
		}
		m.fallback = append(m.fallback, exclude...)
	}

	dirs := []string{start}
	for cur := start; cur != base; {
		parent := filepath.Dir(cur)
		if parent == cur || !strings.HasPrefix(cur, base) {
			break
		}
		dirs = append(dirs, parent)
		cur = parent
	}
	for i := len(dirs) - 1; i >= 0; i-- {
		if err := m.LoadDir(dirs[i]); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// LoadDir reads the rule files of dir if they have not been read yet.
// Directories outside the base are ignored.
func (m *IgnoreMatcher) LoadDir(dir string) error {
	rel, ok := m.rel(dir)
	if !ok {
		return nil
	}

	m.mu.RLock()
	done := m.loaded[rel]
	m.mu.RUnlock()
	if done {
		return nil
	}

	domain := splitPath(rel)
	var patterns []gitignore.Pattern
	for _, name := range IgnoreFiles {
		ps, err := m.readPatterns(filepath.Join(dir, name), domain)
		if err != nil {
			return err
		}
		patterns = append(patterns, ps...)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.loaded[rel] {
		m.loaded[rel] = true
		if len(patterns) > 0 {
			m.byDir[rel] = patterns
		}
	}
	return nil
}

// ShouldIgnore reports whether the absolute path is excluded by the loaded rules.
// Rules of deeper directories take precedence, and later lines beat earlier ones.
func (m *IgnoreMatcher) ShouldIgnore(path string, isDir bool) bool {
	rel, ok := m.rel(path)
	if !ok || rel == "" {
		return false
	}
	segments := splitPath(rel)

	m.mu.RLock()
	chain := make([][]gitignore.Pattern, 0, len(segments)+1)
	chain = append(chain, m.fallback)
	for i := 0; i < len(segments); i++ {
		if ps, ok := m.byDir[strings.Join(segments[:i], "/")]; ok {
			chain = append(chain, ps)
		}
	}
	m.mu.RUnlock()

	for i := len(chain) - 1; i >= 0; i-- {
		ps := chain[i]
		for j := len(ps) - 1; j >= 0; j-- {
			switch ps[j].Match(segments, isDir) {
			case gitignore.Exclude:
				return true
			case gitignore.Include:
				return false
			}
		}
	}
	return false
}

func (m *IgnoreMatcher) rel(path string) (string, bool) {
	rel, err := filepath.Rel(m.base, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	if rel == "." {
		return "", true
	}
	return filepath.ToSlash(rel), true
}

func (m *IgnoreMatcher) readPatterns(path string, domain []string) ([]gitignore.Pattern, error) {
	data, err := m.fs.ReadFileRange(path, 0, 0)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, errNotDir) {
			return nil, nil
		}
		return nil, &IgnoreFileReadError{Path: path, Cause: err}
	}
	return ParsePatterns(data, domain), nil
}

// ParsePatterns parses the contents of an ignore file. Blank lines and comments are skipped.
func ParsePatterns(data []byte, domain []string) []gitignore.Pattern {
	var patterns []gitignore.Pattern
	for _, line := range content.SplitLines(data) {
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, domain))
	}
	return patterns
}

// splitPath splits a slash path into segments, dropping empty and "." parts.
func splitPath(path string) []string {
	if path == "" {
		return nil
	}
	var segments []string
	for _, part := range strings.Split(path, "/") {
		if part != "" && part != "." {
			segments = append(segments, part)
		}
	}
	return segments
}
