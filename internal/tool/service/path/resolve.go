package path

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

// DefaultRepoMarker is the entry whose presence marks a repository root.
const DefaultRepoMarker = ".git"

// Resolved is an input path after resolution.
type Resolved struct {
	Input       string
	Abs         string
	WasAbsolute bool
}

// Resolver enforces the sandbox rules for one canonical root.
// Relative inputs must stay under the root; absolute inputs must sit inside a repository.
type Resolver struct {
	root   string
	marker string
}

// NewResolver creates a resolver for a root already returned by CanonicaliseRoot.
func NewResolver(root, marker string) *Resolver {
	if marker == "" {
		marker = DefaultRepoMarker
	}
	return &Resolver{root: root, marker: marker}
}

// Root returns the canonical workspace root.
func (r *Resolver) Root() string {
	return r.root
}

// CanonicaliseRoot canonicalises a workspace root path by making it absolute and resolving symlinks.
// Returns an error if the path doesn't exist or isn't a directory.
func CanonicaliseRoot(root string) (string, error) {
	if root == "" {
		root = "."
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", &WorkspaceRootError{Root: root, Cause: err}
	}

	resolved, err := filepath.EvalSymlinks(absRoot)
	if err != nil {
		return "", &WorkspaceRootError{Root: absRoot, Cause: err}
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", &WorkspaceRootError{Root: resolved, Cause: err}
	}
	if !info.IsDir() {
		return "", &WorkspaceRootError{Root: resolved, Cause: fmt.Errorf("%w: %s", ErrNotADirectory, resolved)}
	}
	return resolved, nil
}

// Join returns the lexical absolute form of input: cleaned if absolute, joined onto the root otherwise.
func (r *Resolver) Join(input string) string {
	if filepath.IsAbs(input) {
		return filepath.Clean(input)
	}
	return filepath.Join(r.root, input)
}

// Within reports whether abs is the root or a descendant of it.
func (r *Resolver) Within(abs string) bool {
	return isWithin(r.root, abs)
}

// CheckLexical rejects relative inputs whose cleaned join already escapes the root,
// before anything touches the filesystem.
func (r *Resolver) CheckLexical(input string) error {
	if input == "" {
		return &InvalidPathError{Reason: "path is empty"}
	}
	if filepath.IsAbs(input) {
		return nil
	}
	if !r.Within(r.Join(input)) {
		return &OutsideWorkspaceError{Path: input}
	}
	return nil
}

// Resolve canonicalises an existing path. Relative inputs must stay under the root both
// lexically and after symlinks are followed.
func (r *Resolver) Resolve(input string) (Resolved, error) {
	if input == "" {
		return Resolved{}, &InvalidPathError{Reason: "path is empty"}
	}
	wasAbs := filepath.IsAbs(input)
	joined := r.Join(input)
	if !wasAbs && !r.Within(joined) {
		return Resolved{}, &OutsideWorkspaceError{Path: input}
	}

	canonical, err := filepath.EvalSymlinks(joined)
	if err != nil {
		return Resolved{}, &CanonicalizeError{Path: joined, Cause: err}
	}
	if !wasAbs && !r.Within(canonical) {
		return Resolved{}, &OutsideWorkspaceError{Path: input}
	}
	return Resolved{Input: input, Abs: canonical, WasAbsolute: wasAbs}, nil
}

// ResolveScoped is Resolve plus the repository requirement for absolute inputs.
func (r *Resolver) ResolveScoped(input string) (Resolved, error) {
	res, err := r.Resolve(input)
	if err != nil {
		return Resolved{}, err
	}
	if res.WasAbsolute {
		if _, ok := r.FindRepoRoot(res.Abs); !ok {
			return Resolved{}, &NotInRepositoryError{Path: input}
		}
	}
	return res, nil
}

// ResolveTarget resolves a path that may not exist yet. The final component must be a
// plain name. The nearest existing ancestor is canonicalised and the missing tail appended,
// and the sandbox rules are applied to the resulting parent directory.
func (r *Resolver) ResolveTarget(input string) (Resolved, error) {
	if input == "" {
		return Resolved{}, &InvalidPathError{Reason: "path is empty"}
	}
	name := lastComponent(input)
	if name == "" || name == "." || name == ".." {
		return Resolved{}, &InvalidPathError{Path: input, Reason: "final component must be a file name"}
	}

	wasAbs := filepath.IsAbs(input)
	joined := r.Join(input)
	if !wasAbs && !r.Within(joined) {
		return Resolved{}, &OutsideWorkspaceError{Path: input}
	}

	parent, err := canonicalizeExisting(filepath.Dir(joined))
	if err != nil {
		return Resolved{}, err
	}

	if wasAbs {
		if _, ok := r.FindRepoRoot(parent); !ok {
			return Resolved{}, &NotInRepositoryError{Path: input}
		}
	} else if !r.Within(parent) {
		return Resolved{}, &OutsideWorkspaceError{Path: input}
	}

	return Resolved{Input: input, Abs: filepath.Join(parent, name), WasAbsolute: wasAbs}, nil
}

// FindRepoRoot walks upward from path looking for the repository marker.
func (r *Resolver) FindRepoRoot(path string) (string, bool) {
	cur := filepath.Clean(path)
	for {
		if _, err := os.Lstat(filepath.Join(cur, r.marker)); err == nil {
			return cur, true
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return "", false
		}
		cur = parent
	}
}

// Display renders abs relative to the root when it lies under it, otherwise unchanged.
func (r *Resolver) Display(abs string) string {
	if r.Within(abs) {
		return RelTo(r.root, abs)
	}
	return abs
}

// RelTo returns target relative to base with forward slashes.
// Targets that cannot be expressed below base are returned as given.
func RelTo(base, target string) string {
	rel, err := filepath.Rel(base, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return target
	}
	return filepath.ToSlash(rel)
}

func isWithin(root, abs string) bool {
	if abs == root {
		return true
	}
	prefix := root
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	return strings.HasPrefix(abs, prefix)
}

func lastComponent(input string) string {
	trimmed := strings.TrimRight(input, "/"+string(filepath.Separator))
	if trimmed == "" {
		return ""
	}
	return filepath.Base(trimmed)
}

// canonicalizeExisting resolves the longest existing prefix of p and re-appends the rest.
func canonicalizeExisting(p string) (string, error) {
	var missing []string
	cur := p
	for {
		resolved, err := filepath.EvalSymlinks(cur)
		if err == nil {
			for i := len(missing) - 1; i >= 0; i-- {
				resolved = filepath.Join(resolved, missing[i])
			}
			return resolved, nil
		}
		if !errors.Is(err, fs.ErrNotExist) && !errors.Is(err, syscall.ENOTDIR) {
			return "", &CanonicalizeError{Path: cur, Cause: err}
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &CanonicalizeError{Path: p, Cause: err}
		}
		missing = append(missing, filepath.Base(cur))
		cur = parent
	}
}
