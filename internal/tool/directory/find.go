package directory

import (
	"context"
	"regexp"
	"strings"

	"github.com/Cyclone1070/gitfs/internal/config"
	"github.com/Cyclone1070/gitfs/internal/tool/paginationutil"
	"github.com/Cyclone1070/gitfs/internal/tool/service/walk"
)

// FindFilesTool handles substring search over entry names or paths.
type FindFilesTool struct {
	fs       dirStatter
	resolver pathResolver
	walker   treeWalker
	config   *config.Config
}

// NewFindFilesTool creates a new FindFilesTool with injected dependencies.
func NewFindFilesTool(fs dirStatter, resolver pathResolver, walker treeWalker, cfg *config.Config) *FindFilesTool {
	return &FindFilesTool{
		fs:       fs,
		resolver: resolver,
		walker:   walker,
		config:   cfg,
	}
}

// Run walks the tree in parallel and returns one page of matches sorted by path.
// Only the skip+max_results smallest paths are retained, so a page never depends on the order
// workers reach entries in. The walk therefore always covers the whole subtree; it does not
// stop once enough matches are seen.
func (t *FindFilesTool) Run(ctx context.Context, req *FindFilesRequest) (*FindFilesResponse, error) {
	if err := req.Validate(t.config); err != nil {
		return nil, err
	}
	limit := req.Limit(t.config.Tools.DefaultFindLimit)
	if limit == 0 {
		return &FindFilesResponse{Matches: []FindMatch{}}, nil
	}

	filters, err := req.Filters()
	if err != nil {
		return nil, err
	}
	start, err := resolveDir(t.resolver, t.fs, req.StartPath())
	if err != nil {
		return nil, err
	}

	match := substringMatcher(req.Query, req.CaseSensitive)
	byPath := req.MatchMode == MatchModePath
	includeDirs := walk.Bool(req.IncludeDirs, true)

	needed := req.Skip + limit
	top := paginationutil.NewTopN(needed, func(a, b FindMatch) bool { return a.Path < b.Path })

	err = t.walker.WalkParallel(ctx, start, walk.Options{Recursive: req.IsRecursive(), Filters: filters}, func(e walk.Entry) error {
		if e.IsDir && !includeDirs {
			return nil
		}
		subject := e.Name()
		if byPath {
			subject = e.Rel
		}
		if match(subject) {
			top.Offer(FindMatch{Path: e.Rel, IsDir: e.IsDir})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	page, more := paginationutil.Page(top.Sorted(), req.Skip, limit)
	return &FindFilesResponse{
		Matches: page,
		HasMore: top.Overflowed() || more,
	}, nil
}

func substringMatcher(query string, caseSensitive bool) func(string) bool {
	if caseSensitive {
		return func(s string) bool { return strings.Contains(s, query) }
	}
	re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(query))
	return re.MatchString
}
