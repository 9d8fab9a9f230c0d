package search

import (
	"context"
	"regexp"
	"sort"

	"github.com/Cyclone1070/gitfs/internal/config"
	"github.com/Cyclone1070/gitfs/internal/tool/helper/content"
	"github.com/Cyclone1070/gitfs/internal/tool/paginationutil"
	"github.com/Cyclone1070/gitfs/internal/tool/service/walk"
	"go.uber.org/zap"
)

// ctxCheckInterval is how many lines are scanned between context checks.
const ctxCheckInterval = 1024

// SearchTextTool handles content searching operations.
type SearchTextTool struct {
	fs       fileSystem
	resolver pathResolver
	walker   treeWalker
	logger   *zap.Logger
	config   *config.Config
}

// NewSearchTextTool creates a new SearchTextTool with injected dependencies.
func NewSearchTextTool(
	fs fileSystem,
	resolver pathResolver,
	walker treeWalker,
	logger *zap.Logger,
	cfg *config.Config,
) *SearchTextTool {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SearchTextTool{
		fs:       fs,
		resolver: resolver,
		walker:   walker,
		logger:   logger,
		config:   cfg,
	}
}

// scan holds the state shared by all workers of one search.
type scan struct {
	re           *regexp.Regexp
	contextLines int
	skip         int64
	tracker      *paginationutil.Tracker
	hits         *paginationutil.Collector[SearchHit]
}

// Run searches every non-ignored regular file below the root for the query.
// Files are memory-mapped and scanned line by line, with at most one hit per line.
// Hits count toward skip as soon as they are found; a hit that finds the page full marks
// has_more and stops the search. The page is returned sorted by path, then line.
func (t *SearchTextTool) Run(ctx context.Context, req *SearchTextRequest) (*SearchTextResponse, error) {
	if err := req.Validate(t.config); err != nil {
		return nil, err
	}
	limit := req.Limit(t.config.Tools.DefaultSearchLimit)
	if limit == 0 {
		return &SearchTextResponse{Hits: []SearchHit{}}, nil
	}

	re, err := compileQuery(req.Query, req.Mode, req.CaseSensitive)
	if err != nil {
		return nil, err
	}
	filters, err := req.Filters()
	if err != nil {
		return nil, err
	}

	res, err := t.resolver.ResolveScoped(req.StartPath())
	if err != nil {
		return nil, err
	}
	info, err := t.fs.Stat(res.Abs)
	if err != nil {
		return nil, &StatError{Path: res.Abs, Cause: err}
	}
	if !info.IsDir() {
		return nil, &NotDirectoryError{Path: req.StartPath()}
	}

	contextLines := t.config.Tools.DefaultSearchContextLines
	if req.ContextLines != nil {
		contextLines = *req.ContextLines
	}
	s := &scan{
		re:           re,
		contextLines: contextLines,
		skip:         int64(req.Skip),
		tracker:      &paginationutil.Tracker{},
		hits:         paginationutil.NewCollector[SearchHit](limit),
	}

	err = t.walker.WalkParallel(ctx, res.Abs, walk.Options{Recursive: req.IsRecursive(), Filters: filters}, func(e walk.Entry) error {
		if s.tracker.LimitHit() {
			return walk.ErrStop
		}
		if !e.IsRegular() {
			return nil
		}
		return t.searchFile(ctx, s, e)
	})
	if err != nil {
		return nil, err
	}

	hits := s.hits.Items()
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Path != hits[j].Path {
			return hits[i].Path < hits[j].Path
		}
		return hits[i].Line < hits[j].Line
	})
	return &SearchTextResponse{Hits: hits, HasMore: s.tracker.LimitHit()}, nil
}

// searchFile scans one file. Files that cannot be mapped are logged and skipped.
func (t *SearchTextTool) searchFile(ctx context.Context, s *scan, e walk.Entry) error {
	m, err := t.fs.MapFile(e.Path)
	if err != nil {
		t.logger.Warn("skipping unreadable file", zap.String("path", e.Path), zap.Error(err))
		return nil
	}
	defer m.Close()

	data := m.Bytes()
	if len(data) == 0 {
		return nil
	}

	display := e.Rel
	if t.resolver.Within(e.Path) {
		display = t.resolver.Display(e.Path)
	}

	idx := newLineIndex(data)
	for i := range idx {
		if s.tracker.LimitHit() {
			return walk.ErrStop
		}
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		line := idx.line(data, i)
		loc := s.re.FindIndex(line)
		if loc == nil {
			continue
		}
		if s.tracker.See() <= s.skip {
			continue
		}

		before, after := idx.context(data, i, s.contextLines)
		hit := SearchHit{
			Path:          display,
			Line:          i + 1,
			Column:        loc[0],
			LineText:      content.Lossy(line),
			ContextBefore: before,
			ContextAfter:  after,
		}
		if !s.hits.TryAdd(hit) {
			s.tracker.MarkLimit()
			return walk.ErrStop
		}
	}
	return nil
}

func compileQuery(query, mode string, caseSensitive bool) (*regexp.Regexp, error) {
	pattern := query
	if mode != ModeRegex {
		pattern = regexp.QuoteMeta(query)
	}
	if !caseSensitive {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &InvalidRegexError{Query: query, Cause: err}
	}
	return re, nil
}
