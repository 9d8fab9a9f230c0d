package engine

import (
	"context"
	"sort"
	"time"

	"github.com/Cyclone1070/gitfs/internal/config"
	"github.com/Cyclone1070/gitfs/internal/tool"
	"github.com/Cyclone1070/gitfs/internal/tool/directory"
	"github.com/Cyclone1070/gitfs/internal/tool/file"
	"github.com/Cyclone1070/gitfs/internal/tool/inspect"
	"github.com/Cyclone1070/gitfs/internal/tool/search"
	"github.com/Cyclone1070/gitfs/internal/tool/service/fs"
	"github.com/Cyclone1070/gitfs/internal/tool/service/git"
	"github.com/Cyclone1070/gitfs/internal/tool/service/path"
	"github.com/Cyclone1070/gitfs/internal/tool/service/walk"
	"go.uber.org/zap"
)

// Tool names accepted by Call.
const (
	ToolListFiles     = "list_files"
	ToolFindFiles     = "find_files"
	ToolReadFile      = "read_file"
	ToolSearchText    = "search_text"
	ToolStatPath      = "stat_path"
	ToolPathInfo      = "path_info"
	ToolCreateFile    = "create_file"
	ToolDeletePath    = "delete_path"
	ToolCopyPath      = "copy_path"
	ToolMovePath      = "move_path"
	ToolOverwriteFile = "overwrite_file"
)

// Engine exposes every filesystem operation for one sandbox root.
// It holds no per-call state and is safe for concurrent use.
type Engine struct {
	root   string
	logger *zap.Logger

	list      *directory.ListFilesTool
	find      *directory.FindFilesTool
	read      *file.ReadFileTool
	search    *search.SearchTextTool
	stat      *inspect.StatPathTool
	info      *inspect.PathInfoTool
	create    *file.CreateFileTool
	delete    *file.DeletePathTool
	copy      *file.CopyPathTool
	move      *file.MovePathTool
	overwrite *file.OverwriteFileTool

	handlers map[string]handler
}

// New canonicalises root and wires every tool against it.
// An empty root means the current directory.
func New(root string, cfg *config.Config, logger *zap.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	canonical, err := path.CanonicaliseRoot(root)
	if err != nil {
		return nil, err
	}

	osfs := fs.NewOSFileSystem()
	resolver := path.NewResolver(canonical, cfg.Tools.RepoMarker)
	walker := walk.NewWalker(osfs, resolver, logger, git.GlobalPatterns(logger), cfg.Tools.WalkWorkers)

	e := &Engine{
		root:      canonical,
		logger:    logger,
		list:      directory.NewListFilesTool(osfs, resolver, walker, cfg),
		find:      directory.NewFindFilesTool(osfs, resolver, walker, cfg),
		read:      file.NewReadFileTool(osfs, resolver, cfg),
		search:    search.NewSearchTextTool(osfs, resolver, walker, logger, cfg),
		stat:      inspect.NewStatPathTool(osfs, resolver),
		info:      inspect.NewPathInfoTool(osfs, resolver),
		create:    file.NewCreateFileTool(osfs, resolver, cfg),
		delete:    file.NewDeletePathTool(osfs, resolver, cfg),
		copy:      file.NewCopyPathTool(osfs, resolver, cfg),
		move:      file.NewMovePathTool(osfs, resolver, cfg),
		overwrite: file.NewOverwriteFileTool(osfs, resolver, cfg),
	}
	e.register(cfg)

	logger.Debug("engine ready", zap.String("root", canonical))
	return e, nil
}

// Root returns the canonical sandbox root.
func (e *Engine) Root() string {
	return e.root
}

func (e *Engine) ListFiles(ctx context.Context, req *directory.ListFilesRequest) (*directory.ListFilesResponse, error) {
	return e.list.Run(ctx, req)
}

func (e *Engine) FindFiles(ctx context.Context, req *directory.FindFilesRequest) (*directory.FindFilesResponse, error) {
	return e.find.Run(ctx, req)
}

func (e *Engine) ReadFile(ctx context.Context, req *file.ReadFileRequest) (*file.ReadFileResponse, error) {
	return e.read.Run(ctx, req)
}

func (e *Engine) SearchText(ctx context.Context, req *search.SearchTextRequest) (*search.SearchTextResponse, error) {
	return e.search.Run(ctx, req)
}

func (e *Engine) StatPath(ctx context.Context, req *inspect.StatPathRequest) (*inspect.StatResult, error) {
	return e.stat.Run(ctx, req)
}

func (e *Engine) PathInfo(ctx context.Context, req *inspect.PathInfoRequest) (*inspect.PathInfoResult, error) {
	return e.info.Run(ctx, req)
}

func (e *Engine) CreateFile(ctx context.Context, req *file.CreateFileRequest) (*file.CreateFileResponse, error) {
	return e.create.Run(ctx, req)
}

func (e *Engine) DeletePath(ctx context.Context, req *file.DeletePathRequest) (*file.DeletePathResponse, error) {
	return e.delete.Run(ctx, req)
}

func (e *Engine) CopyPath(ctx context.Context, req *file.CopyPathRequest) (*file.CopyPathResponse, error) {
	return e.copy.Run(ctx, req)
}

func (e *Engine) MovePath(ctx context.Context, req *file.MovePathRequest) (*file.MovePathResponse, error) {
	return e.move.Run(ctx, req)
}

func (e *Engine) OverwriteFile(ctx context.Context, req *file.OverwriteFileRequest) (*file.OverwriteFileResponse, error) {
	return e.overwrite.Run(ctx, req)
}

// Call runs the named tool with JSON-style arguments. Every failure, including an unknown
// name or undecodable arguments, is returned as an *ErrorResult.
func (e *Engine) Call(ctx context.Context, name string, args map[string]any) (any, error) {
	h, ok := e.handlers[name]
	if !ok {
		return nil, newErrorResult(&UnknownToolError{Name: name})
	}

	start := time.Now()
	resp, err := h.Execute(ctx, args)
	if err != nil {
		res := newErrorResult(err)
		e.logger.Debug("tool call failed",
			zap.String("tool", name),
			zap.String("code", string(res.Code)),
			zap.Error(err),
		)
		return nil, res
	}
	e.logger.Debug("tool call", zap.String("tool", name), zap.Duration("took", time.Since(start)))
	return resp, nil
}

// Declarations returns the schema of every tool, sorted by name.
func (e *Engine) Declarations() []tool.Declaration {
	decls := make([]tool.Declaration, 0, len(e.handlers))
	for _, h := range e.handlers {
		decls = append(decls, h.Declaration())
	}
	sort.Slice(decls, func(i, j int) bool {
		return decls[i].Name < decls[j].Name
	})
	return decls
}

func (e *Engine) register(cfg *config.Config) {
	d := newDeclarations(cfg)
	e.handlers = map[string]handler{
		ToolListFiles:     newHandler(d.listFiles(), e.ListFiles),
		ToolFindFiles:     newHandler(d.findFiles(), e.FindFiles),
		ToolReadFile:      newHandler(d.readFile(), e.ReadFile),
		ToolSearchText:    newHandler(d.searchText(), e.SearchText),
		ToolStatPath:      newHandler(d.statPath(), e.StatPath),
		ToolPathInfo:      newHandler(d.pathInfo(), e.PathInfo),
		ToolCreateFile:    newHandler(d.createFile(), e.CreateFile),
		ToolDeletePath:    newHandler(d.deletePath(), e.DeletePath),
		ToolCopyPath:      newHandler(d.copyPath(), e.CopyPath),
		ToolMovePath:      newHandler(d.movePath(), e.MovePath),
		ToolOverwriteFile: newHandler(d.overwriteFile(), e.OverwriteFile),
	}
}
