package engine

import (
	"github.com/Cyclone1070/gitfs/internal/config"
	"github.com/Cyclone1070/gitfs/internal/tool"
	"github.com/Cyclone1070/gitfs/internal/tool/directory"
	"github.com/Cyclone1070/gitfs/internal/tool/file"
	"github.com/Cyclone1070/gitfs/internal/tool/search"
)

// declarations builds tool schemas whose defaults reflect the active configuration.
type declarations struct {
	cfg *config.Config
}

func newDeclarations(cfg *config.Config) declarations {
	return declarations{cfg: cfg}
}

// traversal returns the properties shared by every enumerating tool.
func (d declarations) traversal(defaultLimit int) map[string]*tool.Schema {
	return map[string]*tool.Schema{
		"root":          tool.String("Directory to start from, relative to the workspace root or absolute inside a repository. Defaults to \".\"."),
		"recursive":     tool.Boolean("Descend into subdirectories.", true),
		"include_globs": tool.Strings("Only keep paths matching one of these globs (** supported). Patterns without a slash also match the base name."),
		"exclude_globs": tool.Strings("Drop paths matching any of these globs."),
		"max_results":   tool.Integer("Maximum number of results to return.", defaultLimit),
		"skip":          tool.Integer("Number of results to skip for pagination.", 0),
	}
}

func (d declarations) listFiles() tool.Declaration {
	props := d.traversal(d.cfg.Tools.DefaultListLimit)
	props["include_dirs"] = tool.Boolean("Include directories in the listing.", false)
	props["include_metadata"] = tool.Boolean("Include size and modification time.", false)
	return tool.Declaration{
		Name:        ToolListFiles,
		Description: "Lists files under a directory, honouring .gitignore rules and skipping hidden entries.",
		Parameters:  tool.Object(props),
	}
}

func (d declarations) findFiles() tool.Declaration {
	props := d.traversal(d.cfg.Tools.DefaultFindLimit)
	props["query"] = tool.String("Substring to look for.")
	props["match_mode"] = tool.Enum("Match against the entry name or its relative path.", directory.MatchModeName, directory.MatchModePath)
	props["case_sensitive"] = tool.Boolean("Match case exactly.", false)
	props["include_dirs"] = tool.Boolean("Report matching directories too.", true)
	return tool.Declaration{
		Name:        ToolFindFiles,
		Description: "Finds files and directories whose name or path contains a substring. Results are sorted by path.",
		Parameters:  tool.Object(props, "query"),
	}
}

func (d declarations) searchText() tool.Declaration {
	props := d.traversal(d.cfg.Tools.DefaultSearchLimit)
	props["query"] = tool.String("Text or regular expression to search for.")
	props["mode"] = tool.Enum("How the query is interpreted.", search.ModeLiteral, search.ModeRegex)
	props["case_sensitive"] = tool.Boolean("Match case exactly.", false)
	props["context_lines"] = tool.Integer("Lines of context before and after each hit.", d.cfg.Tools.DefaultSearchContextLines)
	return tool.Declaration{
		Name:        ToolSearchText,
		Description: "Searches file contents and returns at most one hit per line, sorted by path and line.",
		Parameters:  tool.Object(props, "query"),
	}
}

func (d declarations) readFile() tool.Declaration {
	return tool.Declaration{
		Name:        ToolReadFile,
		Description: "Reads a window of a UTF-8 text file, addressed either by bytes or by lines.",
		Parameters: tool.Object(map[string]*tool.Schema{
			"path":         tool.String("File to read."),
			"range_type":   tool.Enum("Addressing mode. Inferred from the other parameters when omitted.", file.RangeBytes, file.RangeLines),
			"offset_bytes": tool.Integer("Byte offset to start at.", 0),
			"max_bytes":    tool.Integer("Maximum bytes to return.", d.cfg.Tools.DefaultReadBytes),
			"start_line":   tool.Integer("1-based line to start at.", 1),
			"max_lines":    tool.Integer("Maximum lines to return.", d.cfg.Tools.DefaultReadLines),
		}, "path"),
	}
}

func (d declarations) statPath() tool.Declaration {
	return tool.Declaration{
		Name:        ToolStatPath,
		Description: "Reports whether a path exists and its kind, size, modification time and permission bits.",
		Parameters: tool.Object(map[string]*tool.Schema{
			"path": tool.String("Path to inspect."),
		}, "path"),
	}
}

func (d declarations) pathInfo() tool.Declaration {
	return tool.Declaration{
		Name:        ToolPathInfo,
		Description: "Explains how a path resolves: canonical form, containment, enclosing repository and MIME type.",
		Parameters: tool.Object(map[string]*tool.Schema{
			"path": tool.String("Path to explain."),
		}, "path"),
	}
}

func (d declarations) createFile() tool.Declaration {
	return tool.Declaration{
		Name:        ToolCreateFile,
		Description: "Creates a file atomically. Existing files are only replaced with overwrite=true.",
		Parameters: tool.Object(map[string]*tool.Schema{
			"path":           tool.String("File to create."),
			"content":        tool.String("File content."),
			"overwrite":      tool.Boolean("Replace an existing file.", false),
			"create_parents": tool.Boolean("Create missing parent directories.", false),
		}, "path"),
	}
}

func (d declarations) deletePath() tool.Declaration {
	return tool.Declaration{
		Name:        ToolDeletePath,
		Description: "Deletes a file, symlink or directory. The workspace root can never be deleted.",
		Parameters: tool.Object(map[string]*tool.Schema{
			"path":      tool.String("Path to delete."),
			"recursive": tool.Boolean("Allow deleting directories and their contents.", false),
			"force":     tool.Boolean("Succeed when the path does not exist.", false),
		}, "path"),
	}
}

func (d declarations) transfer(name, desc string) tool.Declaration {
	return tool.Declaration{
		Name:        name,
		Description: desc,
		Parameters: tool.Object(map[string]*tool.Schema{
			"from":           tool.String("Source file."),
			"to":             tool.String("Destination file."),
			"overwrite":      tool.Boolean("Replace an existing destination file.", false),
			"create_parents": tool.Boolean("Create missing parent directories of the destination.", true),
		}, "from", "to"),
	}
}

func (d declarations) copyPath() tool.Declaration {
	return d.transfer(ToolCopyPath, "Copies a regular file within one repository and reports its xxhash checksum.")
}

func (d declarations) movePath() tool.Declaration {
	return d.transfer(ToolMovePath, "Moves a regular file within one repository.")
}

func (d declarations) overwriteFile() tool.Declaration {
	return tool.Declaration{
		Name:        ToolOverwriteFile,
		Description: "Replaces the content of an existing file atomically, keeping its permissions.",
		Parameters: tool.Object(map[string]*tool.Schema{
			"path":    tool.String("Existing file to overwrite."),
			"content": tool.String("New content."),
		}, "path", "content"),
	}
}
