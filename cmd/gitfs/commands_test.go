package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Cyclone1070/gitfs/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupWorkspace(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "hello.txt"), []byte("hello\nworld\n"), 0o644))
	return root
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCall_PrintsResult(t *testing.T) {
	root := setupWorkspace(t)

	out, err := run(t, "", "--root", root, "call", "read_file", `{"path":"hello.txt","max_lines":1}`)
	require.NoError(t, err)

	var resp map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "hello\n", resp["content"])
	assert.Equal(t, true, resp["is_truncated"])
}

func TestCall_ArgsFromStdin(t *testing.T) {
	root := setupWorkspace(t)

	out, err := run(t, `{"path":"hello.txt"}`, "--root", root, "call", "stat_path", "-")
	require.NoError(t, err)
	assert.Contains(t, out, `"exists": true`)
}

func TestCall_ToolErrorIsJSON(t *testing.T) {
	root := setupWorkspace(t)

	out, err := run(t, "", "--root", root, "call", "read_file", `{"path":"../escape.txt"}`)
	require.Error(t, err)
	assert.Equal(t, exitToolError, exitCode(err))

	var resp struct {
		Error engine.ErrorResult `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "outside_workspace", string(resp.Error.Code))
}

func TestCall_BadArguments(t *testing.T) {
	root := setupWorkspace(t)

	_, err := run(t, "", "--root", root, "call", "read_file", `[1,2]`)
	require.Error(t, err)
	assert.Equal(t, exitUsage, exitCode(err))
}

func TestTools(t *testing.T) {
	root := setupWorkspace(t)

	out, err := run(t, "", "--root", root, "tools")
	require.NoError(t, err)
	for _, name := range []string{engine.ToolListFiles, engine.ToolSearchText, engine.ToolMovePath} {
		assert.Contains(t, out, name)
	}

	out, err = run(t, "", "--root", root, "tools", "--json")
	require.NoError(t, err)
	var decls []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decls))
	assert.Len(t, decls, 11)
}
