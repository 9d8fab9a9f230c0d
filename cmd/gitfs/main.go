// Package main provides the gitfs command-line interface: a sandboxed, git-aware view of
// one working tree, driven through the same tool calls the engine exposes.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/Cyclone1070/gitfs/internal/engine"
)

// Exit codes.
const (
	exitOK        = 0
	exitToolError = 1
	exitUsage     = 2
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var res *engine.ErrorResult
	if errors.As(err, &res) {
		return exitToolError
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	return exitUsage
}
