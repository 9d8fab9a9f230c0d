package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Cyclone1070/gitfs/internal/config"
	"github.com/Cyclone1070/gitfs/internal/engine"
	"github.com/Cyclone1070/gitfs/internal/logging"
	"github.com/Cyclone1070/gitfs/internal/tool"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type options struct {
	root     string
	logLevel string
	dev      bool
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	nameStyle   = cellStyle.Foreground(lipgloss.Color("10"))
	dimStyle    = cellStyle.Foreground(lipgloss.Color("241"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "gitfs",
		Short:         "Sandboxed, git-aware filesystem operations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&opts.root, "root", ".", "Workspace root directory")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&opts.dev, "dev", false, "Human-readable development logging")

	root.AddCommand(newCallCmd(opts), newToolsCmd(opts))
	return root
}

// open builds an engine from the flags, the config dotfile and the environment.
func (o *options) open() (*engine.Engine, *zap.Logger, error) {
	logger, err := logging.New(o.logLevel, o.dev)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", o.logLevel, err)
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	e, err := engine.New(o.root, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return e, logger, nil
}

func newCallCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "call <tool> [json-args | -]",
		Short: "Run one tool and print its JSON result",
		Long: `Run one tool with a JSON object of arguments and print the result as JSON.
Pass "-" to read the arguments from stdin. Failures are printed as
{"error": {"code": ..., "message": ...}} and exit with status 1.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			callArgs, err := readArgs(cmd.InOrStdin(), args[1:])
			if err != nil {
				return err
			}

			e, logger, err := opts.open()
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			result, callErr := e.Call(cmd.Context(), args[0], callArgs)
			if callErr != nil {
				var res *engine.ErrorResult
				if !errors.As(callErr, &res) {
					return callErr
				}
				if err := writeJSON(cmd.OutOrStdout(), map[string]any{"error": res}); err != nil {
					return err
				}
				return callErr
			}
			return writeJSON(cmd.OutOrStdout(), result)
		},
	}
}

// readArgs parses the optional JSON argument object, from stdin when it is "-".
func readArgs(in io.Reader, rest []string) (map[string]any, error) {
	if len(rest) == 0 {
		return map[string]any{}, nil
	}
	raw := rest[0]
	if raw == "-" {
		data, err := io.ReadAll(in)
		if err != nil {
			return nil, fmt.Errorf("failed to read arguments from stdin: %w", err)
		}
		raw = string(data)
	}
	if strings.TrimSpace(raw) == "" {
		return map[string]any{}, nil
	}

	var args map[string]any
	if err := json.Unmarshal([]byte(raw), &args); err != nil {
		return nil, fmt.Errorf("arguments must be a JSON object: %w", err)
	}
	return args, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newToolsCmd(opts *options) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List the available tools",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, logger, err := opts.open()
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			decls := e.Declarations()
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), decls)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderTools(decls))
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the full JSON schemas")
	return cmd
}

// renderTools lays the declarations out as a table of name, required arguments and description.
func renderTools(decls []tool.Declaration) string {
	rows := make([][]string, 0, len(decls))
	for _, d := range decls {
		var required string
		if d.Parameters != nil {
			required = strings.Join(d.Parameters.Required, ", ")
		}
		rows = append(rows, []string{d.Name, required, d.Description})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("TOOL", "REQUIRED", "DESCRIPTION").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return nameStyle
			case col == 1:
				return dimStyle
			}
			return cellStyle
		}).
		String()
}
