package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/reqbuild/internal/logger"
	"github.com/wesleyorama2/reqbuild/internal/output"
	"github.com/wesleyorama2/reqbuild/internal/settings"
)

var version = "0.1.0"

// formatterFactory creates the renderer for a command's output.
type formatterFactory func(format output.OutputFormat, verbose, noColor bool) output.FormatProvider

// app holds the state shared by the commands of one command tree.
type app struct {
	settingsFile string
	settings     *settings.Settings
	newFormatter formatterFactory
}

// NewRootCmd creates the reqbuild command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{newFormatter: output.NewFormatterWithFormat})
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "reqbuild",
		Short:   "Build HTTP requests and print exactly what would be sent",
		Version: version,
		Long: `reqbuild assembles HTTP requests from command-line flags or from request
collections (YAML or JSON files with environments and variables) and prints
them as text, JSON, YAML or the raw HTTP/1.1 message. Nothing is sent.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.initSettings,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(
		&a.settingsFile,
		"config",
		"",
		fmt.Sprintf("path to the settings file (default is '%s')", settings.DefaultFilename))

	rootCmd.PersistentFlags().String(
		"log-level",
		"",
		"log level: debug, info, warn or error")

	for _, m := range methodCommands {
		rootCmd.AddCommand(newMethodCmd(a, m.method, m.build))
	}

	rootCmd.AddCommand(newRunCmd(a))
	rootCmd.AddCommand(newValidateCmd(a))
	rootCmd.AddCommand(newDiffCmd(a))

	return rootCmd
}

// Execute runs the reqbuild command tree with the process arguments.
func Execute(ctx context.Context) error {
	return execute(ctx, NewRootCmd())
}

// execute runs root and logs the error it fails with.
func execute(ctx context.Context, root *cobra.Command) error {
	cmd, err := root.ExecuteContextC(ctx)
	if err != nil {
		path := root.Name()
		if cmd != nil {
			path = cmd.CommandPath()
		}
		logger.ErrorKV(ctx, "command failed", "command", path, "error", err)
	}
	return err
}

func (a *app) initSettings(cmd *cobra.Command, _ []string) error {
	s, err := settings.Load(a.settingsFile)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	if err := settings.BindFlags(cmd.Flags(), s); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	logger.SetLevel(s.ParsedLogLevel)
	a.settings = s

	logger.DebugKV(cmd.Context(), "settings loaded",
		"file", a.settingsFile,
		"output", s.ParsedOutput,
		"log_level", s.ParsedLogLevel,
		"default_headers", s.ParsedHeaders.Len())

	return nil
}
