package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/dotgrid-tools/dotgrid/pkg/buildinfo"
)

// Execute runs the dotgrid CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands (stamp,
// inspect, completion), configures logging based on the --verbose flag,
// and executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands
// via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "dotgrid",
		Short:        "dotgrid overlays a centered dot grid onto PDF pages",
		Long:         `dotgrid is a CLI tool that stamps a centered grid of registration dots onto every page of a PDF document, and can split each page into two half-width pages with a white background fill.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newStampCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}
