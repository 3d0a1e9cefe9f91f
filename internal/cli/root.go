package cli

import (
	"context"
	"errors"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/roboception/rcsilhouette-template-from-primitive/pkg/buildinfo"
	rcerrors "github.com/roboception/rcsilhouette-template-from-primitive/pkg/errors"
)

// Execute runs the rcsmt CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands (generate,
// pack, unpack), configures logging based on the --verbose flag, and
// executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:           "rcsmt",
		Short:         "rcsmt generates SilhouetteMatch templates from primitives",
		Long:          `rcsmt is a CLI tool for synthesizing reference silhouette templates for the rc_reason SilhouetteMatch component from parametric 2D primitives, and for packing and unpacking the resulting .rcsmt template archives.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
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

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newPackCmd())
	root.AddCommand(newUnpackCmd())

	err := root.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		printError("%s", rcerrors.UserMessage(err))
	}
	return err
}
