package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roboception/rcsilhouette-template-from-primitive/pkg/archive"
)

// unpackOpts holds the command-line flags for the unpack command.
type unpackOpts struct {
	outFolder string // destination folder (defaults to the template path minus extension)
}

// newUnpackCmd creates the unpack command, which extracts a .rcsmt archive
// into a folder for manual editing.
func newUnpackCmd() *cobra.Command {
	var opts unpackOpts

	cmd := &cobra.Command{
		Use:   "unpack <template>",
		Short: "Unpack a .rcsmt archive into a folder",
		Long: `Unpack extracts all entries of a .rcsmt template archive into a newly
created folder. Useful if you want to edit the template directly.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUnpack(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.outFolder, "out-folder", "", "path to the desired output folder, will create it")

	return cmd
}

func runUnpack(ctx context.Context, templatePath string, opts *unpackOpts) error {
	logger := loggerFromContext(ctx)

	dest := opts.outFolder
	if dest == "" {
		dest = strings.TrimSuffix(templatePath, archive.Extension)
		if dest == templatePath {
			dest = templatePath + ".d"
		}
	}

	p := newProgress(logger)
	if err := archive.Unpack(templatePath, dest); err != nil {
		return err
	}
	p.done("Unpacked template")

	printSuccess("Template unpacked")
	printFile(dest)
	return nil
}
