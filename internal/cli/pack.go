package cli

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roboception/rcsilhouette-template-from-primitive/pkg/archive"
)

// packOpts holds the command-line flags for the pack command.
type packOpts struct {
	outFile string // output archive path (defaults to <folder>.rcsmt)
}

// newPackCmd creates the pack command, which bundles an edited template
// folder back into a .rcsmt archive.
func newPackCmd() *cobra.Command {
	var opts packOpts

	cmd := &cobra.Command{
		Use:   "pack <folder>",
		Short: "Pack a template folder into a .rcsmt archive",
		Long: `Pack bundles a folder containing template.png, gradients.png, and
meta.yaml into a .rcsmt template archive. Optional entries (model.glb,
collision_model.ply, grasps.json) are included when present. Useful if you
edited an unpacked template and want to pack it again.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPack(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.outFile, "out-file", "", "path to the desired .rcsmt template (defaults to <folder>.rcsmt)")

	return cmd
}

func runPack(ctx context.Context, folder string, opts *packOpts) error {
	logger := loggerFromContext(ctx)

	folder = filepath.Clean(folder)
	out := opts.outFile
	if out == "" {
		out = folder + archive.Extension
	} else if !strings.HasSuffix(out, archive.Extension) {
		out += archive.Extension
	}

	p := newProgress(logger)
	if err := archive.Pack(folder, out); err != nil {
		return err
	}
	p.done("Packed template")

	printSuccess("Template packed")
	printFile(out)
	return nil
}
