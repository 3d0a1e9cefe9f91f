package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roboception/rcsilhouette-template-from-primitive/pkg/archive"
	"github.com/roboception/rcsilhouette-template-from-primitive/pkg/errors"
	"github.com/roboception/rcsilhouette-template-from-primitive/pkg/template"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	objectHeight     float64   // object height in meters, measured from the base plane
	circles          []float64 // circle diameters in meters
	rects            []string  // "width,height" rectangle specs
	hexDiameters     []string  // "diameter[,rotation]" hexagon specs
	hexParallelSides []string  // "size[,rotation]" hexagon specs, parallel-side size
	writeFolder      bool      // write a folder instead of a .rcsmt archive
	origin           string    // origin mode: "center" or "corner"
	focalLength      float64   // virtual focal length
	planeDistance    float64   // virtual plane distance in meters
	output           string    // output path (defaults to the object id)
	configPath       string    // optional TOML config with camera defaults
}

// newGenerateCmd creates the generate command.
//
// Shape flags are repeatable and may be combined; all shapes are drawn
// overlapping at one shared center, in the order circles, rectangles,
// hexagons.
func newGenerateCmd() *cobra.Command {
	opts := generateOpts{
		origin:        template.OriginCenter,
		focalLength:   defaultFocalLength,
		planeDistance: defaultPlaneDistance,
	}

	cmd := &cobra.Command{
		Use:   "generate <object-id>",
		Short: "Generate a silhouette template from primitives",
		Long: `Generate renders circle, rectangle, and hexagon primitives into a
SilhouetteMatch template: an edge image, an edge-orientation image, and a
metadata document, bundled as a .rcsmt archive or written as a folder.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.configPath != "" {
				cfg, err := loadConfig(opts.configPath)
				if err != nil {
					return err
				}
				applyCameraConfig(cmd, cfg, &opts.focalLength, &opts.planeDistance)
			}
			return runGenerate(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().Float64Var(&opts.objectHeight, "object-height", 0, "height of the object (meters), measured from the base plane")
	cmd.Flags().Float64SliceVar(&opts.circles, "circle", nil, "draw a circle with this diameter (meters, e.g. --circle 0.1)")
	cmd.Flags().StringArrayVar(&opts.rects, "rect", nil, "draw a rectangle with this width and height (meters, e.g. --rect 0.4,0.3)")
	cmd.Flags().StringArrayVar(&opts.hexDiameters, "hex-diameter", nil, "draw a hexagon with this corner-to-corner diameter (meters), optional rotation in degrees (e.g. --hex-diameter 0.1,30)")
	cmd.Flags().StringArrayVar(&opts.hexParallelSides, "hex-parallel-sides", nil, "draw a hexagon with this distance between parallel sides (meters), optional rotation in degrees")
	cmd.Flags().BoolVar(&opts.writeFolder, "write-folder", false, "write a folder instead of a .rcsmt template file")
	cmd.Flags().StringVar(&opts.origin, "origin", opts.origin, `object origin: "center" or "corner"`)
	cmd.Flags().Float64Var(&opts.focalLength, "focal-length", opts.focalLength, "virtual focal length")
	cmd.Flags().Float64Var(&opts.planeDistance, "plane-distance", opts.planeDistance, "virtual plane distance (meters)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output path (defaults to the object id)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "TOML config file with camera defaults")

	_ = cmd.MarkFlagRequired("object-height")

	return cmd
}

// runGenerate renders the template and persists it.
func runGenerate(ctx context.Context, objectID string, opts *generateOpts) error {
	logger := loggerFromContext(ctx)

	shapes, err := buildShapes(opts)
	if err != nil {
		return err
	}
	if len(shapes) == 0 {
		return errors.New(errors.ErrCodeConfiguration, "at least one shape is required (--circle, --rect, --hex-diameter, or --hex-parallel-sides)")
	}

	objectID = sanitizeObjectID(objectID)
	logger.Debugf("Generating template for object %q with %d shape(s)", objectID, len(shapes))

	p := newProgress(logger)
	res, err := template.Render(shapes, opts.focalLength, opts.planeDistance, opts.objectHeight)
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Rendered %dx%d canvas", res.Canvas.Size(), res.Canvas.Size()))

	meta, err := template.BuildMetadata(res, shapes, opts.focalLength, opts.planeDistance, opts.objectHeight, opts.origin)
	if err != nil {
		return err
	}

	dest := opts.output
	if dest == "" {
		dest = objectID
	}
	if !opts.writeFolder && !strings.HasSuffix(dest, archive.Extension) {
		dest += archive.Extension
	}

	if err := archive.WriteTemplate(dest, res.Canvas, meta, opts.writeFolder); err != nil {
		return err
	}

	printSuccess("Template %s generated", meta.ObjectUUID)
	printFile(dest)
	printKeyValue("symmetry", fmt.Sprintf("%d", meta.RotationalSymmetry))
	printKeyValue("canvas", fmt.Sprintf("%dx%d px", res.Canvas.Size(), res.Canvas.Size()))
	return nil
}
