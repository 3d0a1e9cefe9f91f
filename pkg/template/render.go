// Package template turns a list of shape primitives into the in-memory
// artifacts of a silhouette template: the rendered canvas pair and the
// metadata document describing camera geometry, symmetry, and pose offset.
package template

import (
	"math"

	"github.com/roboception/rcsilhouette-template-from-primitive/pkg/errors"
	"github.com/roboception/rcsilhouette-template-from-primitive/pkg/raster"
	"github.com/roboception/rcsilhouette-template-from-primitive/pkg/shape"
)

// RenderResult is the outcome of projecting and rasterizing a shape list.
type RenderResult struct {
	// Canvas holds the edge mask and edge-orientation rasters.
	Canvas *raster.Canvas

	// Center is the shared sub-pixel draw center, half the projected
	// maximum shape size. Because the canvas dimension is rounded up,
	// this is not necessarily the exact canvas center.
	Center raster.Point

	// TemplateDistance is the camera-to-silhouette-plane distance in
	// meters: plane distance minus object height.
	TemplateDistance float64
}

// Render projects the shapes into pixel space with a pinhole camera model
// and draws them, in list order, onto a shared square canvas.
//
// The canvas side length is the projected maximum bounding-box side of all
// shapes, rounded up. Every shape is drawn at the same center point; there
// is no independent placement.
//
// A non-positive template distance or an empty shape list is a
// configuration error.
func Render(shapes []shape.Shape, focalLength, planeDistance, objectHeight float64) (*RenderResult, error) {
	if len(shapes) == 0 {
		return nil, errors.New(errors.ErrCodeConfiguration, "at least one shape is required")
	}

	templateDistance := planeDistance - objectHeight
	if templateDistance <= 0 {
		return nil, errors.New(errors.ErrCodeConfiguration,
			"plane distance (%g m) must be larger than object height (%g m)", planeDistance, objectHeight)
	}
	scale := focalLength / templateDistance

	maxSize := 0.0
	for _, s := range shapes {
		w, h := s.BoundingBox()
		maxSize = math.Max(maxSize, math.Max(w, h))
	}

	maxSizePixels := maxSize * scale
	canvasSize := int(math.Ceil(maxSizePixels))

	cv := raster.NewCanvas(canvasSize)
	center := raster.Point{X: 0.5 * maxSizePixels, Y: 0.5 * maxSizePixels}

	for _, s := range shapes {
		s.Draw(cv, center, scale)
	}

	return &RenderResult{
		Canvas:           cv,
		Center:           center,
		TemplateDistance: templateDistance,
	}, nil
}
