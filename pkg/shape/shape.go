// Package shape defines the parametric 2D primitives a silhouette template
// is composed from.
//
// The primitive set is closed: Circle, Rectangle, and Hexagon. Each
// primitive knows how to rasterize its own outline and edge orientations,
// reports a metric bounding box used for canvas sizing, and exposes its
// rotational symmetry order.
//
// All primitives draw an outline only, never a fill. Drawing happens in
// pixel space: metric dimensions are converted with the camera scale
// (focal length over template distance) supplied by the renderer.
package shape

import (
	"github.com/roboception/rcsilhouette-template-from-primitive/pkg/raster"
)

// Shape is a drawable template primitive.
//
// Draw renders the shape's outline onto the canvas pair, centered at the
// given sub-pixel position. Draws mutate the canvas in place; when several
// shapes share a canvas, call order decides which shape's pixels win.
//
// BoundingBox returns the shape's metric (width, height). It is used only
// to size the canvas and need not be the tightest possible bound.
//
// RotationalSymmetry returns the number of discrete rotations under which
// the shape's silhouette maps onto itself.
type Shape interface {
	Draw(c *raster.Canvas, center raster.Point, scale float64)
	BoundingBox() (width, height float64)
	RotationalSymmetry() int
}
