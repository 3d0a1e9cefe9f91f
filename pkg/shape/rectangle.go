package shape

import (
	"math"

	"github.com/roboception/rcsilhouette-template-from-primitive/pkg/raster"
)

// squareTolerance is the metric tolerance under which a rectangle counts
// as a square for symmetry purposes.
const squareTolerance = 1e-6

// Rectangle is an axis-aligned rectangular outline with metric width and
// height.
type Rectangle struct {
	Width  float64
	Height float64
}

// Draw strokes the four sides as separate 1-pixel lines. Vertical sides
// carry the orientation byte for angle 0, horizontal sides the byte for
// angle π/2.
func (r Rectangle) Draw(cv *raster.Canvas, center raster.Point, scale float64) {
	w := r.Width * scale
	h := r.Height * scale
	offsetX := center.X - 0.5*w
	offsetY := center.Y - 0.5*h

	vertical := OrientationByte(0)
	horizontal := OrientationByte(0.5 * math.Pi)

	sides := []struct {
		x0, y0, x1, y1 float64
		orientation    uint8
	}{
		{offsetX, offsetY, offsetX, offsetY + h, vertical},
		{offsetX, offsetY, offsetX + w, offsetY, horizontal},
		{offsetX + w, offsetY, offsetX + w, offsetY + h, vertical},
		{offsetX, offsetY + h, offsetX + w, offsetY + h, horizontal},
	}

	for _, s := range sides {
		raster.Line(cv.Edges, s.x0, s.y0, s.x1, s.y1, raster.EdgeValue)
		raster.Line(cv.Orientations, s.x0, s.y0, s.x1, s.y1, s.orientation)
	}
}

// BoundingBox returns the metric (width, height).
func (r Rectangle) BoundingBox() (width, height float64) {
	return r.Width, r.Height
}

// RotationalSymmetry returns 4 for squares and 2 otherwise.
func (r Rectangle) RotationalSymmetry() int {
	if math.Abs(r.Width-r.Height) < squareTolerance {
		return 4
	}
	return 2
}
