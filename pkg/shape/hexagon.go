package shape

import (
	"math"

	"github.com/roboception/rcsilhouette-template-from-primitive/pkg/raster"
)

// Hexagon is a regular hexagonal outline. CornerDiameter is the metric
// corner-to-corner diameter; BaseAngle rotates the hexagon, in degrees.
// A base angle of 0 yields a pointy-top hexagon.
type Hexagon struct {
	CornerDiameter float64
	BaseAngle      float64
}

// HexagonFromParallelSides builds a Hexagon from the metric distance
// between two parallel sides instead of the corner diameter.
func HexagonFromParallelSides(size, baseAngle float64) Hexagon {
	return Hexagon{
		CornerDiameter: 2 / math.Sqrt(3) * size,
		BaseAngle:      baseAngle,
	}
}

// Draw walks the six vertices at 60° steps from the base angle and strokes
// consecutive vertices with 1-pixel lines. Each edge segment is written to
// the orientation buffer with the byte for 90° minus the edge's midpoint
// angle.
//
// Vertex convention: angle 0 points along the vertical axis, so x uses
// sine and y uses cosine. The pixel radius is floored, as the original
// template format expects.
func (h Hexagon) Draw(cv *raster.Canvas, center raster.Point, scale float64) {
	d := h.CornerDiameter * scale
	radius := math.Floor(d / 2)

	const step = 60.0

	var prev raster.Point
	havePrev := false
	for deg := 0.0; deg <= 360; deg += step {
		angle := deg + h.BaseAngle
		pt := raster.Point{
			X: center.X + radius*math.Sin(rad(angle)),
			Y: center.Y + radius*math.Cos(rad(angle)),
		}

		if havePrev {
			raster.Line(cv.Edges, prev.X, prev.Y, pt.X, pt.Y, raster.EdgeValue)
			edgeAngle := angle - step/2
			raster.Line(cv.Orientations, prev.X, prev.Y, pt.X, pt.Y, OrientationByte(rad(90-edgeAngle)))
		}
		prev = pt
		havePrev = true
	}
}

// BoundingBox returns (corner diameter, corner diameter). This overstates
// the true hexagon extent perpendicular to the corners; canvas sizing is
// conservative on purpose.
func (h Hexagon) BoundingBox() (width, height float64) {
	return h.CornerDiameter, h.CornerDiameter
}

// RotationalSymmetry returns 6.
func (h Hexagon) RotationalSymmetry() int {
	return 6
}
