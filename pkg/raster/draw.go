package raster

import (
	"image"
	"image/color"
	"math"
)

// SetPixel writes v at (x, y), silently dropping out-of-bounds writes.
// Shapes may extend past the canvas when their sub-pixel center is close
// to an edge; clipping instead of failing matches the drawing contract.
func SetPixel(img *image.Gray, x, y int, v uint8) {
	if !(image.Point{X: x, Y: y}.In(img.Rect)) {
		return
	}
	img.SetGray(x, y, color.Gray{Y: v})
}

// Line draws a 1-pixel line from (x0, y0) to (x1, y1) with value v.
// Endpoints are rounded to the nearest pixel; the segment is walked with
// the integer Bresenham algorithm so every column/row in between gets
// exactly one pixel.
func Line(img *image.Gray, x0, y0, x1, y1 float64, v uint8) {
	ix0, iy0 := int(math.Round(x0)), int(math.Round(y0))
	ix1, iy1 := int(math.Round(x1)), int(math.Round(y1))

	dx := abs(ix1 - ix0)
	dy := -abs(iy1 - iy0)
	sx := 1
	if ix0 > ix1 {
		sx = -1
	}
	sy := 1
	if iy0 > iy1 {
		sy = -1
	}
	err := dx + dy

	for {
		SetPixel(img, ix0, iy0, v)
		if ix0 == ix1 && iy0 == iy1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			ix0 += sx
		}
		if e2 <= dx {
			err += dx
			iy0 += sy
		}
	}
}

// EllipseOutline draws a 1-pixel ellipse outline inscribed in the bounding
// box (x0, y0)-(x1, y1), with value v. The outline is traced parametrically
// with a step small enough that consecutive samples land on the same or an
// adjacent pixel, which keeps the outline connected.
func EllipseOutline(img *image.Gray, x0, y0, x1, y1 float64, v uint8) {
	cx := (x0 + x1) / 2
	cy := (y0 + y1) / 2
	rx := (x1 - x0) / 2
	ry := (y1 - y0) / 2
	if rx < 0 || ry < 0 {
		return
	}

	rmax := math.Max(rx, ry)
	steps := int(math.Ceil(4 * math.Pi * rmax))
	if steps < 8 {
		steps = 8
	}

	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		px := int(math.Round(cx + rx*math.Cos(a)))
		py := int(math.Round(cy + ry*math.Sin(a)))
		SetPixel(img, px, py, v)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
