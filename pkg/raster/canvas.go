// Package raster provides the paired single-channel canvases a silhouette
// template is drawn onto, plus the low-level pixel drawing primitives.
//
// A template consists of two equal-size 8-bit grayscale buffers:
//
//   - Edges: 0 background, 255 on shape outlines
//   - Orientations: quantized local edge angle, one byte per edge pixel,
//     in the range [0, 254] (255 is never produced)
//
// Both buffers are mutated in place by successive shape draws. Draw order
// is meaningful: later shapes paint over earlier ones.
package raster

import "image"

// EdgeValue marks an edge pixel in the edge buffer.
const EdgeValue = 255

// Point is a sub-pixel position on the canvas.
type Point struct {
	X float64
	Y float64
}

// Canvas is the pair of rasters a template is drawn onto. Both buffers are
// square, equal-size, and start out all-zero. A Canvas is owned by exactly
// one generation call and is not safe for concurrent use.
type Canvas struct {
	Edges        *image.Gray
	Orientations *image.Gray
}

// NewCanvas allocates a zero-filled size×size canvas pair.
func NewCanvas(size int) *Canvas {
	r := image.Rect(0, 0, size, size)
	return &Canvas{
		Edges:        image.NewGray(r),
		Orientations: image.NewGray(r),
	}
}

// Size returns the side length of the (square) canvas in pixels.
func (c *Canvas) Size() int {
	return c.Edges.Rect.Dx()
}
