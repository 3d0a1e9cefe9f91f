package shape

import "math"

// legacyPi is the truncated π used for degree conversion when drawing
// hexagon vertices. Switching to math.Pi would shift vertex positions by a
// fraction of a pixel and change the output of existing template setups,
// so the historical constant is kept.
const legacyPi = 3.1415

// rad converts degrees to radians using legacyPi.
func rad(deg float64) float64 {
	return deg / 180 * legacyPi
}

// OrientationByte quantizes an edge angle in radians to the single-byte
// encoding used in the edge-orientation raster.
//
// The angle is first normalized to [0, 2π) by adding 2π if negative, then
// mapped to [0, 254] by integer truncation of angle/(2π)·255. Truncation
// (not rounding) is part of the encoding: π maps to 127, and angles
// approaching 2π approach 254 without ever producing 255.
func OrientationByte(angle float64) uint8 {
	if angle < 0 {
		angle = 2*math.Pi + angle
	}
	return uint8(int(angle / (2 * math.Pi) * 255))
}
