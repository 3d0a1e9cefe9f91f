package cli

import (
	"strconv"
	"strings"

	"github.com/roboception/rcsilhouette-template-from-primitive/pkg/errors"
	"github.com/roboception/rcsilhouette-template-from-primitive/pkg/shape"
)

// sanitizeObjectID replaces every rune outside [A-Za-z0-9_-] with an
// underscore, so the object id is safe to use as a file name.
func sanitizeObjectID(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z',
			c >= 'A' && c <= 'Z',
			c >= '0' && c <= '9',
			c == '_', c == '-':
			b.WriteRune(c)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

// parseRectSpec parses a "width,height" rectangle spec in meters.
func parseRectSpec(s string) (shape.Rectangle, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return shape.Rectangle{}, errors.New(errors.ErrCodeInvalidInput, "rectangle %q must be width,height in meters (e.g. 0.4,0.3)", s)
	}
	w, err := parseMeters(parts[0], s)
	if err != nil {
		return shape.Rectangle{}, err
	}
	h, err := parseMeters(parts[1], s)
	if err != nil {
		return shape.Rectangle{}, err
	}
	return shape.Rectangle{Width: w, Height: h}, nil
}

// parseHexSpec parses a "size[,rotation]" hexagon spec. The size is
// interpreted as corner-to-corner diameter, or as the distance between
// parallel sides when parallelSides is set. The optional rotation is in
// degrees, default 0 (pointy-top orientation).
func parseHexSpec(s string, parallelSides bool) (shape.Hexagon, error) {
	sizeStr := s
	angleStr := ""
	if i := strings.Index(s, ","); i >= 0 {
		sizeStr, angleStr = s[:i], s[i+1:]
	}

	size, err := parseMeters(sizeStr, s)
	if err != nil {
		return shape.Hexagon{}, err
	}

	angle := 0.0
	if angleStr != "" {
		angle, err = strconv.ParseFloat(strings.TrimSpace(angleStr), 64)
		if err != nil {
			return shape.Hexagon{}, errors.New(errors.ErrCodeInvalidInput, "hexagon %q has an invalid rotation angle", s)
		}
	}

	if parallelSides {
		return shape.HexagonFromParallelSides(size, angle), nil
	}
	return shape.Hexagon{CornerDiameter: size, BaseAngle: angle}, nil
}

func parseMeters(v, spec string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidInput, "invalid size %q in shape spec %q", v, spec)
	}
	return f, nil
}

// buildShapes assembles the shape list from the generate flags, in the
// order circles, rectangles, hexagons. The order is the draw order.
func buildShapes(opts *generateOpts) ([]shape.Shape, error) {
	var shapes []shape.Shape

	for _, d := range opts.circles {
		shapes = append(shapes, shape.Circle{Diameter: d})
	}
	for _, spec := range opts.rects {
		r, err := parseRectSpec(spec)
		if err != nil {
			return nil, err
		}
		shapes = append(shapes, r)
	}
	for _, spec := range opts.hexDiameters {
		h, err := parseHexSpec(spec, false)
		if err != nil {
			return nil, err
		}
		shapes = append(shapes, h)
	}
	for _, spec := range opts.hexParallelSides {
		h, err := parseHexSpec(spec, true)
		if err != nil {
			return nil, err
		}
		shapes = append(shapes, h)
	}

	return shapes, nil
}
