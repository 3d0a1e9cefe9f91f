package cli

import (
	"math"
	"testing"

	"github.com/roboception/rcsilhouette-template-from-primitive/pkg/shape"
)

func TestSanitizeObjectID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean id", "part_17-b", "part_17-b"},
		{"spaces", "my part", "my_part"},
		{"path separators", "a/b\\c", "a_b_c"},
		{"unicode", "größe", "gr__e"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeObjectID(tt.input); got != tt.want {
				t.Errorf("sanitizeObjectID(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseRectSpec(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    shape.Rectangle
		wantErr bool
	}{
		{"valid", "0.4,0.3", shape.Rectangle{Width: 0.4, Height: 0.3}, false},
		{"with spaces", "0.4, 0.3", shape.Rectangle{Width: 0.4, Height: 0.3}, false},
		{"missing height", "0.4", shape.Rectangle{}, true},
		{"too many values", "0.4,0.3,0.2", shape.Rectangle{}, true},
		{"not a number", "0.4,abc", shape.Rectangle{}, true},
		{"empty", "", shape.Rectangle{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseRectSpec(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseRectSpec(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseRectSpec(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseHexSpec(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		parallelSides bool
		wantDiameter  float64
		wantAngle     float64
		wantErr       bool
	}{
		{"diameter only", "0.1", false, 0.1, 0, false},
		{"diameter with rotation", "0.1,30", false, 0.1, 30, false},
		{"parallel sides converts to diameter", "0.09", true, 2 / math.Sqrt(3) * 0.09, 0, false},
		{"parallel sides with rotation", "0.09,15", true, 2 / math.Sqrt(3) * 0.09, 15, false},
		{"bad size", "abc", false, 0, 0, true},
		{"bad angle", "0.1,abc", false, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseHexSpec(tt.input, tt.parallelSides)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseHexSpec(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if math.Abs(got.CornerDiameter-tt.wantDiameter) > 1e-12 {
				t.Errorf("CornerDiameter = %g, want %g", got.CornerDiameter, tt.wantDiameter)
			}
			if got.BaseAngle != tt.wantAngle {
				t.Errorf("BaseAngle = %g, want %g", got.BaseAngle, tt.wantAngle)
			}
		})
	}
}

func TestBuildShapesOrder(t *testing.T) {
	opts := &generateOpts{
		circles:          []float64{0.1},
		rects:            []string{"0.4,0.3"},
		hexDiameters:     []string{"0.1,30"},
		hexParallelSides: []string{"0.09"},
	}

	shapes, err := buildShapes(opts)
	if err != nil {
		t.Fatalf("buildShapes() error = %v", err)
	}
	if len(shapes) != 4 {
		t.Fatalf("got %d shapes, want 4", len(shapes))
	}

	// Draw order: circles, rectangles, hexagons.
	if _, ok := shapes[0].(shape.Circle); !ok {
		t.Errorf("shapes[0] = %T, want shape.Circle", shapes[0])
	}
	if _, ok := shapes[1].(shape.Rectangle); !ok {
		t.Errorf("shapes[1] = %T, want shape.Rectangle", shapes[1])
	}
	if _, ok := shapes[2].(shape.Hexagon); !ok {
		t.Errorf("shapes[2] = %T, want shape.Hexagon", shapes[2])
	}
	if _, ok := shapes[3].(shape.Hexagon); !ok {
		t.Errorf("shapes[3] = %T, want shape.Hexagon", shapes[3])
	}
}

func TestBuildShapesPropagatesErrors(t *testing.T) {
	opts := &generateOpts{rects: []string{"bogus"}}
	if _, err := buildShapes(opts); err == nil {
		t.Error("buildShapes() error = nil, want parse error")
	}
}
