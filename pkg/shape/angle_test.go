package shape

import (
	"math"
	"testing"
)

func TestOrientationByte(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		want  uint8
	}{
		{"zero", 0, 0},
		{"pi truncates to 127", math.Pi, 127},
		{"half pi", 0.5 * math.Pi, 63},
		{"three half pi", 1.5 * math.Pi, 191},
		{"just below full turn", 2*math.Pi - 1e-9, 254},
		{"negative wraps", -0.5 * math.Pi, 191},
		{"negative pi", -math.Pi, 127},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OrientationByte(tt.angle); got != tt.want {
				t.Errorf("OrientationByte(%g) = %d, want %d", tt.angle, got, tt.want)
			}
		})
	}
}

func TestOrientationByteNeverProduces255(t *testing.T) {
	// Sweep the full normalized range; 255 is reserved and must never
	// appear in the orientation raster.
	for i := 0; i < 10000; i++ {
		a := 2 * math.Pi * float64(i) / 10000
		if got := OrientationByte(a); got == 255 {
			t.Fatalf("OrientationByte(%g) = 255", a)
		}
	}
}
