package vmath

import "testing"

// TestOverlapsWithBuffer covers plain overlap, near misses inside the buffer, and clear misses
func TestOverlapsWithBuffer(t *testing.T) {
	base := Rect{X: 100, Y: 100, W: 20, H: 20}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"Identical", base, true},
		{"Partial overlap", Rect{X: 110, Y: 110, W: 20, H: 20}, true},
		{"Gap 4 right", Rect{X: 124, Y: 100, W: 20, H: 20}, true},
		{"Gap 4 left", Rect{X: 76, Y: 100, W: 20, H: 20}, true},
		{"Gap 4 below", Rect{X: 100, Y: 124, W: 20, H: 20}, true},
		{"Gap 4 both axes", Rect{X: 124, Y: 124, W: 20, H: 20}, true},
		{"Gap exactly buffer", Rect{X: 125, Y: 100, W: 20, H: 20}, false},
		{"Far right", Rect{X: 200, Y: 100, W: 20, H: 20}, false},
		{"Aligned x, far y", Rect{X: 100, Y: 200, W: 20, H: 20}, false},
		{"Contained", Rect{X: 105, Y: 105, W: 2, H: 2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Overlaps(tt.other, 5); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := tt.other.Overlaps(base, 5); got != tt.want {
				t.Errorf("Overlaps not symmetric: reverse = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestOverlapsSubBufferGapsSweep verifies every gap below the buffer registers on each axis
func TestOverlapsSubBufferGapsSweep(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	for gap := 0.0; gap < 5; gap += 0.25 {
		bx := Rect{X: a.Right() + gap, Y: a.Bottom() + gap, W: 7, H: 7}
		if !a.Overlaps(bx, 5) || !bx.Overlaps(a, 5) {
			t.Errorf("Gap %f below buffer did not collide", gap)
		}
	}
}

// TestCenteredRect verifies center-based construction
func TestCenteredRect(t *testing.T) {
	r := CenteredRect(50, 40, 20, 10)
	if r.X != 40 || r.Y != 35 || r.W != 20 || r.H != 10 {
		t.Errorf("Unexpected rect %+v", r)
	}
	cx, cy := r.Center()
	if cx != 50 || cy != 40 {
		t.Errorf("Center = (%f, %f), want (50, 40)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-0.5, 0, 1) != 0 || Clamp(1.5, 0, 1) != 1 || Clamp(0.3, 0, 1) != 0.3 {
		t.Error("Clamp returned unexpected value")
	}
	if ClampInt(12, 0, 10) != 10 || ClampInt(-3, 0, 10) != 0 {
		t.Error("ClampInt returned unexpected value")
	}
}
