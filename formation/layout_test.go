package formation

import (
	"math"
	"testing"

	"github.com/lixenwraith/road-fighter/constants"
)

const radius = float64(constants.PlayerCircleRadius)

// TestLayoutCountExact verifies every count yields exactly that many offsets
func TestLayoutCountExact(t *testing.T) {
	widths := []float64{constants.PlayerWidth, constants.PlayerWidth * 0.4, 1, 500}

	for _, w := range widths {
		for n := 1; n <= 200; n++ {
			got := Layout(n, radius, w)
			if len(got) != n {
				t.Fatalf("Layout(%d, width=%f) returned %d offsets", n, w, len(got))
			}
		}
	}
}

func TestLayoutSingleInstanceAtAnchor(t *testing.T) {
	got := Layout(1, radius, constants.PlayerWidth)
	if len(got) != 1 || got[0] != (Offset{}) {
		t.Errorf("Expected single zero offset, got %v", got)
	}
}

func TestLayoutEmpty(t *testing.T) {
	if got := Layout(0, radius, constants.PlayerWidth); got != nil {
		t.Errorf("Expected nil for zero count, got %v", got)
	}
	if got := Layout(-3, radius, constants.PlayerWidth); got != nil {
		t.Errorf("Expected nil for negative count, got %v", got)
	}
}

// TestLayoutZeroWidthGuard verifies degenerate widths neither panic nor lose instances
func TestLayoutZeroWidthGuard(t *testing.T) {
	for _, w := range []float64{0, -10} {
		got := Layout(9, radius, w)
		if len(got) != 9 {
			t.Errorf("width=%f: expected 9 offsets, got %d", w, len(got))
		}
		for i, o := range got {
			if math.IsNaN(o.DX) || math.IsNaN(o.DY) || math.IsInf(o.DX, 0) || math.IsInf(o.DY, 0) {
				t.Errorf("width=%f: offset %d not finite: %v", w, i, o)
			}
		}
	}
}

// TestLayoutWithinEllipse verifies every offset lies on or inside the outer flattened ring
func TestLayoutWithinEllipse(t *testing.T) {
	for _, n := range []int{2, 5, 17, 64} {
		for _, o := range Layout(n, radius, constants.PlayerWidth) {
			ex := o.DX / radius
			ey := o.DY / (radius * constants.FormationFlatten)
			if ex*ex+ey*ey > 1+1e-9 {
				t.Errorf("n=%d: offset %v outside outer ring", n, o)
			}
		}
	}
}

// TestLayoutTwoInstances verifies the small case: capacity on the inner ring and the remainder outside
func TestLayoutTwoInstances(t *testing.T) {
	// Two rings; the inner ring (radius 33) holds 3 instances of width 40, so both land there
	got := Layout(2, radius, constants.PlayerWidth)
	inner := radius / 2

	if math.Abs(got[0].DX-inner) > 1e-9 || math.Abs(got[0].DY) > 1e-9 {
		t.Errorf("First instance expected at (%f, 0), got %v", inner, got[0])
	}
	if math.Abs(got[1].DX+inner) > 1e-9 || math.Abs(got[1].DY) > 1e-9 {
		t.Errorf("Second instance expected at (%f, 0), got %v", -inner, got[1])
	}
}

// TestLayoutWideInstancesSkipInnerRings verifies rings with zero capacity are skipped
func TestLayoutWideInstancesSkipInnerRings(t *testing.T) {
	got := Layout(4, radius, 10000)
	if len(got) != 4 {
		t.Fatalf("Expected 4 offsets, got %d", len(got))
	}
	// All land on the outer ring
	for _, o := range got {
		ex := o.DX / radius
		ey := o.DY / (radius * constants.FormationFlatten)
		if math.Abs(ex*ex+ey*ey-1) > 1e-9 {
			t.Errorf("Expected offset on outer ring, got %v", o)
		}
	}
}
