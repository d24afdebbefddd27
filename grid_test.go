package moebius

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestVerticalGrid(t *testing.T) {
	if !VerticalGrid(complex(0.5, 1.0), 0.2, 0.01) {
		t.Error("0.5+1i should be on a vertical line")
	}
	if VerticalGrid(complex(0.45, 1.0), 0.2, 0.01) {
		t.Error("0.45+1i should not be on a vertical line")
	}

	// The pattern is symmetric about the imaginary axis.
	if !VerticalGrid(complex(-0.5, 1.0), 0.2, 0.01) {
		t.Error("-0.5+1i should be on a vertical line")
	}

	if !VerticalGrid(Infinity, 0.2, 0.01) {
		t.Error("vertical lines pass through ∞")
	}
}

func TestHorizontalGrid(t *testing.T) {
	if !HorizontalGrid(complex(1.0, 0.5), 0.2, 0.01) {
		t.Error("1+0.5i should be on a horizontal line")
	}
	if HorizontalGrid(complex(1.0, 0.45), 0.2, 0.01) {
		t.Error("1+0.45i should not be on a horizontal line")
	}
	if !HorizontalGrid(complex(1.0, -0.5), 0.2, 0.01) {
		t.Error("1-0.5i should be on a horizontal line")
	}
	if !HorizontalGrid(Infinity, 0.2, 0.01) {
		t.Error("horizontal lines pass through ∞")
	}
}

func TestRadialGrid(t *testing.T) {
	if !RadialGrid(complex(0.5, 0), 0.2, 0.01) {
		t.Error("|z| = 0.5 should be on a circle")
	}
	if RadialGrid(complex(0.45, 0), 0.2, 0.01) {
		t.Error("|z| = 0.45 should not be on a circle")
	}

	// Magnitude is rotation invariant.
	if !RadialGrid(cmplx.Rect(0.5, 2.1), 0.2, 0.01) {
		t.Error("|z| = 0.5 should be on a circle at any angle")
	}

	if RadialGrid(Infinity, 0.2, 0.01) {
		t.Error("circles never reach ∞")
	}
}

func TestAngularGrid(t *testing.T) {
	period := math.Pi / 12

	// Rays sit at angles where angle mod period is period/2.
	if !AngularGrid(cmplx.Rect(1, period/2), period, 0.02) {
		t.Error("angle period/2 should be on a ray")
	}
	if AngularGrid(cmplx.Rect(1, period/4), period, 0.01) {
		t.Error("angle period/4 should not be on a ray")
	}

	// The pattern only depends on the angle, not the magnitude.
	if !AngularGrid(cmplx.Rect(1e6, period/2), period, 0.02) {
		t.Error("rays extend outward at any magnitude")
	}

	if !AngularGrid(Infinity, period, 0.02) {
		t.Error("every ray passes through ∞")
	}
}

func TestAngularGridWraparound(t *testing.T) {
	period := math.Pi / 4

	// Just either side of the 0/2π seam: neither point is near a ray, as
	// rays sit at period/2 offsets from the seam.
	if AngularGrid(cmplx.Rect(1, 1e-9), period, 0.01) {
		t.Error("angle just above 0 should not be on a ray")
	}
	if AngularGrid(cmplx.Rect(1, -1e-9), period, 0.01) {
		t.Error("angle just below 2π should not be on a ray")
	}

	// The last ray before the seam, at 2π − period/2. Phase reports it as
	// a negative angle; naive modulo of that negative angle would miss it.
	if !AngularGrid(cmplx.Rect(1, -period/2), period, 0.01) {
		t.Error("ray at 2π - period/2 should be found")
	}
}

func TestGridAtInfinity(t *testing.T) {
	for _, tt := range []struct {
		name string
		fn   func(complex128, float64, float64) bool
		want bool
	}{
		{"VerticalGrid", VerticalGrid, true},
		{"HorizontalGrid", HorizontalGrid, true},
		{"RadialGrid", RadialGrid, false},
		{"AngularGrid", AngularGrid, true},
	} {
		for _, period := range []float64{0.2, 1, math.Pi / 12} {
			if got := tt.fn(Infinity, period, 0.01); got != tt.want {
				t.Errorf("%s(∞, %g, 0.01) = %t, want %t", tt.name, period, got, tt.want)
			}
		}
		// Directional infinities are the same point.
		if got := tt.fn(complex(0, math.Inf(-1)), 0.2, 0.01); got != tt.want {
			t.Errorf("%s(-∞i, 0.2, 0.01) = %t, want %t", tt.name, got, tt.want)
		}
	}
}

func TestGridUnderTransform(t *testing.T) {
	// A point is on the transformed pattern when its image under the
	// transform lands on a band.
	tr := Scaling(2)
	z := complex(0.25, 1)
	if !VerticalGrid(tr.Apply(z), 0.2, 0.01) {
		t.Error("0.25+1i should land on a vertical band after doubling")
	}
}
