package moebius

import (
	"math"
	"math/cmplx"
)

// The grid predicates classify a point of the extended complex plane
// against a periodic pattern: bands of half-width thickness centered at
// regular period intervals, offset by half a period. Thickness should be
// less than period/2, otherwise adjacent bands overlap; this is not
// validated.

// VerticalGrid reports whether z lies on a vertical grid line, i.e. within
// thickness of a line where |Re(z)| mod period equals period/2. Vertical
// lines pass through the point at infinity, so the predicate is true there.
func VerticalGrid(z complex128, period, thickness float64) bool {
	if IsInf(z) {
		return true
	}
	return onBand(math.Abs(real(z)), period, thickness)
}

// HorizontalGrid reports whether z lies on a horizontal grid line, the
// [VerticalGrid] pattern mirrored onto the imaginary axis. Horizontal lines
// pass through the point at infinity, so the predicate is true there.
func HorizontalGrid(z complex128, period, thickness float64) bool {
	if IsInf(z) {
		return true
	}
	return onBand(math.Abs(imag(z)), period, thickness)
}

// RadialGrid reports whether z lies on one of a family of concentric
// circles around the origin, spaced period apart. Circles stay at finite
// distance from the origin, so the predicate is false at the point at
// infinity.
func RadialGrid(z complex128, period, thickness float64) bool {
	if IsInf(z) {
		return false
	}
	return onBand(cmplx.Abs(z), period, thickness)
}

// AngularGrid reports whether z lies on one of a family of rays from the
// origin at regular angular intervals, with period and thickness in
// radians. Every ray passes through the point at infinity, so the predicate
// is true there.
//
// The angle is measured from the positive real axis and brought into
// [0, 2π) before the periodic test, so the modulo never sees a negative
// operand near the 0/2π seam.
func AngularGrid(z complex128, period, thickness float64) bool {
	if IsInf(z) {
		return true
	}
	th := cmplx.Phase(z)
	if th < 0 {
		th += 2 * math.Pi
	}
	return onBand(th, period, thickness)
}

// onBand reports whether x mod period falls within thickness of period/2.
// The band is half-open: [period/2 − thickness, period/2 + thickness).
// x must be non-negative.
func onBand(x, period, thickness float64) bool {
	m := math.Mod(x, period)
	half := period / 2
	return m >= half-thickness && m < half+thickness
}
