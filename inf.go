package moebius

import "math"

// Infinity is the point at infinity on the extended complex plane.
//
// On the extended complex plane (Riemann sphere) there is a single point at
// infinity, regardless of direction. All infinite complex values are
// collapsed onto this one canonical representation by [Normalize].
var Infinity = complex(math.Inf(1), math.Inf(1))

// IsInf reports whether z represents the point at infinity, i.e. whether at
// least one of its components is infinite. The sign of the component does
// not matter: on the extended complex plane all directional infinities are
// the same point.
func IsInf(z complex128) bool {
	return math.IsInf(real(z), 0) || math.IsInf(imag(z), 0)
}

// Normalize collapses any representation of infinity to the canonical
// [Infinity] and returns finite values unchanged.
func Normalize(z complex128) complex128 {
	if IsInf(z) {
		return Infinity
	}
	return z
}
