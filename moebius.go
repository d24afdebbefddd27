package moebius

import (
	"errors"
	"fmt"
	"math/cmplx"
)

// Tolerance is the magnitude below which complex values are treated as
// zero. It is used in three places that must agree: the determinant check
// at construction, the vanishing-denominator check in [Transform.Apply],
// and the coefficient zero-tests when applying a transform to the point at
// infinity.
//
// Callers that need stricter or looser validation have to check the
// coefficients themselves.
const Tolerance = 1e-10

var (
	// ErrSingular is returned by New when the determinant ad − bc has
	// magnitude at or below [Tolerance], so the coefficients do not define
	// an invertible mapping.
	ErrSingular = errors.New("moebius: determinant must be non-zero for a valid Möbius transformation")

	// ErrInfiniteCoefficient is returned by New when one or more
	// coefficients are infinite.
	ErrInfiniteCoefficient = errors.New("moebius: coefficients must be finite for a valid Möbius transformation")
)

// Transform describes a Möbius transformation
//
//	f(z) = (a·z + b) / (c·z + d)
//
// with complex coefficients and ad − bc ≠ 0, or equivalently the matrix
//
//	| a b |
//	| c d |
//
// acting on the extended complex plane. Composition is matrix
// multiplication, with the convention that (A * B)(z) == A(B(z)).
//
// Transforms are immutable values: every operation returns a new transform,
// and the coefficients of a constructed transform never change. The zero
// value is not a valid transform; use [New] or one of the constructor
// functions.
type Transform struct {
	a, b, c, d complex128
}

// Identity is the identity transform.
var Identity = Transform{a: 1, d: 1}

// New returns the transform with coefficients (a, b, c, d).
//
// It returns [ErrInfiniteCoefficient] if any coefficient is infinite, and
// [ErrSingular] if the determinant ad − bc has magnitude at or below
// [Tolerance].
func New(a, b, c, d complex128) (Transform, error) {
	if IsInf(a) || IsInf(b) || IsInf(c) || IsInf(d) {
		return Transform{}, ErrInfiniteCoefficient
	}
	if cmplx.Abs(a*d-b*c) <= Tolerance {
		return Transform{}, ErrSingular
	}
	return Transform{a, b, c, d}, nil
}

// mustTransform is New for transforms whose validity is a mathematical
// guarantee. A failure here is an invariant violation in this package, not
// a user error.
func mustTransform(a, b, c, d complex128) Transform {
	tr, err := New(a, b, c, d)
	if err != nil {
		panic(fmt.Sprintf("moebius: derived transform (%v, %v, %v, %v) is invalid: %s", a, b, c, d, err))
	}
	return tr
}

// Translation returns the transform z ↦ z + b.
func Translation(b complex128) Transform {
	return mustTransform(1, b, 0, 1)
}

// Scaling returns the transform z ↦ a·z. It panics if the magnitude of a
// is at or below [Tolerance], as the mapping would be degenerate.
func Scaling(a complex128) Transform {
	return mustTransform(a, 0, 0, 1)
}

// Rotation returns the transform z ↦ e^(iθ)·z, a rotation about the origin
// by th radians, anti-clockwise for positive th.
func Rotation(th float64) Transform {
	return mustTransform(cmplx.Rect(1, th), 0, 0, 1)
}

// Inversion returns the transform z ↦ 1/z. It exchanges zero and the point
// at infinity.
func Inversion() Transform {
	return mustTransform(0, 1, 1, 0)
}

// Coefficients returns the coefficients (a, b, c, d) of the transform.
func (tr Transform) Coefficients() [4]complex128 {
	return [4]complex128{tr.a, tr.b, tr.c, tr.d}
}

// Matrix returns the matrix representation of the transform,
// [[a, b], [c, d]].
func (tr Transform) Matrix() [2][2]complex128 {
	return [2][2]complex128{{tr.a, tr.b}, {tr.c, tr.d}}
}

// String returns the transform formatted as (az + b) / (cz + d), with each
// coefficient in parentheses.
func (tr Transform) String() string {
	return fmt.Sprintf("(%vz + %v) / (%vz + %v)", tr.a, tr.b, tr.c, tr.d)
}

// Apply applies the transform to z.
//
// Apply is total over the extended complex plane and never fails. The point
// at infinity maps according to the Riemann-sphere rules: to a/c when c is
// non-zero, and back to [Infinity] when c is zero. Finite points where the
// denominator c·z + d vanishes (magnitude below [Tolerance]) map to
// [Infinity]. All other results are normalized, so a division that
// overflows to a non-finite float still yields the canonical infinity.
func (tr Transform) Apply(z complex128) complex128 {
	if IsInf(z) {
		cZero := cmplx.Abs(tr.c) < Tolerance
		aZero := cmplx.Abs(tr.a) < Tolerance
		switch {
		case cZero && !aZero:
			return Infinity
		case !cZero && aZero:
			return 0
		case !cZero && !aZero:
			return Normalize(tr.a / tr.c)
		default:
			// a = c = 0 is excluded by the construction invariant.
			return Infinity
		}
	}

	den := tr.c*z + tr.d
	if cmplx.Abs(den) < Tolerance {
		return Infinity
	}
	return Normalize((tr.a*z + tr.b) / den)
}

// ApplyBatch applies the transform to every point in zs and returns the
// results in the same order. The input slice is not modified. A nil input
// yields a nil result.
func (tr Transform) ApplyBatch(zs []complex128) []complex128 {
	if zs == nil {
		return nil
	}
	out := make([]complex128, len(zs))
	for i, z := range zs {
		out[i] = tr.Apply(z)
	}
	return out
}

// Mul returns the composition tr ∘ o, the transform that first applies o
// and then tr, so that tr.Mul(o).Apply(z) == tr.Apply(o.Apply(z)). The
// coefficients combine by 2×2 matrix multiplication.
//
// The composition of two valid transforms is itself valid: the determinant
// of a matrix product is the product of the determinants, both non-zero.
func (tr Transform) Mul(o Transform) Transform {
	return mustTransform(
		tr.a*o.a+tr.b*o.c,
		tr.a*o.b+tr.b*o.d,
		tr.c*o.a+tr.d*o.c,
		tr.c*o.b+tr.d*o.d,
	)
}

// Invert returns the inverse transform. The inverse always exists, as the
// determinant is non-zero by the construction invariant.
func (tr Transform) Invert() Transform {
	det := tr.Determinant()
	return mustTransform(tr.d/det, -tr.b/det, -tr.c/det, tr.a/det)
}

// Determinant returns the determinant ad − bc.
func (tr Transform) Determinant() complex128 {
	return tr.a*tr.d - tr.b*tr.c
}

// Normalize returns the transform scaled so that its determinant is 1,
// dividing all four coefficients by the principal square root of the
// determinant. The normalized transform describes the same mapping, since
// Möbius transformations are invariant under scalar multiples of their
// coefficients.
func (tr Transform) Normalize() Transform {
	s := cmplx.Sqrt(tr.Determinant())
	return mustTransform(tr.a/s, tr.b/s, tr.c/s, tr.d/s)
}

// IsIdentity reports whether the transform is the identity mapping, up to
// the scalar-multiple equivalence of Möbius transformations and within
// [Tolerance].
func (tr Transform) IsIdentity() bool {
	return cmplx.Abs(tr.b) <= Tolerance &&
		cmplx.Abs(tr.c) <= Tolerance &&
		cmplx.Abs(tr.a-tr.d) <= Tolerance
}
