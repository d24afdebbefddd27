// Package moebius implements Möbius (fractional-linear) transformations on
// the extended complex plane.
//
// A Möbius transformation is a conformal mapping
//
//	f(z) = (a·z + b) / (c·z + d)
//
// with complex coefficients and ad − bc ≠ 0. These mappings form a group
// under composition ([Transform.Mul]) and are closed under inversion
// ([Transform.Invert]).
//
// # The extended complex plane
//
// Transforms operate on the extended complex plane (the Riemann sphere):
// the complex numbers plus a single point at infinity. This makes
// [Transform.Apply] a total function. Finite points where the denominator
// vanishes map to [Infinity], and infinity itself maps to a/c (or stays at
// infinity for affine maps, where c = 0). There is only one point at
// infinity: all directional infinities representable in complex128 are
// collapsed onto the canonical [Infinity] by [Normalize], and results of
// Apply are always normalized this way.
//
// Construction is the only fallible operation. [New] rejects infinite
// coefficients and determinants too close to zero; every transform that
// exists is valid, and everything derived from valid transforms
// (composition, inverses, determinant normalization) is valid by
// construction.
//
// # Grid patterns
//
// The package also provides predicates that classify a point against
// periodic patterns on the plane: vertical and horizontal line bands
// ([VerticalGrid], [HorizontalGrid]), concentric circles ([RadialGrid]),
// and angular rays from the origin ([AngularGrid]). Visualizing how a
// transform distorts the plane amounts to pushing each sampled point
// through [Transform.Apply] and layering the predicates; see
// cmd/moebiusgrid for a renderer that writes such a pattern to a PNG file.
package moebius
