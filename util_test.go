package moebius

import (
	"math/cmplx"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, got, want complex128, epsilon float64) {
	t.Helper()
	if d := cmplx.Abs(got - want); d > epsilon {
		t.Fatalf("got %v, expected %v", got, want)
	}
}
