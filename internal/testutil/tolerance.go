package testutil

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

// RequireNearlyEqual fails t unless got and want agree within relTol,
// relative with an absolute fallback of the same size near zero.
func RequireNearlyEqual(t *testing.T, got, want, relTol float64) {
	t.Helper()

	if !scalar.EqualWithinAbsOrRel(got, want, relTol, relTol) {
		t.Fatalf("got %v, want %v (rel tol %v)", got, want, relTol)
	}
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair disagrees beyond relTol.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, relTol float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	for i := range got {
		if !scalar.EqualWithinAbsOrRel(got[i], want[i], relTol, relTol) {
			t.Fatalf("index %d: got %v, want %v (rel tol %v)", i, got[i], want[i], relTol)
		}
	}
}
