// Package testutil holds numeric assertions shared by the calculator tests.
package testutil

import (
	"errors"
	"math"
	"testing"
)

// NearlyEqual reports whether a and b agree within a relative tolerance
// rel, falling back to an absolute comparison when both are near zero.
func NearlyEqual(a, b, rel float64) bool {
	diff := math.Abs(a - b)
	if diff <= rel {
		return true
	}
	largest := math.Max(math.Abs(a), math.Abs(b))
	return diff <= rel*largest
}

// RequireNearlyEqual fails t unless got is within rel of want.
func RequireNearlyEqual(t *testing.T, name string, got, want, rel float64) {
	t.Helper()
	if !NearlyEqual(got, want, rel) {
		t.Fatalf("%s: got %v, want %v (rel tol %v)", name, got, want, rel)
	}
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair is outside rel.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, rel float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if !NearlyEqual(got[i], want[i], rel) {
			t.Fatalf("index %d: got %v, want %v (rel tol %v)", i, got[i], want[i], rel)
		}
	}
}

// RequireErrorIs fails t unless errors.Is(err, target).
func RequireErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("error = %v, want %v", err, target)
	}
}
