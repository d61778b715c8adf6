// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestCubicInterpolate_Endpoints(t *testing.T) {
	t.Parallel()

	for i := 0; i < 50; i++ {
		y0, y1, y2, y3 := float32(i), float32(i+1), float32(i+2), float32(i+3)

		if got := CubicInterpolate(y0, y1, y2, y3, 0); got != y1 {
			t.Errorf("x=0: got %v, want y1=%v", got, y1)
		}
		if got := CubicInterpolate(y0, y1, y2, y3, 1); got != y2 {
			t.Errorf("x=1: got %v, want y2=%v", got, y2)
		}
	}
}

func TestCubicInterpolate_LinearData(t *testing.T) {
	t.Parallel()

	// Catmull-Rom reproduces a straight line exactly.
	for x := float32(0); x <= 1; x += 0.125 {
		got := CubicInterpolate(1, 2, 3, 4, x)
		want := 2 + x
		if math.Abs(float64(got-want)) > 1e-5 {
			t.Errorf("x=%v: got %v, want %v", x, got, want)
		}
	}
}

func TestCubicInterpolate_ZeroAllocs(t *testing.T) {
	allocs := testing.AllocsPerRun(1000, func() {
		_ = CubicInterpolate(0.5, 1.0, 0.8, 0.3, 0.5)
	})
	if allocs > 0 {
		t.Errorf("CubicInterpolate allocated %v times, want 0", allocs)
	}
}
