// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestCubicInterpolate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		y0, y1, y2, y3 float64
		x              float64
		want           float64
		tolerance      float64
	}{
		{name: "start returns y1", y0: 0, y1: 1, y2: 2, y3: 3, x: 0, want: 1, tolerance: 1e-9},
		{name: "end returns y2", y0: 0, y1: 1, y2: 2, y3: 3, x: 1, want: 2, tolerance: 1e-9},
		{name: "linear data stays linear", y0: 1, y1: 2, y2: 3, y3: 4, x: 0.25, want: 2.25, tolerance: 1e-9},
		{name: "symmetric crossing", y0: -1, y1: -0.5, y2: 0.5, y3: 1, x: 0.5, want: 0, tolerance: 1e-9},
		{name: "waveform peak", y0: 0.5, y1: 0.9, y2: 0.7, y3: 0.3, x: 0.3, want: 0.85, tolerance: 0.1},
		{name: "silence", x: 0.5, want: 0, tolerance: 1e-12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := CubicInterpolate(tt.y0, tt.y1, tt.y2, tt.y3, tt.x)
			if diff := math.Abs(got - tt.want); diff > tt.tolerance {
				t.Errorf("CubicInterpolate() = %v, want %v (diff %v)", got, tt.want, diff)
			}

			got32 := CubicInterpolate(float32(tt.y0), float32(tt.y1), float32(tt.y2), float32(tt.y3), float32(tt.x))
			if diff := math.Abs(float64(got32) - tt.want); diff > tt.tolerance+1e-6 {
				t.Errorf("CubicInterpolate[float32]() = %v, want %v (diff %v)", got32, tt.want, diff)
			}
		})
	}
}

func TestCubicInterpolate_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	allocs := testing.AllocsPerRun(1000, func() {
		_ = CubicInterpolate[float32](0.5, 1.0, 0.8, 0.3, 0.5)
	})

	if allocs > 0 {
		t.Errorf("CubicInterpolate allocated %v times, want 0", allocs)
	}
}

func BenchmarkCubicInterpolate(b *testing.B) {
	out := make([]float32, 8000)

	b.ReportAllocs()

	for b.Loop() {
		for j := range out {
			out[j] = CubicInterpolate[float32](0.1, 0.5, 0.3, -0.2, float32(j%100)/100)
		}
	}
}
