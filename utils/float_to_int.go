// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// FullScale16 is the largest magnitude a quantized 16-bit sample takes.
// The scale is symmetric, so -1.0 maps to -32767 and -32768 is never produced.
const FullScale16 = math.MaxInt16

// ToInt16 quantizes x to signed 16-bit PCM as round(clamp(x, -1, 1) * 32767).
// clipped reports whether x was outside [-1, 1] (or NaN) and had to be clamped.
func ToInt16[F Float](x F) (v int16, clipped bool) {
	f := float64(x)
	switch {
	case f > 1:
		f, clipped = 1, true
	case f < -1:
		f, clipped = -1, true
	case f != f: // NaN
		f, clipped = 0, true
	}

	return int16(math.Round(f * FullScale16)), clipped
}

// Float32ToInt16 is ToInt16 for callers that do not care about clipping.
func Float32ToInt16(x float32) int16 {
	v, _ := ToInt16(x)
	return v
}
