// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"

	"github.com/ik5/pluck/utils"
	"github.com/sirupsen/logrus"
)

// Quantize converts samples to 16-bit PCM with round(clamp(x, -1, 1) * 32767).
// Clamping should never happen for a decaying string; when it does, the
// returned ClipWarning says how often and it is logged at warn level.
// A nil warning means every sample was in range.
func Quantize(samples []float64) ([]int16, *ClipWarning) {
	pcm := make([]int16, len(samples))
	var (
		clipped int
		peak    float64
	)

	for i, s := range samples {
		v, c := utils.ToInt16(s)
		pcm[i] = v
		if c {
			clipped++
		}
		if a := math.Abs(s); a > peak {
			peak = a
		}
	}

	if clipped == 0 {
		return pcm, nil
	}

	w := &ClipWarning{Clipped: clipped, Total: len(samples), Peak: peak}
	logrus.WithFields(logrus.Fields{
		"function": "synth.Quantize",
		"clipped":  w.Clipped,
		"total":    w.Total,
		"peak":     w.Peak,
	}).Warn("Samples outside [-1, 1] were clamped")

	return pcm, w
}
