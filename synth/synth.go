// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"context"
	"fmt"
	"math"

	"github.com/ik5/pluck/ring"
	"github.com/sirupsen/logrus"
)

// MaxRingLength bounds the delay line; longer rings mean a frequency too low
// to synthesize.
const MaxRingLength = math.MaxInt32

// RingLength returns the delay line length for frequency: sampleRate/frequency
// rounded to the nearest integer, with exact halves rounding down. The
// rounding detunes high notes slightly; no fractional delay is applied.
func RingLength(frequency float64, sampleRate int) (int, error) {
	if !(frequency > 0) || math.IsInf(frequency, 1) {
		return 0, fmt.Errorf("%w: frequency %v must be positive", ErrInvalidParameter, frequency)
	}
	if sampleRate <= 0 {
		return 0, fmt.Errorf("%w: sample rate %d must be positive", ErrInvalidParameter, sampleRate)
	}

	n := math.Ceil(float64(sampleRate)/frequency - 0.5)
	if n > MaxRingLength {
		return 0, fmt.Errorf("%w: frequency too low: ring length %g", ErrInvalidParameter, n)
	}
	if n < 2 {
		return 0, fmt.Errorf("%w: %.2f Hz at %d Hz gives ring length %.0f", ErrFrequencyTooHigh, frequency, sampleRate, n)
	}

	return int(n), nil
}

// Synthesize runs the Karplus-Strong recurrence for durationSamples steps and
// returns one amplitude per step. Step i emits the head of the delay line,
// then replaces it with the attenuated average of the two oldest values.
//
// The context is checked once per step; on cancellation ErrCancelled is
// returned and no samples are.
func Synthesize(ctx context.Context, frequency float64, sampleRate, durationSamples int, opts ...Option) ([]float64, error) {
	return synthesize(ctx, frequency, sampleRate, durationSamples, buildOptions(nil, opts))
}

func synthesize(ctx context.Context, frequency float64, sampleRate, durationSamples int, o options) ([]float64, error) {
	if durationSamples <= 0 {
		return nil, fmt.Errorf("%w: duration %d samples must be positive", ErrInvalidParameter, durationSamples)
	}
	if !(o.attenuation > 0 && o.attenuation <= 1) {
		return nil, fmt.Errorf("%w: attenuation %v outside (0, 1]", ErrInvalidParameter, o.attenuation)
	}
	if o.observer != nil && o.every <= 0 {
		return nil, fmt.Errorf("%w: observer interval %d must be positive", ErrInvalidParameter, o.every)
	}

	n, err := RingLength(frequency, sampleRate)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"function":    "synth.Synthesize",
		"frequency":   frequency,
		"sample_rate": sampleRate,
		"ring_length": n,
		"samples":     durationSamples,
		"attenuation": o.attenuation,
	}).Debug("Starting string synthesis")

	buf, err := ring.New[float64](n, o.rng)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	var snapshot []float64
	done := ctx.Done()
	out := make([]float64, durationSamples)
	gain := o.attenuation * 0.5

	for i := range out {
		select {
		case <-done:
			logrus.WithFields(logrus.Fields{
				"function":  "synth.Synthesize",
				"frequency": frequency,
				"step":      i,
			}).Debug("String synthesis cancelled")
			return nil, fmt.Errorf("%w: %w", ErrCancelled, ctx.Err())
		default:
		}

		if o.observer != nil && i%o.every == 0 {
			snapshot = buf.Snapshot(snapshot)
			o.observer(i, snapshot)
		}

		v0, v1, err := buf.FirstTwo()
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		out[i] = v0
		buf.Step(gain * (v0 + v1))
	}

	logrus.WithFields(logrus.Fields{
		"function":  "synth.Synthesize",
		"frequency": frequency,
		"samples":   len(out),
	}).Debug("String synthesis completed")

	return out, nil
}
