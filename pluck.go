// SPDX-License-Identifier: EPL-2.0

package pluck

import (
	"context"
	"fmt"
	"io"

	"github.com/ik5/pluck/formats/wav"
	"github.com/ik5/pluck/synth"
)

// RenderNote synthesizes durationSamples of frequency at sampleRate and
// writes them to w as a mono 16-bit WAV clip. A non-nil warning reports
// samples that had to be clipped; the clip is still written.
func RenderNote(ctx context.Context, w io.Writer, frequency float64, sampleRate, durationSamples int, opts ...synth.Option) (*synth.ClipWarning, error) {
	samples, err := synth.Synthesize(ctx, frequency, sampleRate, durationSamples, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	pcm, warning := synth.Quantize(samples)
	if err := wav.Encode(w, sampleRate, pcm); err != nil {
		return warning, fmt.Errorf("%w", err)
	}

	return warning, nil
}
