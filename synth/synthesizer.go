// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"context"
	"fmt"
)

// Config is the read-only configuration shared by every note of a batch.
type Config struct {
	SampleRate  int
	Attenuation float64
}

func DefaultConfig() Config {
	return Config{SampleRate: 44100, Attenuation: DefaultAttenuation}
}

// Synthesizer binds a Config (and optional default options) so a batch can
// render many notes with the same settings. It holds no mutable state and may
// be used from several goroutines, as long as the default options do not
// include a shared WithRand source.
type Synthesizer struct {
	cfg      Config
	defaults []Option
}

func NewSynthesizer(cfg Config, defaults ...Option) (*Synthesizer, error) {
	if cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %d must be positive", ErrInvalidParameter, cfg.SampleRate)
	}
	if cfg.Attenuation == 0 {
		cfg.Attenuation = DefaultAttenuation
	}
	if !(cfg.Attenuation > 0 && cfg.Attenuation <= 1) {
		return nil, fmt.Errorf("%w: attenuation %v outside (0, 1]", ErrInvalidParameter, cfg.Attenuation)
	}

	return &Synthesizer{cfg: cfg, defaults: defaults}, nil
}

func (s *Synthesizer) Config() Config { return s.cfg }

// Synthesize renders frequency for durationSamples at the configured rate.
// Options given here override the synthesizer defaults.
func (s *Synthesizer) Synthesize(ctx context.Context, frequency float64, durationSamples int, opts ...Option) ([]float64, error) {
	base := append([]Option{WithAttenuation(s.cfg.Attenuation)}, s.defaults...)

	return synthesize(ctx, frequency, s.cfg.SampleRate, durationSamples, buildOptions(base, opts))
}
