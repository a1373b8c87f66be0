// SPDX-License-Identifier: EPL-2.0

package synth

import "math/rand/v2"

// DefaultAttenuation is the per-step energy loss factor of a plucked string.
const DefaultAttenuation = 0.995

// Observer receives a read-only view of the delay line every few steps.
// snapshot is reused between calls; copy it to keep it.
type Observer func(step int, snapshot []float64)

type options struct {
	attenuation float64
	rng         *rand.Rand
	observer    Observer
	every       int
}

type Option func(*options)

// WithAttenuation overrides DefaultAttenuation. It must lie in (0, 1].
func WithAttenuation(a float64) Option {
	return func(o *options) { o.attenuation = a }
}

// WithRand fills the delay line from r. Reusing a seeded source makes
// synthesis reproducible.
func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.rng = r }
}

// WithSeed is WithRand with a fresh PCG source seeded from seed.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.rng = NewRand(seed) }
}

// WithObserver calls fn with the ring contents before every n-th step.
func WithObserver(every int, fn Observer) Option {
	return func(o *options) {
		o.observer = fn
		o.every = every
	}
}

// NewRand returns the deterministic source used by WithSeed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func buildOptions(defaults []Option, extra []Option) options {
	o := options{attenuation: DefaultAttenuation}
	for _, opt := range defaults {
		opt(&o)
	}
	for _, opt := range extra {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return o
}
