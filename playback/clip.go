// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"context"
	"time"
)

// Clip is a decoded mono clip ready for a backend.
type Clip struct {
	ID         string
	SampleRate int
	Samples    []float32
}

// Duration is the clip's playing time at its own sample rate.
func (c Clip) Duration() time.Duration {
	if c.SampleRate <= 0 {
		return 0
	}
	return time.Duration(len(c.Samples)) * time.Second / time.Duration(c.SampleRate)
}

// Backend plays one clip at a time. Play blocks until the clip finished or
// ctx is done.
type Backend interface {
	SampleRate() int
	Play(ctx context.Context, clip Clip) error
}

// Discard is a Backend that drops every clip. It is used when no audio
// device is available and in tests.
type Discard struct {
	Rate int
}

func (d Discard) SampleRate() int { return d.Rate }

func (d Discard) Play(ctx context.Context, _ Clip) error {
	return ctx.Err()
}
