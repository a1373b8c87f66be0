//go:build !headless

// SPDX-License-Identifier: EPL-2.0

package device

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/ik5/pluck/playback"
	"github.com/sirupsen/logrus"
)

const pollInterval = 10 * time.Millisecond

// Speaker is a mono oto output. Only one Speaker may exist per process.
type Speaker struct {
	ctx  *oto.Context
	rate int
	mu   sync.Mutex // one clip at a time
}

// NewSpeaker opens the default output device at sampleRate.
func NewSpeaker(sampleRate int) (*Speaker, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	<-ready

	logrus.WithFields(logrus.Fields{
		"function":    "device.NewSpeaker",
		"sample_rate": sampleRate,
	}).Debug("Audio output opened")

	return &Speaker{ctx: ctx, rate: sampleRate}, nil
}

func (s *Speaker) SampleRate() int { return s.rate }

// Play blocks until clip has been played out or ctx is done.
func (s *Speaker) Play(ctx context.Context, clip playback.Clip) error {
	if clip.SampleRate != s.rate {
		return fmt.Errorf("%w: clip %d Hz, speaker %d Hz", ErrRateMismatch, clip.SampleRate, s.rate)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	player := s.ctx.NewPlayer(bytes.NewReader(encodePCM(clip.Samples)))
	defer player.Close()

	player.Play()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for player.IsPlaying() {
		select {
		case <-ctx.Done():
			player.Pause()
			return ctx.Err()
		case <-ticker.C:
		}
	}

	if err := player.Err(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
