//go:build headless

// SPDX-License-Identifier: EPL-2.0

package device

import (
	"context"

	"github.com/ik5/pluck/playback"
)

// Speaker is unavailable in headless builds.
type Speaker struct{}

func NewSpeaker(int) (*Speaker, error) { return nil, ErrUnavailable }

func (*Speaker) SampleRate() int                           { return 0 }
func (*Speaker) Play(context.Context, playback.Clip) error { return ErrUnavailable }
