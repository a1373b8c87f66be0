// SPDX-License-Identifier: EPL-2.0

package pluck

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/pluck/formats/wav"
	"github.com/ik5/pluck/synth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderNote_A3(t *testing.T) {
	t.Parallel()

	n, err := synth.RingLength(220, 44100)
	require.NoError(t, err)
	assert.Equal(t, 200, n)

	path := filepath.Join(t.TempDir(), "A3.wav")
	f, err := os.Create(path)
	require.NoError(t, err)

	warning, err := RenderNote(context.Background(), f, 220, 44100, 44100, synth.WithSeed(42))
	require.NoError(t, err)
	assert.Nil(t, warning)
	require.NoError(t, f.Close())

	in, err := os.Open(path)
	require.NoError(t, err)
	defer in.Close()

	info, err := wav.ReadInfo(in)
	require.NoError(t, err)
	assert.Equal(t, 1, info.Channels)
	assert.Equal(t, 2, info.SampleWidth())
	assert.Equal(t, 44100, info.SampleRate)
	assert.Equal(t, 44100, info.Frames)
}

func TestRenderNote_StreamMatchesFile(t *testing.T) {
	t.Parallel()

	var stream bytes.Buffer
	_, err := RenderNote(context.Background(), &stream, 440, 8000, 800, synth.WithSeed(3))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "A4.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	_, err = RenderNote(context.Background(), f, 440, 8000, 800, synth.WithSeed(3))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	file, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, stream.Bytes(), file)
}

func TestRenderNote_Errors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	_, err := RenderNote(context.Background(), &buf, 44100/1.5, 44100, 100)
	assert.ErrorIs(t, err, synth.ErrFrequencyTooHigh)
	assert.Zero(t, buf.Len(), "nothing written for a rejected note")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = RenderNote(ctx, &buf, 220, 44100, 100)
	assert.ErrorIs(t, err, synth.ErrCancelled)
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestRenderNote_WriteFailure(t *testing.T) {
	t.Parallel()

	_, err := RenderNote(context.Background(), brokenWriter{}, 220, 8000, 100, synth.WithSeed(1))
	assert.ErrorIs(t, err, wav.ErrEncodingFailure)
}
