// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/ik5/pluck/audio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chunkedReader hands out data in fixed-size pieces, which may split samples.
type chunkedReader struct {
	data  []byte
	chunk int
	err   error
}

func (c *chunkedReader) Read(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	if len(c.data) == 0 {
		return 0, io.EOF
	}

	n := copy(p[:min(len(p), c.chunk)], c.data)
	c.data = c.data[n:]
	return n, nil
}

func pcmBytes(samples ...int16) []byte {
	out := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(s))
	}
	return out
}

func TestDecoder_Rejects(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader(nil))
	assert.Error(t, err)
}

func TestSource_Converts(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &chunkedReader{data: pcmBytes(16384, -16384, 0, -32768), chunk: 1 << 10},
		sampleRate: 44100,
	}

	assert.Equal(t, 44100, src.SampleRate())
	assert.Equal(t, 2, src.Channels())
	assert.NoError(t, src.Close())

	got, err := audio.Collect(src)
	require.NoError(t, err)
	assert.Equal(t, []float32{0.5, -0.5, 0, -1}, got)
}

func TestSource_SplitSamples(t *testing.T) {
	t.Parallel()

	want := []int16{1000, -1000, 2000, -2000, 3000, -3000}
	src := &source{
		dec:        &chunkedReader{data: pcmBytes(want...), chunk: 3},
		sampleRate: 44100,
	}

	got, err := audio.Collect(src)
	require.NoError(t, err)
	require.Len(t, got, len(want))

	for i, s := range want {
		assert.InDelta(t, float32(s)/32768, got[i], 1e-6, "sample %d", i)
	}
}

func TestSource_Errors(t *testing.T) {
	t.Parallel()

	src := &source{dec: &chunkedReader{err: io.ErrClosedPipe}}
	_, err := src.ReadSamples(make([]float32, 4))
	assert.ErrorIs(t, err, io.ErrClosedPipe)

	n, err := src.ReadSamples(nil)
	assert.Zero(t, n)
	assert.NoError(t, err)
}

func TestSource_BufSize(t *testing.T) {
	t.Parallel()

	src := &source{dec: &chunkedReader{}, buf: make([]byte, 8192)}
	assert.Equal(t, 4096, src.BufSize())
}
