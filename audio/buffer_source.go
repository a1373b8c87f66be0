// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// BufferSource serves samples already held in memory, such as a freshly
// synthesized note, through the Source interface.
type BufferSource struct {
	data       []float32
	off        int
	sampleRate int
	channels   int
}

func NewBufferSource(sampleRate, channels int, data []float32) *BufferSource {
	return &BufferSource{data: data, sampleRate: sampleRate, channels: channels}
}

// NewFloat64Source converts mono float64 samples for use in a pipeline.
func NewFloat64Source(sampleRate int, samples []float64) *BufferSource {
	data := make([]float32, len(samples))
	for i, s := range samples {
		data[i] = float32(s)
	}

	return NewBufferSource(sampleRate, 1, data)
}

func (b *BufferSource) SampleRate() int { return b.sampleRate }
func (b *BufferSource) Channels() int   { return b.channels }
func (b *BufferSource) BufSize() int    { return len(b.data) }
func (b *BufferSource) Close() error    { return nil }

func (b *BufferSource) ReadSamples(dst []float32) (int, error) {
	if b.off >= len(b.data) {
		return 0, io.EOF
	}
	if len(dst) == 0 {
		return 0, nil
	}

	n := copy(dst, b.data[b.off:])
	b.off += n
	if b.off >= len(b.data) {
		return n, io.EOF
	}

	return n, nil
}

// Collect drains src and returns every sample it produced.
func Collect(src Source) ([]float32, error) {
	size := src.BufSize()
	if size <= 0 || size > 1<<16 {
		size = 4096
	}
	size -= size % max(src.Channels(), 1)
	if size == 0 {
		size = src.Channels()
	}

	var out []float32
	buf := make([]float32, size)

	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)

		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}
}
