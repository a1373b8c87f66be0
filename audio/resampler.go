// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/pluck/utils"
)

// Resampler streams src at a different sample rate using Catmull-Rom
// interpolation over a four-frame window. Channel count is preserved.
//
// Output frame k sits at source position k*srcRate/dstRate; frames are
// produced while that position falls on a real source frame, so N input
// frames become ceil(N*dstRate/srcRate) output frames. Missing look-ahead
// frames at the end of the stream repeat the last real frame.
type Resampler struct {
	src      Source
	channels int
	srcRate  int
	dstRate  int

	// win[1] is source frame base; win[0] is the one before, win[2] and
	// win[3] the two after. real marks which entries hold source data.
	win     [4][]float32
	real    [4]bool
	base    int
	started bool
	emitted int

	in     []float32
	inOff  int
	inLen  int
	srcEOF bool
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := max(src.Channels(), 1)
	r := &Resampler{
		src:      src,
		channels: channels,
		srcRate:  src.SampleRate(),
		dstRate:  dstRate,
		in:       make([]float32, 1024*channels),
	}
	for i := range r.win {
		r.win[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// readFrame copies the next source frame into dst. ok is false once the
// source is exhausted.
func (r *Resampler) readFrame(dst []float32) (bool, error) {
	for r.inOff+r.channels > r.inLen {
		if r.srcEOF {
			return false, nil
		}

		// keep a partial frame left over from the previous read
		rest := copy(r.in, r.in[r.inOff:r.inLen])
		room := (len(r.in) - rest) / r.channels * r.channels
		n, err := r.src.ReadSamples(r.in[rest : rest+room])
		r.inOff, r.inLen = 0, rest+n

		if err == io.EOF {
			r.srcEOF = true
		} else if err != nil {
			return false, fmt.Errorf("%w", err)
		}
	}

	copy(dst, r.in[r.inOff:r.inOff+r.channels])
	r.inOff += r.channels

	return true, nil
}

// fill loads win[i] from the source, or repeats win[i-1] at end of stream.
func (r *Resampler) fill(i int) error {
	ok, err := r.readFrame(r.win[i])
	if err != nil {
		return err
	}
	r.real[i] = ok
	if !ok {
		copy(r.win[i], r.win[i-1])
	}

	return nil
}

func (r *Resampler) start() error {
	r.started = true

	ok, err := r.readFrame(r.win[1])
	if err != nil || !ok {
		return err
	}
	r.real[1] = true
	copy(r.win[0], r.win[1])

	if err := r.fill(2); err != nil {
		return err
	}

	return r.fill(3)
}

func (r *Resampler) advance() error {
	first := r.win[0]
	copy(r.win[:], r.win[1:])
	copy(r.real[:], r.real[1:])
	r.win[3] = first
	r.base++

	return r.fill(3)
}

// ReadSamples produces resampled interleaved samples into dst, whose length
// must be a multiple of Channels().
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if r.srcRate <= 0 || r.dstRate <= 0 {
		return 0, fmt.Errorf("%w: %d -> %d Hz", ErrInvalidSampleRate, r.srcRate, r.dstRate)
	}
	if !r.started {
		if err := r.start(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0

	for written < frames {
		// integer position keeps the frame count exact for any rate pair
		num := r.emitted * r.srcRate
		idx := num / r.dstRate

		for r.base < idx && r.real[1] {
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}
		if !r.real[1] {
			if written == 0 {
				return 0, io.EOF
			}
			return written * r.channels, nil
		}

		x := float32(num%r.dstRate) / float32(r.dstRate)
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range out {
			out[c] = utils.CubicInterpolate(r.win[0][c], r.win[1][c], r.win[2][c], r.win[3][c], x)
		}

		written++
		r.emitted++
	}

	return written * r.channels, nil
}
