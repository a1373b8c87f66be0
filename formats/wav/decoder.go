// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/pluck/audio"
)

// pcmReader is the part of gowav.Decoder the source needs, for testing.
type pcmReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type wavSource struct {
	dec        pcmReader
	sampleRate int
	channels   int
	intBuf     *goaudio.IntBuffer
	closer     io.Closer
}

func (s *wavSource) SampleRate() int { return s.sampleRate }
func (s *wavSource) Channels() int   { return s.channels }

func (s *wavSource) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return 4096
}

func (s *wavSource) Close() error {
	if s.closer == nil {
		return nil
	}
	if err := s.closer.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *wavSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{Data: make([]int, len(dst))}
	}
	s.intBuf.Data = s.intBuf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.intBuf)
	if errors.Is(err, io.ErrUnexpectedEOF) {
		err = io.EOF
	}
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("%w", err)
	}
	if n == 0 {
		return 0, io.EOF
	}

	for i, v := range s.intBuf.Data[:n] {
		dst[i] = float32(v) / 32768.0
	}
	if n < len(dst) {
		return n, io.EOF
	}

	return n, err
}

// Decoder reads PCM 16-bit WAV clips of any channel count and sample rate.
// Extra chunks (LIST, INFO, ...) are skipped.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := open(r)
	if err != nil {
		return nil, err
	}
	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}

	closer, _ := r.(io.Closer)

	return &wavSource{
		dec:        dec,
		sampleRate: int(dec.SampleRate),
		channels:   int(dec.NumChans),
		closer:     closer,
	}, nil
}

func open(r io.Reader) (*gowav.Decoder, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}
	if dec.WavAudioFormat != 1 || dec.BitDepth != bitsPerSample {
		return nil, ErrOnlyPCM16bitSupported
	}

	return dec, nil
}

// Info is the header of a WAV clip.
type Info struct {
	Channels   int
	SampleBits int
	SampleRate int
	Frames     int
}

// SampleWidth is the size of one sample in bytes.
func (i Info) SampleWidth() int { return i.SampleBits / 8 }

// ReadInfo parses the header of the clip in r and counts its frames.
func ReadInfo(r io.Reader) (Info, error) {
	dec, err := open(r)
	if err != nil {
		return Info{}, err
	}
	if err := dec.FwdToPCM(); err != nil {
		return Info{}, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}

	info := Info{
		Channels:   int(dec.NumChans),
		SampleBits: int(dec.BitDepth),
		SampleRate: int(dec.SampleRate),
	}
	if frameSize := info.Channels * info.SampleWidth(); frameSize > 0 {
		info.Frames = dec.PCMSize / frameSize
	}

	return info, nil
}
