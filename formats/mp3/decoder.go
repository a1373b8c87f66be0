// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/pluck/audio"
	"github.com/sirupsen/logrus"
)

// go-mp3 always produces interleaved 16-bit little-endian stereo.
const channels = 2

// pcmReader is the part of gomp3.Decoder the source needs, for testing.
type pcmReader interface {
	Read([]byte) (int, error)
}

type source struct {
	dec        pcmReader
	sampleRate int
	buf        []byte
	pending    int // bytes of a split sample carried to the next read
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / 2 }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	need := len(dst) * 2
	if cap(s.buf) < need {
		grown := make([]byte, need)
		copy(grown, s.buf[:s.pending])
		s.buf = grown
	}
	s.buf = s.buf[:need]

	n, err := s.dec.Read(s.buf[s.pending:])
	n += s.pending
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("%w", err)
	}

	samples := n / 2
	for i := range samples {
		dst[i] = float32(int16(binary.LittleEndian.Uint16(s.buf[2*i:]))) / 32768.0
	}

	s.pending = n % 2
	if s.pending > 0 {
		s.buf[0] = s.buf[n-1]
	}

	if samples == 0 {
		if err == nil {
			return 0, nil
		}
		return 0, io.EOF
	}

	return samples, err
}

// Decoder reads MPEG-1/2 Layer III clips.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	logrus.WithFields(logrus.Fields{
		"function":    "mp3.Decoder.Decode",
		"sample_rate": dec.SampleRate(),
		"length":      dec.Length(),
	}).Debug("MP3 clip opened")

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}, nil
}
