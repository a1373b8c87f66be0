// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/ik5/pluck/audio"
	"github.com/jfreymuth/oggvorbis"
	"github.com/sirupsen/logrus"
)

// pcmReader is the part of oggvorbis.Reader the source needs, for testing.
// Read fills p with interleaved values and returns how many it wrote.
type pcmReader interface {
	Read(p []float32) (int, error)
}

type source struct {
	dec        pcmReader
	sampleRate int
	channels   int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return 4096 }

func (s *source) ReadSamples(dst []float32) (int, error) {
	whole := len(dst) / s.channels * s.channels
	if whole == 0 {
		return 0, nil
	}

	n, err := s.dec.Read(dst[:whole])
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("%w", err)
	}
	if n == 0 && err == nil {
		return 0, io.EOF
	}

	return n, err
}

// Decoder reads Ogg Vorbis clips.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	logrus.WithFields(logrus.Fields{
		"function":    "vorbis.Decoder.Decode",
		"sample_rate": dec.SampleRate(),
		"channels":    dec.Channels(),
	}).Debug("Vorbis clip opened")

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
	}, nil
}
