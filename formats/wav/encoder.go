// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/sirupsen/logrus"
)

// Encode writes samples as a mono 16-bit PCM WAV at sampleRate.
//
// Seekable writers (files) go through the go-audio encoder, which patches
// the RIFF sizes on Close; any other writer gets the streaming WriteWAV16.
// Both produce the same canonical layout.
func Encode(w io.Writer, sampleRate int, samples []int16) error {
	ws, ok := w.(io.WriteSeeker)
	if !ok {
		return WriteWAV16(w, sampleRate, samples)
	}
	if sampleRate <= 0 {
		return fmt.Errorf("%w: %w: %d", ErrEncodingFailure, ErrInvalidSampleRate, sampleRate)
	}

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: bitsPerSample,
	}

	enc := gowav.NewEncoder(ws, sampleRate, bitsPerSample, 1, 1)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingFailure, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingFailure, err)
	}

	return nil
}

// WriteFile encodes samples into path. The clip is written to a temporary
// file in the same directory and renamed into place, so path either holds a
// complete clip or is left untouched.
func WriteFile(path string, sampleRate int, samples []int16) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingFailure, err)
	}
	tmpName := tmp.Name()

	if err := Encode(tmp, sampleRate, samples); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrEncodingFailure, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrEncodingFailure, err)
	}

	logrus.WithFields(logrus.Fields{
		"function":    "wav.WriteFile",
		"path":        path,
		"sample_rate": sampleRate,
		"frames":      len(samples),
	}).Debug("Clip written")

	return nil
}
