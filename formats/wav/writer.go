// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

const (
	headerSize    = 44
	bitsPerSample = 16
	bytesPerFrame = bitsPerSample / 8
	writeChunk    = 8192 // samples per Write call
)

// WriteWAV16 streams a mono 16-bit PCM WAV with the canonical 44-byte header
// to any io.Writer. Sizes are known up front, so no seeking is needed.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: %w: %d", ErrEncodingFailure, ErrInvalidSampleRate, sampleRate)
	}
	if uint64(len(samples))*bytesPerFrame > math.MaxUint32-36 {
		return fmt.Errorf("%w: %d samples do not fit a RIFF container", ErrEncodingFailure, len(samples))
	}

	dataSize := uint32(len(samples) * bytesPerFrame)
	header := make([]byte, headerSize)

	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], 36+dataSize)
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], 1)  // PCM, no compression
	binary.LittleEndian.PutUint16(header[22:24], 1)  // mono
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(sampleRate*bytesPerFrame))
	binary.LittleEndian.PutUint16(header[32:34], bytesPerFrame)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w: header: %w", ErrEncodingFailure, err)
	}

	buf := make([]byte, min(len(samples), writeChunk)*bytesPerFrame)
	for i := 0; i < len(samples); i += writeChunk {
		chunk := samples[i:min(i+writeChunk, len(samples))]
		out := buf[:len(chunk)*bytesPerFrame]

		for j, s := range chunk {
			binary.LittleEndian.PutUint16(out[j*2:], uint16(s))
		}

		if _, err := w.Write(out); err != nil {
			return fmt.Errorf("%w: samples: %w", ErrEncodingFailure, err)
		}
	}

	return nil
}
