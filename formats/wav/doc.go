// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes PCM 16-bit WAV clips.
//
// Encode and WriteFile produce the mono clips the synthesizer renders: a
// RIFF header, a 16-byte fmt chunk (PCM, one channel, the sample rate, 16
// bits) and a data chunk of little-endian samples. Seekable writers go
// through github.com/go-audio/wav; WriteWAV16 streams the same layout to
// any io.Writer.
//
//	pcm, _ := synth.Quantize(samples)
//	if err := wav.WriteFile("A3.wav", 44100, pcm); err != nil {
//	    return err
//	}
//
// Decoder turns a WAV clip of any channel count back into an audio.Source,
// so rendered notes can be loaded for playback. ReadInfo returns the header
// fields and frame count without decoding samples.
package wav
