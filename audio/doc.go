// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives shared by the renderer and
// the playback scheduler.
//
// This package contains:
//   - Source interface for float32 PCM streams
//   - BufferSource for samples already in memory (synthesized notes)
//   - Resampler for sample rate conversion
//   - MonoMixer for channel mixing
//   - Registry mapping clip file extensions to decoders
//   - Collect to drain a Source into a slice
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Decoders, mixers and resamplers all implement Source, so they chain:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	mono := audio.NewMonoMixer(src)
//	clip, err := audio.Collect(audio.NewResampler(mono, 44100))
//
// # Resampling
//
// The Resampler uses Catmull-Rom interpolation. The renderer uses it when the
// configured output rate differs from the synthesis rate; the playback side
// uses it to bring clips to the device rate.
//
// # Format Registry
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, ok := registry.ForPath("clips/A3.wav")
//
// Keys are case-insensitive and the leading dot is optional.
//
// # Sample Format
//
// Samples are float32 in [-1.0, 1.0]. Quantization to 16-bit PCM happens at
// the edges (see utils.ToInt16).
//
// # Error Handling
//
// ReadSamples returns io.EOF when no more data is available, possibly
// together with the last samples. Other errors come from the source.
package audio
