// SPDX-License-Identifier: EPL-2.0

// Package pluck renders plucked-string notes with the Karplus-Strong
// algorithm.
//
// A note starts as a ring of random values whose length is the sample rate
// divided by the note's frequency. Every step emits the oldest value and
// feeds back the attenuated average of the two oldest, so the noise settles
// into a decaying tone at that pitch.
//
// RenderNote runs the whole pipeline for one note: synthesize, quantize to
// 16-bit PCM and write a mono WAV clip.
//
//	f, _ := os.Create("A3.wav")
//	defer f.Close()
//	warning, err := pluck.RenderNote(ctx, f, 220, 44100, 44100, synth.WithSeed(1))
//
// The building blocks live in subpackages:
//
//   - ring: fixed-length circular buffer the recurrence runs on
//   - synth: the recurrence, quantization and clip warnings
//   - scale: notes from a root frequency and an interval pattern
//   - formats/wav: the clip encoder and decoder
//   - playback: clip collection and random playback
//   - visual: terminal waveform of the ring while it evolves
//
// Cmd pluck ties them together: it renders a scale preset into a directory
// and can then loop random notes on the speaker.
package pluck
