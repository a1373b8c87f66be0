// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes uncompressed AIFF clips into an audio.Source.
//
// Decoding is done by github.com/go-audio/aiff; samples of 8, 16, 24 and
// 32 bits are normalized to [-1, 1). Register the decoder to load AIFF
// clips into the playback scheduler:
//
//	registry.Register("aiff", aiff.Decoder{})
package aiff
