// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 clips into an audio.Source using
// github.com/hajimehoshi/go-mp3.
//
// The decoder always yields interleaved stereo; feed it through
// audio.NewMonoMixer before handing it to the scheduler.
package mp3
