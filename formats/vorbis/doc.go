// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis clips into an audio.Source using
// github.com/jfreymuth/oggvorbis.
//
// Reads are rounded down to whole frames, so interleaving never splits a
// frame across calls.
package vorbis
