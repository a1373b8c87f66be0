// SPDX-License-Identifier: EPL-2.0

// Package playback holds rendered clips and plays them on a Backend.
//
// A Scheduler keeps its clips as an ordered collection keyed by id. Clips
// come from Add or from Load, which decodes WAV, AIFF, MP3 or Ogg files,
// mixes them to mono and resamples them to the backend rate. PlayRandom
// draws uniformly from whatever the collection holds at call time; Loop
// repeats that until its context is cancelled.
//
// Rendering and playback meet through WaitAndLoad: a clip is only loaded
// after its render reports completion.
package playback
