// SPDX-License-Identifier: EPL-2.0

// Package scale maps musical scales to the frequencies the synthesizer plays.
//
// A scale is a root frequency plus an ordered pattern of semitone steps. The
// pattern repeats, so MinorPentatonic ({3, 2, 2, 3, 2}) climbs one octave every
// five notes:
//
//	notes, err := scale.Generate(220, scale.MinorPentatonic, 6)
//	// A3 C4 D4 E4 G4 A4
//
// A semitone multiplies the frequency by 2^(1/12). Each note is computed from
// the root and the cumulative step count rather than by repeated
// multiplication, so the octave lands on exactly twice the root.
//
// # Presets
//
// Two presets back the command line's scale selection:
//   - "full": two octaves of A minor pentatonic from A3 (11 notes)
//   - "piano": one octave of C minor pentatonic from C4 (5 notes)
//
// Lookup resolves a preset by name and lets configuration files add or
// override presets.
package scale
