// SPDX-License-Identifier: EPL-2.0

// Package device plays clips on the system audio output through
// github.com/ebitengine/oto/v3.
//
// Building with the headless tag replaces the speaker with a stub whose
// constructor reports ErrUnavailable, so the rest of the program can fall
// back to playback.Discard on machines without sound.
package device
