// SPDX-License-Identifier: EPL-2.0

// Package visual draws ring-buffer snapshots as ASCII waveforms.
//
// Plot.Observe matches synth.Observer, so a plot can be attached to any
// synthesis with synth.WithObserver. Drawing is a side channel: it never
// changes the samples that are produced.
package visual
