// SPDX-License-Identifier: EPL-2.0

// Package ring provides the fixed-capacity circular delay line used by the
// Karplus-Strong synthesizer.
//
// A Buffer is created full: every slot holds an independent uniform random
// value in [-0.5, 0.5). After construction its length never changes. The only
// mutator is Step, which appends one value at the tail and drops the head in a
// single O(1) operation:
//
//	rng := rand.New(rand.NewPCG(1, 2))
//	buf, err := ring.New[float64](200, rng)
//	if err != nil {
//	    // length < 2
//	}
//
//	v0, v1, _ := buf.FirstTwo()
//	buf.Step(0.995 * 0.5 * (v0 + v1))
//
// The buffer is not safe for concurrent use. Each synthesis owns its own
// buffer, so none is shared between goroutines.
//
// Snapshot copies the current contents in head-to-tail order for display
// purposes; it does not expose the backing array.
package ring
