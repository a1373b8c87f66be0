// SPDX-License-Identifier: EPL-2.0

package synth_test

import (
	"context"
	"fmt"

	"github.com/ik5/pluck/synth"
)

// Example demonstrates rendering one second of an A3 string.
func Example() {
	samples, err := synth.Synthesize(context.Background(), 220, 44100, 44100, synth.WithSeed(1))
	if err != nil {
		fmt.Printf("synthesis error: %v\n", err)
		return
	}

	n, _ := synth.RingLength(220, 44100)
	pcm, warn := synth.Quantize(samples)

	fmt.Printf("ring length: %d\n", n)
	fmt.Printf("samples: %d\n", len(pcm))
	fmt.Printf("clipped: %v\n", warn != nil)
	// Output:
	// ring length: 200
	// samples: 44100
	// clipped: false
}
