// SPDX-License-Identifier: EPL-2.0

package pluck_test

import (
	"bytes"
	"context"
	"fmt"

	"github.com/ik5/pluck"
	"github.com/ik5/pluck/formats/wav"
	"github.com/ik5/pluck/synth"
)

func ExampleRenderNote() {
	var buf bytes.Buffer
	warning, err := pluck.RenderNote(context.Background(), &buf, 220, 44100, 44100, synth.WithSeed(1))
	if err != nil {
		fmt.Println(err)
		return
	}

	info, err := wav.ReadInfo(bytes.NewReader(buf.Bytes()))
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("clipped:", warning != nil)
	fmt.Println("channels:", info.Channels)
	fmt.Println("sample width:", info.SampleWidth())
	fmt.Println("rate:", info.SampleRate)
	fmt.Println("frames:", info.Frames)
	// Output:
	// clipped: false
	// channels: 1
	// sample width: 2
	// rate: 44100
	// frames: 44100
}
