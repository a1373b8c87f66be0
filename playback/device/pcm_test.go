// SPDX-License-Identifier: EPL-2.0

package device

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodePCM(t *testing.T) {
	t.Parallel()

	in := []float32{0, 1, -1, 0.5, 2, -2}
	want := []int16{0, 32767, -32767, 16384, 32767, -32767}

	out := encodePCM(in)
	require.Len(t, out, 2*len(in))

	for i, w := range want {
		got := int16(binary.LittleEndian.Uint16(out[2*i:]))
		assert.Equal(t, w, got, "sample %d", i)
	}
}
