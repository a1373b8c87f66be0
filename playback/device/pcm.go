// SPDX-License-Identifier: EPL-2.0

package device

import (
	"encoding/binary"

	"github.com/ik5/pluck/utils"
)

// encodePCM converts samples to signed 16-bit little-endian bytes, the
// speaker's stream format.
func encodePCM(samples []float32) []byte {
	out := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(utils.Float32ToInt16(s)))
	}
	return out
}
