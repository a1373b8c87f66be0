// SPDX-License-Identifier: EPL-2.0

package utils

// Float is the set of sample types the buffers and filters work on.
type Float interface {
	~float32 | ~float64
}
