// SPDX-License-Identifier: EPL-2.0

package ring

import "errors"

var (
	ErrInvalidLength = errors.New("ring length must be at least 2")
	ErrUnderflow     = errors.New("ring holds fewer than 2 elements")
)
