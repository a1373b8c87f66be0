// SPDX-License-Identifier: EPL-2.0

package device

import "errors"

var (
	ErrUnavailable  = errors.New("audio output unavailable")
	ErrRateMismatch = errors.New("clip rate differs from speaker rate")
)
