// SPDX-License-Identifier: EPL-2.0

package scale

import "errors"

var (
	ErrEmptyPattern    = errors.New("interval pattern is empty")
	ErrInvalidRoot     = errors.New("root frequency must be positive")
	ErrInvalidCount    = errors.New("note count must not be negative")
	ErrUnknownPreset   = errors.New("unknown scale preset")
	ErrInvalidNoteName = errors.New("invalid note name")
)
