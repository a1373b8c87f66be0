// SPDX-License-Identifier: EPL-2.0

package playback

import "errors"

var (
	ErrNoClips           = errors.New("no clips loaded")
	ErrUnknownClip       = errors.New("unknown clip")
	ErrInvalidClip       = errors.New("invalid clip")
	ErrUnsupportedFormat = errors.New("unsupported clip format")
)
