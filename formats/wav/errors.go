// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile            = errors.New("not a WAV file")
	ErrOnlyPCM16bitSupported = errors.New("only PCM 16-bit supported")
	ErrEncodingFailure       = errors.New("WAV encoding failed")
	ErrInvalidSampleRate     = errors.New("sample rate must be positive")
)
