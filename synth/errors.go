// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidParameter = errors.New("invalid synthesis parameter")
	ErrFrequencyTooHigh = errors.New("frequency too high for sample rate")
	ErrCancelled        = errors.New("synthesis cancelled")
	ErrClipped          = errors.New("samples clipped during quantization")
)

// ClipWarning records that Quantize had to clamp samples outside [-1, 1].
// It is a diagnostic, not a failure: the quantized output is still complete.
type ClipWarning struct {
	Clipped int     // number of clamped samples
	Total   int     // number of samples quantized
	Peak    float64 // largest absolute input value seen
}

func (w *ClipWarning) Error() string {
	return fmt.Sprintf("%s: %d of %d samples (peak %.4f)", ErrClipped, w.Clipped, w.Total, w.Peak)
}

func (w *ClipWarning) Is(target error) bool { return target == ErrClipped }
