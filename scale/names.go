// SPDX-License-Identifier: EPL-2.0

package scale

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ReferenceA4 is the tuning reference (MIDI note 69).
const ReferenceA4 = 440.0

var pitchClasses = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

// PitchName returns the scientific pitch name nearest to freq, e.g. 220 -> "A3".
func PitchName(freq float64) string {
	midi := int(math.Round(69 + 12*math.Log2(freq/ReferenceA4)))
	class := ((midi % 12) + 12) % 12
	octave := (midi-class)/12 - 1

	return pitchClasses[class] + strconv.Itoa(octave)
}

// Frequency parses a pitch name such as "C4", "Eb3" or "F#2" and returns its
// equal-tempered frequency.
func Frequency(name string) (float64, error) {
	s := strings.TrimSpace(name)
	if s == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNoteName, name)
	}

	letter := strings.ToUpper(s[:1])
	class := -1
	for i, pc := range pitchClasses {
		if pc == letter {
			class = i
			break
		}
	}
	if class < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNoteName, name)
	}

	rest := s[1:]
	switch {
	case strings.HasPrefix(rest, "#"):
		class++
		rest = rest[1:]
	case strings.HasPrefix(rest, "b"):
		class--
		rest = rest[1:]
	}

	octave, err := strconv.Atoi(rest)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNoteName, name)
	}

	midi := (octave+1)*12 + class

	return ReferenceA4 * math.Pow(2, float64(midi-69)/12), nil
}
