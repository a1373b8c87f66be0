// SPDX-License-Identifier: EPL-2.0

package scale

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// Semitone is the frequency ratio between adjacent equal-tempered pitches.
var Semitone = math.Pow(2, 1.0/12)

// Interval patterns, in semitone steps between consecutive notes.
var (
	MinorPentatonic = []int{3, 2, 2, 3, 2}
	MajorPentatonic = []int{2, 2, 3, 2, 3}
	Chromatic       = []int{1}
)

// Note is a named pitch.
type Note struct {
	Name      string  `yaml:"name"`
	Frequency float64 `yaml:"frequency"`
}

// Generate returns noteCount notes starting at rootFrequency. Each following
// note is pattern[k mod len(pattern)] semitones above the previous one.
// Names are the nearest equal-tempered pitch name; if two notes share one,
// later ones get a "-<index>" suffix so every name in the result is unique.
func Generate(rootFrequency float64, pattern []int, noteCount int) ([]Note, error) {
	if noteCount < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, noteCount)
	}
	if noteCount == 0 {
		return []Note{}, nil
	}
	if !(rootFrequency > 0) || math.IsInf(rootFrequency, 1) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRoot, rootFrequency)
	}
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}

	notes := make([]Note, noteCount)
	seen := make(map[string]struct{}, noteCount)
	semitones := 0

	for i := range notes {
		if i > 0 {
			semitones += pattern[(i-1)%len(pattern)]
		}

		freq := rootFrequency * math.Pow(2, float64(semitones)/12)
		name := PitchName(freq)
		if _, dup := seen[name]; dup {
			name = fmt.Sprintf("%s-%d", name, i)
		}
		seen[name] = struct{}{}

		notes[i] = Note{Name: name, Frequency: freq}
	}

	logrus.WithFields(logrus.Fields{
		"function": "scale.Generate",
		"root":     rootFrequency,
		"pattern":  pattern,
		"notes":    noteCount,
	}).Debug("Generated scale")

	return notes, nil
}
