// SPDX-License-Identifier: EPL-2.0

package scale

import "fmt"

// Preset is a named scale definition.
type Preset struct {
	Name    string  `yaml:"name"`
	Root    float64 `yaml:"root"`
	Pattern []int   `yaml:"pattern"`
	Count   int     `yaml:"count"`
}

// Built-in presets: "full" spans two octaves of A minor pentatonic, "piano"
// is one octave of C minor pentatonic (C4 Eb4 F4 G4 Bb4).
var (
	Full  = Preset{Name: "full", Root: 220, Pattern: MinorPentatonic, Count: 11}
	Piano = Preset{Name: "piano", Root: 261.6255653005986, Pattern: MinorPentatonic, Count: 5}
)

func (p Preset) Notes() ([]Note, error) {
	notes, err := Generate(p.Root, p.Pattern, p.Count)
	if err != nil {
		return nil, fmt.Errorf("preset %q: %w", p.Name, err)
	}

	return notes, nil
}

// Lookup finds a preset by name. custom presets are searched first, so a
// configuration file may redefine the built-in ones.
func Lookup(name string, custom []Preset) (Preset, error) {
	for _, p := range custom {
		if p.Name == name {
			return p, nil
		}
	}

	switch name {
	case Full.Name:
		return Full, nil
	case Piano.Name:
		return Piano, nil
	}

	return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}
