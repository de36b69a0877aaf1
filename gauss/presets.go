package gauss

import "github.com/katalvlaran/vcm/matrix"

// Preset is a named example system in augmented form.
type Preset struct {
	Name string
	Rows [][]float64
}

// System builds the augmented matrix for the preset.
func (p Preset) System() (*matrix.Augmented, error) { return matrix.NewAugmented(p.Rows) }

// Presets returns the built-in example systems. Every call returns fresh
// slices, so callers may modify them.
func Presets() []Preset {
	return []Preset{
		{
			// solution (2, 3, -1)
			Name: "system1",
			Rows: [][]float64{
				{2, 1, -1, 8},
				{-3, -1, 2, -11},
				{-2, 1, 2, -3},
			},
		},
		{
			Name: "system2",
			Rows: [][]float64{
				{1, 2, 3, 14},
				{2, -1, 1, 5},
				{3, 2, -1, 2},
			},
		},
	}
}

// LookupPreset returns the preset with the given name.
func LookupPreset(name string) (Preset, bool) {
	for _, p := range Presets() {
		if p.Name == name {
			return p, true
		}
	}

	return Preset{}, false
}
