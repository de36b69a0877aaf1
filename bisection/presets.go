package bisection

// Preset is a ready-made exercise: a formula in the expression syntax and a
// bracket on which it changes sign.
type Preset struct {
	Name    string
	Formula string
	A, B    float64
}

// Presets returns the built-in exercises in display order. The first entry
// is the default form content.
func Presets() []Preset {
	return []Preset{
		{Name: "quadratic", Formula: "x^2 - 4", A: 0, B: 3},
		{Name: "exponential", Formula: "exp(x/10) - 3", A: 0, B: 40},
		{Name: "cubic", Formula: "x^3 - x - 2", A: 1, B: 2},
		{Name: "fixed-point", Formula: "cos(x) - x", A: 0, B: 1},
		{Name: "sine", Formula: "sin(x)", A: 3, B: 4},
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
