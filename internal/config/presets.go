package config

import "sort"

// Presets are named digit power runs.
var Presets = map[string]DigitPowers{
	"fifth":  {Power: 5, Max: 400000, Output: DefaultInput},
	"fourth": {Power: 4, Max: 100000, Output: DefaultInput},
	"small":  {Power: 3, Max: 10000, Output: DefaultInput},
}

func GetPreset(name string) *DigitPowers {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return &p
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
