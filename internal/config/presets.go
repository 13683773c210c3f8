package config

import "sort"

// Presets are reference systems in SI units. Inner solar system orbital
// elements and the binary/lunar setups use published mean values.
var Presets = map[string][]BodyConfig{
	"solar": {
		{Mass: 1.9885e30, X: 0, Y: 0, VX: 0, VY: 0, Color: "yellow"},
		{Mass: 3.3011e23, X: 57.9e9, Y: 0, VX: 0, VY: 47.36e3, Color: "gray"},
		{Mass: 4.8675e24, X: 108.2e9, Y: 0, VX: 0, VY: 35.02e3, Color: "orange"},
		{Mass: 5.9724e24, X: 149.6e9, Y: 0, VX: 0, VY: 29.78e3, Color: "blue"},
	},
	"binary": {
		{Mass: 1e30, X: -1e10, Y: 0, VX: 0, VY: 2e4, Color: "red"},
		{Mass: 1e30, X: 1e10, Y: 0, VX: 0, VY: -2e4, Color: "blue"},
	},
	"lunar": {
		{Mass: 5.9724e24, X: 0, Y: 0, VX: 0, VY: 0, Color: "blue"},
		{Mass: 7.342e22, X: 384.4e6, Y: 0, VX: 0, VY: 1.022e3, Color: "gray"},
	},
}

// GetPreset returns a copy of the named preset, or nil if unknown.
func GetPreset(name string) []BodyConfig {
	preset, ok := Presets[name]
	if !ok {
		return nil
	}
	out := make([]BodyConfig, len(preset))
	copy(out, preset)
	return out
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
