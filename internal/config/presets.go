package config

import "sort"

// Presets are ready-made animation scenarios.
var Presets = map[string]*Config{
	"demo": {
		Disks: 3, Speed: "normal", Theme: "classic",
	},
	"classic": {
		Disks: 5, Speed: "normal", Theme: "classic",
	},
	"showcase": {
		Disks: 7, Speed: "fast", Theme: "ocean",
	},
	"marathon": {
		Disks: 10, Speed: "fast", Theme: "classic",
	},
	"patient": {
		Disks: 4, Speed: "slow", Theme: "mono",
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
