package config

import (
	"sort"
	"time"
)

var Presets = map[string]*Config{
	"classic": {
		Size: 130, Max: 750, Shape: "random", Speed: 100, Unit: time.Millisecond, FPS: DefaultFPS, Theme: DefaultTheme,
	},
	"tiny": {
		Size: 16, Max: 100, Shape: "random", Speed: 40, Unit: time.Millisecond, FPS: DefaultFPS, Theme: "minimal",
	},
	"sorted": {
		Algorithm: "quick", Size: 130, Max: 750, Shape: "sorted", Speed: 100, Unit: time.Millisecond, FPS: DefaultFPS, Theme: DefaultTheme,
	},
	"reversed": {
		Algorithm: "insertion", Size: 130, Max: 750, Shape: "reversed", Speed: 100, Unit: time.Millisecond, FPS: DefaultFPS, Theme: "retro",
	},
	"few-unique": {
		Algorithm: "quick", Size: 130, Max: 750, Shape: "few-unique", Speed: 90, Unit: time.Millisecond, FPS: DefaultFPS, Theme: "ocean",
	},
	"slow": {
		Size: 48, Max: 300, Shape: "random", Speed: 20, Unit: time.Millisecond, FPS: 30, Theme: DefaultTheme,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
