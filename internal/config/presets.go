package config

import "sort"

var Presets = map[string]*Config{
	// The classic animation: 28 bodies from 30 to 300, seed 5.
	"classic": {Seed: 5, Bodies: 28, Frames: DefaultFrames, FPS: 30, Trail: 33, Theme: DefaultTheme},
	"sparse":  {Seed: 11, Bodies: 8, Frames: DefaultFrames, FPS: 30, Trail: 20, Theme: "ocean"},
	"solo":    {Seed: 5, Bodies: 1, Frames: 600, FPS: 30, Trail: 33, Theme: DefaultTheme},
	"pair":    {Seed: 3, Bodies: 2, Frames: 3000, FPS: 30, Trail: 33, Theme: "retro"},
	"long":    {Seed: 5, Bodies: 28, Frames: 100000, FPS: 60, Trail: 12, Theme: DefaultTheme},
}

// GetPreset returns a copy so callers can override fields freely.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	if cfg.DataDir == "" {
		cfg.DataDir = DefaultDataDir
	}
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
