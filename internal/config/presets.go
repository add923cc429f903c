package config

import "fmt"

// Preset represents a named window layout. Scores are grouped by preset.
type Preset string

const (
	// PresetClassic is the narrow 267x400 portrait window.
	PresetClassic Preset = "classic"
	// PresetWide is the 600x400 landscape window with wider pipe spacing.
	PresetWide Preset = "wide"
)

// Presets lists every known preset in display order.
func Presets() []Preset {
	return []Preset{PresetClassic, PresetWide}
}

// ParsePreset converts a flag value into a Preset.
// An empty string selects PresetClassic.
func ParsePreset(s string) (Preset, error) {
	switch Preset(s) {
	case "", PresetClassic:
		return PresetClassic, nil
	case PresetWide:
		return PresetWide, nil
	default:
		return "", fmt.Errorf("config: unknown preset %q (want %q or %q)", s, PresetClassic, PresetWide)
	}
}

// ApplyPreset modifies the config for the given preset.
// PresetClassic leaves the loaded values untouched. The wide spawn distance
// leaves 300 world pixels between pipes at the default speed, since a pipe
// spawns on the first tick past the spawn line.
func ApplyPreset(cfg *Config, preset Preset) {
	switch preset {
	case PresetWide:
		cfg.Window.Width = 600
		cfg.Window.Height = 400
		cfg.Pipes.SpawnDistance = 295
	}
}
