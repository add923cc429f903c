package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
// It mirrors defaults/flappy.yaml and is used as the base every YAML file is
// decoded over.
func DefaultConfig() Config {
	return Config{
		Window: Window{
			Title:  "Flappy Bird",
			Width:  267,
			Height: 400,
		},
		Physics: Physics{
			Gravity:   0.5,
			JumpForce: -10,
		},
		Bird: Bird{
			X:      100,
			Width:  34,
			Height: 24,
		},
		Pipes: Pipes{
			Speed:         5,
			Width:         52,
			Height:        320,
			GapHeight:     100,
			MinGapY:       150,
			MaxGapY:       300,
			SpawnDistance: 150,
			OffScreenX:    -52,
		},
		Collision: Collision{
			Pipes: true,
		},
		Assets: Assets{
			Bird:       "resources/sprites/bird.png",
			Pipe:       "resources/sprites/pipe.png",
			Background: "resources/sprites/background.png",
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultYAML
}
