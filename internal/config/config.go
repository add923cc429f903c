// Package config provides YAML-based configuration loading, window presets
// and validation for the game.
package config

// Config contains every tunable constant of the game.
type Config struct {
	Window    Window    `yaml:"window"`
	Physics   Physics   `yaml:"physics"`
	Bird      Bird      `yaml:"bird"`
	Pipes     Pipes     `yaml:"pipes"`
	Collision Collision `yaml:"collision"`
	Assets    Assets    `yaml:"assets"`
}

// Window defines the playfield. All positions are in window pixels.
type Window struct {
	Title  string  `yaml:"title"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Physics defines the bird's vertical motion per tick.
type Physics struct {
	Gravity   float64 `yaml:"gravity"`
	JumpForce float64 `yaml:"jump_force"` // Negative = up
}

// Bird defines the bird's fixed column and hitbox.
type Bird struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Pipes defines pipe motion, gap placement and the spawn policy.
type Pipes struct {
	Speed         float64 `yaml:"speed"`          // Leftward movement per tick
	Width         float64 `yaml:"width"`          // Pipe sprite width
	Height        float64 `yaml:"height"`         // Pipe sprite height
	GapHeight     float64 `yaml:"gap_height"`     // Opening between top and bottom pipe
	MinGapY       float64 `yaml:"min_gap_y"`      // Inclusive lower bound of the gap anchor
	MaxGapY       float64 `yaml:"max_gap_y"`      // Exclusive upper bound of the gap anchor
	SpawnDistance float64 `yaml:"spawn_distance"` // Lead from the right edge that triggers a spawn
	OffScreenX    float64 `yaml:"off_screen_x"`   // Pipes left of this x are removed
}

// Collision toggles optional collision rules.
type Collision struct {
	Pipes bool `yaml:"pipes"` // End the game when the bird touches a pipe
}

// Assets lists sprite paths relative to the asset root.
type Assets struct {
	Bird       string `yaml:"bird"`
	Pipe       string `yaml:"pipe"`
	Background string `yaml:"background"`
}

// SpawnX returns the x coordinate new pipes are created at.
func (c Config) SpawnX() float64 {
	return c.Window.Width
}
