package config

import (
	"errors"
	"fmt"
)

// Validation errors.
var (
	ErrInvalidWindow = errors.New("invalid window")
	ErrInvalidBird   = errors.New("invalid bird")
	ErrInvalidPipes  = errors.New("invalid pipes")
	ErrMissingAsset  = errors.New("missing asset path")
)

// Validate checks that the configuration describes a playable game.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: %w: size %vx%v", ErrInvalidWindow, c.Window.Width, c.Window.Height)
	}

	if c.Bird.Width <= 0 || c.Bird.Height <= 0 {
		return fmt.Errorf("config: %w: hitbox %vx%v", ErrInvalidBird, c.Bird.Width, c.Bird.Height)
	}
	if c.Bird.X < 0 || c.Bird.X >= c.Window.Width {
		return fmt.Errorf("config: %w: x=%v outside window", ErrInvalidBird, c.Bird.X)
	}

	p := c.Pipes
	switch {
	case p.Speed <= 0:
		return fmt.Errorf("config: %w: speed must be positive, got %v", ErrInvalidPipes, p.Speed)
	case p.Width <= 0 || p.Height <= 0:
		return fmt.Errorf("config: %w: sprite size %vx%v", ErrInvalidPipes, p.Width, p.Height)
	case p.GapHeight <= 0:
		return fmt.Errorf("config: %w: gap_height must be positive, got %v", ErrInvalidPipes, p.GapHeight)
	case p.MaxGapY <= p.MinGapY:
		return fmt.Errorf("config: %w: gap range [%v, %v) is empty", ErrInvalidPipes, p.MinGapY, p.MaxGapY)
	case p.MinGapY-p.GapHeight/2 < 0 || p.MaxGapY+p.GapHeight/2 > c.Window.Height:
		return fmt.Errorf("config: %w: gap range [%v, %v) does not fit a %v gap in height %v",
			ErrInvalidPipes, p.MinGapY, p.MaxGapY, p.GapHeight, c.Window.Height)
	case p.SpawnDistance <= 0:
		return fmt.Errorf("config: %w: spawn_distance must be positive, got %v", ErrInvalidPipes, p.SpawnDistance)
	case p.OffScreenX > 0:
		return fmt.Errorf("config: %w: off_screen_x must not be right of the left edge, got %v", ErrInvalidPipes, p.OffScreenX)
	}

	if c.Assets.Bird == "" || c.Assets.Pipe == "" || c.Assets.Background == "" {
		return fmt.Errorf("config: %w", ErrMissingAsset)
	}

	return nil
}
