package flappy

import (
	"github.com/vovakirdan/flappy/internal/config"
	"github.com/vovakirdan/flappy/internal/core"
)

// Bird is the player-controlled sprite. X never changes after creation.
type Bird struct {
	X        float64
	Y        float64
	Velocity float64

	physics config.Physics
	width   float64
	height  float64
}

// NewBird creates a bird at rest, vertically centred in the window.
func NewBird(cfg config.Config) Bird {
	return Bird{
		X:       cfg.Bird.X,
		Y:       cfg.Window.Height / 2,
		physics: cfg.Physics,
		width:   cfg.Bird.Width,
		height:  cfg.Bird.Height,
	}
}

// Update applies one tick of gravity. Velocity is integrated before position.
func (b *Bird) Update() {
	b.Velocity += b.physics.Gravity
	b.Y += b.Velocity
}

// Jump replaces the current velocity with the jump impulse.
func (b *Bird) Jump() {
	b.Velocity = b.physics.JumpForce
}

// IsOutOfBounds reports whether the bird has left the screen vertically.
// Both edges are inclusive: y == 0 and y == height are still in bounds.
func (b Bird) IsOutOfBounds(height float64) bool {
	return b.Y < 0 || b.Y > height
}

// Rect returns the bird's collision rectangle.
func (b Bird) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.width, b.height)
}

// Draw issues the bird's single draw call.
func (b Bird) Draw(c Canvas) {
	c.DrawSprite(SpriteBird, b.X, b.Y, DrawOptions{})
}
