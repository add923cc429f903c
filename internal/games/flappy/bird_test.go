package flappy

import (
	"testing"

	"github.com/vovakirdan/flappy/internal/config"
)

func TestBirdUpdateIntegration(t *testing.T) {
	b := NewBird(config.DefaultConfig())
	b.Y, b.Velocity = 120, -3

	b.Update()

	// velocity first, then position
	if b.Velocity != -2.5 {
		t.Errorf("Velocity = %v, expected -2.5", b.Velocity)
	}
	if b.Y != 117.5 {
		t.Errorf("Y = %v, expected 117.5", b.Y)
	}
	if b.X != 100 {
		t.Errorf("X changed to %v", b.X)
	}
}

func TestBirdJumpOverwrites(t *testing.T) {
	for _, v := range []float64{-20, -10, 0, 3.5, 12} {
		b := NewBird(config.DefaultConfig())
		b.Velocity = v
		b.Jump()
		if b.Velocity != -10 {
			t.Errorf("Jump from velocity %v gave %v, expected -10", v, b.Velocity)
		}
		b.Jump()
		if b.Velocity != -10 {
			t.Errorf("second Jump should not accumulate, got %v", b.Velocity)
		}
	}
}

func TestBirdIsOutOfBounds(t *testing.T) {
	const height = 400
	tests := []struct {
		y        float64
		expected bool
	}{
		{-0.01, true},
		{0, false},
		{200, false},
		{height, false},
		{height + 0.01, true},
	}

	b := NewBird(config.DefaultConfig())
	for _, tc := range tests {
		b.Y = tc.y
		if got := b.IsOutOfBounds(height); got != tc.expected {
			t.Errorf("IsOutOfBounds() at y=%v = %v, expected %v", tc.y, got, tc.expected)
		}
	}
}

func TestBirdRectAndDraw(t *testing.T) {
	b := NewBird(config.DefaultConfig())

	r := b.Rect()
	if r.X != 100 || r.Y != 200 || r.W != 34 || r.H != 24 {
		t.Errorf("Rect() = %+v", r)
	}

	c := &recordingCanvas{}
	b.Draw(c)
	if len(c.calls) != 1 || c.calls[0].sprite != SpriteBird || c.calls[0].flip {
		t.Errorf("Draw() calls = %+v, expected one unflipped bird", c.calls)
	}
}
