package flappy

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/flappy/internal/config"
	"github.com/vovakirdan/flappy/internal/core"
)

func TestNewPipeGapRange(t *testing.T) {
	cfg := config.DefaultConfig().Pipes

	tests := []struct {
		r        float64
		expected float64
	}{
		{0, 150},
		{0.5, 225},
		{0.25, 187.5},
	}
	for _, tc := range tests {
		p := NewPipe(10, fixedRand(tc.r), cfg)
		if p.GapY != tc.expected {
			t.Errorf("rand %v: GapY = %v, expected %v", tc.r, p.GapY, tc.expected)
		}
		if p.X != 10 {
			t.Errorf("X = %v, expected caller-supplied 10", p.X)
		}
	}

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		p := NewPipe(0, rng, cfg)
		if p.GapY < cfg.MinGapY || p.GapY >= cfg.MaxGapY {
			t.Fatalf("GapY %v outside [%v, %v)", p.GapY, cfg.MinGapY, cfg.MaxGapY)
		}
	}
}

func TestPipeUpdateAndOffScreen(t *testing.T) {
	cfg := config.DefaultConfig().Pipes
	p := NewPipe(-42, fixedRand(0), cfg)

	p.Update()
	if p.X != -47 {
		t.Errorf("X = %v, expected -47", p.X)
	}
	if p.IsOffScreen() {
		t.Error("-47 is not past the -52 threshold")
	}

	p.Update() // -52
	if p.IsOffScreen() {
		t.Error("exactly at the threshold is still on screen")
	}

	p.Update() // -57
	if !p.IsOffScreen() {
		t.Error("-57 should be off screen")
	}
}

func TestPipeRects(t *testing.T) {
	cfg := config.DefaultConfig().Pipes
	p := Pipe{X: 100, GapY: 200, cfg: cfg}

	if top := p.TopRect(); top != core.NewRect(100, 0, 52, 150) {
		t.Errorf("TopRect() = %+v", top)
	}
	if bottom := p.BottomRect(400); bottom != core.NewRect(100, 250, 52, 150) {
		t.Errorf("BottomRect() = %+v", bottom)
	}

	tests := []struct {
		name     string
		r        core.Rect
		expected bool
	}{
		{"in gap", core.NewRect(110, 180, 34, 24), false},
		{"clips top pipe", core.NewRect(110, 140, 34, 24), true},
		{"clips bottom pipe", core.NewRect(110, 240, 34, 24), true},
		{"left of pipe", core.NewRect(40, 100, 34, 24), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := p.Collides(tc.r, 400); got != tc.expected {
				t.Errorf("Collides(%+v) = %v, expected %v", tc.r, got, tc.expected)
			}
		})
	}
}

func TestPipeDraw(t *testing.T) {
	cfg := config.DefaultConfig().Pipes
	p := Pipe{X: 30, GapY: 200, cfg: cfg}
	c := &recordingCanvas{}

	p.Draw(c)

	if len(c.calls) != 2 {
		t.Fatalf("expected 2 draw calls, got %d", len(c.calls))
	}
	top, bottom := c.calls[0], c.calls[1]
	// The flipped top sprite ends exactly at the top of the gap
	if !top.flip || top.x != 30 || top.y+cfg.Height != p.GapTop() {
		t.Errorf("top = %+v, expected flipped sprite ending at gap top %v", top, p.GapTop())
	}
	if bottom.flip || bottom.x != 30 || bottom.y != p.GapBottom() {
		t.Errorf("bottom = %+v, expected unflipped sprite at gap bottom %v", bottom, p.GapBottom())
	}
}
