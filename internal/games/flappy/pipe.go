package flappy

import (
	"github.com/vovakirdan/flappy/internal/config"
	"github.com/vovakirdan/flappy/internal/core"
)

// Rand is the random source used to place pipe gaps.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Pipe is a top/bottom obstacle pair sharing one gap.
type Pipe struct {
	X      float64 // Left edge
	GapY   float64 // Vertical centre of the opening, fixed at creation
	Passed bool    // Whether the bird has cleared this pipe (for scoring)

	cfg config.Pipes
}

// NewPipe creates a pipe at x with its gap anchor drawn uniformly from
// [MinGapY, MaxGapY).
func NewPipe(x float64, rng Rand, cfg config.Pipes) Pipe {
	return Pipe{
		X:    x,
		GapY: cfg.MinGapY + rng.Float64()*(cfg.MaxGapY-cfg.MinGapY),
		cfg:  cfg,
	}
}

// Update scrolls the pipe left by the configured speed.
func (p *Pipe) Update() {
	p.X -= p.cfg.Speed
}

// IsOffScreen reports whether the pipe has scrolled past the removal threshold.
func (p Pipe) IsOffScreen() bool {
	return p.X < p.cfg.OffScreenX
}

// GapTop returns the y coordinate of the top of the opening.
func (p Pipe) GapTop() float64 {
	return p.GapY - p.cfg.GapHeight/2
}

// GapBottom returns the y coordinate of the bottom of the opening.
func (p Pipe) GapBottom() float64 {
	return p.GapY + p.cfg.GapHeight/2
}

// Right returns the x coordinate of the pipe's right edge.
func (p Pipe) Right() float64 {
	return p.X + p.cfg.Width
}

// TopRect returns the collision rectangle of the upper pipe.
func (p Pipe) TopRect() core.Rect {
	return core.NewRect(p.X, 0, p.cfg.Width, p.GapTop())
}

// BottomRect returns the collision rectangle of the lower pipe.
func (p Pipe) BottomRect(screenH float64) core.Rect {
	bottom := p.GapBottom()
	return core.NewRect(p.X, bottom, p.cfg.Width, screenH-bottom)
}

// Collides reports whether r touches either half of the pipe.
func (p Pipe) Collides(r core.Rect, screenH float64) bool {
	return r.Intersects(p.TopRect()) || r.Intersects(p.BottomRect(screenH))
}

// Draw issues two draw calls: the top pipe flipped so its mouth hangs down
// onto the gap, then the bottom pipe rising from the gap.
func (p Pipe) Draw(c Canvas) {
	c.DrawSprite(SpritePipe, p.X, p.GapTop()-p.cfg.Height, DrawOptions{FlipY: true})
	c.DrawSprite(SpritePipe, p.X, p.GapBottom(), DrawOptions{})
}
