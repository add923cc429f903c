// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that must navigate through gaps in vertical pipes.
//
// Game holds no reference to any rendering or input framework: a host feeds
// it one core.InputFrame per tick and hands it a Canvas to draw on.
package flappy

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy/internal/config"
	"github.com/vovakirdan/flappy/internal/core"
)

// ID is the game identifier used for storage and logging.
const ID = "flappy"

// Text layout.
const (
	ScoreX = 10
	ScoreY = 10
)

// Status is the game's top-level state.
type Status int

const (
	StatusPlaying Status = iota
	StatusGameOver
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "Playing"
	case StatusGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Game implements the Flappy Bird game logic.
type Game struct {
	cfg    config.Config
	rng    Rand
	logger *log.Logger

	bird   Bird
	pipes  []Pipe
	score  int
	status Status
	paused bool
	ticks  int
}

// Option configures a Game.
type Option func(*Game)

// WithRand sets the random source used for gap placement.
func WithRand(r Rand) Option {
	return func(g *Game) {
		g.rng = r
	}
}

// WithSeed seeds a private random source. Zero uses the current time.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger sets the logger that receives game events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates a game in its initial Playing state.
func New(cfg config.Config, opts ...Option) *Game {
	g := &Game{
		cfg:    cfg,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		WithSeed(0)(g)
	}
	g.Reset()
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.cfg.Window.Title
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.Config {
	return g.cfg
}

// Reset rebuilds the bird, pipes, score and status from scratch.
// The random source keeps its stream, so a seeded game stays reproducible
// across restarts.
func (g *Game) Reset() {
	g.bird = NewBird(g.cfg)
	g.pipes = append(g.pipes[:0], NewPipe(g.cfg.SpawnX(), g.rng, g.cfg.Pipes))
	g.score = 0
	g.status = StatusPlaying
	g.paused = false
	g.ticks = 0
}

// HandleInput applies one frame of edge-triggered input.
// Returns true if the host should stop its frame loop.
func (g *Game) HandleInput(in core.InputFrame) (quit bool) {
	if in.Has(core.ActionQuit) {
		return true
	}

	switch g.status {
	case StatusPlaying:
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if in.Has(core.ActionJump) && !g.paused {
			g.bird.Jump()
		}
	case StatusGameOver:
		if in.Has(core.ActionRestart) {
			g.Reset()
		}
	}

	return false
}

// Update advances the simulation by one tick. It does nothing unless the
// game is Playing and not paused.
func (g *Game) Update() {
	if g.status != StatusPlaying || g.paused {
		return
	}
	g.ticks++

	g.bird.Update()

	for i := range g.pipes {
		g.pipes[i].Update()
	}

	// Score pipes whose right edge is behind the bird
	for i := range g.pipes {
		if !g.pipes[i].Passed && g.pipes[i].Right() < g.bird.X {
			g.pipes[i].Passed = true
			g.score++
		}
	}

	// Remove pipes that have scrolled off the left side
	visible := g.pipes[:0]
	for _, p := range g.pipes {
		if !p.IsOffScreen() {
			visible = append(visible, p)
		}
	}
	g.pipes = visible

	// Spawn when the newest pipe is far enough from the right edge
	if len(g.pipes) == 0 || g.pipes[len(g.pipes)-1].X < g.cfg.Window.Width-g.cfg.Pipes.SpawnDistance {
		g.pipes = append(g.pipes, NewPipe(g.cfg.SpawnX(), g.rng, g.cfg.Pipes))
	}

	if g.collided() {
		g.status = StatusGameOver
		g.logger.Info("game over", "score", g.score, "ticks", g.ticks)
	}
}

// collided reports whether the bird left the screen or, when enabled, hit a pipe.
func (g *Game) collided() bool {
	if g.bird.IsOutOfBounds(g.cfg.Window.Height) {
		return true
	}
	if !g.cfg.Collision.Pipes {
		return false
	}
	r := g.bird.Rect()
	for _, p := range g.pipes {
		if p.Collides(r, g.cfg.Window.Height) {
			return true
		}
	}
	return false
}

// Step applies input and advances one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.HandleInput(in) {
		return core.StepResult{State: g.State(), Quit: true}
	}
	g.Update()
	return core.StepResult{State: g.State()}
}

// Draw issues the frame's draw calls in fixed order: background, pipes,
// bird, score, then any overlay.
func (g *Game) Draw(c Canvas) {
	c.DrawSprite(SpriteBackground, 0, 0, DrawOptions{})

	for _, p := range g.pipes {
		p.Draw(c)
	}

	g.bird.Draw(c)

	c.DrawText(ScoreX, ScoreY, fmt.Sprintf("Score: %d", g.score))

	switch {
	case g.status == StatusGameOver:
		c.DrawOverlay("GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	case g.paused:
		c.DrawOverlay("PAUSED", "Press P to resume")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.status == StatusGameOver,
		Paused:   g.paused,
		Ticks:    g.ticks,
	}
}

// Status returns whether the game is Playing or GameOver.
func (g *Game) Status() Status {
	return g.status
}

// Bird returns a copy of the bird.
func (g *Game) Bird() Bird {
	return g.bird
}

// Pipes returns the current pipe sequence, oldest first.
// The slice is owned by the game and valid until the next Update.
func (g *Game) Pipes() []Pipe {
	return g.pipes
}

// Score returns the number of pipes passed since the last reset.
func (g *Game) Score() int {
	return g.score
}
