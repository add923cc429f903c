// Package window is the desktop host for the game, built on Ebitengine.
// It opens a window of the configured size, feeds edge-triggered key
// presses to the game each tick and draws the loaded sprites.
package window

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/flappy/internal/assets"
	"github.com/vovakirdan/flappy/internal/core"
	"github.com/vovakirdan/flappy/internal/games/flappy"
	"github.com/vovakirdan/flappy/internal/storage"
)

// Options carries the optional collaborators of a window session.
type Options struct {
	Store    *storage.Store // Score storage; nil disables persistence
	Board    string
	Player   string
	TickRate int // Updates per second, 60 when zero
	Logger   *log.Logger
}

// Host adapts a flappy.Game to the ebiten.Game interface.
type Host struct {
	game       *flappy.Game
	canvas     *Canvas
	poll       func() core.InputFrame
	opts       Options
	state      core.GameState
	scoreSaved bool
}

// NewHost creates a host for the game drawing the given sprites.
func NewHost(game *flappy.Game, sprites *assets.Set, opts Options) *Host {
	return newHost(game, NewCanvas(sprites), PollInput, opts)
}

func newHost(game *flappy.Game, canvas *Canvas, poll func() core.InputFrame, opts Options) *Host {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Host{
		game:   game,
		canvas: canvas,
		poll:   poll,
		opts:   opts,
		state:  game.State(),
	}
}

// Update implements ebiten.Game. Returning ebiten.Termination ends RunGame
// without an error.
func (h *Host) Update() error {
	result := h.game.Step(h.poll())
	if result.Quit {
		return ebiten.Termination
	}

	if h.state.GameOver && !result.State.GameOver {
		h.scoreSaved = false
	}
	h.state = result.State

	if h.state.GameOver && !h.scoreSaved {
		h.saveScore()
		h.scoreSaved = true
	}
	return nil
}

// saveScore records the final score. Storage is best effort.
func (h *Host) saveScore() {
	if h.opts.Store == nil || h.state.Score <= 0 {
		return
	}
	if _, err := h.opts.Store.SaveScore(h.opts.Board, h.opts.Player, h.state.Score); err != nil {
		h.opts.Logger.Warn("could not save score", "err", err)
	}
}

// Draw implements ebiten.Game.
func (h *Host) Draw(screen *ebiten.Image) {
	h.canvas.SetTarget(screen)
	h.game.Draw(h.canvas)
}

// Layout implements ebiten.Game. The logical screen is always the configured
// window size; Ebitengine scales it to the actual window.
func (h *Host) Layout(_, _ int) (int, int) {
	w := h.game.Config().Window
	return int(w.Width), int(w.Height)
}

// Run opens the window and blocks until the player quits or the window is
// closed.
func Run(game *flappy.Game, sprites *assets.Set, opts Options) error {
	w := game.Config().Window
	ebiten.SetWindowSize(int(w.Width), int(w.Height))
	ebiten.SetWindowTitle(game.Title())
	if opts.TickRate > 0 {
		ebiten.SetTPS(opts.TickRate)
	}

	return ebiten.RunGame(NewHost(game, sprites, opts))
}
