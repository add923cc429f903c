// Package tui is the terminal host for the game: a Bubble Tea tick loop that
// draws world pixels as character cells. The same session model is served
// over SSH via Wish.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Each game model owns
// one tick chain; a tick from an earlier game is ignored.
type TickMsg struct {
	Time time.Time
	gen  uint64
}

// tickGenerations hands every new game model its own chain id.
var tickGenerations atomic.Uint64

// nextTickGeneration returns a chain id no other model has used.
func nextTickGeneration() uint64 {
	return tickGenerations.Add(1)
}

// tickCmd returns a Bubble Tea command that sends one tick of the given
// chain after a tick interval.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, gen: gen}
	})
}
