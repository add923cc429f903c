package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy/internal/config"
)

func sessionStep(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	s, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, want SessionModel", next)
	}
	return s, cmd
}

func newTestSession(t *testing.T) SessionModel {
	t.Helper()
	return NewSessionModel(SessionConfig{
		Base:   config.DefaultConfig(),
		Store:  openStore(t),
		Player: "ann",
		Seed:   1,
	}, testRuntime())
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := newTestSession(t)

	if !strings.Contains(m.View(), "F L A P P Y") {
		t.Fatal("session should start on the menu")
	}

	m, cmd := sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != viewGame {
		t.Fatalf("Enter on Play should start a game, view = %v", m.view)
	}
	if cmd == nil {
		t.Error("starting a game should schedule a tick")
	}
	if m.game.game.Config().Window.Width != 267 {
		t.Errorf("classic board width = %v, want 267", m.game.game.Config().Window.Width)
	}

	// Quitting the game returns to the menu without ending the program
	m, _ = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != viewMenu {
		t.Errorf("Esc in game should return to menu, view = %v", m.view)
	}
	if m.quitting {
		t.Error("session should keep running after leaving a game")
	}
}

func TestSessionWideBoard(t *testing.T) {
	m := newTestSession(t)

	m, _ = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.menu.Board() != config.PresetWide {
		t.Fatalf("Right should select the wide board, got %q", m.menu.Board())
	}

	m, _ = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.game.game.Config().Window.Width; got != 600 {
		t.Errorf("wide board width = %v, want 600", got)
	}
	if got := m.game.opts.Board; got != "wide" {
		t.Errorf("scores recorded under %q, want wide", got)
	}
}

func TestSessionScoreboard(t *testing.T) {
	m := newTestSession(t)

	m, _ = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.view != viewScores {
		t.Fatalf("Tab should open the scoreboard, view = %v", m.view)
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("scoreboard view should show its title")
	}

	m, _ = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != viewMenu {
		t.Errorf("Esc should return to menu, view = %v", m.view)
	}
}

func TestSessionScoreboardFollowsMenuBoard(t *testing.T) {
	m := newTestSession(t)
	if _, err := m.cfg.Store.SaveScore("wide", "ann", 12); err != nil {
		t.Fatalf("SaveScore: %v", err)
	}

	m, _ = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyTab})

	if got := m.scores.Board(); got != config.PresetWide {
		t.Fatalf("scoreboard board = %q, want wide", got)
	}
	if scores := m.scores.Scores(); len(scores) != 1 || scores[0].Score != 12 {
		t.Errorf("wide scores = %+v", scores)
	}
}

func TestSessionQuitFromMenu(t *testing.T) {
	m := newTestSession(t)

	m, cmd := sessionStep(t, m, runeKey('q'))
	if !m.quitting {
		t.Error("q in menu should quit the session")
	}
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit should return tea.Quit")
	}
}

func TestSessionDropsTicksOfLeftGame(t *testing.T) {
	m := newTestSession(t)

	m, _ = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	left := m.game
	m, _ = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != viewGame {
		t.Fatalf("second Play should start a game, view = %v", m.view)
	}

	// The left game's last tick arrives after the new game started
	m, cmd := sessionStep(t, m, tickOf(left))
	if cmd != nil {
		t.Error("a stale tick must not start a second tick chain")
	}
	if got := m.game.game.State().Ticks; got != 0 {
		t.Errorf("stale tick advanced the new game to %d ticks", got)
	}

	m, cmd = sessionStep(t, m, tickOf(m.game))
	if cmd == nil {
		t.Error("the new game's own tick should reschedule")
	}
	if got := m.game.game.State().Ticks; got != 1 {
		t.Errorf("Ticks = %d, want 1", got)
	}
}

func TestSessionRefusesUnplayableBoard(t *testing.T) {
	// Bird x 400 fits the wide board but not the classic one
	base := config.DefaultConfig()
	base.Bird.X = 400
	m := NewSessionModel(SessionConfig{Base: base, Store: openStore(t), Player: "ann", Seed: 1}, testRuntime())

	m, cmd := sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != viewMenu {
		t.Fatalf("classic board should be refused, view = %v", m.view)
	}
	if cmd != nil {
		t.Error("refused Play should not schedule ticks")
	}
	if !strings.Contains(m.View(), "invalid bird") {
		t.Errorf("menu should explain the refusal, got:\n%s", m.View())
	}

	m, _ = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if strings.Contains(m.View(), "invalid bird") {
		t.Error("the error should clear on the next key")
	}
	m, _ = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != viewGame {
		t.Fatalf("wide board should start, view = %v", m.view)
	}
	if got := m.game.game.Bird().X; got != 400 {
		t.Errorf("bird x = %v, want 400", got)
	}
}
