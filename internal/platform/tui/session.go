package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy/internal/assets"
	"github.com/vovakirdan/flappy/internal/config"
	"github.com/vovakirdan/flappy/internal/core"
	"github.com/vovakirdan/flappy/internal/games/flappy"
	"github.com/vovakirdan/flappy/internal/storage"
)

// SessionConfig describes everything needed to start games from the menu.
type SessionConfig struct {
	Base    config.Config  // Loaded config before any preset is applied
	Board   config.Preset  // Board preselected in the menu
	Sprites *assets.Set    // Optional, used for terminal colors
	Store   *storage.Store // Optional score storage
	Player  string
	Seed    int64 // 0 seeds each game from the clock
	Logger  *log.Logger

	// Renderer styles game output; SSH sessions bind it to the client.
	Renderer *lipgloss.Renderer
}

type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewScores
)

// SessionModel manages the full session flow: menu -> game -> menu, with
// the scoreboard reachable from the menu. It backs both the local menu
// command and every SSH session.
type SessionModel struct {
	cfg      SessionConfig
	runtime  core.RuntimeConfig
	view     sessionView
	menu     MenuModel
	game     Model
	scores   ScoreboardModel
	quitting bool
}

// NewSessionModel creates a session that starts on the title menu.
func NewSessionModel(cfg SessionConfig, rt core.RuntimeConfig) SessionModel {
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	if cfg.Board == "" {
		cfg.Board = config.PresetClassic
	}
	return SessionModel{
		cfg:     cfg,
		runtime: rt,
		menu:    NewMenuModel(cfg.Store, rt, cfg.Board),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.runtime.ScreenW = wsm.Width
		m.runtime.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.menu.Selected() {
	case ChoicePlay:
		m.cfg.Board = m.menu.Board()
		return m.startGame()
	case ChoiceScores:
		m.cfg.Board = m.menu.Board()
		m.scores = NewScoreboardModel(m.cfg.Store, m.runtime.ScreenW, m.runtime.ScreenH)
		m.scores.ShowBoard(m.cfg.Board)
		m.view = viewScores
		return m, m.scores.Init()
	}

	return m, cmd
}

// startGame builds a fresh game for the selected board.
func (m SessionModel) startGame() (tea.Model, tea.Cmd) {
	cfg := m.cfg.Base
	config.ApplyPreset(&cfg, m.cfg.Board)

	logger := m.cfg.Logger.With("player", m.cfg.Player, "board", string(m.cfg.Board))

	// The loaded config was only checked against the startup board
	if err := cfg.Validate(); err != nil {
		logger.Warn("board not playable", "err", err)
		m.view = viewMenu
		m.menu = NewMenuModel(m.cfg.Store, m.runtime, m.cfg.Board)
		m.menu.SetError(err)
		return m, nil
	}

	game := flappy.New(cfg, flappy.WithSeed(m.cfg.Seed), flappy.WithLogger(logger))

	m.game = NewModel(game, m.runtime, Options{
		Store:    m.cfg.Store,
		Sprites:  m.cfg.Sprites,
		Board:    string(m.cfg.Board),
		Player:   m.cfg.Player,
		Logger:   logger,
		Renderer: m.cfg.Renderer,
	})
	m.view = viewGame
	logger.Info("game started")
	return m, m.game.Init()
}

// backToMenu rebuilds the menu so its high score is current.
func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.view = viewMenu
	m.menu = NewMenuModel(m.cfg.Store, m.runtime, m.cfg.Board)
	return m, m.menu.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = gameModel
	}

	// Leaving the game returns to the menu instead of ending the program
	if m.game.Quitting() {
		return m.backToMenu()
	}

	return m, cmd
}

// updateScores handles updates while the scoreboard is shown.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scores = sb
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		return m.backToMenu()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		return m.game.View()
	case viewScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the menu-driven session in the local terminal.
func RunSession(cfg SessionConfig, rt core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewSessionModel(cfg, rt),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
