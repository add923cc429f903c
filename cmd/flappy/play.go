package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy/internal/games/flappy"
	"github.com/vovakirdan/flappy/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Space/Up/W - Flap
  P          - Pause
  R          - Restart (after game over)
  Esc/Q      - Quit
  Ctrl+S     - Save a text screenshot

Presets:
  classic - 267x400 portrait board
  wide    - 600x400 landscape board with wider pipe spacing

Examples:
  flappy play
  flappy play --preset wide
  flappy play --seed 42 --fps 30
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	_, cfg, preset, err := loadGameConfig()
	if err != nil {
		fail("%v", err)
	}
	sprites, err := loadSprites(cfg)
	if err != nil {
		fail("%v", err)
	}

	logPath := flagLogFile
	if logPath == "" {
		logPath = defaultLogFile
	}
	logger, closer, err := newLogger(logPath, "flappy")
	if err != nil {
		fail("%v", err)
	}
	defer closer.Close()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	player := playerName()
	gameLogger := logger.With("player", player, "board", string(preset))
	game := flappy.New(cfg, flappy.WithSeed(flagSeed), flappy.WithLogger(gameLogger))

	err = tui.Run(game, terminalRuntime(), tui.Options{
		Store:   store,
		Sprites: sprites,
		Board:   string(preset),
		Player:  player,
		Logger:  gameLogger,
	})
	if err != nil {
		logger.Error("terminal host failed", "err", err)
		fail("running game: %v", err)
	}
}
