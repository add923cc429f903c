package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy/internal/games/flappy"
	"github.com/vovakirdan/flappy/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play with the sprite images.

Controls:
  Space  - Flap
  P      - Pause
  R      - Restart (after game over)
  Escape - Quit

Examples:
  flappy window
  flappy window --preset wide
  flappy window --assets /usr/share/flappy`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, _ []string) {
	_, cfg, preset, err := loadGameConfig()
	if err != nil {
		fail("%v", err)
	}
	sprites, err := loadSprites(cfg)
	if err != nil {
		fail("%v", err)
	}

	logger, closer, err := newLogger(flagLogFile, "flappy")
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

	logger.Info("opening window", "width", cfg.Window.Width, "height", cfg.Window.Height)
	err = window.Run(game, sprites, window.Options{
		Store:    store,
		Board:    string(preset),
		Player:   player,
		TickRate: flagFPS,
		Logger:   gameLogger,
	})
	if err != nil {
		logger.Error("window host failed", "err", err)
		fail("running game: %v", err)
	}
}
