package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a title menu",
	Long: `Start in interactive menu mode.

Pick a board with Left/Right and press Enter on Play.
After a game ends and you quit it, you return to the menu.

Controls:
  Up/Down/j/k    - Navigate menu
  Left/Right     - Switch board
  Enter/Space    - Select
  Tab            - High scores
  Q              - Quit

Examples:
  flappy menu
  flappy menu --fps 30
  flappy menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	base, cfg, preset, err := loadGameConfig()
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

	err = tui.RunSession(tui.SessionConfig{
		Base:    base,
		Board:   preset,
		Sprites: sprites,
		Store:   store,
		Player:  playerName(),
		Seed:    flagSeed,
		Logger:  logger,
	}, terminalRuntime())
	if err != nil {
		logger.Error("menu failed", "err", err)
		fail("running menu: %v", err)
	}
}
