// flappy is a Flappy Bird game for the terminal, the desktop and SSH.
//
// Usage:
//
//	flappy play              - Play in the terminal
//	flappy window            - Play in a desktop window
//	flappy menu              - Title menu with board picker and high scores
//	flappy scores [board]    - Show high scores for a board
//	flappy serve             - Start SSH server for remote play
//	flappy config            - Print the game configuration
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.flappy/scores.db)
//	--config <path>    - Load a custom game config YAML
//	--preset <name>    - Board preset: classic or wide
//	--assets <dir>     - Directory the sprite paths are resolved against
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagPreset  string
	flagAssets  string
	flagPlayer  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - guide a bird through an endless stream of pipes",
	Long: `Flappy is a Flappy Bird game that runs in your terminal, in a desktop
window, or over SSH for remote players.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  menu     - Title menu with board picker and high scores
  scores   - View high scores
  serve    - Start SSH server for remote play
  config   - Print the game configuration

Examples:
  flappy play
  flappy play --preset wide --seed 42
  flappy window --assets ./
  flappy serve --ssh :2222
  flappy scores wide`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flappy/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "classic", "Board preset: classic, wide")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", ".", "Directory sprite paths are resolved against")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", "", "Name recorded with your scores (default: $USER)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log", "", "Log file (default: ~/.flappy/flappy.log for terminal play, stderr otherwise)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
