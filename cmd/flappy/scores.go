package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy/internal/config"
	"github.com/vovakirdan/flappy/internal/platform/tui"
	"github.com/vovakirdan/flappy/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
	flagScoresTable bool
	flagScoresMine  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [board]",
	Short: "Show high scores for a board",
	Long: `Display the top high scores for a board (default: the --preset board).
A limit of 0 lists every score. --mine lists your most recent games
instead, newest first.

Examples:
  flappy scores
  flappy scores wide
  flappy scores classic --limit 25
  flappy scores --limit 0
  flappy scores wide --mine --player ann
  flappy scores wide --clear
  flappy scores --table`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show (0 for all)")
	scoresCmd.Flags().BoolVar(&flagScoresMine, "mine", false, "Show the most recent games of --player")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores for the board")
	scoresCmd.Flags().BoolVar(&flagScoresTable, "table", false, "Browse all boards in an interactive table")
}

func runScores(_ *cobra.Command, args []string) {
	name := flagPreset
	if len(args) == 1 {
		name = args[0]
	}
	board, err := config.ParsePreset(name)
	if err != nil {
		fail("%v", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(string(board)); err != nil {
			fail("%v", err)
		}
		fmt.Printf("Cleared scores for %s\n", board)
		return
	}

	if flagScoresTable {
		rt := terminalRuntime()
		if _, err := tui.RunScoreboard(store, board, rt.ScreenW, rt.ScreenH); err != nil {
			fail("%v", err)
		}
		return
	}

	player := ""
	if flagScoresMine {
		player = playerName()
	}
	scores, err := loadBoardScores(store, board, player, flagScoresLimit)
	if err != nil {
		fail("retrieving scores: %v", err)
	}

	if player != "" {
		fmt.Printf("Recent Games - %s - %s\n", board, player)
	} else {
		fmt.Printf("High Scores - %s\n", board)
	}
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'flappy play --preset %s' to set the first high score!\n", board)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-16s  %-8s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-16s  %-8s  %s\n", "----", "------", "-----", "----")

	for i, entry := range scores {
		name := entry.Player
		if name == "" {
			name = "anonymous"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-16s  %-8d  %s\n", i+1, name, entry.Score, dateStr)
	}

	// Summary
	fmt.Println()
	if stats, err := store.Stats(string(board)); err == nil {
		fmt.Printf("Best: %d  |  Games: %d  |  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
}

// loadBoardScores picks the listing for the scores command: one player's
// recent games when player is set, otherwise the top scores, or every score
// when limit is 0.
func loadBoardScores(store *storage.Store, board config.Preset, player string, limit int) ([]storage.ScoreEntry, error) {
	switch {
	case player != "":
		return store.PlayerScores(string(board), player, limit)
	case limit == 0:
		return store.AllScores(string(board))
	default:
		return store.TopScores(string(board), limit)
	}
}
