package main

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/flappy/internal/config"
	"github.com/vovakirdan/flappy/internal/storage"
)

func TestLoadBoardScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	for i, score := range []int{5, 9, 1, 7, 3, 8, 2, 6, 4, 10, 11, 12} {
		player := "ann"
		if i%2 == 1 {
			player = "bob"
		}
		if _, err := store.SaveScore("classic", player, score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	tests := []struct {
		name   string
		player string
		limit  int
		count  int
		first  int
	}{
		{"top scores", "", 3, 3, 12},
		{"zero limit lists all", "", 0, 12, 12},
		{"recent games of one player", "ann", 10, 6, 11},
		{"recent games limited", "bob", 2, 2, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores, err := loadBoardScores(store, config.PresetClassic, tt.player, tt.limit)
			if err != nil {
				t.Fatalf("loadBoardScores() failed: %v", err)
			}
			if len(scores) != tt.count {
				t.Fatalf("got %d scores, want %d", len(scores), tt.count)
			}
			if scores[0].Score != tt.first {
				t.Errorf("first score = %d, want %d", scores[0].Score, tt.first)
			}
			for _, s := range scores {
				if tt.player != "" && s.Player != tt.player {
					t.Errorf("score of %q listed for %q", s.Player, tt.player)
				}
			}
		})
	}
}
