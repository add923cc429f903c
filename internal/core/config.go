package core

// RuntimeConfig contains host settings passed to the game loop.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters (terminal host only)
	ScreenH  int // Screen height in characters (terminal host only)
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the externally visible state of a game.
// Returned by State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
	Ticks    int  // Simulation ticks since the last reset
}

// StepResult is returned after each simulation tick.
type StepResult struct {
	State GameState
	Quit  bool // Host should stop its frame loop
}
