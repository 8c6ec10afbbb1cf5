package core

// RuntimeConfig is passed to a game when it starts or restarts.
type RuntimeConfig struct {
	ScreenW  int   // screen width in characters
	ScreenH  int   // screen height in characters
	TickRate int   // simulation ticks per second
	Seed     int64 // RNG seed; the same seed replays the same rounds
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is what the platform needs to know about a running game.
type GameState struct {
	Score    int      // wins of the first seat over the session
	GameOver bool     // the current round has ended
	Paused   bool     // the game is paused
	Round    int      // 1-based round number
	Level    int      // arena level of the current round
	Winner   PlayerID // winner of the finished round, 0 for a draw or while playing
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
}
