package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Platform frames per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
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

// FramesPerSecond returns the tick rate, falling back to the default for
// unset or invalid values.
func (c RuntimeConfig) FramesPerSecond() int {
	if c.TickRate <= 0 {
		return DefaultConfig().TickRate
	}
	return c.TickRate
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Current score
	GameOver bool   // Whether the game has ended
	Paused   bool   // Whether the game is paused
	Outcome  string // How the game ended ("won", "caught", ...); empty while playing
	Elapsed  int    // Whole seconds of play in the current round
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State GameState
}

// RunReport describes a finished round in more detail than its score.
type RunReport struct {
	Outcome  string // terminal state, e.g. "won"
	Score    int
	Duration int // seconds played
	TimeLeft int
	Keys     int
	Coin     int
}
