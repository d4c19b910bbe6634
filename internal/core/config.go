package core

// RuntimeConfig contains platform settings passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Simulation ticks per second (default 60)
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

// Phase is the coarse application state of a game.
type Phase int

const (
	PhaseNotStarted Phase = iota // Entered once, at process start
	PhasePlaying
	PhaseOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "NotStarted"
	case PhasePlaying:
		return "Playing"
	case PhaseOver:
		return "Over"
	default:
		return "Unknown"
	}
}

// GameState summarizes the status the platform needs after each tick.
type GameState struct {
	Phase     Phase
	Score     int  // Current round score
	HighScore int  // Best score known to this process
	Attempts  int  // Rounds started since process start
	Debug     bool // Whether the collision overlay is enabled
	Quit      bool // Set once a quit action has been consumed
}

// GameOver reports whether the current round has ended.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseOver
}
