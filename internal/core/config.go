package core

// RuntimeConfig carries the terminal-facing parameters of one run.
type RuntimeConfig struct {
	ScreenW  int // Terminal width in characters
	ScreenH  int // Terminal height in characters
	TickRate int // Simulation ticks per second
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 15,
	}
}

// GameState is the externally visible state of the scene.
type GameState struct {
	Distance int  // Cells scrolled so far
	Paused   bool // Whether the animation timer is stopped
}

// StepResult is returned after each simulation tick.
type StepResult struct {
	State GameState
}
