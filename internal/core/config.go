package core

// Default size of one terminal cell in world units.
const (
	DefaultCellW = 8
	DefaultCellH = 16
)

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	CellW    int   // World units per character column
	CellH    int   // World units per character row
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		CellW:    DefaultCellW,
		CellH:    DefaultCellH,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// CellSize returns the cell scale, falling back to the defaults when unset.
func (c RuntimeConfig) CellSize() (int, int) {
	w, h := c.CellW, c.CellH
	if w <= 0 {
		w = DefaultCellW
	}
	if h <= 0 {
		h = DefaultCellH
	}
	return w, h
}

// GameState is the summary a game reports to the platform after each tick.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
