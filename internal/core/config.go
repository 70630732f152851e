package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
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

// GameState represents the current state of the game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	GameOver bool // Player was destroyed
	Paused   bool // Simulation is frozen
	TooSmall bool // Terminal cannot fit the playfield

	EnemyAlive  bool // Enemy is on screen and not dead
	Projectiles int  // Player projectiles currently tracked
	Capacity    int  // Player projectile capacity
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
