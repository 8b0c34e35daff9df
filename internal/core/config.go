package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed for deterministic boards
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// EventKind classifies a GameEvent for the platform notifier.
type EventKind string

const (
	EventMoveAccepted EventKind = "move_accepted"
	EventMoveRejected EventKind = "move_rejected"
	EventLevelCleared EventKind = "level_cleared"
	EventGameOver     EventKind = "game_over"
)

// GameEvent is something the platform may want to announce: log it, ring a
// bell, flash a message. Games never act on these themselves.
type GameEvent struct {
	Kind    EventKind
	Message string
	Score   int
	Moves   int
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []GameEvent
}
