package engine

// EventKind names an engine event for logging and dispatch.
type EventKind string

const (
	KindGridChanged         EventKind = "grid_changed"
	KindMoveAccepted        EventKind = "move_accepted"
	KindMoveRejectedNoMatch EventKind = "move_rejected_no_match"
	KindGameOver            EventKind = "game_over"
)

// Event is emitted synchronously after a state transition.
type Event interface {
	Kind() EventKind
}

// GridChanged carries a copy of the settled grid.
type GridChanged struct {
	Grid *Grid
}

func (GridChanged) Kind() EventKind { return KindGridChanged }

// MoveAccepted is sent when a swap produced at least one match.
type MoveAccepted struct {
	From, To       Pos
	ScoreDelta     int
	Passes         []int // Cleared cells per detection pass, first pass included
	Score          int
	MovesRemaining int
}

func (MoveAccepted) Kind() EventKind { return KindMoveAccepted }

// MoveRejectedNoMatch is sent when a swap was reverted.
type MoveRejectedNoMatch struct {
	From, To Pos
}

func (MoveRejectedNoMatch) Kind() EventKind { return KindMoveRejectedNoMatch }

// GameOverEvent is sent once, on the swap that used the last move.
type GameOverEvent struct {
	FinalScore int
}

func (GameOverEvent) Kind() EventKind { return KindGameOver }

// Observer receives engine events.
type Observer interface {
	OnEvent(Event)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(Event)

// OnEvent calls f(e).
func (f ObserverFunc) OnEvent(e Event) {
	f(e)
}
