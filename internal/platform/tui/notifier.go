package tui

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tilematch/internal/core"
)

// bell is the terminal bell control character.
const bell = "\a"

// Notifier announces game events: every event is logged, and the terminal
// bell rings on game over and level clear when enabled.
type Notifier struct {
	logger *log.Logger
	bell   io.Writer // nil disables the bell
	runID  string
}

// NewNotifier creates a notifier. A nil logger discards log output;
// a nil bell writer disables the bell.
func NewNotifier(logger *log.Logger, bellOut io.Writer) *Notifier {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Notifier{logger: logger, bell: bellOut}
}

// StartRun tags subsequent events with a fresh run ID and logs the start.
func (n *Notifier) StartRun(gameID, player string) string {
	n.runID = uuid.NewString()
	n.logger.Info("run started", "game", gameID, "player", player, "run", n.runID)
	return n.runID
}

// RunID returns the current run ID, empty before StartRun.
func (n *Notifier) RunID() string {
	return n.runID
}

// Notify logs ev and rings the bell for end-of-stage events.
func (n *Notifier) Notify(gameID string, ev core.GameEvent) {
	fields := []any{
		"game", gameID,
		"run", n.runID,
		"kind", ev.Kind,
		"score", ev.Score,
		"moves", ev.Moves,
	}
	if ev.Message != "" {
		fields = append(fields, "msg", ev.Message)
	}

	switch ev.Kind {
	case core.EventMoveRejected:
		n.logger.Debug("game event", fields...)
	case core.EventGameOver, core.EventLevelCleared:
		n.logger.Info("game event", fields...)
		n.ring()
	default:
		n.logger.Debug("game event", fields...)
	}
}

// ScoreSaved logs the outcome of persisting a final score.
func (n *Notifier) ScoreSaved(gameID string, score int, err error) {
	if err != nil {
		n.logger.Warn("could not save score", "game", gameID, "run", n.runID, "score", score, "error", err)
		return
	}
	n.logger.Info("score saved", "game", gameID, "run", n.runID, "score", score)
}

func (n *Notifier) ring() {
	if n.bell == nil {
		return
	}
	//nolint:errcheck // Best-effort bell
	io.WriteString(n.bell, bell)
}
