package match3

import "github.com/vovakirdan/tilematch/internal/games/match3/engine"

// Snapshot captures the game state for determinism tests.
type Snapshot struct {
	Mode         Mode
	Level        int
	Score        int
	Cursor       engine.Pos
	Selected     engine.Pos
	HasSelection bool
	GameOver     bool
	Won          bool
	Board        engine.Snapshot
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	sel, ok := g.sel.Selected()
	s := Snapshot{
		Mode:         g.mode,
		Level:        g.levelIndex,
		Score:        g.Score(),
		Cursor:       g.cursor,
		Selected:     sel,
		HasSelection: ok,
		GameOver:     g.gameOver,
		Won:          g.won,
	}
	if g.eng != nil {
		s.Board = g.eng.Snapshot()
	}
	return s
}
