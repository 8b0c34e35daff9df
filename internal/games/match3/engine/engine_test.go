package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero dimension", Config{Dimension: 0, Palette: NewPalette(3), StartingMoves: 5}},
		{"palette too small", Config{Dimension: 3, Palette: NewPalette(2), StartingMoves: 5}},
		{"palette has empty", Config{Dimension: 3, Palette: Palette{Empty, A, B}, StartingMoves: 5}},
		{"palette has duplicates", Config{Dimension: 3, Palette: Palette{A, B, B}, StartingMoves: 5}},
		{"negative moves", Config{Dimension: 3, Palette: NewPalette(3), StartingMoves: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg)
			assert.True(t, errors.Is(err, ErrInvalidConfig), "got %v", err)
		})
	}
}

func TestNewInitialState(t *testing.T) {
	rec := &recorder{}
	e, err := New(Config{Dimension: 6, Palette: NewPalette(4), StartingMoves: 10, Seed: 42}, WithObserver(rec))
	require.NoError(t, err)

	assert.Equal(t, 0, e.Score())
	assert.Equal(t, 10, e.MovesRemaining())
	assert.False(t, e.GameOver())
	assert.Equal(t, PhaseReady, e.Phase())
	assert.Equal(t, 6, e.Dimension())
	assert.Empty(t, FindMatches(e.Grid()))
	assert.Equal(t, []EventKind{KindGridChanged}, rec.kinds())
}

func TestNewZeroMovesStartsOver(t *testing.T) {
	e, err := New(Config{Dimension: 3, Palette: NewPalette(3), StartingMoves: 0})
	require.NoError(t, err)
	assert.True(t, e.GameOver())
	assert.Equal(t, PhaseGameOver, e.Phase())

	_, err = e.TrySwap(P(0, 0), P(0, 1))
	assert.True(t, errors.Is(err, ErrGameOver))
}

func TestNewSameSeedSameBoard(t *testing.T) {
	cfg := Config{Dimension: 8, Palette: NewPalette(5), StartingMoves: 20, Seed: 7}
	a, err := New(cfg)
	require.NoError(t, err)
	b, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, a.Snapshot(), b.Snapshot())
}

func TestCell(t *testing.T) {
	g := GridFromRows(
		[]Symbol{A, B, A},
		[]Symbol{B, A, B},
		[]Symbol{A, A, B},
	)
	e := engineWithGrid(t, g, constSource(0), 5)

	s, err := e.Cell(2, 1)
	require.NoError(t, err)
	assert.Equal(t, A, s)

	_, err = e.Cell(3, 0)
	assert.True(t, errors.Is(err, ErrInvalidPosition))
}

func TestTrySwapNoMatchRestoresGrid(t *testing.T) {
	g := GridFromRows(
		[]Symbol{A, B, A},
		[]Symbol{B, A, B},
		[]Symbol{A, A, B},
	)
	e := engineWithGrid(t, g, constSource(0), 5)
	rec := &recorder{}
	e.Subscribe(rec)

	res, err := e.TrySwap(P(0, 2), P(1, 2))
	require.NoError(t, err)
	assert.False(t, res.Accepted)
	assert.Equal(t, ReasonNoMatch, res.Reason)
	assert.True(t, g.Equal(e.Grid()), "grid changed:\n%s", e.Grid())
	assert.Equal(t, 0, e.Score())
	assert.Equal(t, 5, e.MovesRemaining())
	assert.Equal(t, PhaseReady, e.Phase())
	assert.Equal(t, []EventKind{KindMoveRejectedNoMatch}, rec.kinds())
}

func TestTrySwapRejections(t *testing.T) {
	g := GridFromRows(
		[]Symbol{A, B, A},
		[]Symbol{B, A, B},
		[]Symbol{A, A, B},
	)
	tests := []struct {
		name   string
		a, b   Pos
		err    error
		reason Reason
	}{
		{"out of bounds", P(0, 2), P(0, 3), ErrInvalidPosition, ReasonInvalidPosition},
		{"negative", P(-1, 0), P(0, 0), ErrInvalidPosition, ReasonInvalidPosition},
		{"diagonal", P(0, 0), P(1, 1), ErrNotAdjacent, ReasonNotAdjacent},
		{"same cell", P(1, 1), P(1, 1), ErrNotAdjacent, ReasonNotAdjacent},
		{"too far", P(0, 0), P(0, 2), ErrNotAdjacent, ReasonNotAdjacent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := engineWithGrid(t, g, constSource(0), 5)
			rec := &recorder{}
			e.Subscribe(rec)

			res, err := e.TrySwap(tt.a, tt.b)
			assert.True(t, errors.Is(err, tt.err), "got %v", err)
			assert.Equal(t, tt.reason, res.Reason)
			assert.False(t, res.Accepted)
			assert.True(t, g.Equal(e.Grid()))
			assert.Equal(t, 5, e.MovesRemaining())
			assert.Empty(t, rec.events)
		})
	}
}

func TestTrySwapAccepted(t *testing.T) {
	g := GridFromRows(
		[]Symbol{A, A, B},
		[]Symbol{B, C, A},
		[]Symbol{C, B, C},
	)
	e := engineWithGrid(t, g, &seqSource{vals: []int{0, 1, 2}}, 5)
	rec := &recorder{}
	e.Subscribe(rec)

	res, err := e.TrySwap(P(0, 2), P(1, 2))
	require.NoError(t, err)
	assert.True(t, res.Accepted)
	assert.Equal(t, ReasonNone, res.Reason)
	assert.Equal(t, 3, res.ScoreDelta)
	assert.Equal(t, []int{3}, res.Passes)
	assert.Equal(t, 4, res.MovesRemaining)
	assert.Equal(t, 3, e.Score())

	want := GridFromRows(
		[]Symbol{B, C, B},
		[]Symbol{C, B, C},
		[]Symbol{A, B, C},
	)
	assert.True(t, want.Equal(e.Grid()), "got\n%s\nwant\n%s", e.Grid(), want)

	require.Equal(t, []EventKind{KindGridChanged, KindMoveAccepted}, rec.kinds())
	moved := rec.events[1].(MoveAccepted)
	assert.Equal(t, P(0, 2), moved.From)
	assert.Equal(t, P(1, 2), moved.To)
	assert.Equal(t, 3, moved.Score)
	assert.Equal(t, 4, moved.MovesRemaining)
}

func TestTrySwapTwoPassCascade(t *testing.T) {
	g := GridFromRows(
		[]Symbol{A, A, B},
		[]Symbol{C, B, A},
		[]Symbol{B, C, C},
	)
	e := engineWithGrid(t, g, &seqSource{vals: []int{0, 0, 0, 1, 2, 0}}, 5)
	rec := &recorder{}
	e.Subscribe(rec)

	// The swap clears the bottom row AAA, and the refilled top row is AAA
	// again, so a second pass clears it too.
	res, err := e.TrySwap(P(0, 2), P(1, 2))
	require.NoError(t, err)
	assert.True(t, res.Accepted)
	assert.Equal(t, []int{3, 3}, res.Passes)
	assert.Equal(t, 6, res.ScoreDelta)
	assert.Equal(t, 6, e.Score())

	want := GridFromRows(
		[]Symbol{C, B, B},
		[]Symbol{B, C, C},
		[]Symbol{B, C, A},
	)
	assert.True(t, want.Equal(e.Grid()), "got\n%s\nwant\n%s", e.Grid(), want)

	require.Len(t, rec.events, 2)
	moved := rec.events[1].(MoveAccepted)
	assert.Equal(t, []int{3, 3}, moved.Passes)
	assert.Equal(t, 6, moved.ScoreDelta)
}

func TestTrySwapLastMoveEndsGame(t *testing.T) {
	g := GridFromRows(
		[]Symbol{A, A, B},
		[]Symbol{B, C, A},
		[]Symbol{C, B, C},
	)
	e := engineWithGrid(t, g, &seqSource{vals: []int{0, 1, 2}}, 1)
	rec := &recorder{}
	e.Subscribe(rec)

	res, err := e.TrySwap(P(1, 2), P(0, 2))
	require.NoError(t, err)
	assert.True(t, res.GameOver)
	assert.True(t, e.GameOver())
	assert.Equal(t, PhaseGameOver, e.Phase())
	assert.Equal(t, []EventKind{KindGridChanged, KindMoveAccepted, KindGameOver}, rec.kinds())
	assert.Equal(t, GameOverEvent{FinalScore: 3}, rec.events[2])

	before := e.Snapshot()
	res, err = e.TrySwap(P(0, 0), P(0, 1))
	assert.True(t, errors.Is(err, ErrGameOver))
	assert.Equal(t, ReasonGameOver, res.Reason)
	assert.Equal(t, before, e.Snapshot())
	assert.Len(t, rec.events, 3, "game over must be emitted once")

	// Bounds are checked before the game-over state.
	_, err = e.TrySwap(P(0, 0), P(9, 9))
	assert.True(t, errors.Is(err, ErrInvalidPosition))
}

func TestTrySwapCascadeLimit(t *testing.T) {
	g := GridFromRows(
		[]Symbol{A, A, C},
		[]Symbol{B, C, A},
		[]Symbol{C, A, B},
	)
	e := engineWithGrid(t, g, constSource(0), 5)

	res, err := e.TrySwap(P(0, 2), P(1, 2))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCascadeLimit))
	assert.True(t, res.Accepted)
	assert.Len(t, res.Passes, MaxCascadePasses+1)
	assert.False(t, e.Grid().HasEmpty())
	assert.Equal(t, 4, e.MovesRemaining())
}

func TestHasPossibleMove(t *testing.T) {
	g := GridFromRows(
		[]Symbol{A, A, B},
		[]Symbol{B, C, A},
		[]Symbol{C, B, C},
	)
	e := engineWithGrid(t, g, constSource(0), 5)
	assert.True(t, e.HasPossibleMove())
	assert.True(t, g.Equal(e.Grid()))

	stuck := GridFromRows(
		[]Symbol{A, A, B},
		[]Symbol{A, A, B},
		[]Symbol{B, C, C},
	)
	e = engineWithGrid(t, stuck, constSource(0), 5)
	assert.False(t, e.HasPossibleMove())
}

// Drives many seeded games with the first accepted swap found and checks
// the bookkeeping invariants after every move.
func TestSeededGamesKeepInvariants(t *testing.T) {
	for seed := range int64(40) {
		rec := &recorder{}
		e, err := New(Config{Dimension: 6, Palette: NewPalette(4), StartingMoves: 15, Seed: seed}, WithObserver(rec))
		require.NoError(t, err)
		require.Empty(t, FindMatches(e.Grid()), "seed %d", seed)

		for !e.GameOver() {
			a, b, ok := firstAcceptedSwap(e)
			if !ok {
				break
			}
			score, moves := e.Score(), e.MovesRemaining()

			res, err := e.TrySwap(a, b)
			require.NoError(t, err, "seed %d", seed)
			require.True(t, res.Accepted, "seed %d", seed)

			grid := e.Grid()
			assert.False(t, grid.HasEmpty(), "seed %d", seed)
			assert.Empty(t, FindMatches(grid), "seed %d", seed)
			assert.Equal(t, moves-1, e.MovesRemaining(), "seed %d", seed)
			assert.Equal(t, score+res.ScoreDelta, e.Score(), "seed %d", seed)

			sum := 0
			for _, n := range res.Passes {
				assert.GreaterOrEqual(t, n, MinRun, "seed %d", seed)
				sum += n
			}
			assert.Equal(t, res.ScoreDelta, sum, "seed %d", seed)
		}

		overs := 0
		for _, ev := range rec.events {
			if ev.Kind() == KindGameOver {
				overs++
			}
		}
		if e.GameOver() {
			assert.Equal(t, 1, overs, "seed %d", seed)
		} else {
			assert.Zero(t, overs, "seed %d", seed)
		}
	}
}

// firstAcceptedSwap finds a matching swap without touching e.
func firstAcceptedSwap(e *Engine) (Pos, Pos, bool) {
	g := e.Grid()
	for row := range g.N {
		for col := range g.N {
			a := P(row, col)
			for _, b := range []Pos{P(row, col+1), P(row+1, col)} {
				if !g.InBounds(b) {
					continue
				}
				g.Swap(a, b)
				found := len(FindMatches(g)) > 0
				g.Swap(a, b)
				if found {
					return a, b, true
				}
			}
		}
	}
	return Pos{}, Pos{}, false
}
