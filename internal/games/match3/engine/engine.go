// Package engine implements the match-3 grid state machine: run-free
// initial fill, swap validation, match detection, cascade settling and
// score/move bookkeeping.
//
// The engine performs no I/O and holds no global state. Presentation
// layers read it through accessors and observe it through events.
package engine

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/samber/lo"
)

// Config describes a new game.
type Config struct {
	Dimension     int     // Board is Dimension x Dimension
	Palette       Palette // At least MinPaletteSize distinct symbols
	StartingMoves int     // Zero starts the engine already over
	Seed          int64   // Used unless WithRand is given
}

// Option customizes an Engine at construction.
type Option func(*Engine)

// WithRand replaces the seeded generator, e.g. with a scripted source.
func WithRand(src IntNSource) Option {
	return func(e *Engine) {
		e.rng = src
	}
}

// WithObserver subscribes o before the initial fill, so it also sees the
// first GridChanged.
func WithObserver(o Observer) Option {
	return func(e *Engine) {
		e.observers = append(e.observers, o)
	}
}

// Phase is the swap lifecycle state.
type Phase int

const (
	PhaseReady     Phase = iota // Accepting swaps
	PhaseResolving              // Inside TrySwap
	PhaseGameOver               // Terminal
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhaseResolving:
		return "resolving"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// SwapResult reports the outcome of TrySwap.
type SwapResult struct {
	Accepted       bool
	Reason         Reason
	ScoreDelta     int
	Passes         []int
	MovesRemaining int
	GameOver       bool
}

// Engine owns one game's grid and move state.
type Engine struct {
	grid      *Grid
	palette   Palette
	chooser   *Chooser
	rng       IntNSource
	observers []Observer

	score          int
	movesRemaining int
	gameOver       bool
	phase          Phase
}

// New validates cfg and fills a board with no pre-existing runs.
func New(cfg Config, opts ...Option) (*Engine, error) {
	e, err := newEngine(cfg, opts)
	if err != nil {
		return nil, err
	}

	e.grid = NewGrid(cfg.Dimension)
	if err := e.chooser.Fill(e.grid); err != nil {
		return nil, fmt.Errorf("engine: initial fill: %w", err)
	}
	e.start()
	return e, nil
}

// newFromGrid builds an engine around a copy of g instead of a fresh fill.
// cfg.Dimension is taken from g.
func newFromGrid(cfg Config, g *Grid, opts ...Option) (*Engine, error) {
	cfg.Dimension = g.N
	e, err := newEngine(cfg, opts)
	if err != nil {
		return nil, err
	}

	e.grid = g.Clone()
	e.start()
	return e, nil
}

// newEngine validates cfg and wires the random source, without a board.
func newEngine(cfg Config, opts []Option) (*Engine, error) {
	if cfg.Dimension < 1 {
		return nil, fmt.Errorf("%w: dimension %d, need at least 1", ErrInvalidConfig, cfg.Dimension)
	}
	if err := cfg.Palette.validate(); err != nil {
		return nil, err
	}
	if cfg.StartingMoves < 0 {
		return nil, fmt.Errorf("%w: starting moves %d is negative", ErrInvalidConfig, cfg.StartingMoves)
	}

	e := &Engine{
		palette:        slices.Clone(cfg.Palette),
		movesRemaining: cfg.StartingMoves,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		seed := uint64(cfg.Seed)
		e.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
	e.chooser = NewChooser(e.palette, e.rng)
	return e, nil
}

// start sets the initial phase and announces the board.
func (e *Engine) start() {
	e.gameOver = e.movesRemaining == 0
	e.phase = PhaseReady
	if e.gameOver {
		e.phase = PhaseGameOver
	}
	e.emit(GridChanged{Grid: e.grid.Clone()})
}

// Subscribe registers an observer for subsequent events.
func (e *Engine) Subscribe(o Observer) {
	e.observers = append(e.observers, o)
}

func (e *Engine) emit(ev Event) {
	for _, o := range e.observers {
		o.OnEvent(ev)
	}
}

// TrySwap swaps the symbols at a and b if that creates a match, then
// settles the board. Rejected swaps leave the engine unchanged; a swap
// without a match is reverted and reported with ReasonNoMatch and a nil
// error.
func (e *Engine) TrySwap(a, b Pos) (SwapResult, error) {
	rejected := func(reason Reason) SwapResult {
		return SwapResult{Reason: reason, MovesRemaining: e.movesRemaining, GameOver: e.gameOver}
	}

	if !e.grid.InBounds(a) || !e.grid.InBounds(b) {
		return rejected(ReasonInvalidPosition),
			fmt.Errorf("%w: swap %v <-> %v on a %dx%d grid", ErrInvalidPosition, a, b, e.grid.N, e.grid.N)
	}
	if e.gameOver {
		return rejected(ReasonGameOver), ErrGameOver
	}
	if !a.Adjacent(b) {
		return rejected(ReasonNotAdjacent), fmt.Errorf("%w: %v and %v", ErrNotAdjacent, a, b)
	}

	e.phase = PhaseResolving
	e.grid.Swap(a, b)

	first, matched := DetectAndClear(e.grid)
	if !matched {
		e.grid.Swap(a, b)
		e.phase = PhaseReady
		e.emit(MoveRejectedNoMatch{From: a, To: b})
		return rejected(ReasonNoMatch), nil
	}

	cascades, settleErr := Settle(e.grid, e.chooser)
	passes := append([]int{first}, cascades...)
	delta := lo.Sum(passes)

	e.score += delta
	e.movesRemaining--
	if e.movesRemaining == 0 {
		e.gameOver = true
	}
	e.phase = PhaseReady
	if e.gameOver {
		e.phase = PhaseGameOver
	}

	result := SwapResult{
		Accepted:       true,
		ScoreDelta:     delta,
		Passes:         passes,
		MovesRemaining: e.movesRemaining,
		GameOver:       e.gameOver,
	}

	e.emit(GridChanged{Grid: e.grid.Clone()})
	e.emit(MoveAccepted{
		From:           a,
		To:             b,
		ScoreDelta:     delta,
		Passes:         slices.Clone(passes),
		Score:          e.score,
		MovesRemaining: e.movesRemaining,
	})
	if e.gameOver {
		e.emit(GameOverEvent{FinalScore: e.score})
	}

	if settleErr != nil {
		return result, fmt.Errorf("engine: swap %v <-> %v: %w", a, b, settleErr)
	}
	return result, nil
}

// Cell returns the symbol at (row, col).
func (e *Engine) Cell(row, col int) (Symbol, error) {
	p := P(row, col)
	if !e.grid.InBounds(p) {
		return Empty, fmt.Errorf("%w: %v on a %dx%d grid", ErrInvalidPosition, p, e.grid.N, e.grid.N)
	}
	return e.grid.At(p), nil
}

// HasPossibleMove reports whether any orthogonal swap would match.
// The engine's grid is not touched.
func (e *Engine) HasPossibleMove() bool {
	g := e.grid.Clone()
	for row := range g.N {
		for col := range g.N {
			a := P(row, col)
			for _, b := range []Pos{P(row, col+1), P(row+1, col)} {
				if !g.InBounds(b) || g.At(a) == g.At(b) {
					continue
				}
				g.Swap(a, b)
				found := len(FindMatches(g)) > 0
				g.Swap(a, b)
				if found {
					return true
				}
			}
		}
	}
	return false
}

// Score returns the accumulated score.
func (e *Engine) Score() int { return e.score }

// MovesRemaining returns the number of swaps left.
func (e *Engine) MovesRemaining() int { return e.movesRemaining }

// GameOver reports whether the last move has been used.
func (e *Engine) GameOver() bool { return e.gameOver }

// Phase returns the lifecycle state.
func (e *Engine) Phase() Phase { return e.phase }

// Dimension returns the board size N.
func (e *Engine) Dimension() int { return e.grid.N }

// Palette returns a copy of the palette.
func (e *Engine) Palette() Palette { return slices.Clone(e.palette) }

// Grid returns a copy of the current grid.
func (e *Engine) Grid() *Grid { return e.grid.Clone() }

// Snapshot captures the engine state for determinism checks.
type Snapshot struct {
	Dimension      int
	Rows           [][]Symbol // Bottom row first
	Score          int
	MovesRemaining int
	GameOver       bool
	Phase          Phase
}

// Snapshot returns the current engine snapshot.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Dimension:      e.grid.N,
		Rows:           e.grid.Rows(),
		Score:          e.score,
		MovesRemaining: e.movesRemaining,
		GameOver:       e.gameOver,
		Phase:          e.phase,
	}
}
