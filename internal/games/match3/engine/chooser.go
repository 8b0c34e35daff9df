package engine

import (
	"fmt"

	"github.com/samber/lo"
)

// IntNSource is the part of *rand.Rand the chooser needs.
// Tests substitute scripted sources.
type IntNSource interface {
	IntN(n int) int
}

// Chooser picks symbols for cells, either avoiding runs with
// already-placed neighbours or uniformly from the palette.
type Chooser struct {
	palette Palette
	rng     IntNSource
}

// NewChooser creates a chooser over the given palette.
func NewChooser(palette Palette, rng IntNSource) *Chooser {
	return &Chooser{palette: palette, rng: rng}
}

// Constrained picks a symbol for p that does not complete a run of three
// with the two cells to its left or the two cells below it.
func (c *Chooser) Constrained(g *Grid, p Pos) (Symbol, error) {
	pool := []Symbol(c.palette)

	if s, ok := equalPair(g, P(p.Row, p.Col-1), P(p.Row, p.Col-2)); ok {
		pool = lo.Without(pool, s)
	}
	if s, ok := equalPair(g, P(p.Row-1, p.Col), P(p.Row-2, p.Col)); ok {
		pool = lo.Without(pool, s)
	}

	if len(pool) == 0 {
		return Empty, fmt.Errorf("%w at %v", ErrEmptyCandidatePool, p)
	}
	return pool[c.rng.IntN(len(pool))], nil
}

// Unconstrained picks any palette symbol. Used for cascade refills, where
// new runs are left for the next detection pass.
func (c *Chooser) Unconstrained() Symbol {
	return c.palette[c.rng.IntN(len(c.palette))]
}

// Fill populates every cell of g bottom row first, left to right,
// using Constrained.
func (c *Chooser) Fill(g *Grid) error {
	for row := range g.N {
		for col := range g.N {
			p := P(row, col)
			s, err := c.Constrained(g, p)
			if err != nil {
				return err
			}
			g.Set(p, s)
		}
	}
	return nil
}

// equalPair returns the shared symbol when both cells exist and match.
func equalPair(g *Grid, a, b Pos) (Symbol, bool) {
	if !g.InBounds(a) || !g.InBounds(b) {
		return Empty, false
	}
	s := g.At(a)
	if s.IsEmpty() || s != g.At(b) {
		return Empty, false
	}
	return s, true
}
