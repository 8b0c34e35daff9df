package engine

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstrainedExcludesPairs(t *testing.T) {
	g := NewGrid(3)
	g.Set(P(0, 0), A)
	g.Set(P(0, 1), A)

	c := NewChooser(NewPalette(3), constSource(0))
	s, err := c.Constrained(g, P(0, 2))
	require.NoError(t, err)
	assert.Equal(t, B, s, "left pair AA should drop A, leaving B first")

	g = GridFromRows(
		[]Symbol{A, C, B},
		[]Symbol{B, C, A},
		[]Symbol{Empty, Empty, Empty},
	)
	// Lower pair (0,1),(1,1) is CC; the left pair at (2,1) runs off the grid.
	c = NewChooser(NewPalette(3), constSource(1))
	s, err = c.Constrained(g, P(2, 1))
	require.NoError(t, err)
	assert.Equal(t, B, s, "pool should be {A,B}")
}

func TestConstrainedEmptyPool(t *testing.T) {
	g := NewGrid(3)
	g.Set(P(2, 0), A)
	g.Set(P(2, 1), A)
	g.Set(P(0, 2), B)
	g.Set(P(1, 2), B)

	// Left pair AA and lower pair BB leave nothing of {A,B}. A palette
	// smaller than MinPaletteSize is only reachable in-package.
	c := NewChooser(Palette{A, B}, constSource(0))
	s, err := c.Constrained(g, P(2, 2))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyCandidatePool), "got %v", err)
	assert.Equal(t, Empty, s)
}

func TestConstrainedIgnoresPairAbove(t *testing.T) {
	g := NewGrid(3)
	g.Set(P(0, 0), A)
	g.Set(P(0, 1), A)
	g.Set(P(1, 2), B)
	g.Set(P(2, 2), B)

	// BB sits above (0,2), so only A is excluded.
	c := NewChooser(Palette{A, B}, constSource(0))
	s, err := c.Constrained(g, P(0, 2))
	require.NoError(t, err)
	assert.Equal(t, B, s)
}

func TestFillHasNoRuns(t *testing.T) {
	for seed := range uint64(100) {
		g := NewGrid(8)
		c := NewChooser(NewPalette(3), rand.New(rand.NewPCG(seed, seed)))
		require.NoError(t, c.Fill(g))
		assert.False(t, g.HasEmpty(), "seed %d", seed)
		assert.Empty(t, FindMatches(g), "seed %d:\n%s", seed, g)
	}
}

func TestFillOneByOne(t *testing.T) {
	g := NewGrid(1)
	c := NewChooser(NewPalette(3), constSource(1))
	require.NoError(t, c.Fill(g))
	assert.Equal(t, B, g.At(P(0, 0)))
}

func TestUnconstrainedCoversPalette(t *testing.T) {
	c := NewChooser(NewPalette(3), &seqSource{vals: []int{0, 1, 2}})
	got := []Symbol{c.Unconstrained(), c.Unconstrained(), c.Unconstrained()}
	assert.Equal(t, []Symbol{A, B, C}, got)
}
