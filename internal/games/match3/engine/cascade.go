package engine

import "fmt"

// MaxCascadePasses bounds Settle. A board that keeps matching this long
// means the refill is broken.
const MaxCascadePasses = 1000

// Collapse removes every gap: for each column, while an empty cell remains,
// everything above the lowest gap moves down one row and the top cell is
// refilled with an unconstrained pick.
func Collapse(g *Grid, c *Chooser) {
	top := g.N - 1
	for col := range g.N {
		for {
			gap := lowestEmpty(g, col)
			if gap < 0 {
				break
			}
			for row := gap; row < top; row++ {
				g.Set(P(row, col), g.At(P(row+1, col)))
			}
			g.Set(P(top, col), c.Unconstrained())
		}
	}
}

// lowestEmpty returns the lowest empty row in col, or -1.
func lowestEmpty(g *Grid, col int) int {
	for row := range g.N {
		if g.At(P(row, col)).IsEmpty() {
			return row
		}
	}
	return -1
}

// Settle collapses and re-detects until no match remains. It returns the
// cleared-cell count of every detection pass it ran that found a match.
//
// On ErrCascadeLimit the grid is still collapsed, so it holds no empty
// cells, but it may contain runs.
func Settle(g *Grid, c *Chooser) ([]int, error) {
	var passes []int
	for range MaxCascadePasses {
		Collapse(g, c)
		delta, matched := DetectAndClear(g)
		if !matched {
			return passes, nil
		}
		passes = append(passes, delta)
	}
	Collapse(g, c)
	return passes, fmt.Errorf("%w after %d passes", ErrCascadeLimit, MaxCascadePasses)
}
