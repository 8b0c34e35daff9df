package engine

import (
	"cmp"
	"slices"

	"github.com/samber/lo"
)

// MinRun is the shortest run that counts as a match.
const MinRun = 3

// FindMatches returns every cell that belongs to a horizontal or vertical
// run of at least MinRun equal symbols, in row-major order. Each cell is
// listed once even when it sits in both a row run and a column run.
func FindMatches(g *Grid) []Pos {
	matched := make(map[Pos]struct{})

	for row := range g.N {
		for col := range g.N {
			start := P(row, col)
			s := g.At(start)
			if s.IsEmpty() {
				continue
			}
			collectRun(g, start, 0, 1, s, matched)
			collectRun(g, start, 1, 0, s, matched)
		}
	}

	cells := lo.Keys(matched)
	slices.SortFunc(cells, func(a, b Pos) int {
		if c := cmp.Compare(a.Row, b.Row); c != 0 {
			return c
		}
		return cmp.Compare(a.Col, b.Col)
	})
	return cells
}

// collectRun measures the run of s starting at start along (dRow, dCol)
// and records its cells if it is long enough.
func collectRun(g *Grid, start Pos, dRow, dCol int, s Symbol, matched map[Pos]struct{}) {
	length := 1
	for g.At(P(start.Row+length*dRow, start.Col+length*dCol)) == s {
		length++
	}
	if length < MinRun {
		return
	}
	for i := range length {
		matched[P(start.Row+i*dRow, start.Col+i*dCol)] = struct{}{}
	}
}

// DetectAndClear empties every matched cell. It returns the number of
// cleared cells, which is the score delta for this pass.
func DetectAndClear(g *Grid) (int, bool) {
	cells := FindMatches(g)
	for _, p := range cells {
		g.Set(p, Empty)
	}
	return len(cells), len(cells) > 0
}
