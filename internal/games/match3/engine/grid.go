package engine

import (
	"fmt"
	"strings"
)

// Pos is a cell coordinate. Row 0 is the bottom row; gravity pulls toward
// it and refills enter at row N-1.
type Pos struct {
	Row int
	Col int
}

// P is a convenience constructor for Pos.
func P(row, col int) Pos {
	return Pos{Row: row, Col: col}
}

// String returns a string representation of the position.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Manhattan returns the Manhattan distance to another position.
func (p Pos) Manhattan(other Pos) int {
	dr := p.Row - other.Row
	dc := p.Col - other.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// Adjacent reports whether other is an orthogonal neighbour.
func (p Pos) Adjacent(other Pos) bool {
	return p.Manhattan(other) == 1
}

// Grid is an N x N symbol store in row-major order: index = row*N + col.
type Grid struct {
	N     int
	Cells []Symbol
}

// NewGrid creates an n x n grid with every cell empty.
func NewGrid(n int) *Grid {
	return &Grid{
		N:     n,
		Cells: make([]Symbol, n*n),
	}
}

// GridFromRows builds a grid from rows listed bottom (row 0) first.
// It panics if the rows do not form a square.
func GridFromRows(rows ...[]Symbol) *Grid {
	g := NewGrid(len(rows))
	for r, row := range rows {
		if len(row) != g.N {
			panic(fmt.Sprintf("engine: row %d has %d cells, want %d", r, len(row), g.N))
		}
		copy(g.Cells[r*g.N:], row)
	}
	return g
}

func (g *Grid) index(p Pos) int {
	return p.Row*g.N + p.Col
}

// InBounds returns true if the position lies on the grid.
func (g *Grid) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < g.N && p.Col >= 0 && p.Col < g.N
}

// At returns the symbol at p, or Empty when p is out of bounds.
func (g *Grid) At(p Pos) Symbol {
	if !g.InBounds(p) {
		return Empty
	}
	return g.Cells[g.index(p)]
}

// Set stores s at p. Out-of-bounds positions are ignored.
func (g *Grid) Set(p Pos, s Symbol) {
	if g.InBounds(p) {
		g.Cells[g.index(p)] = s
	}
}

// Swap exchanges the symbols at a and b. Both must be in bounds.
func (g *Grid) Swap(a, b Pos) {
	ia, ib := g.index(a), g.index(b)
	g.Cells[ia], g.Cells[ib] = g.Cells[ib], g.Cells[ia]
}

// HasEmpty returns true if any cell is empty.
func (g *Grid) HasEmpty() bool {
	for _, s := range g.Cells {
		if s.IsEmpty() {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Symbol, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{N: g.N, Cells: cells}
}

// Equal returns true if both grids have the same size and contents.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.N != other.N {
		return false
	}
	for i, s := range g.Cells {
		if s != other.Cells[i] {
			return false
		}
	}
	return true
}

// Rows returns a copy of the grid as rows, bottom row first.
func (g *Grid) Rows() [][]Symbol {
	rows := make([][]Symbol, g.N)
	for r := range g.N {
		rows[r] = make([]Symbol, g.N)
		copy(rows[r], g.Cells[r*g.N:(r+1)*g.N])
	}
	return rows
}

// String renders the grid top row first, one digit per symbol and '.' for empty.
// Intended for test failure output.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := g.N - 1; r >= 0; r-- {
		for c := range g.N {
			s := g.At(P(r, c))
			if s.IsEmpty() {
				sb.WriteByte('.')
			} else {
				fmt.Fprintf(&sb, "%d", s)
			}
		}
		if r > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
