package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindMatches(t *testing.T) {
	tests := []struct {
		name string
		grid *Grid
		want []Pos
	}{
		{
			name: "no runs",
			grid: GridFromRows(
				[]Symbol{A, B, A},
				[]Symbol{B, A, B},
				[]Symbol{A, A, B},
			),
			want: []Pos{},
		},
		{
			name: "horizontal run",
			grid: GridFromRows(
				[]Symbol{A, A, A},
				[]Symbol{B, C, B},
				[]Symbol{C, B, C},
			),
			want: []Pos{P(0, 0), P(0, 1), P(0, 2)},
		},
		{
			name: "vertical run",
			grid: GridFromRows(
				[]Symbol{B, A, C},
				[]Symbol{C, A, B},
				[]Symbol{B, A, C},
			),
			want: []Pos{P(0, 1), P(1, 1), P(2, 1)},
		},
		{
			name: "cross shares its centre",
			grid: GridFromRows(
				[]Symbol{B, A, C},
				[]Symbol{A, A, A},
				[]Symbol{C, A, B},
			),
			want: []Pos{P(0, 1), P(1, 0), P(1, 1), P(1, 2), P(2, 1)},
		},
		{
			name: "empty cells never match",
			grid: GridFromRows(
				[]Symbol{Empty, Empty, Empty},
				[]Symbol{B, C, B},
				[]Symbol{C, B, C},
			),
			want: []Pos{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ElementsMatch(t, tt.want, FindMatches(tt.grid))
		})
	}
}

func TestFindMatchesLongRun(t *testing.T) {
	g := GridFromRows(
		[]Symbol{A, A, A, A},
		[]Symbol{B, C, B, C},
		[]Symbol{C, B, C, B},
		[]Symbol{B, C, B, C},
	)
	assert.Len(t, FindMatches(g), 4)
}

func TestDetectAndClear(t *testing.T) {
	g := GridFromRows(
		[]Symbol{A, A, A},
		[]Symbol{B, C, B},
		[]Symbol{C, B, C},
	)
	n, ok := DetectAndClear(g)
	assert.True(t, ok)
	assert.Equal(t, 3, n)
	for col := range 3 {
		assert.Equal(t, Empty, g.At(P(0, col)))
	}
	assert.Equal(t, B, g.At(P(1, 0)))

	n, ok = DetectAndClear(g)
	assert.False(t, ok)
	assert.Zero(t, n)
}
