package engine

import "testing"

const (
	A Symbol = 1
	B Symbol = 2
	C Symbol = 3
)

// seqSource replays vals in order, wrapping around.
type seqSource struct {
	vals []int
	i    int
}

func (s *seqSource) IntN(n int) int {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v % n
}

func constSource(v int) *seqSource {
	return &seqSource{vals: []int{v}}
}

// recorder collects events in emission order.
type recorder struct {
	events []Event
}

func (r *recorder) OnEvent(e Event) {
	r.events = append(r.events, e)
}

func (r *recorder) kinds() []EventKind {
	kinds := make([]EventKind, 0, len(r.events))
	for _, e := range r.events {
		kinds = append(kinds, e.Kind())
	}
	return kinds
}

// engineWithGrid builds a three-symbol engine on a copy of g. src feeds the
// cascade refills only, since no initial fill runs.
func engineWithGrid(t *testing.T, g *Grid, src IntNSource, moves int) *Engine {
	t.Helper()
	e, err := newFromGrid(Config{
		Palette:       NewPalette(3),
		StartingMoves: moves,
	}, g, WithRand(src))
	if err != nil {
		t.Fatalf("newFromGrid: %v", err)
	}
	return e
}
