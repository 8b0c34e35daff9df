package match3

import "github.com/vovakirdan/tilematch/internal/games/match3/engine"

// Selector turns two tile picks into one swap request.
//
// Picking with nothing selected selects the tile. Picking the selected tile
// again keeps it. Picking an orthogonal neighbour requests a swap and clears
// the selection. Picking any other tile moves the selection there.
type Selector struct {
	selected engine.Pos
	active   bool
}

// Pick applies one pick at p. When swap is true the caller should try
// from <-> to.
func (s *Selector) Pick(p engine.Pos) (from, to engine.Pos, swap bool) {
	switch {
	case !s.active:
		s.selected, s.active = p, true
	case s.selected == p:
	case s.selected.Adjacent(p):
		from, to = s.selected, p
		s.Clear()
		return from, to, true
	default:
		s.selected = p
	}
	return engine.Pos{}, engine.Pos{}, false
}

// Selected returns the selected tile, if any.
func (s *Selector) Selected() (engine.Pos, bool) {
	return s.selected, s.active
}

// Clear drops the selection.
func (s *Selector) Clear() {
	s.selected, s.active = engine.Pos{}, false
}
