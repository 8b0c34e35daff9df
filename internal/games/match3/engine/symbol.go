package engine

import (
	"fmt"

	"github.com/samber/lo"
)

// MinPaletteSize is the smallest palette that can always satisfy the
// run-free initial fill: the left pair and the lower pair exclude at most
// two symbols, so a third one is always available.
const MinPaletteSize = 3

// Symbol identifies one tile kind. The zero value is Empty.
type Symbol uint8

// Empty marks a cell that has been cleared and not yet refilled.
// It only appears while a swap is being resolved.
const Empty Symbol = 0

// IsEmpty reports whether s is the transient empty value.
func (s Symbol) IsEmpty() bool {
	return s == Empty
}

// Palette is the finite set of symbols used for both fill and refill.
type Palette []Symbol

// NewPalette returns a palette of k symbols numbered 1..k.
func NewPalette(k int) Palette {
	p := make(Palette, 0, k)
	for i := 1; i <= k; i++ {
		p = append(p, Symbol(i))
	}
	return p
}

// validate checks size, emptiness and uniqueness.
func (p Palette) validate() error {
	if len(p) < MinPaletteSize {
		return fmt.Errorf("%w: palette has %d symbols, need at least %d", ErrInvalidConfig, len(p), MinPaletteSize)
	}
	if lo.Contains([]Symbol(p), Empty) {
		return fmt.Errorf("%w: palette contains the empty symbol", ErrInvalidConfig)
	}
	if len(lo.Uniq([]Symbol(p))) != len(p) {
		return fmt.Errorf("%w: palette contains duplicate symbols", ErrInvalidConfig)
	}
	return nil
}
