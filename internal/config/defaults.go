package config

import (
	_ "embed"

	"github.com/vovakirdan/tilematch/internal/core"
)

//go:embed defaults/match3.yaml
var defaultMatch3YAML []byte

// SymbolStyle is how one symbol is drawn on the terminal.
type SymbolStyle struct {
	Glyph rune
	Color core.Color
}

// symbolOrder lists the known symbol names; presets grow palettes in this order.
var symbolOrder = []string{"ruby", "emerald", "sapphire", "topaz", "amethyst", "pearl", "onyx"}

var symbolStyles = map[string]SymbolStyle{
	"ruby":     {Glyph: '◆', Color: core.ColorBrightRed},
	"emerald":  {Glyph: '♣', Color: core.ColorBrightGreen},
	"sapphire": {Glyph: '●', Color: core.ColorBrightBlue},
	"topaz":    {Glyph: '★', Color: core.ColorBrightYellow},
	"amethyst": {Glyph: '♠', Color: core.ColorBrightMagenta},
	"pearl":    {Glyph: '○', Color: core.ColorBrightWhite},
	"onyx":     {Glyph: '■', Color: core.ColorGray},
}

// StyleFor returns the style of a known symbol name.
func StyleFor(name string) (SymbolStyle, bool) {
	s, ok := symbolStyles[name]
	return s, ok
}

// SymbolNames returns the first n known symbol names.
func SymbolNames(n int) []string {
	n = core.Clamp(n, 0, len(symbolOrder))
	out := make([]string, n)
	copy(out, symbolOrder)
	return out
}

// DefaultMatch3Config returns the default match-3 configuration.
func DefaultMatch3Config() Match3Config {
	return Match3Config{
		Board: BoardConfig{
			Size:    8,
			Symbols: SymbolNames(6),
		},
		Moves:  30,
		Seed:   0,
		Notify: NotifyConfig{Bell: true},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "match3", "match3_campaign":
		return defaultMatch3YAML
	default:
		return nil
	}
}
