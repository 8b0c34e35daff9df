package config

// ApplyMatch3Preset adjusts the move budget and symbol count for a preset.
// Fewer symbols make matches easier to find.
func ApplyMatch3Preset(cfg *Match3Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Moves = cfg.Moves * 3 / 2
		if len(cfg.Board.Symbols) > 4 {
			cfg.Board.Symbols = cfg.Board.Symbols[:4]
		}
	case DifficultyHard:
		cfg.Moves = max(1, cfg.Moves*2/3)
		cfg.Board.Symbols = growSymbols(cfg.Board.Symbols, len(cfg.Board.Symbols)+1)
	}
}

// growSymbols appends known names not yet present until the set has n entries.
func growSymbols(symbols []string, n int) []string {
	out := append([]string(nil), symbols...)
	seen := make(map[string]bool, len(out))
	for _, s := range out {
		seen[s] = true
	}
	for _, name := range symbolOrder {
		if len(out) >= n {
			break
		}
		if !seen[name] {
			out = append(out, name)
		}
	}
	return out
}
