package match3

// Level defines one campaign stage.
type Level struct {
	Size    int // Board is Size x Size
	Symbols int // Palette size
	Moves   int // Swaps available
	Target  int // Score needed to clear; 0 means no target
}

// levels is the campaign. Boards grow and palettes widen as it goes on.
var levels = []Level{
	{Size: 6, Symbols: 4, Moves: 20, Target: 60},
	{Size: 6, Symbols: 4, Moves: 18, Target: 80},
	{Size: 7, Symbols: 5, Moves: 20, Target: 90},
	{Size: 7, Symbols: 5, Moves: 18, Target: 110},
	{Size: 8, Symbols: 5, Moves: 20, Target: 130},
	{Size: 8, Symbols: 6, Moves: 22, Target: 120},
	{Size: 8, Symbols: 6, Moves: 20, Target: 140},
	{Size: 9, Symbols: 6, Moves: 22, Target: 170},
	{Size: 9, Symbols: 7, Moves: 24, Target: 150},
	{Size: 9, Symbols: 7, Moves: 22, Target: 180},
}

// LevelCount returns the number of campaign levels.
func LevelCount() int {
	return len(levels)
}

// GetLevel returns the level at index, or nil when out of range.
func GetLevel(index int) *Level {
	if index < 0 || index >= len(levels) {
		return nil
	}
	l := levels[index]
	return &l
}
