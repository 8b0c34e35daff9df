// Package config provides YAML-based game configuration loading and
// difficulty presets for tilematch.
package config

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
)

// MinSymbols is the smallest symbol set a board can be filled with.
const MinSymbols = 3

// Match3Config contains all configuration for the match-3 game.
type Match3Config struct {
	Board  BoardConfig  `yaml:"board"`
	Moves  int          `yaml:"moves"`
	Seed   int64        `yaml:"seed"` // 0 means time-based
	Notify NotifyConfig `yaml:"notify"`
}

// BoardConfig defines the board size and the symbols painted on it.
type BoardConfig struct {
	Size    int      `yaml:"size"`
	Symbols []string `yaml:"symbols"` // Names from the symbol style table
}

// NotifyConfig controls how the platform announces game events.
type NotifyConfig struct {
	Bell bool `yaml:"bell"` // Ring the terminal bell on game over and level clear
}

// Validate reports every problem with the config at once.
func (c Match3Config) Validate() error {
	var errs []error
	if c.Board.Size < 1 {
		errs = append(errs, fmt.Errorf("board.size must be at least 1, got %d", c.Board.Size))
	}
	if n := len(lo.Uniq(c.Board.Symbols)); n < MinSymbols {
		errs = append(errs, fmt.Errorf("board.symbols needs at least %d distinct names, got %d", MinSymbols, n))
	}
	if len(lo.Uniq(c.Board.Symbols)) != len(c.Board.Symbols) {
		errs = append(errs, errors.New("board.symbols contains duplicates"))
	}
	for _, name := range c.Board.Symbols {
		if _, ok := StyleFor(name); !ok {
			errs = append(errs, fmt.Errorf("board.symbols: unknown symbol %q", name))
		}
	}
	if c.Moves < 0 {
		errs = append(errs, fmt.Errorf("moves must not be negative, got %d", c.Moves))
	}
	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}
