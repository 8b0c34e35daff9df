package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tilematch/internal/core"
	"github.com/vovakirdan/tilematch/internal/games/match3"
	"github.com/vovakirdan/tilematch/internal/platform/tui"
	"github.com/vovakirdan/tilematch/internal/registry"
	"github.com/vovakirdan/tilematch/internal/storage"
)

var (
	flagLevel  int
	flagPlayer string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (match3 when omitted).

Controls:
  Arrows/WASD/hjkl - Move cursor
  Space/Enter      - Select a tile, then a neighbour to swap
  Esc              - Cancel selection
  P                - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit
  Ctrl+S           - Save a text screenshot

Difficulty options:
  easy   - More moves, four symbols
  normal - Config as written
  hard   - Fewer moves, one extra symbol

Examples:
  tilematch play
  tilematch play match3 --difficulty hard
  tilematch play match3_campaign --level 4
  tilematch play --config ./my-board.yaml --seed 7`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Campaign start level (1-based)")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name recorded with your scores")
}

// terminalConfig builds a runtime config from the current terminal size.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the score database. Failure is reported but not fatal.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "match3"
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tilematch list' to see available games.")
		os.Exit(1)
	}
	if flagLevel < 0 || flagLevel > match3.LevelCount() {
		fatalf("--level must be between 1 and %d", match3.LevelCount())
	}

	gameCfg, err := loadGameConfig()
	if err != nil {
		fatalf("%v", err)
	}

	logger, closer, err := newLogger()
	if err != nil {
		fatalf("%v", err)
	}
	defer closer.Close()

	match3.SetStartLevel(flagLevel)
	game, err := registry.Create(gameID)
	if err != nil {
		fatalf("creating game: %v", err)
	}

	store := openStore()
	notifier := tui.NewNotifier(logger, bellWriter(gameCfg.Notify.Bell))
	runErr := tui.Run(game, store, terminalConfig(), tui.ModelOptions{
		Player:   playerName(),
		Notifier: notifier,
	})

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fatalf("running game: %v", runErr)
	}
}

// bellWriter returns the terminal when the bell is enabled.
func bellWriter(enabled bool) io.Writer {
	if !enabled {
		return nil
	}
	return os.Stdout
}

// playerName prefers --player, then the login name.
func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return storage.DefaultPlayer
}
