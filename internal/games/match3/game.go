// Package match3 adapts the match-3 engine to the platform: a keyboard cursor
// with single-tile selection, campaign levels, rendering into core.Screen and
// translation of engine events into platform events.
package match3

import (
	"errors"
	"fmt"
	"sync"

	"github.com/vovakirdan/tilematch/internal/config"
	"github.com/vovakirdan/tilematch/internal/core"
	"github.com/vovakirdan/tilematch/internal/games/match3/engine"
	"github.com/vovakirdan/tilematch/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic  Mode = "classic"
	ModeCampaign Mode = "campaign"
)

// levelClearSeconds is how long the level-cleared overlay stays up.
const levelClearSeconds = 2

// Game implements registry.Game for both match-3 modes.
type Game struct {
	mode     Mode
	cfg      config.Match3Config
	styles   []config.SymbolStyle // styles[i] draws engine symbol i+1
	tickRate int
	seed     int64

	eng    *engine.Engine
	cursor engine.Pos
	sel    Selector
	events []core.GameEvent

	banked     int // Score from cleared campaign levels
	levelIndex int
	startAt    int // Pending 1-based start level for the next Reset
	level      Level

	screenW int
	screenH int

	message         string
	stuck           bool // No swap on the board can match
	gameOver        bool
	levelCleared    bool
	won             bool
	paused          bool
	tooSmall        bool
	levelClearTicks int
}

var (
	settingsMu         sync.RWMutex
	activeConfig       = config.DefaultMatch3Config()
	selectedStartLevel int
)

// SetConfig sets the configuration used by games created afterwards.
func SetConfig(cfg config.Match3Config) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	activeConfig = cfg
}

// CurrentConfig returns the configuration new games will use.
func CurrentConfig() config.Match3Config {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return activeConfig
}

// SetStartLevel sets the campaign starting level (1-based). 0 means the first level.
func SetStartLevel(level int) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	selectedStartLevel = level
}

// takeStartLevel returns the pending start level index and resets it.
func takeStartLevel() int {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	level := selectedStartLevel
	selectedStartLevel = 0
	if level < 1 || level > LevelCount() {
		return 0
	}
	return level - 1
}

// NewClassic creates a single-board game driven by cfg.
func NewClassic(cfg config.Match3Config) *Game {
	return &Game{mode: ModeClassic, cfg: cfg}
}

// NewCampaign creates a campaign game. cfg supplies the symbol names and
// notification settings; board size and moves come from the levels.
func NewCampaign(cfg config.Match3Config) *Game {
	return &Game{mode: ModeCampaign, cfg: cfg}
}

func init() {
	registry.Register("match3", func() registry.Game {
		return NewClassic(CurrentConfig())
	})
	registry.Register("match3_campaign", func() registry.Game {
		return NewCampaign(CurrentConfig())
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeCampaign {
		return "match3_campaign"
	}
	return "match3"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeCampaign {
		return "Match-3 (Campaign)"
	}
	return "Match-3"
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/hjkl: Move | Space/Enter: Select | Esc: Cancel | P: Pause | R: Restart | Q: Quit"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.seed = cfg.Seed
	if g.cfg.Seed != 0 {
		g.seed = g.cfg.Seed
	}
	g.tickRate = max(1, cfg.TickRate)
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.banked = 0
	g.gameOver = false
	g.won = false
	g.paused = false
	g.levelCleared = false
	g.levelClearTicks = 0
	g.events = nil

	g.levelIndex = 0
	if g.mode == ModeCampaign {
		g.levelIndex = takeStartLevel()
		if g.startAt > 0 && g.startAt <= LevelCount() {
			g.levelIndex = g.startAt - 1
		}
		g.startAt = 0
	}
	g.startLevel()
}

// StartAt makes the next Reset begin the campaign at level (1-based).
// Unlike SetStartLevel it only affects this game instance.
func (g *Game) StartAt(level int) {
	g.startAt = level
}

// levelFor returns the board parameters of the current level.
func (g *Game) levelFor() Level {
	if g.mode == ModeClassic {
		return Level{Size: g.cfg.Board.Size, Symbols: len(g.cfg.Board.Symbols), Moves: g.cfg.Moves}
	}
	if l := GetLevel(g.levelIndex); l != nil {
		return *l
	}
	return *GetLevel(LevelCount() - 1)
}

// startLevel builds a fresh engine for the current level.
func (g *Game) startLevel() {
	g.level = g.levelFor()
	g.styles = g.symbolStyles(g.level.Symbols)
	g.sel.Clear()
	g.stuck = false
	g.message = ""

	eng, err := engine.New(engine.Config{
		Dimension:     g.level.Size,
		Palette:       engine.NewPalette(g.level.Symbols),
		StartingMoves: g.level.Moves,
		Seed:          g.seed + int64(g.levelIndex),
	}, engine.WithObserver(engine.ObserverFunc(g.onEngineEvent)))
	if err != nil {
		g.eng = nil
		g.gameOver = true
		g.message = err.Error()
		return
	}

	g.eng = eng
	mid := g.level.Size / 2
	g.cursor = engine.P(mid, mid)
	g.checkScreenSize()
	g.checkStuck()
	switch {
	case eng.GameOver():
		g.finish("Out of moves")
	case g.stuck:
		g.finish("No moves left")
	}
}

// symbolStyles picks a style per palette symbol, preferring configured names.
func (g *Game) symbolStyles(n int) []config.SymbolStyle {
	names := g.cfg.Board.Symbols
	if len(names) < n {
		names = config.SymbolNames(n)
	}
	styles := make([]config.SymbolStyle, 0, n)
	for _, name := range names[:n] {
		style, ok := config.StyleFor(name)
		if !ok {
			style = config.SymbolStyle{Glyph: '?', Color: core.ColorDefault}
		}
		styles = append(styles, style)
	}
	return styles
}

// onEngineEvent translates engine events into platform events. Game over is
// announced by trySwap instead, because a campaign level that reaches its
// target on the last move is cleared rather than lost.
func (g *Game) onEngineEvent(e engine.Event) {
	switch ev := e.(type) {
	case engine.MoveAccepted:
		msg := fmt.Sprintf("+%d", ev.ScoreDelta)
		if len(ev.Passes) > 1 {
			msg = fmt.Sprintf("+%d (chain x%d)", ev.ScoreDelta, len(ev.Passes))
		}
		g.message = msg
		g.emit(core.EventMoveAccepted, msg, ev.MovesRemaining)
	case engine.MoveRejectedNoMatch:
		g.message = "No match"
		g.emit(core.EventMoveRejected, g.message, g.eng.MovesRemaining())
	}
}

func (g *Game) emit(kind core.EventKind, msg string, moves int) {
	g.events = append(g.events, core.GameEvent{
		Kind:    kind,
		Message: msg,
		Score:   g.Score(),
		Moves:   moves,
	})
}

// SetScreenSize updates the layout without restarting the game.
func (g *Game) SetScreenSize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen can fit the board and HUD.
func (g *Game) checkScreenSize() {
	minW := max(g.level.Size*cellWidth+2, 40)
	minH := g.level.Size + hudHeight + 4
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// checkStuck flags a board where no swap can match.
func (g *Game) checkStuck() {
	if g.eng == nil || g.eng.GameOver() {
		return
	}
	g.stuck = !g.eng.HasPossibleMove()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	defer func() { g.events = nil }()

	if g.tooSmall {
		return g.result()
	}

	if in.Has(core.ActionPause) && !g.gameOver && !g.won {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	if g.levelCleared {
		g.levelClearTicks++
		if g.levelClearTicks >= levelClearSeconds*g.tickRate {
			g.advanceLevel()
		}
		return g.result()
	}

	if g.gameOver || g.won || g.eng == nil {
		return g.result()
	}

	g.moveCursor(in)

	if in.Has(core.ActionCancel) {
		g.sel.Clear()
	}
	if in.Has(core.ActionSelect) {
		if from, to, swap := g.sel.Pick(g.cursor); swap {
			g.trySwap(from, to)
		}
	}

	return g.result()
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

// moveCursor applies at most one direction per tick. Up on screen is a
// higher row, since row 0 is drawn at the bottom.
func (g *Game) moveCursor(in core.InputFrame) {
	n := g.level.Size
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Row = core.Clamp(g.cursor.Row+1, 0, n-1)
	case in.Has(core.ActionDown):
		g.cursor.Row = core.Clamp(g.cursor.Row-1, 0, n-1)
	case in.Has(core.ActionLeft):
		g.cursor.Col = core.Clamp(g.cursor.Col-1, 0, n-1)
	case in.Has(core.ActionRight):
		g.cursor.Col = core.Clamp(g.cursor.Col+1, 0, n-1)
	}
}

// trySwap forwards a swap to the engine and resolves level progress.
func (g *Game) trySwap(from, to engine.Pos) {
	res, err := g.eng.TrySwap(from, to)
	switch {
	case errors.Is(err, engine.ErrCascadeLimit):
		// The board is full but may hold runs; play continues.
		g.message = "Board did not settle"
	case err != nil:
		g.message = res.Reason.String()
		return
	}
	if !res.Accepted {
		return
	}

	if g.mode == ModeCampaign && g.level.Target > 0 && g.eng.Score() >= g.level.Target {
		g.levelCleared = true
		g.levelClearTicks = 0
		g.message = fmt.Sprintf("Level %d cleared!", g.levelIndex+1)
		g.emit(core.EventLevelCleared, g.message, g.eng.MovesRemaining())
		return
	}

	if g.eng.GameOver() {
		g.finish("Out of moves")
		return
	}

	g.checkStuck()
	if g.stuck {
		g.finish("No moves left")
	}
}

// finish ends the run and announces it.
func (g *Game) finish(reason string) {
	g.gameOver = true
	g.message = reason
	g.emit(core.EventGameOver, reason, g.eng.MovesRemaining())
}

// advanceLevel banks the level score and moves to the next level.
func (g *Game) advanceLevel() {
	g.levelCleared = false
	g.levelClearTicks = 0
	g.banked += g.eng.Score()

	if g.levelIndex >= LevelCount()-1 {
		g.won = true
		g.message = "Campaign complete!"
		g.emit(core.EventGameOver, g.message, g.eng.MovesRemaining())
		return
	}

	g.levelIndex++
	g.startLevel()
}

// Score returns the run total: banked levels plus the current board.
func (g *Game) Score() int {
	if g.eng == nil || g.won {
		return g.banked
	}
	return g.banked + g.eng.Score()
}

// Engine exposes the current board engine, e.g. for observers.
func (g *Game) Engine() *engine.Engine {
	return g.eng
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.Score(),
		GameOver: g.gameOver || g.won,
		Paused:   g.paused || g.tooSmall || g.levelCleared,
	}
}
