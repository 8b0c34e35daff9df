package match3

import (
	"testing"

	"github.com/vovakirdan/tilematch/internal/config"
	"github.com/vovakirdan/tilematch/internal/core"
	"github.com/vovakirdan/tilematch/internal/games/match3/engine"
	"github.com/vovakirdan/tilematch/internal/registry"
)

func testConfig() config.Match3Config {
	cfg := config.DefaultMatch3Config()
	cfg.Board.Symbols = config.SymbolNames(4)
	return cfg
}

func runtimeConfig(seed int64) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	return cfg
}

func newClassic(t *testing.T, cfg config.Match3Config, seed int64) *Game {
	t.Helper()
	g := NewClassic(cfg)
	g.Reset(runtimeConfig(seed))
	if g.eng == nil {
		t.Fatalf("engine not created: %s", g.message)
	}
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// findSwap returns the first adjacent pair whose swap does (or does not) match.
func findSwap(t *testing.T, g *Game, match bool) (engine.Pos, engine.Pos) {
	t.Helper()
	grid := g.eng.Grid()
	for row := range grid.N {
		for col := range grid.N {
			a := engine.P(row, col)
			for _, b := range []engine.Pos{engine.P(row, col+1), engine.P(row+1, col)} {
				if !grid.InBounds(b) {
					continue
				}
				grid.Swap(a, b)
				found := len(engine.FindMatches(grid)) > 0
				grid.Swap(a, b)
				if found == match {
					return a, b
				}
			}
		}
	}
	t.Fatalf("no swap with match=%v on board\n%s", match, grid)
	return engine.Pos{}, engine.Pos{}
}

// swapVia drives the cursor-and-select path and returns the second step.
func swapVia(g *Game, a, b engine.Pos) core.StepResult {
	g.cursor = a
	g.Step(frame(core.ActionSelect))
	g.cursor = b
	return g.Step(frame(core.ActionSelect))
}

func hasEvent(res core.StepResult, kind core.EventKind) bool {
	for _, e := range res.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"match3", "match3_campaign"} {
		if !registry.Exists(id) {
			t.Errorf("%s not registered", id)
			continue
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%s): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, want %q", g.ID(), id)
		}
	}
}

func TestResetIsDeterministic(t *testing.T) {
	a := newClassic(t, testConfig(), 99)
	b := newClassic(t, testConfig(), 99)

	sa, sb := a.Snapshot(), b.Snapshot()
	if sa.Board.Dimension != 8 {
		t.Errorf("dimension = %d, want 8", sa.Board.Dimension)
	}
	for r := range sa.Board.Rows {
		for c := range sa.Board.Rows[r] {
			if sa.Board.Rows[r][c] != sb.Board.Rows[r][c] {
				t.Fatalf("boards differ at (%d,%d)", r, c)
			}
		}
	}
}

func TestConfigSeedOverridesRuntimeSeed(t *testing.T) {
	cfg := testConfig()
	cfg.Seed = 1234
	a := newClassic(t, cfg, 1)
	b := newClassic(t, cfg, 2)
	if a.seed != 1234 || b.seed != 1234 {
		t.Errorf("seeds = %d, %d, want 1234", a.seed, b.seed)
	}
}

func TestCursorMovesAndClamps(t *testing.T) {
	g := newClassic(t, testConfig(), 1)
	g.cursor = engine.P(7, 0)

	g.Step(frame(core.ActionUp))
	if g.cursor.Row != 7 {
		t.Errorf("cursor row = %d, want clamped to 7", g.cursor.Row)
	}
	g.Step(frame(core.ActionDown))
	if g.cursor.Row != 6 {
		t.Errorf("cursor row = %d, want 6", g.cursor.Row)
	}
	g.Step(frame(core.ActionLeft))
	if g.cursor.Col != 0 {
		t.Errorf("cursor col = %d, want clamped to 0", g.cursor.Col)
	}
	g.Step(frame(core.ActionRight))
	if g.cursor.Col != 1 {
		t.Errorf("cursor col = %d, want 1", g.cursor.Col)
	}
}

func TestCancelClearsSelection(t *testing.T) {
	g := newClassic(t, testConfig(), 1)
	g.Step(frame(core.ActionSelect))
	if _, ok := g.sel.Selected(); !ok {
		t.Fatal("select should mark the cursor tile")
	}
	g.Step(frame(core.ActionCancel))
	if _, ok := g.sel.Selected(); ok {
		t.Error("cancel should clear the selection")
	}
}

func TestAcceptedSwapViaSelection(t *testing.T) {
	g := newClassic(t, testConfig(), 5)
	a, b := findSwap(t, g, true)

	res := swapVia(g, a, b)
	if !hasEvent(res, core.EventMoveAccepted) {
		t.Fatalf("events = %+v, want a move_accepted event", res.Events)
	}
	if got := g.eng.MovesRemaining(); got != 29 {
		t.Errorf("moves = %d, want 29", got)
	}
	if res.State.Score < engine.MinRun {
		t.Errorf("score = %d, want at least %d", res.State.Score, engine.MinRun)
	}
	if _, ok := g.sel.Selected(); ok {
		t.Error("selection should be cleared after a swap")
	}
}

func TestRejectedSwapKeepsMoves(t *testing.T) {
	g := newClassic(t, testConfig(), 5)
	a, b := findSwap(t, g, false)
	before := g.eng.Snapshot()

	res := swapVia(g, a, b)
	if !hasEvent(res, core.EventMoveRejected) {
		t.Fatalf("events = %+v, want a move_rejected event", res.Events)
	}
	after := g.eng.Snapshot()
	if after.MovesRemaining != before.MovesRemaining || after.Score != before.Score {
		t.Errorf("rejected swap changed state: %+v -> %+v", before, after)
	}
	if g.message != "No match" {
		t.Errorf("message = %q, want No match", g.message)
	}
}

func TestEventsAreDrainedEachStep(t *testing.T) {
	g := newClassic(t, testConfig(), 5)
	a, b := findSwap(t, g, true)
	swapVia(g, a, b)

	if res := g.Step(core.NewInputFrame()); len(res.Events) != 0 {
		t.Errorf("idle step returned events %+v", res.Events)
	}
}

func TestLastMoveEndsClassicGame(t *testing.T) {
	cfg := testConfig()
	cfg.Moves = 1
	g := newClassic(t, cfg, 5)
	a, b := findSwap(t, g, true)

	res := swapVia(g, a, b)
	if !res.State.GameOver {
		t.Fatal("game should be over after the last move")
	}
	if !hasEvent(res, core.EventGameOver) {
		t.Errorf("events = %+v, want game_over", res.Events)
	}

	// Input after game over is ignored.
	before := g.Snapshot()
	g.Step(frame(core.ActionRight))
	if g.Snapshot().Cursor != before.Cursor {
		t.Error("cursor moved after game over")
	}
}

func TestSwapLeavingNoMovesEndsGame(t *testing.T) {
	cfg := testConfig()
	cfg.Board.Size = 3
	cfg.Moves = 10

	checked, stuck := 0, 0
	for seed := range int64(200) {
		g := NewClassic(cfg)
		g.Reset(runtimeConfig(seed))
		if g.gameOver {
			continue
		}
		a, b := findSwap(t, g, true)
		res := swapVia(g, a, b)
		checked++

		wantOver := !g.eng.HasPossibleMove()
		if res.State.GameOver != wantOver {
			t.Fatalf("seed %d: game over = %v, want %v on board\n%s", seed, res.State.GameOver, wantOver, g.eng.Grid())
		}
		if wantOver {
			stuck++
			if g.message != "No moves left" || !hasEvent(res, core.EventGameOver) {
				t.Errorf("seed %d: message %q, events %+v", seed, g.message, res.Events)
			}
		}
	}
	if checked == 0 || stuck == 0 {
		t.Fatalf("checked %d boards, %d stuck; want both nonzero", checked, stuck)
	}
}

func TestZeroMovesStartsOver(t *testing.T) {
	cfg := testConfig()
	cfg.Moves = 0
	g := newClassic(t, cfg, 5)
	if res := g.Step(core.NewInputFrame()); !res.State.GameOver || !hasEvent(res, core.EventGameOver) {
		t.Errorf("zero-move game: state %+v events %+v", res.State, res.Events)
	}
}

func TestPauseToggles(t *testing.T) {
	g := newClassic(t, testConfig(), 1)
	g.cursor = engine.P(3, 3)

	if res := g.Step(frame(core.ActionPause)); !res.State.Paused {
		t.Fatal("pause should set Paused")
	}
	g.Step(frame(core.ActionRight))
	if g.cursor.Col != 3 {
		t.Error("cursor moved while paused")
	}
	if res := g.Step(frame(core.ActionPause)); res.State.Paused {
		t.Error("second pause should resume")
	}
}

func TestCampaignLevelClearAdvances(t *testing.T) {
	g := NewCampaign(testConfig())
	g.Reset(runtimeConfig(3))
	if g.level.Size != levels[0].Size {
		t.Fatalf("level size = %d, want %d", g.level.Size, levels[0].Size)
	}
	g.level.Target = 1

	a, b := findSwap(t, g, true)
	res := swapVia(g, a, b)
	if !hasEvent(res, core.EventLevelCleared) {
		t.Fatalf("events = %+v, want level_cleared", res.Events)
	}
	if !res.State.Paused {
		t.Error("level clear overlay should pause the game")
	}
	cleared := res.State.Score

	for range levelClearSeconds * g.tickRate {
		g.Step(core.NewInputFrame())
	}
	if g.levelIndex != 1 {
		t.Fatalf("levelIndex = %d, want 1", g.levelIndex)
	}
	if g.banked != cleared || g.Score() != cleared {
		t.Errorf("banked = %d score = %d, want %d", g.banked, g.Score(), cleared)
	}
	if g.eng.MovesRemaining() != levels[1].Moves {
		t.Errorf("moves = %d, want %d", g.eng.MovesRemaining(), levels[1].Moves)
	}
}

func TestCampaignStartLevel(t *testing.T) {
	SetStartLevel(3)
	g := NewCampaign(testConfig())
	g.Reset(runtimeConfig(3))
	if g.levelIndex != 2 {
		t.Errorf("levelIndex = %d, want 2", g.levelIndex)
	}

	// The start level is used once.
	g.Reset(runtimeConfig(3))
	if g.levelIndex != 0 {
		t.Errorf("levelIndex after second reset = %d, want 0", g.levelIndex)
	}
}

func TestCampaignStartAtIsPerInstance(t *testing.T) {
	g := NewCampaign(testConfig())
	other := NewCampaign(testConfig())
	g.StartAt(5)

	g.Reset(runtimeConfig(4))
	other.Reset(runtimeConfig(4))
	if g.levelIndex != 4 {
		t.Errorf("levelIndex = %d, want 4", g.levelIndex)
	}
	if other.levelIndex != 0 {
		t.Errorf("other levelIndex = %d, want 0", other.levelIndex)
	}

	g.StartAt(LevelCount() + 1)
	g.Reset(runtimeConfig(4))
	if g.levelIndex != 0 {
		t.Errorf("out of range StartAt gave levelIndex %d, want 0", g.levelIndex)
	}
}

func TestCampaignFinalLevelWins(t *testing.T) {
	SetStartLevel(LevelCount())
	g := NewCampaign(testConfig())
	g.Reset(runtimeConfig(8))
	g.level.Target = 1

	a, b := findSwap(t, g, true)
	swapVia(g, a, b)
	var res core.StepResult
	for range levelClearSeconds * g.tickRate {
		res = g.Step(core.NewInputFrame())
	}
	if !g.won || !res.State.GameOver {
		t.Errorf("won = %v, state = %+v", g.won, res.State)
	}
	if !hasEvent(res, core.EventGameOver) {
		t.Errorf("final step events = %+v, want game_over", res.Events)
	}
}
