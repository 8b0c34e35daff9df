package match3

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tilematch/internal/config"
	"github.com/vovakirdan/tilematch/internal/core"
	"github.com/vovakirdan/tilematch/internal/games/match3/engine"
)

const (
	cellWidth = 3 // Bracket, glyph, bracket
	hudHeight = 3
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.eng == nil {
		dst.DrawTextCentered(g.screenH/2, g.message)
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	n := g.level.Size
	boardW := n*cellWidth + 2
	boardH := n + 2
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	g.renderFooter(dst, boardY+boardH)
	g.renderOverlays(dst, boardX+boardW/2, boardY+boardH/2)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws title, score, moves and level info above the board.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	dst.DrawTextCentered(0, g.Title())

	dst.DrawTextColored(boardX, 1, fmt.Sprintf("Score: %d", g.Score()), core.ColorBrightYellow)

	moves := fmt.Sprintf("Moves: %d", g.eng.MovesRemaining())
	dst.DrawTextColored(boardX+boardW-len(moves), 1, moves, core.ColorBrightCyan)

	if g.mode == ModeCampaign {
		info := fmt.Sprintf("Level %d/%d  Target: %d/%d", g.levelIndex+1, LevelCount(), g.eng.Score(), g.level.Target)
		dst.DrawTextCentered(2, info)
	}
}

// renderBoard draws the framed grid. Row 0 is the bottom line of the frame.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	n := g.level.Size
	dst.DrawBoxColored(core.NewRect(boardX, boardY, n*cellWidth+2, n+2), core.ColorGray)

	sel, hasSel := g.sel.Selected()
	for row := range n {
		y := boardY + 1 + (n - 1 - row)
		for col := range n {
			x := boardX + 1 + col*cellWidth
			p := engine.P(row, col)

			sym, _ := g.eng.Cell(row, col)
			style := g.styleOf(sym)
			dst.SetColored(x+1, y, style.Glyph, style.Color)

			switch {
			case hasSel && p == sel:
				dst.SetColored(x, y, '<', core.ColorBrightYellow)
				dst.SetColored(x+2, y, '>', core.ColorBrightYellow)
			case p == g.cursor:
				dst.SetColored(x, y, '[', core.ColorBrightWhite)
				dst.SetColored(x+2, y, ']', core.ColorBrightWhite)
			}
		}
	}
}

// styleOf maps an engine symbol to its glyph and color.
func (g *Game) styleOf(s engine.Symbol) config.SymbolStyle {
	i := int(s) - 1
	if i < 0 || i >= len(g.styles) {
		return config.SymbolStyle{Glyph: '?'}
	}
	return g.styles[i]
}

// renderFooter draws the last event message, the no-moves hint and controls.
func (g *Game) renderFooter(dst *core.Screen, y int) {
	if g.message != "" {
		dst.DrawTextCentered(y, g.message)
	}
	if g.stuck {
		dst.DrawTextCentered(y+1, "No moves left")
	}
	dst.DrawTextCentered(y+2, "Space: select  Esc: cancel  P: pause")
}

// renderOverlays draws pause, level and end-of-game boxes.
func (g *Game) renderOverlays(dst *core.Screen, centerX, centerY int) {
	switch {
	case g.paused:
		drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
	case g.levelCleared:
		title := fmt.Sprintf("Target %d reached!", g.level.Target)
		next := fmt.Sprintf("Next: Level %d", g.levelIndex+2)
		if g.levelIndex >= LevelCount()-1 {
			next = "Final level complete!"
		}
		drawOverlay(dst, centerX, centerY, title, next)
	case g.won:
		drawOverlay(dst, centerX, centerY, "CAMPAIGN COMPLETE!", fmt.Sprintf("Final score: %d", g.Score()), "Press R to restart")
	case g.gameOver:
		drawOverlay(dst, centerX, centerY, "GAME OVER", g.message, fmt.Sprintf("Score: %d", g.Score()), "Press R to restart")
	}
}

// drawOverlay draws a boxed block of centered lines.
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	width := 0
	for _, line := range lines {
		width = max(width, utf8.RuneCountInString(line))
	}

	box := core.NewRect(centerX-(width+4)/2, centerY-(len(lines)+2)/2, width+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, line := range lines {
		dst.DrawText(centerX-utf8.RuneCountInString(line)/2, box.Y+1+i, line)
	}
}
