package tetris

import (
	"fmt"

	"github.com/vovakirdan/neontris/internal/core"
)

// Board frame: two screen columns per cell plus the border.
const (
	boardW = Cols*2 + 2
	boardH = Rows + 2
	hudGap = 2
	hudW   = 16
)

// Render draws the board, the falling piece, the HUD and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall || dst.Width() < minScreenW || dst.Height() < minScreenH {
		renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	snap := g.engine.Snapshot()
	area := core.CenteredIn(core.NewRect(0, 0, dst.Width(), dst.Height()), minScreenW, minScreenH)

	dst.DrawTextColored(area.X+(boardW-len(g.Title()))/2, area.Y, g.Title(), core.ColorBrightMagenta)

	box := core.NewRect(area.X, area.Y+1, boardW, boardH)
	dst.DrawBoxColored(box, core.ColorMagenta)
	renderCells(dst, snap, box.X+1, box.Y+1)

	g.renderHUD(dst, snap, box.Right()+hudGap, box.Y+1)

	switch {
	case snap.State == StateGameOver:
		renderOverlay(dst, "GAME OVER", fmt.Sprintf("Score %d  -  R to restart", snap.Score))
	case g.paused:
		renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func renderCells(dst *core.Screen, snap Snapshot, ox, oy int) {
	for row := range Rows {
		for col := range Cols {
			x, y := ox+col*2, oy+row
			if s := snap.Cell(col, row); s != ShapeNone {
				dst.SetColored(x, y, '█', s.Color())
				dst.SetColored(x+1, y, '█', s.Color())
				continue
			}
			dst.SetColored(x, y, '·', core.ColorGray)
		}
	}
}

func (g *Game) renderHUD(dst *core.Screen, snap Snapshot, x, y int) {
	stats := []struct {
		label string
		value string
	}{
		{"SCORE", fmt.Sprintf("%d", snap.Score)},
		{"LINES", fmt.Sprintf("%d", snap.Lines)},
		{"LEVEL", fmt.Sprintf("%d", snap.Level)},
		{"SPEED", fmt.Sprintf("%dms", snap.DropInterval.Milliseconds())},
	}
	for i, s := range stats {
		dst.DrawTextColored(x, y+i*3, s.label, core.ColorGray)
		dst.DrawTextColored(x, y+i*3+1, s.value, core.ColorBrightCyan)
	}

	if g.flash != "" {
		dst.DrawTextColored(x, y+len(stats)*3, g.flash, core.ColorBrightYellow)
	}

	help := []string{"←→  move", "↑ x rotate", "↓   soft", "spc hard", "p   pause"}
	hy := y + boardH - 2 - len(help)
	for i, line := range help {
		dst.DrawTextColored(x, hy+i, line, core.ColorGray)
	}
}

// renderOverlay draws a bordered two-line message box in the middle of dst.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	w := max(len([]rune(line1)), len([]rune(line2))) + 4
	r := core.CenteredIn(core.NewRect(0, 0, dst.Width(), dst.Height()), w, 5)

	dst.DrawRect(r, ' ')
	dst.DrawBoxColored(r, core.ColorBrightWhite)
	dst.DrawTextColored(r.X+(r.W-len([]rune(line1)))/2, r.Y+1, line1, core.ColorBrightWhite)
	dst.DrawText(r.X+(r.W-len([]rune(line2)))/2, r.Y+3, line2)
}
