package tui

import (
	"fmt"

	"github.com/vovakirdan/frytris/internal/core"
	"github.com/vovakirdan/frytris/internal/engine"
)

// Game screen layout.
const (
	boardX      = 0
	boardY      = 0
	panelGap    = 2
	panelWidth  = 34
	previewSize = 4

	gameScreenW = engine.BoardWidth*cellWidth + 2 + panelGap + panelWidth
	gameScreenH = engine.BoardHeight + 2
)

// frame is everything drawn for one View call.
type frame struct {
	snap   engine.Snapshot
	banner string
	muted  bool
}

func boardRect() core.Rect {
	return core.NewRect(boardX, boardY, engine.BoardWidth*cellWidth+2, engine.BoardHeight+2)
}

func panelX() int {
	return boardRect().Right() + panelGap
}

// drawGame renders a whole frame into s.
func drawGame(s *core.Screen, f frame) {
	s.Clear()
	drawBoard(s, f.snap)
	drawPanel(s, f)
	drawOverlay(s, f.snap)
}

func drawBoard(s *core.Screen, snap engine.Snapshot) {
	r := boardRect()
	s.DrawBox(r, core.ColorGray)
	inner := r.Inset(1)

	grid := snap.Composite()
	for y, row := range grid {
		for x, c := range row {
			drawCell(s, inner.X+x*cellWidth, inner.Y+y, c)
		}
	}

	if snap.State != engine.StatePlaying {
		return
	}
	bounds := core.NewRect(0, 0, engine.BoardWidth, len(grid))
	for _, p := range snap.Ghost().Cells() {
		if !bounds.Contains(p.Col, p.Row) {
			continue
		}
		if grid[p.Row][p.Col].IsEmpty() {
			s.DrawTextColor(inner.X+p.Col*cellWidth, inner.Y+p.Row, "[]", core.ColorGray)
		}
	}
}

func drawPanel(s *core.Screen, f frame) {
	snap := f.snap
	x := panelX()

	s.DrawTextColor(x, 0, "F R Y T R I S", core.ColorOrange)

	stat := func(y int, label, value string) {
		s.DrawTextColor(x, y, label, core.ColorGray)
		s.DrawTextColor(x+10, y, value, core.ColorBrightWhite)
	}
	stat(2, "Score", fmt.Sprintf("%d", snap.Score))
	stat(3, "High", fmt.Sprintf("%d", snap.HighScore))
	stat(4, "Level", fmt.Sprintf("%d", snap.Level))
	stat(5, "Next lvl", fmt.Sprintf("%ds", snap.CountdownSeconds))
	stat(6, "Speed", fmt.Sprintf("%dms", snap.DropInterval.Milliseconds()))
	stat(7, "Mode", fmt.Sprintf("%s / %s", difficultyLabel(snap.Difficulty), snap.Rule))
	stat(9, "Lines", fmt.Sprintf("%d", snap.Stats.Lines))
	stat(10, "Combos", fmt.Sprintf("%d", snap.Stats.Combos))
	stat(11, "Pieces", fmt.Sprintf("%d", snap.Stats.Pieces))

	s.DrawTextColor(x+previewSize*cellWidth+4, 14, "NEXT", core.ColorGray)
	preview := core.NewRect(x, 13, previewSize*cellWidth+2, previewSize+2)
	s.DrawBox(preview, core.ColorGray)
	if snap.State != engine.StateIdle {
		drawPreview(s, preview.Inset(1), snap.Next.Shape)
	}

	if f.banner != "" {
		s.DrawTextColor(x, preview.Bottom()+1, f.banner, core.ColorBrightGreen)
	}
	if f.muted {
		s.DrawTextColor(x, preview.Bottom()+2, "sound off", core.ColorGray)
	}
}

// drawPreview centers a shape inside area, clipping anything larger.
func drawPreview(s *core.Screen, area core.Rect, shape engine.Shape) {
	offR := core.Clamp((previewSize-shape.Rows())/2, 0, previewSize)
	offC := core.Clamp((previewSize-shape.Cols())/2, 0, previewSize)
	for r := 0; r < core.Min(shape.Rows(), previewSize); r++ {
		for c := 0; c < core.Min(shape.Cols(), previewSize); c++ {
			cell := shape.At(r, c)
			if cell.IsEmpty() {
				continue
			}
			drawCell(s, area.X+(offC+c)*cellWidth, area.Y+offR+r, cell)
		}
	}
}

func drawOverlay(s *core.Screen, snap engine.Snapshot) {
	var lines []string
	switch snap.State {
	case engine.StateIdle:
		lines = []string{"READY?", "", pickerLine(snap.Difficulty), "", "ENTER to start"}
	case engine.StatePaused:
		lines = []string{"PAUSED", "", "p to resume"}
	case engine.StateGameOver:
		lines = []string{"GAME OVER", fmt.Sprintf("score %d", snap.Score), "", pickerLine(snap.Difficulty), "", "ENTER to retry"}
	default:
		return
	}

	inner := boardRect().Inset(1)
	_, cy := inner.Center()
	top := cy - len(lines)/2
	s.DrawRect(core.NewRect(inner.X, top-1, inner.W, len(lines)+2), ' ', core.ColorDefault)
	for i, line := range lines {
		color := core.ColorBrightWhite
		if i == 0 {
			color = core.ColorOrange
		}
		s.DrawTextCenteredIn(inner, top+i, line, color)
	}
}

func pickerLine(d engine.Difficulty) string {
	return "< " + difficultyLabel(d) + " >"
}

func difficultyLabel(d engine.Difficulty) string {
	if d.Label != "" {
		return d.Label
	}
	return d.Name
}
