package stacker

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-stacker/internal/core"
)

// Visual characters for rendering
const (
	StoppedGlyph = '█'
	ActiveGlyph  = '▓'
	HeartGlyph   = '♥'
	GroundGlyph  = '▀'
)

// Minimum terminal size the playfield can be drawn in.
const (
	MinScreenW = 30
	MinScreenH = 12
)

// Render draws the tower, HUD and overlays into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}

	g.renderHUD(dst)

	field := Playfield(dst)
	dst.DrawBox(field)
	g.renderStack(dst, field)

	dst.DrawTextCentered(dst.Height()-1, "SPACE place  P pause  ESC menu  Q quit")

	g.renderOverlay(dst)
}

// Playfield returns the rectangle, border included, that holds the tower.
// The box keeps a roughly square aspect so the field does not look
// stretched on wide terminals.
func Playfield(dst *core.Screen) core.Rect {
	h := dst.Height() - 2 // HUD row above, help row below
	w := min(dst.Width(), h*2+2)
	x := (dst.Width() - w) / 2
	return core.NewRect(x, 1, w, h)
}

// renderHUD draws score, lives, power-up, streak and best score.
func (g *Game) renderHUD(dst *core.Screen) {
	st := g.machine.State()

	scoreText := fmt.Sprintf("Score: %d", st.Score)
	if win := g.machine.Config().Gameplay.WinScore; win > 0 {
		scoreText = fmt.Sprintf("Score: %d/%d", st.Score, win)
	}
	dst.DrawText(1, 0, scoreText)

	x := len(scoreText) + 3
	lives := strings.Repeat(string(HeartGlyph), max(st.Lives, 0))
	if lives == "" {
		lives = "-"
	}
	dst.DrawTextColor(x, 0, lives, core.ColorBrightRed)
	x += len([]rune(lives)) + 2

	if st.PowerUp != PowerUpNone {
		dst.DrawTextColor(x, 0, st.PowerUp.String(), st.PowerUp.Color())
		x += len(st.PowerUp.String()) + 2
	}

	if st.Streak > 0 {
		dst.DrawTextColor(x, 0, fmt.Sprintf("Streak: %d", st.Streak), core.ColorGray)
	}

	best := fmt.Sprintf("Best: %d", g.HighScore())
	dst.DrawText(dst.Width()-len(best)-1, 0, best)
}

// renderStack maps field coordinates onto the inner area of the box.
// Each block takes one terminal row. When the tower is taller than the box
// the camera follows the top, keeping a quarter of the box free above it.
func (g *Game) renderStack(dst *core.Screen, box core.Rect) {
	inner := core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2)
	if inner.W <= 0 || inner.H <= 0 {
		return
	}

	stack := g.machine.stack
	fieldW := g.machine.cfg.Field.Width
	scale := float64(inner.W) / fieldW

	visible := inner.H - inner.H/4
	first := max(0, len(stack)-visible)

	// The ground is visible until the tower starts scrolling.
	if first == 0 {
		dst.DrawHLine(inner.X, inner.Bottom()-1, inner.W, GroundGlyph)
	}

	for i := first; i < len(stack); i++ {
		b := stack[i]
		y := inner.Bottom() - 2 - (i - first)
		if first > 0 {
			y++
		}
		if y < inner.Y || y >= inner.Bottom() {
			continue
		}

		x0 := int(math.Floor(b.X * scale))
		x1 := int(math.Ceil((b.X + b.Width) * scale))
		if x1 <= x0 && b.Width > 0 {
			x1 = x0 + 1
		}
		x0 = core.Clamp(x0, 0, inner.W)
		x1 = core.Clamp(x1, 0, inner.W)

		glyph := StoppedGlyph
		if !b.Stopped {
			glyph = ActiveGlyph
		}
		dst.FillRect(core.NewRect(inner.X+x0, y, x1-x0, 1), glyph, b.Color)
	}
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	st := g.machine.State()
	switch {
	case g.paused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case st.GameOver:
		drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  SPACE or R to restart", st.Score))
	case st.Won:
		drawCenteredBox(dst, "YOU WIN!", fmt.Sprintf("Final Score: %d  |  SPACE or R to restart", st.Score))
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := min(max(len(title), len(subtitle))+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+max((boxW-len(subtitle))/2, 1), boxY+3, subtitle)
}
