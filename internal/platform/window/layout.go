package window

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/vovakirdan/tui-stacker/internal/core"
	"github.com/vovakirdan/tui-stacker/internal/games/stacker"
)

// cameraOffset returns how far to shift the tower down so the topmost
// block stays headroom blocks below the top edge. Zero until the tower
// grows that tall.
func cameraOffset(stack []stacker.Block) float64 {
	if len(stack) == 0 {
		return 0
	}
	top := stack[len(stack)-1]
	limit := float64(headroom) * top.Height
	if top.Y >= limit {
		return 0
	}
	return limit - top.Y
}

// blockColor converts a block's palette color to RGBA. The moving block
// is drawn slightly darker so it reads as not yet placed.
func blockColor(b stacker.Block) color.RGBA {
	r, g, bl := b.Color.RGB()
	c := color.RGBA{R: r, G: g, B: bl, A: 0xff}
	if !b.Stopped {
		c.R = uint8(uint16(c.R) * 3 / 4) //#nosec G115 -- result <= 255
		c.G = uint8(uint16(c.G) * 3 / 4) //#nosec G115 -- result <= 255
		c.B = uint8(uint16(c.B) * 3 / 4) //#nosec G115 -- result <= 255
	}
	return c
}

// hudLeft formats score, hearts, streak and active power-up.
func hudLeft(game *stacker.Game, st stacker.State) string {
	var b strings.Builder

	if win := game.Machine().Config().Gameplay.WinScore; win > 0 {
		fmt.Fprintf(&b, "Score: %d/%d", st.Score, win)
	} else {
		fmt.Fprintf(&b, "Score: %d", st.Score)
	}
	fmt.Fprintf(&b, "  Lives: %d  Streak: %d", max(st.Lives, 0), st.Streak)
	if st.PowerUp != stacker.PowerUpNone {
		b.WriteString("  ")
		b.WriteString(st.PowerUp.String())
	}
	return b.String()
}

// overlayText returns the banner for paused or finished runs, or two empty
// strings while playing.
func overlayText(st core.GameState) (title, hint string) {
	switch {
	case st.Won:
		return "YOU WIN!", "Space or R to play again, Esc to quit"
	case st.GameOver:
		return "GAME OVER", "Space or R to try again, Esc to quit"
	case st.Paused:
		return "PAUSED", "P to resume"
	default:
		return "", ""
	}
}

// soundPriority orders tones when several events land on one tick.
// A perfect placement also reports Placed, so it must win over the click.
var soundPriority = []core.EventType{
	core.EventPerfect,
	core.EventMiss,
	core.EventPlaced,
}

// pickSound chooses the single tone to play for a tick's events.
// Returns -1 when no event has a tone.
func pickSound(events []core.Event) core.EventType {
	for _, want := range soundPriority {
		for _, e := range events {
			if e.Type == want {
				return want
			}
		}
	}
	return -1
}
