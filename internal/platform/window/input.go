package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-stacker/internal/core"
)

// keyBindings maps window keys to game actions.
// Mirrors the terminal bindings so both frontends play the same.
var keyBindings = map[ebiten.Key]core.Action{
	ebiten.KeySpace:  core.ActionPlace,
	ebiten.KeyEnter:  core.ActionConfirm,
	ebiten.KeyR:      core.ActionRestart,
	ebiten.KeyP:      core.ActionPause,
	ebiten.KeyEscape: core.ActionBack,
	ebiten.KeyB:      core.ActionBack,
	ebiten.KeyQ:      core.ActionQuit,
}

// readInput builds an input frame from keys that went down this tick.
// justPressed is inpututil.IsKeyJustPressed in the running game.
// Back and Quit both close the window, so they are reported as quit.
func readInput(justPressed func(ebiten.Key) bool) (core.InputFrame, bool) {
	frame := core.NewInputFrame()
	quit := false
	for key, action := range keyBindings {
		if !justPressed(key) {
			continue
		}
		switch action {
		case core.ActionBack, core.ActionQuit:
			quit = true
		default:
			frame.Set(action)
		}
	}
	return frame, quit
}
