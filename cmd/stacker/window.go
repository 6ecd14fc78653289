package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-stacker/internal/core"
	"github.com/vovakirdan/tui-stacker/internal/games/stacker"
	"github.com/vovakirdan/tui-stacker/internal/platform/window"
)

var (
	flagScale float64
	flagMute  bool
)

var windowCmd = &cobra.Command{
	Use:   "window [mode]",
	Short: "Play a mode in a desktop window",
	Long: `Open the stacker in a desktop window with sound.

Controls:
  Space/Enter - Drop the block (restart after the run ends)
  P           - Pause
  R           - Restart (after game over or win)
  Esc/Q       - Close the window

Examples:
  stacker window
  stacker window stacker_endless --scale 1.5
  stacker window --mute`,
	Args: cobra.RangeArgs(0, 1),
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window pixels per field unit")
	windowCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runWindow(_ *cobra.Command, args []string) {
	gameID := modeArg(args)
	applyGameFlags()

	game := stacker.New()
	if gameID == stacker.IDEndless {
		game = stacker.NewEndless()
	}

	store := openStore()
	cfg := core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed}

	runErr := window.Run(game, store, cfg, window.Options{Scale: flagScale, Mute: flagMute})

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running window: %v\n", runErr)
		os.Exit(1)
	}
}
