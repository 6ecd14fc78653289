package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-stacker/internal/config"
	"github.com/vovakirdan/tui-stacker/internal/games/stacker"
	"github.com/vovakirdan/tui-stacker/internal/platform/tui"
	"github.com/vovakirdan/tui-stacker/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode in the terminal",
	Long: `Start playing the specified mode (classic "stacker" by default).

Controls:
  Space/Enter - Drop the block (restart after the run ends)
  P           - Pause
  R           - Restart (after game over or win)
  Esc/B       - Leave the game
  Ctrl+S      - Save a text screenshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - 3 lives, wider perfect window, speed ramps from the start level
  normal - Start at 30% difficulty, progresses with score
  hard   - 1 life, tight perfect window, start at 70% difficulty
  fixed  - No speed progression

Examples:
  stacker play
  stacker play stacker_endless
  stacker play --difficulty hard
  stacker play --config ./my-stacker.yaml`,
	Args: cobra.RangeArgs(0, 1),
	Run:  runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, menuCmd, windowCmd} {
		cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom stacker config YAML")
		cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	}
}

// applyGameFlags hands --config and --difficulty to the stacker package.
// Exits when the config file cannot be loaded or the preset is unknown.
func applyGameFlags() {
	if err := checkGameFlags(flagConfig, flagDifficulty); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	stacker.SetConfigPath(flagConfig)
	stacker.SetDifficultyPreset(flagDifficulty)
}

// checkGameFlags loads a custom config once so a bad path or YAML fails
// before a game starts, and rejects unknown difficulty names.
func checkGameFlags(configPath, difficulty string) error {
	if configPath != "" {
		if _, err := config.LoadStacker(configPath); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	if difficulty != "" && config.ParsePreset(difficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (use easy, normal, hard or fixed)", difficulty)
	}
	return nil
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := modeArg(args)
	applyGameFlags()
	cfg := runtimeConfig()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()

	_, runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
