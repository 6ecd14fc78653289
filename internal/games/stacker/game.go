package stacker

import (
	"github.com/vovakirdan/tui-stacker/internal/config"
	"github.com/vovakirdan/tui-stacker/internal/core"
	"github.com/vovakirdan/tui-stacker/internal/registry"
)

// Mode selects the win condition.
type Mode int

const (
	ModeClassic Mode = iota // Win at the configured score
	ModeEndless             // Stack until the lives run out
)

// Game IDs used for the CLI and score storage.
const (
	IDClassic = "stacker"
	IDEndless = "stacker_endless"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
// Unknown names clear the preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game adapts the stacking Machine to the platform loop.
type Game struct {
	mode      Mode
	runtime   core.RuntimeConfig
	machine   *Machine
	paused    bool
	highScore int
	preset    config.DifficultyPreset // Per-instance override of difficultyPreset
	hasPreset bool
}

// New creates a classic game instance.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewEndless creates a game instance without a win score.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return IDEndless
	}
	return IDClassic
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Cube Stacker (Endless)"
	}
	return "Cube Stacker"
}

// Reset loads the configuration and starts a fresh run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadStacker(configPath)
	if err != nil {
		cfg = config.DefaultStackerConfig()
	}
	preset := difficultyPreset
	if g.hasPreset {
		preset = g.preset
	}
	config.ApplyStackerPreset(&cfg, preset)
	g.ResetWithConfig(runtime, cfg)
}

// SetDifficulty overrides the package preset for this instance only.
// Sessions sharing a process pick their own difficulty this way.
// An empty or unknown name means "use the config file as is".
func (g *Game) SetDifficulty(preset string) {
	g.preset = config.ParsePreset(preset)
	g.hasPreset = true
}

// ResetWithConfig starts a fresh run with an explicit configuration,
// bypassing the config search path.
func (g *Game) ResetWithConfig(runtime core.RuntimeConfig, cfg config.StackerConfig) {
	g.runtime = runtime
	if g.mode == ModeEndless {
		cfg.Gameplay.WinScore = 0
	}
	g.machine = NewMachine(cfg, runtime.Seed)
	g.paused = false
}

// Step advances the game by one tick.
// A place action is applied before the active block moves.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	st := g.machine.State()

	if in.Has(core.ActionPause) && st.Playing() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionPlace), in.Has(core.ActionConfirm):
		g.machine.Place()
	case in.Has(core.ActionRestart) && !st.Playing():
		g.machine.Place()
	}

	g.machine.Tick()

	return core.StepResult{
		State:  g.State(),
		Events: g.machine.Drain(),
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := g.machine.State()
	return core.GameState{
		Score:    st.Score,
		GameOver: st.GameOver,
		Won:      st.Won,
		Paused:   g.paused,
	}
}

// Machine exposes the underlying state machine to frontends that draw
// blocks themselves.
func (g *Game) Machine() *Machine {
	return g.machine
}

// SetHighScore sets the best stored score shown in the HUD.
func (g *Game) SetHighScore(score int) {
	g.highScore = score
}

// HighScore returns the best score shown in the HUD, including the
// current run.
func (g *Game) HighScore() int {
	return max(g.highScore, g.machine.State().Score)
}

// Register the games with the registry
func init() {
	registry.Register(IDClassic, func() registry.Game {
		return New()
	})
	registry.Register(IDEndless, func() registry.Game {
		return NewEndless()
	})
}
