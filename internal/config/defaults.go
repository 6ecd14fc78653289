package config

import (
	_ "embed"
)

//go:embed defaults/stacker.yaml
var defaultStackerYAML []byte

// DefaultStackerConfig returns the default Cube Stacker configuration.
func DefaultStackerConfig() StackerConfig {
	return StackerConfig{
		Field: StackerField{
			Width:  600,
			Height: 600,
		},
		Blocks: StackerBlocks{
			BaseWidth: 100,
			Rows:      35,
			SpeedTable: []SpeedStep{
				{MinWidth: 90, Speed: 2.3},
				{MinWidth: 80, Speed: 2.5},
				{MinWidth: 70, Speed: 2.7},
				{MinWidth: 60, Speed: 2.9},
				{MinWidth: 50, Speed: 3.3},
				{MinWidth: 40, Speed: 3.5},
				{MinWidth: 30, Speed: 3.8},
				{MinWidth: 20, Speed: 4.6},
				{MinWidth: 10, Speed: 4.9},
			},
			MinSpeed: 5.3,
		},
		Gameplay: StackerGameplay{
			Lives:            2,
			WinScore:         35,
			PerfectTolerance: 0.9,
			HalveStreak:      7,
			LifeStreak:       10,
		},
		PowerUps: StackerPowerUps{
			Enabled:                true,
			Every:                  5,
			DoublePointsPlacements: 4,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 35,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "stacker", "stacker_endless":
		return defaultStackerYAML
	default:
		return nil
	}
}
