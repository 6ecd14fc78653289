// Package config provides YAML-based game configuration loading and
// difficulty management for the stacker.
package config

import "sort"

// StackerConfig contains all configuration for the Cube Stacker game.
type StackerConfig struct {
	Field      StackerField     `yaml:"field"`
	Blocks     StackerBlocks    `yaml:"blocks"`
	Gameplay   StackerGameplay  `yaml:"gameplay"`
	PowerUps   StackerPowerUps  `yaml:"powerups"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// StackerField defines the logical playfield. Block geometry is expressed
// in these units and scaled by each frontend.
type StackerField struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// StackerBlocks defines block sizing and the width-to-speed table.
type StackerBlocks struct {
	BaseWidth  float64     `yaml:"base_width"` // Width of the first block and the fallback width
	Rows       int         `yaml:"rows"`       // Block height is field height / rows
	SpeedTable []SpeedStep `yaml:"speed_table"`
	MinSpeed   float64     `yaml:"min_speed"` // Speed for widths below every step
}

// SpeedStep maps a minimum block width to a horizontal speed in field units per tick.
type SpeedStep struct {
	MinWidth float64 `yaml:"min_width"`
	Speed    float64 `yaml:"speed"`
}

// StackerGameplay defines scoring and failure rules.
type StackerGameplay struct {
	Lives            int     `yaml:"lives"`
	WinScore         int     `yaml:"win_score"` // 0 disables winning (endless)
	PerfectTolerance float64 `yaml:"perfect_tolerance"`
	HalveStreak      int     `yaml:"halve_streak"` // Penalty streak that halves the next block
	LifeStreak       int     `yaml:"life_streak"`  // Penalty streak that costs a life
}

// StackerPowerUps defines power-up cadence.
type StackerPowerUps struct {
	Enabled                bool `yaml:"enabled"`
	Every                  int  `yaml:"every"` // Activate when score is a multiple of this
	DoublePointsPlacements int  `yaml:"double_points_placements"`
}

// BlockHeight returns the fixed height of every block.
func (c StackerConfig) BlockHeight() float64 {
	if c.Blocks.Rows <= 0 {
		return c.Field.Height
	}
	return c.Field.Height / float64(c.Blocks.Rows)
}

// SpeedFor returns the speed magnitude for a block of the given width.
// The table must be sorted by descending MinWidth (Normalize does this).
func (b StackerBlocks) SpeedFor(width float64) float64 {
	for _, step := range b.SpeedTable {
		if width >= step.MinWidth {
			return step.Speed
		}
	}
	return b.MinSpeed
}

// Normalize replaces missing or invalid values with defaults so that a
// partial YAML file still yields a playable configuration.
func (c *StackerConfig) Normalize() {
	def := DefaultStackerConfig()

	if c.Field.Width <= 0 {
		c.Field.Width = def.Field.Width
	}
	if c.Field.Height <= 0 {
		c.Field.Height = def.Field.Height
	}
	if c.Blocks.BaseWidth <= 0 || c.Blocks.BaseWidth >= c.Field.Width {
		c.Blocks.BaseWidth = min(def.Blocks.BaseWidth, c.Field.Width/2)
	}
	if c.Blocks.Rows <= 0 {
		c.Blocks.Rows = def.Blocks.Rows
	}
	if len(c.Blocks.SpeedTable) == 0 {
		c.Blocks.SpeedTable = append([]SpeedStep(nil), def.Blocks.SpeedTable...)
	}
	sort.SliceStable(c.Blocks.SpeedTable, func(i, j int) bool {
		return c.Blocks.SpeedTable[i].MinWidth > c.Blocks.SpeedTable[j].MinWidth
	})
	if c.Blocks.MinSpeed <= 0 {
		c.Blocks.MinSpeed = def.Blocks.MinSpeed
	}

	if c.Gameplay.Lives <= 0 {
		c.Gameplay.Lives = def.Gameplay.Lives
	}
	if c.Gameplay.WinScore < 0 {
		c.Gameplay.WinScore = 0
	}
	if c.Gameplay.PerfectTolerance < 0 {
		c.Gameplay.PerfectTolerance = def.Gameplay.PerfectTolerance
	}
	if c.Gameplay.HalveStreak <= 0 {
		c.Gameplay.HalveStreak = def.Gameplay.HalveStreak
	}
	if c.Gameplay.LifeStreak <= 0 {
		c.Gameplay.LifeStreak = def.Gameplay.LifeStreak
	}

	if c.PowerUps.Every <= 0 {
		c.PowerUps.Every = def.PowerUps.Every
	}
	if c.PowerUps.DoublePointsPlacements <= 0 {
		c.PowerUps.DoublePointsPlacements = def.PowerUps.DoublePointsPlacements
	}
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to block speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
