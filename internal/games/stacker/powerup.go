package stacker

import "github.com/vovakirdan/tui-stacker/internal/core"

// PowerUp is a temporary rule modifier. At most one is active at a time.
type PowerUp int

const (
	PowerUpNone         PowerUp = iota
	PowerUpDoublePoints         // Placements score 2 for a limited number of blocks
	PowerUpDoubleBlock          // The next block spawns at twice its width
	PowerUpAutoPlace            // The next placement snaps to the block below
	PowerUpExtraLife            // The next miss costs no life
)

// powerUpKinds lists the kinds CheckPowerUp chooses from, in roll order.
var powerUpKinds = []PowerUp{
	PowerUpDoublePoints,
	PowerUpDoubleBlock,
	PowerUpAutoPlace,
	PowerUpExtraLife,
}

// String returns the HUD name of the power-up.
func (p PowerUp) String() string {
	switch p {
	case PowerUpNone:
		return "None"
	case PowerUpDoublePoints:
		return "Double Points"
	case PowerUpDoubleBlock:
		return "Double Block"
	case PowerUpAutoPlace:
		return "Auto Place"
	case PowerUpExtraLife:
		return "Extra Life"
	default:
		return "?"
	}
}

// Color returns the HUD color of the power-up.
func (p PowerUp) Color() core.Color {
	switch p {
	case PowerUpDoublePoints:
		return core.ColorBrightYellow
	case PowerUpDoubleBlock:
		return core.ColorBrightCyan
	case PowerUpAutoPlace:
		return core.ColorBrightMagenta
	case PowerUpExtraLife:
		return core.ColorBrightRed
	default:
		return core.ColorGray
	}
}
