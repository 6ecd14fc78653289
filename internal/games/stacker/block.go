package stacker

import "github.com/vovakirdan/tui-stacker/internal/core"

// Block is one slab of the tower, in field units.
// Y is fixed at creation from the stack height. X changes every tick until
// the block is stopped, after which the block never changes again.
type Block struct {
	X         float64
	Y         float64
	Width     float64
	Height    float64
	Speed     float64 // Signed horizontal speed per tick
	Stopped   bool
	NextWidth float64 // Width handed to the block spawned on top of this one
	Color     core.Color
}

// Span returns the horizontal interval the block covers.
func (b Block) Span() core.Span {
	return core.Span{X: b.X, W: b.Width}
}

// move advances an unstopped block by one tick, reflecting its speed at the
// field edges. The reflection only ever points the block back into the
// field, so a block touching both edges cannot jitter in place.
func (b *Block) move(fieldW float64) {
	if b.Stopped {
		return
	}
	if b.X+b.Width >= fieldW && b.Speed > 0 {
		b.Speed = -b.Speed
	} else if b.X <= 0 && b.Speed < 0 {
		b.Speed = -b.Speed
	}
	b.X += b.Speed
}
