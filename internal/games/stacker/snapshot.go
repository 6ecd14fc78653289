package stacker

import (
	"math"

	"github.com/vovakirdan/tui-stacker/internal/core"
)

// blockFields is the number of values each block occupies in BlockData.
const blockFields = 8

// Snapshot contains the complete machine state for replay and determinism
// checks. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick             uint64
	Score            int
	Lives            int
	Streak           int
	PowerUp          int
	DoublePointsUsed int
	Won              bool
	GameOver         bool
	Spawned          int

	// Block states, bottom first. Each block is 8 values:
	// X, Y, Width, Height, Speed, NextWidth, Stopped (0/1), Color.
	BlockCount int
	BlockData  []float64

	RNGState uint64
}

// Snapshot returns the current machine state as a Snapshot.
func (m *Machine) Snapshot() Snapshot {
	data := make([]float64, 0, len(m.stack)*blockFields)
	for _, b := range m.stack {
		stopped := 0.0
		if b.Stopped {
			stopped = 1
		}
		data = append(data, b.X, b.Y, b.Width, b.Height, b.Speed, b.NextWidth, stopped, float64(b.Color))
	}

	return Snapshot{
		Tick:             uint64(m.ticks), //#nosec G115 -- tick count is always positive
		Score:            m.state.Score,
		Lives:            m.state.Lives,
		Streak:           m.state.Streak,
		PowerUp:          int(m.state.PowerUp),
		DoublePointsUsed: m.state.DoublePointsUsed,
		Won:              m.state.Won,
		GameOver:         m.state.GameOver,
		Spawned:          m.state.Spawned,
		BlockCount:       len(m.stack),
		BlockData:        data,
		RNGState:         m.rng.state,
	}
}

// ApplySnapshot restores machine state from a snapshot.
// Pending events are discarded.
func (m *Machine) ApplySnapshot(snap Snapshot) {
	m.ticks = int(snap.Tick) //#nosec G115 -- tick count fits in int
	m.state = State{
		Score:            snap.Score,
		Lives:            snap.Lives,
		Streak:           snap.Streak,
		PowerUp:          PowerUp(snap.PowerUp),
		DoublePointsUsed: snap.DoublePointsUsed,
		Won:              snap.Won,
		GameOver:         snap.GameOver,
		Spawned:          snap.Spawned,
	}

	m.stack = m.stack[:0]
	for i := range snap.BlockCount {
		idx := i * blockFields
		if idx+blockFields > len(snap.BlockData) {
			break
		}
		d := snap.BlockData[idx : idx+blockFields]
		m.stack = append(m.stack, Block{
			X:         d[0],
			Y:         d[1],
			Width:     d[2],
			Height:    d[3],
			Speed:     d[4],
			NextWidth: d[5],
			Stopped:   d[6] == 1,
			Color:     core.Color(d[7]),
		})
	}

	m.rng.state = snap.RNGState
	m.events = nil
}

// Snapshot returns the state of the underlying machine.
func (g *Game) Snapshot() Snapshot {
	return g.machine.Snapshot()
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Streak)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PowerUp)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.DoublePointsUsed) //#nosec G115 -- hash computation
	h = h*31 + boolBits(snap.Won)
	h = h*31 + boolBits(snap.GameOver)
	h = h*31 + uint64(snap.Spawned)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BlockCount) //#nosec G115 -- hash computation

	for _, v := range snap.BlockData {
		h = h*31 + math.Float64bits(v)
	}

	h = h*31 + snap.RNGState

	return h
}

func boolBits(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
