package stacker

import (
	"math"

	"github.com/vovakirdan/tui-stacker/internal/config"
	"github.com/vovakirdan/tui-stacker/internal/core"
)

// State holds every mutable rule value of a run.
type State struct {
	Score            int
	Lives            int
	Streak           int // Consecutive non-perfect placements
	PowerUp          PowerUp
	DoublePointsUsed int // Placements already scored double under the current power-up
	Won              bool
	GameOver         bool
	Spawned          int // Blocks spawned since reset; drives y position and spawn side
}

// Playing reports whether placements are still accepted.
func (s State) Playing() bool {
	return !s.Won && !s.GameOver
}

// Machine is the block-placement and scoring state machine.
// It is driven by two entry points: Tick once per frame and Place on the
// player's action. Both must be called from the same goroutine.
//
// While playing, exactly one block is unstopped and it is the last block
// of the stack.
type Machine struct {
	cfg        config.StackerConfig
	difficulty *config.DifficultyManager
	rng        *RNG
	stack      []Block
	state      State
	ticks      int
	events     []core.Event
}

// NewMachine creates a machine and seeds the first block.
func NewMachine(cfg config.StackerConfig, seed int64) *Machine {
	cfg.Normalize()
	m := &Machine{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		rng:        NewRNG(seed),
	}
	m.Reset()
	return m
}

// Config returns the configuration the machine was built with.
func (m *Machine) Config() config.StackerConfig {
	return m.cfg
}

// Reset clears the stack and all rule state, then seeds one block.
// The RNG stream continues, so consecutive runs differ.
func (m *Machine) Reset() {
	m.stack = m.stack[:0]
	m.state = State{Lives: m.cfg.Gameplay.Lives}
	m.ticks = 0
	m.spawn()
}

// Tick advances the active block by one frame.
func (m *Machine) Tick() {
	if !m.state.Playing() {
		return
	}
	m.ticks++
	if b := m.active(); b != nil {
		b.move(m.cfg.Field.Width)
	}
}

// Place commits the active block, or restarts the run once it has ended.
func (m *Machine) Place() {
	if !m.state.Playing() {
		m.Reset()
		m.emit(core.EventRestart, 0)
		return
	}

	b := m.active()
	if b == nil {
		return
	}

	// Double Block only affects the block it was spawned for.
	if m.state.PowerUp == PowerUpDoubleBlock {
		m.state.PowerUp = PowerUpNone
	}

	overlap := m.ComputeOverlap()

	switch {
	case m.state.PowerUp == PowerUpAutoPlace:
		m.state.PowerUp = PowerUpNone
		m.commit(b, m.snap(b))
	case overlap >= 0:
		b.NextWidth = overlap
		b.Stopped = true
		m.commit(b, overlap)
	default:
		m.miss(overlap)
	}
}

// ComputeOverlap returns the horizontal intersection of the active block and
// the block beneath it. Negative values mean the block would miss.
// Without a block beneath, the default block width is returned.
func (m *Machine) ComputeOverlap() float64 {
	b := m.active()
	below := m.below()
	if b == nil || below == nil {
		return m.cfg.Blocks.BaseWidth
	}
	return b.Span().Overlap(below.Span())
}

// State returns a copy of the rule state.
func (m *Machine) State() State {
	return m.state
}

// Stack returns a copy of the placed blocks, bottom first.
func (m *Machine) Stack() []Block {
	out := make([]Block, len(m.stack))
	copy(out, m.stack)
	return out
}

// Active returns the moving block, if any.
func (m *Machine) Active() (Block, bool) {
	b := m.active()
	if b == nil {
		return Block{}, false
	}
	return *b, true
}

// Ticks returns the number of frames advanced since the last reset.
func (m *Machine) Ticks() int {
	return m.ticks
}

// Drain returns the events recorded since the previous call and clears them.
func (m *Machine) Drain() []core.Event {
	if len(m.events) == 0 {
		return nil
	}
	out := m.events
	m.events = nil
	return out
}

// snap aligns the block exactly with the one below and stops it.
// Returns the resulting overlap, which is always a full one.
func (m *Machine) snap(b *Block) float64 {
	if below := m.below(); below != nil {
		b.X = below.X
		b.Width = below.Width
	}
	b.Stopped = true
	b.NextWidth = b.Width
	return b.Width
}

// commit finishes a successful placement: scoring, power-ups, next block.
func (m *Machine) commit(b *Block, overlap float64) {
	m.emit(core.EventPlaced, overlap)
	m.scoreControl(b, overlap)

	if m.state.Won {
		m.emit(core.EventWin, float64(m.state.Score))
		return
	}

	m.checkPowerUp()
	m.spawn()
}

// miss handles a placement that does not touch the block below.
// The block keeps moving so the player can try again.
func (m *Machine) miss(overlap float64) {
	m.emit(core.EventMiss, overlap)
	if m.state.PowerUp == PowerUpExtraLife {
		m.state.PowerUp = PowerUpNone
		return
	}
	m.loseLife()
}

// scoreControl awards points, tracks the perfect-placement streak and
// detects the win.
func (m *Machine) scoreControl(b *Block, overlap float64) {
	if m.state.PowerUp == PowerUpDoublePoints {
		if m.state.DoublePointsUsed < m.cfg.PowerUps.DoublePointsPlacements {
			m.state.Score += 2
			m.state.DoublePointsUsed++
		} else {
			m.state.Score++
			m.state.PowerUp = PowerUpNone
			m.state.DoublePointsUsed = 0
		}
	} else {
		m.state.Score++
	}

	if math.Abs(overlap-b.Width) <= m.cfg.Gameplay.PerfectTolerance {
		m.state.Streak = 0
		m.emit(core.EventPerfect, overlap)
	} else {
		m.state.Streak++
	}

	if win := m.cfg.Gameplay.WinScore; win > 0 && m.state.Score >= win {
		m.state.Won = true
	}
}

// checkPowerUp activates a random power-up whenever the score lands on a
// multiple of the configured cadence, replacing any active one.
func (m *Machine) checkPowerUp() {
	if !m.cfg.PowerUps.Enabled || m.state.Score%m.cfg.PowerUps.Every != 0 {
		return
	}
	kind := powerUpKinds[m.rng.Intn(len(powerUpKinds))]
	m.state.PowerUp = kind
	m.state.DoublePointsUsed = 0
	m.emit(core.EventPowerUp, float64(kind))
}

// spawn pushes a new moving block on top of the stack.
func (m *Machine) spawn() {
	base := m.cfg.Blocks.BaseWidth
	h := m.cfg.BlockHeight()
	fieldW := m.cfg.Field.Width

	b := Block{
		Height:    h,
		NextWidth: base,
		Color:     core.BlockColors[m.rng.Intn(len(core.BlockColors))],
	}

	if prev := m.top(); prev != nil {
		b.Width = prev.NextWidth
		if math.IsNaN(b.Width) || b.Width < 0 {
			b.Width = base
		}
		if m.state.PowerUp == PowerUpDoubleBlock {
			b.Width *= 2
		}

		// The streak is not reset here, only by a later perfect placement.
		switch m.state.Streak {
		case m.cfg.Gameplay.HalveStreak:
			b.Width *= 0.5
		case m.cfg.Gameplay.LifeStreak:
			m.loseLife()
		}
	} else {
		b.Width = base
	}

	b.Y = m.cfg.Field.Height - h - float64(m.state.Spawned)*h
	m.state.Spawned++

	speed := m.difficulty.Speed(m.cfg.Blocks.SpeedFor(b.Width), m.state.Score, m.ticks)
	if m.state.Spawned%2 == 0 {
		b.X = fieldW/4 + b.Width
		b.Speed = speed
	} else {
		if b.Width > base {
			b.X = fieldW / 1.5
		} else {
			b.X = fieldW - fieldW/4 - b.Width
		}
		b.Speed = -speed
	}

	m.stack = append(m.stack, b)
}

// loseLife takes a life and ends the run when none remain.
func (m *Machine) loseLife() {
	m.state.Lives--
	m.emit(core.EventLifeLost, float64(m.state.Lives))
	if m.state.Lives <= 0 && !m.state.GameOver {
		m.state.GameOver = true
		m.emit(core.EventGameOver, float64(m.state.Score))
	}
}

func (m *Machine) emit(t core.EventType, v float64) {
	m.events = append(m.events, core.Event{Type: t, Value: v})
}

// top returns the last block of the stack.
func (m *Machine) top() *Block {
	if len(m.stack) == 0 {
		return nil
	}
	return &m.stack[len(m.stack)-1]
}

// active returns the top block when it is still moving.
func (m *Machine) active() *Block {
	b := m.top()
	if b == nil || b.Stopped {
		return nil
	}
	return b
}

// below returns the block directly beneath the top one.
func (m *Machine) below() *Block {
	if len(m.stack) < 2 {
		return nil
	}
	return &m.stack[len(m.stack)-2]
}
