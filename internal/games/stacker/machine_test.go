package stacker

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-stacker/internal/config"
	"github.com/vovakirdan/tui-stacker/internal/core"
)

// testConfig returns the default rules without random power-ups, so tests
// only see the power-ups they set themselves.
func testConfig() config.StackerConfig {
	cfg := config.DefaultStackerConfig()
	cfg.PowerUps.Enabled = false
	return cfg
}

// placeAligned moves the active block so its left edge matches the block
// below shifted by off, then places it.
func placeAligned(m *Machine, off float64) {
	if b, below := m.active(), m.below(); b != nil && below != nil {
		b.X = below.X + off
	}
	m.Place()
}

// placeTrimmed places the active block so the overlap is d narrower than
// the active block's width.
func placeTrimmed(m *Machine, d float64) {
	if b, below := m.active(), m.below(); b != nil && below != nil {
		b.X = below.X + below.Width - b.Width + d
	}
	m.Place()
}

// placeMissed moves the active block fully clear of the block below.
func placeMissed(m *Machine) {
	if b, below := m.active(), m.below(); b != nil && below != nil {
		b.X = below.X + below.Width + 10
	}
	m.Place()
}

func hasEvent(events []core.Event, t core.EventType) bool {
	for _, e := range events {
		if e.Type == t {
			return true
		}
	}
	return false
}

func countEvents(events []core.Event, t core.EventType) int {
	n := 0
	for _, e := range events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func TestNewMachineSeedsOneActiveBlock(t *testing.T) {
	m := NewMachine(testConfig(), 1)

	st := m.State()
	if st.Score != 0 || st.Lives != 2 || st.Streak != 0 || st.PowerUp != PowerUpNone {
		t.Errorf("unexpected initial state: %+v", st)
	}
	if !st.Playing() {
		t.Error("new machine should be playing")
	}

	stack := m.Stack()
	if len(stack) != 1 {
		t.Fatalf("expected 1 block, got %d", len(stack))
	}

	b := stack[0]
	if b.Stopped {
		t.Error("initial block should be moving")
	}
	if b.Width != 100 {
		t.Errorf("initial width = %v, expected 100", b.Width)
	}
	h := m.Config().BlockHeight()
	if math.Abs(b.Y-(600-h)) > 1e-9 {
		t.Errorf("initial y = %v, expected %v", b.Y, 600-h)
	}
	if b.X != 350 || b.Speed != -2.3 {
		t.Errorf("initial block at x=%v speed=%v, expected x=350 speed=-2.3", b.X, b.Speed)
	}
}

func TestSpawnAlternatesSides(t *testing.T) {
	m := NewMachine(testConfig(), 1)
	placeAligned(m, 0)

	b, ok := m.Active()
	if !ok {
		t.Fatal("expected an active block after placement")
	}
	if b.X != 250 || b.Speed <= 0 {
		t.Errorf("second block at x=%v speed=%v, expected x=250 moving right", b.X, b.Speed)
	}
	h := m.Config().BlockHeight()
	if math.Abs(b.Y-(600-2*h)) > 1e-9 {
		t.Errorf("second block y = %v, expected %v", b.Y, 600-2*h)
	}

	placeAligned(m, 0)
	b, _ = m.Active()
	if b.X != 350 || b.Speed >= 0 {
		t.Errorf("third block at x=%v speed=%v, expected x=350 moving left", b.X, b.Speed)
	}
}

func TestTickMovesAndReflects(t *testing.T) {
	tests := []struct {
		name      string
		x, speed  float64
		wantX     float64
		wantSpeed float64
	}{
		{"free move", 200, 2.3, 202.3, 2.3},
		{"right edge", 500, 2.3, 497.7, -2.3},
		{"left edge", 0, -2.3, 2.3, 2.3},
		{"past right edge moving left", 520, -2.3, 517.7, -2.3},
		{"past left edge moving right", -1, 2.3, 1.3, 2.3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMachine(testConfig(), 1)
			b := m.active()
			b.X = tc.x
			b.Speed = tc.speed

			m.Tick()

			if math.Abs(b.X-tc.wantX) > 1e-9 || b.Speed != tc.wantSpeed {
				t.Errorf("after tick x=%v speed=%v, expected x=%v speed=%v", b.X, b.Speed, tc.wantX, tc.wantSpeed)
			}
		})
	}
}

func TestTickStaysWithinField(t *testing.T) {
	m := NewMachine(testConfig(), 1)
	b := m.active()
	b.Width = 200
	b.X = 350
	b.Speed = 4.6

	var sawLeft, sawRight bool
	for range 1000 {
		m.Tick()
		if b.X < -4.6-1e-9 || b.X+b.Width > 600+4.6+1e-9 {
			t.Fatalf("block left the field: x=%v w=%v", b.X, b.Width)
		}
		sawLeft = sawLeft || b.X < 10
		sawRight = sawRight || b.X+b.Width > 590
	}
	if !sawLeft || !sawRight {
		t.Errorf("block should sweep the whole field, left=%v right=%v", sawLeft, sawRight)
	}
}

func TestFullWidthBlockKeepsMoving(t *testing.T) {
	m := NewMachine(testConfig(), 1)
	b := m.active()
	b.Width = 600
	b.X = 0
	b.Speed = 3

	for i := range 20 {
		m.Tick()
		if b.X < -3-1e-9 || b.X > 1e-9 {
			t.Fatalf("tick %d: full-width block drifted to x=%v", i, b.X)
		}
	}
}

func TestComputeOverlapWithoutBlockBelow(t *testing.T) {
	m := NewMachine(testConfig(), 1)
	if got := m.ComputeOverlap(); got != 100 {
		t.Errorf("ComputeOverlap with single block = %v, expected default width 100", got)
	}
}

func TestComputeOverlapDisjointIsNegative(t *testing.T) {
	m := NewMachine(testConfig(), 1)
	placeAligned(m, 0)

	below := m.below()
	b := m.active()

	b.X = below.X + below.Width + 25
	if got := m.ComputeOverlap(); got >= 0 {
		t.Errorf("overlap right of the block below = %v, expected negative", got)
	}

	b.X = below.X - b.Width - 25
	if got := m.ComputeOverlap(); got >= 0 {
		t.Errorf("overlap left of the block below = %v, expected negative", got)
	}

	b.X = below.X + 30
	if got := m.ComputeOverlap(); got != 70 {
		t.Errorf("partial overlap = %v, expected 70", got)
	}
}

func TestPerfectPlacementNeverIncrementsStreak(t *testing.T) {
	for _, off := range []float64{0, 0.5, -0.5} {
		m := NewMachine(testConfig(), 1)
		placeAligned(m, 0)
		m.state.Streak = 3

		placeAligned(m, off)

		if got := m.State().Streak; got != 0 {
			t.Errorf("offset %v: streak = %d, expected reset to 0", off, got)
		}
		if !hasEvent(m.Drain(), core.EventPerfect) {
			t.Errorf("offset %v: expected a perfect event", off)
		}
	}
}

func TestNearMissIncrementsStreakAndTrims(t *testing.T) {
	m := NewMachine(testConfig(), 1)
	placeAligned(m, 0)
	placeTrimmed(m, 10)

	st := m.State()
	if st.Streak != 1 {
		t.Errorf("streak = %d, expected 1", st.Streak)
	}
	if st.Score != 2 {
		t.Errorf("score = %d, expected 2", st.Score)
	}

	b, _ := m.Active()
	if math.Abs(b.Width-90) > 1e-9 {
		t.Errorf("next block width = %v, expected 90", b.Width)
	}
	if got := m.Config().Blocks.SpeedFor(90); math.Abs(b.Speed) != got {
		t.Errorf("next block speed = %v, expected magnitude %v", b.Speed, got)
	}
}

func TestWinAtThirtyFive(t *testing.T) {
	m := NewMachine(testConfig(), 1)

	for i := range 35 {
		if !m.State().Playing() {
			t.Fatalf("run ended early at placement %d", i)
		}
		placeAligned(m, 0)
	}

	st := m.State()
	if !st.Won || st.Score != 35 {
		t.Fatalf("expected win at 35, got %+v", st)
	}
	if !hasEvent(m.Drain(), core.EventWin) {
		t.Error("expected a win event")
	}
	if _, ok := m.Active(); ok {
		t.Error("no block should be spawned after the win")
	}
	if n := len(m.Stack()); n != 35 {
		t.Errorf("stack has %d blocks, expected 35", n)
	}

	before := m.Snapshot()
	m.Tick()
	after := m.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("tick after win should not change state")
	}

	m.Place()
	if got := m.State(); got.Score != 0 || got.Won {
		t.Errorf("place after win should restart, got %+v", got)
	}
	if !hasEvent(m.Drain(), core.EventRestart) {
		t.Error("expected a restart event")
	}
}

func TestGameOverAndRestart(t *testing.T) {
	m := NewMachine(testConfig(), 1)
	placeAligned(m, 0)
	m.Drain()

	placeMissed(m)
	st := m.State()
	if st.Lives != 1 || st.GameOver {
		t.Fatalf("after first miss expected 1 life and playing, got %+v", st)
	}
	events := m.Drain()
	if !hasEvent(events, core.EventMiss) || !hasEvent(events, core.EventLifeLost) {
		t.Errorf("expected miss and life lost events, got %v", events)
	}
	if b, ok := m.Active(); !ok || b.Stopped {
		t.Error("missed block should keep moving")
	}
	if n := len(m.Stack()); n != 2 {
		t.Errorf("miss should not push a block, stack has %d", n)
	}

	placeMissed(m)
	st = m.State()
	if !st.GameOver || st.Lives != 0 {
		t.Fatalf("expected game over at 0 lives, got %+v", st)
	}
	if !hasEvent(m.Drain(), core.EventGameOver) {
		t.Error("expected a game over event")
	}

	m.Tick()
	m.Place()

	st = m.State()
	if st.Score != 0 || st.Lives != 2 || st.GameOver || st.Streak != 0 || st.PowerUp != PowerUpNone {
		t.Errorf("restart did not reinitialize state: %+v", st)
	}
	if n := len(m.Stack()); n != 1 {
		t.Errorf("restart should seed exactly one block, got %d", n)
	}
	if m.Ticks() != 0 {
		t.Errorf("restart should clear ticks, got %d", m.Ticks())
	}
	if !hasEvent(m.Drain(), core.EventRestart) {
		t.Error("expected a restart event")
	}
}

func TestExtraLifeNegatesMiss(t *testing.T) {
	m := NewMachine(testConfig(), 1)
	placeAligned(m, 0)
	m.state.PowerUp = PowerUpExtraLife

	placeMissed(m)

	st := m.State()
	if st.Lives != 2 {
		t.Errorf("extra life should negate the miss, lives = %d", st.Lives)
	}
	if st.PowerUp != PowerUpNone {
		t.Errorf("extra life should be consumed, power-up = %v", st.PowerUp)
	}

	placeMissed(m)
	if got := m.State().Lives; got != 1 {
		t.Errorf("second miss should cost a life, lives = %d", got)
	}
}

func TestDoublePointsFourPlacementsThenExpires(t *testing.T) {
	m := NewMachine(testConfig(), 1)
	placeAligned(m, 0)
	m.state.PowerUp = PowerUpDoublePoints

	expected := []int{2, 2, 2, 2, 1}
	for i, want := range expected {
		before := m.State().Score
		placeAligned(m, 0)
		st := m.State()

		if got := st.Score - before; got != want {
			t.Errorf("placement %d awarded %d, expected %d", i+1, got, want)
		}
		if i < 4 && st.PowerUp != PowerUpDoublePoints {
			t.Errorf("placement %d: double points expired early", i+1)
		}
	}

	if got := m.State().PowerUp; got != PowerUpNone {
		t.Errorf("double points should be cleared after the 5th placement, got %v", got)
	}

	before := m.State().Score
	placeAligned(m, 0)
	if got := m.State().Score - before; got != 1 {
		t.Errorf("placement after expiry awarded %d, expected 1", got)
	}
}

func TestPenaltyStreak(t *testing.T) {
	m := NewMachine(testConfig(), 1)
	placeAligned(m, 0)

	for streak := 1; streak <= 11; streak++ {
		livesBefore := m.State().Lives
		width := m.active().Width

		placeTrimmed(m, 2)

		st := m.State()
		if st.Streak != streak {
			t.Fatalf("streak = %d, expected %d", st.Streak, streak)
		}

		next, ok := m.Active()
		if !ok {
			t.Fatalf("streak %d: expected an active block", streak)
		}

		wantWidth := width - 2
		if streak == 7 {
			wantWidth *= 0.5
		}
		if math.Abs(next.Width-wantWidth) > 1e-9 {
			t.Errorf("streak %d: next width = %v, expected %v", streak, next.Width, wantWidth)
		}

		wantLives := livesBefore
		if streak == 10 {
			wantLives--
		}
		if st.Lives != wantLives {
			t.Errorf("streak %d: lives = %d, expected %d", streak, st.Lives, wantLives)
		}
	}

	if st := m.State(); st.GameOver {
		t.Errorf("a single streak penalty should not end the run: %+v", st)
	}
}

func TestAutoPlaceSnapsToBlockBelow(t *testing.T) {
	m := NewMachine(testConfig(), 1)
	placeAligned(m, 0)
	placeTrimmed(m, 20) // next width 80
	m.state.PowerUp = PowerUpAutoPlace
	m.Drain()

	b := m.active()
	below := *m.below()
	b.X = below.X + below.Width + 50 // would miss

	m.Place()

	placed := m.Stack()[len(m.Stack())-2]
	if placed.X != below.X || placed.Width != below.Width || !placed.Stopped {
		t.Errorf("auto place should snap to block below: got x=%v w=%v, expected x=%v w=%v",
			placed.X, placed.Width, below.X, below.Width)
	}

	st := m.State()
	if st.PowerUp != PowerUpNone {
		t.Errorf("auto place should be consumed, got %v", st.PowerUp)
	}
	if st.Lives != 2 {
		t.Errorf("auto place should never miss, lives = %d", st.Lives)
	}
	if st.Streak != 0 {
		t.Errorf("auto place counts as perfect, streak = %d", st.Streak)
	}

	events := m.Drain()
	if !hasEvent(events, core.EventPlaced) || !hasEvent(events, core.EventPerfect) {
		t.Errorf("expected placed and perfect events, got %v", events)
	}

	next, _ := m.Active()
	if next.Width != below.Width {
		t.Errorf("next width = %v, expected %v", next.Width, below.Width)
	}
}

// machineWithPowerUp finds a seed whose first random power-up is the wanted
// kind and plays five perfect placements with it.
func machineWithPowerUp(t *testing.T, want PowerUp) *Machine {
	t.Helper()
	cfg := config.DefaultStackerConfig()
	for seed := int64(1); seed < 500; seed++ {
		m := NewMachine(cfg, seed)
		for range 5 {
			placeAligned(m, 0)
		}
		if m.State().PowerUp == want {
			return m
		}
	}
	t.Fatalf("no seed rolled %v", want)
	return nil
}

func TestPowerUpRolledEveryFive(t *testing.T) {
	m := NewMachine(config.DefaultStackerConfig(), 7)

	for i := 1; i <= 4; i++ {
		placeAligned(m, 0)
		if got := m.State().PowerUp; got != PowerUpNone {
			t.Fatalf("power-up %v activated at score %d", got, i)
		}
	}
	m.Drain()

	placeAligned(m, 0)
	if got := m.State().PowerUp; got == PowerUpNone {
		t.Error("expected a power-up at score 5")
	}
	if n := countEvents(m.Drain(), core.EventPowerUp); n != 1 {
		t.Errorf("expected 1 power-up event, got %d", n)
	}
}

func TestPowerUpRollCoversAllKinds(t *testing.T) {
	for _, kind := range powerUpKinds {
		m := machineWithPowerUp(t, kind)
		if m.State().DoublePointsUsed != 0 {
			t.Errorf("%v: double points counter should start at 0", kind)
		}
	}
}

func TestDoubleBlockDoublesOneBlock(t *testing.T) {
	m := machineWithPowerUp(t, PowerUpDoubleBlock)

	b, _ := m.Active()
	if b.Width != 200 {
		t.Fatalf("double block width = %v, expected 200", b.Width)
	}
	if b.Speed != m.Config().Blocks.SpeedFor(200) {
		t.Errorf("double block speed = %v, expected %v", b.Speed, m.Config().Blocks.SpeedFor(200))
	}

	placeAligned(m, 0)

	if got := m.State().PowerUp; got != PowerUpNone {
		t.Errorf("double block should be cleared by the next placement, got %v", got)
	}
	next, _ := m.Active()
	if next.Width != 100 {
		t.Errorf("block after double block width = %v, expected overlap 100", next.Width)
	}
}

func TestNewPowerUpReplacesActive(t *testing.T) {
	m := machineWithPowerUp(t, PowerUpExtraLife)

	for range 5 {
		placeAligned(m, 0)
	}
	if m.State().PowerUp == PowerUpNone {
		t.Error("score 10 should roll a new power-up")
	}
}

func TestInvalidNextWidthFallsBack(t *testing.T) {
	for _, w := range []float64{math.NaN(), -5} {
		m := NewMachine(testConfig(), 1)
		b := m.active()
		b.Stopped = true
		b.NextWidth = w

		m.spawn()

		next, ok := m.Active()
		if !ok {
			t.Fatal("expected a spawned block")
		}
		if next.Width != 100 {
			t.Errorf("next width %v: spawned width %v, expected default 100", w, next.Width)
		}
	}
}

func TestZeroOverlapStillPlaces(t *testing.T) {
	m := NewMachine(testConfig(), 1)
	placeAligned(m, 0)

	below := m.below()
	b := m.active()
	b.X = below.X + below.Width

	m.Place()

	if got := m.State().Score; got != 2 {
		t.Errorf("touching placement should score, score = %d", got)
	}
	next, _ := m.Active()
	if next.Width != 0 {
		t.Errorf("next width = %v, expected 0", next.Width)
	}
}

func TestDrainClearsEvents(t *testing.T) {
	m := NewMachine(testConfig(), 1)
	placeAligned(m, 0)

	if events := m.Drain(); len(events) == 0 {
		t.Fatal("expected events after a placement")
	}
	if events := m.Drain(); events != nil {
		t.Errorf("second drain should be empty, got %v", events)
	}
}

// runScript plays a fixed tick and place pattern, including restarts.
func runScript(m *Machine, ticks int) {
	for i := range ticks {
		if i%37 == 36 {
			m.Place()
		}
		m.Tick()
	}
}

func TestMachineDeterminism(t *testing.T) {
	cfg := config.DefaultStackerConfig()

	m1 := NewMachine(cfg, 12345)
	m2 := NewMachine(cfg, 12345)
	runScript(m1, 3000)
	runScript(m2, 3000)

	s1, s2 := m1.Snapshot(), m2.Snapshot()
	if s1.Hash() != s2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", s1.Hash(), s2.Hash())
	}
	if s1.Score != s2.Score || s1.Tick != s2.Tick {
		t.Errorf("Determinism failed: score %d/%d tick %d/%d", s1.Score, s2.Score, s1.Tick, s2.Tick)
	}

	m3 := NewMachine(cfg, 54321)
	runScript(m3, 3000)
	s3 := m3.Snapshot()
	if s1.Hash() == s3.Hash() {
		t.Error("different seeds should produce different runs")
	}
}

func TestApplySnapshotResumes(t *testing.T) {
	cfg := config.DefaultStackerConfig()

	m1 := NewMachine(cfg, 99)
	runScript(m1, 500)

	m2 := NewMachine(cfg, 1)
	m2.ApplySnapshot(m1.Snapshot())

	before1, before2 := m1.Snapshot(), m2.Snapshot()
	if before1.Hash() != before2.Hash() {
		t.Fatal("restored snapshot hash differs")
	}

	runScript(m1, 700)
	runScript(m2, 700)

	after1, after2 := m1.Snapshot(), m2.Snapshot()
	if after1.Hash() != after2.Hash() {
		t.Error("restored machine diverged from the original")
	}
}
