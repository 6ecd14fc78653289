// Package window runs the stacker in a desktop window via Ebitengine.
// The simulation is the same stacker.Game the terminal frontend drives;
// this package only maps keys, draws rectangles and plays feedback tones.
package window

import (
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-stacker/internal/core"
	"github.com/vovakirdan/tui-stacker/internal/games/stacker"
	"github.com/vovakirdan/tui-stacker/internal/storage"
)

// Layout constants in field units.
const (
	HUDHeight   = 24 // Strip above the playfield for score and lives
	lineHeight  = 13 // basicfont.Face7x13 glyph height
	headroom    = 3  // Blocks kept visible above the active one when scrolling
	groundColor = 0x40
)

var (
	backgroundColor = color.RGBA{R: 0x12, G: 0x12, B: 0x1a, A: 0xff}
	hudColor        = color.RGBA{R: 0x1e, G: 0x1e, B: 0x2a, A: 0xff}
	overlayColor    = color.RGBA{A: 0xb0}
	textColor       = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
)

// Options configures the window frontend.
type Options struct {
	Scale float64 // Window pixels per field unit, 1 when zero
	Mute  bool    // Skip creating an audio context
}

// Game implements ebiten.Game around a stacker game.
type Game struct {
	game   *stacker.Game
	store  *storage.Store
	logger *log.Logger
	face   text.Face

	audioCtx *audio.Context
	sounds   map[core.EventType][]byte

	fieldW, fieldH int
	state          core.GameState
	scoreSaved     bool
}

// NewGame prepares a window game. The stacker game is reset immediately.
func NewGame(game *stacker.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) *Game {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	game.Reset(cfg)

	field := game.Machine().Config().Field
	g := &Game{
		game:   game,
		store:  store,
		logger: log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "stacker-window"}),
		face:   text.NewGoXFace(basicfont.Face7x13),
		fieldW: int(field.Width),
		fieldH: int(field.Height),
	}
	g.refreshHighScore()

	if !opts.Mute {
		g.audioCtx = audio.NewContext(SampleRate)
		g.sounds = map[core.EventType][]byte{
			core.EventPlaced:  ClickTone.Synthesize(SampleRate),
			core.EventPerfect: PerfectTone.Synthesize(SampleRate),
			core.EventMiss:    MissTone.Synthesize(SampleRate),
		}
	}
	return g
}

// Update advances the simulation one tick.
func (g *Game) Update() error {
	in, quit := readInput(inpututil.IsKeyJustPressed)
	if quit {
		return ebiten.Termination
	}

	result := g.game.Step(in)
	g.state = result.State

	for _, e := range result.Events {
		g.handleEvent(e)
	}
	g.play(pickSound(result.Events))
	return nil
}

func (g *Game) handleEvent(e core.Event) {
	switch e.Type {
	case core.EventRestart:
		g.scoreSaved = false
		g.logger.Debug("restart", "game", g.game.ID())
	case core.EventWin, core.EventGameOver:
		g.logger.Info("run finished", "game", g.game.ID(), "score", g.state.Score, "won", g.state.Won)
		g.saveScore()
	case core.EventPowerUp:
		g.logger.Debug("power-up", "kind", stacker.PowerUp(e.Value).String())
	}
}

// play sounds the tone for an event type, if it has one.
func (g *Game) play(t core.EventType) {
	if g.audioCtx == nil {
		return
	}
	if pcm := g.sounds[t]; len(pcm) > 0 {
		g.audioCtx.NewPlayerFromBytes(pcm).Play()
	}
}

func (g *Game) saveScore() {
	if g.scoreSaved || g.store == nil || g.state.Score <= 0 {
		return
	}
	g.scoreSaved = true
	if _, err := g.store.SaveScore(g.game.ID(), g.state.Score, g.state.Won); err != nil {
		g.logger.Warn("could not save score", "error", err)
		return
	}
	g.refreshHighScore()
}

func (g *Game) refreshHighScore() {
	if g.store == nil {
		return
	}
	if best, err := g.store.HighScore(g.game.ID()); err == nil {
		g.game.SetHighScore(best)
	}
}

// Draw renders the tower, HUD and overlays.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	stack := g.game.Machine().Stack()
	offset := cameraOffset(stack)

	if offset == 0 {
		vector.DrawFilledRect(screen, 0, float32(HUDHeight+g.fieldH-2), float32(g.fieldW), 2,
			color.Gray{Y: groundColor}, false)
	}
	for _, b := range stack {
		y := b.Y + offset
		if y+b.Height < 0 || y > float64(g.fieldH) {
			continue
		}
		vector.DrawFilledRect(screen,
			float32(b.X), float32(y+HUDHeight), float32(b.Width), float32(b.Height),
			blockColor(b), false)
	}

	g.drawHUD(screen)
	g.drawOverlay(screen)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(g.fieldW), HUDHeight, hudColor, false)

	st := g.game.Machine().State()
	left := hudLeft(g.game, st)
	g.drawText(screen, left, 6, (HUDHeight-lineHeight)/2, text.AlignStart)

	right := fmt.Sprintf("Best: %d", g.game.HighScore())
	g.drawText(screen, right, float64(g.fieldW-6), (HUDHeight-lineHeight)/2, text.AlignEnd)
}

func (g *Game) drawOverlay(screen *ebiten.Image) {
	title, hint := overlayText(g.state)
	if title == "" {
		return
	}

	cy := float64(HUDHeight + g.fieldH/2)
	vector.DrawFilledRect(screen, 0, float32(cy-2*lineHeight), float32(g.fieldW), 4*lineHeight, overlayColor, false)
	g.drawText(screen, title, float64(g.fieldW)/2, cy-1.5*lineHeight, text.AlignCenter)
	g.drawText(screen, hint, float64(g.fieldW)/2, cy+0.5*lineHeight, text.AlignCenter)
}

func (g *Game) drawText(screen *ebiten.Image, s string, x, y float64, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(textColor)
	op.PrimaryAlign = align
	text.Draw(screen, s, g.face, op)
}

// Layout keeps the logical resolution at field size plus the HUD strip.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.fieldW, g.fieldH + HUDHeight
}

// Run opens the window and blocks until it is closed.
func Run(game *stacker.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	g := NewGame(game, store, cfg, opts)

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(int(float64(g.fieldW)*scale), int(float64(g.fieldH+HUDHeight)*scale))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	g.logger.Info("window opened", "game", game.ID(), "field", fmt.Sprintf("%dx%d", g.fieldW, g.fieldH))
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
