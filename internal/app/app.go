//go:build ebiten

package app

import (
	"image/color"
	"time"

	"mad-sand/internal/brush"
	"mad-sand/internal/core"
	"mad-sand/internal/render"
	"mad-sand/internal/sims/sand"
	"mad-sand/internal/ui"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type paletteProvider interface {
	Palette() []color.RGBA
}

var materialKeys = map[ebiten.Key]sand.CellType{
	ebiten.KeyDigit1: sand.Sand,
	ebiten.KeyDigit2: sand.Water,
	ebiten.KeyDigit3: sand.Rock,
	ebiten.KeyDigit0: sand.Dead,
	ebiten.KeyE:      sand.Dead,
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	input   *Controller
	stepper *core.FixedStep
	logger  *log.Logger

	palette  []color.RGBA
	scale    int
	paused   bool
	tickOnce bool
	seed     int64
	size     core.Size
}

// New constructs a Game for the provided simulation. Painting is only
// enabled when the sim accepts SetCell.
func New(sim core.Sim, cfg *Config, logger *log.Logger) *Game {
	size := sim.Size()
	g := &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H, color.Black),
		overlay: ui.NewOverlay(sim, cfg.Scale),
		hud:     ui.NewHUD(sim, cfg.Panel),
		stepper: core.NewFixedStep(cfg.TPS),
		logger:  logger,
		scale:   max(cfg.Scale, 1),
		seed:    cfg.Seed,
		size:    size,
		palette: sand.Palette(),
	}
	if p, ok := sim.(paletteProvider); ok {
		g.palette = p.Palette()
	}
	if target, ok := sim.(brush.Painter); ok {
		g.input = NewController(target, cfg.Brush, cfg.Rock)
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.stepper.Reset()
	g.logger.Debug("reset", "seed", seed)
}

func (g *Game) status() ui.Status {
	st := ui.Status{Paused: g.paused, TPS: g.stepper.TPS()}
	if g.input != nil {
		st.Selected = g.input.Selected()
		st.Radius = g.input.Radius()
	}
	return st
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if sb, ok := g.sim.(*sand.Sandbox); ok {
			sb.Grid().Clear()
		}
	}

	g.handleBrush()
	g.checkResize()

	if g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	} else if !g.paused {
		for n := g.stepper.Steps(); n > 0; n-- {
			g.sim.Step()
		}
	}
	return nil
}

func (g *Game) handleBrush() {
	mx, my := ebiten.CursorPosition()
	size := g.sim.Size()
	overPanel := g.hud.Update(size.W*g.scale, g.status())

	row, col := ScreenToCell(mx, my, g.scale)
	inGrid := !overPanel && row >= 0 && row < size.H && col >= 0 && col < size.W
	g.overlay.Update(row, col, inGrid, g.status())
	if g.input == nil {
		return
	}

	for key, m := range materialKeys {
		if inpututil.IsKeyJustPressed(key) && g.input.Select(m) {
			g.logger.Debug("material selected", "material", m)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.logger.Debug("material selected", "material", g.input.Cycle())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.input.SetRadius(g.input.Radius() - 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.input.SetRadius(g.input.Radius() + 1)
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		if wy > 0 {
			g.input.SetRadius(g.input.Radius() + 1)
		} else {
			g.input.SetRadius(g.input.Radius() - 1)
		}
	}

	switch {
	case overPanel:
		g.input.Release()
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.input.Press(row, col)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		g.input.PressWith(row, col, sand.Dead)
	default:
		g.input.Release()
	}
}

func (g *Game) checkResize() {
	size := g.sim.Size()
	if size == g.size {
		return
	}
	g.logger.Info("grid resized", "w", size.W, "h", size.H)
	g.size = size
	if g.input != nil {
		g.input.Release()
	}
	ebiten.SetWindowSize(size.W*g.scale+g.hud.Width(), size.H*g.scale)
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	size := g.sim.Size()
	g.painter.Blit(screen, size.W, size.H, g.sim.Cells(), g.palette, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}
