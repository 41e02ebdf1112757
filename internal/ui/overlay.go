//go:build ebiten

package ui

import (
	"image/color"

	"mad-sand/internal/core"
	"mad-sand/internal/sims/sand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var gridLineColor = color.RGBA{R: 255, G: 255, B: 255, A: 24}

// Overlay draws the brush cursor and an optional cell grid over the view.
type Overlay struct {
	sim      core.Sim
	scale    int
	showGrid bool

	cursorRow, cursorCol int
	cursorOK             bool
	radius               int
	material             sand.CellType
}

// NewOverlay constructs an overlay for a view drawn at the given scale.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: max(scale, 1)}
}

// Update toggles the grid with G and records where the brush would land.
// ok is false when the pointer is outside the grid.
func (o *Overlay) Update(row, col int, ok bool, status Status) {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
	o.cursorRow, o.cursorCol, o.cursorOK = row, col, ok
	o.radius = status.Radius
	o.material = status.Selected
}

// Draw renders the overlay onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	s := float32(o.scale)
	if o.showGrid && o.scale >= 4 {
		w, h := float32(size.W)*s, float32(size.H)*s
		for x := 1; x < size.W; x++ {
			vector.StrokeLine(screen, float32(x)*s, 0, float32(x)*s, h, 1, gridLineColor, false)
		}
		for y := 1; y < size.H; y++ {
			vector.StrokeLine(screen, 0, float32(y)*s, w, float32(y)*s, 1, gridLineColor, false)
		}
	}
	if !o.cursorOK {
		return
	}
	clr := sand.Palette()[o.material.Code()]
	if clr.A == 0 {
		clr = color.RGBA{R: 230, G: 230, B: 240, A: 255}
	}
	cx := (float32(o.cursorCol) + 0.5) * s
	cy := (float32(o.cursorRow) + 0.5) * s
	r := (float32(o.radius) + 0.5) * s
	vector.StrokeCircle(screen, cx, cy, r, 1, clr, true)
}
