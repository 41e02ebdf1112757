//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads encoded cell data into a single RGBA image and draws
// it scaled onto the screen.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte

	background color.Color
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int, background color.Color) *GridPainter {
	gp := &GridPainter{background: background}
	gp.resize(w, h)
	return gp
}

func (gp *GridPainter) resize(w, h int) {
	gp.w, gp.h = w, h
	gp.buf = make([]byte, 4*w*h)
	if gp.img != nil {
		gp.img.Dispose()
	}
	gp.img = ebiten.NewImage(w, h)
}

// Blit converts the cells through palette and draws them onto dst. The
// painter follows grid resizes; cells must be read from the grid on the same
// frame they are drawn.
func (gp *GridPainter) Blit(dst *ebiten.Image, w, h int, cells []uint8, palette []color.RGBA, scale int) {
	if len(cells) != w*h || w <= 0 || h <= 0 {
		return
	}
	if w != gp.w || h != gp.h {
		gp.resize(w, h)
	}
	if scale <= 0 {
		scale = 1
	}
	if gp.background != nil {
		dst.Fill(gp.background)
	}
	fillPaletteRGBA(gp.buf, cells, palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
