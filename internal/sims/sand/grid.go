package sand

import (
	"fmt"
	"strings"

	"mad-sand/internal/core"
)

// Grid owns the cell state of a sandbox. Cells are addressed by (row, col)
// with row 0 at the top; storage is row-major.
//
// A Grid is not safe for concurrent use. The host is expected to paint,
// read Cells, then Tick, once per frame from a single goroutine.
type Grid struct {
	w, h int
	cur  []CellType
	nxt  []CellType

	// view holds the encoded copy of cur handed to renderers.
	view *core.ByteGrid

	generation uint64
}

// NewGrid allocates a w*h grid with every cell Dead. Non-positive dimensions
// are clamped to one.
func NewGrid(w, h int) *Grid {
	g := &Grid{}
	g.Resize(w, h)
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.w, H: g.h} }

// Generation counts the ticks applied since the last resize or clear.
func (g *Grid) Generation() uint64 { return g.generation }

// Resize reallocates the grid to w*h Dead cells. Non-positive dimensions are
// clamped to one. Views returned by Cells before the call are invalid.
func (g *Grid) Resize(w, h int) {
	w, h = core.ClampSize(w, h)
	g.w, g.h = w, h
	g.cur = make([]CellType, w*h)
	g.nxt = make([]CellType, w*h)
	if g.view == nil {
		g.view = core.NewByteGrid(w, h)
	} else {
		g.view.Resize(w, h)
	}
	g.view.Fill(Dead.Code())
	g.generation = 0
}

// SetWidth resizes to the given width, keeping the height. All cells reset to Dead.
func (g *Grid) SetWidth(w int) { g.Resize(w, g.h) }

// SetHeight resizes to the given height, keeping the width. All cells reset to Dead.
func (g *Grid) SetHeight(h int) { g.Resize(g.w, h) }

// Clear resets every cell to Dead without reallocating.
func (g *Grid) Clear() {
	for i := range g.cur {
		g.cur[i] = Dead
	}
	g.view.Fill(Dead.Code())
	g.generation = 0
}

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.h && col >= 0 && col < g.w
}

func (g *Grid) index(row, col int) int { return row*g.w + col }

// At returns the material at (row, col). Coordinates outside the grid read
// as Rock: the boundary is closed.
func (g *Grid) At(row, col int) CellType {
	if !g.InBounds(row, col) {
		return Rock
	}
	return g.cur[g.index(row, col)]
}

// SetCell stores m at (row, col). Out-of-bounds coordinates and undeclared
// materials are ignored so brushes can paint across the edges freely.
func (g *Grid) SetCell(row, col int, m CellType) {
	if !g.InBounds(row, col) || !m.Valid() {
		return
	}
	idx := g.index(row, col)
	g.cur[idx] = m
	g.view.Cells()[idx] = m.Code()
}

// Cells returns the encoded cell buffer, row-major, one byte per cell
// (Dead=0, Water=1, Sand=2, Rock=3). The slice is shared with the grid: it is
// only valid until the next SetCell, Tick, Clear or Resize, and must not be
// written to.
func (g *Grid) Cells() []uint8 { return g.view.Cells() }

// Census returns the number of cells holding each material.
func (g *Grid) Census() Census {
	var c Census
	for _, m := range g.cur {
		c.counts[m]++
	}
	return c
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.w != other.w || g.h != other.h {
		return false
	}
	for i, m := range g.cur {
		if other.cur[i] != m {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the grid state.
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.w, g.h)
	copy(c.cur, g.cur)
	copy(c.view.Cells(), g.view.Cells())
	c.generation = g.generation
	return c
}

// String renders one line per row using each material's glyph.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.w + 1) * g.h)
	for row := 0; row < g.h; row++ {
		for _, m := range g.cur[row*g.w : (row+1)*g.w] {
			b.WriteRune(m.Glyph())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (g *Grid) syncView() {
	view := g.view.Cells()
	for i, m := range g.cur {
		view[i] = m.Code()
	}
}

// Census holds per-material cell counts.
type Census struct {
	counts [numCellTypes]int
}

// Count returns the number of cells holding m.
func (c Census) Count(m CellType) int {
	if !m.Valid() {
		return 0
	}
	return c.counts[m]
}

// Occupied returns the number of non-Dead cells.
func (c Census) Occupied() int {
	return c.counts[Sand] + c.counts[Water] + c.counts[Rock]
}

// String formats the counts as key=value pairs.
func (c Census) String() string {
	return fmt.Sprintf("sand=%d water=%d rock=%d dead=%d",
		c.counts[Sand], c.counts[Water], c.counts[Rock], c.counts[Dead])
}
