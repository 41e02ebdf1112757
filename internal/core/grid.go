package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions. Dimensions below one
// are clamped to one.
func NewByteGrid(w, h int) *ByteGrid {
	w, h = ClampSize(w, h)
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// ClampSize raises non-positive dimensions to one.
func ClampSize(w, h int) (int, int) {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return w, h
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) lies inside the grid.
func (g *ByteGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the value at (x, y). Callers must check InBounds first.
func (g *ByteGrid) At(x, y int) uint8 { return g.data[y*g.W+x] }

// Set stores v at (x, y) when the coordinates are inside the grid.
func (g *ByteGrid) Set(x, y int, v uint8) {
	if !g.InBounds(x, y) {
		return
	}
	g.data[y*g.W+x] = v
}

// Resize reallocates the grid to w*h zeroed cells. Slices previously returned
// by Cells no longer alias the grid afterwards.
func (g *ByteGrid) Resize(w, h int) {
	w, h = ClampSize(w, h)
	g.W, g.H = w, h
	g.data = make([]uint8, w*h)
}

// Fill sets every cell to v.
func (g *ByteGrid) Fill(v uint8) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() { g.Fill(0) }
