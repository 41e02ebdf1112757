package app

import (
	"strconv"

	"mad-sand/internal/brush"
	"mad-sand/internal/sims/sand"
)

const maxBrushRadius = 32

// Controller turns pointer strokes and material selections into SetCell
// calls on a grid. It holds no reference to the window so it can be driven
// headlessly.
type Controller struct {
	target   brush.Painter
	cycle    []sand.CellType
	selected sand.CellType
	radius   int

	last    brush.Point
	hasLast bool
}

// NewController returns a Controller painting into target. Rock is only
// selectable when rock is true.
func NewController(target brush.Painter, radius int, rock bool) *Controller {
	c := &Controller{target: target, cycle: brush.Materials(rock)}
	c.selected = c.cycle[0]
	c.SetRadius(radius)
	return c
}

// Selected returns the material painted by Press.
func (c *Controller) Selected() sand.CellType { return c.selected }

// Select switches the brush material. It reports false when m is not part of
// the selectable cycle.
func (c *Controller) Select(m sand.CellType) bool {
	for _, opt := range c.cycle {
		if opt == m {
			c.selected = m
			return true
		}
	}
	return false
}

// Cycle advances to the next selectable material.
func (c *Controller) Cycle() sand.CellType {
	c.selected = brush.Next(c.cycle, c.selected)
	return c.selected
}

// Radius returns the brush radius in cells.
func (c *Controller) Radius() int { return c.radius }

// SetRadius clamps r into [0, maxBrushRadius].
func (c *Controller) SetRadius(r int) {
	c.radius = min(max(r, 0), maxBrushRadius)
}

// Press paints the selected material at (row, col). Consecutive presses
// without a Release are joined by a stroke.
func (c *Controller) Press(row, col int) {
	c.PressWith(row, col, c.selected)
}

// PressWith is Press with an explicit material, used for erasing.
func (c *Controller) PressWith(row, col int, m sand.CellType) {
	if c.hasLast {
		brush.Stroke(c.target, c.last.Row, c.last.Col, row, col, c.radius, m)
	} else {
		brush.Paint(c.target, row, col, c.radius, m)
	}
	c.last = brush.Point{Row: row, Col: col}
	c.hasLast = true
}

// Release ends the current stroke.
func (c *Controller) Release() { c.hasLast = false }

// ScreenToCell maps a screen pixel to grid coordinates for the given scale.
// Pixels left of or above the origin map to negative coordinates.
func ScreenToCell(x, y, scale int) (row, col int) {
	if scale <= 0 {
		scale = 1
	}
	return floorDiv(y, scale), floorDiv(x, scale)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

func itoa(v int) string { return strconv.Itoa(v) }

func itoa64(v int64) string { return strconv.FormatInt(v, 10) }

func ftoa(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func btoa(v bool) string { return strconv.FormatBool(v) }
