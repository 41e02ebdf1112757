// Package brush shapes pointer strokes into grid coordinates.
package brush

import "mad-sand/internal/sims/sand"

// Point addresses a grid cell.
type Point struct {
	Row, Col int
}

// Painter is the subset of the grid the brush writes through.
type Painter interface {
	SetCell(row, col int, m sand.CellType)
}

// Disc returns the cells within radius of (row, col), in row-major order.
// A zero radius is the centre cell alone; a negative radius is empty.
// Points may fall outside the grid; the grid ignores them.
func Disc(row, col, radius int) []Point {
	if radius < 0 {
		return nil
	}
	r2 := radius * radius
	pts := make([]Point, 0, (2*radius+1)*(2*radius+1))
	for dr := -radius; dr <= radius; dr++ {
		for dc := -radius; dc <= radius; dc++ {
			if dr*dr+dc*dc > r2 {
				continue
			}
			pts = append(pts, Point{Row: row + dr, Col: col + dc})
		}
	}
	return pts
}

// Paint stamps a disc of material m onto p.
func Paint(p Painter, row, col, radius int, m sand.CellType) {
	for _, pt := range Disc(row, col, radius) {
		p.SetCell(pt.Row, pt.Col, m)
	}
}

// Stroke stamps discs along the segment from (r0, c0) to (r1, c1) so fast
// pointer drags leave a continuous line.
func Stroke(p Painter, r0, c0, r1, c1, radius int, m sand.CellType) {
	dr, dc := r1-r0, c1-c0
	steps := max(abs(dr), abs(dc))
	if steps == 0 {
		Paint(p, r0, c0, radius, m)
		return
	}
	for i := 0; i <= steps; i++ {
		row := r0 + (dr*i+sign(dr)*steps/2)/steps
		col := c0 + (dc*i+sign(dc)*steps/2)/steps
		Paint(p, row, col, radius, m)
	}
}

// Materials lists the selectable materials in cycle order. Rock is only
// offered when rock is true.
func Materials(rock bool) []sand.CellType {
	if rock {
		return []sand.CellType{sand.Sand, sand.Water, sand.Rock, sand.Dead}
	}
	return []sand.CellType{sand.Sand, sand.Water, sand.Dead}
}

// Next returns the material after current in the cycle. Unknown materials
// restart the cycle.
func Next(cycle []sand.CellType, current sand.CellType) sand.CellType {
	if len(cycle) == 0 {
		return current
	}
	for i, m := range cycle {
		if m == current {
			return cycle[(i+1)%len(cycle)]
		}
	}
	return cycle[0]
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
