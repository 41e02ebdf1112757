package sand

type offset struct{ dr, dc int }

// Candidate destinations per material, in preference order. Rows grow
// downwards, so dr=1 is the cell below.
var (
	sandMoves = []offset{
		{1, 0},
		{1, -1},
		{1, 1},
	}
	waterMoves = []offset{
		{1, 0},
		{1, -1},
		{1, 1},
		{0, -1},
		{0, 1},
	}
)

func movesFor(m CellType) []offset {
	switch m {
	case Sand:
		return sandMoves
	case Water:
		return waterMoves
	default:
		return nil
	}
}

// Tick advances the grid by one generation.
//
// Every rule reads the pre-tick cells and writes into the scratch buffer,
// which is swapped in at the end. Sources are visited bottom row first, left
// to right; the first source to pick a destination claims it and later
// sources fall through to their next option. A destination must be Dead in
// the pre-tick grid and unclaimed, so every grain ends up in exactly one cell.
func (g *Grid) Tick() {
	next := g.nxt
	for i := range next {
		next[i] = Dead
	}

	for row := g.h - 1; row >= 0; row-- {
		base := row * g.w
		for col := 0; col < g.w; col++ {
			m := g.cur[base+col]
			if m == Dead {
				continue
			}
			next[g.destination(next, row, col, movesFor(m))] = m
		}
	}

	g.cur, g.nxt = next, g.cur
	g.syncView()
	g.generation++
}

// destination returns the index the cell at (row, col) occupies next tick.
// Cells outside the grid count as Rock and are never candidates.
func (g *Grid) destination(next []CellType, row, col int, moves []offset) int {
	for _, mv := range moves {
		r, c := row+mv.dr, col+mv.dc
		if !g.InBounds(r, c) {
			continue
		}
		idx := g.index(r, c)
		if g.cur[idx] == Dead && next[idx] == Dead {
			return idx
		}
	}
	return g.index(row, col)
}
