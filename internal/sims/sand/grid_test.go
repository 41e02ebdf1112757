package sand

import (
	"slices"
	"testing"
)

// gridFromRows builds a grid from glyph rows ('.', 's', '~', '#').
func gridFromRows(t *testing.T, rows ...string) *Grid {
	t.Helper()
	g := NewGrid(len([]rune(rows[0])), len(rows))
	for row, line := range rows {
		for col, r := range []rune(line) {
			m, err := CellTypeFromGlyph(r)
			if err != nil {
				t.Fatalf("row %d col %d: %v", row, col, err)
			}
			g.SetCell(row, col, m)
		}
	}
	return g
}

func TestNewGridIsDead(t *testing.T) {
	g := NewGrid(4, 3)
	if g.Width() != 4 || g.Height() != 3 {
		t.Fatalf("expected 4x3, got %dx%d", g.Width(), g.Height())
	}
	if len(g.Cells()) != 12 {
		t.Fatalf("expected 12 cells, got %d", len(g.Cells()))
	}
	for i, v := range g.Cells() {
		if v != Dead.Code() {
			t.Fatalf("cell %d = %d, expected dead", i, v)
		}
	}
}

func TestNewGridClampsZeroDimensions(t *testing.T) {
	g := NewGrid(0, -5)
	if g.Width() != 1 || g.Height() != 1 {
		t.Fatalf("expected clamp to 1x1, got %dx%d", g.Width(), g.Height())
	}
	g.Resize(3, 0)
	if g.Width() != 3 || g.Height() != 1 {
		t.Fatalf("expected clamp to 3x1, got %dx%d", g.Width(), g.Height())
	}
}

func TestSetCellWritesView(t *testing.T) {
	g := NewGrid(3, 2)
	g.SetCell(1, 2, Sand)
	g.SetCell(0, 0, Water)
	g.SetCell(0, 1, Rock)

	want := []uint8{1, 3, 0, 0, 0, 2}
	if !slices.Equal(g.Cells(), want) {
		t.Fatalf("view = %v, expected %v", g.Cells(), want)
	}
	if g.At(1, 2) != Sand {
		t.Fatalf("At(1,2) = %s, expected sand", g.At(1, 2))
	}
}

func TestSetCellOutOfBoundsIsNoOp(t *testing.T) {
	g := NewGrid(3, 3)
	g.SetCell(1, 1, Water)
	before := slices.Clone(g.Cells())

	g.SetCell(-1, 0, Sand)
	g.SetCell(g.Height(), 0, Sand)
	g.SetCell(0, -1, Sand)
	g.SetCell(0, g.Width(), Sand)
	g.SetCell(0, 0, CellType(200))

	if !slices.Equal(before, g.Cells()) {
		t.Fatalf("out-of-bounds writes changed the grid: %v -> %v", before, g.Cells())
	}
}

func TestAtOutsideIsRock(t *testing.T) {
	g := NewGrid(2, 2)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if got := g.At(p[0], p[1]); got != Rock {
			t.Fatalf("At(%d,%d) = %s, expected rock boundary", p[0], p[1], got)
		}
	}
}

func TestResizeClears(t *testing.T) {
	g := gridFromRows(t,
		"s~#",
		"~s#",
	)
	g.Tick()

	g.Resize(5, 4)
	assertAllDead(t, g, 5, 4)

	g.SetCell(2, 2, Sand)
	g.SetWidth(7)
	assertAllDead(t, g, 7, 4)

	g.SetCell(3, 6, Rock)
	g.SetHeight(2)
	assertAllDead(t, g, 7, 2)

	if g.Generation() != 0 {
		t.Fatalf("expected generation reset on resize, got %d", g.Generation())
	}
}

func assertAllDead(t *testing.T, g *Grid, w, h int) {
	t.Helper()
	if g.Width() != w || g.Height() != h {
		t.Fatalf("expected %dx%d, got %dx%d", w, h, g.Width(), g.Height())
	}
	if len(g.Cells()) != w*h {
		t.Fatalf("expected %d cells, got %d", w*h, len(g.Cells()))
	}
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			if m := g.At(row, col); m != Dead {
				t.Fatalf("cell (%d,%d) = %s after resize", row, col, m)
			}
		}
	}
	for i, v := range g.Cells() {
		if v != Dead.Code() {
			t.Fatalf("view byte %d = %d after resize", i, v)
		}
	}
}

func TestResizeInvalidatesOldView(t *testing.T) {
	g := NewGrid(2, 2)
	old := g.Cells()
	g.Resize(2, 2)
	g.SetCell(0, 0, Rock)
	if old[0] != Dead.Code() {
		t.Fatal("view taken before resize must not alias the new storage")
	}
}

func TestCensus(t *testing.T) {
	g := gridFromRows(t,
		"ss~.",
		"#..~",
	)
	c := g.Census()
	if c.Count(Sand) != 2 || c.Count(Water) != 2 || c.Count(Rock) != 1 || c.Count(Dead) != 3 {
		t.Fatalf("unexpected census %+v", c)
	}
	if c.Occupied() != 5 {
		t.Fatalf("expected 5 occupied cells, got %d", c.Occupied())
	}
	if got := c.String(); got != "sand=2 water=2 rock=1 dead=3" {
		t.Fatalf("unexpected census string %q", got)
	}
}

func TestStringAndClone(t *testing.T) {
	g := gridFromRows(t,
		".s.",
		"~#.",
	)
	if got, want := g.String(), ".s.\n~#.\n"; got != want {
		t.Fatalf("String() = %q, expected %q", got, want)
	}

	c := g.Clone()
	if !c.Equal(g) {
		t.Fatal("clone differs from source")
	}
	c.SetCell(0, 0, Rock)
	if c.Equal(g) {
		t.Fatal("clone shares storage with source")
	}
	if g.At(0, 0) != Dead {
		t.Fatal("mutating the clone changed the source")
	}
}
