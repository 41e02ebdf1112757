package sand

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"mad-sand/internal/core"
)

func expectRows(t *testing.T, g *Grid, rows ...string) {
	t.Helper()
	want := strings.Join(rows, "\n") + "\n"
	if got := g.String(); got != want {
		t.Fatalf("grid mismatch at generation %d:\n got:\n%s want:\n%s", g.Generation(), got, want)
	}
}

func TestGravityScenario(t *testing.T) {
	g := NewGrid(3, 3)
	g.SetCell(0, 1, Sand)

	g.Tick()
	if g.At(1, 1) != Sand {
		t.Fatalf("tick 1: expected sand at (1,1):\n%s", g)
	}
	g.Tick()
	if g.At(2, 1) != Sand {
		t.Fatalf("tick 2: expected sand at (2,1):\n%s", g)
	}
	for i := 0; i < 10; i++ {
		g.Tick()
		if g.At(2, 1) != Sand || g.Census().Count(Sand) != 1 {
			t.Fatalf("tick %d: sand left the floor:\n%s", 3+i, g)
		}
	}
}

func TestDiagonalFallScenario(t *testing.T) {
	g := NewGrid(3, 3)
	g.SetCell(0, 1, Sand)
	g.SetCell(1, 1, Sand)

	g.Tick()
	expectRows(t, g,
		"...",
		"s..",
		".s.",
	)
}

func TestWaterSpreadScenario(t *testing.T) {
	g := gridFromRows(t,
		".~.",
		"###",
		"...",
	)
	g.Tick()
	expectRows(t, g,
		"~..",
		"###",
		"...",
	)
}

func TestWaterPrefersRightWhenLeftBlocked(t *testing.T) {
	g := gridFromRows(t,
		"#~.",
		"###",
	)
	g.Tick()
	expectRows(t, g,
		"#.~",
		"###",
	)
}

func TestSandDoesNotFlowSideways(t *testing.T) {
	g := gridFromRows(t,
		".s.",
		"###",
	)
	for i := 0; i < 3; i++ {
		g.Tick()
	}
	expectRows(t, g,
		".s.",
		"###",
	)
}

func TestSandSettlesOnRockAndBoundary(t *testing.T) {
	g := gridFromRows(t,
		"s..",
		"...",
		"#s.",
	)
	for i := 0; i < 5; i++ {
		g.Tick()
	}
	expectRows(t, g,
		"...",
		"s..",
		"#s.",
	)
}

func TestRockOnlyGridIsFixedPoint(t *testing.T) {
	g := gridFromRows(t,
		"#.#.",
		".##.",
		"#..#",
	)
	before := g.Clone()
	for i := 0; i < 4; i++ {
		g.Tick()
		if !g.Equal(before) {
			t.Fatalf("rock moved on tick %d:\n%s", i+1, g)
		}
	}
}

func TestContestedDestinationGoesToFirstInScanOrder(t *testing.T) {
	g := gridFromRows(t,
		"s.s",
		"#.#",
	)
	g.Tick()
	expectRows(t, g,
		"..s",
		"#s#",
	)
}

func TestTickClaimsOnlyPreTickEmptyCells(t *testing.T) {
	// The upper grain cannot follow the lower one into the cell it vacates
	// during the same tick.
	g := gridFromRows(t,
		"#s#",
		"#s#",
		"#.#",
	)
	g.Tick()
	expectRows(t, g,
		"#s#",
		"#.#",
		"#s#",
	)
}

func TestTickAdvancesGenerationAndView(t *testing.T) {
	g := NewGrid(1, 2)
	g.SetCell(0, 0, Water)
	g.Tick()
	if g.Generation() != 1 {
		t.Fatalf("expected generation 1, got %d", g.Generation())
	}
	view := g.Cells()
	if view[0] != Dead.Code() || view[1] != Water.Code() {
		t.Fatalf("view not refreshed after tick: %v", view)
	}
}

func TestMassConservation(t *testing.T) {
	rng := core.NewRNG(7)
	materials := CellTypes()
	for trial := 0; trial < 25; trial++ {
		w := 1 + rng.Source().IntN(24)
		h := 1 + rng.Source().IntN(24)
		g := NewGrid(w, h)
		for row := 0; row < h; row++ {
			for col := 0; col < w; col++ {
				g.SetCell(row, col, core.Pick(rng, materials))
			}
		}
		want := g.Census()
		for tick := 0; tick < 40; tick++ {
			g.Tick()
			if got := g.Census(); got != want {
				t.Fatalf("trial %d (%dx%d) tick %d: census %+v, expected %+v", trial, w, h, tick+1, got, want)
			}
		}
	}
}

func TestRockNeverMoves(t *testing.T) {
	rng := core.NewRNG(99)
	g := NewGrid(16, 12)
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			g.SetCell(row, col, core.Pick(rng, CellTypes()))
		}
	}
	var rocks [][2]int
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			if g.At(row, col) == Rock {
				rocks = append(rocks, [2]int{row, col})
			}
		}
	}
	for i := 0; i < 30; i++ {
		g.Tick()
		for _, p := range rocks {
			if g.At(p[0], p[1]) != Rock {
				t.Fatalf("rock at (%d,%d) moved on tick %d", p[0], p[1], i+1)
			}
		}
	}
}

func TestTickIsDeterministic(t *testing.T) {
	build := func() *Grid {
		rng := core.NewRNG(3)
		g := NewGrid(20, 15)
		for row := 0; row < g.Height(); row++ {
			for col := 0; col < g.Width(); col++ {
				g.SetCell(row, col, core.Pick(rng, CellTypes()))
			}
		}
		return g
	}
	a, b := build(), build()
	for i := 0; i < 50; i++ {
		a.Tick()
		b.Tick()
		if !a.Equal(b) {
			t.Fatalf("runs diverged at tick %d", i+1)
		}
	}
}

func TestBasinGolden(t *testing.T) {
	g := gridFromRows(t,
		".ss~~ss.",
		"..~ss~..",
		"........",
		"#......#",
		"#..##..#",
		"########",
	)
	var b strings.Builder
	for gen := 0; gen <= 8; gen++ {
		fmt.Fprintf(&b, "gen %d\n", gen)
		b.WriteString(g.String())
		g.Tick()
	}

	gold := goldie.New(t)
	gold.Assert(t, "basin", []byte(b.String()))
}

func BenchmarkTick(b *testing.B) {
	rng := core.NewRNG(1)
	g := NewGrid(256, 256)
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			if rng.Chance(0.3) {
				g.SetCell(row, col, core.Pick(rng, []CellType{Sand, Water, Rock}))
			}
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Tick()
	}
}
