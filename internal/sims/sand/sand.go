package sand

import "mad-sand/internal/core"

// Sandbox adapts a Grid to the core.Sim contract so the shared app loop,
// HUD and CLI can drive it.
type Sandbox struct {
	cfg  Config
	grid *Grid
}

// New returns a sandbox with the provided dimensions using defaults.
func New(w, h int) *Sandbox {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a sandbox configured from the provided options. The
// grid starts empty; call Reset to apply the random fill.
func NewWithConfig(cfg Config) *Sandbox {
	cfg.Width, cfg.Height = core.ClampSize(cfg.Width, cfg.Height)
	return &Sandbox{cfg: cfg, grid: NewGrid(cfg.Width, cfg.Height)}
}

// Name returns the simulation identifier.
func (s *Sandbox) Name() string { return "sand" }

// Size reports the grid dimensions.
func (s *Sandbox) Size() core.Size { return s.grid.Size() }

// Grid exposes the underlying grid.
func (s *Sandbox) Grid() *Grid { return s.grid }

// Config returns the active configuration.
func (s *Sandbox) Config() Config { return s.cfg }

// Cells exposes the encoded cell view. See Grid.Cells for its lifetime.
func (s *Sandbox) Cells() []uint8 { return s.grid.Cells() }

// Step advances the sandbox by one tick.
func (s *Sandbox) Step() { s.grid.Tick() }

// SetCell paints a single cell; out-of-bounds coordinates are ignored.
func (s *Sandbox) SetCell(row, col int, m CellType) { s.grid.SetCell(row, col, m) }

// SetWidth resizes the grid width and clears every cell.
func (s *Sandbox) SetWidth(w int) {
	s.grid.SetWidth(w)
	s.cfg.Width = s.grid.Width()
}

// SetHeight resizes the grid height and clears every cell.
func (s *Sandbox) SetHeight(h int) {
	s.grid.SetHeight(h)
	s.cfg.Height = s.grid.Height()
}

// Reset clears the grid and, when the config asks for it, scatters grains
// over the upper half using deterministic randomness. A zero seed falls back
// to the configured seed.
func (s *Sandbox) Reset(seed int64) {
	s.grid.Clear()
	if s.cfg.Fill <= 0 {
		return
	}
	effective := seed
	if effective == 0 {
		effective = s.cfg.Seed
	}
	rng := core.NewRNG(effective)
	choices := []CellType{Sand, Water}
	if s.cfg.Rock {
		choices = append(choices, Rock)
	}
	w, h := s.grid.Width(), s.grid.Height()
	for row := 0; row < (h+1)/2; row++ {
		for col := 0; col < w; col++ {
			if !rng.Chance(s.cfg.Fill) {
				continue
			}
			s.grid.SetCell(row, col, core.Pick(rng, choices))
		}
	}
}

func init() {
	core.Register("sand", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
