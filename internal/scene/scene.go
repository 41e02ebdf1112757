// Package scene loads and saves sandbox layouts as YAML documents.
//
// A scene names its grid size and paints cells either from glyph rows
// ('.' dead, 's' sand, '~' water, '#' rock) or from a sparse cell list:
//
//	name: basin
//	size: {w: 8, h: 4}
//	rows:
//	  - ".ss~~ss."
//	  - "........"
//	cells:
//	  - {row: 3, col: 0, material: rock}
//
// Cells listed explicitly are applied after the rows.
package scene

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"mad-sand/internal/sims/sand"
)

// ErrDimensions reports a scene whose size or rows do not fit together.
var ErrDimensions = errors.New("scene: invalid dimensions")

// Scene is a parsed, validated layout.
type Scene struct {
	Name   string
	Width  int
	Height int
	Cells  []Cell
}

// Cell places one material.
type Cell struct {
	Row, Col int
	Material sand.CellType
}

type yamlScene struct {
	Name  string     `yaml:"name"`
	Size  yamlSize   `yaml:"size"`
	Rows  []string   `yaml:"rows,omitempty"`
	Cells []yamlCell `yaml:"cells,omitempty"`
}

type yamlSize struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

type yamlCell struct {
	Row      int    `yaml:"row"`
	Col      int    `yaml:"col"`
	Material string `yaml:"material"`
}

// Load reads and parses the scene file at path.
func Load(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("scene: read %s: %w", path, err)
	}
	sc, err := Parse(data)
	if err != nil {
		return Scene{}, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes a YAML scene. A missing size is inferred from the rows.
func Parse(data []byte) (Scene, error) {
	var ys yamlScene
	if err := yaml.Unmarshal(data, &ys); err != nil {
		return Scene{}, fmt.Errorf("scene: yaml unmarshal: %w", err)
	}

	w, h := ys.Size.W, ys.Size.H
	if w == 0 && h == 0 && len(ys.Rows) > 0 {
		h = len(ys.Rows)
		for _, r := range ys.Rows {
			w = max(w, len([]rune(r)))
		}
	}
	if w <= 0 || h <= 0 {
		return Scene{}, fmt.Errorf("%w: size %dx%d", ErrDimensions, w, h)
	}
	if len(ys.Rows) > h {
		return Scene{}, fmt.Errorf("%w: %d rows for height %d", ErrDimensions, len(ys.Rows), h)
	}

	sc := Scene{Name: ys.Name, Width: w, Height: h}
	for row, line := range ys.Rows {
		glyphs := []rune(line)
		if len(glyphs) > w {
			return Scene{}, fmt.Errorf("%w: row %d has %d cells for width %d", ErrDimensions, row, len(glyphs), w)
		}
		for col, g := range glyphs {
			m, err := sand.CellTypeFromGlyph(g)
			if err != nil {
				return Scene{}, fmt.Errorf("scene: row %d col %d: %w", row, col, err)
			}
			if m == sand.Dead {
				continue
			}
			sc.Cells = append(sc.Cells, Cell{Row: row, Col: col, Material: m})
		}
	}
	for i, yc := range ys.Cells {
		m, err := sand.ParseCellType(yc.Material)
		if err != nil {
			return Scene{}, fmt.Errorf("scene: cell %d: %w", i, err)
		}
		if yc.Row < 0 || yc.Row >= h || yc.Col < 0 || yc.Col >= w {
			return Scene{}, fmt.Errorf("%w: cell %d at (%d,%d) outside %dx%d", ErrDimensions, i, yc.Row, yc.Col, w, h)
		}
		sc.Cells = append(sc.Cells, Cell{Row: yc.Row, Col: yc.Col, Material: m})
	}
	return sc, nil
}

// Apply resizes g to the scene dimensions, which clears it, and paints the
// scene cells.
func (s Scene) Apply(g *sand.Grid) {
	g.Resize(s.Width, s.Height)
	for _, c := range s.Cells {
		g.SetCell(c.Row, c.Col, c.Material)
	}
}

// FromGrid captures the current contents of g as a scene.
func FromGrid(g *sand.Grid, name string) Scene {
	sc := Scene{Name: name, Width: g.Width(), Height: g.Height()}
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			if m := g.At(row, col); m != sand.Dead {
				sc.Cells = append(sc.Cells, Cell{Row: row, Col: col, Material: m})
			}
		}
	}
	return sc
}

// Rows renders the scene as glyph rows.
func (s Scene) Rows() []string {
	grid := make([][]rune, s.Height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(string(sand.Dead.Glyph()), s.Width))
	}
	for _, c := range s.Cells {
		grid[c.Row][c.Col] = c.Material.Glyph()
	}
	rows := make([]string, s.Height)
	for i, r := range grid {
		rows[i] = string(r)
	}
	return rows
}

// Marshal encodes the scene as YAML using glyph rows.
func (s Scene) Marshal() ([]byte, error) {
	ys := yamlScene{
		Name: s.Name,
		Size: yamlSize{W: s.Width, H: s.Height},
		Rows: s.Rows(),
	}
	data, err := yaml.Marshal(&ys)
	if err != nil {
		return nil, fmt.Errorf("scene: yaml marshal: %w", err)
	}
	return data, nil
}

// Save writes the scene to path.
func (s Scene) Save(path string) error {
	data, err := s.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("scene: write %s: %w", path, err)
	}
	return nil
}
