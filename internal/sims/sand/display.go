package sand

import "image/color"

var sandPalette = buildPalette()

// Palette returns the render colors indexed by cell code. Dead maps to a
// fully transparent color so renderers can skip it.
func (s *Sandbox) Palette() []color.RGBA {
	return sandPalette
}

// Palette returns the render colors indexed by cell code.
func Palette() []color.RGBA {
	return sandPalette
}

func buildPalette() []color.RGBA {
	palette := make([]color.RGBA, numCellTypes)
	for _, c := range CellTypes() {
		palette[c.Code()] = toRGBA(paletteColorFor(c))
	}
	return palette
}

func toRGBA(c color.NRGBA) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func paletteColorFor(c CellType) color.NRGBA {
	switch c {
	case Sand:
		return color.NRGBA{R: 222, G: 190, B: 110, A: 255}
	case Water:
		return color.NRGBA{R: 50, G: 120, B: 220, A: 255}
	case Rock:
		return color.NRGBA{R: 120, G: 118, B: 115, A: 255}
	case Dead:
		fallthrough
	default:
		return color.NRGBA{}
	}
}
