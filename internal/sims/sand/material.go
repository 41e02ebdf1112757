package sand

import (
	"errors"
	"fmt"
	"strings"
)

// CellType enumerates the materials a cell can hold. The declaration order is
// semantic; the byte encoding seen by renderers is defined by Code.
type CellType uint8

const (
	Dead CellType = iota
	Sand
	Water
	Rock

	numCellTypes
)

var (
	// ErrUnknownCode reports a byte outside the fixed cell encoding.
	ErrUnknownCode = errors.New("sand: unknown cell code")
	// ErrUnknownMaterial reports a material name or glyph that does not map to a CellType.
	ErrUnknownMaterial = errors.New("sand: unknown material")
)

// codes is the external byte encoding. It is fixed by the renderer contract
// and must not change.
var codes = [numCellTypes]uint8{
	Dead:  0,
	Water: 1,
	Sand:  2,
	Rock:  3,
}

var byCode = func() map[uint8]CellType {
	m := make(map[uint8]CellType, numCellTypes)
	for c := Dead; c < numCellTypes; c++ {
		m[codes[c]] = c
	}
	return m
}()

var names = [numCellTypes]string{
	Dead:  "dead",
	Sand:  "sand",
	Water: "water",
	Rock:  "rock",
}

var glyphs = [numCellTypes]rune{
	Dead:  '.',
	Sand:  's',
	Water: '~',
	Rock:  '#',
}

// CellTypes lists every material in declaration order.
func CellTypes() []CellType {
	return []CellType{Dead, Sand, Water, Rock}
}

// Valid reports whether c is one of the declared materials.
func (c CellType) Valid() bool { return c < numCellTypes }

// Code returns the byte encoding of c used by the exported cell view.
func (c CellType) Code() uint8 {
	if !c.Valid() {
		return codes[Dead]
	}
	return codes[c]
}

// DecodeCellType maps an encoded byte back to its CellType.
func DecodeCellType(code uint8) (CellType, error) {
	c, ok := byCode[code]
	if !ok {
		return Dead, fmt.Errorf("%w: %d", ErrUnknownCode, code)
	}
	return c, nil
}

// String returns the lower-case material name.
func (c CellType) String() string {
	if !c.Valid() {
		return fmt.Sprintf("CellType(%d)", uint8(c))
	}
	return names[c]
}

// Glyph returns the single-character form used by text renderings and scenes.
func (c CellType) Glyph() rune {
	if !c.Valid() {
		return '?'
	}
	return glyphs[c]
}

// ParseCellType accepts a material name (case-insensitive). "empty" and "air"
// are accepted as aliases for Dead.
func ParseCellType(name string) (CellType, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	switch key {
	case "empty", "air":
		return Dead, nil
	}
	for c := Dead; c < numCellTypes; c++ {
		if names[c] == key {
			return c, nil
		}
	}
	return Dead, fmt.Errorf("%w: %q", ErrUnknownMaterial, name)
}

// CellTypeFromGlyph maps a rendering glyph back to its CellType.
func CellTypeFromGlyph(r rune) (CellType, error) {
	for c := Dead; c < numCellTypes; c++ {
		if glyphs[c] == r {
			return c, nil
		}
	}
	return Dead, fmt.Errorf("%w: glyph %q", ErrUnknownMaterial, r)
}
