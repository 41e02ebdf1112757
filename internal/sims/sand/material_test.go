package sand

import (
	"errors"
	"testing"
)

func TestCodesAreStable(t *testing.T) {
	want := map[CellType]uint8{Dead: 0, Water: 1, Sand: 2, Rock: 3}
	for c, code := range want {
		if got := c.Code(); got != code {
			t.Fatalf("%s encodes as %d, expected %d", c, got, code)
		}
		back, err := DecodeCellType(code)
		if err != nil {
			t.Fatalf("decode %d: %v", code, err)
		}
		if back != c {
			t.Fatalf("decode %d returned %s, expected %s", code, back, c)
		}
	}
}

func TestDecodeRejectsUnknownCodes(t *testing.T) {
	if _, err := DecodeCellType(4); !errors.Is(err, ErrUnknownCode) {
		t.Fatalf("expected ErrUnknownCode, got %v", err)
	}
}

func TestParseCellType(t *testing.T) {
	cases := map[string]CellType{
		"sand":   Sand,
		" Water": Water,
		"ROCK":   Rock,
		"dead":   Dead,
		"empty":  Dead,
	}
	for in, want := range cases {
		got, err := ParseCellType(in)
		if err != nil {
			t.Fatalf("ParseCellType(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseCellType(%q) = %s, expected %s", in, got, want)
		}
	}
	if _, err := ParseCellType("lava"); !errors.Is(err, ErrUnknownMaterial) {
		t.Fatalf("expected ErrUnknownMaterial for lava, got %v", err)
	}
}

func TestGlyphRoundTrip(t *testing.T) {
	for _, c := range CellTypes() {
		back, err := CellTypeFromGlyph(c.Glyph())
		if err != nil {
			t.Fatalf("glyph %q: %v", c.Glyph(), err)
		}
		if back != c {
			t.Fatalf("glyph %q decoded to %s, expected %s", c.Glyph(), back, c)
		}
	}
	if _, err := CellTypeFromGlyph('x'); !errors.Is(err, ErrUnknownMaterial) {
		t.Fatalf("expected ErrUnknownMaterial for 'x', got %v", err)
	}
}
