package render

import "image/color"

// fillPaletteRGBA converts cell codes into RGBA pixels using a palette and
// returns the number of opaque pixels written. Cells whose palette color is
// fully transparent are cleared and skipped. Codes past the end of the
// palette use its last entry. When the palette is empty the buffer is
// cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) int {
	drawn := 0
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return drawn
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		if col.A == 0 {
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
			continue
		}
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
		drawn++
	}
	return drawn
}
