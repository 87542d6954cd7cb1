package render

import "image/color"

// Palette maps a cell state, used as an index, to its display color.
type Palette []color.RGBA

// Unknown marks states the palette has no entry for.
var Unknown = color.RGBA{R: 255, G: 0, B: 255, A: 255}

// At returns the color of state.
func (p Palette) At(state uint8) color.RGBA {
	if int(state) >= len(p) {
		return Unknown
	}
	return p[state]
}

// fill writes one RGBA pixel per cell into buf, which must hold 4*len(cells)
// bytes.
func (p Palette) fill(buf []byte, cells []uint8) {
	for i, c := range cells {
		col := p.At(c)
		px := buf[i*4 : i*4+4]
		px[0], px[1], px[2], px[3] = col.R, col.G, col.B, col.A
	}
}
