//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from per-cell state values.
type GridPainter struct {
	w, h    int
	palette Palette
	img     *ebiten.Image
	buf     []byte
}

// NewGridPainter allocates a painter for a grid of size w*h drawn with
// palette.
func NewGridPainter(w, h int, palette Palette) *GridPainter {
	gp := &GridPainter{w: w, h: h, palette: palette, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit maps cells through the palette, uploads them and draws the image
// scaled.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	gp.palette.fill(gp.buf, cells)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
