package asset

import (
	"image"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-arena/render"
)

// glyphRamp maps luminance from dark to bright
var glyphRamp = []rune(" .:-=+*#%@")

// alphaCutoff is the minimum average alpha (16-bit) for a block to be drawn
const alphaCutoff = 0x8000

// Sprite is an image sampled down to a grid of styled glyphs
type Sprite struct {
	Cells  []render.Cell
	Width  int
	Height int
}

// NewSprite samples img into cols x rows blocks
// Each block averages its pixels; the glyph follows luminance, the foreground follows color
// Returns nil for a nil image or non-positive dimensions
func NewSprite(img image.Image, cols, rows int) *Sprite {
	if img == nil || cols <= 0 || rows <= 0 {
		return nil
	}
	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW == 0 || srcH == 0 {
		return nil
	}

	sp := &Sprite{
		Cells:  make([]render.Cell, cols*rows),
		Width:  cols,
		Height: rows,
	}

	for cy := 0; cy < rows; cy++ {
		y0 := bounds.Min.Y + cy*srcH/rows
		y1 := bounds.Min.Y + (cy+1)*srcH/rows
		if y1 <= y0 {
			y1 = y0 + 1
		}
		for cx := 0; cx < cols; cx++ {
			x0 := bounds.Min.X + cx*srcW/cols
			x1 := bounds.Min.X + (cx+1)*srcW/cols
			if x1 <= x0 {
				x1 = x0 + 1
			}
			sp.Cells[cy*cols+cx] = sampleBlock(img, x0, y0, x1, y1)
		}
	}
	return sp
}

// sampleBlock averages the pixels in [x0,x1) x [y0,y1)
func sampleBlock(img image.Image, x0, y0, x1, y1 int) render.Cell {
	var rSum, gSum, bSum, aSum, n uint64
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			rSum += uint64(r)
			gSum += uint64(g)
			bSum += uint64(b)
			aSum += uint64(a)
			n++
		}
	}
	if n == 0 || aSum/n < alphaCutoff {
		return render.Cell{}
	}
	r, g, b := rSum/n, gSum/n, bSum/n

	// Rec. 601 luma on 16-bit channels
	lum := (299*r + 587*g + 114*b) / 1000
	idx := int(lum * uint64(len(glyphRamp)-1) / 0xffff)
	if idx == 0 {
		// Keep dark but opaque pixels visible
		idx = 1
	}

	color := tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
	return render.Cell{
		Rune:  glyphRamp[idx],
		Style: render.StyleBackground.Foreground(color),
	}
}

// Draw paints the sprite with its top-left corner at (x, y)
// Transparent cells are skipped
func (sp *Sprite) Draw(s render.Surface, x, y int) {
	for cy := 0; cy < sp.Height; cy++ {
		for cx := 0; cx < sp.Width; cx++ {
			cell := sp.Cells[cy*sp.Width+cx]
			if cell.Rune == 0 {
				continue
			}
			s.SetContent(x+cx, y+cy, cell.Rune, nil, cell.Style)
		}
	}
}
