package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// DrawText writes text starting at (x, y) and returns the number of columns used
// Wide runes advance by their display width
func DrawText(s Surface, x, y int, text string, style tcell.Style) int {
	col := x
	for _, r := range text {
		s.SetContent(col, y, r, nil, style)
		w := runewidth.RuneWidth(r)
		if w < 1 {
			w = 1
		}
		col += w
	}
	return col - x
}

// DrawCentered writes text horizontally centered on row y
func DrawCentered(s Surface, y int, text string, style tcell.Style) {
	width, _ := s.Size()
	x := (width - runewidth.StringWidth(text)) / 2
	if x < 0 {
		x = 0
	}
	DrawText(s, x, y, text, style)
}

// Fill paints every cell of the surface with a blank in the given style
func Fill(s Surface, style tcell.Style) {
	width, height := s.Size()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			s.SetContent(x, y, ' ', nil, style)
		}
	}
}
