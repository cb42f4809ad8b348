// Package render defines the cell surface entities draw on and an in-memory implementation
package render

import "github.com/gdamore/tcell/v2"

// Surface is the drawable target handed to every Draw and Render call
// Signatures match tcell.Screen so a live screen can be passed directly
type Surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// Screen is a Surface that can be cleared and presented once per frame
type Screen interface {
	Surface
	Clear()
	Show()
}
