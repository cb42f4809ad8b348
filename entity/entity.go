// Package entity defines the in-scene actors: the capability interfaces every actor
// implements and the Player and Enemy variants
package entity

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-arena/render"
	"github.com/lixenwraith/vi-arena/vmath"
)

// Kind tags the concrete variant behind an Entity
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Updatable advances its own state by one tick
type Updatable interface {
	Update()
}

// Drawable paints itself onto a surface
type Drawable interface {
	Draw(s render.Surface)
}

// Entity is a positioned actor owned by a scene
type Entity interface {
	Updatable
	Drawable
	Kind() Kind
	Position() vmath.Vec2
	Bounds() vmath.Rect
	// Dead reports the entity should be removed at the end of the tick
	Dead() bool
}

// cellSpan converts a world extent to a cell count, at least one cell
func cellSpan(extent float64) int {
	n := int(math.Ceil(extent))
	if n < 1 {
		n = 1
	}
	return n
}

// fillCells paints a w x h block of glyphs anchored at the rounded position
func fillCells(s render.Surface, pos vmath.Vec2, width, height float64, ch rune, style tcell.Style) {
	x0, y0 := pos.Cell()
	w, h := cellSpan(width), cellSpan(height)
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			s.SetContent(x, y, ch, nil, style)
		}
	}
}
