package entity

import (
	"github.com/lixenwraith/vi-arena/asset"
	"github.com/lixenwraith/vi-arena/constants"
	"github.com/lixenwraith/vi-arena/render"
	"github.com/lixenwraith/vi-arena/vmath"
)

// PlayerSpec holds the tunable player parameters
type PlayerSpec struct {
	Width  float64
	Height float64
	Speed  float64
}

// DefaultPlayerSpec is the 50x60 speed 5 player
var DefaultPlayerSpec = PlayerSpec{
	Width:  constants.PlayerWidth,
	Height: constants.PlayerHeight,
	Speed:  constants.PlayerSpeed,
}

// Player is the input-driven actor
type Player struct {
	pos    vmath.Vec2
	spec   PlayerSpec
	sprite *asset.Sprite
}

// NewPlayer creates a player at (x, y) with default parameters
func NewPlayer(x, y float64) *Player {
	return NewPlayerFrom(x, y, DefaultPlayerSpec)
}

// NewPlayerFrom creates a player at (x, y) with the given parameters
func NewPlayerFrom(x, y float64, spec PlayerSpec) *Player {
	return &Player{pos: vmath.V2(x, y), spec: spec}
}

// Move scales the input vector by speed and adds it to the position
// No bounds checking; callers clamp if needed
func (p *Player) Move(dx, dy float64) {
	p.pos = p.pos.Add(vmath.V2(dx, dy).Scale(p.spec.Speed))
}

// SetPosition places the player at pos
func (p *Player) SetPosition(pos vmath.Vec2) {
	p.pos = pos
}

// SetSprite replaces the fallback glyph block, nil restores it
func (p *Player) SetSprite(sp *asset.Sprite) {
	p.sprite = sp
}

func (p *Player) Position() vmath.Vec2 {
	return p.pos
}

// Size returns width and height in world units
func (p *Player) Size() (float64, float64) {
	return p.spec.Width, p.spec.Height
}

func (p *Player) Speed() float64 {
	return p.spec.Speed
}

func (p *Player) Bounds() vmath.Rect {
	return vmath.RectAt(p.pos, p.spec.Width, p.spec.Height)
}

func (p *Player) Kind() Kind {
	return KindPlayer
}

// Update is a no-op, the player only changes through Move
func (p *Player) Update() {}

// Dead is always false, players are removed only by eviction
func (p *Player) Dead() bool {
	return false
}

func (p *Player) Draw(s render.Surface) {
	if p.sprite != nil {
		x, y := p.pos.Cell()
		p.sprite.Draw(s, x, y)
		return
	}
	fillCells(s, p.pos, p.spec.Width, p.spec.Height, constants.PlayerChar, render.StylePlayer)
}
