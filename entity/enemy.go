package entity

import (
	"github.com/lixenwraith/vi-arena/constants"
	"github.com/lixenwraith/vi-arena/render"
	"github.com/lixenwraith/vi-arena/vmath"
)

// EnemySpec holds the tunable enemy parameters
type EnemySpec struct {
	Width  float64
	Height float64
	Speed  float64
	Health int
}

// DefaultEnemySpec is the one-cell, speed 2, 100 health enemy
var DefaultEnemySpec = EnemySpec{
	Width:  1,
	Height: 1,
	Speed:  constants.EnemySpeed,
	Health: constants.EnemyHealth,
}

// Enemy walks left every tick and dies once its health reaches zero
type Enemy struct {
	pos       vmath.Vec2
	spec      EnemySpec
	health    int
	dead      bool
	deathHook func(*Enemy)
}

// NewEnemy creates an enemy at (x, y) with default parameters
func NewEnemy(x, y float64) *Enemy {
	return NewEnemyFrom(x, y, DefaultEnemySpec)
}

// NewEnemyFrom creates an enemy at (x, y) with the given parameters
func NewEnemyFrom(x, y float64, spec EnemySpec) *Enemy {
	return &Enemy{pos: vmath.V2(x, y), spec: spec, health: spec.Health}
}

// OnDeath installs the hook run by Die, replacing any previous hook
func (e *Enemy) OnDeath(fn func(*Enemy)) {
	e.deathHook = fn
}

// Move steps left by speed, unconditionally
func (e *Enemy) Move() {
	e.pos.X -= e.spec.Speed
}

func (e *Enemy) Update() {
	e.Move()
}

// TakeDamage subtracts amount from health and calls Die when health drops to zero or below
// Health is not clamped and amount is not validated
func (e *Enemy) TakeDamage(amount int) {
	e.health -= amount
	if e.health <= 0 {
		e.Die()
	}
}

// Die marks the enemy dead and runs the death hook
// Calls after the first are ignored
func (e *Enemy) Die() {
	if e.dead {
		return
	}
	e.dead = true
	if e.deathHook != nil {
		e.deathHook(e)
	}
}

func (e *Enemy) Health() int {
	return e.health
}

func (e *Enemy) Dead() bool {
	return e.dead
}

func (e *Enemy) Position() vmath.Vec2 {
	return e.pos
}

func (e *Enemy) Speed() float64 {
	return e.spec.Speed
}

func (e *Enemy) Bounds() vmath.Rect {
	return vmath.RectAt(e.pos, e.spec.Width, e.spec.Height)
}

func (e *Enemy) Kind() Kind {
	return KindEnemy
}

func (e *Enemy) Draw(s render.Surface) {
	ratio := 1.0
	if e.spec.Health > 0 {
		ratio = float64(e.health) / float64(e.spec.Health)
	}
	fillCells(s, e.pos, e.spec.Width, e.spec.Height, constants.EnemyChar, render.EnemyStyle(ratio))
}
