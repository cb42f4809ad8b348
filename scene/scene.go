// Package scene implements the screens driven by the game loop
//
// A scene receives input events, advances one tick per Update and paints itself
// in Render. Scenes never switch themselves: they emit an Action and the owner
// of the loop decides the transition.
package scene

import (
	"github.com/lixenwraith/vi-arena/input"
	"github.com/lixenwraith/vi-arena/render"
)

// Scene is one screen of the game
type Scene interface {
	// OnEnter runs when the scene becomes active
	OnEnter()
	// OnExit runs when another scene replaces it
	OnExit()
	// HandleEvent receives key events in arrival order, before Update
	HandleEvent(ev input.Event)
	// Update advances one tick
	Update()
	// Render paints the current state
	Render(s render.Surface)
}

// Resizer is implemented by scenes that lay out against the surface size
type Resizer interface {
	Resize(width, height int)
}

// Action is a request emitted by a scene to the loop owner
type Action uint8

const (
	ActionNone Action = iota
	ActionStartGame
	ActionOptions
	ActionQuit
	ActionBack
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionStartGame:
		return "start_game"
	case ActionOptions:
		return "options"
	case ActionQuit:
		return "quit"
	case ActionBack:
		return "back"
	default:
		return "unknown"
	}
}

// ActionFunc receives emitted actions, nil discards them
type ActionFunc func(Action)

func (f ActionFunc) emit(a Action) {
	if f != nil {
		f(a)
	}
}
