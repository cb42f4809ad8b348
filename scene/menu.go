package scene

import (
	"fmt"

	"github.com/lixenwraith/vi-arena/constants"
	"github.com/lixenwraith/vi-arena/input"
	"github.com/lixenwraith/vi-arena/render"
	"github.com/rs/zerolog/log"
)

// menuActions maps option index to the emitted action
var menuActions = []Action{ActionStartGame, ActionOptions, ActionQuit}

// MenuScene is the title menu, a selection cursor over a fixed option list
// UP and DOWN wrap around, ENTER emits the action of the selected option
type MenuScene struct {
	options  []string
	selected int
	emit     ActionFunc
}

// NewMenuScene creates the menu with the first option selected
func NewMenuScene(emit ActionFunc) *MenuScene {
	return &MenuScene{
		options: constants.MenuOptions,
		emit:    emit,
	}
}

// Options returns the option labels in display order
func (m *MenuScene) Options() []string {
	return m.options
}

// Selected returns the index of the highlighted option
func (m *MenuScene) Selected() int {
	return m.selected
}

// MoveSelection shifts the cursor by delta with wraparound
func (m *MenuScene) MoveSelection(delta int) {
	n := len(m.options)
	if n == 0 {
		return
	}
	m.selected = ((m.selected+delta)%n + n) % n
}

// Select commits the highlighted option and returns the emitted action
func (m *MenuScene) Select() Action {
	if m.selected >= len(menuActions) {
		return ActionNone
	}
	action := menuActions[m.selected]
	log.Info().Str("option", m.options[m.selected]).Stringer("action", action).Msg("Menu selection")
	m.emit.emit(action)
	return action
}

func (m *MenuScene) HandleEvent(ev input.Event) {
	if ev.Type != input.EventKey {
		return
	}
	switch ev.Key {
	case input.KeyUp:
		m.MoveSelection(-1)
	case input.KeyDown:
		m.MoveSelection(1)
	case input.KeyEnter:
		m.Select()
	}
}

// OnEnter keeps the previous selection, the menu is suspended rather than rebuilt
func (m *MenuScene) OnEnter() {}

func (m *MenuScene) OnExit() {}

func (m *MenuScene) Update() {}

func (m *MenuScene) Render(s render.Surface) {
	render.Fill(s, render.StyleBackground)

	_, height := s.Size()
	blockHeight := 2 + len(m.options)*constants.MenuRowSpacing
	top := (height - blockHeight) / 2
	if top < 0 {
		top = 0
	}

	render.DrawCentered(s, top, constants.MenuTitle, render.StyleTitle)
	for i, opt := range m.options {
		y := top + 2 + i*constants.MenuRowSpacing
		if i == m.selected {
			render.DrawCentered(s, y, fmt.Sprintf("> %s <", opt), render.StyleHighlight)
		} else {
			render.DrawCentered(s, y, opt, render.StyleText)
		}
	}
}
