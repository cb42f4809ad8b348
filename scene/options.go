package scene

import (
	"github.com/lixenwraith/vi-arena/input"
	"github.com/lixenwraith/vi-arena/render"
)

// OptionsScene shows the active settings, ENTER or ESC goes back
type OptionsScene struct {
	lines []string
	emit  ActionFunc
}

// NewOptionsScene creates the settings view from preformatted lines
func NewOptionsScene(lines []string, emit ActionFunc) *OptionsScene {
	return &OptionsScene{lines: lines, emit: emit}
}

// Lines returns the displayed settings
func (o *OptionsScene) Lines() []string {
	return o.lines
}

func (o *OptionsScene) HandleEvent(ev input.Event) {
	if ev.Type != input.EventKey {
		return
	}
	if ev.Key == input.KeyEnter || ev.Key == input.KeyEscape {
		o.emit.emit(ActionBack)
	}
}

func (o *OptionsScene) OnEnter() {}

func (o *OptionsScene) OnExit() {}

func (o *OptionsScene) Update() {}

func (o *OptionsScene) Render(s render.Surface) {
	render.Fill(s, render.StyleBackground)
	render.DrawCentered(s, 1, "OPTIONS", render.StyleTitle)
	for i, line := range o.lines {
		render.DrawText(s, 2, 3+i, line, render.StyleText)
	}
	_, height := s.Size()
	render.DrawCentered(s, height-1, "[Enter/Esc] back", render.StyleStatusBar)
}
