package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-arena/input"
)

// TranslateEvent maps a tcell event to an input event
// The second result is false for events the game ignores
func TranslateEvent(ev tcell.Event) (input.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return translateKey(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		return input.Event{Type: input.EventResize, Width: w, Height: h}, true
	}
	return input.Event{}, false
}

func translateKey(ev *tcell.EventKey) (input.Event, bool) {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return input.QuitEvent(), true
	case tcell.KeyUp:
		return input.KeyEvent(input.KeyUp), true
	case tcell.KeyDown:
		return input.KeyEvent(input.KeyDown), true
	case tcell.KeyLeft:
		return input.KeyEvent(input.KeyLeft), true
	case tcell.KeyRight:
		return input.KeyEvent(input.KeyRight), true
	case tcell.KeyEnter:
		return input.KeyEvent(input.KeyEnter), true
	case tcell.KeyEscape:
		return input.KeyEvent(input.KeyEscape), true
	case tcell.KeyRune:
		return translateRune(ev.Rune()), true
	}
	return input.Event{}, false
}

// translateRune folds vi motion keys and space onto named keys
func translateRune(r rune) input.Event {
	switch r {
	case 'h':
		return input.KeyEvent(input.KeyLeft)
	case 'j':
		return input.KeyEvent(input.KeyDown)
	case 'k':
		return input.KeyEvent(input.KeyUp)
	case 'l':
		return input.KeyEvent(input.KeyRight)
	case ' ':
		return input.KeyEvent(input.KeySpace)
	}
	return input.RuneEvent(r)
}
