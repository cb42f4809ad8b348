package terminal

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-arena/constants"
	"github.com/lixenwraith/vi-arena/input"
	"github.com/lixenwraith/vi-arena/render"
	"github.com/rs/zerolog/log"
)

// Screen is a render.Screen and input.Source backed by tcell
type Screen struct {
	screen tcell.Screen
	events chan input.Event

	startOnce sync.Once
	finiOnce  sync.Once
	done      chan struct{}
}

// Open creates and initializes the terminal screen
func Open() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: create screen: %w", err)
	}
	return New(s)
}

// New initializes s and wraps it; used with tcell.NewSimulationScreen in tests
func New(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("terminal: init screen: %w", err)
	}
	s.SetStyle(render.StyleBackground)
	s.HideCursor()
	s.Clear()

	return &Screen{
		screen: s,
		events: make(chan input.Event, constants.EventQueueSize),
		done:   make(chan struct{}),
	}, nil
}

// Start launches the event pump, later calls are no-ops
func (s *Screen) Start() {
	s.startOnce.Do(func() {
		go s.pump()
	})
}

// pump blocks on PollEvent until the screen is finalized
func (s *Screen) pump() {
	defer func() {
		if r := recover(); r != nil {
			EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		if _, ok := ev.(*tcell.EventResize); ok {
			s.screen.Sync()
		}
		translated, ok := TranslateEvent(ev)
		if !ok {
			continue
		}
		if !s.deliver(translated) {
			return
		}
	}
}

// deliver queues ev for the loop, reporting false once the screen is finalized
// A full queue drops input events but a quit waits for room
func (s *Screen) deliver(ev input.Event) bool {
	if ev.Type == input.EventQuit {
		select {
		case s.events <- ev:
			return true
		case <-s.done:
			return false
		}
	}

	select {
	case s.events <- ev:
	case <-s.done:
		return false
	default:
		log.Warn().Uint8("type", uint8(ev.Type)).Msg("Event queue full, dropping event")
	}
	return true
}

// Poll drains the pending events without blocking
func (s *Screen) Poll() []input.Event {
	var batch []input.Event
	for {
		select {
		case ev := <-s.events:
			batch = append(batch, ev)
		default:
			return batch
		}
	}
}

func (s *Screen) SetContent(x, y int, primary rune, combining []rune, style tcell.Style) {
	s.screen.SetContent(x, y, primary, combining, style)
}

func (s *Screen) Size() (int, int) {
	return s.screen.Size()
}

func (s *Screen) Clear() {
	s.screen.Clear()
}

func (s *Screen) Show() {
	s.screen.Show()
}

// Tcell exposes the wrapped screen
func (s *Screen) Tcell() tcell.Screen {
	return s.screen
}

// Fini restores the terminal and stops the pump, safe to call more than once
func (s *Screen) Fini() {
	s.finiOnce.Do(func() {
		close(s.done)
		s.screen.Fini()
	})
}

var (
	_ render.Screen = (*Screen)(nil)
	_ input.Source  = (*Screen)(nil)
)
