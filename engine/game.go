// Package engine runs the fixed-tick game loop and owns scene transitions
package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/lixenwraith/vi-arena/input"
	"github.com/lixenwraith/vi-arena/render"
	"github.com/lixenwraith/vi-arena/scene"
	"github.com/rs/zerolog/log"
)

// SceneID names a registered scene
type SceneID uint8

const (
	SceneNone SceneID = iota
	SceneMenu
	SceneOptions
	ScenePlay
)

func (id SceneID) String() string {
	switch id {
	case SceneNone:
		return "none"
	case SceneMenu:
		return "menu"
	case SceneOptions:
		return "options"
	case ScenePlay:
		return "play"
	default:
		return "unknown"
	}
}

// SceneFactory builds a scene wired to the game's action dispatcher
type SceneFactory func(emit scene.ActionFunc) scene.Scene

// sceneEntry is a registered scene and its lifetime policy
type sceneEntry struct {
	factory    SceneFactory
	persistent bool
	instance   scene.Scene
}

// entityCounter is implemented by scenes that own entities
type entityCounter interface {
	Len() int
}

// Options configures a Game
// Screen and Input are required; Pacer, Time and Metrics have defaults
type Options struct {
	Screen  render.Screen
	Input   input.Source
	Pacer   Pacer
	Time    TimeProvider
	Metrics *Metrics
}

// Game drives input, update and render of the active scene once per tick
// All methods must be called from the loop goroutine
type Game struct {
	screen  render.Screen
	source  input.Source
	pacer   Pacer
	time    TimeProvider
	metrics *Metrics

	scenes   map[SceneID]*sceneEntry
	active   scene.Scene
	activeID SceneID

	running bool
	stopped bool
	ticks   uint64
}

// New creates a game with no scenes registered
func New(opts Options) (*Game, error) {
	if opts.Screen == nil {
		return nil, errors.New("engine: screen is required")
	}
	if opts.Input == nil {
		return nil, errors.New("engine: input source is required")
	}
	g := &Game{
		screen:  opts.Screen,
		source:  opts.Input,
		pacer:   opts.Pacer,
		time:    opts.Time,
		metrics: opts.Metrics,
		scenes:  make(map[SceneID]*sceneEntry),
	}
	if g.time == nil {
		g.time = NewMonotonicTimeProvider()
	}
	return g, nil
}

// Register adds a scene under id
// Persistent scenes are built once and suspended when left; others are rebuilt on every entry
func (g *Game) Register(id SceneID, factory SceneFactory, persistent bool) {
	g.scenes[id] = &sceneEntry{factory: factory, persistent: persistent}
}

// SwitchTo makes id the active scene
// The old scene's OnExit runs before the new scene's OnEnter
func (g *Game) SwitchTo(id SceneID) error {
	entry, ok := g.scenes[id]
	if !ok {
		return fmt.Errorf("engine: scene %s not registered", id)
	}

	if g.active != nil {
		g.active.OnExit()
		if prev := g.scenes[g.activeID]; prev != nil && !prev.persistent {
			prev.instance = nil
		}
	}

	if entry.instance == nil {
		entry.instance = entry.factory(g.Dispatch)
	}
	next := entry.instance

	if r, ok := next.(scene.Resizer); ok {
		r.Resize(g.screen.Size())
	}

	from := g.activeID
	g.active = next
	g.activeID = id
	next.OnEnter()

	g.metrics.sceneSwitch(id)
	log.Debug().Stringer("from", from).Stringer("to", id).Msg("Scene switch")
	return nil
}

// Dispatch applies the loop's policy for a scene action
func (g *Game) Dispatch(a scene.Action) {
	var err error
	switch a {
	case scene.ActionStartGame:
		err = g.SwitchTo(ScenePlay)
	case scene.ActionOptions:
		err = g.SwitchTo(SceneOptions)
	case scene.ActionBack:
		err = g.SwitchTo(SceneMenu)
	case scene.ActionQuit:
		g.Stop()
	}
	if err != nil {
		log.Error().Err(err).Stringer("action", a).Msg("Scene action failed")
	}
}

// State returns the id of the active scene
func (g *Game) State() SceneID {
	return g.activeID
}

// Active returns the active scene, nil before the first SwitchTo
func (g *Game) Active() scene.Scene {
	return g.active
}

// Running reports whether the loop continues after the current step
func (g *Game) Running() bool {
	return g.running
}

// Stop ends the loop; no update or render happens after the step that called it
// It is final: a Stop made before Run, e.g. from a scene's OnEnter, makes Run return at once
func (g *Game) Stop() {
	g.running = false
	g.stopped = true
}

// Ticks returns the number of completed update steps
func (g *Game) Ticks() uint64 {
	return g.ticks
}

// Run loops until Stop, a quit event, pacer exhaustion or ctx cancellation
// Each of those is a normal termination and returns nil
func (g *Game) Run(ctx context.Context) error {
	if g.active == nil {
		return errors.New("engine: no active scene")
	}
	if g.pacer == nil {
		return errors.New("engine: pacer is required to run")
	}

	if g.stopped {
		log.Info().Stringer("scene", g.activeID).Msg("Game stopped before loop start")
		return nil
	}

	g.running = true
	log.Info().Stringer("scene", g.activeID).Msg("Game loop started")
	defer func() {
		log.Info().Uint64("ticks", g.ticks).Msg("Game loop stopped")
	}()

	for g.running {
		if ctx.Err() != nil {
			g.running = false
			return nil
		}

		g.Step()
		if g.stopped {
			return nil
		}

		if err := g.pacer.Wait(ctx); err != nil {
			g.running = false
			if errors.Is(err, ErrPacerDone) || ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("engine: pacer: %w", err)
		}
	}
	return nil
}

// Step runs one tick: input, update, render
// Once Stop has been called the tick ends before update
func (g *Game) Step() {
	start := g.time.Now()

	g.handleInput()
	if g.stopped {
		return
	}

	g.active.Update()
	g.ticks++
	g.metrics.tick()
	if c, ok := g.active.(entityCounter); ok {
		g.metrics.setEntities(c.Len())
	}

	g.screen.Clear()
	g.active.Render(g.screen)
	g.screen.Show()

	g.metrics.frame(g.time.Now().Sub(start))
}

// handleInput dispatches this tick's events to the active scene
// Events after a quit are dropped
func (g *Game) handleInput() {
	for _, ev := range g.source.Poll() {
		switch ev.Type {
		case input.EventQuit:
			log.Info().Msg("Quit requested")
			g.Stop()
			return
		case input.EventResize:
			if r, ok := g.active.(scene.Resizer); ok {
				r.Resize(g.screen.Size())
			}
		case input.EventKey:
			g.active.HandleEvent(ev)
			if g.stopped {
				return
			}
		}
	}
}
