package engine

import (
	"context"
	"strings"
	"testing"

	"github.com/lixenwraith/vi-arena/entity"
	"github.com/lixenwraith/vi-arena/input"
	"github.com/lixenwraith/vi-arena/render"
	"github.com/lixenwraith/vi-arena/scene"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func arenaConfig() ArenaConfig {
	return ArenaConfig{
		Play: scene.PlaySettings{
			Player:       entity.PlayerSpec{Width: 2, Height: 1, Speed: 1},
			Enemy:        entity.EnemySpec{Width: 1, Height: 1, Speed: 0.5, Health: 100},
			SpawnEvery:   2,
			MaxEnemies:   4,
			StrikeDamage: 40,
			StrikeReach:  1,
			Seed:         7,
		},
		OptionLines: []string{"Tick rate: 60"},
	}
}

func newTestArena(t *testing.T, src *input.Queue, pacer Pacer, m *Metrics) (*Game, *render.Buffer) {
	t.Helper()
	buf := render.NewBuffer(80, 24)
	g, err := NewArena(Options{Screen: buf, Input: src, Pacer: pacer, Metrics: m}, arenaConfig())
	if err != nil {
		t.Fatalf("Failed to create arena: %v", err)
	}
	return g, buf
}

func TestArenaStartsInMenu(t *testing.T) {
	g, _ := newTestArena(t, input.NewQueue(), nil, nil)
	if g.State() != SceneMenu {
		t.Errorf("Expected initial state menu, got %v", g.State())
	}
	if _, ok := g.Active().(*scene.MenuScene); !ok {
		t.Errorf("Expected active scene to be *scene.MenuScene, got %T", g.Active())
	}
}

func TestArenaStartGame(t *testing.T) {
	src := input.NewQueue([]input.Event{input.KeyEvent(input.KeyEnter)})
	g, buf := newTestArena(t, src, nil, nil)

	g.Step()
	if g.State() != ScenePlay {
		t.Fatalf("Expected play after Start Game, got %v", g.State())
	}
	play, ok := g.Active().(*scene.PlayScene)
	if !ok {
		t.Fatalf("Expected *scene.PlayScene, got %T", g.Active())
	}
	if play.Player() == nil {
		t.Error("Expected player spawned on entry")
	}
	if play.Ticks() != 1 {
		t.Errorf("Expected the play scene updated in the same tick, got %d ticks", play.Ticks())
	}
	if !strings.Contains(buf.Row(0), "Kills: 0") {
		t.Errorf("Expected HUD rendered, got %q", buf.Row(0))
	}
}

func TestArenaTransitions(t *testing.T) {
	src := input.NewQueue()
	g, _ := newTestArena(t, src, nil, nil)
	menu := g.Active().(*scene.MenuScene)

	src.Push(input.KeyEvent(input.KeyEnter))
	g.Step()
	first := g.Active()

	src.Push(input.KeyEvent(input.KeyEscape))
	g.Step()
	if g.State() != SceneMenu {
		t.Fatalf("Expected menu after escape, got %v", g.State())
	}
	if g.Active() != scene.Scene(menu) {
		t.Error("Expected the same menu instance to be resumed")
	}

	src.Push(input.KeyEvent(input.KeyDown), input.KeyEvent(input.KeyEnter))
	g.Step()
	if g.State() != SceneOptions {
		t.Fatalf("Expected options, got %v", g.State())
	}

	src.Push(input.KeyEvent(input.KeyEscape))
	g.Step()
	if g.State() != SceneMenu {
		t.Fatalf("Expected menu after leaving options, got %v", g.State())
	}
	if menu.Selected() != 1 {
		t.Errorf("Expected menu selection kept at 1, got %d", menu.Selected())
	}

	src.Push(input.KeyEvent(input.KeyUp), input.KeyEvent(input.KeyEnter))
	g.Step()
	if g.State() != ScenePlay {
		t.Fatalf("Expected play, got %v", g.State())
	}
	if g.Active() == first {
		t.Error("Expected a fresh play scene for a new session")
	}
}

func TestArenaMenuQuit(t *testing.T) {
	src := input.NewQueue(
		[]input.Event{input.KeyEvent(input.KeyUp)},
		[]input.Event{input.KeyEvent(input.KeyEnter)},
	)
	g, buf := newTestArena(t, src, NewStepPacer(100), nil)

	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if g.Running() {
		t.Error("Expected loop stopped by menu Quit")
	}
	if g.State() != SceneMenu {
		t.Errorf("Expected menu still active, got %v", g.State())
	}
	if g.Ticks() != 1 || buf.Frames() != 1 {
		t.Errorf("Expected one full tick before quit, got %d ticks %d frames", g.Ticks(), buf.Frames())
	}
}

func TestArenaMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	if err != nil {
		t.Fatalf("Failed to create metrics: %v", err)
	}

	src := input.NewQueue(
		[]input.Event{input.KeyEvent(input.KeyEnter)},
		nil,
		nil,
		[]input.Event{input.KeyEvent(input.KeyEscape)},
	)
	g, _ := newTestArena(t, src, NewStepPacer(5), m)
	if err := g.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	if got := testutil.ToFloat64(m.ticks); got != 5 {
		t.Errorf("Expected 5 ticks, got %v", got)
	}
	if got := testutil.ToFloat64(m.frames); got != 5 {
		t.Errorf("Expected 5 frames, got %v", got)
	}
	if got := testutil.ToFloat64(m.sceneSwitches.WithLabelValues("menu")); got != 2 {
		t.Errorf("Expected 2 menu activations, got %v", got)
	}
	if got := testutil.ToFloat64(m.sceneSwitches.WithLabelValues("play")); got != 1 {
		t.Errorf("Expected 1 play activation, got %v", got)
	}
	if got := testutil.CollectAndCount(m.tickDuration); got != 1 {
		t.Errorf("Expected one histogram series, got %d", got)
	}

	if _, err := NewMetrics(reg); err == nil {
		t.Error("Expected duplicate registration to fail")
	}
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	m.tick()
	m.frame(0)
	m.sceneSwitch(ScenePlay)
	m.setEntities(3)
}
