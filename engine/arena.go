package engine

import (
	"github.com/lixenwraith/vi-arena/asset"
	"github.com/lixenwraith/vi-arena/scene"
)

// ArenaConfig describes the standard menu, options and play scenes
type ArenaConfig struct {
	Play         scene.PlaySettings
	OptionLines  []string
	Sounds       scene.Sounds
	PlayerSprite *asset.Sprite
}

// NewArena creates a game with the standard scenes registered and the menu active
// Menu and options are suspended when left, a play session is discarded when left
func NewArena(opts Options, cfg ArenaConfig) (*Game, error) {
	g, err := New(opts)
	if err != nil {
		return nil, err
	}

	g.Register(SceneMenu, func(emit scene.ActionFunc) scene.Scene {
		return scene.NewMenuScene(emit)
	}, true)

	g.Register(SceneOptions, func(emit scene.ActionFunc) scene.Scene {
		return scene.NewOptionsScene(cfg.OptionLines, emit)
	}, true)

	g.Register(ScenePlay, func(emit scene.ActionFunc) scene.Scene {
		p := scene.NewPlayScene(cfg.Play, emit)
		if cfg.Sounds != nil {
			p.SetSounds(cfg.Sounds)
		}
		p.SetPlayerSprite(cfg.PlayerSprite)
		return p
	}, false)

	if err := g.SwitchTo(SceneMenu); err != nil {
		return nil, err
	}
	return g, nil
}
