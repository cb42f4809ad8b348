package scene

import (
	"fmt"
	"math/rand/v2"

	"github.com/lixenwraith/vi-arena/asset"
	"github.com/lixenwraith/vi-arena/constants"
	"github.com/lixenwraith/vi-arena/entity"
	"github.com/lixenwraith/vi-arena/input"
	"github.com/lixenwraith/vi-arena/render"
	"github.com/rs/zerolog/log"
)

// PlaySettings holds the gameplay parameters of a play session
type PlaySettings struct {
	Player entity.PlayerSpec
	Enemy  entity.EnemySpec

	// SpawnEvery is the number of ticks between enemy spawns, 0 disables spawning
	SpawnEvery int
	// MaxEnemies caps live enemies, 0 means no cap
	MaxEnemies int

	StrikeDamage int
	StrikeReach  float64

	// Seed drives spawn rows so sessions are reproducible
	Seed int64
}

// Sounds plays gameplay cues, implementations must tolerate being uninitialized
type Sounds interface {
	PlayHit()
	PlayDeath()
}

// PlayScene owns the live entities of a session and fans update and render out to them
//
// Membership changes requested while an update or draw fan-out runs are queued and
// replayed in request order once it ends, so entities may add or remove others (or
// themselves) from inside Update, Draw or a death hook.
type PlayScene struct {
	settings PlaySettings
	emit     ActionFunc
	sounds   Sounds
	sprite   *asset.Sprite
	rng      *rand.Rand

	entities  []entity.Entity
	pending   []mutation
	iterating bool

	player        *entity.Player
	width, height int
	ticks         int
	kills         int
}

// NewPlayScene creates an empty play scene
// The player is spawned by OnEnter
func NewPlayScene(settings PlaySettings, emit ActionFunc) *PlayScene {
	return &PlayScene{
		settings: settings,
		emit:     emit,
		rng:      rand.New(rand.NewPCG(uint64(settings.Seed), 0)),
	}
}

// SetSounds installs the cue player, nil silences the scene
func (p *PlayScene) SetSounds(s Sounds) {
	p.sounds = s
}

// SetPlayerSprite sets the sprite applied to the player on spawn
func (p *PlayScene) SetPlayerSprite(sp *asset.Sprite) {
	p.sprite = sp
	if p.player != nil {
		p.player.SetSprite(sp)
	}
}

// Resize records the arena size used for spawning and eviction
func (p *PlayScene) Resize(width, height int) {
	p.width = width
	p.height = height
}

// mutation is a membership change queued during a fan-out
type mutation struct {
	add    bool
	entity entity.Entity
}

// Add appends e to the scene, a no-op if already a member
// During a fan-out the add is deferred until the fan-out ends
func (p *PlayScene) Add(e entity.Entity) {
	if e == nil {
		return
	}
	if p.iterating {
		p.pending = append(p.pending, mutation{add: true, entity: e})
		return
	}
	if p.indexOf(e) >= 0 {
		return
	}
	p.entities = append(p.entities, e)
}

// Remove drops e from the scene, a no-op if e is absent
// During a fan-out the removal is deferred until the fan-out ends
func (p *PlayScene) Remove(e entity.Entity) {
	if p.iterating {
		p.pending = append(p.pending, mutation{entity: e})
		return
	}
	if i := p.indexOf(e); i >= 0 {
		p.entities = append(p.entities[:i], p.entities[i+1:]...)
	}
	if e == entity.Entity(p.player) {
		p.player = nil
	}
}

// Contains reports current membership, deferred adds are not yet members
func (p *PlayScene) Contains(e entity.Entity) bool {
	return p.indexOf(e) >= 0
}

// Entities returns a snapshot of members in update order
func (p *PlayScene) Entities() []entity.Entity {
	out := make([]entity.Entity, len(p.entities))
	copy(out, p.entities)
	return out
}

// Len returns the number of members
func (p *PlayScene) Len() int {
	return len(p.entities)
}

// Player returns the session player, nil before OnEnter or after eviction
func (p *PlayScene) Player() *entity.Player {
	return p.player
}

// Kills returns the number of enemies that died this session
func (p *PlayScene) Kills() int {
	return p.kills
}

// Ticks returns the number of updates this session
func (p *PlayScene) Ticks() int {
	return p.ticks
}

// SpawnPlayer creates the session player at (x, y), replacing any previous one
func (p *PlayScene) SpawnPlayer(x, y float64) *entity.Player {
	if p.player != nil {
		p.Remove(p.player)
	}
	pl := entity.NewPlayerFrom(x, y, p.settings.Player)
	if p.sprite != nil {
		pl.SetSprite(p.sprite)
	}
	p.player = pl
	p.Add(pl)
	return pl
}

// SpawnEnemy creates an enemy at (x, y) wired to the kill counter
func (p *PlayScene) SpawnEnemy(x, y float64) *entity.Enemy {
	e := entity.NewEnemyFrom(x, y, p.settings.Enemy)
	e.OnDeath(p.onEnemyDeath)
	p.Add(e)
	return e
}

func (p *PlayScene) onEnemyDeath(e *entity.Enemy) {
	p.kills++
	if p.sounds != nil {
		p.sounds.PlayDeath()
	}
	log.Debug().Float64("x", e.Position().X).Float64("y", e.Position().Y).Int("kills", p.kills).Msg("Enemy died")
}

// OnEnter starts a fresh session with the player on the left third of the arena
func (p *PlayScene) OnEnter() {
	p.reset()
	p.SpawnPlayer(float64(p.width/3), float64(p.height/2))
	log.Info().Int("width", p.width).Int("height", p.height).Msg("Play session started")
}

// OnExit discards the session, the scene is not resumed
func (p *PlayScene) OnExit() {
	log.Info().Int("kills", p.kills).Int("ticks", p.ticks).Msg("Play session ended")
	p.reset()
}

func (p *PlayScene) reset() {
	p.entities = nil
	p.pending = nil
	p.player = nil
	p.ticks = 0
	p.kills = 0
	p.rng = rand.New(rand.NewPCG(uint64(p.settings.Seed), 0))
}

func (p *PlayScene) HandleEvent(ev input.Event) {
	if ev.Type != input.EventKey {
		return
	}
	if dx, dy, ok := ev.Direction(); ok {
		if p.player != nil {
			p.player.Move(dx, dy)
		}
		return
	}
	switch ev.Key {
	case input.KeySpace:
		p.Strike()
	case input.KeyEscape:
		p.emit.emit(ActionBack)
	}
}

// Strike damages every live enemy overlapping the player's reach and returns the hit count
func (p *PlayScene) Strike() int {
	if p.player == nil {
		return 0
	}
	reach := p.player.Bounds().Grow(p.settings.StrikeReach)
	hits := 0
	for _, e := range p.Entities() {
		enemy, ok := e.(*entity.Enemy)
		if !ok || enemy.Dead() {
			continue
		}
		if reach.Intersects(enemy.Bounds()) {
			enemy.TakeDamage(p.settings.StrikeDamage)
			hits++
		}
	}
	if hits > 0 && p.sounds != nil {
		p.sounds.PlayHit()
	}
	return hits
}

// Update spawns on schedule, updates every member in order, evicts enemies past the
// left edge, then applies deferred membership changes and drops dead entities
func (p *PlayScene) Update() {
	p.ticks++
	p.spawnScheduled()

	p.iterating = true
	for _, e := range p.entities {
		e.Update()
		if e.Kind() == entity.KindEnemy && e.Bounds().Right() < 0 {
			p.Remove(e)
		}
	}
	p.iterating = false

	p.flush()
	p.dropDead()
}

// spawnScheduled spawns one enemy at the right edge every SpawnEvery ticks
func (p *PlayScene) spawnScheduled() {
	if p.settings.SpawnEvery <= 0 || p.ticks%p.settings.SpawnEvery != 0 || p.width <= 0 {
		return
	}
	if p.settings.MaxEnemies > 0 && p.countEnemies() >= p.settings.MaxEnemies {
		return
	}
	// Row 0 is the HUD
	y := constants.HUDRow + 1
	if p.height > 2 {
		y += p.rng.IntN(p.height - 1)
	}
	p.SpawnEnemy(float64(p.width)-p.settings.Enemy.Width, float64(y))
}

func (p *PlayScene) countEnemies() int {
	n := 0
	for _, e := range p.entities {
		if e.Kind() == entity.KindEnemy && !e.Dead() {
			n++
		}
	}
	return n
}

// flush replays deferred membership changes in the order they were requested
func (p *PlayScene) flush() {
	queued := p.pending
	p.pending = nil

	for _, m := range queued {
		if m.add {
			p.Add(m.entity)
		} else {
			p.Remove(m.entity)
		}
	}
}

// dropDead removes dead entities, keeping the order of the rest
func (p *PlayScene) dropDead() {
	kept := p.entities[:0]
	for _, e := range p.entities {
		if !e.Dead() {
			kept = append(kept, e)
		}
	}
	// Clear the tail so dropped entities can be collected
	for i := len(kept); i < len(p.entities); i++ {
		p.entities[i] = nil
	}
	p.entities = kept
}

func (p *PlayScene) indexOf(e entity.Entity) int {
	for i, m := range p.entities {
		if m == e {
			return i
		}
	}
	return -1
}

func (p *PlayScene) Render(s render.Surface) {
	render.Fill(s, render.StyleBackground)
	p.iterating = true
	for _, e := range p.entities {
		e.Draw(s)
	}
	p.iterating = false
	p.flush()
	hud := fmt.Sprintf(" Kills: %d  Enemies: %d  [arrows/hjkl] move  [space] strike  [esc] menu", p.kills, p.countEnemies())
	render.DrawText(s, 0, constants.HUDRow, hud, render.StyleStatusBar)
}
