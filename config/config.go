// Package config loads the game configuration from TOML, YAML or JSON
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/vi-arena/constants"
	"github.com/lixenwraith/vi-arena/entity"
	"github.com/lixenwraith/vi-arena/scene"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds the tunable parameters of the game
// Keys missing from a file keep their Default values
type Config struct {
	TickRate    int           `json:"tick_rate" yaml:"tick_rate" toml:"tick_rate"`
	Seed        int64         `json:"seed" yaml:"seed" toml:"seed"`
	PlayerImage string        `json:"player_image" yaml:"player_image" toml:"player_image"`
	Player      PlayerConfig  `json:"player" yaml:"player" toml:"player"`
	Enemy       EnemyConfig   `json:"enemy" yaml:"enemy" toml:"enemy"`
	Strike      StrikeConfig  `json:"strike" yaml:"strike" toml:"strike"`
	Audio       AudioConfig   `json:"audio" yaml:"audio" toml:"audio"`
	Metrics     MetricsConfig `json:"metrics" yaml:"metrics" toml:"metrics"`
	Log         LogConfig     `json:"log" yaml:"log" toml:"log"`
}

type PlayerConfig struct {
	Speed  float64 `json:"speed" yaml:"speed" toml:"speed"`
	Width  float64 `json:"width" yaml:"width" toml:"width"`
	Height float64 `json:"height" yaml:"height" toml:"height"`
}

type EnemyConfig struct {
	Speed      float64 `json:"speed" yaml:"speed" toml:"speed"`
	Health     int     `json:"health" yaml:"health" toml:"health"`
	SpawnEvery int     `json:"spawn_every" yaml:"spawn_every" toml:"spawn_every"`
	MaxActive  int     `json:"max_active" yaml:"max_active" toml:"max_active"`
}

type StrikeConfig struct {
	Damage int     `json:"damage" yaml:"damage" toml:"damage"`
	Reach  float64 `json:"reach" yaml:"reach" toml:"reach"`
}

// AudioConfig selects the cue sounds; empty paths use generated tones
type AudioConfig struct {
	Enabled    bool   `json:"enabled" yaml:"enabled" toml:"enabled"`
	HitSound   string `json:"hit_sound" yaml:"hit_sound" toml:"hit_sound"`
	DeathSound string `json:"death_sound" yaml:"death_sound" toml:"death_sound"`
}

// MetricsConfig enables the Prometheus endpoint when Addr is set
type MetricsConfig struct {
	Addr           string   `json:"addr" yaml:"addr" toml:"addr"`
	AllowedOrigins []string `json:"allowed_origins" yaml:"allowed_origins" toml:"allowed_origins"`
}

type LogConfig struct {
	Debug bool   `json:"debug" yaml:"debug" toml:"debug"`
	Dir   string `json:"dir" yaml:"dir" toml:"dir"`
	Level string `json:"level" yaml:"level" toml:"level"`
}

// Default returns the arena configuration used when no file is given
func Default() Config {
	return Config{
		TickRate: constants.TickRate,
		Seed:     1,
		Player: PlayerConfig{
			Speed:  constants.ArenaPlayerSpeed,
			Width:  constants.ArenaPlayerWidth,
			Height: constants.ArenaPlayerHeight,
		},
		Enemy: EnemyConfig{
			Speed:      constants.ArenaEnemySpeed,
			Health:     constants.EnemyHealth,
			SpawnEvery: constants.ArenaSpawnEveryTicks,
			MaxActive:  constants.ArenaMaxEnemies,
		},
		Strike: StrikeConfig{
			Damage: constants.StrikeDamage,
			Reach:  constants.StrikeReach,
		},
		Audio: AudioConfig{Enabled: true},
		Log: LogConfig{
			Dir:   "logs",
			Level: "debug",
		},
	}
}

// Load reads path over Default, choosing the decoder by extension
// Supports: .toml, .yaml/.yml, .json
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, errors.New("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(b, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &cfg)
	case ".json":
		err = json.Unmarshal(b, &cfg)
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("decode %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from VI_ARENA_* environment variables
// Unparseable values are ignored
func (c *Config) ApplyEnv() {
	if v := os.Getenv("VI_ARENA_TICK_RATE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.TickRate = n
		}
	}
	if v := os.Getenv("VI_ARENA_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = n
		}
	}
	if v := os.Getenv("VI_ARENA_AUDIO_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Audio.Enabled = b
		}
	}
	if v := os.Getenv("VI_ARENA_METRICS_ADDR"); v != "" {
		c.Metrics.Addr = v
	}
}

// Validate rejects values the loop cannot run with
// Gameplay values are otherwise accepted as given
func (c Config) Validate() error {
	var errs []error
	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", c.TickRate))
	}
	if c.Enemy.SpawnEvery < 0 {
		errs = append(errs, fmt.Errorf("enemy.spawn_every must not be negative, got %d", c.Enemy.SpawnEvery))
	}
	if c.Enemy.MaxActive < 0 {
		errs = append(errs, fmt.Errorf("enemy.max_active must not be negative, got %d", c.Enemy.MaxActive))
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "trace", "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level %q is not a known level", c.Log.Level))
	}
	return errors.Join(errs...)
}

// TickInterval is the loop period for TickRate
func (c Config) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return constants.TickInterval
	}
	return time.Second / time.Duration(c.TickRate)
}

// PlaySettings converts the gameplay sections for the play scene
func (c Config) PlaySettings() scene.PlaySettings {
	return scene.PlaySettings{
		Player: entity.PlayerSpec{
			Width:  c.Player.Width,
			Height: c.Player.Height,
			Speed:  c.Player.Speed,
		},
		Enemy: entity.EnemySpec{
			Width:  1,
			Height: 1,
			Speed:  c.Enemy.Speed,
			Health: c.Enemy.Health,
		},
		SpawnEvery:   c.Enemy.SpawnEvery,
		MaxEnemies:   c.Enemy.MaxActive,
		StrikeDamage: c.Strike.Damage,
		StrikeReach:  c.Strike.Reach,
		Seed:         c.Seed,
	}
}

// OptionLines renders the configuration for the options screen
func (c Config) OptionLines() []string {
	audio := "off"
	if c.Audio.Enabled {
		audio = "on"
	}
	return []string{
		fmt.Sprintf("Tick rate      %d/s", c.TickRate),
		fmt.Sprintf("Player speed   %.2f", c.Player.Speed),
		fmt.Sprintf("Enemy speed    %.2f", c.Enemy.Speed),
		fmt.Sprintf("Enemy health   %d", c.Enemy.Health),
		fmt.Sprintf("Spawn every    %d ticks", c.Enemy.SpawnEvery),
		fmt.Sprintf("Max enemies    %d", c.Enemy.MaxActive),
		fmt.Sprintf("Strike         %d dmg, reach %.1f", c.Strike.Damage, c.Strike.Reach),
		fmt.Sprintf("Audio          %s", audio),
	}
}
