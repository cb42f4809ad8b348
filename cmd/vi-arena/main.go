package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/lixenwraith/vi-arena/asset"
	"github.com/lixenwraith/vi-arena/audio"
	"github.com/lixenwraith/vi-arena/config"
	"github.com/lixenwraith/vi-arena/engine"
	"github.com/lixenwraith/vi-arena/input"
	"github.com/lixenwraith/vi-arena/render"
	"github.com/lixenwraith/vi-arena/scene"
	"github.com/lixenwraith/vi-arena/terminal"
	"github.com/pkg/profile"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type flags struct {
	configPath  string
	debug       bool
	metricsAddr string
	profileMode string
	noAudio     bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "vi-arena: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:           "vi-arena",
		Short:         "Terminal arena: dodge and strike the incoming enemies",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(f)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, f)
		},
	}

	root.Flags().StringVarP(&f.configPath, "config", "c", "", "Config file (.toml, .yaml, .yml, .json)")
	root.Flags().BoolVar(&f.debug, "debug", false, "Write logs to logs/vi-arena.log")
	root.Flags().StringVar(&f.metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address, e.g. :9100")
	root.Flags().StringVar(&f.profileMode, "profile", "", "Write a profile to the working directory: cpu|mem")
	root.Flags().BoolVar(&f.noAudio, "no-audio", false, "Disable sound cues")
	return root
}

// loadConfig resolves defaults, then the config file, then environment, then flags
func loadConfig(f *flags) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return cfg, fmt.Errorf("config: %w", err)
		}
		cfg = loaded
	}
	cfg.ApplyEnv()

	if f.debug {
		cfg.Log.Debug = true
	}
	if f.metricsAddr != "" {
		cfg.Metrics.Addr = f.metricsAddr
	}
	if f.noAudio {
		cfg.Audio.Enabled = false
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// startProfile begins profiling for mode, the returned stop is never nil
func startProfile(mode string) (func(), error) {
	switch mode {
	case "":
		return func() {}, nil
	case "cpu":
		return profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop, nil
	case "mem":
		return profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop, nil
	default:
		return nil, fmt.Errorf("unknown profile mode %q, want cpu or mem", mode)
	}
}

func run(parent context.Context, cfg config.Config, f *flags) error {
	if parent == nil {
		parent = context.Background()
	}
	if cfg.Log.Dir != "" {
		logDir = cfg.Log.Dir
	}
	if logFile := setupLogging(cfg.Log.Debug, cfg.Log.Level); logFile != nil {
		defer logFile.Close()
	}

	stopProfile, err := startProfile(f.profileMode)
	if err != nil {
		return err
	}
	defer stopProfile()

	ctx, cancel := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	screen, err := terminal.Open()
	if err != nil {
		return err
	}
	defer screen.Fini()

	// Panic recovery: ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			terminal.EmergencyReset(os.Stdout)
			log.Error().Interface("panic", r).Bytes("stack", debug.Stack()).Msg("Game crashed")
			fmt.Fprintf(os.Stderr, "\n\x1b[31mVI-ARENA CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	var sounds scene.Sounds
	if cfg.Audio.Enabled {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			log.Warn().Err(err).Msg("Audio initialization failed, continuing without audio")
		} else {
			defer sm.Cleanup()
			if cfg.Audio.HitSound != "" {
				sm.SetCue(audio.CueHit, asset.LoadSound(cfg.Audio.HitSound))
			}
			if cfg.Audio.DeathSound != "" {
				sm.SetCue(audio.CueDeath, asset.LoadSound(cfg.Audio.DeathSound))
			}
			sounds = sm
		}
	}

	reg := prometheus.NewRegistry()
	if cfg.Metrics.Addr != "" {
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		serveMetrics(ctx, cfg.Metrics.Addr, newMetricsRouter(reg, cfg.Metrics.AllowedOrigins))
	}

	pacer, err := engine.NewTickerPacer(cfg.TickInterval())
	if err != nil {
		return err
	}
	defer pacer.Stop()

	game, err := buildGame(cfg, screen, screen, pacer, sounds, reg)
	if err != nil {
		return err
	}

	screen.Start()
	return game.Run(ctx)
}

// buildGame assembles the arena from configuration
func buildGame(cfg config.Config, screen render.Screen, source input.Source, pacer engine.Pacer, sounds scene.Sounds, reg prometheus.Registerer) (*engine.Game, error) {
	metrics, err := engine.NewMetrics(reg)
	if err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}

	var sprite *asset.Sprite
	if cfg.PlayerImage != "" {
		cols := int(math.Ceil(cfg.Player.Width))
		rows := int(math.Ceil(cfg.Player.Height))
		sprite = asset.NewSprite(asset.LoadImage(cfg.PlayerImage), cols, rows)
	}

	return engine.NewArena(engine.Options{
		Screen:  screen,
		Input:   source,
		Pacer:   pacer,
		Metrics: metrics,
	}, engine.ArenaConfig{
		Play:         cfg.PlaySettings(),
		OptionLines:  cfg.OptionLines(),
		Sounds:       sounds,
		PlayerSprite: sprite,
	})
}
