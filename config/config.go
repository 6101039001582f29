// Package config resolves startup settings from defaults, an optional TOML file and flags
package config

import (
	"flag"
	"io"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lixenwraith/gravity-sandbox/audio"
	"github.com/lixenwraith/gravity-sandbox/engine"
	"github.com/lixenwraith/gravity-sandbox/parameter"
	"github.com/pkg/errors"
)

// Config is the file layout; flags override individual fields
type Config struct {
	Physics PhysicsConfig `toml:"physics"`
	World   WorldConfig   `toml:"world"`
	Loop    LoopConfig    `toml:"loop"`
	Audio   AudioConfig   `toml:"audio"`
	Metrics MetricsConfig `toml:"metrics"`

	// Flag-only
	Debug bool  `toml:"-"`
	Seed  int64 `toml:"-"`
}

type PhysicsConfig struct {
	Gravity   float64 `toml:"gravity"`
	MaxBodies int     `toml:"max_bodies"`
}

type WorldConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type LoopConfig struct {
	TPS int `toml:"tps"`
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

// MetricsConfig enables the Prometheus endpoint when Addr is set
type MetricsConfig struct {
	Addr string `toml:"addr"`
}

// Default mirrors the parameter package
func Default() *Config {
	return &Config{
		Physics: PhysicsConfig{
			Gravity:   parameter.DefaultGravity,
			MaxBodies: parameter.MaxBodies,
		},
		World: WorldConfig{
			Width:  parameter.WorldWidth,
			Height: parameter.WorldHeight,
		},
		Loop: LoopConfig{TPS: parameter.TicksPerSecond},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  audio.DefaultAudioConfig().MasterVolume,
		},
	}
}

// LoadFile overlays a TOML file onto the defaults
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Errorf("config %s: unknown key %s", path, undecoded[0])
	}
	return cfg, nil
}

// Parse resolves defaults, the -config file and explicit flags, in that order
func Parse(args []string, output io.Writer) (*Config, error) {
	fs := flag.NewFlagSet("gravity-sandbox", flag.ContinueOnError)
	if output != nil {
		fs.SetOutput(output)
	}

	path := fs.String("config", "", "TOML config file")
	tps := fs.Int("tps", parameter.TicksPerSecond, "simulation ticks per second")
	metricsAddr := fs.String("metrics", "", "serve Prometheus metrics on this address (e.g. :9102)")
	mute := fs.Bool("mute", false, "disable audio")
	debug := fs.Bool("debug", false, "write logs to logs/gravity-sandbox.log")
	seed := fs.Int64("seed", 0, "random seed, 0 uses the clock")
	gravity := fs.Float64("gravity", parameter.DefaultGravity, "gravitational constant")

	if err := fs.Parse(args); err != nil {
		return nil, errors.Wrap(err, "parse flags")
	}

	cfg := Default()
	if *path != "" {
		var err error
		if cfg, err = LoadFile(*path); err != nil {
			return nil, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "tps":
			cfg.Loop.TPS = *tps
		case "metrics":
			cfg.Metrics.Addr = *metricsAddr
		case "mute":
			cfg.Audio.Enabled = !*mute
		case "gravity":
			cfg.Physics.Gravity = *gravity
		}
	})
	cfg.Debug = *debug
	cfg.Seed = *seed

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with
func (c *Config) Validate() error {
	switch {
	case c.Physics.Gravity <= 0:
		return errors.Errorf("physics.gravity must be positive, got %v", c.Physics.Gravity)
	case c.Physics.MaxBodies < 1:
		return errors.Errorf("physics.max_bodies must be at least 1, got %d", c.Physics.MaxBodies)
	case c.World.Width <= 0 || c.World.Height <= 0:
		return errors.Errorf("world size must be positive, got %vx%v", c.World.Width, c.World.Height)
	case c.Loop.TPS < 1 || c.Loop.TPS > 1000:
		return errors.Errorf("loop.tps must be within 1..1000, got %d", c.Loop.TPS)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return errors.Errorf("audio.volume must be within 0..1, got %v", c.Audio.Volume)
	}
	return nil
}

// TickInterval is the loop period for the configured rate
func (c *Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.Loop.TPS)
}

// Engine builds the simulation configuration
func (c *Config) Engine() *engine.Config {
	ec := engine.DefaultConfig()
	ec.Gravity = c.Physics.Gravity
	ec.MaxBodies = c.Physics.MaxBodies
	ec.Width = c.World.Width
	ec.Height = c.World.Height
	return ec
}

// AudioSettings builds the player configuration
func (c *Config) AudioSettings() *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = c.Audio.Volume
	return ac
}
