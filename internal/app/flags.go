package app

import (
	"flag"
	"time"

	"github.com/pkg/errors"

	"torus-life/internal/game"
	"torus-life/internal/sims/life"
)

// Config represents the command-line parameters of the front ends.
type Config struct {
	Scale      int
	TPS        int
	HUDWidth   int
	ConfigPath string

	seed       int64
	density    float64
	intervalMS int
	countMode  string
	paused     bool

	fs *flag.FlagSet
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := game.DefaultConfig()
	return &Config{
		Scale:      20,
		TPS:        60,
		HUDWidth:   220,
		seed:       time.Now().UnixNano(),
		density:    d.Density,
		intervalMS: int(d.Interval.Milliseconds()),
		countMode:  d.CountMode.String(),
		paused:     d.StartPaused,
	}
}

// Bind attaches the window and session flags to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second polled by the window")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "status panel width in pixels (0 hides it)")
	c.BindSession(fs)
}

// BindSession attaches only the session flags, for front ends without a
// window.
func (c *Config) BindSession(fs *flag.FlagSet) {
	c.fs = fs
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "optional JSON config file")
	fs.Int64Var(&c.seed, "seed", c.seed, "seed for grid randomization")
	fs.Float64Var(&c.density, "density", c.density, "probability a cell starts live")
	fs.IntVar(&c.intervalMS, "interval", c.intervalMS, "milliseconds between generations")
	fs.StringVar(&c.countMode, "count", c.countMode, "step counter: evaluated or changed")
	fs.BoolVar(&c.paused, "paused", c.paused, "start paused")
}

// Resolve builds the session config: defaults, then the JSON file, then any
// flag given explicitly on the command line.
func (c *Config) Resolve() (game.Config, error) {
	mode, ok := life.ParseCountMode(c.countMode)
	if !ok {
		return game.Config{}, errors.Wrapf(game.ErrConfig, "count mode %q", c.countMode)
	}
	cfg := game.DefaultConfig()
	cfg.CountMode = mode
	cfg.Seed = c.seed
	cfg.Density = c.density
	cfg.Interval = time.Duration(c.intervalMS) * time.Millisecond
	cfg.StartPaused = c.paused

	if c.ConfigPath == "" {
		return cfg, cfg.Validate()
	}
	loaded, err := game.LoadConfig(c.ConfigPath, cfg)
	if err != nil {
		return cfg, err
	}
	if c.fs == nil {
		return loaded, nil
	}
	c.fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			loaded.Seed = c.seed
		case "density":
			loaded.Density = c.density
		case "interval":
			loaded.Interval = time.Duration(c.intervalMS) * time.Millisecond
		case "count":
			loaded.CountMode = mode
		case "paused":
			loaded.StartPaused = c.paused
		}
	})
	if err := loaded.Validate(); err != nil {
		return cfg, err
	}
	return loaded, nil
}
