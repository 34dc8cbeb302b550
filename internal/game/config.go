package game

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"torus-life/internal/sims/life"
)

// ErrConfig marks configuration values that cannot run a session.
var ErrConfig = errors.New("game: invalid config")

// Config holds everything needed to start a session.
type Config struct {
	Width  int
	Height int

	// Interval is the time between generations; AdjustSpeed moves it by
	// SpeedStep within [MinInterval, MaxInterval].
	Interval    time.Duration
	MinInterval time.Duration
	MaxInterval time.Duration
	SpeedStep   time.Duration

	Density     float64
	Seed        int64
	CountMode   life.CountMode
	StartPaused bool
}

// DefaultConfig returns the standard 40x40 board ticking every 500ms.
func DefaultConfig() Config {
	return Config{
		Width:       40,
		Height:      40,
		Interval:    500 * time.Millisecond,
		MinInterval: 100 * time.Millisecond,
		MaxInterval: 10 * time.Second,
		SpeedStep:   100 * time.Millisecond,
		Density:     0.5,
		Seed:        1,
		CountMode:   life.CountChanged,
	}
}

// Validate checks that the config can drive a session.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrConfig, "grid %dx%d", c.Width, c.Height)
	case c.MinInterval <= 0 || c.MaxInterval < c.MinInterval:
		return errors.Wrapf(ErrConfig, "interval bounds [%v, %v]", c.MinInterval, c.MaxInterval)
	case c.Interval < c.MinInterval || c.Interval > c.MaxInterval:
		return errors.Wrapf(ErrConfig, "interval %v outside [%v, %v]", c.Interval, c.MinInterval, c.MaxInterval)
	case c.SpeedStep <= 0:
		return errors.Wrapf(ErrConfig, "speed step %v", c.SpeedStep)
	case c.Density < 0 || c.Density > 1:
		return errors.Wrapf(ErrConfig, "density %v", c.Density)
	case c.CountMode != life.CountEvaluated && c.CountMode != life.CountChanged:
		return errors.Wrapf(ErrConfig, "count mode %d", c.CountMode)
	}
	return nil
}

// fileConfig mirrors the tunable part of Config with millisecond units for
// JSON files. The board size is fixed and not read from files.
type fileConfig struct {
	IntervalMS    *int     `json:"interval_ms"`
	MinIntervalMS *int     `json:"min_interval_ms"`
	MaxIntervalMS *int     `json:"max_interval_ms"`
	SpeedStepMS   *int     `json:"speed_step_ms"`
	Density       *float64 `json:"density"`
	Seed          *int64   `json:"seed"`
	CountMode     *string  `json:"count_mode"`
	StartPaused   *bool    `json:"start_paused"`
}

// LoadConfig overlays the JSON file at filename onto base. Keys missing from
// the file keep their base values.
func LoadConfig(filename string, base Config) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return base, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}
	return ParseConfig(data, base)
}

// ParseConfig overlays JSON data onto base and validates the result.
func ParseConfig(data []byte, base Config) (Config, error) {
	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return base, errors.Wrap(err, "[ParseConfig] failed to unmarshal config")
	}

	cfg := base
	setMillis(&cfg.Interval, fc.IntervalMS)
	setMillis(&cfg.MinInterval, fc.MinIntervalMS)
	setMillis(&cfg.MaxInterval, fc.MaxIntervalMS)
	setMillis(&cfg.SpeedStep, fc.SpeedStepMS)
	if fc.Density != nil {
		cfg.Density = *fc.Density
	}
	if fc.Seed != nil {
		cfg.Seed = *fc.Seed
	}
	if fc.StartPaused != nil {
		cfg.StartPaused = *fc.StartPaused
	}
	if fc.CountMode != nil {
		mode, ok := life.ParseCountMode(*fc.CountMode)
		if !ok {
			return base, errors.Wrapf(ErrConfig, "count_mode %q", *fc.CountMode)
		}
		cfg.CountMode = mode
	}

	if err := cfg.Validate(); err != nil {
		return base, err
	}
	return cfg, nil
}

func setMillis(dst *time.Duration, v *int) {
	if v != nil {
		*dst = time.Duration(*v) * time.Millisecond
	}
}
