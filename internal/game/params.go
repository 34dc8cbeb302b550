package game

import (
	"math"
	"time"

	"torus-life/internal/core"
)

const (
	keyGeneration = "generation"
	keyLive       = "live"
	keyStatus     = "status"
	keyIntervalMS = "interval_ms"
	keyDensity    = "density"
)

// Parameters reports the session state for the HUD.
func (s *Session) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Game",
			Params: []core.Parameter{
				core.IntParam(keyGeneration, "Generation", s.generation),
				core.IntParam(keyLive, "Live cells", s.grid.LiveCount()),
				core.TextParam(keyStatus, "Status", s.Status()),
			},
		},
		{
			Name: "Controls",
			Params: []core.Parameter{
				core.IntParam(keyIntervalMS, "Interval ms", int(s.Interval().Milliseconds())),
				core.FloatParam(keyDensity, "Density", s.cfg.Density),
			},
		},
	}}
}

// Status is a short human readable state.
func (s *Session) Status() string {
	switch {
	case s.reason.Over():
		return "over: " + s.reason.String()
	case s.paused:
		return "paused"
	default:
		return "running"
	}
}

// ParameterControls lists the HUD adjustable values.
func (s *Session) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{
			Key:    keyIntervalMS,
			Label:  "Interval ms",
			Type:   core.ParamTypeInt,
			Step:   float64(s.cfg.SpeedStep.Milliseconds()),
			Min:    float64(s.cfg.MinInterval.Milliseconds()),
			Max:    float64(s.cfg.MaxInterval.Milliseconds()),
			HasMin: true,
			HasMax: true,
		},
		{
			Key:    keyDensity,
			Label:  "Density",
			Type:   core.ParamTypeFloat,
			Step:   0.05,
			Min:    0,
			Max:    1,
			HasMin: true,
			HasMax: true,
		},
	}
}

// SetIntParameter implements core.IntParameterSetter.
func (s *Session) SetIntParameter(key string, value int) bool {
	if key != keyIntervalMS {
		return false
	}
	s.setInterval(time.Duration(value) * time.Millisecond)
	return true
}

// SetFloatParameter implements core.FloatParameterSetter.
func (s *Session) SetFloatParameter(key string, value float64) bool {
	if key != keyDensity || math.IsNaN(value) {
		return false
	}
	s.cfg.Density = math.Max(0, math.Min(1, value))
	return true
}
