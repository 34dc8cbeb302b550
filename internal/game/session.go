// Package game owns a running Game of Life session: the grid, the engine,
// the termination detector and the driver state that input handlers mutate.
// A Session is not safe for concurrent use; the driver loop owns it.
package game

import (
	"io"
	"log"
	"time"

	"torus-life/internal/core"
	"torus-life/internal/sims/life"
)

// Session is the simulation context handed to a front end.
type Session struct {
	cfg Config

	grid     *core.Grid
	engine   *life.Engine
	detector *life.Detector
	rng      *core.RNG
	clock    *core.FixedStep
	logger   *log.Logger

	paused     bool
	generation int
	evaluated  int
	reason     life.Reason
}

// New validates cfg and starts a session on a randomly seeded grid.
func New(cfg Config, logger *log.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid, err := core.NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	s := &Session{
		cfg:      cfg,
		grid:     grid,
		engine:   life.NewEngine(cfg.CountMode),
		detector: life.NewDetector(),
		rng:      core.NewRNG(cfg.Seed),
		clock:    core.NewFixedStep(cfg.Interval),
		logger:   logger,
		paused:   cfg.StartPaused,
	}
	s.grid.Randomize(s.rng.Source(), cfg.Density)
	return s, nil
}

// Step advances exactly one generation, paused or not, and runs the
// termination checks. When the game ends the session pauses itself.
func (s *Session) Step() (life.Reason, error) {
	gen := s.engine.Step(s.grid)
	s.grid = gen.Grid
	s.generation++
	s.evaluated = gen.Evaluated

	reason, err := s.detector.Check(s.grid, gen.Evaluated)
	if err != nil {
		return life.ReasonNone, err
	}
	if reason.Over() {
		s.reason = reason
		s.paused = true
		s.logger.Printf("game over after %d generations: %s (%d live)", s.generation, reason, s.grid.LiveCount())
	}
	return reason, nil
}

// Advance is called by the driver on every frame. It steps when the session
// is running and the tick interval has elapsed.
func (s *Session) Advance(now time.Time) (life.Reason, error) {
	if s.paused {
		s.clock.Reset()
		return life.ReasonNone, nil
	}
	if !s.clock.ShouldStep(now) {
		return life.ReasonNone, nil
	}
	return s.Step()
}

// ToggleCell flips the cell at (x, y).
func (s *Session) ToggleCell(x, y int) error {
	_, err := s.grid.Toggle(x, y)
	return err
}

// Randomize reseeds the grid at the configured density and starts a new game
// history. The pause state is left alone.
func (s *Session) Randomize() {
	s.grid.Randomize(s.rng.Source(), s.cfg.Density)
	s.newGame()
	s.logger.Printf("randomized grid: %d live", s.grid.LiveCount())
}

// Clear kills every cell and pauses.
func (s *Session) Clear() {
	s.grid.Clear()
	s.newGame()
	s.paused = true
}

// Restart reseeds the grid and resumes ticking.
func (s *Session) Restart() {
	s.Randomize()
	s.paused = false
	s.clock.Reset()
}

// TogglePause starts or stops the tick source. Resuming after a game over
// keeps the recorded history, so an unchanged board ends again on the next
// step.
func (s *Session) TogglePause() {
	s.paused = !s.paused
	if !s.paused {
		s.reason = life.ReasonNone
		s.clock.Reset()
	}
}

// AdjustSpeed moves the tick interval by delta, clamped to the configured
// bounds, and returns the new interval.
func (s *Session) AdjustSpeed(delta time.Duration) time.Duration {
	return s.setInterval(s.clock.Interval() + delta)
}

// Faster shortens the tick interval by one speed step.
func (s *Session) Faster() time.Duration { return s.AdjustSpeed(-s.cfg.SpeedStep) }

// Slower lengthens the tick interval by one speed step.
func (s *Session) Slower() time.Duration { return s.AdjustSpeed(s.cfg.SpeedStep) }

func (s *Session) setInterval(d time.Duration) time.Duration {
	if d < s.cfg.MinInterval {
		d = s.cfg.MinInterval
	}
	if d > s.cfg.MaxInterval {
		d = s.cfg.MaxInterval
	}
	s.clock.SetInterval(d)
	return d
}

func (s *Session) newGame() {
	s.detector.Reset()
	s.generation = 0
	s.evaluated = 0
	s.reason = life.ReasonNone
}

// Grid returns the current generation. Callers must treat it as read-only.
func (s *Session) Grid() *core.Grid { return s.grid }

// Size returns the grid dimensions.
func (s *Session) Size() core.Size { return s.grid.Size() }

// Generation returns the number of steps since the game started.
func (s *Session) Generation() int { return s.generation }

// Evaluated returns the counter reported by the last step.
func (s *Session) Evaluated() int { return s.evaluated }

// Paused reports whether the tick source is stopped.
func (s *Session) Paused() bool { return s.paused }

// Reason reports why the game ended, or life.ReasonNone while it runs.
func (s *Session) Reason() life.Reason { return s.reason }

// Over reports whether the game has ended.
func (s *Session) Over() bool { return s.reason.Over() }

// Interval returns the current tick interval.
func (s *Session) Interval() time.Duration { return s.clock.Interval() }

// Density returns the live probability used when reseeding.
func (s *Session) Density() float64 { return s.cfg.Density }

// Detector exposes the termination detector.
func (s *Session) Detector() *life.Detector { return s.detector }
