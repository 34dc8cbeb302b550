package life

import "torus-life/internal/core"

// Reason explains why a game ended.
type Reason int

const (
	// ReasonNone means the game goes on.
	ReasonNone Reason = iota
	// ReasonExtinct means no cell is alive.
	ReasonExtinct
	// ReasonPeriodic means the grid repeats a recent generation.
	ReasonPeriodic
	// ReasonStatic means the last step changed nothing.
	ReasonStatic
)

// Over reports whether the reason ends the game.
func (r Reason) Over() bool { return r != ReasonNone }

// String implements fmt.Stringer.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "running"
	case ReasonExtinct:
		return "extinct"
	case ReasonPeriodic:
		return "periodic"
	case ReasonStatic:
		return "static"
	default:
		return "unknown"
	}
}

// Detector decides whether a game has reached a terminal configuration. Use
// one Detector per game; Reset starts a new game.
type Detector struct {
	history *History
}

// NewDetector returns a Detector with an empty history.
func NewDetector() *Detector {
	return &Detector{history: NewHistory(HistoryDepth)}
}

// Check inspects the grid produced by the last step together with the
// step's evaluated count. Extinction wins over periodicity, which wins over
// the static check. The grid is recorded in the history whatever the
// outcome.
func (d *Detector) Check(g *core.Grid, evaluated int) (Reason, error) {
	reason, err := d.classify(g, evaluated)
	if err != nil {
		return ReasonNone, err
	}
	d.history.Push(g)
	return reason, nil
}

func (d *Detector) classify(g *core.Grid, evaluated int) (Reason, error) {
	if g.Empty() {
		return ReasonExtinct, nil
	}
	seen, err := d.history.Contains(g)
	if err != nil {
		return ReasonNone, err
	}
	if seen {
		return ReasonPeriodic, nil
	}
	if evaluated == 0 {
		return ReasonStatic, nil
	}
	return ReasonNone, nil
}

// IsGameOver is Check reduced to a boolean.
func (d *Detector) IsGameOver(g *core.Grid, evaluated int) (bool, error) {
	reason, err := d.Check(g, evaluated)
	return reason.Over(), err
}

// History exposes the snapshot ring for inspection.
func (d *Detector) History() *History { return d.history }

// Reset forgets every recorded generation.
func (d *Detector) Reset() { d.history.Reset() }
