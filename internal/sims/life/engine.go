// Package life implements Conway's Game of Life (B3/S23) on a toroidal grid
// together with the termination checks that end a game.
package life

import "torus-life/internal/core"

// CountMode selects what Generation.Evaluated measures.
type CountMode int

const (
	// CountEvaluated increments once for every visited cell, whatever the
	// outcome. With this mode the static check can only fire on an empty grid.
	CountEvaluated CountMode = iota
	// CountChanged increments only for cells whose state flipped.
	CountChanged
)

// String implements fmt.Stringer.
func (m CountMode) String() string {
	switch m {
	case CountEvaluated:
		return "evaluated"
	case CountChanged:
		return "changed"
	default:
		return "unknown"
	}
}

// ParseCountMode maps a flag value to a CountMode.
func ParseCountMode(s string) (CountMode, bool) {
	switch s {
	case "evaluated":
		return CountEvaluated, true
	case "changed":
		return CountChanged, true
	}
	return CountEvaluated, false
}

// Generation is the outcome of one step. The grid is freshly allocated and
// must not be mutated once handed out.
type Generation struct {
	Grid      *core.Grid
	Evaluated int
}

// Rule applies B3/S23: a live cell survives with two or three neighbours, a
// dead cell is born with exactly three.
func Rule(alive bool, neighbors int) bool {
	return neighbors == 3 || (alive && neighbors == 2)
}

// Engine computes successive generations.
type Engine struct {
	mode CountMode
}

// NewEngine returns an engine counting cells according to mode.
func NewEngine(mode CountMode) *Engine {
	return &Engine{mode: mode}
}

// Mode returns the engine's counting mode.
func (e *Engine) Mode() CountMode { return e.mode }

// Step computes the next generation of cur. cur is only read; the result is
// written to a separate buffer.
func (e *Engine) Step(cur *core.Grid) Generation {
	size := cur.Size()
	next := core.MustGrid(size.W, size.H)
	src, dst := cur.Cells(), next.Cells()

	count := 0
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			idx := cur.Index(x, y)
			alive := src[idx] != 0
			lives := Rule(alive, cur.CountLiveNeighbors(x, y))
			if lives {
				dst[idx] = 1
			}
			if e.mode == CountEvaluated || lives != alive {
				count++
			}
		}
	}
	return Generation{Grid: next, Evaluated: count}
}
