package core

import (
	"math/rand/v2"

	"github.com/pkg/errors"
)

// Grid stores a fixed-size toroidal field of live (1) and dead (0) cells in
// row-major order.
type Grid struct {
	w, h int
	data []uint8
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, errors.Wrapf(ErrDimensions, "%dx%d", w, h)
	}
	return &Grid{w: w, h: h, data: make([]uint8, w*h)}, nil
}

// MustGrid is like NewGrid but panics on invalid dimensions.
func MustGrid(w, h int) *Grid {
	g, err := NewGrid(w, h)
	if err != nil {
		panic(err)
	}
	return g
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.w, H: g.h} }

// Cells exposes the backing slice so painters can upload it directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for in-bounds coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.w + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.w + g.w) % g.w
	y = (y%g.h + g.h) % g.h
	return x, y
}

// InBounds reports whether (x, y) addresses a cell without wrapping.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// Get returns the state of the cell at (x, y).
func (g *Grid) Get(x, y int) (bool, error) {
	if !g.InBounds(x, y) {
		return false, errors.Wrapf(ErrOutOfRange, "get (%d,%d) on %dx%d", x, y, g.w, g.h)
	}
	return g.data[g.Index(x, y)] != 0, nil
}

// Set marks the cell at (x, y) live or dead.
func (g *Grid) Set(x, y int, alive bool) error {
	if !g.InBounds(x, y) {
		return errors.Wrapf(ErrOutOfRange, "set (%d,%d) on %dx%d", x, y, g.w, g.h)
	}
	g.data[g.Index(x, y)] = boolToCell(alive)
	return nil
}

// Toggle flips the cell at (x, y) and returns its new state.
func (g *Grid) Toggle(x, y int) (bool, error) {
	if !g.InBounds(x, y) {
		return false, errors.Wrapf(ErrOutOfRange, "toggle (%d,%d) on %dx%d", x, y, g.w, g.h)
	}
	idx := g.Index(x, y)
	g.data[idx] ^= 1
	return g.data[idx] != 0, nil
}

// Alive reads a cell using toroidal addressing, so any coordinate is valid.
func (g *Grid) Alive(x, y int) bool {
	x, y = g.Wrap(x, y)
	return g.data[g.Index(x, y)] != 0
}

// CountLiveNeighbors sums the eight wrapped neighbours of (x, y).
func (g *Grid) CountLiveNeighbors(x, y int) int {
	w, h := g.w, g.h
	x, y = g.Wrap(x, y)
	n := 0
	for dy := -1; dy <= 1; dy++ {
		ny := (y + dy + h) % h
		row := ny * w
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := (x + dx + w) % w
			n += int(g.data[row+nx])
		}
	}
	return n
}

// Randomize sets every cell live independently with probability p.
func (g *Grid) Randomize(rng *rand.Rand, p float64) {
	switch {
	case p <= 0:
		g.Clear()
		return
	case p >= 1:
		for i := range g.data {
			g.data[i] = 1
		}
		return
	}
	for i := range g.data {
		g.data[i] = boolToCell(rng.Float64() < p)
	}
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{w: g.w, h: g.h, data: append([]uint8(nil), g.data...)}
}

// Equal reports whether both grids hold the same cells. Grids of different
// dimensions cannot be compared.
func (g *Grid) Equal(other *Grid) (bool, error) {
	if g.w != other.w || g.h != other.h {
		return false, errors.Wrapf(ErrSizeMismatch, "%dx%d vs %dx%d", g.w, g.h, other.w, other.h)
	}
	for i, c := range g.data {
		if other.data[i] != c {
			return false, nil
		}
	}
	return true, nil
}

// LiveCount returns the number of live cells.
func (g *Grid) LiveCount() int {
	n := 0
	for _, c := range g.data {
		n += int(c)
	}
	return n
}

// Empty reports whether no cell is alive.
func (g *Grid) Empty() bool {
	for _, c := range g.data {
		if c != 0 {
			return false
		}
	}
	return true
}

func boolToCell(alive bool) uint8 {
	if alive {
		return 1
	}
	return 0
}
