package core

import "github.com/pkg/errors"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Cells returns the number of cells covered by the size.
func (s Size) Cells() int { return s.W * s.H }

var (
	// ErrDimensions is returned when a grid is built with non-positive sides.
	ErrDimensions = errors.New("core: grid dimensions must be positive")
	// ErrOutOfRange is returned by bounds-checked accessors.
	ErrOutOfRange = errors.New("core: coordinates out of range")
	// ErrSizeMismatch is returned when two grids of different size are compared.
	ErrSizeMismatch = errors.New("core: grid sizes differ")
)
