// Package grid provides dense row-major float64 grids backed by flat
// slices. A grid may own its backing store or wrap a slice carved from a
// shared arena, in which case every worker holding the grid sees the same
// memory without copying.
package grid

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// Grid is a dense row-major float64 grid. len(Cells) == Rows * Cols.
type Grid struct {
	Rows int
	Cols int

	Cells []float64
}

// New allocates a zeroed rows×cols grid with its own backing store.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("grid dimensions must be positive, got %dx%d", rows, cols)
	}
	return &Grid{Rows: rows, Cols: cols, Cells: make([]float64, rows*cols)}, nil
}

// FromSlice wraps an existing backing slice without copying, typically a
// region handed out by an arena. The slice length must match rows*cols
// exactly.
func FromSlice(rows, cols int, cells []float64) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("grid dimensions must be positive, got %dx%d", rows, cols)
	}
	if len(cells) != rows*cols {
		return nil, fmt.Errorf("backing slice has %d cells, %dx%d grid needs %d", len(cells), rows, cols, rows*cols)
	}
	return &Grid{Rows: rows, Cols: cols, Cells: cells}, nil
}

// Idx maps (row, col) to the flat cell index: idx = row*Cols + col.
func (g *Grid) Idx(row, col int) int { return row*g.Cols + col }

// At returns the value at (row, col).
func (g *Grid) At(row, col int) float64 { return g.Cells[g.Idx(row, col)] }

// Set stores v at (row, col).
func (g *Grid) Set(row, col int, v float64) { g.Cells[g.Idx(row, col)] = v }

// FillRandom populates every cell from a PRNG seeded with seed. The same
// seed always produces the same grid.
func (g *Grid) FillRandom(seed int64) {
	rng := rand.New(rand.NewSource(seed))
	for i := range g.Cells {
		g.Cells[i] = rng.Float64()
	}
}

// Zero clears every cell.
func (g *Grid) Zero() {
	for i := range g.Cells {
		g.Cells[i] = 0
	}
}

// Equal reports whether a and b hold exactly equal cells. A shape
// mismatch is an error rather than inequality: comparing grids of
// different shapes indicates a setup bug, not a data difference.
func Equal(a, b *Grid) (bool, error) {
	if a == nil || b == nil {
		return false, fmt.Errorf("cannot compare nil grids")
	}
	if a.Rows != b.Rows || a.Cols != b.Cols {
		return false, fmt.Errorf("grid shape mismatch: %dx%d vs %dx%d", a.Rows, a.Cols, b.Rows, b.Cols)
	}
	return floats.Equal(a.Cells, b.Cells), nil
}
