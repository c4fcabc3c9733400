// Package tile enumerates and validates the square blocks that partition
// a grid into independent units of parallel work.
package tile

import "fmt"

// Coord identifies a block by its top-left cell. Both components are
// multiples of the block size.
type Coord struct {
	Row int
	Col int
}

// Partition enumerates the block coordinates tiling an n×n grid with b×b
// blocks, striding both axes by b. b must divide n evenly; a remainder
// would leave the trailing row and column of blocks reading past the
// grid edge, so it is rejected here rather than discovered mid-fill.
func Partition(n, b int) ([]Coord, error) {
	if n <= 0 {
		return nil, fmt.Errorf("grid size must be positive, got %d", n)
	}
	if b <= 0 {
		return nil, fmt.Errorf("block size must be positive, got %d", b)
	}
	if n%b != 0 {
		return nil, fmt.Errorf("block size %d does not divide grid size %d", b, n)
	}
	side := n / b
	coords := make([]Coord, 0, side*side)
	for r := 0; r < n; r += b {
		for c := 0; c < n; c += b {
			coords = append(coords, Coord{Row: r, Col: c})
		}
	}
	return coords, nil
}

// Validate checks that the coordinate lies inside an n×n grid, is
// aligned to the block stride, and that its b×b window fits.
func (c Coord) Validate(n, b int) error {
	if c.Row < 0 || c.Row >= n || c.Col < 0 || c.Col >= n {
		return fmt.Errorf("block (%d,%d) out of range for grid size %d", c.Row, c.Col, n)
	}
	if c.Row%b != 0 || c.Col%b != 0 {
		return fmt.Errorf("block (%d,%d) not aligned to block size %d", c.Row, c.Col, b)
	}
	if c.Row+b > n || c.Col+b > n {
		return fmt.Errorf("block (%d,%d) of size %d extends past grid size %d", c.Row, c.Col, b, n)
	}
	return nil
}

// CheckTiling verifies that coords cover every cell of an n×n grid
// exactly once. Disjoint writes are the only thing standing in for
// synchronisation on the target grid, so the invariant is asserted
// before dispatch instead of assumed.
func CheckTiling(coords []Coord, n, b int) error {
	if n <= 0 || b <= 0 {
		return fmt.Errorf("invalid tiling parameters n=%d b=%d", n, b)
	}
	seen := make([]bool, n*n)
	for _, c := range coords {
		if err := c.Validate(n, b); err != nil {
			return err
		}
		for i := c.Row; i < c.Row+b; i++ {
			for j := c.Col; j < c.Col+b; j++ {
				idx := i*n + j
				if seen[idx] {
					return fmt.Errorf("cell (%d,%d) covered by more than one block", i, j)
				}
				seen[idx] = true
			}
		}
	}
	for idx, covered := range seen {
		if !covered {
			return fmt.Errorf("cell (%d,%d) not covered by any block", idx/n, idx%n)
		}
	}
	return nil
}
