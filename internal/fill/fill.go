// Package fill copies a source grid into a shared target grid in
// independent square blocks dispatched across a bounded worker pool.
// Blocks are index-disjoint by construction, so no locking is needed on
// the target: each cell has exactly one writer per run.
package fill

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/banshee-data/tilefill/internal/grid"
	"github.com/banshee-data/tilefill/internal/tile"
)

// BlockTiming records how long one block took to fill.
type BlockTiming struct {
	Coord    tile.Coord
	Duration time.Duration
}

// Filler copies source into target one block at a time. Both grids must
// be square, share a shape, and be evenly divisible by the block size.
type Filler struct {
	source *grid.Grid
	target *grid.Grid
	block  int

	// mu guards timings; block cell writes need no lock because blocks
	// are disjoint.
	mu      sync.Mutex
	timings []BlockTiming
}

// New validates shapes up front so a mismatch fails before any block is
// dispatched.
func New(source, target *grid.Grid, block int) (*Filler, error) {
	if source == nil || target == nil {
		return nil, fmt.Errorf("source and target grids are required")
	}
	if source.Rows != source.Cols {
		return nil, fmt.Errorf("source grid must be square, got %dx%d", source.Rows, source.Cols)
	}
	if source.Rows != target.Rows || source.Cols != target.Cols {
		return nil, fmt.Errorf("source %dx%d and target %dx%d differ in shape", source.Rows, source.Cols, target.Rows, target.Cols)
	}
	if _, err := tile.Partition(source.Rows, block); err != nil {
		return nil, err
	}
	return &Filler{source: source, target: target, block: block}, nil
}

// BlockSize returns the configured block edge length.
func (f *Filler) BlockSize() int { return f.block }

// FillBlock copies one block-sized window from source to target. It
// touches only cells inside its own block, so concurrent calls on
// distinct coordinates never write the same cell. Copying is
// deterministic and idempotent; re-invoking on the same coordinate
// yields the same cells.
func (f *Filler) FillBlock(c tile.Coord) error {
	if err := c.Validate(f.source.Rows, f.block); err != nil {
		return err
	}
	for i := c.Row; i < c.Row+f.block; i++ {
		base := f.source.Idx(i, c.Col)
		copy(f.target.Cells[base:base+f.block], f.source.Cells[base:base+f.block])
	}
	return nil
}

// Run fills the whole target using at most workers concurrent block
// fills. workers <= 0 uses one worker per CPU. The first failed block
// cancels the remaining dispatches and its error is returned; a dropped
// block would leave target cells permanently zero and corrupt the final
// verification, so the run aborts rather than continuing.
func (f *Filler) Run(ctx context.Context, workers int) error {
	n := f.source.Rows
	coords, err := tile.Partition(n, f.block)
	if err != nil {
		return err
	}
	if err := tile.CheckTiling(coords, n, f.block); err != nil {
		return fmt.Errorf("invalid block tiling: %w", err)
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	f.mu.Lock()
	f.timings = f.timings[:0]
	f.mu.Unlock()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, c := range coords {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			if err := f.FillBlock(c); err != nil {
				return fmt.Errorf("fill block (%d,%d): %w", c.Row, c.Col, err)
			}
			f.mu.Lock()
			f.timings = append(f.timings, BlockTiming{Coord: c, Duration: time.Since(start)})
			f.mu.Unlock()
			return nil
		})
	}
	return g.Wait()
}

// Verify reports whether the target now matches the source exactly,
// element-wise.
func (f *Filler) Verify() (bool, error) {
	return grid.Equal(f.source, f.target)
}

// Timings returns a copy of the per-block fill durations recorded by the
// most recent Run.
func (f *Filler) Timings() []BlockTiming {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]BlockTiming, len(f.timings))
	copy(out, f.timings)
	return out
}
