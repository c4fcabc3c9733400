// Package report aggregates per-block fill timings into summary
// statistics and optional heatmap plots.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/tilefill/internal/fill"
)

// Summary aggregates per-block fill durations from one run.
type Summary struct {
	Blocks int
	Mean   time.Duration
	Min    time.Duration
	Max    time.Duration
	P95    time.Duration
}

// Summarize computes duration statistics over one run's block timings.
func Summarize(timings []fill.BlockTiming) Summary {
	if len(timings) == 0 {
		return Summary{}
	}

	us := make([]float64, len(timings))
	for i, bt := range timings {
		us[i] = float64(bt.Duration.Microseconds())
	}
	sort.Float64s(us)

	return Summary{
		Blocks: len(timings),
		Mean:   time.Duration(stat.Mean(us, nil)) * time.Microsecond,
		Min:    time.Duration(us[0]) * time.Microsecond,
		Max:    time.Duration(us[len(us)-1]) * time.Microsecond,
		P95:    time.Duration(stat.Quantile(0.95, stat.Empirical, us, nil)) * time.Microsecond,
	}
}

func (s Summary) String() string {
	return fmt.Sprintf("blocks=%d mean=%s min=%s max=%s p95=%s", s.Blocks, s.Mean, s.Min, s.Max, s.P95)
}

// durationGrid adapts per-block durations to plotter.GridXYZ. Axes are in
// grid cell units; each heatmap cell is one block.
type durationGrid struct {
	blocks int // blocks per side
	cell   float64
	z      []float64 // len = blocks*blocks, row-major, microseconds
}

func (d durationGrid) Dims() (int, int)   { return d.blocks, d.blocks }
func (d durationGrid) Z(c, r int) float64 { return d.z[r*d.blocks+c] }
func (d durationGrid) X(c int) float64    { return float64(c) * d.cell }
func (d durationGrid) Y(r int) float64    { return float64(r) * d.cell }

// WriteHeatmap renders per-block fill durations for an n×n grid with
// block size b as a heatmap PNG under dir, and returns the output path.
func WriteHeatmap(timings []fill.BlockTiming, n, b int, dir string) (string, error) {
	if len(timings) == 0 {
		return "", fmt.Errorf("no block timings to plot")
	}
	if b <= 0 || n <= 0 || n%b != 0 {
		return "", fmt.Errorf("invalid heatmap dimensions n=%d b=%d", n, b)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output dir: %w", err)
	}

	side := n / b
	dg := durationGrid{blocks: side, cell: float64(b), z: make([]float64, side*side)}
	for _, bt := range timings {
		br := bt.Coord.Row / b
		bc := bt.Coord.Col / b
		if br < 0 || br >= side || bc < 0 || bc >= side {
			return "", fmt.Errorf("block (%d,%d) outside %dx%d tiling", bt.Coord.Row, bt.Coord.Col, n, n)
		}
		dg.z[br*side+bc] = float64(bt.Duration.Microseconds())
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Block fill duration (µs), n=%d b=%d", n, b)
	p.X.Label.Text = "col"
	p.Y.Label.Text = "row"

	pal := moreland.SmoothBlueRed().Palette(255)
	hm := plotter.NewHeatMap(dg, pal)
	p.Add(hm)

	out := filepath.Join(dir, fmt.Sprintf("fill-%s.png", time.Now().Format("20060102_150405")))
	if err := p.Save(6*vg.Inch, 6*vg.Inch, out); err != nil {
		return "", fmt.Errorf("failed to save heatmap: %w", err)
	}
	return out, nil
}
