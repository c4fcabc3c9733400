// Command tilefill fills a shared target grid from a random source grid
// in parallel blocks, verifies the result, and records the run.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/banshee-data/tilefill/internal/arena"
	"github.com/banshee-data/tilefill/internal/config"
	"github.com/banshee-data/tilefill/internal/fill"
	"github.com/banshee-data/tilefill/internal/grid"
	"github.com/banshee-data/tilefill/internal/monitoring"
	"github.com/banshee-data/tilefill/internal/report"
	"github.com/banshee-data/tilefill/internal/runlog"
)

var (
	configPath = flag.String("config", "", "Path to tuning config JSON")
	gridSize   = flag.Int("n", 0, "Grid size override (NxN)")
	blockSize  = flag.Int("b", 0, "Block size override")
	workers    = flag.Int("workers", 0, "Worker pool size override (0 = one per CPU)")
	noDB       = flag.Bool("no-db", false, "Skip recording the run to the database")
)

func main() {
	flag.Parse()

	cfg := config.DefaultTuningConfig()
	if *configPath != "" {
		var err error
		cfg, err = config.LoadTuningConfig(*configPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
	}

	n := cfg.GetGridSize()
	if *gridSize > 0 {
		n = *gridSize
	}
	b := cfg.GetBlockSize()
	if *blockSize > 0 {
		b = *blockSize
	}
	w := cfg.GetWorkers()
	if *workers > 0 {
		w = *workers
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// One arena backs both grids; workers see the target through the same
	// memory the verifier reads.
	a, err := arena.New(2 * n * n)
	if err != nil {
		log.Fatalf("failed to allocate arena: %v", err)
	}
	srcCells, err := a.Alloc("source", n*n)
	if err != nil {
		log.Fatalf("failed to allocate source region: %v", err)
	}
	tgtCells, err := a.Alloc("target", n*n)
	if err != nil {
		log.Fatalf("failed to allocate target region: %v", err)
	}

	source, err := grid.FromSlice(n, n, srcCells)
	if err != nil {
		log.Fatalf("failed to create source grid: %v", err)
	}
	target, err := grid.FromSlice(n, n, tgtCells)
	if err != nil {
		log.Fatalf("failed to create target grid: %v", err)
	}
	source.FillRandom(cfg.GetSeed())

	filler, err := fill.New(source, target, b)
	if err != nil {
		log.Fatalf("fill setup failed: %v", err)
	}

	start := time.Now()
	if err := filler.Run(ctx, w); err != nil {
		log.Fatalf("fill run failed: %v", err)
	}
	elapsed := time.Since(start)

	verified, err := filler.Verify()
	if err != nil {
		log.Fatalf("verification failed: %v", err)
	}

	summary := report.Summarize(filler.Timings())
	monitoring.Logf("filled %dx%d grid (block=%d workers=%d) in %s: verified=%v [%s]",
		n, n, b, w, elapsed, verified, summary)

	if dir := cfg.GetPlotDir(); dir != "" {
		path, err := report.WriteHeatmap(filler.Timings(), n, b, dir)
		if err != nil {
			monitoring.Logf("heatmap not written: %v", err)
		} else {
			monitoring.Logf("wrote heatmap %s", path)
		}
	}

	if !*noDB {
		store, err := runlog.NewStore(cfg.GetDBPath())
		if err != nil {
			log.Fatalf("failed to open run database: %v", err)
		}
		defer store.Close()
		if err := store.InsertRun(runlog.NewRun(n, b, w, elapsed, verified)); err != nil {
			monitoring.Logf("failed to record run: %v", err)
		}
	}

	if !verified {
		os.Exit(1)
	}
}
