// Package runlog persists fill run outcomes to a local SQLite database
// so successive runs can be compared.
package runlog

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Store wraps the run history database.
type Store struct {
	*sql.DB
}

// NewStore opens (or creates) the run database at path.
func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			run_id TEXT PRIMARY KEY,
			grid_size INTEGER NOT NULL,
			block_size INTEGER NOT NULL,
			workers INTEGER NOT NULL,
			duration_us INTEGER NOT NULL,
			verified INTEGER NOT NULL,
			created_at TIMESTAMP NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db}, nil
}

// Run is one recorded fill run.
type Run struct {
	RunID     string
	GridSize  int
	BlockSize int
	Workers   int
	Duration  time.Duration
	Verified  bool
	CreatedAt time.Time
}

func (r *Run) String() string {
	return fmt.Sprintf("Run %s: n=%d b=%d workers=%d duration=%s verified=%v",
		r.RunID, r.GridSize, r.BlockSize, r.Workers, r.Duration, r.Verified)
}

// NewRun builds a Run record with a fresh ID and timestamp.
func NewRun(gridSize, blockSize, workers int, duration time.Duration, verified bool) Run {
	return Run{
		RunID:     uuid.NewString(),
		GridSize:  gridSize,
		BlockSize: blockSize,
		Workers:   workers,
		Duration:  duration,
		Verified:  verified,
		CreatedAt: time.Now().UTC(),
	}
}

// InsertRun records one run.
func (s *Store) InsertRun(r Run) error {
	_, err := s.Exec(
		"INSERT INTO runs (run_id, grid_size, block_size, workers, duration_us, verified, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		r.RunID, r.GridSize, r.BlockSize, r.Workers, r.Duration.Microseconds(), r.Verified, r.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert run %s: %w", r.RunID, err)
	}
	return nil
}

// RecentRuns returns up to limit runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	rows, err := s.Query(
		"SELECT run_id, grid_size, block_size, workers, duration_us, verified, created_at FROM runs ORDER BY created_at DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var durationUs int64
		if err := rows.Scan(&r.RunID, &r.GridSize, &r.BlockSize, &r.Workers, &durationUs, &r.Verified, &r.CreatedAt); err != nil {
			return nil, err
		}
		r.Duration = time.Duration(durationUs) * time.Microsecond
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return runs, nil
}
