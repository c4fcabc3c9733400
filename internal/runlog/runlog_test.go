package runlog

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/banshee-data/tilefill/internal/testutil"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "runs.db"))
	testutil.AssertNoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestInsertAndRecentRuns(t *testing.T) {
	store := newTestStore(t)

	r1 := NewRun(100, 4, 8, 1500*time.Microsecond, true)
	testutil.AssertNoError(t, store.InsertRun(r1))

	r2 := NewRun(256, 16, 4, 9*time.Millisecond, false)
	r2.CreatedAt = r1.CreatedAt.Add(time.Second)
	testutil.AssertNoError(t, store.InsertRun(r2))

	runs, err := store.RecentRuns(10)
	testutil.AssertNoError(t, err)
	if len(runs) != 2 {
		t.Fatalf("RecentRuns returned %d runs, want 2", len(runs))
	}

	// Newest first.
	if runs[0].RunID != r2.RunID {
		t.Errorf("first run = %s, want %s", runs[0].RunID, r2.RunID)
	}
	if runs[0].Verified {
		t.Error("second run should not be verified")
	}
	if runs[1].GridSize != 100 || runs[1].BlockSize != 4 || runs[1].Workers != 8 {
		t.Errorf("run fields did not round-trip: %+v", runs[1])
	}
	if runs[1].Duration != 1500*time.Microsecond {
		t.Errorf("duration = %s, want 1.5ms", runs[1].Duration)
	}
}

func TestRecentRunsLimit(t *testing.T) {
	store := newTestStore(t)

	base := time.Now().UTC()
	for i := 0; i < 5; i++ {
		r := NewRun(64, 8, 2, time.Millisecond, true)
		r.CreatedAt = base.Add(time.Duration(i) * time.Second)
		testutil.AssertNoError(t, store.InsertRun(r))
	}

	runs, err := store.RecentRuns(3)
	testutil.AssertNoError(t, err)
	if len(runs) != 3 {
		t.Errorf("RecentRuns(3) returned %d runs", len(runs))
	}
}

func TestInsertRunDuplicateID(t *testing.T) {
	store := newTestStore(t)

	r := NewRun(8, 4, 1, time.Millisecond, true)
	testutil.AssertNoError(t, store.InsertRun(r))
	testutil.AssertError(t, store.InsertRun(r))
}

func TestNewRunPopulatesIdentity(t *testing.T) {
	r := NewRun(8, 4, 1, time.Millisecond, true)
	if r.RunID == "" {
		t.Error("NewRun produced empty RunID")
	}
	if r.CreatedAt.IsZero() {
		t.Error("NewRun produced zero CreatedAt")
	}
	other := NewRun(8, 4, 1, time.Millisecond, true)
	if r.RunID == other.RunID {
		t.Error("two runs share a RunID")
	}
}
