// Package testutil provides shared test utilities and fixtures.
//
// This package centralises common test helpers to reduce code duplication
// across test files and improve test maintainability.
package testutil

import (
	"testing"

	"github.com/banshee-data/tilefill/internal/grid"
)

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// SeededGrid creates an n×n grid populated from a deterministic seed.
func SeededGrid(t *testing.T, n int, seed int64) *grid.Grid {
	t.Helper()
	g, err := grid.New(n, n)
	if err != nil {
		t.Fatalf("failed to create %dx%d grid: %v", n, n, err)
	}
	g.FillRandom(seed)
	return g
}

// AssertGridsEqual fails the test unless a and b are exactly equal.
func AssertGridsEqual(t *testing.T, a, b *grid.Grid) {
	t.Helper()
	ok, err := grid.Equal(a, b)
	if err != nil {
		t.Fatalf("grid comparison failed: %v", err)
	}
	if !ok {
		t.Fatal("grids differ")
	}
}
