// Package arena provides a single pre-allocated float64 buffer carved
// into named regions by a bump allocator. Allocating both the source and
// target grids from one arena gives every worker the same backing memory
// through an explicit handle instead of module-level shared state.
package arena

import "fmt"

// Region describes one named slice of the arena buffer.
type Region struct {
	Name   string
	Offset int
	Size   int
}

// Arena manages one pre-allocated float64 buffer and the regions carved
// from it. Alloc is not safe for concurrent use; carve all regions
// before handing slices to workers.
type Arena struct {
	buffer  []float64
	regions map[string]Region
	next    int
}

// New allocates an arena holding size float64 cells.
func New(size int) (*Arena, error) {
	if size <= 0 {
		return nil, fmt.Errorf("arena size must be positive, got %d", size)
	}
	return &Arena{
		buffer:  make([]float64, size),
		regions: make(map[string]Region),
	}, nil
}

// Alloc carves a named region of n cells from the free tail and returns
// its backing slice. The slice aliases the arena buffer; writes through
// it are visible to every holder of the arena.
func (a *Arena) Alloc(name string, n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("region %q size must be positive, got %d", name, n)
	}
	if _, ok := a.regions[name]; ok {
		return nil, fmt.Errorf("region %q already allocated", name)
	}
	if a.next+n > len(a.buffer) {
		return nil, fmt.Errorf("arena exhausted: region %q needs %d cells, %d remain", name, n, len(a.buffer)-a.next)
	}
	r := Region{Name: name, Offset: a.next, Size: n}
	a.regions[name] = r
	a.next += n
	return a.buffer[r.Offset : r.Offset+r.Size : r.Offset+r.Size], nil
}

// Region returns the named region descriptor.
func (a *Arena) Region(name string) (Region, bool) {
	r, ok := a.regions[name]
	return r, ok
}

// Slice returns the backing slice for a named region.
func (a *Arena) Slice(name string) ([]float64, error) {
	r, ok := a.regions[name]
	if !ok {
		return nil, fmt.Errorf("region %q not found", name)
	}
	return a.buffer[r.Offset : r.Offset+r.Size : r.Offset+r.Size], nil
}

// Zero clears every cell of a named region.
func (a *Arena) Zero(name string) error {
	s, err := a.Slice(name)
	if err != nil {
		return err
	}
	for i := range s {
		s[i] = 0
	}
	return nil
}

// TotalSize returns the capacity of the arena in cells.
func (a *Arena) TotalSize() int { return len(a.buffer) }

// Remaining returns the number of unallocated cells.
func (a *Arena) Remaining() int { return len(a.buffer) - a.next }
