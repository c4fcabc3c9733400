package arena

import "testing"

func TestNewRejectsNonPositiveSize(t *testing.T) {
	for _, size := range []int{0, -8} {
		if _, err := New(size); err == nil {
			t.Errorf("New(%d) succeeded, want error", size)
		}
	}
}

func TestAllocCarvesDisjointRegions(t *testing.T) {
	a, err := New(32)
	if err != nil {
		t.Fatal(err)
	}

	src, err := a.Alloc("source", 16)
	if err != nil {
		t.Fatalf("Alloc(source) failed: %v", err)
	}
	tgt, err := a.Alloc("target", 16)
	if err != nil {
		t.Fatalf("Alloc(target) failed: %v", err)
	}

	// Writes to one region must not leak into the other.
	for i := range src {
		src[i] = 1
	}
	for i, v := range tgt {
		if v != 0 {
			t.Fatalf("target[%d] = %f after writing source, want 0", i, v)
		}
	}

	r, ok := a.Region("target")
	if !ok {
		t.Fatal("Region(target) not found")
	}
	if r.Offset != 16 || r.Size != 16 {
		t.Errorf("target region = %+v, want offset 16 size 16", r)
	}
	if a.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", a.Remaining())
	}
}

func TestAllocSharesBacking(t *testing.T) {
	a, err := New(8)
	if err != nil {
		t.Fatal(err)
	}
	s1, err := a.Alloc("shared", 8)
	if err != nil {
		t.Fatal(err)
	}
	s2, err := a.Slice("shared")
	if err != nil {
		t.Fatal(err)
	}

	s1[3] = 9
	if s2[3] != 9 {
		t.Errorf("Slice view does not alias Alloc view: got %f, want 9", s2[3])
	}
}

func TestAllocErrors(t *testing.T) {
	a, err := New(8)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := a.Alloc("a", 0); err == nil {
		t.Error("Alloc accepted zero size")
	}
	if _, err := a.Alloc("a", 4); err != nil {
		t.Fatalf("Alloc(a) failed: %v", err)
	}
	if _, err := a.Alloc("a", 4); err == nil {
		t.Error("Alloc accepted duplicate region name")
	}
	if _, err := a.Alloc("b", 8); err == nil {
		t.Error("Alloc succeeded past arena capacity")
	}
}

func TestZeroRegion(t *testing.T) {
	a, err := New(8)
	if err != nil {
		t.Fatal(err)
	}
	s, err := a.Alloc("buf", 8)
	if err != nil {
		t.Fatal(err)
	}
	for i := range s {
		s[i] = float64(i)
	}
	if err := a.Zero("buf"); err != nil {
		t.Fatalf("Zero failed: %v", err)
	}
	for i, v := range s {
		if v != 0 {
			t.Fatalf("buf[%d] = %f after Zero, want 0", i, v)
		}
	}
	if err := a.Zero("missing"); err == nil {
		t.Error("Zero accepted unknown region")
	}
}
