package chromo

import "testing"

func TestShapeCacheHitsReturnSameBounds(t *testing.T) {
	sc, err := NewShapeCache(4)
	if err != nil {
		t.Fatalf("NewShapeCache: %v", err)
	}
	shape := UniformShape(2, 1, 2, 2, 1, 2)

	first, err := sc.Get(shape, 4)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	second, err := sc.Get(shape, 4)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if first != second {
		t.Fatal("Get: expected the same cached *Bounds pointer on a repeat lookup")
	}
	if sc.Len() != 1 {
		t.Fatalf("Len: got %d, want 1", sc.Len())
	}
}

func TestShapeCacheDistinguishesLibrarySize(t *testing.T) {
	sc, err := NewShapeCache(4)
	if err != nil {
		t.Fatalf("NewShapeCache: %v", err)
	}
	shape := UniformShape(2, 1, 2, 2, 1, 2)

	a, err := sc.Get(shape, 4)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	b, err := sc.Get(shape, 6)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if a == b {
		t.Fatal("Get: bounds for different library sizes must not be shared")
	}
	if sc.Len() != 2 {
		t.Fatalf("Len: got %d, want 2", sc.Len())
	}
}

func TestShapeCacheRejectsInvalidShape(t *testing.T) {
	sc, err := NewShapeCache(4)
	if err != nil {
		t.Fatalf("NewShapeCache: %v", err)
	}
	bad := Shape{N: 0, M: 1, R: 1, C: 1, L: 1, Arity: []uint{1}}
	if _, err := sc.Get(bad, 2); err == nil {
		t.Fatal("Get on invalid shape: want error, got nil")
	}
}

func TestCachedBoundsSharesInstanceAcrossCalls(t *testing.T) {
	shape := UniformShape(2, 1, 3, 3, 2, 2)

	first, err := CachedBounds(shape, 4)
	if err != nil {
		t.Fatalf("CachedBounds: %v", err)
	}
	second, err := CachedBounds(shape, 4)
	if err != nil {
		t.Fatalf("CachedBounds: %v", err)
	}
	if first != second {
		t.Fatal("CachedBounds: expected the same shared *Bounds pointer on a repeat lookup")
	}
}
