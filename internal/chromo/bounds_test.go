package chromo

import "testing"

func TestNewBoundsSize(t *testing.T) {
	shape := UniformShape(2, 1, 2, 3, 1, 2)
	b, err := NewBounds(shape, 4)
	if err != nil {
		t.Fatalf("NewBounds: %v", err)
	}
	if got, want := uint(len(b.LB)), shape.Size(); got != want {
		t.Fatalf("len(LB): got %d, want %d", got, want)
	}
	if len(b.LB) != len(b.UB) {
		t.Fatalf("LB/UB length mismatch: %d vs %d", len(b.LB), len(b.UB))
	}
}

func TestNewBoundsFunctionGeneBounds(t *testing.T) {
	shape := UniformShape(2, 1, 1, 1, 1, 2)
	b, err := NewBounds(shape, 5)
	if err != nil {
		t.Fatalf("NewBounds: %v", err)
	}
	// single row/column: gene 0 is the function gene, bounded by library size - 1.
	if b.LB[0] != 0 || b.UB[0] != 4 {
		t.Fatalf("function gene bounds: got [%d, %d], want [0, 4]", b.LB[0], b.UB[0])
	}
}

func TestNewBoundsConnectionGeneRespectsLevelsBack(t *testing.T) {
	// n=2, r=1, c=2, l=1, arity=1: column 0 can only see the two inputs;
	// column 1, with levels-back 1, can only see column 0's single node.
	shape := UniformShape(2, 1, 1, 2, 1, 1)
	b, err := NewBounds(shape, 3)
	if err != nil {
		t.Fatalf("NewBounds: %v", err)
	}
	// gene layout: [fgene0, cgene0, fgene1, cgene1, outgene]
	if b.LB[1] != 0 || b.UB[1] != 1 {
		t.Fatalf("column 0 connection gene: got [%d, %d], want [0, 1]", b.LB[1], b.UB[1])
	}
	if b.LB[3] != 2 || b.UB[3] != 2 {
		t.Fatalf("column 1 connection gene: got [%d, %d], want [2, 2]", b.LB[3], b.UB[3])
	}
}

func TestNewBoundsOutputGeneRange(t *testing.T) {
	shape := UniformShape(2, 2, 2, 2, 2, 2)
	b, err := NewBounds(shape, 4)
	if err != nil {
		t.Fatalf("NewBounds: %v", err)
	}
	size := shape.Size()
	for i := size - shape.M; i < size; i++ {
		if b.UB[i] != shape.N+shape.R*shape.C-1 {
			t.Fatalf("output gene %d ub: got %d, want %d", i, b.UB[i], shape.N+shape.R*shape.C-1)
		}
	}
}

func TestNewBoundsRejectsZeroArity(t *testing.T) {
	shape := Shape{N: 1, M: 1, R: 1, C: 1, L: 1, Arity: []uint{0}}
	if _, err := NewBounds(shape, 3); err == nil {
		t.Fatal("NewBounds with zero arity: want error, got nil")
	}
}

func TestNewBoundsRejectsArityLengthMismatch(t *testing.T) {
	shape := Shape{N: 1, M: 1, R: 1, C: 2, L: 1, Arity: []uint{2}}
	if _, err := NewBounds(shape, 3); err == nil {
		t.Fatal("NewBounds with mismatched arity length: want error, got nil")
	}
}

func TestGeneIndexOfInputNodeIsZero(t *testing.T) {
	shape := UniformShape(3, 1, 2, 2, 1, 2)
	b, err := NewBounds(shape, 4)
	if err != nil {
		t.Fatalf("NewBounds: %v", err)
	}
	for n := uint(0); n < shape.N; n++ {
		if b.GeneIndexOf(n) != 0 {
			t.Fatalf("GeneIndexOf(input %d): got %d, want 0", n, b.GeneIndexOf(n))
		}
	}
}
