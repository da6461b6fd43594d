package numeric

import (
	"math"
	"testing"
)

func TestRealArithmetic(t *testing.T) {
	a := FromFloat64(3)
	b := FromFloat64(4)

	if got := a.Add(b).Float64(); got != 7 {
		t.Fatalf("Add: got %v, want 7", got)
	}
	if got := a.Mul(b).Float64(); got != 12 {
		t.Fatalf("Mul: got %v, want 12", got)
	}
	if got := b.Sub(a).Float64(); got != 1 {
		t.Fatalf("Sub: got %v, want 1", got)
	}
	if got := b.Div(a).Float64(); math.Abs(got-4.0/3.0) > 1e-12 {
		t.Fatalf("Div: got %v, want %v", got, 4.0/3.0)
	}
}

func TestRealIsFinite(t *testing.T) {
	if !FromFloat64(1).IsFinite() {
		t.Fatalf("1 should be finite")
	}
	if FromFloat64(1).Div(FromFloat64(0)).IsFinite() {
		t.Fatalf("1/0 should not be finite")
	}
}

func TestRealLess(t *testing.T) {
	if !FromFloat64(1).Less(FromFloat64(2)) {
		t.Fatalf("1 should be less than 2")
	}
	if FromFloat64(2).Less(FromFloat64(1)) {
		t.Fatalf("2 should not be less than 1")
	}
}
