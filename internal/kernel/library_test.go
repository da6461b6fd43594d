package kernel

import (
	"errors"
	"testing"

	"dcgpgo/internal/numeric"
)

func TestLibraryRegisterAndLookup(t *testing.T) {
	lib := NewLibrary[numeric.Real]()
	sumK, err := Builtin[numeric.Real]("sum")
	if err != nil {
		t.Fatalf("Builtin(sum): %v", err)
	}
	if err := lib.Register(sumK); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if lib.Len() != 1 {
		t.Fatalf("Len: got %d, want 1", lib.Len())
	}

	idx, err := lib.IndexOf("sum")
	if err != nil || idx != 0 {
		t.Fatalf("IndexOf(sum): idx=%d err=%v", idx, err)
	}

	got, err := lib.At(0)
	if err != nil {
		t.Fatalf("At(0): %v", err)
	}
	if got.Name() != "sum" {
		t.Fatalf("At(0).Name(): got %q, want sum", got.Name())
	}
}

func TestLibraryRegisterDuplicate(t *testing.T) {
	lib := NewLibrary[numeric.Real]()
	sumK, _ := Builtin[numeric.Real]("sum")
	if err := lib.Register(sumK); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	err := lib.Register(sumK)
	if !errors.Is(err, ErrKernelExists) {
		t.Fatalf("Register duplicate: got %v, want ErrKernelExists", err)
	}
}

func TestLibraryAtOutOfRange(t *testing.T) {
	lib := NewLibrary[numeric.Real]()
	if _, err := lib.At(0); !errors.Is(err, ErrKernelNotFound) {
		t.Fatalf("At(0) on empty library: got %v, want ErrKernelNotFound", err)
	}
}

func TestBuiltinSetHasAllNames(t *testing.T) {
	lib := BuiltinSet[numeric.Real]()
	if lib.Len() != len(BuiltinNames) {
		t.Fatalf("BuiltinSet len: got %d, want %d", lib.Len(), len(BuiltinNames))
	}
	for i, name := range BuiltinNames {
		idx, err := lib.IndexOf(name)
		if err != nil {
			t.Fatalf("IndexOf(%s): %v", name, err)
		}
		if idx != i {
			t.Fatalf("IndexOf(%s): got %d, want %d", name, idx, i)
		}
	}
}
