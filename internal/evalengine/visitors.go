package evalengine

import (
	"dcgpgo/internal/kernel"
	"dcgpgo/internal/numeric"
)

// NumericVisitor evaluates a chromosome over a concrete scalar domain.
type NumericVisitor[T numeric.Value[T]] struct {
	Library *kernel.Library[T]
	Point   []T
}

func (v NumericVisitor[T]) Input(index uint) T { return v.Point[index] }

func (v NumericVisitor[T]) Apply(kernelIndex uint, args []T) T {
	k, err := v.Library.At(int(kernelIndex))
	if err != nil {
		panic(err) // programming error: gene values are bounds-checked against library size at construction time
	}
	return k.Apply(args)
}

// SymbolicVisitor renders a chromosome's output expressions as strings,
// reusing the same Library and the same traversal as NumericVisitor.
type SymbolicVisitor[T numeric.Value[T]] struct {
	Library *kernel.Library[T]
	Point   []string
}

func (v SymbolicVisitor[T]) Input(index uint) string { return v.Point[index] }

func (v SymbolicVisitor[T]) Apply(kernelIndex uint, args []string) string {
	k, err := v.Library.At(int(kernelIndex))
	if err != nil {
		panic(err)
	}
	return k.ApplySymbolic(args)
}
