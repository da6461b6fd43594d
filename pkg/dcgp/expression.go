package dcgp

import (
	"math/rand"

	"dcgpgo/internal/active"
	"dcgpgo/internal/chromo"
	"dcgpgo/internal/evalengine"
	"dcgpgo/internal/kernel"
	"dcgpgo/internal/lossreducer"
	"dcgpgo/internal/numeric"
)

// Expression is a dCGP graph: a chromosome over a fixed grid shape, a
// kernel library, and the active-set snapshot derived from the current
// chromosome. It is single-writer/multi-reader: Call and Loss may run
// concurrently on a stable chromosome, but Set/SetFuncGene/Mutate* require
// exclusive access, matching the teacher's genotype mutators.
type Expression[T numeric.Value[T]] struct {
	library *kernel.Library[T]
	chrom   *chromo.Chromosome
	active  active.Set
	rng     *rand.Rand
}

// NewExpression builds an Expression with a per-column arity vector.
func NewExpression[T numeric.Value[T]](n, m, r, c, l uint, arity []uint, library *kernel.Library[T], seed int64) (*Expression[T], error) {
	shape := chromo.Shape{N: n, M: m, R: r, C: c, L: l, Arity: arity}
	bounds, err := chromo.CachedBounds(shape, library.Len())
	if err != nil {
		return nil, convertShapeError(err)
	}

	rng := rand.New(rand.NewSource(seed))
	ch := chromo.RandomFill(bounds, rng)

	return &Expression[T]{
		library: library,
		chrom:   ch,
		active:  active.Compute(ch),
		rng:     rng,
	}, nil
}

// NewExpressionUniformArity is NewExpression with the same arity on every
// column.
func NewExpressionUniformArity[T numeric.Value[T]](n, m, r, c, l, a uint, library *kernel.Library[T], seed int64) (*Expression[T], error) {
	arity := make([]uint, c)
	for i := range arity {
		arity[i] = a
	}
	return NewExpression(n, m, r, c, l, arity, library, seed)
}

func convertShapeError(err error) *Error {
	return newError(InvalidShape, "%v", err)
}

// Get returns a copy of the current chromosome.
func (e *Expression[T]) Get() []uint {
	out := make([]uint, len(e.chrom.Genes))
	copy(out, e.chrom.Genes)
	return out
}

// GetLowerBounds returns a copy of the per-gene lower bounds.
func (e *Expression[T]) GetLowerBounds() []uint {
	out := make([]uint, len(e.chrom.Bounds.LB))
	copy(out, e.chrom.Bounds.LB)
	return out
}

// GetUpperBounds returns a copy of the per-gene upper bounds.
func (e *Expression[T]) GetUpperBounds() []uint {
	out := make([]uint, len(e.chrom.Bounds.UB))
	copy(out, e.chrom.Bounds.UB)
	return out
}

// GetActiveGenes returns a copy of the active gene index list.
func (e *Expression[T]) GetActiveGenes() []uint {
	out := make([]uint, len(e.active.Genes))
	copy(out, e.active.Genes)
	return out
}

// GetActiveNodes returns a copy of the sorted, deduplicated active node ids.
func (e *Expression[T]) GetActiveNodes() []uint {
	out := make([]uint, len(e.active.Nodes))
	copy(out, e.active.Nodes)
	return out
}

func (e *Expression[T]) GetN() uint { return e.chrom.Bounds.Shape.N }
func (e *Expression[T]) GetM() uint { return e.chrom.Bounds.Shape.M }
func (e *Expression[T]) GetR() uint { return e.chrom.Bounds.Shape.R }
func (e *Expression[T]) GetC() uint { return e.chrom.Bounds.Shape.C }
func (e *Expression[T]) GetL() uint { return e.chrom.Bounds.Shape.L }

// GetArity returns a copy of the per-column arity vector.
func (e *Expression[T]) GetArity() []uint {
	out := make([]uint, len(e.chrom.Bounds.Shape.Arity))
	copy(out, e.chrom.Bounds.Shape.Arity)
	return out
}

// GetArityAt returns the arity of the column that node nodeID belongs to.
func (e *Expression[T]) GetArityAt(nodeID uint) (uint, error) {
	a, err := e.chrom.Bounds.Shape.ArityAt(nodeID)
	if err != nil {
		return 0, newError(InvalidNode, "%v", err)
	}
	return a, nil
}

// GetKernels returns the kernel library backing this expression.
func (e *Expression[T]) GetKernels() *kernel.Library[T] {
	return e.library
}

// GetGeneIdx returns a copy of the node-id-indexed gene-position table.
func (e *Expression[T]) GetGeneIdx() []uint {
	out := make([]uint, len(e.chrom.Bounds.GeneIdx))
	copy(out, e.chrom.Bounds.GeneIdx)
	return out
}

// IsActive reports whether nodeID is in the current active-node set.
func (e *Expression[T]) IsActive(nodeID uint) bool {
	return e.active.IsActiveNode(nodeID)
}

// IsValid reports whether x would be a legal chromosome for this
// expression's shape, without installing it.
func (e *Expression[T]) IsValid(x []uint) bool {
	c, err := chromo.New(e.chrom.Bounds, x)
	return err == nil && c != nil
}

// Set installs a new chromosome after validating it, re-deriving the active
// sets. On validation failure the expression's state is left untouched.
func (e *Expression[T]) Set(x []uint) error {
	if err := e.chrom.Set(x); err != nil {
		return newError(InvalidChromosome, "%v", err)
	}
	e.active = active.Compute(e.chrom)
	return nil
}

// SetFuncGene rewrites nodeID's function gene directly, bypassing the
// uniform-random mutate path, the way expression.hpp's set_f_gene does.
// Connectivity is unaffected, so the active sets are left untouched.
func (e *Expression[T]) SetFuncGene(nodeID uint, kernelID uint) error {
	shape := e.chrom.Bounds.Shape
	if nodeID < shape.N || nodeID >= shape.N+shape.R*shape.C {
		return newError(InvalidNode, "node id %d outside function-node range", nodeID)
	}
	if int(kernelID) >= e.library.Len() {
		return newError(InvalidNode, "kernel id %d outside library range [0, %d)", kernelID, e.library.Len())
	}
	return e.chrom.SetGene(e.chrom.FunctionGene(nodeID), kernelID)
}

// Reseed replaces the instance's RNG source, without touching the
// chromosome.
func (e *Expression[T]) Reseed(seed int64) {
	e.rng = rand.New(rand.NewSource(seed))
}

// Call evaluates the expression numerically at point.
func (e *Expression[T]) Call(point []T) ([]T, error) {
	if uint(len(point)) != e.chrom.Bounds.Shape.N {
		return nil, newError(ShapeMismatch, "input size is %d, expected %d", len(point), e.chrom.Bounds.Shape.N)
	}
	visitor := evalengine.NumericVisitor[T]{Library: e.library, Point: point}
	return evalengine.Evaluate[T](e.active.Nodes, e.chrom, visitor)
}

// CallSymbolic evaluates the expression's symbolic pretty-printer at point.
func (e *Expression[T]) CallSymbolic(point []string) ([]string, error) {
	if uint(len(point)) != e.chrom.Bounds.Shape.N {
		return nil, newError(ShapeMismatch, "input size is %d, expected %d", len(point), e.chrom.Bounds.Shape.N)
	}
	visitor := evalengine.SymbolicVisitor[T]{Library: e.library, Point: point}
	return evalengine.Evaluate[string](e.active.Nodes, e.chrom, visitor)
}

// Loss computes the loss of a single point/prediction pair.
func (e *Expression[T]) Loss(point, prediction []T, kind lossreducer.Kind) (T, error) {
	var zero T
	if uint(len(point)) != e.chrom.Bounds.Shape.N {
		return zero, newError(ShapeMismatch, "point size is %d, expected %d", len(point), e.chrom.Bounds.Shape.N)
	}
	if uint(len(prediction)) != e.chrom.Bounds.Shape.M {
		return zero, newError(ShapeMismatch, "prediction size is %d, expected %d", len(prediction), e.chrom.Bounds.Shape.M)
	}
	out, err := e.Call(point)
	if err != nil {
		return zero, err
	}
	l, err := lossreducer.Point(out, prediction, kind)
	if err != nil {
		return zero, newError(UnknownLoss, "%v", err)
	}
	return l, nil
}

// BatchLoss computes the average loss over a dataset, optionally in
// parallel across workers equal-sized slabs.
func (e *Expression[T]) BatchLoss(points, labels [][]T, kind lossreducer.Kind, parallel int) (T, error) {
	var zero T
	if len(points) != len(labels) {
		return zero, newError(InvalidBatch, "data size is %d while label size is %d", len(points), len(labels))
	}
	if len(points) == 0 {
		return zero, newError(InvalidBatch, "data size cannot be zero")
	}
	if parallel > 0 && len(points)%parallel != 0 {
		return zero, newError(InvalidBatch, "batch size %d cannot be divided into %d parts", len(points), parallel)
	}

	predict := func(point []T) ([]T, error) { return e.Call(point) }
	l, err := lossreducer.Batch(points, labels, kind, parallel, predict)
	if err != nil {
		return zero, newError(InvalidBatch, "%v", err)
	}
	return l, nil
}
