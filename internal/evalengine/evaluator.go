// Package evalengine walks a chromosome's active nodes once and produces
// output values, sharing a single traversal between the numeric and
// symbolic-rendering domains via the Visitor interface. Grounded on
// original_source/include/dcgp/expression.hpp's operator() overloads, which
// are identical but for the element type, generalized here into one
// generic routine instead of copy-pasted per type.
package evalengine

import (
	"fmt"

	"dcgpgo/internal/chromo"
)

// Visitor supplies the two domain-specific operations a traversal needs:
// reading an input value, and applying the function at a given kernel index
// to a slice of already-computed arguments.
type Visitor[V any] interface {
	Input(index uint) V
	Apply(kernelIndex uint, args []V) V
}

// Evaluate runs c's active-node computation using visitor, and returns one
// value per output gene. activeNodes must be sorted ascending and must
// already be the transitive closure an output gene reaches (active.Compute's
// contract): because connection genes only ever point at lower-numbered
// nodes (the levels-back constraint), a single ascending pass over exactly
// that set is enough to have every dependency ready before the node that
// needs it.
func Evaluate[V any](activeNodes []uint, c *chromo.Chromosome, visitor Visitor[V]) ([]V, error) {
	shape := c.Bounds.Shape
	node := make([]V, shape.NumNodes())

	for _, id := range activeNodes {
		if id < shape.N {
			node[id] = visitor.Input(id)
			continue
		}
		arity, err := shape.ArityAt(id)
		if err != nil {
			return nil, fmt.Errorf("evalengine: %w", err)
		}
		idx := c.FunctionGene(id)
		kernelIdx := c.Genes[idx]
		args := make([]V, arity)
		for j := uint(0); j < arity; j++ {
			args[j] = node[c.Genes[idx+j+1]]
		}
		node[id] = visitor.Apply(kernelIdx, args)
	}

	out := make([]V, shape.M)
	for i := uint(0); i < shape.M; i++ {
		out[i] = node[c.Genes[c.OutputGene(i)]]
	}
	return out, nil
}
