// Package chromo implements the dCGP chromosome layout: shape-derived
// per-gene bounds, the gene-index table, and the mutable chromosome itself.
// Grounded on original_source/include/dcgp/expression.hpp's
// init_bounds_and_chromosome and sanity_checks.
package chromo

import "fmt"

// Shape is the (n, m, r, c, L, arity) tuple that identifies a dCGP grid
// layout, independent of any one chromosome's gene values.
type Shape struct {
	N, M, R, C, L uint
	Arity         []uint
}

// UniformShape builds a Shape with the same arity for every column,
// equivalent to the "uniform arity" constructor in spec.md §6.1.
func UniformShape(n, m, r, c, l, arity uint) Shape {
	a := make([]uint, c)
	for i := range a {
		a[i] = arity
	}
	return Shape{N: n, M: m, R: r, C: c, L: l, Arity: a}
}

// Validate checks the sanity conditions from spec.md §4.2 /
// expression.hpp::sanity_checks.
func (s Shape) Validate(librarySize int) error {
	if s.N == 0 {
		return fmt.Errorf("%w: number of inputs is 0", ErrInvalidShape)
	}
	if s.M == 0 {
		return fmt.Errorf("%w: number of outputs is 0", ErrInvalidShape)
	}
	if s.R == 0 {
		return fmt.Errorf("%w: number of rows is 0", ErrInvalidShape)
	}
	if s.C == 0 {
		return fmt.Errorf("%w: number of columns is 0", ErrInvalidShape)
	}
	if s.L == 0 {
		return fmt.Errorf("%w: number of levels-back is 0", ErrInvalidShape)
	}
	if uint(len(s.Arity)) != s.C {
		return fmt.Errorf("%w: arity vector size (%d) must equal number of columns (%d)", ErrInvalidShape, len(s.Arity), s.C)
	}
	for _, a := range s.Arity {
		if a == 0 {
			return fmt.Errorf("%w: basis function arity cannot be zero", ErrInvalidShape)
		}
	}
	if librarySize == 0 {
		return fmt.Errorf("%w: number of basis functions is 0", ErrInvalidShape)
	}
	return nil
}

// Size returns the chromosome length S = r*c + r*sum(arity) + m.
func (s Shape) Size() uint {
	var sumArity uint
	for _, a := range s.Arity {
		sumArity += a
	}
	return s.R*s.C + s.R*sumArity + s.M
}

// NumNodes returns n + r*c, the size of the evaluator's scratch node array.
func (s Shape) NumNodes() uint {
	return s.N + s.R*s.C
}

// Column returns the column index of a function-node id (id must be >= N).
func (s Shape) Column(nodeID uint) uint {
	return (nodeID - s.N) / s.R
}

// Row returns the row index of a function-node id (id must be >= N).
func (s Shape) Row(nodeID uint) uint {
	return (nodeID - s.N) % s.R
}

// ArityAt returns the arity of the column node nodeID belongs to.
// nodeID must be a function-node id (N <= nodeID < N+R*C).
func (s Shape) ArityAt(nodeID uint) (uint, error) {
	if nodeID < s.N || nodeID >= s.N+s.R*s.C {
		return 0, fmt.Errorf("%w: node id %d outside function-node range [%d, %d]", ErrInvalidNode, nodeID, s.N, s.N+s.R*s.C-1)
	}
	return s.Arity[s.Column(nodeID)], nil
}

// digest is a comparable key derived from a Shape plus the library size,
// for use as a map/LRU key (slices aren't comparable, so Arity is flattened
// into the key string).
type digest struct {
	n, m, r, c, l uint
	librarySize   int
	arity         string
}

func (s Shape) digest(librarySize int) digest {
	buf := make([]byte, 0, len(s.Arity)*4)
	for _, a := range s.Arity {
		buf = append(buf, byte(a), byte(a>>8), byte(a>>16), byte(a>>24))
	}
	return digest{n: s.N, m: s.M, r: s.R, c: s.C, l: s.L, librarySize: librarySize, arity: string(buf)}
}
