package chromo

import "errors"

var (
	// ErrInvalidShape is returned by Shape.Validate when the (n,m,r,c,L,arity)
	// tuple fails one of the sanity checks from expression.hpp::sanity_checks.
	ErrInvalidShape = errors.New("invalid chromosome shape")
	// ErrInvalidNode is returned when a node id falls outside the range the
	// shape or chromosome can represent.
	ErrInvalidNode = errors.New("invalid node id")
	// ErrChromosomeSize is returned when a gene vector's length does not
	// match the shape's expected chromosome size.
	ErrChromosomeSize = errors.New("chromosome size mismatch")
	// ErrGeneOutOfBounds is returned when a gene value falls outside its
	// [lb, ub] bound.
	ErrGeneOutOfBounds = errors.New("gene value out of bounds")
	// ErrGeneIndex is returned when a gene index passed to SetGene or Mutate
	// falls outside the chromosome.
	ErrGeneIndex = errors.New("gene index out of range")
)
