package chromo

// Bounds holds the per-gene [lb, ub] pairs and the gene-index table for one
// Shape against one library size, exactly as computed by
// init_bounds_and_chromosome in original_source/include/dcgp/expression.hpp.
// It depends only on the shape and the number of kernels, never on gene
// values, which is what makes it cacheable.
type Bounds struct {
	Shape       Shape
	LB, UB      []uint
	GeneIdx     []uint // indexed by node id, length N + R*C
	librarySize int
}

// NewBounds computes the bounds and gene-index table for shape against a
// library holding librarySize kernels.
func NewBounds(shape Shape, librarySize int) (*Bounds, error) {
	if err := shape.Validate(librarySize); err != nil {
		return nil, err
	}

	size := shape.Size()
	lb := make([]uint, size)
	ub := make([]uint, size)

	k := uint(0)
	for i := uint(0); i < shape.C; i++ { // column first
		for j := uint(0); j < shape.R; j++ { // then row
			// function gene: lb stays 0
			ub[k] = uint(librarySize) - 1
			k++
			for l := uint(0); l < shape.Arity[i]; l++ {
				ub[k] = shape.N + i*shape.R - 1
				if i >= shape.L {
					lb[k] = shape.N + shape.R*(i-shape.L)
				}
				k++
			}
		}
	}
	// output genes
	for i := size - shape.M; i < size; i++ {
		ub[i] = shape.N + shape.R*shape.C - 1
		if shape.L <= shape.C {
			lb[i] = shape.N + shape.R*(shape.C-shape.L)
		}
	}

	geneIdx := make([]uint, shape.R*shape.C+shape.N)
	for nodeID := range geneIdx {
		if uint(nodeID) < shape.N {
			geneIdx[nodeID] = 0
			continue
		}
		col := (uint(nodeID) - shape.N) / shape.R
		row := (uint(nodeID) - shape.N) % shape.R
		var acc uint
		for j := uint(0); j < col; j++ {
			acc += shape.Arity[j]
		}
		acc *= shape.R
		geneIdx[nodeID] = acc + row*shape.Arity[col] + (uint(nodeID) - shape.N)
	}

	return &Bounds{Shape: shape, LB: lb, UB: ub, GeneIdx: geneIdx, librarySize: librarySize}, nil
}

// At returns the [lb, ub] pair for gene idx.
func (b *Bounds) At(idx uint) (lb, ub uint) {
	return b.LB[idx], b.UB[idx]
}

// Mutable reports whether gene idx has more than one legal value.
func (b *Bounds) Mutable(idx uint) bool {
	return b.LB[idx] < b.UB[idx]
}

// GeneIndexOf returns the chromosome index where node nodeID's genes begin.
func (b *Bounds) GeneIndexOf(nodeID uint) uint {
	return b.GeneIdx[nodeID]
}
