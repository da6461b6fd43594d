package chromo

import (
	"fmt"
	"math/rand"
)

// Chromosome is a gene vector paired with the Bounds that make it meaningful.
// It owns no kernel library and no evaluation logic; it only knows how to
// validate, randomize, and mutate its own genes within their bounds, mirroring
// the m_x/m_lb/m_ub trio in expression.hpp.
type Chromosome struct {
	Bounds *Bounds
	Genes  []uint
}

// RandomFill builds a new chromosome for bounds, drawing every gene uniformly
// from its [lb, ub] range, the way the expression constructors seed m_x.
func RandomFill(bounds *Bounds, rng *rand.Rand) *Chromosome {
	genes := make([]uint, len(bounds.LB))
	for i := range genes {
		lb, ub := bounds.LB[i], bounds.UB[i]
		genes[i] = lb + uint(rng.Intn(int(ub-lb+1)))
	}
	return &Chromosome{Bounds: bounds, Genes: genes}
}

// New wraps an existing gene vector, validating it against bounds first.
func New(bounds *Bounds, genes []uint) (*Chromosome, error) {
	c := &Chromosome{Bounds: bounds, Genes: genes}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the gene vector's length and per-gene bounds, mirroring
// expression.hpp's is_valid.
func (c *Chromosome) Validate() error {
	if len(c.Genes) != len(c.Bounds.LB) {
		return fmt.Errorf("%w: got %d genes, want %d", ErrChromosomeSize, len(c.Genes), len(c.Bounds.LB))
	}
	for i, g := range c.Genes {
		if g > c.Bounds.UB[i] || g < c.Bounds.LB[i] {
			return fmt.Errorf("%w: gene %d value %d outside [%d, %d]", ErrGeneOutOfBounds, i, g, c.Bounds.LB[i], c.Bounds.UB[i])
		}
	}
	return nil
}

// Set replaces the chromosome's gene vector wholesale, after validating it.
func (c *Chromosome) Set(genes []uint) error {
	prev := c.Genes
	c.Genes = genes
	if err := c.Validate(); err != nil {
		c.Genes = prev
		return err
	}
	return nil
}

// SetGene writes a single gene directly, bypassing the bound check — used by
// SetFuncGene in pkg/dcgp, which needs to place a specific kernel id rather
// than draw a random legal one.
func (c *Chromosome) SetGene(idx uint, value uint) error {
	if idx >= uint(len(c.Genes)) {
		return fmt.Errorf("%w: %d", ErrGeneIndex, idx)
	}
	c.Genes[idx] = value
	return nil
}

// Mutate draws a new, different legal value for gene idx, the do/while
// pattern from expression.hpp::mutate(unsigned). It is a no-op when lb==ub.
// Reports whether a value actually changed.
func (c *Chromosome) Mutate(idx uint, rng *rand.Rand) (bool, error) {
	if idx >= uint(len(c.Genes)) {
		return false, fmt.Errorf("%w: %d", ErrGeneIndex, idx)
	}
	lb, ub := c.Bounds.LB[idx], c.Bounds.UB[idx]
	if lb >= ub {
		return false, nil
	}
	old := c.Genes[idx]
	var v uint
	for {
		v = lb + uint(rng.Intn(int(ub-lb+1)))
		if v != old {
			break
		}
	}
	c.Genes[idx] = v
	return true, nil
}

// Clone returns a deep copy sharing the same Bounds.
func (c *Chromosome) Clone() *Chromosome {
	genes := make([]uint, len(c.Genes))
	copy(genes, c.Genes)
	return &Chromosome{Bounds: c.Bounds, Genes: genes}
}

// FunctionGene returns the index within Genes of nodeID's function gene.
func (c *Chromosome) FunctionGene(nodeID uint) uint {
	return c.Bounds.GeneIdx[nodeID]
}

// ConnectionGene returns the index within Genes of the k-th (1-based)
// connection gene of nodeID, matching gene_idx[node]+k in expression.hpp.
func (c *Chromosome) ConnectionGene(nodeID uint, k uint) uint {
	return c.Bounds.GeneIdx[nodeID] + k
}

// OutputGene returns the index within Genes of the i-th output gene.
func (c *Chromosome) OutputGene(i uint) uint {
	return uint(len(c.Genes)) - c.Bounds.Shape.M + i
}
