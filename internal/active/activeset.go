// Package active computes the active-node and active-gene sets of a
// chromosome: the subset of the grid that actually contributes to the
// outputs. Grounded on
// original_source/include/dcgp/expression.hpp::update_data_structures.
package active

import (
	"sort"

	"dcgpgo/internal/chromo"
)

// Set holds the active nodes (sorted, deduplicated) and active genes
// (function genes and connection genes of active nodes, plus every output
// gene) of one chromosome.
type Set struct {
	Nodes []uint
	Genes []uint
}

// Compute walks backward from the output genes, the way update_data_structures
// does: start from the nodes the outputs point at, then repeatedly pull in
// whatever those nodes' connection genes point at, until a generation adds
// nothing new.
func Compute(c *chromo.Chromosome) Set {
	shape := c.Bounds.Shape
	m := shape.M

	current := make([]uint, m)
	for i := uint(0); i < m; i++ {
		current[i] = c.Genes[c.OutputGene(i)]
	}

	var nodes []uint
	seen := make(map[uint]bool)

	for len(current) > 0 {
		var next []uint
		for _, nodeID := range current {
			if seen[nodeID] {
				continue
			}
			seen[nodeID] = true
			nodes = append(nodes, nodeID)
			if nodeID < shape.N {
				continue // input nodes have no connections to follow
			}
			arity, _ := shape.ArityAt(nodeID)
			idx := c.FunctionGene(nodeID)
			for i := uint(1); i <= arity; i++ {
				next = append(next, c.Genes[idx+i])
			}
		}
		next = dedupSorted(next)
		current = next
	}

	sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })

	var genes []uint
	for _, nodeID := range nodes {
		if nodeID < shape.N {
			continue
		}
		arity, _ := shape.ArityAt(nodeID)
		idx := c.FunctionGene(nodeID)
		for j := uint(0); j <= arity; j++ {
			genes = append(genes, idx+j)
		}
	}
	for i := uint(0); i < m; i++ {
		genes = append(genes, c.OutputGene(i))
	}

	return Set{Nodes: nodes, Genes: genes}
}

// IsActiveNode reports whether nodeID appears in s.Nodes. Nodes is kept
// sorted by Compute, so this is a binary search.
func (s Set) IsActiveNode(nodeID uint) bool {
	i := sort.Search(len(s.Nodes), func(i int) bool { return s.Nodes[i] >= nodeID })
	return i < len(s.Nodes) && s.Nodes[i] == nodeID
}

func dedupSorted(xs []uint) []uint {
	if len(xs) == 0 {
		return xs
	}
	sort.Slice(xs, func(i, j int) bool { return xs[i] < xs[j] })
	out := xs[:1]
	for _, x := range xs[1:] {
		if x != out[len(out)-1] {
			out = append(out, x)
		}
	}
	return out
}
