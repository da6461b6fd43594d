package dcgp

import "dcgpgo/internal/active"

// Mutate mutates exactly one gene index within its bounds, then refreshes
// the active sets — even for a function gene, which cannot change
// connectivity. The conservative refresh mirrors
// expression.hpp::mutate(unsigned): "TODO: unnecessary if the gene is a
// function gene" is a genuine, nameable follow-up (skip the refresh when the
// index falls before the first connection gene of its node) that was never
// implemented upstream either, so this keeps the same observable behavior.
func (e *Expression[T]) Mutate(idx uint) error {
	if idx >= uint(len(e.chrom.Genes)) {
		return newError(InvalidIndex, "idx %d out of bounds, chromosome size is %d", idx, len(e.chrom.Genes))
	}
	if _, err := e.chrom.Mutate(idx, e.rng); err != nil {
		return newError(InvalidIndex, "%v", err)
	}
	e.active = active.Compute(e.chrom)
	return nil
}

// MutateIndices mutates every index in idxs, refreshing once at the end iff
// any gene actually changed.
func (e *Expression[T]) MutateIndices(idxs []uint) error {
	changedAny := false
	for _, idx := range idxs {
		if idx >= uint(len(e.chrom.Genes)) {
			return newError(InvalidIndex, "idx %d out of bounds, chromosome size is %d", idx, len(e.chrom.Genes))
		}
		changed, err := e.chrom.Mutate(idx, e.rng)
		if err != nil {
			return newError(InvalidIndex, "%v", err)
		}
		changedAny = changedAny || changed
	}
	if changedAny {
		e.active = active.Compute(e.chrom)
	}
	return nil
}

// MutateRandom repeats N times: pick a uniformly random gene index and
// apply the per-index mutation rule, refreshing once at the end.
func (e *Expression[T]) MutateRandom(n int) error {
	changedAny := false
	size := len(e.chrom.Genes)
	for i := 0; i < n; i++ {
		idx := uint(e.rng.Intn(size))
		changed, err := e.chrom.Mutate(idx, e.rng)
		if err != nil {
			return newError(InvalidIndex, "%v", err)
		}
		changedAny = changedAny || changed
	}
	if changedAny {
		e.active = active.Compute(e.chrom)
	}
	return nil
}

// MutateActive repeats N times: pick a uniformly random active gene index
// and mutate it, refreshing after every call since the active-gene set can
// change between iterations.
func (e *Expression[T]) MutateActive(n int) error {
	for i := 0; i < n; i++ {
		if len(e.active.Genes) == 0 {
			return nil
		}
		idx := e.active.Genes[e.rng.Intn(len(e.active.Genes))]
		if err := e.Mutate(idx); err != nil {
			return err
		}
	}
	return nil
}

// MutateActiveFuncGene repeats N times: pick a random active node that is
// not an input node (rejection sampling over active nodes) and mutate its
// function gene.
func (e *Expression[T]) MutateActiveFuncGene(n int) error {
	shape := e.chrom.Bounds.Shape
	if uint(len(e.active.Genes)) <= shape.M {
		return nil // no active function gene exists
	}
	for i := 0; i < n; i++ {
		nodeID := e.randomActiveFunctionNode()
		if err := e.Mutate(e.chrom.FunctionGene(nodeID)); err != nil {
			return err
		}
	}
	return nil
}

// MutateActiveConnGene repeats N times: pick a random active non-input node
// and mutate one of its connection genes, chosen uniformly among its
// arity-many connections.
func (e *Expression[T]) MutateActiveConnGene(n int) error {
	shape := e.chrom.Bounds.Shape
	if uint(len(e.active.Genes)) <= shape.M {
		return nil
	}
	for i := 0; i < n; i++ {
		nodeID := e.randomActiveFunctionNode()
		arity, err := shape.ArityAt(nodeID)
		if err != nil {
			return newError(InvalidNode, "%v", err)
		}
		k := uint(1 + e.rng.Intn(int(arity)))
		if err := e.Mutate(e.chrom.ConnectionGene(nodeID, k)); err != nil {
			return err
		}
	}
	return nil
}

// MutateOutputGene mutates one output gene. With more than one output, the
// gene is chosen uniformly among the active-gene list's final m entries;
// with exactly one output, that single output gene is mutated directly.
func (e *Expression[T]) MutateOutputGene(n int) error {
	m := e.chrom.Bounds.Shape.M
	for i := 0; i < n; i++ {
		var idx uint
		if m > 1 {
			start := len(e.active.Genes) - int(m)
			idx = e.active.Genes[start+e.rng.Intn(int(m))]
		} else {
			idx = e.chrom.OutputGene(0)
		}
		if err := e.Mutate(idx); err != nil {
			return err
		}
	}
	return nil
}

// randomActiveFunctionNode rejection-samples active.Nodes until it finds one
// that is not an input node, mirroring expression.hpp's
// "while (node_id < m_n) { ... }" loops in mutate_active_fgene/_cgene. Safe
// to call only after confirming at least one active function gene exists.
func (e *Expression[T]) randomActiveFunctionNode() uint {
	n := e.chrom.Bounds.Shape.N
	for {
		nodeID := e.active.Nodes[e.rng.Intn(len(e.active.Nodes))]
		if nodeID >= n {
			return nodeID
		}
	}
}
