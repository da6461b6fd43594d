package dcgp

import (
	"fmt"
	"strings"
)

// String renders a human-readable summary of the expression, grounded on
// expression.hpp's operator<<.
func (e *Expression[T]) String() string {
	shape := e.chrom.Bounds.Shape
	var b strings.Builder

	fmt.Fprintf(&b, "dCGP Expression:\n")
	fmt.Fprintf(&b, "\tNumber of inputs:\t\t%d\n", shape.N)
	fmt.Fprintf(&b, "\tNumber of outputs:\t\t%d\n", shape.M)
	fmt.Fprintf(&b, "\tNumber of rows:\t\t\t%d\n", shape.R)
	fmt.Fprintf(&b, "\tNumber of columns:\t\t%d\n", shape.C)
	fmt.Fprintf(&b, "\tNumber of levels-back allowed:\t%d\n", shape.L)
	fmt.Fprintf(&b, "\tBasis function arity:\t\t%v\n", shape.Arity)
	fmt.Fprintf(&b, "\tStart of the gene expressing the node:\t%v\n", e.chrom.Bounds.GeneIdx)
	fmt.Fprintf(&b, "\n\tResulting lower bounds:\t%v\n", e.chrom.Bounds.LB)
	fmt.Fprintf(&b, "\tResulting upper bounds:\t%v\n", e.chrom.Bounds.UB)
	fmt.Fprintf(&b, "\n\tCurrent expression (encoded):\t%v\n", e.chrom.Genes)
	fmt.Fprintf(&b, "\tActive nodes:\t\t\t%v\n", e.active.Nodes)
	fmt.Fprintf(&b, "\tActive genes:\t\t\t%v\n", e.active.Genes)
	fmt.Fprintf(&b, "\n\tFunction set:\t\t\t%v\n", e.library.Names())

	return b.String()
}
