// Package kernel defines the dCGP primitive-operator contract and a
// reference implementation of the builtin kernel set. Grounded on
// internal/nn/registry.go's named-function registry, generalized from
// "one activation function per name" to "one (value-apply, symbolic-apply)
// pair per name."
package kernel

import "dcgpgo/internal/numeric"

// Kernel is a primitive operator: a numeric application over the scalar
// domain T and a symbolic application over strings, for pretty-printing.
// The two are independent callables, exactly mirroring dcgp::kernel<T> in
// the collaborator library this core was distilled from.
type Kernel[T numeric.Value[T]] struct {
	name     string
	apply    func(args []T) T
	symbolic func(args []string) string
}

// New constructs a Kernel from a name and its two application functions.
func New[T numeric.Value[T]](name string, apply func([]T) T, symbolic func([]string) string) Kernel[T] {
	return Kernel[T]{name: name, apply: apply, symbolic: symbolic}
}

// Name returns the kernel's name (e.g. "sum").
func (k Kernel[T]) Name() string { return k.name }

// Apply evaluates the kernel on a slice of T inputs. The caller (the
// evaluator) passes exactly the column's arity worth of arguments; per
// spec.md's "column arity wins" design note, kernels never validate arity
// themselves — sum-family kernels consume every argument, unary kernels
// read only args[0].
func (k Kernel[T]) Apply(args []T) T {
	return k.apply(args)
}

// ApplySymbolic evaluates the kernel's pretty-printer on a slice of
// symbolic argument names, producing a textual representation of the
// operation (e.g. "(s1+s2)").
func (k Kernel[T]) ApplySymbolic(args []string) string {
	return k.symbolic(args)
}

func (k Kernel[T]) String() string { return k.name }
