// Package numeric defines the scalar-domain contract the dCGP core is
// generic over. The core never hard-codes float64 arithmetic; it asks a
// type parameter for the ring operations (and the transcendentals some
// kernels need) through this trait.
package numeric

// Value is the capability set a dCGP scalar domain T must provide. It is
// satisfied by Real (a float64 wrapper) in this package, and could equally
// be satisfied by a truncated power-series ("generalized dual") domain
// supplied by a collaborator — that domain is out of scope here.
type Value[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
	Neg() T

	Exp() T
	Log() T
	Sin() T
	Cos() T
	Tanh() T
	Sqrt() T

	// IsFinite reports whether the value is finite in the underlying
	// domain. Protected division uses this to decide whether to fall
	// back to its guard value.
	IsFinite() bool

	// Less orders two values of the domain. Used by the cross-entropy
	// loss to find the maximum output for the softmax shift.
	Less(T) bool

	// Zero and One return the domain's additive and multiplicative
	// identities. Kernels that need a literal constant (ReLu's threshold,
	// sig/ELU/ISRU's "1") get it from here rather than from an unsafe
	// self-division, since a domain value in hand may not be finite.
	Zero() T
	One() T
}
