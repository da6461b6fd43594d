// Package dcgp implements the Differentiable Cartesian Genetic Programming
// expression: a fixed grid of function nodes encoded as an integer
// chromosome, evaluated along its active subgraph and mutated in place.
package dcgp

import "fmt"

// Kind distinguishes the ways an Expression operation can fail, letting
// callers branch on failure category rather than parse an error string.
type Kind string

const (
	InvalidShape      Kind = "invalid_shape"
	InvalidChromosome Kind = "invalid_chromosome"
	InvalidIndex      Kind = "invalid_index"
	InvalidNode       Kind = "invalid_node"
	InvalidBatch      Kind = "invalid_batch"
	UnknownLoss       Kind = "unknown_loss"
	ShapeMismatch     Kind = "shape_mismatch"
)

// Error is the one error type pkg/dcgp returns, carrying a Kind so callers
// can match on category with errors.Is against the sentinel below, and a
// human-readable Msg for logging.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("dcgp: %s: %s", e.Kind, e.Msg)
}

// Is reports whether target is a *Error with the same Kind, making
// errors.Is(err, &Error{Kind: InvalidIndex}) a valid way to test for a
// specific failure category regardless of message.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Sentinels for the seven kinds, for use with errors.Is(err, dcgp.ErrInvalidIndex).
var (
	ErrInvalidShape      = &Error{Kind: InvalidShape}
	ErrInvalidChromosome = &Error{Kind: InvalidChromosome}
	ErrInvalidIndex      = &Error{Kind: InvalidIndex}
	ErrInvalidNode       = &Error{Kind: InvalidNode}
	ErrInvalidBatch      = &Error{Kind: InvalidBatch}
	ErrUnknownLoss       = &Error{Kind: UnknownLoss}
	ErrShapeMismatch     = &Error{Kind: ShapeMismatch}
)
