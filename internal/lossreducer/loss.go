// Package lossreducer computes per-point and batch losses over dCGP
// evaluations, including a parallel batch reducer guarded by a spin lock.
// Grounded on original_source/include/dcgp/expression.hpp's loss() overloads.
package lossreducer

import (
	"errors"
	"fmt"

	"dcgpgo/internal/numeric"
)

// Kind distinguishes the supported loss functions.
type Kind int

const (
	// MSE is mean squared error, for regression.
	MSE Kind = iota
	// CE is cross entropy, for classification.
	CE
)

// ErrUnknownKind is returned by ParseKind for an unrecognized loss name.
var ErrUnknownKind = errors.New("unknown loss kind")

// ParseKind maps the wire-level names "MSE"/"CE" onto a Kind, mirroring
// expression.hpp::loss(..., const std::string &loss_s, ...)'s dispatch.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "MSE":
		return MSE, nil
	case "CE":
		return CE, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
}

func (k Kind) String() string {
	switch k {
	case MSE:
		return "MSE"
	case CE:
		return "CE"
	default:
		return "unknown"
	}
}

// Point computes the loss of a single prediction against a single label.
func Point[T numeric.Value[T]](prediction, label []T, kind Kind) (T, error) {
	var zero T
	if len(prediction) != len(label) {
		return zero, fmt.Errorf("lossreducer: prediction has %d outputs, label has %d", len(prediction), len(label))
	}
	switch kind {
	case MSE:
		return mse(prediction, label), nil
	case CE:
		return crossEntropy(prediction, label), nil
	default:
		return zero, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
	}
}

func mse[T numeric.Value[T]](prediction, label []T) T {
	retval := prediction[0].Zero()
	for i := range prediction {
		d := prediction[i].Sub(label[i])
		retval = retval.Add(d.Mul(d))
	}
	// the domain trait has no integer-division primitive, so the count is
	// built up the same way as any other domain value: repeated addition.
	count := prediction[0].Zero()
	one := prediction[0].One()
	for range prediction {
		count = count.Add(one)
	}
	return retval.Div(count)
}

// crossEntropy subtracts the max output before exponentiating, the same
// numerical-stability guard as expression.hpp's loss_type::CE branch.
func crossEntropy[T numeric.Value[T]](prediction, label []T) T {
	max := prediction[0]
	for _, v := range prediction[1:] {
		if max.Less(v) {
			max = v
		}
	}

	shifted := make([]T, len(prediction))
	cumsum := prediction[0].Zero()
	for i, v := range prediction {
		shifted[i] = v.Sub(max).Exp()
		cumsum = cumsum.Add(shifted[i])
	}

	retval := prediction[0].Zero()
	for i := range shifted {
		term := shifted[i].Div(cumsum).Log().Mul(label[i])
		retval = retval.Add(term)
	}
	return retval.Neg()
}
