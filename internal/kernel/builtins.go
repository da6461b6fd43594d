package kernel

import "dcgpgo/internal/numeric"

// BuiltinNames lists the reference kernel set, in the order
// wrapped_functions.hpp/kernel_set.hpp define them.
var BuiltinNames = []string{
	"sum", "diff", "mul", "div", "pdiv",
	"sig", "tanh", "ReLu", "ELU", "ISRU",
	"sin", "cos", "log", "exp",
}

// BuiltinSet assembles the reference kernel library: one Go transliteration
// of each my_*/print_my_* pair in
// original_source/include/dcgp/wrapped_functions.hpp, wired through
// numeric.Value[T] instead of raw double/gdual.
func BuiltinSet[T numeric.Value[T]]() *Library[T] {
	lib := NewLibrary[T]()
	for _, name := range BuiltinNames {
		k, err := Builtin[T](name)
		if err != nil {
			panic(err) // programming error: BuiltinNames and Builtin are out of sync
		}
		lib.MustRegister(k)
	}
	return lib
}

// Builtin constructs a single named kernel from the reference set. Mirrors
// kernel_set<T>::push_back(std::string)'s name dispatch.
func Builtin[T numeric.Value[T]](name string) (Kernel[T], error) {
	switch name {
	case "sum":
		return New[T](name, sum[T], printSum), nil
	case "diff":
		return New[T](name, diff[T], printDiff), nil
	case "mul":
		return New[T](name, mul[T], printMul), nil
	case "div":
		return New[T](name, div[T], printDiv), nil
	case "pdiv":
		return New[T](name, pdiv[T], printPdiv), nil
	case "sig":
		return New[T](name, sig[T], printSig), nil
	case "tanh":
		return New[T](name, tanhK[T], printTanh), nil
	case "ReLu":
		return New[T](name, relu[T], printRelu), nil
	case "ELU":
		return New[T](name, elu[T], printElu), nil
	case "ISRU":
		return New[T](name, isru[T], printIsru), nil
	case "sin":
		return New[T](name, sinK[T], printSin), nil
	case "cos":
		return New[T](name, cosK[T], printCos), nil
	case "log":
		return New[T](name, logK[T], printLog), nil
	case "exp":
		return New[T](name, expK[T], printExp), nil
	default:
		return Kernel[T]{}, ErrKernelNotFound
	}
}

// --- N-arity functions -----------------------------------------------------

func sum[T numeric.Value[T]](in []T) T {
	retval := in[0]
	for _, v := range in[1:] {
		retval = retval.Add(v)
	}
	return retval
}

func printSum(in []string) string {
	retval := in[0]
	for _, v := range in[1:] {
		retval += "+" + v
	}
	return "(" + retval + ")"
}

func diff[T numeric.Value[T]](in []T) T {
	retval := in[0]
	for _, v := range in[1:] {
		retval = retval.Sub(v)
	}
	return retval
}

func printDiff(in []string) string {
	retval := in[0]
	for _, v := range in[1:] {
		retval += "-" + v
	}
	return "(" + retval + ")"
}

func mul[T numeric.Value[T]](in []T) T {
	retval := in[0]
	for _, v := range in[1:] {
		retval = retval.Mul(v)
	}
	return retval
}

func printMul(in []string) string {
	retval := in[0]
	for _, v := range in[1:] {
		retval += "*" + v
	}
	return "(" + retval + ")"
}

func div[T numeric.Value[T]](in []T) T {
	retval := in[0]
	for _, v := range in[1:] {
		retval = retval.Div(v)
	}
	return retval
}

func printDiv(in []string) string {
	retval := in[0]
	for _, v := range in[1:] {
		retval += "/" + v
	}
	return "(" + retval + ")"
}

// pdiv is protected division: in[0] / (in[1]*in[2]*...), falling back to 1
// whenever the result is not finite, per wrapped_functions.hpp's double
// overload of my_pdiv and spec.md §4.1.
func pdiv[T numeric.Value[T]](in []T) T {
	retval := in[0]
	tmp := in[1]
	for _, v := range in[2:] {
		tmp = tmp.Mul(v)
	}
	retval = retval.Div(tmp)
	if retval.IsFinite() {
		return retval
	}
	return retval.One()
}

func printPdiv(in []string) string {
	return "(" + in[0] + "/" + in[1] + ")"
}

// --- Suitable for dCGPANN ---------------------------------------------------

func sig[T numeric.Value[T]](in []T) T {
	retval := in[0]
	for _, v := range in[1:] {
		retval = retval.Add(v)
	}
	one := retval.One()
	return one.Div(one.Add(retval.Neg().Exp()))
}

func printSig(in []string) string {
	retval := in[0]
	for _, v := range in[1:] {
		retval += "+" + v
	}
	return "sig(" + retval + ")"
}

func tanhK[T numeric.Value[T]](in []T) T {
	retval := in[0]
	for _, v := range in[1:] {
		retval = retval.Add(v)
	}
	return retval.Tanh()
}

func printTanh(in []string) string {
	retval := in[0]
	for _, v := range in[1:] {
		retval += "+" + v
	}
	return "tanh(" + retval + ")"
}

func relu[T numeric.Value[T]](in []T) T {
	retval := in[0]
	for _, v := range in[1:] {
		retval = retval.Add(v)
	}
	zero := retval.Zero()
	if retval.Less(zero) {
		return zero
	}
	return retval
}

func printRelu(in []string) string {
	retval := in[0]
	for _, v := range in[1:] {
		retval += "+" + v
	}
	return "ReLu(" + retval + ")"
}

func elu[T numeric.Value[T]](in []T) T {
	retval := in[0]
	for _, v := range in[1:] {
		retval = retval.Add(v)
	}
	zero := retval.Zero()
	if retval.Less(zero) {
		return retval.Exp().Sub(retval.One())
	}
	return retval
}

func printElu(in []string) string {
	retval := in[0]
	for _, v := range in[1:] {
		retval += "+" + v
	}
	return "ELU(" + retval + ")"
}

func isru[T numeric.Value[T]](in []T) T {
	retval := in[0]
	for _, v := range in[1:] {
		retval = retval.Add(v)
	}
	one := retval.One()
	return retval.Div(one.Add(retval.Mul(retval)).Sqrt())
}

func printIsru(in []string) string {
	retval := in[0]
	for _, v := range in[1:] {
		retval += "+" + v
	}
	return "ISRU(" + retval + ")"
}

// --- Unary functions --------------------------------------------------------

func sinK[T numeric.Value[T]](in []T) T { return in[0].Sin() }
func printSin(in []string) string       { return "sin(" + in[0] + ")" }

func cosK[T numeric.Value[T]](in []T) T { return in[0].Cos() }
func printCos(in []string) string       { return "cos(" + in[0] + ")" }

func logK[T numeric.Value[T]](in []T) T { return in[0].Log() }
func printLog(in []string) string       { return "log(" + in[0] + ")" }

func expK[T numeric.Value[T]](in []T) T { return in[0].Exp() }
func printExp(in []string) string       { return "exp(" + in[0] + ")" }
