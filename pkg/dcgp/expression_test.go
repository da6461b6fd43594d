package dcgp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"dcgpgo/internal/kernel"
	"dcgpgo/internal/lossreducer"
	"dcgpgo/internal/numeric"
)

func real(f float64) numeric.Real { return numeric.FromFloat64(f) }

func sumDiffLibrary(t *testing.T) *kernel.Library[numeric.Real] {
	t.Helper()
	lib := kernel.NewLibrary[numeric.Real]()
	sumK, err := kernel.Builtin[numeric.Real]("sum")
	require.NoError(t, err)
	diffK, err := kernel.Builtin[numeric.Real]("diff")
	require.NoError(t, err)
	require.NoError(t, lib.Register(sumK))
	require.NoError(t, lib.Register(diffK))
	return lib
}

// TestScenarioConstructAndEvaluateIdentity is end-to-end scenario 1.
func TestScenarioConstructAndEvaluateIdentity(t *testing.T) {
	lib := sumDiffLibrary(t)
	expr, err := NewExpression[numeric.Real](2, 1, 1, 1, 1, []uint{2}, lib, 123)
	require.NoError(t, err)
	require.NoError(t, expr.Set([]uint{0, 0, 1, 2}))

	out, err := expr.Call([]numeric.Real{real(3), real(4)})
	require.NoError(t, err)
	require.InDelta(t, 7.0, out[0].Float64(), 1e-9)
}

// TestScenarioActiveSetMinimal is end-to-end scenario 2. Levels-back is set
// to 2 (strictly greater than the column count of 1) so the single output
// gene is free to select an input node directly, bypassing the only
// function node in the grid entirely.
func TestScenarioActiveSetMinimal(t *testing.T) {
	lib := kernel.NewLibrary[numeric.Real]()
	sumK, err := kernel.Builtin[numeric.Real]("sum")
	require.NoError(t, err)
	require.NoError(t, lib.Register(sumK))

	expr, err := NewExpression[numeric.Real](2, 1, 1, 1, 2, []uint{2}, lib, 123)
	require.NoError(t, err)
	require.NoError(t, expr.Set([]uint{0, 0, 1, 0})) // output selects input 0 directly

	require.Equal(t, []uint{0}, expr.GetActiveNodes())
	require.Equal(t, []uint{3}, expr.GetActiveGenes())

	out, err := expr.Call([]numeric.Real{real(5), real(9)})
	require.NoError(t, err)
	require.InDelta(t, 5.0, out[0].Float64(), 1e-9)
}

// TestScenarioMutationValidity is end-to-end scenario 3.
func TestScenarioMutationValidity(t *testing.T) {
	lib := kernel.NewLibrary[numeric.Real]()
	for _, name := range []string{"sum", "diff", "mul", "div"} {
		k, err := kernel.Builtin[numeric.Real](name)
		require.NoError(t, err)
		require.NoError(t, lib.Register(k))
	}

	expr, err := NewExpressionUniformArity[numeric.Real](2, 4, 2, 3, 4, 2, lib, 123)
	require.NoError(t, err)

	for i := 0; i < 1000; i++ {
		require.NoError(t, expr.MutateActive(1), "iteration %d", i)
		require.True(t, expr.IsValid(expr.Get()), "iteration %d", i)
	}
}

// TestScenarioMSE is end-to-end scenario 4.
func TestScenarioMSE(t *testing.T) {
	lib := sumDiffLibrary(t)
	expr, err := NewExpression[numeric.Real](2, 1, 1, 1, 1, []uint{2}, lib, 1)
	require.NoError(t, err)
	require.NoError(t, expr.Set([]uint{0, 0, 1, 2}))

	got, err := expr.Loss([]numeric.Real{real(1), real(2)}, []numeric.Real{real(5)}, lossreducer.MSE)
	require.NoError(t, err)
	// output = 1+2 = 3; (3-5)^2 / 1 output = 4
	require.InDelta(t, 4.0, got.Float64(), 1e-9)
}

// TestScenarioParallelEqualsSequential is end-to-end scenario 6.
func TestScenarioParallelEqualsSequential(t *testing.T) {
	lib := sumDiffLibrary(t)
	expr, err := NewExpression[numeric.Real](2, 1, 1, 1, 1, []uint{2}, lib, 7)
	require.NoError(t, err)
	require.NoError(t, expr.Set([]uint{0, 0, 1, 2}))

	points := make([][]numeric.Real, 8)
	labels := make([][]numeric.Real, 8)
	for i := range points {
		points[i] = []numeric.Real{real(float64(i)), real(float64(i) + 1)}
		labels[i] = []numeric.Real{real(2)}
	}

	sequential, err := expr.BatchLoss(points, labels, lossreducer.MSE, 0)
	require.NoError(t, err)
	parallel, err := expr.BatchLoss(points, labels, lossreducer.MSE, 4)
	require.NoError(t, err)
	require.InDelta(t, sequential.Float64(), parallel.Float64(), 1e-9)
}

func TestConstructionRejectsZeroInputs(t *testing.T) {
	lib := sumDiffLibrary(t)
	_, err := NewExpression[numeric.Real](0, 1, 1, 1, 1, []uint{2}, lib, 1)
	require.Error(t, err)
	var derr *Error
	require.True(t, errors.As(err, &derr))
	require.Equal(t, InvalidShape, derr.Kind)
}

func TestSetRejectsWrongSize(t *testing.T) {
	lib := sumDiffLibrary(t)
	expr, err := NewExpression[numeric.Real](2, 1, 1, 1, 1, []uint{2}, lib, 1)
	require.NoError(t, err)

	err = expr.Set([]uint{0, 0})
	require.Error(t, err)
	var derr *Error
	require.True(t, errors.As(err, &derr))
	require.Equal(t, InvalidChromosome, derr.Kind)
}

func TestCallRejectsWrongInputSize(t *testing.T) {
	lib := sumDiffLibrary(t)
	expr, err := NewExpression[numeric.Real](2, 1, 1, 1, 1, []uint{2}, lib, 1)
	require.NoError(t, err)

	_, err = expr.Call([]numeric.Real{real(1)})
	var derr *Error
	require.True(t, errors.As(err, &derr))
	require.Equal(t, ShapeMismatch, derr.Kind)
}

func TestSetFuncGenePreservesActiveSets(t *testing.T) {
	lib := sumDiffLibrary(t)
	expr, err := NewExpression[numeric.Real](2, 1, 1, 1, 1, []uint{2}, lib, 1)
	require.NoError(t, err)
	require.NoError(t, expr.Set([]uint{0, 0, 1, 2}))

	beforeNodes := expr.GetActiveNodes()
	beforeGenes := expr.GetActiveGenes()

	require.NoError(t, expr.SetFuncGene(2, 1)) // switch sum -> diff

	require.Equal(t, beforeNodes, expr.GetActiveNodes())
	require.Equal(t, beforeGenes, expr.GetActiveGenes())
}

func TestSetGetRoundTripIsNoop(t *testing.T) {
	lib := sumDiffLibrary(t)
	expr, err := NewExpression[numeric.Real](2, 1, 1, 1, 1, []uint{2}, lib, 42)
	require.NoError(t, err)

	before := expr.Get()
	require.NoError(t, expr.Set(expr.Get()))
	require.Equal(t, before, expr.Get())
}

func TestDuplicateOutputGenesProduceEqualEntries(t *testing.T) {
	lib := sumDiffLibrary(t)
	expr, err := NewExpression[numeric.Real](2, 2, 1, 1, 1, []uint{2}, lib, 1)
	require.NoError(t, err)
	// both outputs select the same node.
	require.NoError(t, expr.Set([]uint{0, 0, 1, 2, 2}))

	out, err := expr.Call([]numeric.Real{real(2), real(3)})
	require.NoError(t, err)
	require.Equal(t, out[0].Float64(), out[1].Float64())
}
