package dcgp

import (
	"strings"
	"testing"

	"dcgpgo/internal/numeric"
)

func TestStringContainsShapeSummary(t *testing.T) {
	lib := sumDiffLibrary(t)
	expr, err := NewExpression[numeric.Real](2, 1, 1, 1, 1, []uint{2}, lib, 1)
	if err != nil {
		t.Fatalf("NewExpression: %v", err)
	}

	out := expr.String()
	for _, want := range []string{"dCGP Expression:", "Number of inputs:", "Active nodes:", "Function set:"} {
		if !strings.Contains(out, want) {
			t.Fatalf("String() missing %q in:\n%s", want, out)
		}
	}
}
