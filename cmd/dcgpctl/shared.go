package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"dcgpgo/internal/kernel"
	"dcgpgo/internal/numeric"
	"dcgpgo/pkg/dcgp"
)

// shapeFlags holds the grid-shape flags shared by every subcommand that
// constructs an Expression. Each subcommand binds its own copy on its own
// FlagSet through bindShapeFlags.
type shapeFlags struct {
	n, m, r, c, l *uint
	arity         *uint
	kernels       *string
	seed          *int64
	genes         *string
}

func bindShapeFlags(fs *flag.FlagSet) *shapeFlags {
	return &shapeFlags{
		n:       fs.Uint("n", 2, "number of inputs"),
		m:       fs.Uint("m", 1, "number of outputs"),
		r:       fs.Uint("r", 1, "number of rows"),
		c:       fs.Uint("c", 2, "number of columns"),
		l:       fs.Uint("l", 2, "levels-back"),
		arity:   fs.Uint("arity", 2, "uniform basis function arity"),
		kernels: fs.String("kernels", "sum,diff,mul,div", "comma-separated kernel names from the builtin set"),
		seed:    fs.Int64("seed", 1, "rng seed"),
		genes:   fs.String("genes", "", "comma-separated gene values to install (optional, otherwise random)"),
	}
}

func buildLibrary(names string) (*kernel.Library[numeric.Real], error) {
	lib := kernel.NewLibrary[numeric.Real]()
	for _, name := range strings.Split(names, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		k, err := kernel.Builtin[numeric.Real](name)
		if err != nil {
			return nil, fmt.Errorf("kernel %q: %w", name, err)
		}
		if err := lib.Register(k); err != nil {
			return nil, err
		}
	}
	if lib.Len() == 0 {
		return nil, fmt.Errorf("at least one kernel is required")
	}
	return lib, nil
}

func parseGenes(csv string) ([]uint, error) {
	if csv == "" {
		return nil, nil
	}
	parts := strings.Split(csv, ",")
	genes := make([]uint, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("gene %d: %w", i, err)
		}
		genes[i] = uint(v)
	}
	return genes, nil
}

func parsePoint(csv string) ([]numeric.Real, error) {
	parts := strings.Split(csv, ",")
	point := make([]numeric.Real, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		point[i] = numeric.FromFloat64(v)
	}
	return point, nil
}

func buildExpression(sf *shapeFlags) (*dcgp.Expression[numeric.Real], error) {
	lib, err := buildLibrary(*sf.kernels)
	if err != nil {
		return nil, err
	}
	expr, err := dcgp.NewExpressionUniformArity[numeric.Real](*sf.n, *sf.m, *sf.r, *sf.c, *sf.l, *sf.arity, lib, *sf.seed)
	if err != nil {
		return nil, err
	}
	genes, err := parseGenes(*sf.genes)
	if err != nil {
		return nil, err
	}
	if genes != nil {
		if err := expr.Set(genes); err != nil {
			return nil, err
		}
	}
	return expr, nil
}
