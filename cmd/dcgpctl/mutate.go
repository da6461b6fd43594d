package main

import (
	"context"
	"flag"
	"fmt"

	"dcgpgo/internal/numeric"
	"dcgpgo/pkg/dcgp"
)

func runMutate(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("mutate", flag.ContinueOnError)
	sf := bindShapeFlags(fs)
	operator := fs.String("operator", "active_gene", "mutator name: random_gene|active_gene|active_func_gene|active_conn_gene|output_gene")
	count := fs.Int("count", 1, "number of mutations to apply")
	if err := fs.Parse(args); err != nil {
		return err
	}

	expr, err := buildExpression(sf)
	if err != nil {
		return err
	}

	registry := dcgp.NewDefaultMutatorRegistry[numeric.Real]()
	if err := registry.Apply(*operator, expr, *count); err != nil {
		return err
	}

	fmt.Printf("genes=%v\n", expr.Get())
	fmt.Printf("active_nodes=%v\n", expr.GetActiveNodes())
	fmt.Printf("active_genes=%v\n", expr.GetActiveGenes())
	return nil
}
