package main

import (
	"context"
	"flag"
	"fmt"
)

func runRender(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	sf := bindShapeFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	expr, err := buildExpression(sf)
	if err != nil {
		return err
	}
	fmt.Print(expr.String())
	return nil
}
