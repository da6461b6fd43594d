package main

import (
	"context"
	"flag"
	"fmt"
)

func runCall(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("call", flag.ContinueOnError)
	sf := bindShapeFlags(fs)
	pointCSV := fs.String("point", "", "comma-separated input point, length must equal n")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *pointCSV == "" {
		return fmt.Errorf("call requires --point")
	}

	expr, err := buildExpression(sf)
	if err != nil {
		return err
	}
	point, err := parsePoint(*pointCSV)
	if err != nil {
		return err
	}

	out, err := expr.Call(point)
	if err != nil {
		return err
	}
	for i, v := range out {
		fmt.Printf("output[%d]=%v\n", i, v.Float64())
	}
	return nil
}
