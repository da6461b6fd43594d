package main

import (
	"context"
	"flag"
	"fmt"

	"dcgpgo/internal/lossreducer"
)

func runLoss(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("loss", flag.ContinueOnError)
	sf := bindShapeFlags(fs)
	pointCSV := fs.String("point", "", "comma-separated input point")
	labelCSV := fs.String("label", "", "comma-separated target label, length must equal m")
	kindName := fs.String("kind", "MSE", "loss kind: MSE|CE")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *pointCSV == "" || *labelCSV == "" {
		return fmt.Errorf("loss requires --point and --label")
	}

	kind, err := lossreducer.ParseKind(*kindName)
	if err != nil {
		return err
	}

	expr, err := buildExpression(sf)
	if err != nil {
		return err
	}
	point, err := parsePoint(*pointCSV)
	if err != nil {
		return err
	}
	label, err := parsePoint(*labelCSV)
	if err != nil {
		return err
	}

	l, err := expr.Loss(point, label, kind)
	if err != nil {
		return err
	}
	fmt.Printf("loss=%v kind=%s\n", l.Float64(), kind)
	return nil
}
