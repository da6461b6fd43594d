package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	switch args[0] {
	case "render":
		return runRender(ctx, args[1:])
	case "call":
		return runCall(ctx, args[1:])
	case "loss":
		return runLoss(ctx, args[1:])
	case "mutate":
		return runMutate(ctx, args[1:])
	case "history":
		return runHistory(ctx, args[1:])
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

func usageError(msg string) error {
	return fmt.Errorf("%s\nusage: dcgpctl <render|call|loss|mutate|history> [flags]", msg)
}
