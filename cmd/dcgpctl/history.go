package main

import (
	"context"
	"flag"
	"fmt"

	"dcgpgo/internal/ledger"
)

func runHistory(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	runID := fs.String("run-id", "", "run id to fetch history for")
	storeKind := fs.String("store", "memory", "ledger backend: memory|sqlite")
	dbPath := fs.String("db-path", "dcgp.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *runID == "" {
		return fmt.Errorf("history requires --run-id")
	}

	store, err := ledger.NewStore(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = ledger.CloseIfSupported(store)
	}()

	if err := store.Init(ctx); err != nil {
		return err
	}
	entries, err := store.History(ctx, *runID)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("no history")
		return nil
	}
	for _, e := range entries {
		fmt.Printf("generation=%d operator=%s loss=%.6f loss_kind=%s active_len=%d timestamp=%s\n",
			e.Generation, e.Operator, e.Loss, e.LossKind, e.ActiveLen, e.Timestamp.Format("2006-01-02T15:04:05Z07:00"))
	}
	return nil
}
