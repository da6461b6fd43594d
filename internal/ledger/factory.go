package ledger

import "fmt"

// NewStore builds a Store backend by name. kind "" or "memory" selects
// MemoryStore; "sqlite" requires the binary to be built with -tags sqlite.
func NewStore(kind, sqlitePath string) (Store, error) {
	switch kind {
	case "", "memory":
		return NewMemoryStore(), nil
	case "sqlite":
		return newSQLiteStore(sqlitePath)
	default:
		return nil, fmt.Errorf("unsupported ledger backend: %s", kind)
	}
}
