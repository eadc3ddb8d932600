package periodica

import (
	"context"
	"fmt"
	"os"

	"periodica/internal/blob"
	"periodica/internal/export"
	"periodica/internal/infra/persistence/memory"
	"periodica/internal/infra/persistence/postgres"
	"periodica/internal/infra/persistence/sqlite"
	"periodica/pkg/chem"
)

// Store driver names accepted by OpenStore.
const (
	StoreDriverMemory   = "memory"
	StoreDriverSQLite   = "sqlite"
	StoreDriverPostgres = "postgres"
)

// OpenStore selects and opens a reference store from the environment:
//
//	PERIODICA_STORE_DRIVER: memory|sqlite|postgres (default memory)
//	PERIODICA_SQLITE_PATH: corpus file when driver=sqlite
//	PERIODICA_POSTGRES_DSN: connection string when driver=postgres
//
// SQL-backed stores implement io.Closer; callers owning the store should
// close it when done.
func OpenStore(_ context.Context) (chem.Store, error) {
	driver := os.Getenv("PERIODICA_STORE_DRIVER")
	if driver == "" {
		driver = StoreDriverMemory
	}
	switch driver {
	case StoreDriverMemory:
		return memory.Open()
	case StoreDriverSQLite:
		return sqlite.NewStore(os.Getenv("PERIODICA_SQLITE_PATH"))
	case StoreDriverPostgres:
		return postgres.NewStore(os.Getenv("PERIODICA_POSTGRES_DSN"))
	default:
		return nil, fmt.Errorf("unknown store driver %s", driver)
	}
}

// Open builds a fully wired service from the environment: the reference
// store per PERIODICA_STORE_DRIVER and an artifact exporter over the blob
// store per PERIODICA_BLOB_DRIVER. Options are applied last and may replace
// either.
func Open(ctx context.Context, opts ...Option) (*Service, error) {
	store, err := OpenStore(ctx)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	artifacts, err := blob.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("open blob store: %w", err)
	}
	exporter := export.NewExporter(artifacts, &export.MemoryAudit{})
	wired := append([]Option{WithExporter(exporter)}, opts...)
	return New(store, wired...), nil
}
