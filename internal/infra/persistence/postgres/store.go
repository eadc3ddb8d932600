// Package postgres provides a Postgres-backed corpus store sharing the
// hydration path with the sqlite driver.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"periodica/internal/infra/persistence/memory"
	"periodica/internal/infra/persistence/sqlutil"
	"periodica/internal/refdata"
	"periodica/pkg/chem"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver
)

var _ chem.Store = (*Store)(nil)

const (
	defaultDriver = "pgx"
	defaultDSN    = "postgres://localhost/periodica?sslmode=disable"
)

var (
	sqlOpen = sql.Open
	openMu  sync.Mutex
)

// Store hydrates the corpus from Postgres and serves it through the
// wrapped memory store.
type Store struct {
	*memory.Store
	db *sql.DB
}

// NewStore connects with the given DSN (falling back to a local default),
// ensures the reference schema, seeds an empty corpus from the embedded
// dataset and hydrates the in-memory store.
func NewStore(dsn string) (*Store, error) {
	if dsn == "" {
		dsn = defaultDSN
	}
	openMu.Lock()
	db, err := sqlOpen(defaultDriver, dsn)
	openMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if err := sqlutil.EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	empty, err := sqlutil.Empty(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if empty {
		seed, err := refdata.Load()
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		if err := sqlutil.SaveDataset(ctx, db, seed, sqlutil.Dollar); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	dataset, err := sqlutil.LoadDataset(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := dataset.Validate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("validate corpus: %w", err)
	}
	if err := dataset.Link(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("link corpus: %w", err)
	}
	return &Store{Store: memory.NewStore(dataset), db: db}, nil
}

// DB exposes the underlying handle for integration tests.
func (s *Store) DB() *sql.DB { return s.db }

// Close releases the connection pool. Reads keep working from memory.
func (s *Store) Close() error { return s.db.Close() }

// OverrideSQLOpen swaps the sqlOpen function for tests and returns a
// restore function.
func OverrideSQLOpen(fn func(driverName, dataSourceName string) (*sql.DB, error)) func() {
	openMu.Lock()
	defer openMu.Unlock()
	prev := sqlOpen
	sqlOpen = fn
	return func() {
		openMu.Lock()
		defer openMu.Unlock()
		sqlOpen = prev
	}
}
