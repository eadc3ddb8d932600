// Package sqlite provides a SQLite-backed corpus store. The reference
// tables live in a single database file; reads are served from a hydrated
// in-memory store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"periodica/internal/infra/persistence/memory"
	"periodica/internal/infra/persistence/sqlutil"
	"periodica/internal/refdata"
	"periodica/pkg/chem"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

var _ chem.Store = (*Store)(nil)

// Store hydrates the corpus from a SQLite file and serves it through the
// wrapped memory store.
type Store struct {
	*memory.Store
	db   *sql.DB
	path string
}

// NewStore opens (or creates) the corpus database at path. A fresh
// database is seeded from the embedded corpus; an existing one is
// hydrated, validated and linked.
func NewStore(path string) (*Store, error) {
	if path == "" {
		path = "periodica.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	ctx := context.Background()
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
		if err := sqlutil.SaveDataset(ctx, db, seed, sqlutil.Question); err != nil {
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
	return &Store{Store: memory.NewStore(dataset), db: db, path: path}, nil
}

// DB exposes the underlying handle for integration tests.
func (s *Store) DB() *sql.DB { return s.db }

// Close releases the database handle. Reads keep working from memory.
func (s *Store) Close() error { return s.db.Close() }
