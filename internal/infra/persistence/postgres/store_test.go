package postgres

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"periodica/internal/infra/persistence/postgres/testutil"
)

func TestNewStoreSeedsEmptyCorpus(t *testing.T) {
	db, conn := testutil.NewStubDB()
	restore := OverrideSQLOpen(func(_, _ string) (*sql.DB, error) { return db, nil })
	defer restore()

	store, err := NewStore("")
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	var sawDDL bool
	for _, stmt := range conn.Execs {
		if strings.HasPrefix(strings.ToUpper(stmt), "CREATE TABLE") {
			sawDDL = true
			break
		}
	}
	if !sawDDL {
		t.Fatalf("expected schema DDL, got execs: %v", conn.Execs)
	}
	if len(conn.Tables["elements"]) == 0 {
		t.Fatal("seed left elements table empty")
	}

	fe, err := store.Element(context.Background(), 26)
	if err != nil {
		t.Fatalf("element: %v", err)
	}
	if fe.Symbol != "Fe" || len(fe.IonizationEnergies) == 0 || fe.Series == nil {
		t.Fatalf("iron not fully populated: %+v", fe)
	}
}

func TestNewStoreHydratesExistingCorpus(t *testing.T) {
	db, conn := testutil.NewStubDB()
	restore := OverrideSQLOpen(func(_, _ string) (*sql.DB, error) { return db, nil })
	defer restore()

	if _, err := NewStore(""); err != nil {
		t.Fatalf("first open: %v", err)
	}
	seeded := len(conn.Tables["elements"])

	store, err := NewStore("")
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	if got := len(conn.Tables["elements"]); got != seeded {
		t.Fatalf("reopen reseeded: %d rows, want %d", got, seeded)
	}

	all, err := store.Elements(context.Background())
	if err != nil {
		t.Fatalf("elements: %v", err)
	}
	if len(all) != seeded {
		t.Fatalf("hydrated %d elements, stored %d", len(all), seeded)
	}
}

func TestNewStorePingFailure(t *testing.T) {
	db, conn := testutil.NewStubDB()
	conn.FailPing = true
	restore := OverrideSQLOpen(func(_, _ string) (*sql.DB, error) { return db, nil })
	defer restore()

	if _, err := NewStore(""); err == nil {
		t.Fatal("unreachable database should fail")
	}
}
