package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"periodica/pkg/chem"
)

func TestNewStoreSeedsEmptyDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.db")
	store, err := NewStore(path)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	defer func() { _ = store.Close() }()

	ctx := context.Background()
	fe, err := store.Element(ctx, 26)
	if err != nil {
		t.Fatalf("element: %v", err)
	}
	if fe.Symbol != "Fe" || len(fe.Isotopes) == 0 || fe.Group == nil {
		t.Fatalf("iron not fully populated after seed: %+v", fe)
	}

	var count int
	if err := store.DB().QueryRow(`SELECT COUNT(*) FROM "elements"`).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count == 0 {
		t.Fatal("seed left elements table empty")
	}
}

func TestNewStoreRehydratesExistingDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.db")
	first, err := NewStore(path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	want, err := first.Elements(context.Background())
	if err != nil {
		t.Fatalf("elements: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	second, err := NewStore(path)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	defer func() { _ = second.Close() }()

	got, err := second.Elements(context.Background())
	if err != nil {
		t.Fatalf("elements: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("element count after reopen: got %d, want %d", len(got), len(want))
	}

	// nullable columns survive the SQL round trip
	h, err := second.Element(context.Background(), 1)
	if err != nil {
		t.Fatalf("hydrogen: %v", err)
	}
	if h.AtomicWeight == nil || *h.AtomicWeight != 1.008 {
		t.Fatalf("hydrogen weight: %v", h.AtomicWeight)
	}
	if h.Density != nil {
		t.Fatalf("absent density should stay nil, got %v", *h.Density)
	}
	tritium, err := h.Isotope(3)
	if err != nil {
		t.Fatalf("tritium: %v", err)
	}
	if tritium.IsRadioactive == nil || !*tritium.IsRadioactive {
		t.Fatal("boolean column lost in round trip")
	}
	if len(tritium.DecayModes) != 1 {
		t.Fatalf("tritium decay modes: %d", len(tritium.DecayModes))
	}
}

func TestTableRowsThroughSQL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.db")
	store, err := NewStore(path)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	defer func() { _ = store.Close() }()

	rows, err := store.TableRows(context.Background(), chem.TableIonicRadii)
	if err != nil {
		t.Fatalf("table rows: %v", err)
	}
	if len(rows) == 0 {
		t.Fatal("no ionic radius rows")
	}
	found := false
	for _, row := range rows {
		if row["atomic_number"] == 26 && row["charge"] == 3 && row["spin"] == "HS" {
			if row["crystal_radius"] != 78.5 {
				t.Fatalf("crystal radius: %v", row["crystal_radius"])
			}
			found = true
		}
	}
	if !found {
		t.Fatal("Fe(3+) VI HS radius missing")
	}
}
