package export

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"strings"
	"testing"
	"time"

	"periodica/internal/blob"
	"periodica/pkg/frame"
)

func fixtureFrame() *frame.Frame {
	f := frame.New("elements",
		frame.Column{Name: "atomic_number", Type: "int"},
		frame.Column{Name: "symbol", Type: "string"},
		frame.Column{Name: "covalent_radius", Type: "float"},
	)
	f.AppendRow(frame.Row{"atomic_number": 1, "symbol": "H", "covalent_radius": 32.0})
	f.AppendRow(frame.Row{"atomic_number": 2, "symbol": "He", "covalent_radius": nil})
	return f
}

func TestExportCSVAndJSON(t *testing.T) {
	store := blob.NewMemory()
	audit := &MemoryAudit{}
	when := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	exp := NewExporter(store, audit).WithClock(func() time.Time { return when })

	ctx := context.Background()
	artifacts, err := exp.Export(ctx, fixtureFrame(), FormatCSV, FormatJSON)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if len(artifacts) != 2 {
		t.Fatalf("artifacts: %d", len(artifacts))
	}

	csvArt := artifacts[0]
	if csvArt.Key != "exports/elements/20260314T092653Z-0001.csv" {
		t.Fatalf("csv key: %s", csvArt.Key)
	}
	if csvArt.Format != FormatCSV || csvArt.ContentType != "text/csv" || csvArt.Rows != 2 {
		t.Fatalf("csv artifact: %+v", csvArt)
	}

	_, rc, err := store.Get(ctx, csvArt.Key)
	if err != nil {
		t.Fatalf("get csv: %v", err)
	}
	payload, _ := io.ReadAll(rc)
	_ = rc.Close()
	text := string(payload)
	if !strings.HasPrefix(text, "atomic_number,symbol,covalent_radius\n") {
		t.Fatalf("csv header: %q", text)
	}
	if !strings.Contains(text, "2,He,\n") {
		t.Fatalf("nil cell should render empty: %q", text)
	}
	sum := sha256.Sum256(payload)
	if csvArt.Checksum != hex.EncodeToString(sum[:]) {
		t.Fatalf("checksum mismatch: %s", csvArt.Checksum)
	}
	if csvArt.SizeBytes != int64(len(payload)) {
		t.Fatalf("size: %d != %d", csvArt.SizeBytes, len(payload))
	}

	jsonArt := artifacts[1]
	if jsonArt.Key != "exports/elements/20260314T092653Z-0001.json" {
		t.Fatalf("json key: %s", jsonArt.Key)
	}
	_, rc, err = store.Get(ctx, jsonArt.Key)
	if err != nil {
		t.Fatalf("get json: %v", err)
	}
	payload, _ = io.ReadAll(rc)
	_ = rc.Close()
	var decoded struct {
		Name string           `json:"name"`
		Rows []map[string]any `json:"rows"`
	}
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("decode json artifact: %v", err)
	}
	if decoded.Name != "elements" || len(decoded.Rows) != 2 {
		t.Fatalf("json artifact: %+v", decoded)
	}

	entries := audit.Entries()
	if len(entries) != 2 {
		t.Fatalf("audit entries: %d", len(entries))
	}
	if entries[0].Table != "elements" || entries[0].Format != FormatCSV || entries[0].Rows != 2 {
		t.Fatalf("audit entry: %+v", entries[0])
	}
	if entries[0].ID != entries[1].ID {
		t.Fatalf("one export should share an id: %s %s", entries[0].ID, entries[1].ID)
	}
}

func TestExportDefaultsToCSV(t *testing.T) {
	exp := NewExporter(blob.NewMemory(), nil)
	artifacts, err := exp.Export(context.Background(), fixtureFrame())
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if len(artifacts) != 1 || artifacts[0].Format != FormatCSV {
		t.Fatalf("artifacts: %+v", artifacts)
	}
}

func TestExportUnknownFormat(t *testing.T) {
	exp := NewExporter(blob.NewMemory(), nil)
	if _, err := exp.Export(context.Background(), fixtureFrame(), Format("parquet")); err == nil {
		t.Fatal("unknown format should fail")
	}
}

func TestExportDistinctIDs(t *testing.T) {
	exp := NewExporter(blob.NewMemory(), nil)
	ctx := context.Background()
	a, err := exp.Export(ctx, fixtureFrame(), FormatCSV)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	b, err := exp.Export(ctx, fixtureFrame(), FormatCSV)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if a[0].Key == b[0].Key {
		t.Fatalf("keys should differ: %s", a[0].Key)
	}
}
