package frame

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func elementsFixture() *Frame {
	f := New("elements",
		Column{Name: "atomic_number", Type: "int"},
		Column{Name: "symbol", Type: "string"},
		Column{Name: "covalent_radius", Type: "float"},
	)
	f.AppendRow(Row{"atomic_number": 2, "symbol": "He", "covalent_radius": 46.0})
	f.AppendRow(Row{"atomic_number": 1, "symbol": "H", "covalent_radius": 32.0})
	f.AppendRow(Row{"atomic_number": 3, "symbol": "Li"})
	return f
}

func TestAppendRowNormalizes(t *testing.T) {
	f := New("t", Column{Name: "a"}, Column{Name: "b"})
	f.AppendRow(Row{"a": 1, "z": "dropped"})
	if len(f.Rows) != 1 {
		t.Fatalf("rows: %d", len(f.Rows))
	}
	if f.Rows[0]["a"] != 1 || f.Rows[0]["b"] != nil {
		t.Fatalf("row: %v", f.Rows[0])
	}
	if _, ok := f.Rows[0]["z"]; ok {
		t.Fatal("off-schema cell kept")
	}
}

func TestSelectRenameSort(t *testing.T) {
	f := elementsFixture()

	sel, err := f.Select("symbol", "atomic_number")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(sel.Columns) != 2 || sel.Columns[0].Name != "symbol" {
		t.Fatalf("select columns: %v", sel.Columns)
	}
	if _, err := f.Select("nope"); err == nil {
		t.Fatal("select unknown column should fail")
	}

	f.Rename(map[string]string{"covalent_radius": "radius"})
	if !f.hasColumn("radius") || f.hasColumn("covalent_radius") {
		t.Fatalf("rename columns: %v", f.Columns)
	}
	if f.Rows[0]["radius"] != 46.0 {
		t.Fatalf("rename cells: %v", f.Rows[0])
	}

	if err := f.SortBy("atomic_number"); err != nil {
		t.Fatalf("sort: %v", err)
	}
	if f.Rows[0]["symbol"] != "H" || f.Rows[2]["symbol"] != "Li" {
		t.Fatalf("sort order: %v %v", f.Rows[0]["symbol"], f.Rows[2]["symbol"])
	}

	// nil cells sort after values
	if err := f.SortBy("radius"); err != nil {
		t.Fatalf("sort: %v", err)
	}
	if f.Rows[2]["symbol"] != "Li" {
		t.Fatalf("nil ordering: %v", f.Rows[2])
	}
}

func TestAddColumn(t *testing.T) {
	f := elementsFixture()
	f.AddColumn("doubled", func(r Row) any {
		v, ok := asFloat(r["covalent_radius"])
		if !ok {
			return nil
		}
		return v * 2
	})
	if f.Rows[0]["doubled"] != 92.0 {
		t.Fatalf("computed cell: %v", f.Rows[0]["doubled"])
	}
	if f.Rows[2]["doubled"] != nil {
		t.Fatalf("nil input should compute nil: %v", f.Rows[2]["doubled"])
	}
}

func TestLeftJoin(t *testing.T) {
	left := elementsFixture()
	right := New("ie",
		Column{Name: "atomic_number", Type: "int"},
		Column{Name: "energy", Type: "float"},
		Column{Name: "symbol", Type: "string"},
	)
	right.AppendRow(Row{"atomic_number": 1, "energy": 13.5984, "symbol": "H"})
	right.AppendRow(Row{"atomic_number": 2, "energy": 24.5874, "symbol": "He"})
	right.AppendRow(Row{"atomic_number": 2, "energy": 54.4178, "symbol": "He"})

	joined, err := left.LeftJoin(right, "atomic_number", "atomic_number", "_ie")
	if err != nil {
		t.Fatalf("join: %v", err)
	}
	// He matches twice, H once, Li zero (kept with nils): 4 rows
	if len(joined.Rows) != 4 {
		t.Fatalf("joined rows: %d", len(joined.Rows))
	}
	names := make([]string, len(joined.Columns))
	for i, c := range joined.Columns {
		names[i] = c.Name
	}
	want := []string{"atomic_number", "symbol", "covalent_radius", "energy", "symbol_ie"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Fatalf("joined columns: %v", names)
	}

	var li Row
	for _, row := range joined.Rows {
		if row["symbol"] == "Li" {
			li = row
		}
	}
	if li == nil || li["energy"] != nil || li["symbol_ie"] != nil {
		t.Fatalf("unmatched row: %v", li)
	}

	if _, err := left.LeftJoin(right, "nope", "atomic_number", ""); err == nil {
		t.Fatal("unknown left key should fail")
	}
}

func TestLeftJoinNumericKeyNormalization(t *testing.T) {
	left := New("l", Column{Name: "z"})
	left.AppendRow(Row{"z": 26})
	right := New("r", Column{Name: "z"}, Column{Name: "v"})
	right.AppendRow(Row{"z": 26.0, "v": "hit"})

	joined, err := left.LeftJoin(right, "z", "z", "_r")
	if err != nil {
		t.Fatalf("join: %v", err)
	}
	if joined.Rows[0]["v"] != "hit" {
		t.Fatalf("int/float keys should match: %v", joined.Rows[0])
	}
}

func TestPivotMean(t *testing.T) {
	f := New("radii",
		Column{Name: "atomic_number", Type: "int"},
		Column{Name: "charge", Type: "int"},
		Column{Name: "coordination", Type: "string"},
		Column{Name: "ionic_radius", Type: "float"},
	)
	// two spin variants for (26, 2, VI) average to 69.5
	f.AppendRow(Row{"atomic_number": 26, "charge": 2, "coordination": "VI", "ionic_radius": 78.0})
	f.AppendRow(Row{"atomic_number": 26, "charge": 2, "coordination": "VI", "ionic_radius": 61.0})
	f.AppendRow(Row{"atomic_number": 26, "charge": 3, "coordination": "IV", "ionic_radius": 49.0})
	f.AppendRow(Row{"atomic_number": 12, "charge": 2, "coordination": "VI", "ionic_radius": 72.0})

	pivot, err := f.PivotMean([]string{"atomic_number", "charge"}, "coordination", "ionic_radius")
	if err != nil {
		t.Fatalf("pivot: %v", err)
	}
	names := make([]string, len(pivot.Columns))
	for i, c := range pivot.Columns {
		names[i] = c.Name
	}
	if strings.Join(names, ",") != "atomic_number,charge,IV,VI" {
		t.Fatalf("pivot columns: %v", names)
	}
	if len(pivot.Rows) != 3 {
		t.Fatalf("pivot rows: %d", len(pivot.Rows))
	}
	// ordered by index tuple: Mg before Fe
	if pivot.Rows[0]["atomic_number"] != 12 {
		t.Fatalf("row order: %v", pivot.Rows[0])
	}
	var fe2 Row
	for _, row := range pivot.Rows {
		if row["atomic_number"] == 26 && row["charge"] == 2 {
			fe2 = row
		}
	}
	if fe2["VI"] != 69.5 {
		t.Fatalf("mean aggregation: %v", fe2["VI"])
	}
	if fe2["IV"] != nil {
		t.Fatalf("missing combination should be nil: %v", fe2["IV"])
	}

	if _, err := f.PivotMean([]string{"atomic_number"}, "coordination", "nope"); err == nil {
		t.Fatal("unknown values column should fail")
	}
}

func TestWriteCSV(t *testing.T) {
	f := elementsFixture()
	if err := f.SortBy("atomic_number"); err != nil {
		t.Fatalf("sort: %v", err)
	}
	var buf bytes.Buffer
	if err := f.WriteCSV(&buf); err != nil {
		t.Fatalf("csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("csv lines: %v", lines)
	}
	if lines[0] != "atomic_number,symbol,covalent_radius" {
		t.Fatalf("header: %q", lines[0])
	}
	if lines[3] != "3,Li," {
		t.Fatalf("nil cell rendering: %q", lines[3])
	}
}

func TestMarshalJSON(t *testing.T) {
	f := New("t", Column{Name: "a", Type: "int"})
	f.AppendRow(Row{"a": 1})
	raw, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded struct {
		Name    string   `json:"name"`
		Columns []Column `json:"columns"`
		Rows    []Row    `json:"rows"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Name != "t" || len(decoded.Columns) != 1 || len(decoded.Rows) != 1 {
		t.Fatalf("decoded: %+v", decoded)
	}
}
