package periodica

import (
	"context"
	"errors"
	"math"
	"testing"

	"periodica/internal/infra/persistence/memory"
	"periodica/pkg/chem"
	"periodica/pkg/frame"
)

func newTestService(t *testing.T, opts ...Option) *Service {
	t.Helper()
	store, err := memory.Open()
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return New(store, opts...)
}

func columnNames(f *frame.Frame) []string {
	names := make([]string, len(f.Columns))
	for i, col := range f.Columns {
		names[i] = col.Name
	}
	return names
}

func rowByNumber(t *testing.T, f *frame.Frame, atomicNumber int) frame.Row {
	t.Helper()
	for _, row := range f.Rows {
		if row["atomic_number"] == atomicNumber {
			return row
		}
	}
	t.Fatalf("no row with atomic_number %d", atomicNumber)
	return nil
}

func approx(t *testing.T, got any, want, tol float64) {
	t.Helper()
	v, ok := got.(float64)
	if !ok {
		t.Fatalf("not a float cell: %T %v", got, got)
	}
	if math.Abs(v-want) > tol {
		t.Fatalf("got %v, want %v +- %v", v, want, tol)
	}
}

func TestTable(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	f, err := svc.Table(ctx, chem.TableElements)
	if err != nil {
		t.Fatalf("table: %v", err)
	}
	if len(f.Rows) != 11 {
		t.Fatalf("rows: %d", len(f.Rows))
	}
	if f.Columns[0].Name != "atomic_number" || len(f.Index) != 1 {
		t.Fatalf("layout: %v index %v", f.Columns[0], f.Index)
	}

	var unknown chem.UnknownTableError
	if _, err := svc.Table(ctx, chem.Table("molecules")); !errors.As(err, &unknown) {
		t.Fatalf("unknown table: %v", err)
	}
}

func TestElectronegativities(t *testing.T) {
	svc := newTestService(t)
	f, err := svc.Electronegativities(context.Background())
	if err != nil {
		t.Fatalf("electronegativities: %v", err)
	}
	if len(f.Rows) != 11 {
		t.Fatalf("rows: %d", len(f.Rows))
	}
	want := []string{
		"atomic_number", "symbol", "radius",
		"Allen", "Ghosh", "Gunnarsson-Lundqvist", "Miedema", "Mullay", "Pauling", "Robles-Bartolotti",
		"zeff",
		"Allred-Rochow", "Cottrell-Sutton", "Gordy",
		"Li-Xue", "Martynov-Batsanov", "Mulliken", "Nagle", "Sanderson",
	}
	got := columnNames(f)
	if len(got) != len(want) {
		t.Fatalf("columns: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("column %d: got %s, want %s", i, got[i], want[i])
		}
	}

	hydrogen := rowByNumber(t, f, 1)
	approx(t, hydrogen["radius"], 32, 1e-9)
	approx(t, hydrogen["Pauling"], 2.2, 1e-9)
	approx(t, hydrogen["Mulliken"], (13.598434599702+0.754)/2, 1e-9)

	helium := rowByNumber(t, f, 2)
	if helium["Mulliken"] != nil {
		t.Fatalf("helium has no electron affinity, mulliken should be nil: %v", helium["Mulliken"])
	}
	if helium["Pauling"] != nil {
		t.Fatalf("helium pauling should be nil: %v", helium["Pauling"])
	}

	// Group-18 radius curve interpolated at Z=26 between Ar and Kr.
	iron := rowByNumber(t, f, 26)
	approx(t, iron["Sanderson"], 0.748727, 1e-4)

	// Iron stores no charge-1 radii, so its li-xue cell stays nil.
	if iron["Li-Xue"] != nil {
		t.Fatalf("iron li-xue: %v", iron["Li-Xue"])
	}

	sodium := rowByNumber(t, f, 11)
	perIon, ok := sodium["Li-Xue"].(map[chem.RadiusKey]*float64)
	if !ok {
		t.Fatalf("li-xue cell: %T", sodium["Li-Xue"])
	}
	v := perIon[chem.RadiusKey{Coordination: "VI"}]
	if v == nil || math.Abs(*v-1.5312) > 0.01 {
		t.Fatalf("sodium li-xue: %v", v)
	}
}

func TestElectronegativitiesScaleFilter(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	f, err := svc.Electronegativities(ctx, chem.ScaleMulliken, chem.ScaleNagle)
	if err != nil {
		t.Fatalf("filtered: %v", err)
	}
	names := columnNames(f)
	last := names[len(names)-2:]
	if last[0] != "Mulliken" || last[1] != "Nagle" {
		t.Fatalf("engine columns: %v", names)
	}
	for _, name := range names {
		if name == "Sanderson" || name == "Li-Xue" {
			t.Fatalf("filtered-out scale present: %v", names)
		}
	}

	var unknown chem.UnknownScaleError
	if _, err := svc.Electronegativities(ctx, chem.Scale("gillespie")); !errors.As(err, &unknown) {
		t.Fatalf("unknown scale: %v", err)
	}
}

func TestIonizationEnergies(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	f, err := svc.IonizationEnergies(ctx)
	if err != nil {
		t.Fatalf("default degrees: %v", err)
	}
	if len(f.Rows) != 11 {
		t.Fatalf("rows: %d", len(f.Rows))
	}
	if got := columnNames(f); got[len(got)-1] != "IE1" {
		t.Fatalf("columns: %v", got)
	}
	approx(t, rowByNumber(t, f, 1)["IE1"], 13.598434599702, 1e-9)

	f, err = svc.IonizationEnergies(ctx, 1, 2)
	if err != nil {
		t.Fatalf("degrees 1,2: %v", err)
	}
	if len(f.Rows) != 11 {
		t.Fatalf("left merge dropped rows: %d", len(f.Rows))
	}
	neon := rowByNumber(t, f, 10)
	if neon["IE1"] == nil || neon["IE2"] != nil {
		t.Fatalf("neon: IE1=%v IE2=%v", neon["IE1"], neon["IE2"])
	}
	approx(t, rowByNumber(t, f, 26)["IE2"], 16.19921, 1e-9)

	var invalid chem.InvalidArgumentError
	if _, err := svc.IonizationEnergies(ctx, 0); !errors.As(err, &invalid) {
		t.Fatalf("degree 0: %v", err)
	}
	if invalid.Param != "degree" {
		t.Fatalf("param: %s", invalid.Param)
	}
}

func TestNeutralData(t *testing.T) {
	svc := newTestService(t)
	f, err := svc.NeutralData(context.Background())
	if err != nil {
		t.Fatalf("neutral data: %v", err)
	}
	if len(f.Rows) != 11 {
		t.Fatalf("join stages changed cardinality: %d rows", len(f.Rows))
	}

	names := columnNames(f)
	has := func(name string) bool {
		for _, n := range names {
			if n == name {
				return true
			}
		}
		return false
	}
	for _, name := range []string{
		"name_series", "series_colors", "symbol_group", "name_group",
		"hardness", "softness", "mass", "zeff_slater", "zeff_clementi",
		"symbol_en", "Mulliken", "IE1",
	} {
		if !has(name) {
			t.Fatalf("missing column %s in %v", name, names)
		}
	}
	if has("color") {
		t.Fatal("color should be renamed to series_colors")
	}

	hydrogen := rowByNumber(t, f, 1)
	if hydrogen["series_colors"] != "#a0ffa0" || hydrogen["name_series"] != "Nonmetals" {
		t.Fatalf("series join: %v %v", hydrogen["series_colors"], hydrogen["name_series"])
	}
	approx(t, hydrogen["hardness"], (13.598434599702-0.754)/2, 1e-9)
	if hydrogen["mass"] != "1.0080" {
		t.Fatalf("mass: %v", hydrogen["mass"])
	}

	iron := rowByNumber(t, f, 26)
	if iron["symbol_group"] != "VIIIB" || iron["name_series"] != "Transition metals" {
		t.Fatalf("iron lookups: %v %v", iron["symbol_group"], iron["name_series"])
	}
	approx(t, iron["IE1"], 7.9024681, 1e-9)
	// Default subshell for iron is (4, s); the stored screening is 20.57.
	approx(t, iron["zeff_clementi"], 26-20.57, 1e-9)
}

func TestIonicRadiiPivot(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	f, err := svc.IonicRadii(ctx, "crystal_radius")
	if err != nil {
		t.Fatalf("pivot: %v", err)
	}
	if len(f.Rows) != 4 {
		t.Fatalf("ion rows: %d", len(f.Rows))
	}
	want := []string{"atomic_number", "charge", "IV", "VI"}
	if got := columnNames(f); len(got) != 4 || got[2] != "IV" || got[3] != "VI" {
		t.Fatalf("columns: %v, want %v", got, want)
	}

	var fe2 frame.Row
	for _, row := range f.Rows {
		if row["atomic_number"] == 26 && row["charge"] == 2 {
			fe2 = row
		}
	}
	if fe2 == nil {
		t.Fatal("no Fe 2+ row")
	}
	approx(t, fe2["IV"], 77, 1e-9)
	// VI spin variants HS 92 and LS 75 average.
	approx(t, fe2["VI"], 83.5, 1e-9)

	sodium := rowByNumber(t, f, 11)
	if sodium["IV"] != nil {
		t.Fatalf("missing combination should stay nil: %v", sodium["IV"])
	}

	var invalid chem.InvalidArgumentError
	if _, err := svc.IonicRadii(ctx, "metallic_radius"); !errors.As(err, &invalid) {
		t.Fatalf("bad radius kind: %v", err)
	}
}

func TestByGroup(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	f, err := svc.ByGroup(ctx, 18, "symbol", "covalent_radius_pyykko")
	if err != nil {
		t.Fatalf("by group: %v", err)
	}
	if got := columnNames(f); got[0] != "atomic_number" || got[1] != "symbol" || got[2] != "covalent_radius_pyykko" {
		t.Fatalf("columns: %v", got)
	}
	wantZ := []int{2, 10, 18, 36, 54}
	if len(f.Rows) != len(wantZ) {
		t.Fatalf("rows: %d", len(f.Rows))
	}
	for i, row := range f.Rows {
		if row["atomic_number"] != wantZ[i] {
			t.Fatalf("row %d: %v", i, row["atomic_number"])
		}
	}

	// atomic_number leads even when requested explicitly.
	f, err = svc.ByGroup(ctx, 18, "atomic_number", "symbol")
	if err != nil {
		t.Fatalf("by group: %v", err)
	}
	if got := columnNames(f); len(got) != 2 || got[0] != "atomic_number" {
		t.Fatalf("columns: %v", got)
	}

	var invalid chem.InvalidArgumentError
	if _, err := svc.ByGroup(ctx, 18, "electron_count"); !errors.As(err, &invalid) {
		t.Fatalf("unknown property: %v", err)
	}
}
