package periodica

import (
	"bytes"
	"context"
	"errors"
	"math"
	"strings"
	"sync"
	"testing"

	"periodica/internal/blob"
	"periodica/internal/export"
	"periodica/pkg/chem"
)

// recordingLogger captures Warn calls for assertions.
type recordingLogger struct {
	noopLogger
	mu    sync.Mutex
	warns []string
}

func (l *recordingLogger) Warn(msg string, _ ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, msg)
}

func (l *recordingLogger) Warnings() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.warns...)
}

// allotropeStore serves a single crafted element so reconciliation outcomes
// can be forced.
type allotropeStore struct {
	elem *chem.Element
}

func (s *allotropeStore) Element(context.Context, int) (*chem.Element, error) { return s.elem, nil }
func (s *allotropeStore) ElementBySymbol(context.Context, string) (*chem.Element, error) {
	return s.elem, nil
}
func (s *allotropeStore) Elements(context.Context) ([]*chem.Element, error) {
	return []*chem.Element{s.elem}, nil
}
func (s *allotropeStore) ElementsByGroup(context.Context, int) ([]*chem.Element, error) {
	return []*chem.Element{s.elem}, nil
}
func (s *allotropeStore) TableRows(context.Context, chem.Table) ([]map[string]any, error) {
	return nil, nil
}

func TestElementLookups(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	iron, err := svc.Element(ctx, 26)
	if err != nil || iron.Symbol != "Fe" {
		t.Fatalf("element: %v, %v", iron, err)
	}
	xenon, err := svc.ElementBySymbol(ctx, "Xe")
	if err != nil || xenon.AtomicNumber != 54 {
		t.Fatalf("by symbol: %v, %v", xenon, err)
	}
	elems, err := svc.Elements(ctx)
	if err != nil || len(elems) != 11 {
		t.Fatalf("elements: %d, %v", len(elems), err)
	}

	var notFound chem.NotFoundError
	if _, err := svc.Element(ctx, 99); !errors.As(err, &notFound) {
		t.Fatalf("missing element: %v", err)
	}
}

func TestElectronegativityBuildsSandersonCurve(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	res, err := svc.Electronegativity(ctx, 26, chem.ScaleSanderson, chem.ENOptions{})
	if err != nil {
		t.Fatalf("sanderson: %v", err)
	}
	if res.Value == nil || math.Abs(*res.Value-0.748727) > 1e-4 {
		t.Fatalf("sanderson value: %v", res.Value)
	}

	var unknown chem.UnknownScaleError
	if _, err := svc.Electronegativity(ctx, 26, chem.Scale("bohr"), chem.ENOptions{}); !errors.As(err, &unknown) {
		t.Fatalf("unknown scale: %v", err)
	}
	if !strings.Contains(unknown.Error(), "allen") || !strings.Contains(unknown.Error(), "sanderson") {
		t.Fatalf("message should enumerate scales: %s", unknown.Error())
	}
}

func TestPhasePoints(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// Tin's two allotropes agree, so the first record wins without warning.
	mp, err := svc.MeltingPoint(ctx, 50)
	if err != nil || mp == nil || *mp != 505.08 {
		t.Fatalf("tin melting point: %v, %v", mp, err)
	}
	// Helium stores no melting point at all.
	mp, err = svc.MeltingPoint(ctx, 2)
	if err != nil || mp != nil {
		t.Fatalf("helium melting point: %v, %v", mp, err)
	}
	bp, err := svc.BoilingPoint(ctx, 2)
	if err != nil || bp == nil || *bp != 4.222 {
		t.Fatalf("helium boiling point: %v, %v", bp, err)
	}
}

func TestAllotropeMismatchLogged(t *testing.T) {
	white, gray := 505.0, 600.0
	elem := &chem.Element{
		AtomicNumber: 50,
		Symbol:       "Sn",
		PhaseTransitions: []chem.PhaseTransition{
			{AtomicNumber: 50, MeltingPoint: &white},
			{AtomicNumber: 50, MeltingPoint: &gray},
		},
	}
	logger := &recordingLogger{}
	svc := New(&allotropeStore{elem: elem}, WithLogger(logger))

	mp, err := svc.MeltingPoint(context.Background(), 50)
	if err != nil {
		t.Fatalf("melting point: %v", err)
	}
	if mp != nil {
		t.Fatalf("disagreeing allotropes should yield nil: %v", *mp)
	}
	warns := logger.Warnings()
	if len(warns) != 1 || !strings.Contains(warns[0], "allotropes") {
		t.Fatalf("warnings: %v", warns)
	}
}

func TestExportTable(t *testing.T) {
	audit := &export.MemoryAudit{}
	exporter := export.NewExporter(blob.NewMemory(), audit)
	svc := newTestService(t, WithExporter(exporter))

	arts, err := svc.ExportTable(context.Background(), chem.TableIsotopes, export.FormatCSV, export.FormatJSON)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if len(arts) != 2 || arts[0].Rows != 23 {
		t.Fatalf("artifacts: %+v", arts)
	}
	if !strings.HasPrefix(arts[0].Key, "exports/isotopes/") {
		t.Fatalf("key: %s", arts[0].Key)
	}
	if len(audit.Entries()) != 2 {
		t.Fatalf("audit: %d", len(audit.Entries()))
	}
}

func TestExportTableWithoutExporter(t *testing.T) {
	svc := newTestService(t)
	var invalid chem.InvalidArgumentError
	if _, err := svc.ExportTable(context.Background(), chem.TableElements); !errors.As(err, &invalid) {
		t.Fatalf("missing exporter: %v", err)
	}
}

func TestInstrumentation(t *testing.T) {
	metrics := NewExpvarMetricsRecorder("")
	var traceBuf bytes.Buffer
	tracer := NewJSONTracer(&traceBuf)
	svc := newTestService(t, WithMetricsRecorder(metrics), WithTracer(tracer))
	ctx := context.Background()

	if _, err := svc.Element(ctx, 1); err != nil {
		t.Fatalf("element: %v", err)
	}
	if _, err := svc.Element(ctx, 99); err == nil {
		t.Fatal("element 99 should fail")
	}

	snap := metrics.Snapshot()
	if snap.Results["element"]["success"] != 1 || snap.Results["element"]["error"] != 1 {
		t.Fatalf("metrics: %+v", snap.Results)
	}

	entries := tracer.Entries()
	if len(entries) != 2 {
		t.Fatalf("trace entries: %d", len(entries))
	}
	if entries[0].Operation != "element" || entries[0].Status != "success" {
		t.Fatalf("first span: %+v", entries[0])
	}
	if entries[1].Status != "error" || entries[1].Error == "" {
		t.Fatalf("second span: %+v", entries[1])
	}
	if !strings.Contains(traceBuf.String(), `"operation":"element"`) {
		t.Fatalf("trace stream: %s", traceBuf.String())
	}
}

func TestOpenFromEnvironment(t *testing.T) {
	t.Setenv("PERIODICA_STORE_DRIVER", "memory")
	t.Setenv("PERIODICA_BLOB_DRIVER", "memory")

	svc, err := Open(context.Background())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	elems, err := svc.Elements(context.Background())
	if err != nil || len(elems) != 11 {
		t.Fatalf("elements: %d, %v", len(elems), err)
	}
	if _, err := svc.ExportTable(context.Background(), chem.TableSeries, export.FormatJSON); err != nil {
		t.Fatalf("export through wired blob store: %v", err)
	}
}

func TestOpenStoreUnknownDriver(t *testing.T) {
	t.Setenv("PERIODICA_STORE_DRIVER", "etcd")
	if _, err := OpenStore(context.Background()); err == nil {
		t.Fatal("unknown driver should fail")
	}
}
