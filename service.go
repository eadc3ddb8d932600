// Package periodica exposes the periodic-table reference corpus and its
// derivation engine behind a read-only service facade. The facade validates
// input, fetches fully populated elements from the configured store, runs the
// pure derivations, and assembles bulk results into tabular frames.
package periodica

import (
	"context"
	"time"

	"periodica/internal/export"
	"periodica/pkg/chem"
	"periodica/pkg/frame"
)

// Option customizes a Service.
type Option func(*Service)

// WithLogger installs a structured logger. Nil restores the noop default.
func WithLogger(logger Logger) Option {
	return func(s *Service) {
		if logger == nil {
			logger = noopLogger{}
		}
		s.logger = logger
	}
}

// WithMetricsRecorder installs a metrics recorder. Nil restores the noop
// default.
func WithMetricsRecorder(recorder MetricsRecorder) Option {
	return func(s *Service) {
		if recorder == nil {
			recorder = noopMetrics{}
		}
		s.metrics = recorder
	}
}

// WithTracer installs a tracer. Nil restores the noop default.
func WithTracer(tracer Tracer) Option {
	return func(s *Service) {
		if tracer == nil {
			tracer = noopTracer{}
		}
		s.tracer = tracer
	}
}

// WithClock overrides the time source used for instrumentation.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now == nil {
			now = time.Now
		}
		s.clock = now
	}
}

// WithExporter installs the artifact exporter behind ExportTable.
func WithExporter(exporter *export.Exporter) Option {
	return func(s *Service) {
		s.exporter = exporter
	}
}

// Service is the public API surface: stateless, safe for concurrent use, and
// strictly read-only over the store.
type Service struct {
	store    chem.Store
	logger   Logger
	metrics  MetricsRecorder
	tracer   Tracer
	clock    func() time.Time
	exporter *export.Exporter
}

// New constructs a service over the given store.
func New(store chem.Store, opts ...Option) *Service {
	s := &Service{
		store:   store,
		logger:  noopLogger{},
		metrics: noopMetrics{},
		tracer:  noopTracer{},
		clock:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Store returns the underlying store.
func (s *Service) Store() chem.Store { return s.store }

// instrument opens a span and returns the completion callback every public
// operation defers.
func (s *Service) instrument(ctx context.Context, op string) (context.Context, func(error)) {
	started := s.clock()
	ctx, span := s.tracer.Start(ctx, op)
	return ctx, func(err error) {
		s.metrics.Observe(ctx, op, err == nil, s.clock().Sub(started))
		span.End(err)
		if err != nil {
			s.logger.Debug("operation failed", "operation", op, "error", err)
		}
	}
}

// Element returns the element with the given atomic number.
func (s *Service) Element(ctx context.Context, atomicNumber int) (elem *chem.Element, err error) {
	ctx, done := s.instrument(ctx, "element")
	defer func() { done(err) }()
	return s.store.Element(ctx, atomicNumber)
}

// ElementBySymbol returns the element with the given symbol.
func (s *Service) ElementBySymbol(ctx context.Context, symbol string) (elem *chem.Element, err error) {
	ctx, done := s.instrument(ctx, "element_by_symbol")
	defer func() { done(err) }()
	return s.store.ElementBySymbol(ctx, symbol)
}

// Elements returns every element, ascending by atomic number.
func (s *Service) Elements(ctx context.Context) (elems []*chem.Element, err error) {
	ctx, done := s.instrument(ctx, "elements")
	defer func() { done(err) }()
	return s.store.Elements(ctx)
}

// Electronegativity computes one scale for one element. The sanderson
// reference curve is built from the group-18 covalent radii when the caller
// does not supply one.
func (s *Service) Electronegativity(ctx context.Context, atomicNumber int, scale chem.Scale, opts chem.ENOptions) (res chem.ENResult, err error) {
	ctx, done := s.instrument(ctx, "electronegativity")
	defer func() { done(err) }()

	elem, err := s.store.Element(ctx, atomicNumber)
	if err != nil {
		return chem.ENResult{}, err
	}
	if scale == chem.ScaleSanderson && len(opts.NobleGasCurve) == 0 {
		opts.NobleGasCurve, err = s.nobleGasCurve(ctx, opts.Radius)
		if err != nil {
			return chem.ENResult{}, err
		}
	}
	return elem.Electronegativity(scale, opts)
}

// MeltingPoint reconciles the element's melting point across its stored
// phase transitions, logging any allotrope disagreement.
func (s *Service) MeltingPoint(ctx context.Context, atomicNumber int) (v *float64, err error) {
	ctx, done := s.instrument(ctx, "melting_point")
	defer func() { done(err) }()

	elem, err := s.store.Element(ctx, atomicNumber)
	if err != nil {
		return nil, err
	}
	v, warning := elem.MeltingPoint()
	s.logWarning(elem, warning)
	return v, nil
}

// BoilingPoint reconciles the element's boiling point across its stored
// phase transitions, logging any allotrope disagreement.
func (s *Service) BoilingPoint(ctx context.Context, atomicNumber int) (v *float64, err error) {
	ctx, done := s.instrument(ctx, "boiling_point")
	defer func() { done(err) }()

	elem, err := s.store.Element(ctx, atomicNumber)
	if err != nil {
		return nil, err
	}
	v, warning := elem.BoilingPoint()
	s.logWarning(elem, warning)
	return v, nil
}

func (s *Service) logWarning(elem *chem.Element, warning *chem.Warning) {
	if warning == nil {
		return
	}
	s.logger.Warn(warning.Message,
		"code", warning.Code,
		"atomic_number", elem.AtomicNumber,
		"symbol", elem.Symbol)
}

// Artifact aliases the exporter's artifact descriptor.
type Artifact = export.Artifact

// ExportTable renders one reference table in the requested formats and
// persists the artifacts through the configured exporter.
func (s *Service) ExportTable(ctx context.Context, table chem.Table, formats ...export.Format) (arts []Artifact, err error) {
	ctx, done := s.instrument(ctx, "export_table")
	defer func() { done(err) }()

	if s.exporter == nil {
		return nil, chem.InvalidArgumentError{Param: "exporter", Reason: "no exporter configured"}
	}
	f, err := s.tableFrame(ctx, table)
	if err != nil {
		return nil, err
	}
	arts, err = s.exporter.Export(ctx, f, formats...)
	if err != nil {
		return nil, err
	}
	s.logger.Info("table exported", "table", string(table), "artifacts", len(arts))
	return arts, nil
}

// nobleGasCurve samples the group-18 radius against atomic number, the
// reference curve of the sanderson scale.
func (s *Service) nobleGasCurve(ctx context.Context, radius string) (chem.RefCurve, error) {
	if radius == "" {
		radius = chem.DefaultRadiusColumn
	}
	nobles, err := s.store.ElementsByGroup(ctx, 18)
	if err != nil {
		return nil, err
	}
	curve := make(chem.RefCurve, 0, len(nobles))
	for _, elem := range nobles {
		r, err := elem.FloatAttr(radius)
		if err != nil {
			return nil, err
		}
		if r == nil {
			continue
		}
		curve = append(curve, chem.CurvePoint{X: float64(elem.AtomicNumber), Y: *r})
	}
	return curve, nil
}

// tableFrame materializes one whitelisted reference table as a frame.
func (s *Service) tableFrame(ctx context.Context, table chem.Table) (*frame.Frame, error) {
	schema, err := chem.TableSchema(table)
	if err != nil {
		return nil, err
	}
	cols := make([]frame.Column, len(schema))
	for i, col := range schema {
		cols[i] = frame.Column{Name: col.Name, Type: col.Kind.TypeName()}
	}
	rows, err := s.store.TableRows(ctx, table)
	if err != nil {
		return nil, err
	}
	f := frame.New(string(table), cols...)
	for _, row := range rows {
		f.AppendRow(row)
	}
	return f, nil
}
