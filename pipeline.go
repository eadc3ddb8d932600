package periodica

import (
	"context"
	"fmt"

	"periodica/pkg/chem"
	"periodica/pkg/frame"
)

// engineScales are the five scales recomputed per element during a bulk
// electronegativity fetch; the remaining registry scales appear as stored or
// radius-derived columns unconditionally.
var engineScales = []chem.Scale{
	chem.ScaleLiXue,
	chem.ScaleMartynovBatsanov,
	chem.ScaleMulliken,
	chem.ScaleNagle,
	chem.ScaleSanderson,
}

// storedScales are the passthrough measurement columns of the bulk fetch.
var storedScales = []chem.Scale{
	chem.ScaleAllen,
	chem.ScaleGhosh,
	chem.ScaleGunnarssonLundqvist,
	chem.ScaleMiedema,
	chem.ScaleMullay,
	chem.ScalePauling,
	chem.ScaleRoblesBartolotti,
}

// radiusScales are recomputed from Zeff and the covalent radius.
var radiusScales = []chem.Scale{
	chem.ScaleAllredRochow,
	chem.ScaleCottrellSutton,
	chem.ScaleGordy,
}

// Table returns one whitelisted reference table as a frame, indexed by
// atomic_number where the schema carries one.
func (s *Service) Table(ctx context.Context, table chem.Table) (f *frame.Frame, err error) {
	ctx, done := s.instrument(ctx, "table")
	defer func() { done(err) }()

	f, err = s.tableFrame(ctx, table)
	if err != nil {
		return nil, err
	}
	for _, col := range f.Columns {
		if col.Name == "atomic_number" {
			if err := f.SetIndex("atomic_number"); err != nil {
				return nil, err
			}
			break
		}
	}
	return f, nil
}

// Electronegativities returns one row per element with every stored scale,
// the default effective nuclear charge, the radius-derived scales, and the
// recomputed engine scales. The scales argument filters the engine subset;
// it defaults to all five. A scale that cannot be computed for some element
// leaves that cell nil; no row is ever dropped.
func (s *Service) Electronegativities(ctx context.Context, scales ...chem.Scale) (f *frame.Frame, err error) {
	ctx, done := s.instrument(ctx, "electronegativities")
	defer func() { done(err) }()
	return s.electronegativitiesFrame(ctx, scales)
}

func (s *Service) electronegativitiesFrame(ctx context.Context, scales []chem.Scale) (*frame.Frame, error) {
	selected, err := selectEngineScales(scales)
	if err != nil {
		return nil, err
	}
	elems, err := s.store.Elements(ctx)
	if err != nil {
		return nil, err
	}
	curve, err := s.nobleGasCurve(ctx, "")
	if err != nil {
		return nil, err
	}

	cols := []frame.Column{
		{Name: "atomic_number", Type: "integer"},
		{Name: "symbol", Type: "string"},
		{Name: "radius", Type: "number"},
	}
	for _, scale := range storedScales {
		cols = append(cols, frame.Column{Name: chem.ScaleLabel(scale), Type: "number"})
	}
	cols = append(cols, frame.Column{Name: "zeff", Type: "number"})
	for _, scale := range radiusScales {
		cols = append(cols, frame.Column{Name: chem.ScaleLabel(scale), Type: "number"})
	}
	for _, scale := range selected {
		kind := "number"
		if scale == chem.ScaleLiXue {
			kind = "object"
		}
		cols = append(cols, frame.Column{Name: chem.ScaleLabel(scale), Type: kind})
	}

	f := frame.New("electronegativities", cols...)
	for _, elem := range elems {
		row := frame.Row{
			"atomic_number": elem.AtomicNumber,
			"symbol":        elem.Symbol,
			"radius":        fval(elem.CovalentRadiusPyykko),
		}
		zeff, err := elem.Zeff(chem.ZeffOptions{})
		if err != nil {
			return nil, fmt.Errorf("zeff for %s: %w", elem.Symbol, err)
		}
		row["zeff"] = fval(zeff)
		for _, group := range [][]chem.Scale{storedScales, radiusScales, selected} {
			for _, scale := range group {
				opts := chem.ENOptions{NobleGasCurve: curve}
				if scale == chem.ScaleLiXue {
					opts.Charge = 1
				}
				res, err := elem.Electronegativity(scale, opts)
				if err != nil {
					return nil, fmt.Errorf("%s for %s: %w", scale, elem.Symbol, err)
				}
				if scale == chem.ScaleLiXue {
					// An ion with no stored radii yields a nil cell, not an
					// empty map.
					if len(res.PerIon) == 0 {
						row[chem.ScaleLabel(scale)] = nil
					} else {
						row[chem.ScaleLabel(scale)] = res.PerIon
					}
				} else {
					row[chem.ScaleLabel(scale)] = fval(res.Value)
				}
			}
		}
		f.AppendRow(row)
	}
	if err := f.SetIndex("atomic_number"); err != nil {
		return nil, err
	}
	return f, nil
}

// selectEngineScales validates the filter against the scale registry and
// resolves the engine-scale subset it selects.
func selectEngineScales(scales []chem.Scale) ([]chem.Scale, error) {
	if len(scales) == 0 {
		return engineScales, nil
	}
	registry := make(map[chem.Scale]bool, len(chem.Scales()))
	for _, s := range chem.Scales() {
		registry[s] = true
	}
	wanted := make(map[chem.Scale]bool, len(scales))
	for _, s := range scales {
		if !registry[s] {
			return nil, chem.UnknownScaleError{Scale: s}
		}
		wanted[s] = true
	}
	selected := make([]chem.Scale, 0, len(engineScales))
	for _, s := range engineScales {
		if wanted[s] {
			selected = append(selected, s)
		}
	}
	return selected, nil
}

// IonizationEnergies returns the full atomic-number spine with one IE{d}
// column per requested degree, left-merged so elements lacking a degree keep
// their row with a nil cell. Degrees default to [1].
func (s *Service) IonizationEnergies(ctx context.Context, degrees ...int) (f *frame.Frame, err error) {
	ctx, done := s.instrument(ctx, "ionization_energies")
	defer func() { done(err) }()
	return s.ionizationEnergiesFrame(ctx, degrees)
}

func (s *Service) ionizationEnergiesFrame(ctx context.Context, degrees []int) (*frame.Frame, error) {
	if len(degrees) == 0 {
		degrees = []int{1}
	}
	for _, d := range degrees {
		if d < 1 {
			return nil, chem.InvalidArgumentError{
				Param:  "degree",
				Reason: fmt.Sprintf("should be a positive integer, got: %d", d),
			}
		}
	}
	elems, err := s.store.Elements(ctx)
	if err != nil {
		return nil, err
	}

	f := frame.New("ionizationenergies",
		frame.Column{Name: "atomic_number", Type: "integer"},
		frame.Column{Name: "symbol", Type: "string"},
	)
	for _, elem := range elems {
		f.AppendRow(frame.Row{"atomic_number": elem.AtomicNumber, "symbol": elem.Symbol})
	}

	for _, d := range degrees {
		name := fmt.Sprintf("IE%d", d)
		right := frame.New(name,
			frame.Column{Name: "atomic_number", Type: "integer"},
			frame.Column{Name: name, Type: "number"},
		)
		for _, elem := range elems {
			if v, ok := elem.IonEnergies()[d]; ok {
				right.AppendRow(frame.Row{"atomic_number": elem.AtomicNumber, name: v})
			}
		}
		f, err = f.LeftJoin(right, "atomic_number", "atomic_number", "")
		if err != nil {
			return nil, err
		}
	}
	if err := f.SetIndex("atomic_number"); err != nil {
		return nil, err
	}
	return f, nil
}

// NeutralData assembles the wide neutral-state table: the elements table
// joined with its series and group lookups, per-row derived columns, the
// electronegativity block, and the first ionization energy. Every join stage
// is one-to-at-most-one, so no row is duplicated or lost.
func (s *Service) NeutralData(ctx context.Context) (f *frame.Frame, err error) {
	ctx, done := s.instrument(ctx, "neutral_data")
	defer func() { done(err) }()

	f, err = s.tableFrame(ctx, chem.TableElements)
	if err != nil {
		return nil, err
	}
	series, err := s.tableFrame(ctx, chem.TableSeries)
	if err != nil {
		return nil, err
	}
	f, err = f.LeftJoin(series, "series_id", "id", "_series")
	if err != nil {
		return nil, err
	}
	groups, err := s.tableFrame(ctx, chem.TableGroups)
	if err != nil {
		return nil, err
	}
	f, err = f.LeftJoin(groups, "group_id", "group_id", "_group")
	if err != nil {
		return nil, err
	}
	f.Rename(map[string]string{"color": "series_colors"})

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	elems, err := s.store.Elements(ctx)
	if err != nil {
		return nil, err
	}
	byNumber := make(map[int]*chem.Element, len(elems))
	for _, elem := range elems {
		byNumber[elem.AtomicNumber] = elem
	}
	lookup := func(row frame.Row) *chem.Element {
		z, _ := row["atomic_number"].(int)
		return byNumber[z]
	}
	f.AddColumn("hardness", func(row frame.Row) any {
		elem := lookup(row)
		if elem == nil {
			return nil
		}
		v, _ := elem.Hardness(0)
		return fval(v)
	})
	f.AddColumn("softness", func(row frame.Row) any {
		elem := lookup(row)
		if elem == nil {
			return nil
		}
		v, _ := elem.Softness(0)
		return fval(v)
	})
	f.AddColumn("mass", func(row frame.Row) any {
		elem := lookup(row)
		if elem == nil {
			return nil
		}
		return elem.MassStr()
	})
	f.AddColumn("zeff_slater", func(row frame.Row) any {
		elem := lookup(row)
		if elem == nil {
			return nil
		}
		v, _ := elem.Zeff(chem.ZeffOptions{Method: chem.ZeffSlater})
		return fval(v)
	})
	f.AddColumn("zeff_clementi", func(row frame.Row) any {
		elem := lookup(row)
		if elem == nil {
			return nil
		}
		v, _ := elem.Zeff(chem.ZeffOptions{Method: chem.ZeffClementi})
		return fval(v)
	})

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	en, err := s.electronegativitiesFrame(ctx, nil)
	if err != nil {
		return nil, err
	}
	f, err = f.LeftJoin(en, "atomic_number", "atomic_number", "_en")
	if err != nil {
		return nil, err
	}
	ie, err := s.ionizationEnergiesFrame(ctx, []int{1})
	if err != nil {
		return nil, err
	}
	f, err = f.LeftJoin(ie, "atomic_number", "atomic_number", "_ie")
	if err != nil {
		return nil, err
	}
	f.Name = "neutral"
	if err := f.SetIndex("atomic_number"); err != nil {
		return nil, err
	}
	return f, nil
}

// IonicRadii pivots the ionic-radii table: one row per (atomic_number,
// charge) ion, one column per coordination, cells holding the mean of the
// selected radius kind over spin variants, nil where no measurement exists.
func (s *Service) IonicRadii(ctx context.Context, radiusKind string) (f *frame.Frame, err error) {
	ctx, done := s.instrument(ctx, "ionic_radii")
	defer func() { done(err) }()

	if radiusKind != "ionic_radius" && radiusKind != "crystal_radius" {
		return nil, chem.InvalidArgumentError{
			Param:  "radius",
			Reason: fmt.Sprintf("%q not found, available values are: %q, %q", radiusKind, "ionic_radius", "crystal_radius"),
		}
	}
	raw, err := s.tableFrame(ctx, chem.TableIonicRadii)
	if err != nil {
		return nil, err
	}
	f, err = raw.PivotMean([]string{"atomic_number", "charge"}, "coordination", radiusKind)
	if err != nil {
		return nil, err
	}
	if err := f.SetIndex("atomic_number", "charge"); err != nil {
		return nil, err
	}
	return f, nil
}

// ByGroup projects the requested element columns for one periodic-table
// group, one row per member ascending by atomic number. atomic_number always
// leads the projection whether or not requested.
func (s *Service) ByGroup(ctx context.Context, group int, properties ...string) (f *frame.Frame, err error) {
	ctx, done := s.instrument(ctx, "by_group")
	defer func() { done(err) }()

	cols := []frame.Column{{Name: "atomic_number", Type: "integer"}}
	for _, name := range properties {
		if name == "atomic_number" {
			continue
		}
		col, ok := chem.ElementColumnByName(name)
		if !ok {
			return nil, chem.InvalidArgumentError{
				Param:  "property",
				Reason: fmt.Sprintf("%q is not an element column", name),
			}
		}
		cols = append(cols, frame.Column{Name: col.Name, Type: col.Kind.TypeName()})
	}
	elems, err := s.store.ElementsByGroup(ctx, group)
	if err != nil {
		return nil, err
	}
	f = frame.New(fmt.Sprintf("group_%d", group), cols...)
	for _, elem := range elems {
		f.AppendRow(elem.ElementRow())
	}
	if err := f.SetIndex("atomic_number"); err != nil {
		return nil, err
	}
	return f, nil
}

// fval dereferences an optional float cell, keeping nil for missing data.
func fval(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}
