package chem

import "fmt"

// Row rendering and hydration for the child-record tables. The elements
// table goes through the column descriptors instead; every other table maps
// its record struct to a flat cell map here, so the store drivers and the
// tabular pipeline share a single field inventory per table.

func cell[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

// rowReader pulls typed cells out of a row map, collecting the first
// mismatch instead of forcing a check at every field.
type rowReader struct {
	row map[string]any
	err error
}

func (r *rowReader) fail(name string, want string, got any) {
	if r.err == nil {
		r.err = fmt.Errorf("column %s: expected %s, got %T", name, want, got)
	}
}

func (r *rowReader) intv(name string) int {
	v, ok := r.row[name]
	if !ok || v == nil {
		return 0
	}
	i, ok := v.(int)
	if !ok {
		r.fail(name, "int", v)
		return 0
	}
	return i
}

func (r *rowReader) strv(name string) string {
	v, ok := r.row[name]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		r.fail(name, "string", v)
		return ""
	}
	return s
}

func (r *rowReader) floatv(name string) float64 {
	v, ok := r.row[name]
	if !ok || v == nil {
		return 0
	}
	f, ok := v.(float64)
	if !ok {
		r.fail(name, "float64", v)
		return 0
	}
	return f
}

func (r *rowReader) fptr(name string) *float64 {
	v, ok := r.row[name]
	if !ok || v == nil {
		return nil
	}
	f, ok := v.(float64)
	if !ok {
		r.fail(name, "float64", v)
		return nil
	}
	return &f
}

func (r *rowReader) iptr(name string) *int {
	v, ok := r.row[name]
	if !ok || v == nil {
		return nil
	}
	i, ok := v.(int)
	if !ok {
		r.fail(name, "int", v)
		return nil
	}
	return &i
}

func (r *rowReader) sptr(name string) *string {
	v, ok := r.row[name]
	if !ok || v == nil {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		r.fail(name, "string", v)
		return nil
	}
	return &s
}

func (r *rowReader) bptr(name string) *bool {
	v, ok := r.row[name]
	if !ok || v == nil {
		return nil
	}
	b, ok := v.(bool)
	if !ok {
		r.fail(name, "bool", v)
		return nil
	}
	return &b
}

// ElementRow renders the element's scalar columns as one cell map in schema
// order, nil cells for absent values.
func (e *Element) ElementRow() map[string]any {
	row := make(map[string]any, len(elementColumns))
	for _, c := range elementColumns {
		row[c.Name] = c.Get(e)
	}
	return row
}

// ElementFromRow hydrates an element's scalar columns from a cell map.
func ElementFromRow(row map[string]any) (*Element, error) {
	e := &Element{}
	for _, c := range elementColumns {
		v, ok := row[c.Name]
		if !ok || v == nil {
			continue
		}
		if err := c.Set(e, v); err != nil {
			return nil, err
		}
	}
	return e, nil
}

func (g Group) Row() map[string]any {
	return map[string]any{"group_id": g.GroupID, "symbol": g.Symbol, "name": g.Name}
}

func GroupFromRow(row map[string]any) (Group, error) {
	r := rowReader{row: row}
	g := Group{GroupID: r.intv("group_id"), Symbol: r.strv("symbol"), Name: r.strv("name")}
	return g, r.err
}

func (s Series) Row() map[string]any {
	return map[string]any{"id": s.ID, "name": s.Name, "color": s.Color}
}

func SeriesFromRow(row map[string]any) (Series, error) {
	r := rowReader{row: row}
	s := Series{ID: r.intv("id"), Name: r.strv("name"), Color: r.strv("color")}
	return s, r.err
}

func (ie IonizationEnergy) Row() map[string]any {
	return map[string]any{
		"id":                    ie.ID,
		"atomic_number":         ie.AtomicNumber,
		"ion_charge":            ie.IonCharge,
		"ionization_energy":     cell(ie.Energy),
		"uncertainty":           cell(ie.Uncertainty),
		"ground_configuration":  cell(ie.GroundConfiguration),
		"ground_level":          cell(ie.GroundLevel),
		"ground_shells":         cell(ie.GroundShells),
		"ionized_level":         cell(ie.IonizedLevel),
		"is_semi_empirical":     cell(ie.IsSemiEmpirical),
		"is_theoretical":        cell(ie.IsTheoretical),
		"isoelectonic_sequence": cell(ie.IsoelectronicSequence),
		"references":            cell(ie.References),
		"species_name":          cell(ie.SpeciesName),
	}
}

func IonizationEnergyFromRow(row map[string]any) (IonizationEnergy, error) {
	r := rowReader{row: row}
	ie := IonizationEnergy{
		ID:                    r.intv("id"),
		AtomicNumber:          r.intv("atomic_number"),
		IonCharge:             r.intv("ion_charge"),
		Energy:                r.fptr("ionization_energy"),
		Uncertainty:           r.fptr("uncertainty"),
		GroundConfiguration:   r.sptr("ground_configuration"),
		GroundLevel:           r.sptr("ground_level"),
		GroundShells:          r.sptr("ground_shells"),
		IonizedLevel:          r.sptr("ionized_level"),
		IsSemiEmpirical:       r.bptr("is_semi_empirical"),
		IsTheoretical:         r.bptr("is_theoretical"),
		IsoelectronicSequence: r.sptr("isoelectonic_sequence"),
		References:            r.sptr("references"),
		SpeciesName:           r.sptr("species_name"),
	}
	return ie, r.err
}

func (o OxidationState) Row() map[string]any {
	return map[string]any{
		"id":              o.ID,
		"atomic_number":   o.AtomicNumber,
		"oxidation_state": o.State,
		"category":        string(o.Category),
	}
}

func OxidationStateFromRow(row map[string]any) (OxidationState, error) {
	r := rowReader{row: row}
	o := OxidationState{
		ID:           r.intv("id"),
		AtomicNumber: r.intv("atomic_number"),
		State:        r.intv("oxidation_state"),
		Category:     OxidationStateCategory(r.strv("category")),
	}
	return o, r.err
}

func (i Isotope) Row() map[string]any {
	return map[string]any{
		"id":                            i.ID,
		"atomic_number":                 i.AtomicNumber,
		"mass_number":                   i.MassNumber,
		"mass":                          cell(i.Mass),
		"mass_uncertainty":              cell(i.MassUncertainty),
		"abundance":                     cell(i.Abundance),
		"abundance_uncertainty":         cell(i.AbundanceUncertainty),
		"is_radioactive":                cell(i.IsRadioactive),
		"half_life":                     cell(i.HalfLife),
		"half_life_uncertainty":         cell(i.HalfLifeUncertainty),
		"half_life_unit":                cell(i.HalfLifeUnit),
		"spin":                          cell(i.Spin),
		"parity":                        cell(i.Parity),
		"g_factor":                      cell(i.GFactor),
		"g_factor_uncertainty":          cell(i.GFactorUncertainty),
		"quadrupole_moment":             cell(i.QuadrupoleMoment),
		"quadrupole_moment_uncertainty": cell(i.QuadrupoleMomentUncertainty),
		"discovery_year":                cell(i.DiscoveryYear),
	}
}

func IsotopeFromRow(row map[string]any) (Isotope, error) {
	r := rowReader{row: row}
	iso := Isotope{
		ID:                          r.intv("id"),
		AtomicNumber:                r.intv("atomic_number"),
		MassNumber:                  r.intv("mass_number"),
		Mass:                        r.fptr("mass"),
		MassUncertainty:             r.fptr("mass_uncertainty"),
		Abundance:                   r.fptr("abundance"),
		AbundanceUncertainty:        r.fptr("abundance_uncertainty"),
		IsRadioactive:               r.bptr("is_radioactive"),
		HalfLife:                    r.fptr("half_life"),
		HalfLifeUncertainty:         r.fptr("half_life_uncertainty"),
		HalfLifeUnit:                r.sptr("half_life_unit"),
		Spin:                        r.fptr("spin"),
		Parity:                      r.sptr("parity"),
		GFactor:                     r.fptr("g_factor"),
		GFactorUncertainty:          r.fptr("g_factor_uncertainty"),
		QuadrupoleMoment:            r.fptr("quadrupole_moment"),
		QuadrupoleMomentUncertainty: r.fptr("quadrupole_moment_uncertainty"),
		DiscoveryYear:               r.iptr("discovery_year"),
	}
	return iso, r.err
}

func (m IsotopeDecayMode) Row() map[string]any {
	return map[string]any{
		"id":                            m.ID,
		"isotope_id":                    m.IsotopeID,
		"mode":                          m.Mode,
		"relation":                      cell(m.Relation),
		"intensity":                     cell(m.Intensity),
		"is_allowed_not_observed":       cell(m.IsAllowedNotObserved),
		"is_observed_intensity_unknown": cell(m.IsObservedIntensityUnknown),
	}
}

func IsotopeDecayModeFromRow(row map[string]any) (IsotopeDecayMode, error) {
	r := rowReader{row: row}
	m := IsotopeDecayMode{
		ID:                         r.intv("id"),
		IsotopeID:                  r.intv("isotope_id"),
		Mode:                       r.strv("mode"),
		Relation:                   r.sptr("relation"),
		Intensity:                  r.fptr("intensity"),
		IsAllowedNotObserved:       r.bptr("is_allowed_not_observed"),
		IsObservedIntensityUnknown: r.bptr("is_observed_intensity_unknown"),
	}
	return m, r.err
}

func (ir IonicRadius) Row() map[string]any {
	return map[string]any{
		"id":             ir.ID,
		"atomic_number":  ir.AtomicNumber,
		"charge":         ir.Charge,
		"coordination":   ir.Coordination,
		"spin":           ir.Spin,
		"crystal_radius": cell(ir.CrystalRadius),
		"ionic_radius":   cell(ir.IonicRadius),
		"econf":          cell(ir.Econf),
		"origin":         cell(ir.Origin),
		"most_reliable":  cell(ir.MostReliable),
	}
}

func IonicRadiusFromRow(row map[string]any) (IonicRadius, error) {
	r := rowReader{row: row}
	ir := IonicRadius{
		ID:            r.intv("id"),
		AtomicNumber:  r.intv("atomic_number"),
		Charge:        r.intv("charge"),
		Coordination:  r.strv("coordination"),
		Spin:          r.strv("spin"),
		CrystalRadius: r.fptr("crystal_radius"),
		IonicRadius:   r.fptr("ionic_radius"),
		Econf:         r.sptr("econf"),
		Origin:        r.sptr("origin"),
		MostReliable:  r.bptr("most_reliable"),
	}
	return ir, r.err
}

func (sc ScreeningConstant) Row() map[string]any {
	return map[string]any{
		"id":            sc.ID,
		"atomic_number": sc.AtomicNumber,
		"n":             sc.N,
		"s":             sc.Orbital,
		"screening":     sc.Screening,
	}
}

func ScreeningConstantFromRow(row map[string]any) (ScreeningConstant, error) {
	r := rowReader{row: row}
	sc := ScreeningConstant{
		ID:           r.intv("id"),
		AtomicNumber: r.intv("atomic_number"),
		N:            r.intv("n"),
		Orbital:      r.strv("s"),
		Screening:    r.floatv("screening"),
	}
	return sc, r.err
}

func (pt PhaseTransition) Row() map[string]any {
	return map[string]any{
		"id":                       pt.ID,
		"atomic_number":            pt.AtomicNumber,
		"allotrope":                cell(pt.Allotrope),
		"melting_point":            cell(pt.MeltingPoint),
		"boiling_point":            cell(pt.BoilingPoint),
		"critical_temperature":     cell(pt.CriticalTemperature),
		"critical_pressure":        cell(pt.CriticalPressure),
		"triple_point_temperature": cell(pt.TriplePointTemperature),
		"triple_point_pressure":    cell(pt.TriplePointPressure),
		"is_sublimation_point":     cell(pt.IsSublimationPoint),
		"is_transition":            cell(pt.IsTransition),
	}
}

func PhaseTransitionFromRow(row map[string]any) (PhaseTransition, error) {
	r := rowReader{row: row}
	pt := PhaseTransition{
		ID:                     r.intv("id"),
		AtomicNumber:           r.intv("atomic_number"),
		Allotrope:              r.sptr("allotrope"),
		MeltingPoint:           r.fptr("melting_point"),
		BoilingPoint:           r.fptr("boiling_point"),
		CriticalTemperature:    r.fptr("critical_temperature"),
		CriticalPressure:       r.fptr("critical_pressure"),
		TriplePointTemperature: r.fptr("triple_point_temperature"),
		TriplePointPressure:    r.fptr("triple_point_pressure"),
		IsSublimationPoint:     r.bptr("is_sublimation_point"),
		IsTransition:           r.bptr("is_transition"),
	}
	return pt, r.err
}

func (sf ScatteringFactor) Row() map[string]any {
	return map[string]any{
		"id":            sf.ID,
		"atomic_number": sf.AtomicNumber,
		"energy":        sf.Energy,
		"f1":            cell(sf.F1),
		"f2":            cell(sf.F2),
	}
}

func ScatteringFactorFromRow(row map[string]any) (ScatteringFactor, error) {
	r := rowReader{row: row}
	sf := ScatteringFactor{
		ID:           r.intv("id"),
		AtomicNumber: r.intv("atomic_number"),
		Energy:       r.floatv("energy"),
		F1:           r.fptr("f1"),
		F2:           r.fptr("f2"),
	}
	return sf, r.err
}

func (pm PropertyMetadata) Row() map[string]any {
	return map[string]any{
		"id":             pm.ID,
		"attribute_name": pm.AttributeName,
		"category":       cell(pm.Category),
		"class_name":     pm.ClassName,
		"column_name":    pm.ColumnName,
		"table_name":     pm.TableName,
		"unit":           cell(pm.Unit),
		"description":    cell(pm.Description),
		"annotations":    cell(pm.Annotations),
		"citation_keys":  cell(pm.CitationKeys),
		"value_origin":   string(pm.ValueOrigin),
	}
}

func PropertyMetadataFromRow(row map[string]any) (PropertyMetadata, error) {
	r := rowReader{row: row}
	pm := PropertyMetadata{
		ID:            r.intv("id"),
		AttributeName: r.strv("attribute_name"),
		Category:      r.sptr("category"),
		ClassName:     r.strv("class_name"),
		ColumnName:    r.strv("column_name"),
		TableName:     r.strv("table_name"),
		Unit:          r.sptr("unit"),
		Description:   r.sptr("description"),
		Annotations:   r.sptr("annotations"),
		CitationKeys:  r.sptr("citation_keys"),
		ValueOrigin:   ValueOrigin(r.strv("value_origin")),
	}
	return pm, r.err
}
