// Package refdata holds the reference corpus: flat per-table record slices
// mirroring the storage layout, plus the linking step that wires child
// records onto their elements. Store drivers hydrate a Dataset and serve
// from it.
package refdata

import (
	"fmt"
	"sort"

	"periodica/pkg/chem"
)

// Dataset is the full corpus in flat table form. Slices are stored order;
// Link sorts them by their natural keys and attaches children to elements.
type Dataset struct {
	Elements           []chem.Element           `json:"elements"`
	Groups             []chem.Group             `json:"groups"`
	Series             []chem.Series            `json:"series"`
	IonizationEnergies []chem.IonizationEnergy  `json:"ionization_energies"`
	OxidationStates    []chem.OxidationState    `json:"oxidation_states"`
	Isotopes           []chem.Isotope           `json:"isotopes"`
	IsotopeDecayModes  []chem.IsotopeDecayMode  `json:"isotope_decay_modes"`
	IonicRadii         []chem.IonicRadius       `json:"ionic_radii"`
	ScreeningConstants []chem.ScreeningConstant `json:"screening_constants"`
	PhaseTransitions   []chem.PhaseTransition   `json:"phase_transitions"`
	ScatteringFactors  []chem.ScatteringFactor  `json:"scattering_factors"`
	PropertyMetadata   []chem.PropertyMetadata  `json:"property_metadata"`
}

// Link sorts every table by its natural key, attaches child records to
// their owning elements and resolves Group/Series references. It fails on
// a child or reference pointing at an element, group or series that is not
// in the corpus.
func (d *Dataset) Link() error {
	sort.Slice(d.Elements, func(i, j int) bool {
		return d.Elements[i].AtomicNumber < d.Elements[j].AtomicNumber
	})
	sort.Slice(d.IonizationEnergies, func(i, j int) bool {
		a, b := d.IonizationEnergies[i], d.IonizationEnergies[j]
		if a.AtomicNumber != b.AtomicNumber {
			return a.AtomicNumber < b.AtomicNumber
		}
		return a.IonCharge < b.IonCharge
	})
	sort.Slice(d.Isotopes, func(i, j int) bool {
		a, b := d.Isotopes[i], d.Isotopes[j]
		if a.AtomicNumber != b.AtomicNumber {
			return a.AtomicNumber < b.AtomicNumber
		}
		return a.MassNumber < b.MassNumber
	})

	byNumber := make(map[int]*chem.Element, len(d.Elements))
	for i := range d.Elements {
		e := &d.Elements[i]
		e.IonizationEnergies = nil
		e.OxidationStateList = nil
		e.Isotopes = nil
		e.IonicRadii = nil
		e.ScreeningConstants = nil
		e.PhaseTransitions = nil
		e.ScatteringFactors = nil
		byNumber[e.AtomicNumber] = e
	}

	groups := make(map[int]chem.Group, len(d.Groups))
	for _, g := range d.Groups {
		groups[g.GroupID] = g
	}
	series := make(map[int]chem.Series, len(d.Series))
	for _, s := range d.Series {
		series[s.ID] = s
	}
	for _, e := range byNumber {
		if e.GroupID != nil {
			g, ok := groups[*e.GroupID]
			if !ok {
				return fmt.Errorf("element %d: unknown group %d", e.AtomicNumber, *e.GroupID)
			}
			e.Group = &g
		}
		if e.SeriesID != nil {
			s, ok := series[*e.SeriesID]
			if !ok {
				return fmt.Errorf("element %d: unknown series %d", e.AtomicNumber, *e.SeriesID)
			}
			e.Series = &s
		}
	}

	owner := func(table string, z int) (*chem.Element, error) {
		e, ok := byNumber[z]
		if !ok {
			return nil, fmt.Errorf("%s: no element %d", table, z)
		}
		return e, nil
	}
	for _, ie := range d.IonizationEnergies {
		e, err := owner("ionization energy", ie.AtomicNumber)
		if err != nil {
			return err
		}
		e.IonizationEnergies = append(e.IonizationEnergies, ie)
	}
	for _, os := range d.OxidationStates {
		e, err := owner("oxidation state", os.AtomicNumber)
		if err != nil {
			return err
		}
		e.OxidationStateList = append(e.OxidationStateList, os)
	}

	modes := make(map[int][]chem.IsotopeDecayMode)
	isotopeIDs := make(map[int]bool, len(d.Isotopes))
	for _, iso := range d.Isotopes {
		isotopeIDs[iso.ID] = true
	}
	for _, m := range d.IsotopeDecayModes {
		if !isotopeIDs[m.IsotopeID] {
			return fmt.Errorf("decay mode %d: no isotope %d", m.ID, m.IsotopeID)
		}
		modes[m.IsotopeID] = append(modes[m.IsotopeID], m)
	}
	for _, iso := range d.Isotopes {
		e, err := owner("isotope", iso.AtomicNumber)
		if err != nil {
			return err
		}
		iso.DecayModes = modes[iso.ID]
		e.Isotopes = append(e.Isotopes, iso)
	}

	for _, ir := range d.IonicRadii {
		e, err := owner("ionic radius", ir.AtomicNumber)
		if err != nil {
			return err
		}
		e.IonicRadii = append(e.IonicRadii, ir)
	}
	for _, sc := range d.ScreeningConstants {
		e, err := owner("screening constant", sc.AtomicNumber)
		if err != nil {
			return err
		}
		e.ScreeningConstants = append(e.ScreeningConstants, sc)
	}
	for _, pt := range d.PhaseTransitions {
		e, err := owner("phase transition", pt.AtomicNumber)
		if err != nil {
			return err
		}
		e.PhaseTransitions = append(e.PhaseTransitions, pt)
	}
	for _, sf := range d.ScatteringFactors {
		e, err := owner("scattering factor", sf.AtomicNumber)
		if err != nil {
			return err
		}
		e.ScatteringFactors = append(e.ScatteringFactors, sf)
	}
	return nil
}

// Validate checks the natural-key uniqueness of every table.
func (d *Dataset) Validate() error {
	seenZ := map[int]bool{}
	seenSymbol := map[string]bool{}
	for _, e := range d.Elements {
		if seenZ[e.AtomicNumber] {
			return fmt.Errorf("duplicate atomic number %d", e.AtomicNumber)
		}
		if seenSymbol[e.Symbol] {
			return fmt.Errorf("duplicate symbol %q", e.Symbol)
		}
		seenZ[e.AtomicNumber] = true
		seenSymbol[e.Symbol] = true
	}

	seenGroup := map[int]bool{}
	for _, g := range d.Groups {
		if seenGroup[g.GroupID] {
			return fmt.Errorf("duplicate group %d", g.GroupID)
		}
		seenGroup[g.GroupID] = true
	}
	seenSeries := map[int]bool{}
	for _, s := range d.Series {
		if seenSeries[s.ID] {
			return fmt.Errorf("duplicate series %d", s.ID)
		}
		seenSeries[s.ID] = true
	}

	type zk struct{ z, k int }
	seenIE := map[zk]bool{}
	for _, ie := range d.IonizationEnergies {
		key := zk{ie.AtomicNumber, ie.IonCharge}
		if seenIE[key] {
			return fmt.Errorf("duplicate ionization energy (%d, %d)", ie.AtomicNumber, ie.IonCharge)
		}
		seenIE[key] = true
	}
	seenIso := map[zk]bool{}
	seenIsoID := map[int]bool{}
	for _, iso := range d.Isotopes {
		key := zk{iso.AtomicNumber, iso.MassNumber}
		if seenIso[key] {
			return fmt.Errorf("duplicate isotope (%d, %d)", iso.AtomicNumber, iso.MassNumber)
		}
		if seenIsoID[iso.ID] {
			return fmt.Errorf("duplicate isotope id %d", iso.ID)
		}
		seenIso[key] = true
		seenIsoID[iso.ID] = true
	}

	type radiusKey struct {
		z, charge          int
		coordination, spin string
	}
	seenRadius := map[radiusKey]bool{}
	for _, ir := range d.IonicRadii {
		key := radiusKey{ir.AtomicNumber, ir.Charge, ir.Coordination, ir.Spin}
		if seenRadius[key] {
			return fmt.Errorf("duplicate ionic radius (%d, %+d, %s, %s)",
				ir.AtomicNumber, ir.Charge, ir.Coordination, ir.Spin)
		}
		seenRadius[key] = true
	}

	type subshell struct {
		z, n    int
		orbital string
	}
	seenScreening := map[subshell]bool{}
	for _, sc := range d.ScreeningConstants {
		key := subshell{sc.AtomicNumber, sc.N, sc.Orbital}
		if seenScreening[key] {
			return fmt.Errorf("duplicate screening constant (%d, %d%s)", sc.AtomicNumber, sc.N, sc.Orbital)
		}
		seenScreening[key] = true
	}
	return nil
}

// AppendRow hydrates one stored row into the matching table slice. SQL
// drivers rebuild a Dataset through this before linking.
func (d *Dataset) AppendRow(table chem.Table, row map[string]any) error {
	if _, err := chem.TableSchema(table); err != nil {
		return err
	}
	var err error
	switch table {
	case chem.TableElements:
		var e *chem.Element
		if e, err = chem.ElementFromRow(row); err == nil {
			d.Elements = append(d.Elements, *e)
		}
	case chem.TableGroups:
		var g chem.Group
		if g, err = chem.GroupFromRow(row); err == nil {
			d.Groups = append(d.Groups, g)
		}
	case chem.TableSeries:
		var s chem.Series
		if s, err = chem.SeriesFromRow(row); err == nil {
			d.Series = append(d.Series, s)
		}
	case chem.TableIonizationEnergies:
		var ie chem.IonizationEnergy
		if ie, err = chem.IonizationEnergyFromRow(row); err == nil {
			d.IonizationEnergies = append(d.IonizationEnergies, ie)
		}
	case chem.TableOxidationStates:
		var os chem.OxidationState
		if os, err = chem.OxidationStateFromRow(row); err == nil {
			d.OxidationStates = append(d.OxidationStates, os)
		}
	case chem.TableIsotopes:
		var iso chem.Isotope
		if iso, err = chem.IsotopeFromRow(row); err == nil {
			d.Isotopes = append(d.Isotopes, iso)
		}
	case chem.TableIsotopeDecayModes:
		var m chem.IsotopeDecayMode
		if m, err = chem.IsotopeDecayModeFromRow(row); err == nil {
			d.IsotopeDecayModes = append(d.IsotopeDecayModes, m)
		}
	case chem.TableIonicRadii:
		var ir chem.IonicRadius
		if ir, err = chem.IonicRadiusFromRow(row); err == nil {
			d.IonicRadii = append(d.IonicRadii, ir)
		}
	case chem.TableScreeningConstants:
		var sc chem.ScreeningConstant
		if sc, err = chem.ScreeningConstantFromRow(row); err == nil {
			d.ScreeningConstants = append(d.ScreeningConstants, sc)
		}
	case chem.TablePhaseTransitions:
		var pt chem.PhaseTransition
		if pt, err = chem.PhaseTransitionFromRow(row); err == nil {
			d.PhaseTransitions = append(d.PhaseTransitions, pt)
		}
	case chem.TableScatteringFactors:
		var sf chem.ScatteringFactor
		if sf, err = chem.ScatteringFactorFromRow(row); err == nil {
			d.ScatteringFactors = append(d.ScatteringFactors, sf)
		}
	case chem.TablePropertyMetadata:
		var pm chem.PropertyMetadata
		if pm, err = chem.PropertyMetadataFromRow(row); err == nil {
			d.PropertyMetadata = append(d.PropertyMetadata, pm)
		}
	}
	return err
}

// TableRows renders one reference table as flat cell maps in stored order.
func (d *Dataset) TableRows(table chem.Table) ([]map[string]any, error) {
	if _, err := chem.TableSchema(table); err != nil {
		return nil, err
	}
	var rows []map[string]any
	switch table {
	case chem.TableElements:
		for i := range d.Elements {
			rows = append(rows, d.Elements[i].ElementRow())
		}
	case chem.TableGroups:
		for _, g := range d.Groups {
			rows = append(rows, g.Row())
		}
	case chem.TableSeries:
		for _, s := range d.Series {
			rows = append(rows, s.Row())
		}
	case chem.TableIonizationEnergies:
		for _, ie := range d.IonizationEnergies {
			rows = append(rows, ie.Row())
		}
	case chem.TableOxidationStates:
		for _, os := range d.OxidationStates {
			rows = append(rows, os.Row())
		}
	case chem.TableIsotopes:
		for _, iso := range d.Isotopes {
			rows = append(rows, iso.Row())
		}
	case chem.TableIsotopeDecayModes:
		for _, m := range d.IsotopeDecayModes {
			rows = append(rows, m.Row())
		}
	case chem.TableIonicRadii:
		for _, ir := range d.IonicRadii {
			rows = append(rows, ir.Row())
		}
	case chem.TableScreeningConstants:
		for _, sc := range d.ScreeningConstants {
			rows = append(rows, sc.Row())
		}
	case chem.TablePhaseTransitions:
		for _, pt := range d.PhaseTransitions {
			rows = append(rows, pt.Row())
		}
	case chem.TableScatteringFactors:
		for _, sf := range d.ScatteringFactors {
			rows = append(rows, sf.Row())
		}
	case chem.TablePropertyMetadata:
		for _, pm := range d.PropertyMetadata {
			rows = append(rows, pm.Row())
		}
	}
	return rows, nil
}
