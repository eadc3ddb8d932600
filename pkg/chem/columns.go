package chem

import "fmt"

// ColumnKind is the storage type of a reference-table column.
type ColumnKind int

const (
	KindFloat ColumnKind = iota
	KindInt
	KindText
	KindBool
)

// TypeName returns the column type label used by tabular schemas.
func (k ColumnKind) TypeName() string {
	switch k {
	case KindFloat:
		return "number"
	case KindInt:
		return "integer"
	case KindText:
		return "string"
	case KindBool:
		return "boolean"
	default:
		return "string"
	}
}

// ElementColumn describes one scalar column of the elements table: its name,
// storage kind, and typed accessors. The descriptor list is the single
// source of truth for table projection, group-scoped lookups, and SQL
// hydration.
type ElementColumn struct {
	Name string
	Kind ColumnKind
	// Get returns the column value, or nil when it is absent.
	Get func(*Element) any
	// Set stores a non-nil value of the kind's Go type (float64, int,
	// string, bool) and fails on a mismatched type.
	Set func(*Element, any) error
}

func fptr(name string, get func(*Element) *float64, set func(*Element, *float64)) ElementColumn {
	return ElementColumn{Name: name, Kind: KindFloat,
		Get: func(e *Element) any {
			if p := get(e); p != nil {
				return *p
			}
			return nil
		},
		Set: func(e *Element, v any) error {
			f, ok := v.(float64)
			if !ok {
				return fmt.Errorf("column %s: expected float64, got %T", name, v)
			}
			set(e, &f)
			return nil
		},
	}
}

func iptr(name string, get func(*Element) *int, set func(*Element, *int)) ElementColumn {
	return ElementColumn{Name: name, Kind: KindInt,
		Get: func(e *Element) any {
			if p := get(e); p != nil {
				return *p
			}
			return nil
		},
		Set: func(e *Element, v any) error {
			i, ok := v.(int)
			if !ok {
				return fmt.Errorf("column %s: expected int, got %T", name, v)
			}
			set(e, &i)
			return nil
		},
	}
}

func sptr(name string, get func(*Element) *string, set func(*Element, *string)) ElementColumn {
	return ElementColumn{Name: name, Kind: KindText,
		Get: func(e *Element) any {
			if p := get(e); p != nil {
				return *p
			}
			return nil
		},
		Set: func(e *Element, v any) error {
			s, ok := v.(string)
			if !ok {
				return fmt.Errorf("column %s: expected string, got %T", name, v)
			}
			set(e, &s)
			return nil
		},
	}
}

func bptr(name string, get func(*Element) *bool, set func(*Element, *bool)) ElementColumn {
	return ElementColumn{Name: name, Kind: KindBool,
		Get: func(e *Element) any {
			if p := get(e); p != nil {
				return *p
			}
			return nil
		},
		Set: func(e *Element, v any) error {
			b, ok := v.(bool)
			if !ok {
				return fmt.Errorf("column %s: expected bool, got %T", name, v)
			}
			set(e, &b)
			return nil
		},
	}
}

func ival(name string, get func(*Element) int, set func(*Element, int)) ElementColumn {
	return ElementColumn{Name: name, Kind: KindInt,
		Get: func(e *Element) any { return get(e) },
		Set: func(e *Element, v any) error {
			i, ok := v.(int)
			if !ok {
				return fmt.Errorf("column %s: expected int, got %T", name, v)
			}
			set(e, i)
			return nil
		},
	}
}

func sval(name string, get func(*Element) string, set func(*Element, string)) ElementColumn {
	return ElementColumn{Name: name, Kind: KindText,
		Get: func(e *Element) any { return get(e) },
		Set: func(e *Element, v any) error {
			s, ok := v.(string)
			if !ok {
				return fmt.Errorf("column %s: expected string, got %T", name, v)
			}
			set(e, s)
			return nil
		},
	}
}

// elementColumns holds the elements-table schema in corpus column order.
var elementColumns = []ElementColumn{
	fptr("abundance_crust", func(e *Element) *float64 { return e.AbundanceCrust }, func(e *Element, v *float64) { e.AbundanceCrust = v }),
	fptr("abundance_sea", func(e *Element) *float64 { return e.AbundanceSea }, func(e *Element, v *float64) { e.AbundanceSea = v }),
	ival("atomic_number", func(e *Element) int { return e.AtomicNumber }, func(e *Element, v int) { e.AtomicNumber = v }),
	fptr("atomic_radius", func(e *Element) *float64 { return e.AtomicRadius }, func(e *Element, v *float64) { e.AtomicRadius = v }),
	fptr("atomic_radius_rahm", func(e *Element) *float64 { return e.AtomicRadiusRahm }, func(e *Element, v *float64) { e.AtomicRadiusRahm = v }),
	fptr("atomic_weight", func(e *Element) *float64 { return e.AtomicWeight }, func(e *Element, v *float64) { e.AtomicWeight = v }),
	fptr("atomic_weight_uncertainty", func(e *Element) *float64 { return e.AtomicWeightUncertainty }, func(e *Element, v *float64) { e.AtomicWeightUncertainty = v }),
	sval("block", func(e *Element) string { return e.Block }, func(e *Element, v string) { e.Block = v }),
	sptr("cas", func(e *Element) *string { return e.CAS }, func(e *Element, v *string) { e.CAS = v }),
	fptr("covalent_radius_bragg", func(e *Element) *float64 { return e.CovalentRadiusBragg }, func(e *Element, v *float64) { e.CovalentRadiusBragg = v }),
	fptr("covalent_radius_cordero", func(e *Element) *float64 { return e.CovalentRadiusCordero }, func(e *Element, v *float64) { e.CovalentRadiusCordero = v }),
	fptr("covalent_radius_pyykko", func(e *Element) *float64 { return e.CovalentRadiusPyykko }, func(e *Element, v *float64) { e.CovalentRadiusPyykko = v }),
	fptr("covalent_radius_pyykko_double", func(e *Element) *float64 { return e.CovalentRadiusPyykkoDouble }, func(e *Element, v *float64) { e.CovalentRadiusPyykkoDouble = v }),
	fptr("covalent_radius_pyykko_triple", func(e *Element) *float64 { return e.CovalentRadiusPyykkoTriple }, func(e *Element, v *float64) { e.CovalentRadiusPyykkoTriple = v }),
	fptr("c6", func(e *Element) *float64 { return e.C6 }, func(e *Element, v *float64) { e.C6 = v }),
	fptr("c6_gb", func(e *Element) *float64 { return e.C6GB }, func(e *Element, v *float64) { e.C6GB = v }),
	sptr("cpk_color", func(e *Element) *string { return e.CPKColor }, func(e *Element, v *string) { e.CPKColor = v }),
	fptr("density", func(e *Element) *float64 { return e.Density }, func(e *Element, v *float64) { e.Density = v }),
	sptr("description", func(e *Element) *string { return e.Description }, func(e *Element, v *string) { e.Description = v }),
	fptr("dipole_polarizability", func(e *Element) *float64 { return e.DipolePolarizability }, func(e *Element, v *float64) { e.DipolePolarizability = v }),
	fptr("dipole_polarizability_unc", func(e *Element) *float64 { return e.DipolePolarizabilityUnc }, func(e *Element, v *float64) { e.DipolePolarizabilityUnc = v }),
	sptr("discoverers", func(e *Element) *string { return e.Discoverers }, func(e *Element, v *string) { e.Discoverers = v }),
	sptr("discovery_location", func(e *Element) *string { return e.DiscoveryLocation }, func(e *Element, v *string) { e.DiscoveryLocation = v }),
	iptr("discovery_year", func(e *Element) *int { return e.DiscoveryYear }, func(e *Element, v *int) { e.DiscoveryYear = v }),
	fptr("electron_affinity", func(e *Element) *float64 { return e.ElectronAffinity }, func(e *Element, v *float64) { e.ElectronAffinity = v }),
	fptr("en_allen", func(e *Element) *float64 { return e.EnAllen }, func(e *Element, v *float64) { e.EnAllen = v }),
	fptr("en_ghosh", func(e *Element) *float64 { return e.EnGhosh }, func(e *Element, v *float64) { e.EnGhosh = v }),
	fptr("en_miedema", func(e *Element) *float64 { return e.EnMiedema }, func(e *Element, v *float64) { e.EnMiedema = v }),
	fptr("en_mullay", func(e *Element) *float64 { return e.EnMullay }, func(e *Element, v *float64) { e.EnMullay = v }),
	fptr("en_pauling", func(e *Element) *float64 { return e.EnPauling }, func(e *Element, v *float64) { e.EnPauling = v }),
	fptr("en_gunnarsson_lundqvist", func(e *Element) *float64 { return e.EnGunnarssonLundqvist }, func(e *Element, v *float64) { e.EnGunnarssonLundqvist = v }),
	fptr("en_robles_bartolotti", func(e *Element) *float64 { return e.EnRoblesBartolotti }, func(e *Element, v *float64) { e.EnRoblesBartolotti = v }),
	sval("electronic_configuration", func(e *Element) string { return e.Econf }, func(e *Element, v string) { e.Econf = v }),
	fptr("evaporation_heat", func(e *Element) *float64 { return e.EvaporationHeat }, func(e *Element, v *float64) { e.EvaporationHeat = v }),
	fptr("fusion_heat", func(e *Element) *float64 { return e.FusionHeat }, func(e *Element, v *float64) { e.FusionHeat = v }),
	fptr("gas_basicity", func(e *Element) *float64 { return e.GasBasicity }, func(e *Element, v *float64) { e.GasBasicity = v }),
	sptr("geochemical_class", func(e *Element) *string { return e.GeochemicalClass }, func(e *Element, v *string) { e.GeochemicalClass = v }),
	iptr("glawe_number", func(e *Element) *int { return e.GlaweNumber }, func(e *Element, v *int) { e.GlaweNumber = v }),
	sptr("goldschmidt_class", func(e *Element) *string { return e.GoldschmidtClass }, func(e *Element, v *string) { e.GoldschmidtClass = v }),
	iptr("group_id", func(e *Element) *int { return e.GroupID }, func(e *Element, v *int) { e.GroupID = v }),
	fptr("heat_of_formation", func(e *Element) *float64 { return e.HeatOfFormation }, func(e *Element, v *float64) { e.HeatOfFormation = v }),
	bptr("is_monoisotopic", func(e *Element) *bool { return e.IsMonoisotopic }, func(e *Element, v *bool) { e.IsMonoisotopic = v }),
	bptr("is_radioactive", func(e *Element) *bool { return e.IsRadioactive }, func(e *Element, v *bool) { e.IsRadioactive = v }),
	sptr("jmol_color", func(e *Element) *string { return e.JmolColor }, func(e *Element, v *string) { e.JmolColor = v }),
	fptr("lattice_constant", func(e *Element) *float64 { return e.LatticeConstant }, func(e *Element, v *float64) { e.LatticeConstant = v }),
	sptr("lattice_structure", func(e *Element) *string { return e.LatticeStructure }, func(e *Element, v *string) { e.LatticeStructure = v }),
	iptr("mendeleev_number", func(e *Element) *int { return e.MendeleevNumber }, func(e *Element, v *int) { e.MendeleevNumber = v }),
	fptr("metallic_radius", func(e *Element) *float64 { return e.MetallicRadius }, func(e *Element, v *float64) { e.MetallicRadius = v }),
	fptr("metallic_radius_c12", func(e *Element) *float64 { return e.MetallicRadiusC12 }, func(e *Element, v *float64) { e.MetallicRadiusC12 = v }),
	fptr("miedema_molar_volume", func(e *Element) *float64 { return e.MiedemaMolarVolume }, func(e *Element, v *float64) { e.MiedemaMolarVolume = v }),
	fptr("miedema_electron_density", func(e *Element) *float64 { return e.MiedemaElectronDensity }, func(e *Element, v *float64) { e.MiedemaElectronDensity = v }),
	fptr("molar_heat_capacity", func(e *Element) *float64 { return e.MolarHeatCapacity }, func(e *Element, v *float64) { e.MolarHeatCapacity = v }),
	sptr("molcas_gv_color", func(e *Element) *string { return e.MolcasGVColor }, func(e *Element, v *string) { e.MolcasGVColor = v }),
	sval("name", func(e *Element) string { return e.Name }, func(e *Element, v string) { e.Name = v }),
	sptr("name_origin", func(e *Element) *string { return e.NameOrigin }, func(e *Element, v *string) { e.NameOrigin = v }),
	ival("period", func(e *Element) int { return e.Period }, func(e *Element, v int) { e.Period = v }),
	iptr("pettifor_number", func(e *Element) *int { return e.PettiforNumber }, func(e *Element, v *int) { e.PettiforNumber = v }),
	fptr("price_per_kg", func(e *Element) *float64 { return e.PricePerKg }, func(e *Element, v *float64) { e.PricePerKg = v }),
	fptr("proton_affinity", func(e *Element) *float64 { return e.ProtonAffinity }, func(e *Element, v *float64) { e.ProtonAffinity = v }),
	sptr("sources", func(e *Element) *string { return e.Sources }, func(e *Element, v *string) { e.Sources = v }),
	fptr("specific_heat_capacity", func(e *Element) *float64 { return e.SpecificHeatCapacity }, func(e *Element, v *float64) { e.SpecificHeatCapacity = v }),
	sval("symbol", func(e *Element) string { return e.Symbol }, func(e *Element, v string) { e.Symbol = v }),
	fptr("thermal_conductivity", func(e *Element) *float64 { return e.ThermalConductivity }, func(e *Element, v *float64) { e.ThermalConductivity = v }),
	sptr("uses", func(e *Element) *string { return e.Uses }, func(e *Element, v *string) { e.Uses = v }),
	fptr("vdw_radius", func(e *Element) *float64 { return e.VdwRadius }, func(e *Element, v *float64) { e.VdwRadius = v }),
	fptr("vdw_radius_alvarez", func(e *Element) *float64 { return e.VdwRadiusAlvarez }, func(e *Element, v *float64) { e.VdwRadiusAlvarez = v }),
	fptr("vdw_radius_bondi", func(e *Element) *float64 { return e.VdwRadiusBondi }, func(e *Element, v *float64) { e.VdwRadiusBondi = v }),
	fptr("vdw_radius_truhlar", func(e *Element) *float64 { return e.VdwRadiusTruhlar }, func(e *Element, v *float64) { e.VdwRadiusTruhlar = v }),
	fptr("vdw_radius_rt", func(e *Element) *float64 { return e.VdwRadiusRT }, func(e *Element, v *float64) { e.VdwRadiusRT = v }),
	fptr("vdw_radius_batsanov", func(e *Element) *float64 { return e.VdwRadiusBatsanov }, func(e *Element, v *float64) { e.VdwRadiusBatsanov = v }),
	fptr("vdw_radius_dreiding", func(e *Element) *float64 { return e.VdwRadiusDreiding }, func(e *Element, v *float64) { e.VdwRadiusDreiding = v }),
	fptr("vdw_radius_uff", func(e *Element) *float64 { return e.VdwRadiusUFF }, func(e *Element, v *float64) { e.VdwRadiusUFF = v }),
	fptr("vdw_radius_mm3", func(e *Element) *float64 { return e.VdwRadiusMM3 }, func(e *Element, v *float64) { e.VdwRadiusMM3 = v }),
	fptr("political_stability_of_top_producer", func(e *Element) *float64 { return e.PoliticalStabilityOfTopProducer }, func(e *Element, v *float64) { e.PoliticalStabilityOfTopProducer = v }),
	fptr("political_stability_of_top_reserve_holder", func(e *Element) *float64 { return e.PoliticalStabilityOfTopReserveHolder }, func(e *Element, v *float64) { e.PoliticalStabilityOfTopReserveHolder = v }),
	fptr("production_concentration", func(e *Element) *float64 { return e.ProductionConcentration }, func(e *Element, v *float64) { e.ProductionConcentration = v }),
	sptr("recycling_rate", func(e *Element) *string { return e.RecyclingRate }, func(e *Element, v *string) { e.RecyclingRate = v }),
	fptr("relative_supply_risk", func(e *Element) *float64 { return e.RelativeSupplyRisk }, func(e *Element, v *float64) { e.RelativeSupplyRisk = v }),
	fptr("reserve_distribution", func(e *Element) *float64 { return e.ReserveDistribution }, func(e *Element, v *float64) { e.ReserveDistribution = v }),
	sptr("substitutability", func(e *Element) *string { return e.Substitutability }, func(e *Element, v *string) { e.Substitutability = v }),
	sptr("top_3_producers", func(e *Element) *string { return e.Top3Producers }, func(e *Element, v *string) { e.Top3Producers = v }),
	sptr("top_3_reserve_holders", func(e *Element) *string { return e.Top3ReserveHolders }, func(e *Element, v *string) { e.Top3ReserveHolders = v }),
	iptr("series_id", func(e *Element) *int { return e.SeriesID }, func(e *Element, v *int) { e.SeriesID = v }),
}

var elementColumnIndex = func() map[string]int {
	idx := make(map[string]int, len(elementColumns))
	for i, c := range elementColumns {
		idx[c.Name] = i
	}
	return idx
}()

// ElementColumns returns the elements-table schema in corpus column order.
func ElementColumns() []ElementColumn {
	out := make([]ElementColumn, len(elementColumns))
	copy(out, elementColumns)
	return out
}

// ElementColumnByName looks up a column descriptor by its corpus name.
func ElementColumnByName(name string) (ElementColumn, bool) {
	i, ok := elementColumnIndex[name]
	if !ok {
		return ElementColumn{}, false
	}
	return elementColumns[i], true
}

// FloatAttr returns the value of a float-valued element column selected by
// name, nil when the value is absent. Unknown or non-float names fail with
// InvalidArgument; radius selection in the electronegativity scales goes
// through here.
func (e *Element) FloatAttr(name string) (*float64, error) {
	col, ok := ElementColumnByName(name)
	if !ok || col.Kind != KindFloat {
		return nil, invalidArgf("column", "%q is not a float element column", name)
	}
	v := col.Get(e)
	if v == nil {
		return nil, nil
	}
	f := v.(float64)
	return &f, nil
}
