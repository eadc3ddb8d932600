package chem

import "sort"

// Table names one of the reference tables of the corpus. The set is closed;
// operations taking a Table validate it against the whitelist first.
type Table string

const (
	TableElements           Table = "elements"
	TableGroups             Table = "groups"
	TableIonicRadii         Table = "ionicradii"
	TableIonizationEnergies Table = "ionizationenergies"
	TableIsotopeDecayModes  Table = "isotopedecaymodes"
	TableIsotopes           Table = "isotopes"
	TableOxidationStates    Table = "oxidationstates"
	TablePhaseTransitions   Table = "phasetransitions"
	TablePropertyMetadata   Table = "propertymetadata"
	TableScatteringFactors  Table = "scattering_factors"
	TableScreeningConstants Table = "screeningconstants"
	TableSeries             Table = "series"
)

// TableColumn is one column of a reference table: its corpus name and
// storage kind.
type TableColumn struct {
	Name string
	Kind ColumnKind
}

// tableSchemas holds the column layout of every reference table, in corpus
// column order. The elements schema is derived from the element column
// descriptors so the two can never drift apart.
var tableSchemas = map[Table][]TableColumn{
	TableElements: elementTableColumns(),
	TableGroups: {
		{Name: "group_id", Kind: KindInt},
		{Name: "symbol", Kind: KindText},
		{Name: "name", Kind: KindText},
	},
	TableSeries: {
		{Name: "id", Kind: KindInt},
		{Name: "name", Kind: KindText},
		{Name: "color", Kind: KindText},
	},
	TableIonizationEnergies: {
		{Name: "id", Kind: KindInt},
		{Name: "atomic_number", Kind: KindInt},
		{Name: "ion_charge", Kind: KindInt},
		{Name: "ionization_energy", Kind: KindFloat},
		{Name: "uncertainty", Kind: KindFloat},
		{Name: "ground_configuration", Kind: KindText},
		{Name: "ground_level", Kind: KindText},
		{Name: "ground_shells", Kind: KindText},
		{Name: "ionized_level", Kind: KindText},
		{Name: "is_semi_empirical", Kind: KindBool},
		{Name: "is_theoretical", Kind: KindBool},
		{Name: "isoelectonic_sequence", Kind: KindText},
		{Name: "references", Kind: KindText},
		{Name: "species_name", Kind: KindText},
	},
	TableOxidationStates: {
		{Name: "id", Kind: KindInt},
		{Name: "atomic_number", Kind: KindInt},
		{Name: "oxidation_state", Kind: KindInt},
		{Name: "category", Kind: KindText},
	},
	TableIsotopes: {
		{Name: "id", Kind: KindInt},
		{Name: "atomic_number", Kind: KindInt},
		{Name: "mass_number", Kind: KindInt},
		{Name: "mass", Kind: KindFloat},
		{Name: "mass_uncertainty", Kind: KindFloat},
		{Name: "abundance", Kind: KindFloat},
		{Name: "abundance_uncertainty", Kind: KindFloat},
		{Name: "is_radioactive", Kind: KindBool},
		{Name: "half_life", Kind: KindFloat},
		{Name: "half_life_uncertainty", Kind: KindFloat},
		{Name: "half_life_unit", Kind: KindText},
		{Name: "spin", Kind: KindFloat},
		{Name: "parity", Kind: KindText},
		{Name: "g_factor", Kind: KindFloat},
		{Name: "g_factor_uncertainty", Kind: KindFloat},
		{Name: "quadrupole_moment", Kind: KindFloat},
		{Name: "quadrupole_moment_uncertainty", Kind: KindFloat},
		{Name: "discovery_year", Kind: KindInt},
	},
	TableIsotopeDecayModes: {
		{Name: "id", Kind: KindInt},
		{Name: "isotope_id", Kind: KindInt},
		{Name: "mode", Kind: KindText},
		{Name: "relation", Kind: KindText},
		{Name: "intensity", Kind: KindFloat},
		{Name: "is_allowed_not_observed", Kind: KindBool},
		{Name: "is_observed_intensity_unknown", Kind: KindBool},
	},
	TableIonicRadii: {
		{Name: "id", Kind: KindInt},
		{Name: "atomic_number", Kind: KindInt},
		{Name: "charge", Kind: KindInt},
		{Name: "coordination", Kind: KindText},
		{Name: "spin", Kind: KindText},
		{Name: "crystal_radius", Kind: KindFloat},
		{Name: "ionic_radius", Kind: KindFloat},
		{Name: "econf", Kind: KindText},
		{Name: "origin", Kind: KindText},
		{Name: "most_reliable", Kind: KindBool},
	},
	TableScreeningConstants: {
		{Name: "id", Kind: KindInt},
		{Name: "atomic_number", Kind: KindInt},
		{Name: "n", Kind: KindInt},
		{Name: "s", Kind: KindText},
		{Name: "screening", Kind: KindFloat},
	},
	TablePhaseTransitions: {
		{Name: "id", Kind: KindInt},
		{Name: "atomic_number", Kind: KindInt},
		{Name: "allotrope", Kind: KindText},
		{Name: "melting_point", Kind: KindFloat},
		{Name: "boiling_point", Kind: KindFloat},
		{Name: "critical_temperature", Kind: KindFloat},
		{Name: "critical_pressure", Kind: KindFloat},
		{Name: "triple_point_temperature", Kind: KindFloat},
		{Name: "triple_point_pressure", Kind: KindFloat},
		{Name: "is_sublimation_point", Kind: KindBool},
		{Name: "is_transition", Kind: KindBool},
	},
	TableScatteringFactors: {
		{Name: "id", Kind: KindInt},
		{Name: "atomic_number", Kind: KindInt},
		{Name: "energy", Kind: KindFloat},
		{Name: "f1", Kind: KindFloat},
		{Name: "f2", Kind: KindFloat},
	},
	TablePropertyMetadata: {
		{Name: "id", Kind: KindInt},
		{Name: "attribute_name", Kind: KindText},
		{Name: "category", Kind: KindText},
		{Name: "class_name", Kind: KindText},
		{Name: "column_name", Kind: KindText},
		{Name: "table_name", Kind: KindText},
		{Name: "unit", Kind: KindText},
		{Name: "description", Kind: KindText},
		{Name: "annotations", Kind: KindText},
		{Name: "citation_keys", Kind: KindText},
		{Name: "value_origin", Kind: KindText},
	},
}

func elementTableColumns() []TableColumn {
	cols := make([]TableColumn, 0, len(elementColumns))
	for _, c := range elementColumns {
		cols = append(cols, TableColumn{Name: c.Name, Kind: c.Kind})
	}
	return cols
}

// TableNames returns the whitelist of reference tables, sorted.
func TableNames() []Table {
	names := make([]Table, 0, len(tableSchemas))
	for t := range tableSchemas {
		names = append(names, t)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// TableSchema returns the column layout of a reference table. Unknown names
// fail with an UnknownTableError enumerating the whitelist.
func TableSchema(table Table) ([]TableColumn, error) {
	schema, ok := tableSchemas[table]
	if !ok {
		return nil, UnknownTableError{Table: table}
	}
	out := make([]TableColumn, len(schema))
	copy(out, schema)
	return out, nil
}
