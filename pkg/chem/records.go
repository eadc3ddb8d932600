package chem

import "fmt"

// Group is a periodic-table group lookup row, referenced many-to-one from
// elements.
type Group struct {
	GroupID int    `json:"group_id"`
	Symbol  string `json:"symbol"`
	Name    string `json:"name"`
}

// Series is a display-series lookup row (name and color), referenced
// many-to-one from elements.
type Series struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// IonizationEnergy is one stored ionization measurement, unique per
// (atomic_number, ion_charge).
type IonizationEnergy struct {
	ID                    int      `json:"id,omitempty"`
	AtomicNumber          int      `json:"atomic_number"`
	IonCharge             int      `json:"ion_charge"`
	Energy                *float64 `json:"ionization_energy,omitempty"`
	Uncertainty           *float64 `json:"uncertainty,omitempty"`
	GroundConfiguration   *string  `json:"ground_configuration,omitempty"`
	GroundLevel           *string  `json:"ground_level,omitempty"`
	GroundShells          *string  `json:"ground_shells,omitempty"`
	IonizedLevel          *string  `json:"ionized_level,omitempty"`
	IsSemiEmpirical       *bool    `json:"is_semi_empirical,omitempty"`
	IsTheoretical         *bool    `json:"is_theoretical,omitempty"`
	IsoelectronicSequence *string  `json:"isoelectonic_sequence,omitempty"`
	References            *string  `json:"references,omitempty"`
	SpeciesName           *string  `json:"species_name,omitempty"`
}

// Degree returns the ionization degree, the number of electrons removed.
func (ie IonizationEnergy) Degree() int { return ie.IonCharge + 1 }

// OxidationStateCategory partitions oxidation states into the common set
// and the extended set. CategoryAll is the union view and is never stored.
type OxidationStateCategory string

const (
	CategoryMain     OxidationStateCategory = "main"
	CategoryExtended OxidationStateCategory = "extended"
	CategoryAll      OxidationStateCategory = "all"
)

// OxidationState is one stored oxidation state of an element.
type OxidationState struct {
	ID           int                    `json:"id,omitempty"`
	AtomicNumber int                    `json:"atomic_number"`
	State        int                    `json:"oxidation_state"`
	Category     OxidationStateCategory `json:"category"`
}

// Isotope is one stored isotope, unique per (atomic_number, mass_number).
type Isotope struct {
	ID                          int                `json:"id,omitempty"`
	AtomicNumber                int                `json:"atomic_number"`
	MassNumber                  int                `json:"mass_number"`
	Mass                        *float64           `json:"mass,omitempty"`
	MassUncertainty             *float64           `json:"mass_uncertainty,omitempty"`
	Abundance                   *float64           `json:"abundance,omitempty"`
	AbundanceUncertainty        *float64           `json:"abundance_uncertainty,omitempty"`
	IsRadioactive               *bool              `json:"is_radioactive,omitempty"`
	HalfLife                    *float64           `json:"half_life,omitempty"`
	HalfLifeUncertainty         *float64           `json:"half_life_uncertainty,omitempty"`
	HalfLifeUnit                *string            `json:"half_life_unit,omitempty"`
	Spin                        *float64           `json:"spin,omitempty"`
	Parity                      *string            `json:"parity,omitempty"`
	GFactor                     *float64           `json:"g_factor,omitempty"`
	GFactorUncertainty          *float64           `json:"g_factor_uncertainty,omitempty"`
	QuadrupoleMoment            *float64           `json:"quadrupole_moment,omitempty"`
	QuadrupoleMomentUncertainty *float64           `json:"quadrupole_moment_uncertainty,omitempty"`
	DiscoveryYear               *int               `json:"discovery_year,omitempty"`
	DecayModes                  []IsotopeDecayMode `json:"decay_modes,omitempty"`
}

func (i Isotope) String() string {
	return fmt.Sprintf("isotope Z=%d A=%d", i.AtomicNumber, i.MassNumber)
}

// IsotopeDecayMode is one decay channel of an isotope.
type IsotopeDecayMode struct {
	ID                         int      `json:"id,omitempty"`
	IsotopeID                  int      `json:"isotope_id"`
	Mode                       string   `json:"mode"`
	Relation                   *string  `json:"relation,omitempty"`
	Intensity                  *float64 `json:"intensity,omitempty"`
	IsAllowedNotObserved       *bool    `json:"is_allowed_not_observed,omitempty"`
	IsObservedIntensityUnknown *bool    `json:"is_observed_intensity_unknown,omitempty"`
}

// IonicRadius is one stored ionic/crystal radius variant, keyed by
// (atomic_number, charge, coordination, spin).
type IonicRadius struct {
	ID            int      `json:"id,omitempty"`
	AtomicNumber  int      `json:"atomic_number"`
	Charge        int      `json:"charge"`
	Coordination  string   `json:"coordination"`
	Spin          string   `json:"spin,omitempty"`
	CrystalRadius *float64 `json:"crystal_radius,omitempty"`
	IonicRadius   *float64 `json:"ionic_radius,omitempty"`
	Econf         *string  `json:"econf,omitempty"`
	Origin        *string  `json:"origin,omitempty"`
	MostReliable  *bool    `json:"most_reliable,omitempty"`
}

// RadiusKey identifies one (coordination, spin) radius variant of an ion.
type RadiusKey struct {
	Coordination string `json:"coordination"`
	Spin         string `json:"spin,omitempty"`
}

func (k RadiusKey) String() string {
	if k.Spin == "" {
		return k.Coordination
	}
	return k.Coordination + "," + k.Spin
}

// MarshalText lets maps keyed by RadiusKey serialize to JSON.
func (k RadiusKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ScreeningConstant is one stored screening constant for subshell (n, s).
type ScreeningConstant struct {
	ID           int     `json:"id,omitempty"`
	AtomicNumber int     `json:"atomic_number"`
	N            int     `json:"n"`
	Orbital      string  `json:"s"`
	Screening    float64 `json:"screening"`
}

// PhaseTransition is one per-allotrope set of phase-transition points.
type PhaseTransition struct {
	ID                     int      `json:"id,omitempty"`
	AtomicNumber           int      `json:"atomic_number"`
	Allotrope              *string  `json:"allotrope,omitempty"`
	MeltingPoint           *float64 `json:"melting_point,omitempty"`
	BoilingPoint           *float64 `json:"boiling_point,omitempty"`
	CriticalTemperature    *float64 `json:"critical_temperature,omitempty"`
	CriticalPressure       *float64 `json:"critical_pressure,omitempty"`
	TriplePointTemperature *float64 `json:"triple_point_temperature,omitempty"`
	TriplePointPressure    *float64 `json:"triple_point_pressure,omitempty"`
	IsSublimationPoint     *bool    `json:"is_sublimation_point,omitempty"`
	IsTransition           *bool    `json:"is_transition,omitempty"`
}

// ScatteringFactor is one stored anomalous scattering factor sample at a
// given energy.
type ScatteringFactor struct {
	ID           int      `json:"id,omitempty"`
	AtomicNumber int      `json:"atomic_number"`
	Energy       float64  `json:"energy"`
	F1           *float64 `json:"f1,omitempty"`
	F2           *float64 `json:"f2,omitempty"`
}

// ValueOrigin says whether a cataloged property is stored in the corpus or
// derived by the engine.
type ValueOrigin string

const (
	OriginStored   ValueOrigin = "stored"
	OriginComputed ValueOrigin = "computed"
)

// PropertyMetadata documents one property of the corpus: where it lives,
// its unit, and whether it is stored or computed.
type PropertyMetadata struct {
	ID            int         `json:"id,omitempty"`
	AttributeName string      `json:"attribute_name"`
	Category      *string     `json:"category,omitempty"`
	ClassName     string      `json:"class_name"`
	ColumnName    string      `json:"column_name"`
	TableName     string      `json:"table_name"`
	Unit          *string     `json:"unit,omitempty"`
	Description   *string     `json:"description,omitempty"`
	Annotations   *string     `json:"annotations,omitempty"`
	CitationKeys  *string     `json:"citation_keys,omitempty"`
	ValueOrigin   ValueOrigin `json:"value_origin"`
}
