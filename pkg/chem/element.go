// Package chem holds the reference entities of the periodic-table corpus and
// the derivation engine that turns stored measurements into secondary
// properties. Entities are passive, read-only records; every derived value
// is a pure function of the element and its owned child records. Missing
// measurements propagate as nil results, never as errors.
package chem

import (
	"fmt"
	"net/url"
	"strings"

	"periodica/pkg/econf"
)

// Element is the aggregate root of the corpus: one element identified by its
// immutable atomic number, carrying stored scalar measurements and owning
// its child records (one-to-many on atomic number).
type Element struct {
	AbundanceCrust             *float64 `json:"abundance_crust,omitempty"`
	AbundanceSea               *float64 `json:"abundance_sea,omitempty"`
	AtomicNumber               int      `json:"atomic_number"`
	AtomicRadius               *float64 `json:"atomic_radius,omitempty"`
	AtomicRadiusRahm           *float64 `json:"atomic_radius_rahm,omitempty"`
	AtomicWeight               *float64 `json:"atomic_weight,omitempty"`
	AtomicWeightUncertainty    *float64 `json:"atomic_weight_uncertainty,omitempty"`
	Block                      string   `json:"block"`
	CAS                        *string  `json:"cas,omitempty"`
	CovalentRadiusBragg        *float64 `json:"covalent_radius_bragg,omitempty"`
	CovalentRadiusCordero      *float64 `json:"covalent_radius_cordero,omitempty"`
	CovalentRadiusPyykko       *float64 `json:"covalent_radius_pyykko,omitempty"`
	CovalentRadiusPyykkoDouble *float64 `json:"covalent_radius_pyykko_double,omitempty"`
	CovalentRadiusPyykkoTriple *float64 `json:"covalent_radius_pyykko_triple,omitempty"`
	C6                         *float64 `json:"c6,omitempty"`
	C6GB                       *float64 `json:"c6_gb,omitempty"`
	CPKColor                   *string  `json:"cpk_color,omitempty"`
	Density                    *float64 `json:"density,omitempty"`
	Description                *string  `json:"description,omitempty"`
	DipolePolarizability       *float64 `json:"dipole_polarizability,omitempty"`
	DipolePolarizabilityUnc    *float64 `json:"dipole_polarizability_unc,omitempty"`
	Discoverers                *string  `json:"discoverers,omitempty"`
	DiscoveryLocation          *string  `json:"discovery_location,omitempty"`
	DiscoveryYear              *int     `json:"discovery_year,omitempty"`
	ElectronAffinity           *float64 `json:"electron_affinity,omitempty"`
	EnAllen                    *float64 `json:"en_allen,omitempty"`
	EnGhosh                    *float64 `json:"en_ghosh,omitempty"`
	EnMiedema                  *float64 `json:"en_miedema,omitempty"`
	EnMullay                   *float64 `json:"en_mullay,omitempty"`
	EnPauling                  *float64 `json:"en_pauling,omitempty"`
	EnGunnarssonLundqvist      *float64 `json:"en_gunnarsson_lundqvist,omitempty"`
	EnRoblesBartolotti         *float64 `json:"en_robles_bartolotti,omitempty"`
	Econf                      string   `json:"electronic_configuration"`
	EvaporationHeat            *float64 `json:"evaporation_heat,omitempty"`
	FusionHeat                 *float64 `json:"fusion_heat,omitempty"`
	GasBasicity                *float64 `json:"gas_basicity,omitempty"`
	GeochemicalClass           *string  `json:"geochemical_class,omitempty"`
	GlaweNumber                *int     `json:"glawe_number,omitempty"`
	GoldschmidtClass           *string  `json:"goldschmidt_class,omitempty"`
	GroupID                    *int     `json:"group_id,omitempty"`
	HeatOfFormation            *float64 `json:"heat_of_formation,omitempty"`
	IsMonoisotopic             *bool    `json:"is_monoisotopic,omitempty"`
	IsRadioactive              *bool    `json:"is_radioactive,omitempty"`
	JmolColor                  *string  `json:"jmol_color,omitempty"`
	LatticeConstant            *float64 `json:"lattice_constant,omitempty"`
	LatticeStructure           *string  `json:"lattice_structure,omitempty"`
	MendeleevNumber            *int     `json:"mendeleev_number,omitempty"`
	MetallicRadius             *float64 `json:"metallic_radius,omitempty"`
	MetallicRadiusC12          *float64 `json:"metallic_radius_c12,omitempty"`
	MiedemaMolarVolume         *float64 `json:"miedema_molar_volume,omitempty"`
	MiedemaElectronDensity     *float64 `json:"miedema_electron_density,omitempty"`
	MolarHeatCapacity          *float64 `json:"molar_heat_capacity,omitempty"`
	MolcasGVColor              *string  `json:"molcas_gv_color,omitempty"`
	Name                       string   `json:"name"`
	NameOrigin                 *string  `json:"name_origin,omitempty"`
	Period                     int      `json:"period"`
	PettiforNumber             *int     `json:"pettifor_number,omitempty"`
	PricePerKg                 *float64 `json:"price_per_kg,omitempty"`
	ProtonAffinity             *float64 `json:"proton_affinity,omitempty"`
	Sources                    *string  `json:"sources,omitempty"`
	SpecificHeatCapacity       *float64 `json:"specific_heat_capacity,omitempty"`
	Symbol                     string   `json:"symbol"`
	ThermalConductivity        *float64 `json:"thermal_conductivity,omitempty"`
	Uses                       *string  `json:"uses,omitempty"`
	VdwRadius                  *float64 `json:"vdw_radius,omitempty"`
	VdwRadiusAlvarez           *float64 `json:"vdw_radius_alvarez,omitempty"`
	VdwRadiusBondi             *float64 `json:"vdw_radius_bondi,omitempty"`
	VdwRadiusTruhlar           *float64 `json:"vdw_radius_truhlar,omitempty"`
	VdwRadiusRT                *float64 `json:"vdw_radius_rt,omitempty"`
	VdwRadiusBatsanov          *float64 `json:"vdw_radius_batsanov,omitempty"`
	VdwRadiusDreiding          *float64 `json:"vdw_radius_dreiding,omitempty"`
	VdwRadiusUFF               *float64 `json:"vdw_radius_uff,omitempty"`
	VdwRadiusMM3               *float64 `json:"vdw_radius_mm3,omitempty"`

	PoliticalStabilityOfTopProducer      *float64 `json:"political_stability_of_top_producer,omitempty"`
	PoliticalStabilityOfTopReserveHolder *float64 `json:"political_stability_of_top_reserve_holder,omitempty"`
	ProductionConcentration              *float64 `json:"production_concentration,omitempty"`
	RecyclingRate                        *string  `json:"recycling_rate,omitempty"`
	RelativeSupplyRisk                   *float64 `json:"relative_supply_risk,omitempty"`
	ReserveDistribution                  *float64 `json:"reserve_distribution,omitempty"`
	Substitutability                     *string  `json:"substitutability,omitempty"`
	Top3Producers                        *string  `json:"top_3_producers,omitempty"`
	Top3ReserveHolders                   *string  `json:"top_3_reserve_holders,omitempty"`

	SeriesID *int `json:"series_id,omitempty"`

	IonizationEnergies []IonizationEnergy  `json:"ionization_energies,omitempty"`
	OxidationStateList []OxidationState    `json:"oxidation_states,omitempty"`
	Isotopes           []Isotope           `json:"isotopes,omitempty"`
	IonicRadii         []IonicRadius       `json:"ionic_radii,omitempty"`
	ScreeningConstants []ScreeningConstant `json:"screening_constants,omitempty"`
	PhaseTransitions   []PhaseTransition   `json:"phase_transitions,omitempty"`
	ScatteringFactors  []ScatteringFactor  `json:"scattering_factors,omitempty"`

	Group  *Group  `json:"group,omitempty"`
	Series *Series `json:"series,omitempty"`
}

func (e *Element) String() string {
	return fmt.Sprintf("%d %s %s", e.AtomicNumber, e.Symbol, e.Name)
}

// Config parses the element's stored electronic configuration. The parse
// runs per call; malformed configurations fail deterministically.
func (e *Element) Config() (*econf.Configuration, error) {
	return econf.Parse(e.Econf)
}

// Mass is an alias for the stored atomic weight.
func (e *Element) Mass() *float64 { return e.AtomicWeight }

// SpecificHeat is an alias for the stored specific heat capacity.
func (e *Element) SpecificHeat() *float64 { return e.SpecificHeatCapacity }

// CovalentRadius returns the default covalent radius, the Pyykko single-bond
// value.
func (e *Element) CovalentRadius() *float64 { return e.CovalentRadiusPyykko }

// AtomicVolume returns atomic_weight/density in cm3/mol, nil when either
// input is absent.
func (e *Element) AtomicVolume() *float64 {
	if e.AtomicWeight == nil || e.Density == nil || *e.Density == 0 {
		return nil
	}
	v := *e.AtomicWeight / *e.Density
	return &v
}

// Electrons returns the electron count of the neutral atom.
func (e *Element) Electrons() int { return e.AtomicNumber }

// Protons returns the proton count.
func (e *Element) Protons() int { return e.AtomicNumber }

// Neutrons returns the neutron count of the representative isotope.
func (e *Element) Neutrons() int { return e.MassNumber() - e.Protons() }

// InChI returns the International Chemical Identifier of the bare element,
// in the exact format the corpus consumers expect.
func (e *Element) InChI() string { return "InchI=1S/" + e.Symbol }

// NISTWebbookURL returns the NIST Chemistry WebBook entry URL for the
// element. The path separator inside the identifier stays unescaped.
func (e *Element) NISTWebbookURL() string {
	quoted := strings.ReplaceAll(url.QueryEscape(e.InChI()), "%2F", "/")
	return "https://webbook.nist.gov/cgi/inchi/" + quoted
}
