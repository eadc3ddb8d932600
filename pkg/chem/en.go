package chem

import (
	"math"
	"sort"
	"strings"
)

// Scale names one electronegativity scale from the fixed registry.
type Scale string

const (
	ScaleAllen               Scale = "allen"
	ScaleAllredRochow        Scale = "allred-rochow"
	ScaleCottrellSutton      Scale = "cottrell-sutton"
	ScaleGhosh               Scale = "ghosh"
	ScaleGordy               Scale = "gordy"
	ScaleGunnarssonLundqvist Scale = "gunnarsson-lundqvist"
	ScaleLiXue               Scale = "li-xue"
	ScaleMartynovBatsanov    Scale = "martynov-batsanov"
	ScaleMiedema             Scale = "miedema"
	ScaleMullay              Scale = "mullay"
	ScaleMulliken            Scale = "mulliken"
	ScaleNagle               Scale = "nagle"
	ScalePauling             Scale = "pauling"
	ScaleRoblesBartolotti    Scale = "robles-bartolotti"
	ScaleSanderson           Scale = "sanderson"
)

// DefaultRadiusColumn is the radius the radius-derived scales use unless the
// caller selects another float element column.
const DefaultRadiusColumn = "covalent_radius_pyykko"

// rydberg is the Rydberg unit of energy in eV, the normalization of the
// Li-Xue scale.
const rydberg = 13.605693009

// ENOptions carries the per-scale parameters of an electronegativity
// computation. Zero values select the documented defaults.
type ENOptions struct {
	// Charge selects the ion for the mulliken and li-xue scales.
	Charge int
	// Radius names the element radius column used by the radius-derived
	// scales and sanderson. Empty means DefaultRadiusColumn.
	Radius string
	// RadiusKind selects ionic_radius or crystal_radius for li-xue.
	// Empty means crystal_radius.
	RadiusKind string
	// NobleGasCurve is the group-18 reference curve sanderson interpolates
	// on. It is supplied by the caller because entities never query across
	// element boundaries themselves.
	NobleGasCurve RefCurve
}

// ENResult is the outcome of one scale computation: a scalar for every scale
// except li-xue, which yields one value per (coordination, spin) radius
// variant of the selected ion.
type ENResult struct {
	Value  *float64               `json:"value,omitempty"`
	PerIon map[RadiusKey]*float64 `json:"per_ion,omitempty"`
}

func scalar(v *float64) ENResult { return ENResult{Value: v} }

var scaleRegistry = map[Scale]func(*Element, ENOptions) (ENResult, error){
	ScaleAllen: func(e *Element, _ ENOptions) (ENResult, error) { return scalar(e.EnAllen), nil },
	ScaleGhosh: func(e *Element, _ ENOptions) (ENResult, error) { return scalar(e.EnGhosh), nil },
	ScaleGunnarssonLundqvist: func(e *Element, _ ENOptions) (ENResult, error) {
		return scalar(e.EnGunnarssonLundqvist), nil
	},
	ScaleMiedema: func(e *Element, _ ENOptions) (ENResult, error) { return scalar(e.EnMiedema), nil },
	ScaleMullay:  func(e *Element, _ ENOptions) (ENResult, error) { return scalar(e.EnMullay), nil },
	ScalePauling: func(e *Element, _ ENOptions) (ENResult, error) { return scalar(e.EnPauling), nil },
	ScaleRoblesBartolotti: func(e *Element, _ ENOptions) (ENResult, error) {
		return scalar(e.EnRoblesBartolotti), nil
	},
	ScaleAllredRochow: func(e *Element, opts ENOptions) (ENResult, error) {
		v, err := e.ENAllredRochow(opts.Radius)
		return scalar(v), err
	},
	ScaleCottrellSutton: func(e *Element, opts ENOptions) (ENResult, error) {
		v, err := e.ENCottrellSutton(opts.Radius)
		return scalar(v), err
	},
	ScaleGordy: func(e *Element, opts ENOptions) (ENResult, error) {
		v, err := e.ENGordy(opts.Radius)
		return scalar(v), err
	},
	ScaleLiXue: func(e *Element, opts ENOptions) (ENResult, error) {
		m, err := e.ENLiXue(opts.Charge, opts.RadiusKind)
		return ENResult{PerIon: m}, err
	},
	ScaleMartynovBatsanov: func(e *Element, _ ENOptions) (ENResult, error) {
		v, err := e.ENMartynovBatsanov()
		return scalar(v), err
	},
	ScaleMulliken: func(e *Element, opts ENOptions) (ENResult, error) {
		v, err := e.ENMulliken(opts.Charge)
		return scalar(v), err
	},
	ScaleNagle: func(e *Element, _ ENOptions) (ENResult, error) {
		v, err := e.ENNagle()
		return scalar(v), err
	},
	ScaleSanderson: func(e *Element, opts ENOptions) (ENResult, error) {
		v, err := e.ENSanderson(opts.Radius, opts.NobleGasCurve)
		return scalar(v), err
	},
}

// Scales returns every registered electronegativity scale, sorted.
func Scales() []Scale {
	out := make([]Scale, 0, len(scaleRegistry))
	for s := range scaleRegistry {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ScaleLabel renders a scale's display label, each hyphen-separated part
// capitalized: "li-xue" becomes "Li-Xue".
func ScaleLabel(scale Scale) string {
	parts := strings.Split(string(scale), "-")
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, "-")
}

// Electronegativity dispatches a scale computation by registry name,
// failing with UnknownScale (its message enumerates the registry) for names
// outside the fixed set.
func (e *Element) Electronegativity(scale Scale, opts ENOptions) (ENResult, error) {
	fn, ok := scaleRegistry[scale]
	if !ok {
		return ENResult{}, UnknownScaleError{Scale: scale}
	}
	return fn(e, opts)
}

// radiusAttr resolves the radius column for the radius-derived scales.
func (e *Element) radiusAttr(radius string) (*float64, error) {
	if radius == "" {
		radius = DefaultRadiusColumn
	}
	return e.FloatAttr(radius)
}

// zeffAndRadius gathers the default Slater effective charge and the selected
// radius, the shared inputs of the Allred-Rochow family.
func (e *Element) zeffAndRadius(radius string) (zeff, r *float64, err error) {
	r, err = e.radiusAttr(radius)
	if err != nil {
		return nil, nil, err
	}
	zeff, err = e.Zeff(ZeffOptions{})
	if err != nil {
		return nil, nil, err
	}
	return zeff, r, nil
}

// ENAllredRochow computes chi = Zeff/r^2, nil when the radius is absent.
func (e *Element) ENAllredRochow(radius string) (*float64, error) {
	zeff, r, err := e.zeffAndRadius(radius)
	if err != nil || zeff == nil || r == nil {
		return nil, err
	}
	v := *zeff / (*r * *r)
	return &v, nil
}

// ENCottrellSutton computes chi = sqrt(Zeff/r), nil when the radius is
// absent.
func (e *Element) ENCottrellSutton(radius string) (*float64, error) {
	zeff, r, err := e.zeffAndRadius(radius)
	if err != nil || zeff == nil || r == nil {
		return nil, err
	}
	v := math.Sqrt(*zeff / *r)
	return &v, nil
}

// ENGordy computes chi = Zeff/r, nil when the radius is absent.
func (e *Element) ENGordy(radius string) (*float64, error) {
	zeff, r, err := e.zeffAndRadius(radius)
	if err != nil || zeff == nil || r == nil {
		return nil, err
	}
	v := *zeff / *r
	return &v, nil
}

// ENMulliken computes the absolute electronegativity (I+A)/2 with the
// charge-dependent input rule shared with hardness, nil when either input is
// missing.
func (e *Element) ENMulliken(charge int) (*float64, error) {
	ip, ea, err := e.ionPair(charge)
	if err != nil {
		return nil, err
	}
	if ip == nil || ea == nil {
		return nil, nil
	}
	v := (*ip + *ea) * 0.5
	return &v, nil
}

// ENMartynovBatsanov computes chi = sqrt(mean of I_1..I_nv) over the valence
// electrons, nil when any required ionization degree is missing.
func (e *Element) ENMartynovBatsanov() (*float64, error) {
	nv, err := e.NValence("simple")
	if err != nil {
		return nil, err
	}
	energies := e.IonEnergies()
	var sum float64
	for k := 1; k <= nv; k++ {
		v, ok := energies[k]
		if !ok {
			return nil, nil
		}
		sum += v
	}
	if nv == 0 {
		return nil, nil
	}
	v := math.Sqrt(sum / float64(nv))
	return &v, nil
}

// ENNagle computes chi = (nv/alpha)^(1/3) from the valence-electron count
// and the dipole polarizability, nil when the polarizability is missing.
func (e *Element) ENNagle() (*float64, error) {
	if e.DipolePolarizability == nil {
		return nil, nil
	}
	nv, err := e.NValence("")
	if err != nil {
		return nil, err
	}
	v := math.Cbrt(float64(nv) / *e.DipolePolarizability)
	return &v, nil
}

// ENSanderson computes chi = (r_ng/r)^3 where r_ng is the noble-gas radius
// interpolated at the element's atomic number from the supplied group-18
// curve. Nil when the element's radius is absent or the curve has fewer
// than two points.
func (e *Element) ENSanderson(radius string, curve RefCurve) (*float64, error) {
	r, err := e.radiusAttr(radius)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, nil
	}
	rng, ok := curve.Interpolate(float64(e.AtomicNumber))
	if !ok {
		return nil, nil
	}
	ratio := rng / *r
	v := ratio * ratio * ratio
	return &v, nil
}

// liXueNEff maps the maximum principal quantum number to the effective
// principal quantum number of the Li-Xue scale.
var liXueNEff = map[int]float64{1: 0.85, 2: 1.99, 3: 2.89, 4: 3.45, 5: 3.85, 6: 4.36, 7: 4.99}

// ENLiXue computes the Li-Xue electronegativity for the ion of the given
// nonzero charge, one value per (coordination, spin) radius variant:
// n*_eff * sqrt(I/Ry) * 100 / r. Entries with a missing ionization energy or
// radius are nil; an ion without stored radii yields an empty map. A zero
// charge or unknown radius kind fails with InvalidArgument.
func (e *Element) ENLiXue(charge int, radiusKind string) (map[RadiusKey]*float64, error) {
	if charge == 0 {
		return nil, invalidArgf("charge", "should be a nonzero integer, got: %d", charge)
	}
	if radiusKind == "" {
		radiusKind = "crystal_radius"
	}
	if radiusKind != "ionic_radius" && radiusKind != "crystal_radius" {
		return nil, invalidArgf("radius", "%q not found, available values are: %q, %q",
			radiusKind, "ionic_radius", "crystal_radius")
	}
	conf, err := e.Config()
	if err != nil {
		return nil, err
	}
	var ie *float64
	if v, ok := e.IonEnergies()[charge]; ok {
		ie = &v
	}
	nEff := liXueNEff[conf.MaxN()]
	out := make(map[RadiusKey]*float64)
	for _, ir := range e.IonicRadii {
		if ir.Charge != charge {
			continue
		}
		r := ir.CrystalRadius
		if radiusKind == "ionic_radius" {
			r = ir.IonicRadius
		}
		key := RadiusKey{Coordination: ir.Coordination, Spin: ir.Spin}
		if ie == nil || r == nil || *r == 0 {
			out[key] = nil
			continue
		}
		v := nEff * math.Sqrt(*ie/rydberg) * 100.0 / *r
		out[key] = &v
	}
	return out, nil
}
