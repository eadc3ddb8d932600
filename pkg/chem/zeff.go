package chem

import (
	"strings"

	"periodica/pkg/econf"
)

// ZeffMethod selects how the screening constant behind an effective nuclear
// charge is obtained.
type ZeffMethod string

const (
	// ZeffSlater computes the screening constant from Slater's rules over
	// the element's electronic configuration.
	ZeffSlater ZeffMethod = "slater"
	// ZeffClementi looks the screening constant up among the stored
	// Clementi-Raimondi values; a missing record yields a nil result.
	ZeffClementi ZeffMethod = "clementi"
)

// ScreeningKey identifies the subshell a stored screening constant applies to.
type ScreeningKey struct {
	N       int
	Orbital string
}

// ZeffOptions selects the subshell and method for an effective nuclear
// charge. Zero values mean defaults: the maximum occupied principal quantum
// number, the highest-angular-momentum orbital of that shell, and the Slater
// method.
type ZeffOptions struct {
	N             int
	Orbital       string
	Method        ZeffMethod
	ExtraElectron bool
}

// ScreeningMap builds the (n, orbital) to screening-constant mapping from the
// element's stored records. Built per call; never cached.
func (e *Element) ScreeningMap() map[ScreeningKey]float64 {
	m := make(map[ScreeningKey]float64, len(e.ScreeningConstants))
	for _, sc := range e.ScreeningConstants {
		m[ScreeningKey{N: sc.N, Orbital: sc.Orbital}] = sc.Screening
	}
	return m
}

// Zeff returns the effective nuclear charge felt by an electron in the
// selected subshell, atomic number minus the screening constant. Under the
// clementi method a missing stored constant yields (nil, nil): absent data is
// not an error. Malformed options fail with InvalidArgument; a malformed
// configuration string fails with the parser's error.
func (e *Element) Zeff(opts ZeffOptions) (*float64, error) {
	if opts.N < 0 {
		return nil, invalidArgf("n", "principal quantum number should be a positive integer, got: %d", opts.N)
	}
	conf, err := e.Config()
	if err != nil {
		return nil, err
	}
	n := opts.N
	if n == 0 {
		n = conf.MaxN()
	}
	orbital := opts.Orbital
	if orbital == "" {
		o, ok := conf.MaxL(n)
		if !ok {
			return nil, invalidArgf("n", "shell %d is not occupied", n)
		}
		orbital = o
	} else if econf.AngularMomentum(orbital) < 0 {
		return nil, invalidArgf("orbital", "should be one of %s", strings.Join(econf.Orbitals, ", "))
	}
	method := opts.Method
	if method == "" {
		method = ZeffSlater
	}
	switch ZeffMethod(strings.ToLower(string(method))) {
	case ZeffSlater:
		sigma, err := conf.SlaterScreening(n, orbital, opts.ExtraElectron)
		if err != nil {
			return nil, err
		}
		z := float64(e.AtomicNumber) - sigma
		return &z, nil
	case ZeffClementi:
		sc, ok := e.ScreeningMap()[ScreeningKey{N: n, Orbital: orbital}]
		if !ok {
			return nil, nil
		}
		z := float64(e.AtomicNumber) - sc
		return &z, nil
	default:
		return nil, invalidArgf("method", "should be one of: %q, %q", ZeffSlater, ZeffClementi)
	}
}

// NValence returns the number of valence electrons. An empty method uses the
// full electron count rules; "simple" treats every d-block element as having
// two valence electrons.
func (e *Element) NValence(method string) (int, error) {
	conf, err := e.Config()
	if err != nil {
		return 0, err
	}
	return conf.Valence(e.Block, e.Period, method)
}
