package chem

import (
	"fmt"
	"math"
)

// Warning is a non-fatal data-quality condition carried back to the caller
// alongside a nil result instead of being raised as an error.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (w Warning) String() string { return w.Code + ": " + w.Message }

// WarnAllotropeMismatch marks two allotropes whose phase-transition
// temperatures disagree beyond tolerance.
const WarnAllotropeMismatch = "allotrope_mismatch"

// relClose reports whether a and b agree within 1% relative tolerance.
func relClose(a, b float64) bool {
	return math.Abs(a-b) <= 0.01*math.Max(math.Abs(a), math.Abs(b))
}

// reconcile turns the element's per-allotrope phase records into a single
// scalar. One record gives its value; two records give the first value when
// both are present and agree within 1%, and a warning plus nil when they
// disagree; a missing value on either side is missing data, nil without a
// warning. Zero records, or more than two, give nil: the corpus never stores
// more than two allotropes per element and the policy is deliberately
// narrow.
func (e *Element) reconcile(kind string, pick func(PhaseTransition) *float64) (*float64, *Warning) {
	switch len(e.PhaseTransitions) {
	case 1:
		return pick(e.PhaseTransitions[0]), nil
	case 2:
		a, b := pick(e.PhaseTransitions[0]), pick(e.PhaseTransitions[1])
		if a == nil || b == nil {
			return nil, nil
		}
		if relClose(*a, *b) {
			return a, nil
		}
		return nil, &Warning{
			Code: WarnAllotropeMismatch,
			Message: fmt.Sprintf("%s has multiple allotropes with different %ss, check its phase transitions for details",
				e.Symbol, kind),
		}
	default:
		return nil, nil
	}
}

// MeltingPoint reconciles the element's per-allotrope melting points into a
// single scalar, with a warning when two allotropes disagree beyond 1%.
func (e *Element) MeltingPoint() (*float64, *Warning) {
	return e.reconcile("melting point", func(pt PhaseTransition) *float64 { return pt.MeltingPoint })
}

// BoilingPoint reconciles the element's per-allotrope boiling points into a
// single scalar, with a warning when two allotropes disagree beyond 1%.
func (e *Element) BoilingPoint() (*float64, *Warning) {
	return e.reconcile("boiling point", func(pt PhaseTransition) *float64 { return pt.BoilingPoint })
}
