package chem

import (
	"fmt"
	"math"
	"strconv"
)

// MassNumber returns the mass number of the representative isotope: among
// isotopes with a known natural abundance the most abundant one, ties broken
// by the smallest mass number. When no isotope carries abundance data the
// first stored isotope stands in, and an element without isotope records
// falls back to the rounded atomic weight (half away from zero).
func (e *Element) MassNumber() int {
	if len(e.Isotopes) == 0 {
		if e.AtomicWeight == nil {
			return 0
		}
		return int(math.Round(*e.AtomicWeight))
	}
	best := -1
	for _, iso := range e.Isotopes {
		if iso.Abundance == nil {
			continue
		}
		if best < 0 {
			best = iso.MassNumber
			continue
		}
		cur := e.mustIsotope(best)
		switch {
		case *iso.Abundance > *cur.Abundance:
			best = iso.MassNumber
		case *iso.Abundance == *cur.Abundance && iso.MassNumber < best:
			best = iso.MassNumber
		}
	}
	if best >= 0 {
		return best
	}
	return e.Isotopes[0].MassNumber
}

func (e *Element) mustIsotope(massNumber int) *Isotope {
	for i := range e.Isotopes {
		if e.Isotopes[i].MassNumber == massNumber {
			return &e.Isotopes[i]
		}
	}
	return nil
}

// Isotope returns the stored isotope with the given mass number, failing
// with NotFound when the element has no such record.
func (e *Element) Isotope(massNumber int) (*Isotope, error) {
	if iso := e.mustIsotope(massNumber); iso != nil {
		return iso, nil
	}
	return nil, NotFoundError{Kind: "isotope", Key: fmt.Sprintf("%s-%d", e.Symbol, massNumber)}
}

// MassStr renders the atomic weight the way the periodic table prints it:
// the number of decimals follows the stored uncertainty (capped at five,
// three when no uncertainty is known) and radioactive elements are
// bracketed. An element without a stored weight renders empty.
func (e *Element) MassStr() string {
	if e.AtomicWeight == nil {
		return ""
	}
	radioactive := e.IsRadioactive != nil && *e.IsRadioactive
	if e.AtomicWeightUncertainty == nil {
		if radioactive {
			return fmt.Sprintf("[%.0f]", *e.AtomicWeight)
		}
		return strconv.FormatFloat(*e.AtomicWeight, 'f', 3, 64)
	}
	dec := int(math.Abs(math.Floor(math.Log10(math.Abs(*e.AtomicWeightUncertainty)))))
	if dec > 5 {
		dec = 5
	}
	if radioactive {
		return fmt.Sprintf("[%.*f]", dec, *e.AtomicWeight)
	}
	return strconv.FormatFloat(*e.AtomicWeight, 'f', dec, 64)
}
