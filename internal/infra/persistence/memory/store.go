// Package memory serves the reference corpus from a linked refdata.Dataset.
// It is the default driver and backs the SQL drivers after hydration.
package memory

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"

	"periodica/internal/refdata"
	"periodica/pkg/chem"
)

var _ chem.Store = (*Store)(nil)

// Store is an immutable in-memory corpus. Lookups hand out deep copies so
// callers can never mutate the shared state.
type Store struct {
	mu       sync.RWMutex
	dataset  *refdata.Dataset
	byNumber map[int]*chem.Element
	bySymbol map[string]*chem.Element
}

// NewStore wraps a linked dataset. The dataset must have been through
// Link(); the store indexes but never re-sorts it.
func NewStore(dataset *refdata.Dataset) *Store {
	s := &Store{
		dataset:  dataset,
		byNumber: make(map[int]*chem.Element, len(dataset.Elements)),
		bySymbol: make(map[string]*chem.Element, len(dataset.Elements)),
	}
	for i := range dataset.Elements {
		e := &dataset.Elements[i]
		s.byNumber[e.AtomicNumber] = e
		s.bySymbol[e.Symbol] = e
	}
	return s
}

// Open loads the embedded seed corpus into a fresh store.
func Open() (*Store, error) {
	dataset, err := refdata.Load()
	if err != nil {
		return nil, err
	}
	return NewStore(dataset), nil
}

// Dataset exposes the underlying corpus for drivers that persist it.
func (s *Store) Dataset() *refdata.Dataset { return s.dataset }

func (s *Store) Element(_ context.Context, atomicNumber int) (*chem.Element, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.byNumber[atomicNumber]
	if !ok {
		return nil, chem.NotFoundError{Kind: "element", Key: strconv.Itoa(atomicNumber)}
	}
	return cloneElement(e), nil
}

func (s *Store) ElementBySymbol(_ context.Context, symbol string) (*chem.Element, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.bySymbol[symbol]
	if !ok {
		// a lone case slip is unambiguous, so retry case-insensitively
		for stored, candidate := range s.bySymbol {
			if strings.EqualFold(stored, symbol) {
				e, ok = candidate, true
				break
			}
		}
	}
	if !ok {
		return nil, chem.NotFoundError{Kind: "element", Key: symbol}
	}
	return cloneElement(e), nil
}

func (s *Store) Elements(_ context.Context) ([]*chem.Element, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*chem.Element, 0, len(s.dataset.Elements))
	for i := range s.dataset.Elements {
		out = append(out, cloneElement(&s.dataset.Elements[i]))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AtomicNumber < out[j].AtomicNumber })
	return out, nil
}

func (s *Store) ElementsByGroup(_ context.Context, group int) ([]*chem.Element, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*chem.Element
	for i := range s.dataset.Elements {
		e := &s.dataset.Elements[i]
		if e.GroupID != nil && *e.GroupID == group {
			out = append(out, cloneElement(e))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AtomicNumber < out[j].AtomicNumber })
	return out, nil
}

func (s *Store) TableRows(_ context.Context, table chem.Table) ([]map[string]any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dataset.TableRows(table)
}

func cloneElement(e *chem.Element) *chem.Element {
	out := *e
	out.IonizationEnergies = append([]chem.IonizationEnergy(nil), e.IonizationEnergies...)
	out.OxidationStateList = append([]chem.OxidationState(nil), e.OxidationStateList...)
	out.IonicRadii = append([]chem.IonicRadius(nil), e.IonicRadii...)
	out.ScreeningConstants = append([]chem.ScreeningConstant(nil), e.ScreeningConstants...)
	out.PhaseTransitions = append([]chem.PhaseTransition(nil), e.PhaseTransitions...)
	out.ScatteringFactors = append([]chem.ScatteringFactor(nil), e.ScatteringFactors...)
	if e.Isotopes != nil {
		out.Isotopes = make([]chem.Isotope, len(e.Isotopes))
		for i, iso := range e.Isotopes {
			iso.DecayModes = append([]chem.IsotopeDecayMode(nil), iso.DecayModes...)
			out.Isotopes[i] = iso
		}
	}
	if e.Group != nil {
		g := *e.Group
		out.Group = &g
	}
	if e.Series != nil {
		sr := *e.Series
		out.Series = &sr
	}
	return &out
}
