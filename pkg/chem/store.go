package chem

import "context"

// Store is the read-only boundary to the persistence collaborator. Every
// returned element is fully populated: owned child collections attached and
// the Group/Series references resolved. Implementations hand out independent
// read views per call; the engine never writes back.
type Store interface {
	// Element returns the element with the given atomic number, failing
	// with NotFound when it is outside the corpus.
	Element(ctx context.Context, atomicNumber int) (*Element, error)
	// ElementBySymbol returns the element with the given symbol.
	ElementBySymbol(ctx context.Context, symbol string) (*Element, error)
	// Elements returns every element, ascending by atomic number.
	Elements(ctx context.Context) ([]*Element, error)
	// ElementsByGroup returns the elements of one periodic-table group,
	// ascending by atomic number.
	ElementsByGroup(ctx context.Context, group int) ([]*Element, error)
	// TableRows returns one reference table as flat cell maps in stored
	// order, validating the name against the whitelist.
	TableRows(ctx context.Context, table Table) ([]map[string]any, error)
}
