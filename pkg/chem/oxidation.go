package chem

import (
	"fmt"
	"sort"
	"strings"
)

// OxidationStates returns the sorted oxidation states of the given category;
// CategoryAll is the union of main and extended. Any other category fails
// with InvalidArgument.
func (e *Element) OxidationStates(category OxidationStateCategory) ([]int, error) {
	switch category {
	case CategoryMain, CategoryExtended, CategoryAll:
	default:
		return nil, invalidArgf("category", "got %q, but allowed values are: %q, %q, %q",
			category, CategoryMain, CategoryExtended, CategoryAll)
	}
	var states []int
	for _, o := range e.OxidationStateList {
		if category == CategoryAll || o.Category == category {
			states = append(states, o.State)
		}
	}
	sort.Ints(states)
	return states, nil
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// oxideCoeffs returns the smallest-integer (metal, oxygen) coefficients of
// the oxide formed at oxidation number n: 2/gcd(n,2) metal atoms balance
// n/gcd(n,2) oxygens.
func oxideCoeffs(n int) (metal, oxygen int) {
	d := gcd(n, 2)
	return 2 / d, n / d
}

// Oxides renders the possible oxide formulas from the element's positive
// main oxidation states, eliding coefficient 1 (charge 2 gives "FeO",
// charge 3 gives "Fe2O3").
func (e *Element) Oxides() []string {
	states, _ := e.OxidationStates(CategoryMain)
	var out []string
	for _, ox := range states {
		if ox <= 0 {
			continue
		}
		metal, oxygen := oxideCoeffs(ox)
		var b strings.Builder
		b.WriteString(e.Symbol)
		if metal != 1 {
			fmt.Fprintf(&b, "%d", metal)
		}
		b.WriteString("O")
		if oxygen != 1 {
			fmt.Fprintf(&b, "%d", oxygen)
		}
		out = append(out, b.String())
	}
	return out
}
