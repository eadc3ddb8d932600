// Package econf parses symbolic electronic configurations and answers the
// shell, valence, and screening questions the property derivations ask.
package econf

import (
	"fmt"
	"strconv"
	"strings"
)

// Orbitals lists the recognized orbital labels in order of increasing
// angular momentum.
var Orbitals = []string{"s", "p", "d", "f", "g", "h", "i", "k"}

// AngularMomentum returns the azimuthal quantum number for an orbital label,
// or -1 when the label is not recognized.
func AngularMomentum(orbital string) int {
	for l, o := range Orbitals {
		if o == orbital {
			return l
		}
	}
	return -1
}

// Subshell identifies a single (n, orbital) subshell.
type Subshell struct {
	N       int
	Orbital string
}

func (s Subshell) String() string {
	return fmt.Sprintf("%d%s", s.N, s.Orbital)
}

// Configuration is a parsed electronic configuration: electron occupancies
// per subshell, kept in parse order (noble core first).
type Configuration struct {
	order []Subshell
	occ   map[Subshell]int
}

// Noble-gas cores in shell order, used to expand the "[X] ..." shorthand.
var nobleCores = map[string]string{
	"He": "1s2",
	"Ne": "1s2 2s2 2p6",
	"Ar": "1s2 2s2 2p6 3s2 3p6",
	"Kr": "1s2 2s2 2p6 3s2 3p6 3d10 4s2 4p6",
	"Xe": "1s2 2s2 2p6 3s2 3p6 3d10 4s2 4p6 4d10 5s2 5p6",
	"Rn": "1s2 2s2 2p6 3s2 3p6 3d10 4s2 4p6 4d10 5s2 5p6 4f14 5d10 6s2 6p6",
}

// Parse decodes a configuration string such as "1s2 2s2 2p4" or the
// noble-core shorthand "[Ar] 3d6 4s2". An omitted occupancy digit means a
// single electron ("1s"). Malformed input fails with an error; occupancies
// are never silently substituted.
func Parse(conf string) (*Configuration, error) {
	fields := strings.Fields(conf)
	if len(fields) == 0 {
		return nil, fmt.Errorf("econf: empty configuration")
	}
	c := &Configuration{occ: make(map[Subshell]int)}
	start := 0
	if strings.HasPrefix(fields[0], "[") {
		if !strings.HasSuffix(fields[0], "]") {
			return nil, fmt.Errorf("econf: malformed core token %q in %q", fields[0], conf)
		}
		core := fields[0][1 : len(fields[0])-1]
		expansion, ok := nobleCores[core]
		if !ok {
			return nil, fmt.Errorf("econf: unknown noble-gas core %q in %q", core, conf)
		}
		for _, tok := range strings.Fields(expansion) {
			if err := c.add(tok); err != nil {
				return nil, err
			}
		}
		start = 1
	}
	if start == len(fields) {
		return nil, fmt.Errorf("econf: configuration %q has no subshell tokens", conf)
	}
	for _, tok := range fields[start:] {
		if err := c.add(tok); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Configuration) add(tok string) error {
	i := 0
	for i < len(tok) && tok[i] >= '0' && tok[i] <= '9' {
		i++
	}
	if i == 0 || i == len(tok) {
		return fmt.Errorf("econf: malformed subshell token %q", tok)
	}
	n, err := strconv.Atoi(tok[:i])
	if err != nil || n < 1 {
		return fmt.Errorf("econf: bad principal quantum number in %q", tok)
	}
	orbital := string(tok[i])
	l := AngularMomentum(orbital)
	if l < 0 {
		return fmt.Errorf("econf: unknown orbital label in %q", tok)
	}
	if l >= n {
		return fmt.Errorf("econf: orbital %s cannot occur in shell %d", orbital, n)
	}
	count := 1
	if rest := tok[i+1:]; rest != "" {
		count, err = strconv.Atoi(rest)
		if err != nil || count < 1 {
			return fmt.Errorf("econf: bad occupancy in %q", tok)
		}
	}
	if capacity := 2 * (2*l + 1); count > capacity {
		return fmt.Errorf("econf: occupancy %d exceeds capacity %d of subshell %d%s", count, capacity, n, orbital)
	}
	sh := Subshell{N: n, Orbital: orbital}
	if _, dup := c.occ[sh]; dup {
		return fmt.Errorf("econf: duplicate subshell %s", sh)
	}
	c.order = append(c.order, sh)
	c.occ[sh] = count
	return nil
}

// Subshells returns the occupied subshells in parse order.
func (c *Configuration) Subshells() []Subshell {
	out := make([]Subshell, len(c.order))
	copy(out, c.order)
	return out
}

// Occupancy returns the electron count of subshell (n, orbital), zero when
// the subshell is not occupied.
func (c *Configuration) Occupancy(n int, orbital string) int {
	return c.occ[Subshell{N: n, Orbital: orbital}]
}

// Electrons returns the total electron count.
func (c *Configuration) Electrons() int {
	total := 0
	for _, k := range c.occ {
		total += k
	}
	return total
}

// MaxN returns the largest occupied principal quantum number.
func (c *Configuration) MaxN() int {
	max := 0
	for sh := range c.occ {
		if sh.N > max {
			max = sh.N
		}
	}
	return max
}

// MaxL returns the occupied orbital with the highest angular momentum in
// shell n. The second result is false when the shell is empty.
func (c *Configuration) MaxL(n int) (string, bool) {
	best := -1
	for sh := range c.occ {
		if sh.N == n {
			if l := AngularMomentum(sh.Orbital); l > best {
				best = l
			}
		}
	}
	if best < 0 {
		return "", false
	}
	return Orbitals[best], true
}

// Valence returns the number of valence electrons for an element of the
// given block and period. For the s and p blocks it counts every electron in
// the outermost shell; for the d block it returns 2 under method "simple"
// and otherwise counts the outer s plus the (n-1)d electrons; the f block
// counts as 2.
func (c *Configuration) Valence(block string, period int, method string) (int, error) {
	switch block {
	case "s", "p":
		n := c.MaxN()
		total := 0
		for sh, k := range c.occ {
			if sh.N == n {
				total += k
			}
		}
		return total, nil
	case "d":
		if method == "simple" {
			return 2, nil
		}
		n := c.MaxN()
		return c.Occupancy(n, "s") + c.Occupancy(n-1, "d"), nil
	case "f":
		return 2, nil
	default:
		return 0, fmt.Errorf("econf: unknown block %q", block)
	}
}

// SlaterScreening returns the screening constant felt by an electron in
// subshell (n, orbital) under Slater's rules. Electrons in the same group
// contribute 0.35 each (0.30 in the 1s group); for an s or p electron the
// (n-1) shell contributes 0.85 per electron and deeper shells 1.00; for a d
// or f electron every electron in a lower group contributes 1.00. With
// extraElectron the constant is computed for an additional electron entering
// the subshell, so the test electron is not removed from its own group.
func (c *Configuration) SlaterScreening(n int, orbital string, extraElectron bool) (float64, error) {
	if n < 1 {
		return 0, fmt.Errorf("econf: principal quantum number must be positive, got %d", n)
	}
	l := AngularMomentum(orbital)
	if l < 0 {
		return 0, fmt.Errorf("econf: unknown orbital label %q", orbital)
	}
	self := 1
	if extraElectron {
		self = 0
	}
	same := 0.35
	if n == 1 {
		same = 0.30
	}
	var sigma float64
	if orbital == "s" || orbital == "p" {
		group := c.Occupancy(n, "s") + c.Occupancy(n, "p") - self
		if group > 0 {
			sigma += float64(group) * same
		}
		for sh, k := range c.occ {
			switch {
			case sh.N == n-1:
				sigma += 0.85 * float64(k)
			case sh.N <= n-2:
				sigma += float64(k)
			}
		}
		return sigma, nil
	}
	group := c.Occupancy(n, orbital) - self
	if group > 0 {
		sigma += float64(group) * same
	}
	for sh, k := range c.occ {
		if sh.N < n || (sh.N == n && AngularMomentum(sh.Orbital) < l) {
			sigma += float64(k)
		}
	}
	return sigma, nil
}
