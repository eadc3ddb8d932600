package chem

// IonEnergies builds the degree-to-energy mapping from the element's owned
// ionization records. Records without a stored energy are skipped. The map
// is rebuilt on every call; callers must not mutate stored records through
// it (values are copies).
func (e *Element) IonEnergies() map[int]float64 {
	m := make(map[int]float64, len(e.IonizationEnergies))
	for _, ie := range e.IonizationEnergies {
		if ie.Energy != nil {
			m[ie.Degree()] = *ie.Energy
		}
	}
	return m
}

// ionPair resolves the (I, A) inputs shared by the Mulliken scale and
// hardness: for the neutral atom I is the first ionization energy and A the
// electron affinity; for a cation of charge c they are the energies of
// degrees c+1 and c. Negative charges are malformed input.
func (e *Element) ionPair(charge int) (*float64, *float64, error) {
	if charge < 0 {
		return nil, nil, invalidArgf("charge", "has to be a non-negative integer, got: %d", charge)
	}
	energies := e.IonEnergies()
	if charge == 0 {
		var ip *float64
		if v, ok := energies[1]; ok {
			ip = &v
		}
		return ip, e.ElectronAffinity, nil
	}
	var ip, ea *float64
	if v, ok := energies[charge+1]; ok {
		ip = &v
	}
	if v, ok := energies[charge]; ok {
		ea = &v
	}
	return ip, ea, nil
}

// Hardness returns the absolute hardness (I-A)/2 for the given charge, nil
// when either input is missing. Negative charges fail with InvalidArgument.
func (e *Element) Hardness(charge int) (*float64, error) {
	ip, ea, err := e.ionPair(charge)
	if err != nil {
		return nil, err
	}
	if ip == nil || ea == nil {
		return nil, nil
	}
	eta := (*ip - *ea) * 0.5
	return &eta, nil
}

// Softness returns 1/(2*hardness), nil when hardness is nil or exactly zero.
// A zero denominator is treated as missing data rather than producing an
// infinite value.
func (e *Element) Softness(charge int) (*float64, error) {
	eta, err := e.Hardness(charge)
	if err != nil {
		return nil, err
	}
	if eta == nil || *eta == 0 {
		return nil, nil
	}
	s := 1.0 / (2.0 * *eta)
	return &s, nil
}

// Electrophilicity returns the electrophilicity index (I+A)^2/(8(I-A)), nil
// when either input is missing or when I equals A (the denominator would be
// zero).
func (e *Element) Electrophilicity() *float64 {
	var ip *float64
	if v, ok := e.IonEnergies()[1]; ok {
		ip = &v
	}
	ea := e.ElectronAffinity
	if ip == nil || ea == nil || *ip == *ea {
		return nil
	}
	w := (*ip + *ea) * (*ip + *ea) / (8.0 * (*ip - *ea))
	return &w
}
