package chem

import "sort"

// CurvePoint is one (x, y) sample of a reference curve.
type CurvePoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// RefCurve is a cross-element reference curve, such as noble-gas covalent
// radius against atomic number, sampled at the group members and evaluated
// at arbitrary atomic numbers by the interpolation-based scales.
type RefCurve []CurvePoint

// Interpolate evaluates the curve at x: piecewise-linear between bracketing
// samples inside the sampled range, and a degree-1 least-squares fit over
// all samples outside it. Curves with fewer than two points cannot be
// evaluated and report false.
func (c RefCurve) Interpolate(x float64) (float64, bool) {
	if len(c) < 2 {
		return 0, false
	}
	pts := make(RefCurve, len(c))
	copy(pts, c)
	sort.Slice(pts, func(i, j int) bool { return pts[i].X < pts[j].X })

	if x < pts[0].X || x > pts[len(pts)-1].X {
		slope, intercept := linearFit(pts)
		return slope*x + intercept, true
	}
	for i := 1; i < len(pts); i++ {
		if x <= pts[i].X {
			a, b := pts[i-1], pts[i]
			if a.X == b.X {
				return a.Y, true
			}
			t := (x - a.X) / (b.X - a.X)
			return a.Y + t*(b.Y-a.Y), true
		}
	}
	return pts[len(pts)-1].Y, true
}

// linearFit returns the least-squares line through the samples.
func linearFit(pts RefCurve) (slope, intercept float64) {
	n := float64(len(pts))
	var sx, sy, sxx, sxy float64
	for _, p := range pts {
		sx += p.X
		sy += p.Y
		sxx += p.X * p.X
		sxy += p.X * p.Y
	}
	den := n*sxx - sx*sx
	if den == 0 {
		return 0, sy / n
	}
	slope = (n*sxy - sx*sy) / den
	intercept = (sy - slope*sx) / n
	return slope, intercept
}
