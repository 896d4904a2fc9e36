package subregion

import (
	"fmt"

	"github.com/alexiusacademia/gosteam/internal/boundary"
)

// Classification is the result of locating a point inside region 3.
type Classification struct {
	Label Label

	// NearCritical marks points within the narrow zone around the critical
	// point (subregions u to z) where the backward correlations do not meet
	// the accuracy of the other subregions. The label is still usable as a
	// starting value for iteration.
	NearCritical bool
}

// rule assigns label to every T ≤ upTo(p) not already claimed by an earlier
// rule of the same band. A rule with zone set hands the point to a nested
// decision instead of returning label.
type rule struct {
	upTo  func(p float64) float64
	label Label
	zone  func(p, T float64) Label
}

// band is one pressure slice lo < p ≤ hi (lo ≤ p ≤ hi when closed is set).
// A point hotter than every rule falls to above.
type band struct {
	lo, hi float64
	closed bool
	rules  []rule
	above  Label
}

func (b band) contains(p float64) bool {
	if b.closed {
		return p >= b.lo && p <= b.hi
	}
	return p > b.lo && p <= b.hi
}

func (b band) pick(p, T float64) (Label, bool) {
	for _, r := range b.rules {
		if T <= r.upTo(p) {
			if r.zone != nil {
				return r.zone(p, T), true
			}
			return r.label, false
		}
	}
	return b.above, false
}

func until(c boundary.Curve, l Label) rule {
	return rule{upTo: c.At, label: l}
}

var tsat = boundary.SaturationTemperature

// bands partitions region 3 by pressure, highest first. The bands do not
// overlap and together cover PSat623 ≤ p ≤ 100 MPa.
var bands = []band{
	{lo: 40, hi: 100, rules: []rule{until(boundary.AB, A)}, above: B},
	{lo: 25, hi: 40, rules: []rule{
		until(boundary.CD, C),
		until(boundary.AB, D),
		until(boundary.EF, E),
	}, above: F},
	{lo: 23.5, hi: 25, rules: []rule{
		until(boundary.CD, C),
		until(boundary.GH, G),
		until(boundary.EF, H),
		until(boundary.IJ, I),
		until(boundary.JK, J),
	}, above: K},
	{lo: 23, hi: 23.5, rules: []rule{
		until(boundary.CD, C),
		until(boundary.GH, L),
		until(boundary.EF, H),
		until(boundary.IJ, I),
		until(boundary.JK, J),
	}, above: K},
	{lo: 22.5, hi: 23, rules: []rule{
		until(boundary.CD, C),
		until(boundary.GH, L),
		until(boundary.MN, M),
		until(boundary.EF, N),
		until(boundary.OP, O),
		until(boundary.IJ, P),
		until(boundary.JK, J),
	}, above: K},
	{lo: boundary.PSat643, hi: 22.5, rules: []rule{
		until(boundary.CD, C),
		until(boundary.QU, Q),
		{upTo: boundary.RX.At, zone: nearCritical},
		until(boundary.JK, R),
	}, above: K},
	{lo: 20.5, hi: boundary.PSat643, rules: []rule{
		until(boundary.CD, C),
		{upTo: tsat, label: S},
		until(boundary.JK, R),
	}, above: K},
	{lo: boundary.P3cd, hi: 20.5, rules: []rule{
		until(boundary.CD, C),
		{upTo: tsat, label: S},
	}, above: T},
	{lo: boundary.PSat623, hi: boundary.P3cd, closed: true, rules: []rule{
		{upTo: tsat, label: C},
	}, above: T},
}

// criticalBands split the near-critical zone above the critical pressure.
var criticalBands = []band{
	{lo: 22.11, hi: 22.5, rules: []rule{
		until(boundary.UV, U),
		until(boundary.EF, V),
		until(boundary.WX, W),
	}, above: X},
	{lo: 22.064, hi: 22.11, rules: []rule{
		until(boundary.UV, U),
		until(boundary.EF, Y),
		until(boundary.WX, Z),
	}, above: X},
}

// nearCritical resolves a point of the zone qu(p) < T ≤ rx(p). At and below
// the critical pressure the saturation line separates the liquid-like
// subregions u and y from the vapour-like z and x.
func nearCritical(p, T float64) Label {
	for _, b := range criticalBands {
		if b.contains(p) {
			l, _ := b.pick(p, T)
			return l
		}
	}
	if T > tsat(p) {
		if p > boundary.PWX && T <= boundary.WX.At(p) {
			return Z
		}
		return X
	}
	if p > boundary.PUV && T > boundary.UV.At(p) {
		return Y
	}
	return U
}

// Classify returns the subregion of region 3 containing (p, T), with p in
// MPa and T in K. The point is assumed to lie in region 3; only the pressure
// is checked.
//
// A point exactly on a boundary curve belongs to the subregion on its cold
// side.
func Classify(p, T float64) (Classification, error) {
	for _, b := range bands {
		if b.contains(p) {
			l, near := b.pick(p, T)
			return Classification{Label: l, NearCritical: near}, nil
		}
	}
	return Classification{}, fmt.Errorf("%w: p=%g MPa", ErrNotRegion3, p)
}
