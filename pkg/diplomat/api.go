package diplomat

import "sort"

// AdjudicateMain is the library's primary entry point for main-phase
// (movement) adjudication. orders must already be legal — run
// ValidateOrders first and pass its result here, one order per unit. It
// returns one OrderOutcome per order, in the order given, plus the set of
// units dislodged this phase.
func AdjudicateMain(mp Map, units []UnitPosition, orders []Order, rs Ruleset) ([]OrderOutcome, []DislodgedUnit) {
	return ResolveOrders(mp, units, orders, rs)
}

// RetreatStart bundles exactly what a retreat phase needs out of the
// movement phase that produced it: which units were dislodged and which
// province their attacker came from (so they may not retreat there),
// which units are still standing (so they block retreats into their
// provinces), and which provinces stood off during the movement phase
// (closed to retreats for the same reason they were closed to the
// original movers). It carries no bundled serialization format; build one
// with RetreatStartFromRawParts.
type RetreatStart struct {
	Dislodged []DislodgedUnit
	Standing  []UnitPosition
	Standoffs map[Province]bool
}

// RetreatStartFromRawParts builds a RetreatStart from its three
// constituent parts. It copies everything it's given, so the caller's
// slices and map may be reused or discarded afterward.
func RetreatStartFromRawParts(dislodged []DislodgedUnit, standing []UnitPosition, standoffs map[Province]bool) RetreatStart {
	standoffsCopy := make(map[Province]bool, len(standoffs))
	for p, v := range standoffs {
		if v {
			standoffsCopy[p] = true
		}
	}
	return RetreatStart{
		Dislodged: append([]DislodgedUnit(nil), dislodged...),
		Standing:  append([]UnitPosition(nil), standing...),
		Standoffs: standoffsCopy,
	}
}

// Equal reports whether two RetreatStart values carry the same dislodged
// units, standing units and standoff provinces, independent of slice
// order — value equality, not identity.
func (s RetreatStart) Equal(other RetreatStart) bool {
	if len(s.Dislodged) != len(other.Dislodged) || len(s.Standing) != len(other.Standing) {
		return false
	}
	if len(s.Standoffs) != len(other.Standoffs) {
		return false
	}
	for p := range s.Standoffs {
		if !other.Standoffs[p] {
			return false
		}
	}

	a := append([]DislodgedUnit(nil), s.Dislodged...)
	b := append([]DislodgedUnit(nil), other.Dislodged...)
	sort.Slice(a, func(i, j int) bool { return dislodgedKey(a[i]) < dislodgedKey(a[j]) })
	sort.Slice(b, func(i, j int) bool { return dislodgedKey(b[i]) < dislodgedKey(b[j]) })
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	au := append([]UnitPosition(nil), s.Standing...)
	bu := append([]UnitPosition(nil), other.Standing...)
	sort.Slice(au, func(i, j int) bool { return au[i].Location.String() < au[j].Location.String() })
	sort.Slice(bu, func(i, j int) bool { return bu[i].Location.String() < bu[j].Location.String() })
	for i := range au {
		if au[i] != bu[i] {
			return false
		}
	}
	return true
}

func dislodgedKey(d DislodgedUnit) string {
	return string(d.DislodgedFrom.Province) + "/" + string(d.Unit.Nation)
}

// AdjudicateRetreats is the entry point for retreat-phase adjudication.
func AdjudicateRetreats(mp Map, start RetreatStart, orders []RetreatOrder) []RetreatOutcome {
	return ResolveRetreats(mp, start.Dislodged, orders, start.Standing, start.Standoffs)
}

// AdjudicateBuilds is the entry point for build-phase adjudication.
func AdjudicateBuilds(mp Map, g *GameState, orders []BuildOrder, rs Ruleset) []BuildOutcome {
	return ResolveBuildOrders(mp, g, orders, rs)
}
