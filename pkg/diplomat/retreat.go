package diplomat

// RetreatOrderKind discriminates a dislodged unit's two options.
type RetreatOrderKind int

const (
	RetreatMove RetreatOrderKind = iota
	RetreatDisband
)

// RetreatOrder is one dislodged unit's retreat decision.
type RetreatOrder struct {
	Unit Unit
	From Location // the province it was dislodged from
	Kind RetreatOrderKind
	To   Location // meaningful only for RetreatMove
}

// RetreatOutcomeKind is the terminal state of a retreat order.
type RetreatOutcomeKind int

const (
	RetreatSucceeds RetreatOutcomeKind = iota
	RetreatDisbanded        // ordered to disband
	RetreatStandoffBounced  // destination was a movement-phase standoff province
	RetreatIllegalBounced   // destination was the dislodging attacker's own origin
	RetreatOccupiedBounced  // destination is occupied by a surviving unit
	RetreatMutualBounced    // two or more retreating units chose the same destination
)

type RetreatOutcome struct {
	Unit Unit
	Kind RetreatOutcomeKind
}

// ValidateRetreatOrder checks one retreat order for basic legality: the
// destination must be adjacent to the dislodged province (for the unit's
// branch) and must not be the province the unit was dislodged from.
func ValidateRetreatOrder(mp Map, o RetreatOrder) *ValidationError {
	if o.Kind == RetreatDisband {
		return nil
	}
	if o.To.Province == o.From.Province {
		return &ValidationError{Reason: "cannot retreat into the province just vacated"}
	}
	if !mp.Adjacent(o.Unit.Branch, o.From, o.To) {
		return &ValidationError{Reason: ReasonNotAdjacent.String()}
	}
	return nil
}

// ResolveRetreats adjudicates every dislodged unit's retreat order at
// once. standing is the set of units that did NOT retreat (the survivors
// of the movement phase, after dislodged units are removed); standoffs is
// the set of provinces where two or more units bounced during the
// movement phase, which a retreating unit may never enter.
func ResolveRetreats(mp Map, dislodged []DislodgedUnit, orders []RetreatOrder, standing []UnitPosition, standoffs map[Province]bool) []RetreatOutcome {
	occupied := make(map[Province]bool, len(standing))
	for _, up := range standing {
		occupied[up.Location.Province] = true
	}

	attackerFrom := make(map[Unit]Province, len(dislodged))
	for _, d := range dislodged {
		attackerFrom[d.Unit] = d.AttackerFrom
	}

	destCount := make(map[Province]int)
	for _, o := range orders {
		if o.Kind == RetreatMove {
			destCount[o.To.Province]++
		}
	}

	outcomes := make([]RetreatOutcome, 0, len(orders))
	for _, o := range orders {
		if o.Kind == RetreatDisband {
			outcomes = append(outcomes, RetreatOutcome{Unit: o.Unit, Kind: RetreatDisbanded})
			continue
		}
		switch {
		case standoffs[o.To.Province]:
			outcomes = append(outcomes, RetreatOutcome{Unit: o.Unit, Kind: RetreatStandoffBounced})
		case attackerFrom[o.Unit] == o.To.Province:
			outcomes = append(outcomes, RetreatOutcome{Unit: o.Unit, Kind: RetreatIllegalBounced})
		case occupied[o.To.Province]:
			outcomes = append(outcomes, RetreatOutcome{Unit: o.Unit, Kind: RetreatOccupiedBounced})
		case destCount[o.To.Province] > 1:
			outcomes = append(outcomes, RetreatOutcome{Unit: o.Unit, Kind: RetreatMutualBounced})
		default:
			outcomes = append(outcomes, RetreatOutcome{Unit: o.Unit, Kind: RetreatSucceeds})
		}
	}
	return outcomes
}

// ApplyRetreats folds retreat outcomes into a GameState: units that
// retreated successfully move to their destination, and units that failed
// to retreat (by any path) are removed from the board entirely. The
// standoffs set from the just-finished movement phase is cleared, since it
// applies only to the one retreat phase that follows it.
func ApplyRetreats(g *GameState, outcomes []RetreatOutcome, dest map[Unit]Location) *GameState {
	out := g.Clone()
	out.Dislodged = nil
	out.Standoffs = nil

	for _, oc := range outcomes {
		if oc.Kind != RetreatSucceeds {
			continue
		}
		loc, ok := dest[oc.Unit]
		if !ok {
			continue
		}
		out.Units = append(out.Units, UnitPosition{Unit: oc.Unit, Location: loc})
	}
	return out
}
