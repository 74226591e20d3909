package diplomat

import "sort"

// buildOutcomes translates the resolver's internal boolean resolutions
// into the rich per-kind outcome model, and collects the dislodged units
// that a retreat phase will need.
func (r *Resolver) buildOutcomes(orders []Order) ([]OrderOutcome, []DislodgedUnit) {
	outcomes := make([]OrderOutcome, len(orders))
	var dislodged []DislodgedUnit

	for i := range orders {
		o := &orders[i]
		n := r.nodes[o.Ref()]
		oc := OrderOutcome{Ref: o.Ref()}

		switch o.Kind {
		case Hold:
			oc.Kind = OutcomeHold
			oc.Hold = r.classifyHold(n.guess)
		case Move:
			oc.Kind = OutcomeMove
			oc.Move = r.classifyMove(o, n.guess)
		case Support:
			oc.Kind = OutcomeSupport
			oc.Support = r.classifySupport(o, n.guess)
		case Convoy:
			oc.Kind = OutcomeConvoy
			oc.Convoy = r.classifyConvoy(o, n.guess)
		}
		outcomes[i] = oc

		if wasDislodged(o, oc) {
			dislodged = append(dislodged, DislodgedUnit{
				Unit:          o.Unit,
				DislodgedFrom: o.At,
				AttackerFrom:  r.dislodgerProvince(o.At.Province),
			})
		}
	}

	return outcomes, dislodged
}

// ComputeStandoffs finds every province that two or more Move orders
// contested and failed to take, the set a subsequent retreat phase must
// refuse to let any dislodged unit enter.
func ComputeStandoffs(orders []Order, outcomes []OrderOutcome) map[Province]bool {
	byDest := make(map[Province]int)
	succeeded := make(map[Province]bool)
	for i := range orders {
		o := &orders[i]
		if o.Kind != Move {
			continue
		}
		byDest[o.Dest.Province]++
		if outcomes[i].Kind == OutcomeMove &&
			(outcomes[i].Move.Kind == MoveSucceeds || outcomes[i].Move.Kind == MoveConvoyed) {
			succeeded[o.Dest.Province] = true
		}
	}
	standoffs := make(map[Province]bool)
	for p, count := range byDest {
		if count >= 2 && !succeeded[p] {
			standoffs[p] = true
		}
	}
	return standoffs
}

func wasDislodged(o *Order, oc OrderOutcome) bool {
	switch oc.Kind {
	case OutcomeHold:
		return oc.Hold.Kind == HoldDislodged
	case OutcomeMove:
		return oc.Move.Kind == MoveDislodged
	case OutcomeSupport:
		return oc.Support.Kind == SupportDislodged
	case OutcomeConvoy:
		return oc.Convoy.Kind == ConvoyDislodged
	default:
		return false
	}
}

// dislodgerProvince finds the successful foreign attacker's origin
// province for a unit that was dislodged out of p. Exactly one such
// attacker exists whenever a dislodgement occurred; the loop order between
// would-be ties is irrelevant since at most one move into p can succeed.
func (r *Resolver) dislodgerProvince(p Province) Province {
	for _, attacker := range r.movesInto(p) {
		if r.succeeds(attacker.Ref()) {
			return attacker.At.Province
		}
	}
	return ""
}

func (r *Resolver) classifyHold(succeeded bool) HoldOutcome {
	if succeeded {
		return HoldOutcome{Kind: HoldSucceeds}
	}
	return HoldOutcome{Kind: HoldDislodged}
}

func (r *Resolver) classifyMove(o *Order, succeeded bool) MoveOutcome {
	if succeeded {
		if r.needsConvoy(o) {
			return MoveOutcome{Kind: MoveConvoyed}
		}
		return MoveOutcome{Kind: MoveSucceeds}
	}

	if r.dislodgerProvince(o.At.Province) != "" {
		return MoveOutcome{Kind: MoveDislodged}
	}

	if r.needsConvoy(o) && !r.hasConvoyPath(o) {
		return MoveOutcome{Kind: MoveNoPath}
	}

	return MoveOutcome{Kind: MoveBounced, BouncedBy: r.bouncedWitnesses(o)}
}

// bouncedWitnesses names the orders responsible for a Move's failure: the
// stationary defender if its hold strength prevailed, and any competing
// mover whose prevent strength matched or exceeded this move's attack
// strength.
func (r *Resolver) bouncedWitnesses(o *Order) []OrderRef {
	as := r.attackStrength(o)
	var witnesses []OrderRef

	if occupantOrder := r.orderAt(o.Dest.Province); occupantOrder != nil {
		if occupantOrder.Kind != Move || !r.succeeds(occupantOrder.Ref()) {
			defend := r.defendStrengthFor(occupantOrder)
			if as <= defend {
				witnesses = append(witnesses, occupantOrder.Ref())
			}
		}
	}
	for _, other := range r.movesInto(o.Dest.Province) {
		if other == o {
			continue
		}
		if as <= r.preventStrength(other) {
			witnesses = append(witnesses, other.Ref())
		}
	}

	sort.Slice(witnesses, func(i, j int) bool { return witnesses[i].String() < witnesses[j].String() })
	return witnesses
}

func (r *Resolver) defendStrengthFor(occupantOrder *Order) int {
	if occupantOrder.Kind == Move {
		return 1
	}
	return r.holdStrength(occupantOrder.At.Province)
}

func (r *Resolver) classifySupport(s *Order, succeeded bool) SupportOutcome {
	target := r.orderAt(s.AuxAt.Province)
	if target == nil || s.SupportsMove() != (target.Kind == Move) ||
		(s.SupportsMove() && target.Dest.Province != s.AuxDest.Province) {
		return SupportOutcome{Kind: SupportInvalid}
	}

	if cutBy, cutter := r.cutWitness(s); cutter != nil {
		return SupportOutcome{Kind: SupportCut, CutBy: cutBy}
	}

	if !succeeded {
		return SupportOutcome{Kind: SupportDislodged}
	}

	if len(r.movesInto(s.At.Province)) == 0 {
		return SupportOutcome{Kind: SupportNotDisruptive}
	}

	return SupportOutcome{Kind: SupportGiven}
}

func (r *Resolver) classifyConvoy(c *Order, succeeded bool) ConvoyOutcome {
	if r.paradoxSacrificed[c.Ref()] {
		return ConvoyOutcome{Kind: ConvoyParadoxical}
	}
	if !succeeded {
		return ConvoyOutcome{Kind: ConvoyDislodged}
	}

	// Find the army this fleet claims to convoy and check whether its
	// resolved path actually ran through this fleet's province.
	for _, n := range r.nodes {
		army := n.order
		if army.Kind != Move || army.At.Province != c.AuxAt.Province || army.Dest.Province != c.AuxDest.Province {
			continue
		}
		if !r.succeeds(army.Ref()) {
			return ConvoyOutcome{Kind: ConvoyNotUsed}
		}
		for _, p := range r.convoyPath(army) {
			if p == c.At.Province {
				return ConvoyOutcome{Kind: ConvoyUsed}
			}
		}
		return ConvoyOutcome{Kind: ConvoyNotUsed}
	}
	return ConvoyOutcome{Kind: ConvoyNotUsed}
}
