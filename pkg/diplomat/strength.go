package diplomat

// This file implements the strength calculus: attack, defend and prevent
// strength, the self-dislodgement exclusions, and the head-to-head special
// case. Every function here either reads the static board/order data or
// recurses through Resolver.succeeds, so the usual cycle-detection and
// memoization in resolver.go apply uniformly to strength computation too.

// movesInto returns every Move order targeting p.
func (r *Resolver) movesInto(p Province) []*Order {
	var out []*Order
	for _, n := range r.nodes {
		if n.order.Kind == Move && n.order.Dest.Province == p {
			out = append(out, n.order)
		}
	}
	return out
}

// supportsForMove returns Support orders backing o's specific move.
func (r *Resolver) supportsForMove(o *Order) []*Order {
	var out []*Order
	for _, n := range r.nodes {
		s := n.order
		if s.Kind == Support && s.SupportsMove() &&
			s.AuxAt.Province == o.At.Province && s.AuxDest.Province == o.Dest.Province {
			out = append(out, s)
		}
	}
	return out
}

// supportsForHold returns Support orders backing o's unit to hold in place
// (o may itself be a Hold, Support or Convoy order; all three defend their
// province the same way).
func (r *Resolver) supportsForHold(o *Order) []*Order {
	var out []*Order
	for _, n := range r.nodes {
		s := n.order
		if s.Kind == Support && !s.SupportsMove() && s.AuxAt.Province == o.At.Province {
			out = append(out, s)
		}
	}
	return out
}

// attackStrength is 1 plus every valid, uncut support for o's specific
// move.
func (r *Resolver) attackStrength(o *Order) int {
	n := 1
	for _, s := range r.supportsForMove(o) {
		if r.supportCounts(s, o) {
			n++
		}
	}
	return n
}

// holdStrength is 1 plus every valid, uncut support for o's unit to hold
// its province. Callers ask it only for a province whose occupant is a
// Hold, Support or Convoy order; a moving occupant's defence (including the
// head-to-head case) is computed in resolveMove and defendStrengthFor.
func (r *Resolver) holdStrength(p Province) int {
	o := r.orderAt(p)
	if o == nil {
		return 0
	}
	n := 1
	for _, s := range r.supportsForHold(o) {
		if !r.isCut(s) {
			n++
		}
	}
	return n
}

// preventStrength is the strength a move order contributes against OTHER
// units competing for the same destination. It equals attack strength,
// except a move targeting a stationary unit of its own power contributes
// nothing: such a move can never dislodge its own unit, so by rule it does
// not block anyone else from taking the province either.
func (r *Resolver) preventStrength(o *Order) int {
	if occupant, ok := r.unitAt(o.Dest.Province); ok && occupant.Nation == o.Unit.Nation {
		occupantOrder := r.orderAt(o.Dest.Province)
		if occupantOrder == nil || occupantOrder.Kind != Move {
			return 0
		}
	}
	return r.attackStrength(o)
}

// supportCounts reports whether a support order contributes to the move it
// backs: it must not be cut, and a power may not count its own support
// toward an attack against its own stationary unit (the move itself simply
// fails regardless; the supports backing it are void, not merely moot, so
// they never inflate prevent strength against a third party either).
func (r *Resolver) supportCounts(s, o *Order) bool {
	if occupant, ok := r.unitAt(o.Dest.Province); ok &&
		occupant.Nation == o.Unit.Nation && s.Unit.Nation == o.Unit.Nation {
		return false
	}
	return !r.isCut(s)
}

// isCut reports whether any foreign unit's attempted attack on s's own
// province voids its support, with the standard exception that a support
// for an attack on unit U is never cut by U's own retaliation into the
// supporter's province, and a convoyed attacker with no surviving path
// never attempted the attack at all.
func (r *Resolver) isCut(s *Order) bool {
	_, cutter := r.cutWitness(s)
	return cutter != nil
}

// cutWitness returns the attacking order that cuts s, if any.
func (r *Resolver) cutWitness(s *Order) (OrderRef, *Order) {
	for _, attacker := range r.movesInto(s.At.Province) {
		if attacker.Unit.Nation == s.Unit.Nation {
			continue
		}
		if s.SupportsMove() && attacker.At.Province == s.AuxDest.Province {
			continue // exempt: the unit being attacked retaliating into the support
		}
		if r.needsConvoy(attacker) && !r.hasConvoyPath(attacker) {
			continue // never actually attempted: no path
		}
		return attacker.Ref(), attacker
	}
	return OrderRef{}, nil
}

// needsConvoy reports whether an army's move requires a convoy: either the
// order explicitly demands one, or the origin and destination are not
// directly adjacent for an army and convoying was not forbidden.
func (r *Resolver) needsConvoy(o *Order) bool {
	if o.Kind != Move || o.Unit.Branch != Army {
		return false
	}
	switch o.Convoyed {
	case ConvoyForbidden:
		return false
	case ConvoyRequired:
		return true
	default:
		return !r.mp.Adjacent(Army, o.At, o.Dest)
	}
}

// resolveMove is the full Move-order adjudication: convoy path, head-to-head,
// attack vs. defend, self-dislodgement, and attack vs. every competitor's
// prevent strength.
func (r *Resolver) resolveMove(o *Order) bool {
	if r.needsConvoy(o) && !r.hasConvoyPath(o) {
		return false
	}

	occupantOrder := r.orderAt(o.Dest.Province)
	occupantUnit, hasOccupant := r.unitAt(o.Dest.Province)

	if occupantOrder != nil && occupantOrder.Kind == Move &&
		occupantOrder.Dest.Province == o.At.Province &&
		!r.needsConvoy(o) && !r.needsConvoy(occupantOrder) {
		return r.attackStrength(o) > r.attackStrength(occupantOrder)
	}

	as := r.attackStrength(o)

	var defend int
	selfDislodge := false
	if hasOccupant {
		if occupantOrder != nil && occupantOrder.Kind == Move {
			if r.succeeds(occupantOrder.Ref()) {
				defend = 0
			} else {
				defend = 1
				if occupantUnit.Nation == o.Unit.Nation {
					selfDislodge = true
				}
			}
		} else {
			defend = r.holdStrength(o.Dest.Province)
			if occupantUnit.Nation == o.Unit.Nation {
				selfDislodge = true
			}
		}
	}

	if as <= defend || selfDislodge {
		return false
	}

	for _, other := range r.movesInto(o.Dest.Province) {
		if other == o {
			continue
		}
		if as <= r.preventStrength(other) {
			return false
		}
	}

	return true
}
