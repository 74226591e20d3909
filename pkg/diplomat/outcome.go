package diplomat

// OutcomeKind discriminates which of the per-kind outcome structs on an
// OrderOutcome is populated.
type OutcomeKind int

const (
	OutcomeIllegal OutcomeKind = iota
	OutcomeHold
	OutcomeMove
	OutcomeSupport
	OutcomeConvoy
)

// HoldOutcomeKind is the terminal state of a Hold order. A failed Move
// order is reported with a MoveOutcome instead.
type HoldOutcomeKind int

const (
	HoldSucceeds HoldOutcomeKind = iota
	HoldDislodged
)

type HoldOutcome struct {
	Kind HoldOutcomeKind
}

// MoveOutcomeKind is the terminal state of a Move order.
type MoveOutcomeKind int

const (
	MoveSucceeds    MoveOutcomeKind = iota // direct move, reached its destination
	MoveConvoyed                           // reached its destination via a surviving convoy path
	MoveBounced                            // contested: did not reach its destination, unit stays
	MoveNoPath                             // ordered by convoy but no surviving convoy path existed
	MoveDislodged                          // failed to move and was then dislodged by another unit's successful attack
	MoveFailedOther                        // failed for a reason not covered above (e.g. depends on an illegal order)
)

type MoveOutcome struct {
	Kind MoveOutcomeKind
	// BouncedBy lists the orders whose strength prevented or defended
	// against this move, for MoveBounced. Sorted by OrderRef.String()
	// (nation, then location) for determinism. Empty for every other kind.
	BouncedBy []OrderRef
}

// SupportOutcomeKind is the terminal state of a Support order.
type SupportOutcomeKind int

const (
	SupportGiven         SupportOutcomeKind = iota // counted toward the supported order's strength
	SupportNotDisruptive                           // given, but nothing ever attacked the supporter's province, so it was never at risk of being cut
	SupportCut                                     // an attack on the supporter's own province voided the support before it counted
	SupportDislodged                               // the supporting unit was itself dislodged this turn
	SupportInvalid                                 // the referenced supported order does not exist; void, counts toward nothing
)

type SupportOutcome struct {
	Kind SupportOutcomeKind
	// CutBy names the attacking order that cut this support, for
	// SupportCut. Zero value for every other kind.
	CutBy OrderRef
}

// ConvoyOutcomeKind is the terminal state of a Convoy order.
type ConvoyOutcomeKind int

const (
	ConvoyUsed        ConvoyOutcomeKind = iota // part of the path the convoyed army actually used
	ConvoyNotUsed                              // survived, but the army's move never needed (or never attempted) this leg
	ConvoyDislodged                            // the convoying fleet was dislodged, breaking this leg of every path through it
	ConvoyParadoxical                          // sacrificed to break a convoy paradox per the ruleset
)

type ConvoyOutcome struct {
	Kind ConvoyOutcomeKind
}

// OrderOutcome is the resolved result of one submitted order. Exactly one
// of Hold, Move, Support, Convoy is meaningful, selected by Kind; Illegal
// orders carry no sub-outcome at all and should never reach this far in
// practice since ValidateOrders filters them out before adjudication, but
// the variant exists so a caller folding over a full order set, including
// rejected ones, has a single exhaustive type to match on.
type OrderOutcome struct {
	Ref  OrderRef
	Kind OutcomeKind

	IllegalReason IllegalReason

	Hold    HoldOutcome
	Move    MoveOutcome
	Support SupportOutcome
	Convoy  ConvoyOutcome
}

// MapRefs returns a copy of the outcome with every embedded OrderRef —
// including the outcome's own Ref, and any witness references carried by
// its sub-outcome — rewritten by f. This is the structural mapping
// primitive every outcome type supports: it lets a caller rename or
// renumber order identities (e.g. translating province IDs between two Map
// implementations) without re-running the resolver. Mapping with the
// identity function returns an equal outcome; mapping twice with f then g
// equals mapping once with the composition of f and g.
func (o OrderOutcome) MapRefs(f func(OrderRef) OrderRef) OrderOutcome {
	out := o
	out.Ref = f(o.Ref)
	if o.Kind == OutcomeMove && len(o.Move.BouncedBy) > 0 {
		mapped := make([]OrderRef, len(o.Move.BouncedBy))
		for i, ref := range o.Move.BouncedBy {
			mapped[i] = f(ref)
		}
		out.Move.BouncedBy = mapped
	}
	if o.Kind == OutcomeSupport && o.Support.Kind == SupportCut {
		out.Support.CutBy = f(o.Support.CutBy)
	}
	return out
}
