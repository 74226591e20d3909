package diplomat

// OrderKind discriminates the four main-phase order types.
type OrderKind int

const (
	Hold OrderKind = iota
	Move
	Support
	Convoy
)

func (k OrderKind) String() string {
	switch k {
	case Hold:
		return "hold"
	case Move:
		return "move"
	case Support:
		return "support"
	case Convoy:
		return "convoy"
	default:
		return "unknown"
	}
}

// ConvoyMode controls whether a Move order travels by convoy. An army's
// order is unambiguous as soon as the two provinces are either adjacent or
// not; ConvoyMode only matters when both a land route and a convoy route
// could apply (rare on the standard map but possible on variants), or when
// the caller wants to force or forbid convoy use for validation purposes.
type ConvoyMode int

const (
	// ConvoyAuto convoys the move if and only if the origin and
	// destination are not directly adjacent for the unit's branch. This is
	// the default for every fleet move and for the common army case.
	ConvoyAuto ConvoyMode = iota
	// ConvoyForbidden requires a direct adjacency; the move fails if none
	// exists even when a convoy path would otherwise be available.
	ConvoyForbidden
	// ConvoyRequired forces convoy resolution even if a direct adjacency
	// exists, matching the DATC cases that distinguish an army's explicit
	// "move by convoy" order from its plain move order.
	ConvoyRequired
)

// Order is a single main-phase order. Which fields are meaningful depends
// on Kind:
//
//	Hold:    only Unit and At.
//	Move:    Unit, At, Dest, Convoyed.
//	Support: Unit, At, AuxAt (supported unit's province), and AuxDest set to
//	         the supported move's destination, or the zero Location to
//	         support a hold.
//	Convoy:  Unit, At, AuxAt (convoyed army's province), AuxDest (convoyed
//	         army's destination).
type Order struct {
	Unit Unit
	At   Location
	Kind OrderKind

	Dest     Location
	Convoyed ConvoyMode

	AuxAt   Location
	AuxDest Location
}

// Ref returns the OrderRef identifying this order's issuing unit. Order
// identity is derived from (nation, province) alone — a unit issues at most
// one order per phase, so this pair is always unique within a valid order
// set.
func (o Order) Ref() OrderRef {
	return OrderRef{Nation: o.Unit.Nation, At: o.At}
}

// SupportsMove reports whether a Support order backs a move (as opposed to
// a hold).
func (o Order) SupportsMove() bool {
	return o.Kind == Support && o.AuxDest != (Location{})
}

// OrderRef is a lightweight, comparable reference to an order, used as the
// unit of identity threaded through outcomes and dependency traces instead
// of copying whole Order values.
type OrderRef struct {
	Nation Nation
	At     Location
}

func (r OrderRef) String() string {
	return string(r.Nation) + "@" + r.At.String()
}
