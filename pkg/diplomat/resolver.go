package diplomat

import "sort"

type state int

const (
	stUnresolved state = iota
	stGuessing
	stResolved
)

type node struct {
	ref   OrderRef
	order *Order
	st    state
	guess bool
}

// cycleInfo records a dependency cycle discovered while a back-edge order
// is being evaluated: re-entering an order already on the stack means the
// graph has closed a loop back to it.
type cycleInfo struct {
	backEdge OrderRef
	members  []OrderRef // stack slice from backEdge's position to the top, in call order
}

// Resolver adjudicates one main-phase order set against a Map. It holds no
// state beyond a single Resolve call's working set; create one per
// adjudication or reuse it across calls via successive Resolve calls, which
// reset its internal buffers instead of reallocating them.
type Resolver struct {
	mp      Map
	ruleset Ruleset

	occupants map[Province]*Order // order of the unit currently standing in each province, nil if none
	units     map[Province]Unit

	nodes    map[OrderRef]*node
	stack    []OrderRef
	stackPos map[OrderRef]int
	pending  *cycleInfo

	// paradoxSacrificed marks Convoy orders forced to fail by the Szykman
	// rule, so outcome-building can report ConvoyOutcome::Paradoxical
	// instead of the generic ConvoyDislodged/NotUsed split.
	paradoxSacrificed map[OrderRef]bool

	trace *Trace
}

// NewResolver creates a resolver bound to a fixed Map. The same Resolver
// can adjudicate many successive phases against that map.
func NewResolver(mp Map) *Resolver {
	return &Resolver{
		mp:        mp,
		occupants: make(map[Province]*Order),
		units:     make(map[Province]Unit),
		nodes:     make(map[OrderRef]*node),
		stackPos:  make(map[OrderRef]int),
		paradoxSacrificed: make(map[OrderRef]bool),
	}
}

// WithTrace attaches a dependency-graph recorder to the next Resolve call.
// Pass nil to stop tracing.
func (r *Resolver) WithTrace(t *Trace) *Resolver {
	r.trace = t
	return r
}

// Resolve adjudicates a full main-phase order set. units is the board state
// before this phase; orders must already be legal (see ValidateOrders) and
// contain at most one order per unit. It returns one OrderOutcome per
// order, in the order given, plus the set of units dislodged this phase.
func (r *Resolver) Resolve(units []UnitPosition, orders []Order, rs Ruleset) ([]OrderOutcome, []DislodgedUnit) {
	r.ruleset = rs
	r.reset(units, orders)

	for i := range orders {
		r.succeeds(orders[i].Ref())
	}

	return r.buildOutcomes(orders)
}

// ResolveOrders is the stateless convenience entry point: it builds a
// throwaway Resolver, adjudicates once, and discards it. Prefer a
// Resolver value directly when adjudicating many phases in a row.
func ResolveOrders(mp Map, units []UnitPosition, orders []Order, rs Ruleset) ([]OrderOutcome, []DislodgedUnit) {
	return NewResolver(mp).Resolve(units, orders, rs)
}

func (r *Resolver) reset(units []UnitPosition, orders []Order) {
	for p := range r.occupants {
		delete(r.occupants, p)
	}
	for p := range r.units {
		delete(r.units, p)
	}
	for k := range r.nodes {
		delete(r.nodes, k)
	}
	for k := range r.stackPos {
		delete(r.stackPos, k)
	}
	for k := range r.paradoxSacrificed {
		delete(r.paradoxSacrificed, k)
	}
	r.stack = r.stack[:0]
	r.pending = nil

	for _, up := range units {
		r.units[up.Location.Province] = up.Unit
	}
	for i := range orders {
		o := &orders[i]
		r.occupants[o.At.Province] = o
		ref := o.Ref()
		r.nodes[ref] = &node{ref: ref, order: o}
	}
}

func (r *Resolver) orderAt(p Province) *Order {
	return r.occupants[p]
}

func (r *Resolver) unitAt(p Province) (Unit, bool) {
	u, ok := r.units[p]
	return u, ok
}

// succeeds is the recursive adjudication predicate. It returns whether the
// order referenced by ref "succeeds" in the sense relevant to its kind: a
// Move succeeds if it reaches its destination; a Hold, Support or Convoy
// "succeeds" if its unit is not dislodged this phase.
func (r *Resolver) succeeds(ref OrderRef) bool {
	n, ok := r.nodes[ref]
	if !ok {
		// No order at that province: treat as a stationary non-unit, which
		// never blocks anything and is never dislodged.
		return true
	}

	switch n.st {
	case stResolved:
		return n.guess
	case stGuessing:
		if r.pending == nil {
			pos := r.stackPos[ref]
			members := append([]OrderRef(nil), r.stack[pos:]...)
			r.pending = &cycleInfo{backEdge: ref, members: members}
		}
		return n.guess
	}

	n.st = stGuessing
	n.guess = false // Kruijswijk default guess: fails
	r.stack = append(r.stack, ref)
	r.stackPos[ref] = len(r.stack) - 1

	result := r.evaluate(n.order)

	if r.pending != nil && r.pending.backEdge == ref {
		cyc := r.pending
		r.pending = nil
		r.resolveCycle(cyc, result)
		r.popStack(ref)
		return n.guess
	}
	if r.pending != nil {
		// A cycle targeting an ancestor is still open; this frame's guess
		// was provisional and must be recomputed once the ancestor
		// resolves the cycle. Persist what this pass actually computed
		// before unwinding, so a snapshot taken over the cycle's members
		// once the ancestor resolves it reflects this pass's real result
		// rather than the stale default guess.
		n.guess = result
		r.popStack(ref)
		n.st = stUnresolved
		return result
	}

	n.st = stResolved
	n.guess = result
	r.popStack(ref)
	return result
}

func (r *Resolver) popStack(ref OrderRef) {
	pos, ok := r.stackPos[ref]
	if !ok {
		return
	}
	r.stack = r.stack[:pos]
	delete(r.stackPos, ref)
}

// resolveCycle re-evaluates a detected cycle under both possible guesses
// for its back-edge order and classifies the result: convergent cycles
// commit directly, divergent cycles are either pure circular movement (all
// members succeed) or a genuine paradox broken per the ruleset.
func (r *Resolver) resolveCycle(cyc *cycleInfo, resultUnderFalse bool) {
	snapA := r.snapshot(cyc.members)
	snapA[cyc.backEdge] = resultUnderFalse

	// Flip only the back-edge's guess and let succeeds() re-enter and fully
	// recompute every other member fresh: the first pass's unwind already
	// returned them to stUnresolved and dropped their stack entries, so
	// they get pushed onto r.stack/r.stackPos again exactly as on a first
	// visit. Pre-marking them stGuessing here instead (as if still on the
	// stack) would make succeeds() treat each as an ancestor already being
	// evaluated: it would return the stale guess without recursing into
	// its real dependents, and read a deleted stackPos entry as an
	// incorrect zero if it mistakenly detected a cycle through it.
	backEdge := r.nodes[cyc.backEdge]
	backEdge.guess = true
	resultUnderTrue := r.evaluate(backEdge.order)
	// Re-entering the cycle under this forced guess may have set a new
	// pending cycle rooted at backEdge; the unwinds above already consumed
	// it, but resolveCycle runs outside succeeds()'s own pending-clearing
	// step for the back-edge order itself, so clear it explicitly.
	r.pending = nil

	snapB := r.snapshot(cyc.members)
	snapB[cyc.backEdge] = resultUnderTrue

	if sameSnapshot(snapA, snapB) {
		r.commit(cyc.members, snapA)
		return
	}

	if r.isPureCircularMovement(cyc.members) {
		all := make(map[OrderRef]bool, len(cyc.members))
		for _, m := range cyc.members {
			all[m] = true
		}
		r.commit(cyc.members, all)
		return
	}

	r.applyParadoxRule(cyc.members)
}

func (r *Resolver) snapshot(members []OrderRef) map[OrderRef]bool {
	snap := make(map[OrderRef]bool, len(members))
	for _, m := range members {
		n := r.nodes[m]
		snap[m] = n.guess
	}
	return snap
}

func sameSnapshot(a, b map[OrderRef]bool) bool {
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}

func (r *Resolver) commit(members []OrderRef, values map[OrderRef]bool) {
	for _, m := range members {
		n := r.nodes[m]
		n.guess = values[m]
		n.st = stResolved
	}
}

// isPureCircularMovement reports whether a cycle is a closed chain of Move
// orders only (no Support or Convoy dependency, no convoy use) — the case
// where every unit in the chain steps into the next one's vacated square.
// Per the standard rule, such a cycle always succeeds in full regardless of
// ruleset.
func (r *Resolver) isPureCircularMovement(members []OrderRef) bool {
	if len(members) < 2 {
		return false
	}
	for _, m := range members {
		o := r.nodes[m].order
		if o.Kind != Move {
			return false
		}
		if o.Convoyed == ConvoyRequired || r.needsConvoy(o) {
			return false
		}
	}
	dests := make(map[Province]OrderRef, len(members))
	for _, m := range members {
		o := r.nodes[m].order
		dests[o.Dest.Province] = m
	}
	for _, m := range members {
		o := r.nodes[m].order
		if _, ok := dests[o.At.Province]; !ok {
			return false
		}
	}
	return true
}

// applyParadoxRule breaks a cycle whose two guesses diverge and which is not
// pure circular movement, per the configured ConvoyParadoxRule, then
// resolves the remaining members against the now-fixed convoy result.
// Under Szykman only Convoy orders are failed; in a cycle without one, no
// order is failed and every member is simply resolved again.
func (r *Resolver) applyParadoxRule(members []OrderRef) {
	var convoys, rest []OrderRef
	for _, m := range members {
		if r.nodes[m].order.Kind == Convoy {
			convoys = append(convoys, m)
		} else {
			rest = append(rest, m)
		}
	}

	if r.ruleset.ConvoyParadox == AllFailAmbiguous {
		fail := make(map[OrderRef]bool, len(members))
		for _, m := range members {
			fail[m] = false
		}
		r.commit(members, fail)
		return
	}

	// Szykman: every convoy in the cycle fails; re-resolve the rest fresh.
	for _, m := range convoys {
		n := r.nodes[m]
		n.guess = false
		n.st = stResolved
		r.paradoxSacrificed[m] = true
	}
	for _, m := range rest {
		n := r.nodes[m]
		n.st = stUnresolved
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i].String() < rest[j].String() })
	for _, m := range rest {
		if r.nodes[m].st == stUnresolved {
			r.succeeds(m)
		}
	}
}

// evaluate computes one order's boolean resolution, recursing into
// whatever other orders it depends on via succeeds. It never mutates
// n.st/n.guess itself; the caller (succeeds) commits the result.
func (r *Resolver) evaluate(o *Order) bool {
	if r.trace != nil {
		r.trace.enter(o.Ref())
	}
	var result bool
	switch o.Kind {
	case Hold, Support, Convoy:
		result = r.resolveStationary(o)
	case Move:
		result = r.resolveMove(o)
	default:
		result = false
	}
	if r.trace != nil {
		r.trace.leave(o.Ref(), result)
	}
	return result
}

// resolveStationary reports whether a non-moving order's unit avoids being
// dislodged: true unless some foreign move into its province actually
// succeeds. Delegating to succeeds(attacker) rather than comparing raw
// strengths means multi-way contests for the province are judged exactly
// once, by resolveMove, instead of re-derived here.
func (r *Resolver) resolveStationary(o *Order) bool {
	for _, attacker := range r.movesInto(o.At.Province) {
		if attacker.Unit.Nation == o.Unit.Nation {
			continue // can't dislodge your own unit regardless of strength
		}
		if r.succeeds(attacker.Ref()) {
			return false
		}
	}
	return true
}
