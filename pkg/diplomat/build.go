package diplomat

import "sort"

// BuildOrderKind discriminates a power's two options during the build
// phase: raising a new unit at a home center, or disbanding an existing
// one.
type BuildOrderKind int

const (
	BuildNew BuildOrderKind = iota
	BuildDisband
)

// BuildOrder is one power's single build-phase instruction for one unit
// slot.
type BuildOrder struct {
	Nation Nation
	Kind   BuildOrderKind
	Unit   Unit     // branch to build, for BuildNew
	At     Location // home center to build at, for BuildNew; existing unit's province for BuildDisband
}

// BuildOutcomeKind is the terminal state of a build order.
type BuildOutcomeKind int

const (
	BuildSucceeds BuildOutcomeKind = iota
	BuildRejectedNotHome
	BuildRejectedOccupied
	BuildRejectedNoCenters
	BuildRejectedNoUnit
)

type BuildOutcome struct {
	Order BuildOrder
	Kind  BuildOutcomeKind
}

// ValidateBuildOrder checks a single build order against the board. A
// build is legal only at one of the nation's own home centers, currently
// unoccupied, and only while the nation owns that center; a disband is
// legal only against a unit the nation actually owns.
func ValidateBuildOrder(mp Map, g *GameState, o BuildOrder) BuildOutcomeKind {
	switch o.Kind {
	case BuildNew:
		home := false
		for _, p := range mp.HomeSupplyCenters(o.Nation) {
			if p == o.At.Province {
				home = true
				break
			}
		}
		if !home {
			return BuildRejectedNotHome
		}
		if g.Centers[o.At.Province] != o.Nation {
			return BuildRejectedNotHome
		}
		if _, occupied := g.UnitAt(o.At.Province); occupied {
			return BuildRejectedOccupied
		}
		return BuildSucceeds
	case BuildDisband:
		u, ok := g.UnitAt(o.At.Province)
		if !ok || u.Nation != o.Nation {
			return BuildRejectedNoUnit
		}
		return BuildSucceeds
	}
	return BuildRejectedNoUnit
}

// ResolveBuildOrders adjudicates a full round of build orders: it validates
// each one, rejects as BuildRejectedNoCenters any build beyond the nation's
// allowance (supply centers owned minus units on the board), then for any
// nation that issued fewer disband orders than its unit surplus requires
// (civil disorder), it picks the additional disbands automatically per the
// ruleset's CivilDisorderTiebreak.
func ResolveBuildOrders(mp Map, g *GameState, orders []BuildOrder, rs Ruleset) []BuildOutcome {
	var outcomes []BuildOutcome
	byNation := make(map[Nation][]BuildOrder)
	built := make(map[Nation]int)
	for _, o := range orders {
		kind := ValidateBuildOrder(mp, g, o)
		if kind == BuildSucceeds && o.Kind == BuildNew {
			if built[o.Nation] >= g.SupplyCenterCount(o.Nation)-len(g.UnitsOf(o.Nation)) {
				kind = BuildRejectedNoCenters
			} else {
				built[o.Nation]++
			}
		}
		outcomes = append(outcomes, BuildOutcome{Order: o, Kind: kind})
		if kind == BuildSucceeds {
			byNation[o.Nation] = append(byNation[o.Nation], o)
		}
	}

	for _, n := range allNations(g, orders) {
		allowance := g.SupplyCenterCount(n) - len(g.UnitsOf(n))
		if allowance >= 0 {
			continue // builds, or balanced: no forced disbands
		}
		need := -allowance
		ordered := 0
		for _, o := range byNation[n] {
			if o.Kind == BuildDisband {
				ordered++
			}
		}
		if ordered >= need {
			continue
		}
		forced := civilDisorder(mp, g, n, need-ordered, byNation[n])
		for _, u := range forced {
			outcomes = append(outcomes, BuildOutcome{
				Order: BuildOrder{Nation: n, Kind: BuildDisband, Unit: u.Unit, At: u.Location},
				Kind:  BuildSucceeds,
			})
		}
	}
	return outcomes
}

func allNations(g *GameState, orders []BuildOrder) []Nation {
	seen := make(map[Nation]bool)
	var out []Nation
	for _, up := range g.Units {
		if !seen[up.Unit.Nation] {
			seen[up.Unit.Nation] = true
			out = append(out, up.Unit.Nation)
		}
	}
	for _, o := range orders {
		if !seen[o.Nation] {
			seen[o.Nation] = true
			out = append(out, o.Nation)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// civilDisorder picks which of a nation's units to disband automatically
// when it under-orders its required disbands: furthest from any home
// center first, fleets before armies on a tie, and province name as a
// final deterministic tiebreak. already is the set of units the nation
// already ordered disbanded this phase, excluded from consideration.
func civilDisorder(mp Map, g *GameState, n Nation, need int, already []BuildOrder) []UnitPosition {
	ordered := make(map[Location]bool, len(already))
	for _, o := range already {
		if o.Kind == BuildDisband {
			ordered[o.At] = true
		}
	}

	type candidate struct {
		up   UnitPosition
		dist int
	}
	var candidates []candidate
	for _, up := range g.UnitsOf(n) {
		if ordered[up.Location] {
			continue
		}
		candidates = append(candidates, candidate{up: up, dist: minDistanceToHome(mp, n, up.Location.Province)})
	}

	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.dist != b.dist {
			return a.dist > b.dist // furthest first
		}
		if a.up.Unit.Branch != b.up.Unit.Branch {
			return a.up.Unit.Branch == Fleet // fleet before army
		}
		return a.up.Location.Province < b.up.Location.Province
	})

	if need > len(candidates) {
		need = len(candidates)
	}
	out := make([]UnitPosition, need)
	for i := 0; i < need; i++ {
		out[i] = candidates[i].up
	}
	return out
}

// minDistanceToHome is the fewest army-adjacency steps from p to any of
// the nation's home supply centers.
func minDistanceToHome(mp Map, n Nation, p Province) int {
	homes := make(map[Province]bool)
	for _, h := range mp.HomeSupplyCenters(n) {
		homes[h] = true
	}
	if homes[p] {
		return 0
	}

	visited := map[Province]bool{p: true}
	frontier := []Province{p}
	dist := 0
	for len(frontier) > 0 {
		dist++
		var next []Province
		for _, cur := range frontier {
			for _, q := range mp.Provinces() {
				if visited[q] || mp.Kind(q) == Sea {
					continue
				}
				if !mp.Adjacent(Army, At(cur), At(q)) {
					continue
				}
				if homes[q] {
					return dist
				}
				visited[q] = true
				next = append(next, q)
			}
		}
		frontier = next
	}
	return dist
}

// ApplyBuildOrders folds successful build outcomes into a GameState.
func ApplyBuildOrders(g *GameState, outcomes []BuildOutcome) *GameState {
	out := g.Clone()
	for _, oc := range outcomes {
		if oc.Kind != BuildSucceeds {
			continue
		}
		switch oc.Order.Kind {
		case BuildNew:
			out.Units = append(out.Units, UnitPosition{Unit: oc.Order.Unit, Location: oc.Order.At})
		case BuildDisband:
			for i, up := range out.Units {
				if up.Location == oc.Order.At {
					out.Units = append(out.Units[:i], out.Units[i+1:]...)
					break
				}
			}
		}
	}
	return out
}
