package stdmap

import "github.com/corrigan/diplomat/pkg/diplomat"

// province holds everything the standard board knows about one province,
// independent of any game in progress.
type province struct {
	id       diplomat.Province
	name     string
	kind     diplomat.ProvinceKind
	center   bool
	home     diplomat.Nation
	coasts   []diplomat.Coast
}

// edge is one directed adjacency from a province, scoped to the coast it
// leaves from and the coast it lands on when either end has split coasts.
type edge struct {
	fromCoast diplomat.Coast
	to        diplomat.Province
	toCoast   diplomat.Coast
	army      bool
	fleet     bool
}

// StdMap is the standard 1901 board: 75 provinces and their full adjacency
// graph. It implements diplomat.Map.
type StdMap struct {
	provinces map[diplomat.Province]*province
	order     []diplomat.Province // deterministic iteration order
	edges     map[diplomat.Province][]edge
}

var _ diplomat.Map = (*StdMap)(nil)

func (m *StdMap) Provinces() []diplomat.Province {
	out := make([]diplomat.Province, len(m.order))
	copy(out, m.order)
	return out
}

func (m *StdMap) Kind(p diplomat.Province) diplomat.ProvinceKind {
	if pr, ok := m.provinces[p]; ok {
		return pr.kind
	}
	return diplomat.Land
}

func (m *StdMap) Coasts(p diplomat.Province) []diplomat.Coast {
	if pr, ok := m.provinces[p]; ok {
		return pr.coasts
	}
	return nil
}

func (m *StdMap) IsSupplyCenter(p diplomat.Province) bool {
	pr, ok := m.provinces[p]
	return ok && pr.center
}

func (m *StdMap) HomeSupplyCenters(n diplomat.Nation) []diplomat.Province {
	var out []diplomat.Province
	for _, p := range m.order {
		if m.provinces[p].home == n {
			out = append(out, p)
		}
	}
	return out
}

// Name returns a province's display name, or its ID if it carries none.
func (m *StdMap) Name(p diplomat.Province) string {
	if pr, ok := m.provinces[p]; ok && pr.name != "" {
		return pr.name
	}
	return string(p)
}

// Adjacent reports whether branch can move directly from `from` to `to`,
// honoring coast-specific splits at either end. A from/to location with no
// coast specified (NoCoast) matches any coast offered by an edge on that
// side, which lets army adjacency and plain single-coast fleet adjacency
// ignore coasts entirely while split-coast fleet moves still get checked
// precisely when the caller names a coast.
func (m *StdMap) Adjacent(branch diplomat.Branch, from, to diplomat.Location) bool {
	for _, e := range m.edges[from.Province] {
		if e.to != to.Province {
			continue
		}
		if branch == diplomat.Fleet && !e.fleet {
			continue
		}
		if branch == diplomat.Army && !e.army {
			continue
		}
		if from.Coast != diplomat.NoCoast && e.fromCoast != diplomat.NoCoast && e.fromCoast != from.Coast {
			continue
		}
		if to.Coast != diplomat.NoCoast && e.toCoast != diplomat.NoCoast && e.toCoast != to.Coast {
			continue
		}
		return true
	}
	return false
}
