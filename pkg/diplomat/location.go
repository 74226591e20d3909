package diplomat

// Province is an opaque province identifier supplied by the geography
// collaborator (see Map). The core never interprets its contents; it only
// compares provinces for equality and asks the Map about adjacency.
type Province string

// Coast distinguishes a fleet's position on a split-coast province (e.g.
// Spain's north and south coasts). NoCoast is used for every army location,
// every single-coast province, and for the province-level identity of a
// split-coast province when the particular coast does not matter.
type Coast string

const (
	NoCoast    Coast = ""
	NorthCoast Coast = "nc"
	SouthCoast Coast = "sc"
	EastCoast  Coast = "ec"
	WestCoast  Coast = "wc"
)

// Location is a province together with the coast a fleet occupies there.
// Two locations in the same province but different coasts are distinct
// destinations for adjacency purposes, but refer to the same province for
// occupancy, dislodgement and support-cutting purposes.
type Location struct {
	Province Province
	Coast    Coast
}

// At builds a coastless location, the common case for armies and for
// fleets on single-coast provinces.
func At(p Province) Location {
	return Location{Province: p}
}

// AtCoast builds a location on a specific coast of a split-coast province.
func AtCoast(p Province, c Coast) Location {
	return Location{Province: p, Coast: c}
}

// SameProvince reports whether two locations name the same province,
// ignoring coast. This is the equality used for occupancy, dislodgement,
// support-cutting and convoy path membership.
func (l Location) SameProvince(other Location) bool {
	return l.Province == other.Province
}

// Equal reports whether two locations are identical, including coast. This
// is the equality used when checking whether a move order's declared
// destination coast matches an adjacency offered by the map.
func (l Location) Equal(other Location) bool {
	return l == other
}

func (l Location) String() string {
	if l.Coast == NoCoast {
		return string(l.Province)
	}
	return string(l.Province) + "/" + string(l.Coast)
}
