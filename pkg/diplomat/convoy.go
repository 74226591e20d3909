package diplomat

// convoyFleetsFor returns every Convoy order matching o's exact move (same
// army province and destination), regardless of whether the fleet's order
// ultimately survives.
func (r *Resolver) convoyFleetsFor(o *Order) []*Order {
	var out []*Order
	for _, n := range r.nodes {
		c := n.order
		if c.Kind == Convoy && c.AuxAt.Province == o.At.Province && c.AuxDest.Province == o.Dest.Province {
			out = append(out, c)
		}
	}
	return out
}

// hasConvoyPath reports whether a surviving chain of convoying fleets
// connects o's origin to its destination.
func (r *Resolver) hasConvoyPath(o *Order) bool {
	return r.convoyPath(o) != nil
}

// convoyPath returns the fleet provinces of one surviving convoy path from
// o's origin to its destination, or nil if none exists. Multiple
// independent convoy routes (multi-route convoys) are supported: any
// single surviving path is enough for the move to succeed.
func (r *Resolver) convoyPath(o *Order) []Province {
	fleets := r.convoyFleetsFor(o)
	if len(fleets) == 0 {
		return nil
	}

	alive := make(map[Province]bool, len(fleets))
	for _, f := range fleets {
		if r.succeeds(f.Ref()) {
			alive[f.At.Province] = true
		}
	}
	if len(alive) == 0 {
		return nil
	}

	start, goal := o.At.Province, o.Dest.Province

	visited := make(map[Province]bool, len(alive))
	parent := make(map[Province]Province, len(alive))
	var queue []Province
	for p := range alive {
		if r.mp.Adjacent(Fleet, At(start), At(p)) {
			visited[p] = true
			queue = append(queue, p)
		}
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if r.mp.Adjacent(Fleet, At(cur), At(goal)) {
			path := []Province{cur}
			for {
				p, ok := parent[cur]
				if !ok {
					break
				}
				path = append(path, p)
				cur = p
			}
			return path
		}
		for p := range alive {
			if visited[p] {
				continue
			}
			if r.mp.Adjacent(Fleet, At(cur), At(p)) {
				visited[p] = true
				parent[p] = cur
				queue = append(queue, p)
			}
		}
	}
	return nil
}
