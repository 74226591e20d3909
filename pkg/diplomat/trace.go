package diplomat

import (
	"fmt"
	"sort"
	"strings"
)

// Trace records the dependency graph a Resolver walks while adjudicating —
// which order's evaluation needed which other order's result — for
// debugging cycles and paradoxes. Attach one with Resolver.WithTrace
// before calling Resolve.
type Trace struct {
	edges   map[OrderRef]map[OrderRef]bool
	outcome map[OrderRef]bool
	stack   []OrderRef
}

// NewTrace creates an empty Trace ready to attach to a Resolver.
func NewTrace() *Trace {
	return &Trace{
		edges:   make(map[OrderRef]map[OrderRef]bool),
		outcome: make(map[OrderRef]bool),
	}
}

func (t *Trace) enter(ref OrderRef) {
	if len(t.stack) > 0 {
		parent := t.stack[len(t.stack)-1]
		if t.edges[parent] == nil {
			t.edges[parent] = make(map[OrderRef]bool)
		}
		t.edges[parent][ref] = true
	}
	t.stack = append(t.stack, ref)
}

func (t *Trace) leave(ref OrderRef, result bool) {
	t.outcome[ref] = result
	if n := len(t.stack); n > 0 && t.stack[n-1] == ref {
		t.stack = t.stack[:n-1]
	}
}

// DOT renders the recorded dependency graph in Graphviz dot format, with
// each node labeled by its final boolean resolution.
func (t *Trace) DOT() string {
	nodes := make(map[OrderRef]bool)
	for from, tos := range t.edges {
		nodes[from] = true
		for to := range tos {
			nodes[to] = true
		}
	}
	byName := make(map[string]OrderRef, len(nodes))
	names := make([]string, 0, len(nodes))
	for n := range nodes {
		name := n.String()
		names = append(names, name)
		byName[name] = n
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("digraph dependencies {\n")
	for _, name := range names {
		ref := byName[name]
		label := "unresolved"
		if v, ok := t.outcome[ref]; ok {
			label = fmt.Sprintf("%v", v)
		}
		fmt.Fprintf(&b, "  %q [label=%q];\n", name, name+"\\n"+label)
	}
	for _, fromName := range names {
		tos := t.edges[byName[fromName]]
		toNames := make([]string, 0, len(tos))
		for to := range tos {
			toNames = append(toNames, to.String())
		}
		sort.Strings(toNames)
		for _, toName := range toNames {
			fmt.Fprintf(&b, "  %q -> %q;\n", fromName, toName)
		}
	}
	b.WriteString("}\n")
	return b.String()
}
