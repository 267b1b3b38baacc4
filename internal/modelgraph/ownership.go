package modelgraph

import (
	"github.com/specialistvlad/sysmlgraph/internal/element"
	"github.com/specialistvlad/sysmlgraph/internal/qname"
)

// Ancestors lists the owners of id, nearest first. The result is empty for
// roots and unknown IDs.
func (g *Graph) Ancestors(id element.ID) []element.ID {
	var out []element.ID
	for cur, ok := g.Owner(id); ok; cur, ok = g.Owner(cur) {
		out = append(out, cur)
	}
	return out
}

// IsAncestor reports whether a owns b directly or transitively. An element
// is not its own ancestor.
func (g *Graph) IsAncestor(a, b element.ID) bool {
	for cur, ok := g.Owner(b); ok; cur, ok = g.Owner(cur) {
		if cur == a {
			return true
		}
	}
	return false
}

// Depth returns the number of owners above id. Roots have depth 0.
func (g *Graph) Depth(id element.ID) int {
	n := 0
	for cur, ok := g.Owner(id); ok; cur, ok = g.Owner(cur) {
		n++
	}
	return n
}

// IsRoot reports whether id is an element without an owner.
func (g *Graph) IsRoot(id element.ID) bool {
	e, ok := g.elements[id]
	if !ok {
		return false
	}
	_, owned := e.Owner()
	return !owned
}

// QualifiedName joins the declared names of id and its ancestors, root
// first. It reports false when id is unknown or any element on the path is
// unnamed. An empty declared name counts as unnamed.
func (g *Graph) QualifiedName(id element.ID) (qname.Name, bool) {
	e, ok := g.elements[id]
	if !ok {
		return qname.Name{}, false
	}
	var rev []string
	for {
		name, named := e.Name()
		if !named || name == "" {
			return qname.Name{}, false
		}
		rev = append(rev, name)
		owner, owned := e.Owner()
		if !owned {
			break
		}
		e = g.elements[owner]
	}

	segments := make([]string, len(rev))
	for i, s := range rev {
		segments[len(rev)-1-i] = s
	}
	return qname.New(segments...), true
}
