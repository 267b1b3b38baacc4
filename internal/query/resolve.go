package query

import (
	"github.com/specialistvlad/sysmlgraph/internal/element"
	"github.com/specialistvlad/sysmlgraph/internal/modelgraph"
	"github.com/specialistvlad/sysmlgraph/internal/qname"
)

// ResolveQualifiedName walks path down the ownership tree and returns the
// element it names.
//
// With a nil scope the first segment is matched against the roots. With a
// scope it is matched against the scope's members first and against the
// roots if none match. Each later segment is matched against the members of
// the element found so far. A member is a match when its declared name
// equals the segment and its membership is visible from the scope: public
// members always are, private and protected members only when the scope lies
// inside the owner's subtree. The first visible match is taken at every step;
// there is no backtracking.
func ResolveQualifiedName(g modelgraph.Reader, scope *element.ID, path []string) (element.ID, bool) {
	if len(path) == 0 {
		return element.Nil, false
	}

	var cur element.ID
	found := false
	if scope != nil {
		cur, found = member(g, *scope, path[0], scope)
	}
	if !found {
		cur, found = rootNamed(g, path[0])
	}
	if !found {
		return element.Nil, false
	}

	for _, segment := range path[1:] {
		cur, found = member(g, cur, segment, scope)
		if !found {
			return element.Nil, false
		}
	}
	return cur, true
}

// ResolveString parses a "::" separated name and resolves it like
// ResolveQualifiedName. Malformed names resolve to nothing.
func ResolveString(g modelgraph.Reader, scope *element.ID, name string) (element.ID, bool) {
	n, err := qname.Parse(name)
	if err != nil {
		return element.Nil, false
	}
	return ResolveQualifiedName(g, scope, n.Segments())
}

func rootNamed(g modelgraph.Reader, name string) (element.ID, bool) {
	for _, id := range g.Roots() {
		if hasName(g, id, name) {
			return id, true
		}
	}
	return element.Nil, false
}

func member(g modelgraph.Reader, owner element.ID, name string, from *element.ID) (element.ID, bool) {
	for _, m := range g.Memberships(owner) {
		if hasName(g, m.Member, name) && visibleFrom(g, m, from) {
			return m.Member, true
		}
	}
	return element.Nil, false
}

func hasName(g modelgraph.Reader, id element.ID, name string) bool {
	e, ok := g.Get(id)
	if !ok {
		return false
	}
	n, named := e.Name()
	return named && n == name
}

// visibleFrom reports whether m can be seen from the resolution point from.
// A nil point is outside every element.
func visibleFrom(g modelgraph.Reader, m modelgraph.Membership, from *element.ID) bool {
	if m.Visibility == element.Public {
		return true
	}
	if from == nil {
		return false
	}
	return *from == m.Owner || isAncestor(g, m.Owner, *from)
}

func isAncestor(g modelgraph.Reader, a, b element.ID) bool {
	for cur, ok := g.Owner(b); ok; cur, ok = g.Owner(cur) {
		if cur == a {
			return true
		}
	}
	return false
}

// VisibleMembers lists the members of ns that can be seen from the
// resolution point from. With a nil point only public members are listed.
func VisibleMembers(g modelgraph.Reader, ns element.ID, from *element.ID) []element.ID {
	var out []element.ID
	for _, m := range g.Memberships(ns) {
		if visibleFrom(g, m, from) {
			out = append(out, m.Member)
		}
	}
	return out
}

// MembersWithVisibility lists the members of ns whose membership has
// exactly the given visibility.
func MembersWithVisibility(g modelgraph.Reader, ns element.ID, vis element.Visibility) []element.ID {
	var out []element.ID
	for _, m := range g.Memberships(ns) {
		if m.Visibility == vis {
			out = append(out, m.Member)
		}
	}
	return out
}

// QualifiedName joins the declared names from the root down to id. It
// reports false when id is unknown or anything on the path is unnamed. An
// empty declared name counts as unnamed.
func QualifiedName(g modelgraph.Reader, id element.ID) (qname.Name, bool) {
	chain := append([]element.ID{id}, Ancestors(g, id)...)
	segments := make([]string, len(chain))
	for i, cur := range chain {
		e, ok := g.Get(cur)
		if !ok {
			return qname.Name{}, false
		}
		name, named := e.Name()
		if !named || name == "" {
			return qname.Name{}, false
		}
		segments[len(chain)-1-i] = name
	}
	return qname.New(segments...), true
}
