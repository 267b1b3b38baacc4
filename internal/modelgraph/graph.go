package modelgraph

import (
	"slices"

	"github.com/specialistvlad/sysmlgraph/internal/element"
	"github.com/specialistvlad/sysmlgraph/internal/kind"
)

// Graph stores elements, relationships, and the ownership forest. The zero
// value is not usable; call New.
type Graph struct {
	elements map[element.ID]*element.Element
	order    []element.ID

	relationships map[element.ID]*element.Relationship
	relOrder      []element.ID
	byKind        map[kind.Kind][]element.ID
	touching      map[element.ID][]element.ID

	children map[element.ID][]Membership

	libraries map[element.ID]struct{}
	libOrder  []element.ID
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		elements:      make(map[element.ID]*element.Element),
		relationships: make(map[element.ID]*element.Relationship),
		byKind:        make(map[kind.Kind][]element.ID),
		touching:      make(map[element.ID][]element.ID),
		children:      make(map[element.ID][]Membership),
		libraries:     make(map[element.ID]struct{}),
	}
}

// Get returns the stored element. The pointer stays valid, and reflects
// ownership changes, for as long as the element is in the graph. Its
// property bag may be edited in place.
func (g *Graph) Get(id element.ID) (*element.Element, bool) {
	e, ok := g.elements[id]
	return e, ok
}

// Relationship returns the stored relationship.
func (g *Graph) Relationship(id element.ID) (*element.Relationship, bool) {
	r, ok := g.relationships[id]
	return r, ok
}

// Contains reports whether id names an element or a relationship.
func (g *Graph) Contains(id element.ID) bool {
	if _, ok := g.elements[id]; ok {
		return true
	}
	_, ok := g.relationships[id]
	return ok
}

// Len returns the number of elements.
func (g *Graph) Len() int {
	return len(g.order)
}

// RelationshipCount returns the number of relationships.
func (g *Graph) RelationshipCount() int {
	return len(g.relOrder)
}

// Elements lists every element in insertion order.
func (g *Graph) Elements() []element.ID {
	return slices.Clone(g.order)
}

// Relationships lists every relationship in insertion order.
func (g *Graph) Relationships() []element.ID {
	return slices.Clone(g.relOrder)
}

// Roots lists the elements without an owner, in insertion order.
func (g *Graph) Roots() []element.ID {
	var roots []element.ID
	for _, id := range g.order {
		if _, owned := g.elements[id].Owner(); !owned {
			roots = append(roots, id)
		}
	}
	return roots
}

// ElementsOfKind lists elements whose kind is exactly k.
func (g *Graph) ElementsOfKind(k kind.Kind) []element.ID {
	var out []element.ID
	for _, id := range g.order {
		if g.elements[id].Kind() == k {
			out = append(out, id)
		}
	}
	return out
}

// Owner returns the owner of an element.
func (g *Graph) Owner(id element.ID) (element.ID, bool) {
	e, ok := g.elements[id]
	if !ok {
		return element.Nil, false
	}
	return e.Owner()
}

// OwnedChildren lists the direct children of owner in insertion order.
func (g *Graph) OwnedChildren(owner element.ID) []element.ID {
	ms := g.children[owner]
	out := make([]element.ID, len(ms))
	for i, m := range ms {
		out[i] = m.Member
	}
	return out
}

// Memberships lists the ownership edges leaving owner in insertion order.
func (g *Graph) Memberships(owner element.ID) []Membership {
	return slices.Clone(g.children[owner])
}

// RelationshipsOfKind lists relationships whose kind is exactly k.
func (g *Graph) RelationshipsOfKind(k kind.Kind) []element.ID {
	return slices.Clone(g.byKind[k])
}

// RelationshipsTouching lists relationships that have id as source or
// target. A relationship from id to itself appears once.
func (g *Graph) RelationshipsTouching(id element.ID) []element.ID {
	return slices.Clone(g.touching[id])
}

// Outgoing lists relationships whose source is id.
func (g *Graph) Outgoing(id element.ID) []element.ID {
	var out []element.ID
	for _, rid := range g.touching[id] {
		if g.relationships[rid].Source() == id {
			out = append(out, rid)
		}
	}
	return out
}

// Incoming lists relationships whose target is id.
func (g *Graph) Incoming(id element.ID) []element.ID {
	var out []element.ID
	for _, rid := range g.touching[id] {
		if g.relationships[rid].Target() == id {
			out = append(out, rid)
		}
	}
	return out
}
