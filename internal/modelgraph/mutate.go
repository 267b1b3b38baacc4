package modelgraph

import (
	"slices"

	"github.com/specialistvlad/sysmlgraph/internal/element"
)

// Removal reports the effect of a removal.
type Removal struct {
	// Removed lists the removed IDs in pre-order.
	Removed []element.ID
	// Dangling lists relationships, still in the graph, whose source or
	// target was removed.
	Dangling []element.ID
}

// AddElement inserts e and returns its ID. The graph stores a copy of e;
// use Get to reach the stored element. An element with a Nil ID is given a
// fresh one. An element that names an owner through WithOwner is inserted as
// that owner's last child with the element's own visibility; otherwise it
// becomes a root.
func (g *Graph) AddElement(e *element.Element) (element.ID, error) {
	if e == nil {
		return element.Nil, &Error{Op: "add element", Err: ErrNilValue}
	}
	if owner, ok := e.Owner(); ok {
		return g.insert("add element", e, owner, e.Visibility(), true)
	}
	return g.insert("add element", e, element.Nil, element.Public, false)
}

// AddOwnedElement inserts e as the last child of owner with the given
// membership visibility. The owner must be an element; relationships never
// own anything.
func (g *Graph) AddOwnedElement(e *element.Element, owner element.ID, vis element.Visibility) (element.ID, error) {
	if e == nil {
		return element.Nil, &Error{Op: "add owned element", Err: ErrNilValue, Related: owner}
	}
	return g.insert("add owned element", e, owner, vis, true)
}

func (g *Graph) insert(op string, e *element.Element, owner element.ID, vis element.Visibility, owned bool) (element.ID, error) {
	id := e.ID()
	if id.IsNil() {
		id = element.NewID()
	}
	if !e.Kind().Valid() {
		return element.Nil, &Error{Op: op, Err: ErrInvalidKind, ID: id, Kind: e.Kind()}
	}
	if g.Contains(id) {
		return element.Nil, &Error{Op: op, Err: ErrDuplicateID, ID: id}
	}
	if owned {
		if _, ok := g.elements[owner]; !ok {
			return element.Nil, &Error{Op: op, Err: ErrUnknownOwner, ID: id, Related: owner}
		}
	}

	stored := e.WithID(id)
	if owned {
		stored = stored.WithOwner(owner).WithVisibility(vis)
		g.children[owner] = append(g.children[owner], Membership{Owner: owner, Member: id, Visibility: vis})
	} else {
		stored = stored.WithoutOwner()
	}
	g.elements[id] = stored
	g.order = append(g.order, id)
	return id, nil
}

// MoveElement makes id the last child of newOwner with the given visibility.
// It fails with ErrCyclicOwnership when newOwner is id itself or one of its
// descendants.
func (g *Graph) MoveElement(id, newOwner element.ID, vis element.Visibility) error {
	const op = "move element"
	stored, ok := g.elements[id]
	if !ok {
		return &Error{Op: op, Err: ErrUnknownElement, ID: id}
	}
	if _, ok := g.elements[newOwner]; !ok {
		return &Error{Op: op, Err: ErrUnknownOwner, ID: id, Related: newOwner}
	}
	if newOwner == id || g.IsAncestor(id, newOwner) {
		return &Error{Op: op, Err: ErrCyclicOwnership, ID: id, Related: newOwner}
	}

	g.unlink(stored)
	g.children[newOwner] = append(g.children[newOwner], Membership{Owner: newOwner, Member: id, Visibility: vis})
	*stored = *stored.WithOwner(newOwner).WithVisibility(vis)
	return nil
}

// Detach turns an owned element into a root. Detaching a root is a no-op.
func (g *Graph) Detach(id element.ID) error {
	stored, ok := g.elements[id]
	if !ok {
		return &Error{Op: "detach element", Err: ErrUnknownElement, ID: id}
	}
	g.unlink(stored)
	*stored = *stored.WithoutOwner()
	return nil
}

// unlink removes e from its owner's membership list.
func (g *Graph) unlink(e *element.Element) {
	owner, ok := e.Owner()
	if !ok {
		return
	}
	ms := slices.DeleteFunc(g.children[owner], func(m Membership) bool { return m.Member == e.ID() })
	if len(ms) == 0 {
		delete(g.children, owner)
		return
	}
	g.children[owner] = ms
}

// RemoveElement removes id together with everything it owns, directly or
// transitively. Relationships touching a removed element are not removed;
// they are listed in Removal.Dangling.
func (g *Graph) RemoveElement(id element.ID) (Removal, error) {
	stored, ok := g.elements[id]
	if !ok {
		return Removal{}, &Error{Op: "remove element", Err: ErrUnknownElement, ID: id}
	}

	var removed []element.ID
	var walk func(element.ID)
	walk = func(cur element.ID) {
		removed = append(removed, cur)
		for _, m := range g.children[cur] {
			walk(m.Member)
		}
	}
	walk(id)

	g.unlink(stored)
	gone := make(map[element.ID]bool, len(removed))
	for _, rid := range removed {
		gone[rid] = true
		delete(g.elements, rid)
		delete(g.children, rid)
		g.unregisterLibrary(rid)
	}
	g.order = slices.DeleteFunc(g.order, func(x element.ID) bool { return gone[x] })

	return Removal{Removed: removed, Dangling: g.danglingAfter(gone)}, nil
}

// AddRelationship inserts r and returns its ID. Both endpoints must already
// be in the graph, as elements or relationships. Endpoint kinds are not
// checked here.
func (g *Graph) AddRelationship(r *element.Relationship) (element.ID, error) {
	const op = "add relationship"
	if r == nil {
		return element.Nil, &Error{Op: op, Err: ErrNilValue}
	}
	id := r.ID()
	if id.IsNil() {
		id = element.NewID()
	}
	if !r.Kind().IsRelationship() {
		return element.Nil, &Error{Op: op, Err: ErrNotARelationship, ID: id, Kind: r.Kind()}
	}
	if g.Contains(id) {
		return element.Nil, &Error{Op: op, Err: ErrDuplicateID, ID: id}
	}
	for _, end := range []element.ID{r.Source(), r.Target()} {
		if end == id || !g.Contains(end) {
			return element.Nil, &Error{Op: op, Err: ErrUnknownElement, ID: id, Related: end}
		}
	}

	g.indexRelationship(r.WithID(id))
	return id, nil
}

func (g *Graph) indexRelationship(r *element.Relationship) {
	id := r.ID()
	g.relationships[id] = r
	g.relOrder = append(g.relOrder, id)
	g.byKind[r.Kind()] = append(g.byKind[r.Kind()], id)
	g.touching[r.Source()] = append(g.touching[r.Source()], id)
	if r.Target() != r.Source() {
		g.touching[r.Target()] = append(g.touching[r.Target()], id)
	}
}

// RemoveRelationship removes a single relationship. Relationships that use
// it as an endpoint are kept and listed in Removal.Dangling.
func (g *Graph) RemoveRelationship(id element.ID) (Removal, error) {
	r, ok := g.relationships[id]
	if !ok {
		return Removal{}, &Error{Op: "remove relationship", Err: ErrUnknownElement, ID: id}
	}

	delete(g.relationships, id)
	drop := func(ids []element.ID) []element.ID {
		return slices.DeleteFunc(ids, func(x element.ID) bool { return x == id })
	}
	g.relOrder = drop(g.relOrder)
	g.byKind[r.Kind()] = drop(g.byKind[r.Kind()])
	for _, end := range []element.ID{r.Source(), r.Target()} {
		if rest := drop(g.touching[end]); len(rest) > 0 {
			g.touching[end] = rest
		} else {
			delete(g.touching, end)
		}
	}

	return Removal{Removed: []element.ID{id}, Dangling: g.danglingAfter(map[element.ID]bool{id: true})}, nil
}

// danglingAfter lists, in insertion order, relationships with an endpoint in
// gone.
func (g *Graph) danglingAfter(gone map[element.ID]bool) []element.ID {
	var out []element.ID
	for _, rid := range g.relOrder {
		r := g.relationships[rid]
		if gone[r.Source()] || gone[r.Target()] {
			out = append(out, rid)
		}
	}
	return out
}
