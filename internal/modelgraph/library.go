package modelgraph

import (
	"slices"

	"github.com/specialistvlad/sysmlgraph/internal/element"
	"github.com/specialistvlad/sysmlgraph/internal/kind"
)

// AddLibraryPackage inserts a root package and registers it as a library.
func (g *Graph) AddLibraryPackage(e *element.Element) (element.ID, error) {
	if e == nil {
		return element.Nil, &Error{Op: "add library package", Err: ErrNilValue}
	}
	if !e.Kind().IsSubtypeOf(kind.Package) {
		return element.Nil, &Error{Op: "add library package", Err: ErrNotLibraryCandidate, ID: e.ID(), Kind: e.Kind()}
	}
	id, err := g.insert("add library package", e, element.Nil, element.Public, false)
	if err != nil {
		return element.Nil, err
	}
	g.registerLibrary(id)
	return id, nil
}

// RegisterLibraryPackage marks an existing root package as a library.
// Registering twice is a no-op.
func (g *Graph) RegisterLibraryPackage(id element.ID) error {
	const op = "register library package"
	e, ok := g.elements[id]
	if !ok {
		return &Error{Op: op, Err: ErrUnknownElement, ID: id}
	}
	if _, owned := e.Owner(); owned || !e.Kind().IsSubtypeOf(kind.Package) {
		return &Error{Op: op, Err: ErrNotLibraryCandidate, ID: id, Kind: e.Kind()}
	}
	g.registerLibrary(id)
	return nil
}

// UnregisterLibraryPackage clears the library mark. It reports whether id
// was registered.
func (g *Graph) UnregisterLibraryPackage(id element.ID) bool {
	if _, ok := g.libraries[id]; !ok {
		return false
	}
	g.unregisterLibrary(id)
	return true
}

// IsLibraryPackage reports whether id is a registered library package.
func (g *Graph) IsLibraryPackage(id element.ID) bool {
	_, ok := g.libraries[id]
	return ok
}

// LibraryPackages lists library packages in registration order.
func (g *Graph) LibraryPackages() []element.ID {
	return slices.Clone(g.libOrder)
}

func (g *Graph) registerLibrary(id element.ID) {
	if _, ok := g.libraries[id]; ok {
		return
	}
	g.libraries[id] = struct{}{}
	g.libOrder = append(g.libOrder, id)
}

func (g *Graph) unregisterLibrary(id element.ID) {
	if _, ok := g.libraries[id]; !ok {
		return
	}
	delete(g.libraries, id)
	g.libOrder = slices.DeleteFunc(g.libOrder, func(x element.ID) bool { return x == id })
}

// Merge copies every element and relationship of other into g, keeping
// other's ownership, insertion order, and library registrations. With
// asLibrary set, every root package of other is also registered as a
// library. Any ID present in both graphs rejects the whole merge and leaves
// g unchanged. other is not modified.
func (g *Graph) Merge(other *Graph, asLibrary bool) error {
	const op = "merge"
	if other == nil {
		return &Error{Op: op, Err: ErrNilValue}
	}
	for _, id := range other.order {
		if g.Contains(id) {
			return &Error{Op: op, Err: ErrDuplicateID, ID: id}
		}
	}
	for _, id := range other.relOrder {
		if g.Contains(id) {
			return &Error{Op: op, Err: ErrDuplicateID, ID: id}
		}
	}

	for _, id := range other.order {
		g.elements[id] = other.elements[id].Clone()
		g.order = append(g.order, id)
		if ms := other.children[id]; len(ms) > 0 {
			g.children[id] = slices.Clone(ms)
		}
	}
	for _, id := range other.relOrder {
		g.indexRelationship(other.relationships[id].Clone())
	}

	for _, id := range other.libOrder {
		g.registerLibrary(id)
	}
	if asLibrary {
		for _, id := range other.Roots() {
			if other.elements[id].Kind().IsSubtypeOf(kind.Package) {
				g.registerLibrary(id)
			}
		}
	}
	return nil
}
