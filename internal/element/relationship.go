package element

import "github.com/specialistvlad/sysmlgraph/internal/kind"

// Relationship is a directed edge between two graph members. It shares the ID
// space of elements and refers to its endpoints by ID only. A relationship is
// never an owner.
type Relationship struct {
	Bag

	id     ID
	kind   kind.Kind
	source ID
	target ID
}

// NewRelationship returns a relationship of kind k with a fresh ID.
func NewRelationship(k kind.Kind, source, target ID) *Relationship {
	return NewRelationshipWithID(NewID(), k, source, target)
}

// NewRelationshipWithID is NewRelationship with a caller-supplied ID.
func NewRelationshipWithID(id ID, k kind.Kind, source, target ID) *Relationship {
	return &Relationship{id: id, kind: k, source: source, target: target}
}

func (r *Relationship) ID() ID {
	return r.id
}

func (r *Relationship) Kind() kind.Kind {
	return r.kind
}

func (r *Relationship) Source() ID {
	return r.source
}

func (r *Relationship) Target() ID {
	return r.target
}

// Touches reports whether id is the source or the target of r.
func (r *Relationship) Touches(id ID) bool {
	return r.source == id || r.target == id
}

// Clone returns a deep copy of r.
func (r *Relationship) Clone() *Relationship {
	c := *r
	c.Bag = r.Bag.clone()
	return &c
}

// WithID returns a copy of r with a different ID.
func (r *Relationship) WithID(id ID) *Relationship {
	c := r.Clone()
	c.id = id
	return c
}
