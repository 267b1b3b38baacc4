package modelgraph

import (
	"github.com/specialistvlad/sysmlgraph/internal/element"
	"github.com/specialistvlad/sysmlgraph/internal/kind"
)

// Membership is an ownership edge from Owner to Member.
type Membership struct {
	Owner      element.ID
	Member     element.ID
	Visibility element.Visibility
}

// Reader is the read-only view of a model graph used by the validator and
// the query functions. *Graph implements it.
//
// Every method that returns a list returns a fresh slice in insertion order.
// Unknown IDs yield empty results rather than errors.
type Reader interface {
	// Get returns the element with the given ID.
	Get(id element.ID) (*element.Element, bool)

	// Relationship returns the relationship with the given ID.
	Relationship(id element.ID) (*element.Relationship, bool)

	// Contains reports whether id names an element or a relationship.
	Contains(id element.ID) bool

	// Elements lists every element.
	Elements() []element.ID

	// Relationships lists every relationship.
	Relationships() []element.ID

	// Roots lists the elements that have no owner.
	Roots() []element.ID

	// Owner returns the owner of an element.
	Owner(id element.ID) (element.ID, bool)

	// OwnedChildren lists the direct children of an owner.
	OwnedChildren(owner element.ID) []element.ID

	// Memberships lists the ownership edges leaving an owner.
	Memberships(owner element.ID) []Membership

	// RelationshipsOfKind lists relationships whose kind is exactly k.
	RelationshipsOfKind(k kind.Kind) []element.ID

	// RelationshipsTouching lists relationships with id as source or target.
	RelationshipsTouching(id element.ID) []element.ID
}

var _ Reader = (*Graph)(nil)
