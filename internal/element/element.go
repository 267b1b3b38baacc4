package element

import (
	"github.com/specialistvlad/sysmlgraph/internal/kind"
	"github.com/zclconf/go-cty/cty"
)

// Element is a node of the model graph. Identity, kind, and ownership are
// fixed once the element is stored in a graph; the property bag stays
// mutable.
type Element struct {
	Bag

	id         ID
	kind       kind.Kind
	name       string
	hasName    bool
	owner      ID
	hasOwner   bool
	visibility Visibility
}

// New returns a detached element of kind k with a fresh ID, no name, no
// owner, and public visibility.
func New(k kind.Kind) *Element {
	return NewWithID(NewID(), k)
}

// NewWithID is New with a caller-supplied ID.
func NewWithID(id ID, k kind.Kind) *Element {
	return &Element{id: id, kind: k}
}

func (e *Element) ID() ID {
	return e.id
}

func (e *Element) Kind() kind.Kind {
	return e.kind
}

// Name returns the declared name, if any.
func (e *Element) Name() (string, bool) {
	return e.name, e.hasName
}

// Owner returns the owning element, if any.
func (e *Element) Owner() (ID, bool) {
	return e.owner, e.hasOwner
}

// Visibility is the visibility of the membership that owns e. Root elements
// report Public.
func (e *Element) Visibility() Visibility {
	return e.visibility
}

// Clone returns a deep copy of e.
func (e *Element) Clone() *Element {
	c := *e
	c.Bag = e.Bag.clone()
	return &c
}

// WithID returns a copy of e with a different ID.
func (e *Element) WithID(id ID) *Element {
	c := e.Clone()
	c.id = id
	return c
}

// WithName returns a copy of e with its declared name set.
func (e *Element) WithName(name string) *Element {
	c := e.Clone()
	c.name, c.hasName = name, true
	return c
}

// WithoutName returns a copy of e with no declared name.
func (e *Element) WithoutName() *Element {
	c := e.Clone()
	c.name, c.hasName = "", false
	return c
}

// WithOwner returns a copy of e that names owner as its owner. It only has an
// effect when the copy is inserted into a graph; afterwards ownership changes
// go through the graph.
func (e *Element) WithOwner(owner ID) *Element {
	c := e.Clone()
	c.owner, c.hasOwner = owner, true
	return c
}

// WithoutOwner returns a copy of e with no owner and public visibility.
func (e *Element) WithoutOwner() *Element {
	c := e.Clone()
	c.owner, c.hasOwner = Nil, false
	c.visibility = Public
	return c
}

// WithVisibility returns a copy of e with its membership visibility set.
func (e *Element) WithVisibility(v Visibility) *Element {
	c := e.Clone()
	c.visibility = v
	return c
}

// WithProperty returns a copy of e with key set to the converted value of v.
// Values that cannot be converted are stored as null; callers that need the
// conversion error use SetValue instead.
func (e *Element) WithProperty(key string, v any) *Element {
	c := e.Clone()
	if err := c.SetValue(key, v); err != nil {
		c.SetProperty(key, cty.NullVal(cty.DynamicPseudoType))
	}
	return c
}
