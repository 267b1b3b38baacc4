package props

import (
	"github.com/specialistvlad/sysmlgraph/internal/element"
	"github.com/zclconf/go-cty/cty"
)

// Reason classifies why a property value does not fit its declaration.
type Reason string

const (
	ReasonMissing      Reason = "missing"
	ReasonTypeMismatch Reason = "type mismatch"
	ReasonInvalidValue Reason = "invalid value"
	ReasonUnresolved   Reason = "unresolved reference"
	ReasonUnknown      Reason = "unknown property"
)

// Check tests the value stored under p.Name, as returned by Bag.Property,
// against p. resolves reports whether a referenced ID exists; a nil
// resolves skips reference checks. The first failing rule wins, in the order
// missing, type mismatch, invalid value, unresolved reference.
func (p Property) Check(v cty.Value, present bool, resolves func(element.ID) bool) (Reason, bool) {
	if !present || v == cty.NilVal || v.IsNull() {
		if p.Required {
			return ReasonMissing, false
		}
		return "", true
	}
	if !conforms(p.Type, v) {
		return ReasonTypeMismatch, false
	}
	if p.Enum != "" && v.IsKnown() && !p.Allows(v.AsString()) {
		return ReasonInvalidValue, false
	}
	if resolves != nil {
		for _, id := range element.Refs(v) {
			if !resolves(id) {
				return ReasonUnresolved, false
			}
		}
	}
	return "", true
}

// conforms is stricter than cty conversion: a string never satisfies a
// number property. Tuples and objects stand in for collection types when
// every member conforms.
func conforms(want cty.Type, v cty.Value) bool {
	if want == cty.DynamicPseudoType || v.IsNull() || !v.IsKnown() {
		return true
	}
	got := v.Type()
	switch {
	case want.IsPrimitiveType(), want.IsCapsuleType():
		return got.Equals(want)
	case want.IsListType(), want.IsSetType():
		if !got.IsListType() && !got.IsSetType() && !got.IsTupleType() {
			return false
		}
	case want.IsMapType():
		if !got.IsMapType() && !got.IsObjectType() {
			return false
		}
	default:
		return got.Equals(want)
	}

	elem := want.ElementType()
	for it := v.ElementIterator(); it.Next(); {
		_, member := it.Element()
		if !conforms(elem, member) {
			return false
		}
	}
	return true
}
