package element

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// RefType is the cty type of a property value that points at another element
// or relationship in the same graph.
var RefType = cty.CapsuleWithOps("element", reflect.TypeOf(ID{}), &cty.CapsuleOps{
	GoString: func(v interface{}) string {
		return fmt.Sprintf("element.RefVal(%q)", v.(*ID).String())
	},
	TypeGoString: func(reflect.Type) string {
		return "element.RefType"
	},
	Equals: func(a, b interface{}) cty.Value {
		return cty.BoolVal(*a.(*ID) == *b.(*ID))
	},
	RawEquals: func(a, b interface{}) bool {
		return *a.(*ID) == *b.(*ID)
	},
	HashKey: func(v interface{}) string {
		return v.(*ID).String()
	},
})

// RefVal wraps id as a cty value of RefType.
func RefVal(id ID) cty.Value {
	return cty.CapsuleVal(RefType, &id)
}

// RefFromValue unwraps a known, non-null RefType value.
func RefFromValue(v cty.Value) (ID, bool) {
	if v == cty.NilVal || v.IsNull() || !v.IsKnown() || !v.Type().Equals(RefType) {
		return Nil, false
	}
	return *v.EncapsulatedValue().(*ID), true
}

// Refs collects every element reference held anywhere inside v, including
// inside collections and objects, in traversal order.
func Refs(v cty.Value) []ID {
	var out []ID
	if v == cty.NilVal {
		return out
	}
	_ = cty.Walk(v, func(_ cty.Path, inner cty.Value) (bool, error) {
		if id, ok := RefFromValue(inner); ok {
			out = append(out, id)
		}
		return true, nil
	})
	return out
}

// Bag is the open, string-keyed property store shared by elements and
// relationships. The zero value is ready to use. Bag never rejects a key or
// a value.
type Bag struct {
	values map[string]cty.Value
}

// SetProperty stores v under key. A cty.NilVal is stored as a dynamic null.
func (b *Bag) SetProperty(key string, v cty.Value) {
	if v == cty.NilVal {
		v = cty.NullVal(cty.DynamicPseudoType)
	}
	if b.values == nil {
		b.values = make(map[string]cty.Value)
	}
	b.values[key] = v
}

// SetValue converts a native Go value to cty and stores it under key. IDs and
// slices of IDs become element references. It returns an error, and leaves
// the bag unchanged, when no cty type can be implied for v.
func (b *Bag) SetValue(key string, v any) error {
	val, err := ToValue(v)
	if err != nil {
		return fmt.Errorf("property %q: %w", key, err)
	}
	b.SetProperty(key, val)
	return nil
}

// Property returns the value stored under key.
func (b *Bag) Property(key string) (cty.Value, bool) {
	v, ok := b.values[key]
	return v, ok
}

// DeleteProperty removes key. Deleting an absent key is a no-op.
func (b *Bag) DeleteProperty(key string) {
	delete(b.values, key)
}

// PropertyKeys returns the stored keys in lexical order.
func (b *Bag) PropertyKeys() []string {
	keys := make([]string, 0, len(b.values))
	for k := range b.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// PropertyCount returns the number of stored keys.
func (b *Bag) PropertyCount() int {
	return len(b.values)
}

// clone copies the map. cty values are immutable, so a shallow copy is a
// full copy.
func (b Bag) clone() Bag {
	if b.values == nil {
		return Bag{}
	}
	values := make(map[string]cty.Value, len(b.values))
	for k, v := range b.values {
		values[k] = v
	}
	return Bag{values: values}
}

// ToValue converts a native Go value into its cty equivalent.
func ToValue(v any) (cty.Value, error) {
	switch tv := v.(type) {
	case nil:
		return cty.NullVal(cty.DynamicPseudoType), nil
	case cty.Value:
		return tv, nil
	case ID:
		return RefVal(tv), nil
	case []ID:
		if len(tv) == 0 {
			return cty.ListValEmpty(RefType), nil
		}
		refs := make([]cty.Value, len(tv))
		for i, id := range tv {
			refs[i] = RefVal(id)
		}
		return cty.ListVal(refs), nil
	}

	ty, err := gocty.ImpliedType(v)
	if err != nil {
		return cty.NilVal, fmt.Errorf("unable to infer cty.Type: %w", err)
	}
	return gocty.ToCtyValue(v, ty)
}
