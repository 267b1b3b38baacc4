package props

import (
	"maps"
	"slices"

	"github.com/specialistvlad/sysmlgraph/internal/kind"
	"github.com/zclconf/go-cty/cty"
)

// Property is one declared key of a kind's typed view.
type Property struct {
	// Name is the bag key.
	Name string
	// Type is the cty type a present value must conform to.
	// cty.DynamicPseudoType accepts anything.
	Type cty.Type
	// Required properties must be present and non-null.
	Required bool
	// Enum names the value enumeration of a string property, if any.
	Enum string
	// Values lists the allowed literals when Enum is set.
	Values []string
	// DeclaredOn is the kind whose manifest block declared the property.
	DeclaredOn kind.Kind
}

// TypeName renders Type in manifest syntax, e.g. "list(element)".
func (p Property) TypeName() string {
	return typeString(p.Type)
}

// Allows reports whether s is one of the enumerated values. Properties
// without an enumeration allow every string.
func (p Property) Allows(s string) bool {
	if p.Enum == "" {
		return true
	}
	return slices.Contains(p.Values, s)
}

// Schema maps kinds to their declared properties. A Schema is immutable once
// built and safe for concurrent use.
type Schema struct {
	declared map[kind.Kind][]Property
	enums    map[string][]string
}

func newSchema() *Schema {
	return &Schema{
		declared: make(map[kind.Kind][]Property),
		enums:    make(map[string][]string),
	}
}

// Declared returns the properties declared directly on k, in manifest order.
func (s *Schema) Declared(k kind.Kind) []Property {
	return slices.Clone(s.declared[k])
}

// Properties returns the effective properties of k: those declared on its
// supertypes, in supertype declaration order, followed by its own. A
// property redeclared lower in the taxonomy replaces the inherited one in
// place.
func (s *Schema) Properties(k kind.Kind) []Property {
	if !k.Valid() {
		return nil
	}
	var out []Property
	index := make(map[string]int)
	for _, src := range append(k.Supertypes(), k) {
		for _, p := range s.declared[src] {
			if i, ok := index[p.Name]; ok {
				out[i] = p
				continue
			}
			index[p.Name] = len(out)
			out = append(out, p)
		}
	}
	return out
}

// Lookup finds the effective declaration of name for k.
func (s *Schema) Lookup(k kind.Kind, name string) (Property, bool) {
	var found Property
	ok := false
	if !k.Valid() {
		return found, false
	}
	for _, src := range append(k.Supertypes(), k) {
		for _, p := range s.declared[src] {
			if p.Name == name {
				found, ok = p, true
			}
		}
	}
	return found, ok
}

// Kinds lists the kinds with at least one direct declaration, in taxonomy
// order.
func (s *Schema) Kinds() []kind.Kind {
	var out []kind.Kind
	for _, k := range kind.All() {
		if len(s.declared[k]) > 0 {
			out = append(out, k)
		}
	}
	return out
}

// Enum returns the literals of a named enumeration.
func (s *Schema) Enum(name string) ([]string, bool) {
	v, ok := s.enums[name]
	return slices.Clone(v), ok
}

// Enums lists the enumeration names in lexical order.
func (s *Schema) Enums() []string {
	return slices.Sorted(maps.Keys(s.enums))
}

// Overlay returns a new schema holding s plus every declaration of top.
// Declarations in top replace same-named properties of the same kind;
// enumerations in top replace those of s.
func (s *Schema) Overlay(top *Schema) *Schema {
	out := newSchema()
	for k, ps := range s.declared {
		out.declared[k] = slices.Clone(ps)
	}
	maps.Copy(out.enums, s.enums)
	if top == nil {
		return out
	}
	for k, ps := range top.declared {
		for _, p := range ps {
			out.declare(k, p)
		}
	}
	maps.Copy(out.enums, top.enums)
	return out
}

func (s *Schema) declare(k kind.Kind, p Property) {
	list := s.declared[k]
	for i := range list {
		if list[i].Name == p.Name {
			list[i] = p
			return
		}
	}
	s.declared[k] = append(list, p)
}
