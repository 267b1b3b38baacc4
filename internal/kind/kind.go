package kind

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// Kind identifies a KerML or SysML v2 metaclass. The zero value, Invalid, is
// not a member of the taxonomy.
type Kind uint16

// ErrUnknownKind is returned by Parse for names outside the taxonomy.
var ErrUnknownKind = errors.New("unknown element kind")

// UnknownKindError carries the rejected input.
type UnknownKindError struct {
	Name string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown element kind %q", e.Name)
}

// Unwrap lets callers match with errors.Is(err, ErrUnknownKind).
func (e *UnknownKindError) Unwrap() error {
	return ErrUnknownKind
}

// set is a fixed-size bitset over all kinds.
type set [(numKinds + 63) / 64]uint64

func (s *set) add(k Kind) {
	s[k/64] |= 1 << (k % 64)
}

func (s *set) has(k Kind) bool {
	return s[k/64]&(1<<(k%64)) != 0
}

func (s *set) union(other *set) {
	for i := range s {
		s[i] |= other[i]
	}
}

func (s *set) len() int {
	n := 0
	for _, w := range s {
		n += bits.OnesCount64(w)
	}
	return n
}

const (
	flagDefinition uint8 = 1 << iota
	flagUsage
	flagRelationship
	flagFeature
	flagClassifier
)

// Derived tables, filled once by init and read-only afterwards.
var (
	byName       map[string]Kind
	closure      [numKinds]set
	closureList  [numKinds][]Kind
	flags        [numKinds]uint8
	usageOf      [numKinds]Kind
	definitionOf [numKinds]Kind
	all          []Kind
)

func init() {
	byName = make(map[string]Kind, numKinds)
	all = make([]Kind, 0, numKinds-1)
	for k := Element; k < numKinds; k++ {
		byName[names[k]] = k
		all = append(all, k)
	}

	order, err := supertypesFirst(func(k Kind) []Kind { return directSupertypes[k] })
	if err != nil {
		panic(fmt.Sprintf("kind: generalization hierarchy: %v", err))
	}
	for _, k := range order {
		for _, p := range directSupertypes[k] {
			closure[k].add(p)
			closure[k].union(&closure[p])
		}
	}

	for _, k := range all {
		list := make([]Kind, 0, closure[k].len())
		for _, s := range all {
			if closure[k].has(s) {
				list = append(list, s)
			}
		}
		closureList[k] = list

		if k.IsSubtypeOf(Definition) {
			flags[k] |= flagDefinition
		}
		if k.IsSubtypeOf(Usage) {
			flags[k] |= flagUsage
		}
		if k.IsSubtypeOf(Relationship) {
			flags[k] |= flagRelationship
		}
		if k.IsSubtypeOf(Feature) {
			flags[k] |= flagFeature
		}
		if k.IsSubtypeOf(Classifier) {
			flags[k] |= flagClassifier
		}
	}

	for _, k := range all {
		stem, ok := strings.CutSuffix(names[k], "Definition")
		if !ok {
			continue
		}
		if u, ok := byName[stem+"Usage"]; ok {
			usageOf[k] = u
			definitionOf[u] = k
		}
	}
}

// All returns every kind in declaration order. The slice is a copy.
func All() []Kind {
	out := make([]Kind, len(all))
	copy(out, all)
	return out
}

// Parse maps an exact metaclass name to its kind. Matching is case-sensitive.
func Parse(name string) (Kind, error) {
	if k, ok := byName[name]; ok {
		return k, nil
	}
	return Invalid, &UnknownKindError{Name: name}
}

// Valid reports whether k is a member of the taxonomy.
func (k Kind) Valid() bool {
	return k > Invalid && k < numKinds
}

// String returns the metaclass name.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint16(k))
	}
	return names[k]
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid kind %d", uint16(k))
	}
	return []byte(names[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// DirectSupertypes returns the declared parents of k.
func (k Kind) DirectSupertypes() []Kind {
	if !k.Valid() {
		return nil
	}
	out := make([]Kind, len(directSupertypes[k]))
	copy(out, directSupertypes[k])
	return out
}

// Supertypes returns the transitive closure of k's parents in declaration
// order. k itself is never included.
func (k Kind) Supertypes() []Kind {
	if !k.Valid() {
		return nil
	}
	out := make([]Kind, len(closureList[k]))
	copy(out, closureList[k])
	return out
}

// IsSubtypeOf reports whether k equals other or has other as a supertype.
func (k Kind) IsSubtypeOf(other Kind) bool {
	if !k.Valid() || !other.Valid() {
		return false
	}
	return k == other || closure[k].has(other)
}

func (k Kind) is(flag uint8) bool {
	return k.Valid() && flags[k]&flag != 0
}

func (k Kind) IsDefinition() bool   { return k.is(flagDefinition) }
func (k Kind) IsUsage() bool        { return k.is(flagUsage) }
func (k Kind) IsRelationship() bool { return k.is(flagRelationship) }
func (k Kind) IsFeature() bool      { return k.is(flagFeature) }
func (k Kind) IsClassifier() bool   { return k.is(flagClassifier) }

// CorrespondingUsage returns the usage kind paired with definition kind k.
func (k Kind) CorrespondingUsage() (Kind, bool) {
	if !k.Valid() || usageOf[k] == Invalid {
		return Invalid, false
	}
	return usageOf[k], true
}

// CorrespondingDefinition returns the definition kind paired with usage kind k.
func (k Kind) CorrespondingDefinition() (Kind, bool) {
	if !k.Valid() || definitionOf[k] == Invalid {
		return Invalid, false
	}
	return definitionOf[k], true
}
