package element

import (
	"fmt"

	"github.com/google/uuid"
)

// ID identifies an element or relationship. IDs are comparable and safe to
// use as map keys. The zero value is Nil.
type ID uuid.UUID

// Nil is the zero ID. No element is ever assigned it.
var Nil ID

// derivedNamespace seeds name-based IDs so that the same string always maps
// to the same ID.
var derivedNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("urn:sysmlgraph:element"))

// NewID returns a random (version 4) ID.
func NewID() ID {
	return ID(uuid.New())
}

// IDFromString returns the ID spelled by s if s is a UUID, and otherwise a
// deterministic name-based (version 5) ID derived from s.
func IDFromString(s string) ID {
	if u, err := uuid.Parse(s); err == nil {
		return ID(u)
	}
	return ID(uuid.NewSHA1(derivedNamespace, []byte(s)))
}

// ParseID parses the canonical UUID form of an ID.
func ParseID(s string) (ID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return Nil, fmt.Errorf("invalid element id %q: %w", s, err)
	}
	return ID(u), nil
}

// IsNil reports whether id is the zero ID.
func (id ID) IsNil() bool {
	return id == Nil
}

func (id ID) String() string {
	return uuid.UUID(id).String()
}

// MarshalText implements encoding.TextMarshaler.
func (id ID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText()
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := ParseID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
