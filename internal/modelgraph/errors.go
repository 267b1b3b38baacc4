package modelgraph

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/sysmlgraph/internal/element"
	"github.com/specialistvlad/sysmlgraph/internal/kind"
)

// Sentinel errors. Every error returned by a Graph method is an *Error that
// wraps exactly one of these, so callers match with errors.Is.
var (
	ErrUnknownElement      = errors.New("unknown element")
	ErrUnknownOwner        = errors.New("unknown owner")
	ErrCyclicOwnership     = errors.New("cyclic ownership")
	ErrDuplicateID         = errors.New("duplicate id")
	ErrNotARelationship    = errors.New("not a relationship kind")
	ErrInvalidKind         = errors.New("invalid element kind")
	ErrNilValue            = errors.New("nil element or relationship")
	ErrNotLibraryCandidate = errors.New("not a root package")
)

// Error describes a rejected graph operation and the entities involved. The
// graph is unchanged whenever an Error is returned.
type Error struct {
	// Op names the operation, e.g. "add owned element".
	Op string
	// Err is one of the package sentinels.
	Err error
	// ID is the entity the operation was applied to.
	ID element.ID
	// Related is the other entity involved, such as the missing owner or the
	// missing relationship endpoint. It is element.Nil when not applicable.
	Related element.ID
	// Kind is set for kind-related failures.
	Kind kind.Kind
}

func (e *Error) Error() string {
	switch {
	case errors.Is(e.Err, ErrNotARelationship), errors.Is(e.Err, ErrInvalidKind):
		return fmt.Sprintf("%s %s: %v: %s", e.Op, e.ID, e.Err, e.Kind)
	case !e.Related.IsNil():
		return fmt.Sprintf("%s %s: %v %s", e.Op, e.ID, e.Err, e.Related)
	default:
		return fmt.Sprintf("%s %s: %v", e.Op, e.ID, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}
