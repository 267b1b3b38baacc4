// Package modelgraph holds a SysML v2 / KerML model as an in-memory graph of
// elements, relationships, and ownership memberships.
//
// # Why ModelGraph Exists
//
// Every consumer of a model (text frontends, validators, execution engines,
// exporters, language servers) needs the same guarantees about its shape:
// identifiers are unique, ownership is a forest, and relationships refer to
// members of the same graph. Graph is the single place those guarantees are
// enforced:
//   - **Identity:** elements and relationships share one ID space; a
//     colliding ID is rejected before anything changes.
//   - **Ownership:** every element has at most one owner, and an element can
//     never be moved underneath one of its own descendants.
//   - **Visibility:** public, private, and protected are recorded on the
//     ownership membership (owner -> child), not on the child alone.
//
// # What Graph Does Not Enforce
//
// Relationship endpoint types, duplicate names, and property schemas are not
// checked on insertion. A graph under construction may be temporarily
// inconsistent; the validate package reports such problems as diagnostics.
// Removing an element may also leave relationships whose source or target no
// longer exists. Those relationships are kept, returned from RemoveElement,
// and reported by the validator until the caller removes them.
//
// # Ordering
//
// Every listing (Elements, Relationships, OwnedChildren, RelationshipsOfKind,
// ...) follows insertion order, so repeated reads of an unchanged graph
// return identical sequences.
//
// # Thread-Safety
//
// Graph performs no locking. Mutations require exclusive access; any number
// of readers may share a graph that is not being mutated. Callers that mix
// the two must serialize them, for example with a sync.RWMutex around the
// graph.
package modelgraph
