// Package validate runs structural checks over a model graph and reports the
// findings as data.
//
// A pass never stops early and never returns an error: every enabled check
// runs, and each problem becomes a Diagnostic. The checks, in the order their
// diagnostics appear, are:
//
//   - RelationshipTypeMismatch: an endpoint's kind does not conform to the
//     source or target kind required by the relationship's kind.
//   - DuplicateDefinition: two members of the same owner share a name.
//   - InvalidProperty: a property bag does not fit the kind's schema.
//   - DanglingRelationship: a relationship endpoint is no longer in the graph.
//   - OrphanElement: a root that is not a package. Off unless enabled.
//
// Within a check, diagnostics follow graph insertion order, so two passes
// over an unchanged graph produce identical results.
package validate
