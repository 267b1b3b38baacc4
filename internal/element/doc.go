// Package element defines the nodes and edges stored in a model graph:
// identifiers, elements with their property bags, relationships, and the
// visibility carried by ownership memberships.
//
// Elements are built detached (New, WithName, WithOwner) and handed to a
// modelgraph.Graph, which takes ownership of them. The property bag is
// permissive: any key and any cty.Value is accepted here, and conformance to
// the per-kind schema is checked by the validator.
package element
