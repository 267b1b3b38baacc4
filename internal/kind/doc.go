// Package kind defines the closed taxonomy of KerML and SysML v2 element
// kinds.
//
// Each Kind carries its declared generalizations, and the package derives
// from them, once at init, the transitive supertype closure, the category
// predicates (definition, usage, relationship, feature, classifier), and the
// pairing between definition and usage kinds. Relationship kinds also carry
// the minimum kinds their source and target must conform to.
//
// Every function here is pure and safe for concurrent use. The tables are
// never mutated after init.
package kind
