// Package query holds read-only traversals and searches over a model graph.
//
// Every function takes a modelgraph.Reader and never mutates it. Results are
// returned in graph insertion order unless documented otherwise, so repeated
// calls over an unchanged graph agree.
package query
