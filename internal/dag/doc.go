// Package dag provides a small, deterministic directed graph with cycle
// detection and topological ordering. It backs consistency checks over static
// tables such as the element kind generalization hierarchy, where a cycle is
// a defect that must be reported with the offending path.
package dag
