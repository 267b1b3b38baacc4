package dag

// Graph is a directed graph keyed by string ids. Iteration follows node and
// edge insertion order so that results are reproducible. A Graph is not safe
// for concurrent mutation.
type Graph struct {
	// nodes stores all nodes in the graph, keyed by their unique ID.
	nodes map[string]*node
	// order records node ids in insertion order.
	order []string
}

// node represents a single vertex in the graph. It is un-exported to
// enforce interaction with the graph via the public API (using string IDs),
// not by direct struct manipulation.
type node struct {
	id string
	// out holds the targets of edges leaving this node, in insertion order.
	out []*node
	// in holds the sources of edges entering this node, in insertion order.
	in []*node
}

// CycleError reports a cycle found by DetectCycles. Path starts and ends with
// the same id.
type CycleError struct {
	Path []string
}
