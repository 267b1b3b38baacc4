package query

import (
	"iter"

	"github.com/specialistvlad/sysmlgraph/internal/element"
	"github.com/specialistvlad/sysmlgraph/internal/modelgraph"
)

// OwnedSubtree yields root and everything it owns, in pre-order with
// siblings in insertion order. The sequence is lazy and can be ranged over
// again; each pass reads the graph afresh. An unknown root yields nothing.
func OwnedSubtree(g modelgraph.Reader, root element.ID) iter.Seq[element.ID] {
	return func(yield func(element.ID) bool) {
		if _, ok := g.Get(root); !ok {
			return
		}
		stack := []element.ID{root}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(cur) {
				return
			}
			children := g.OwnedChildren(cur)
			for i := len(children) - 1; i >= 0; i-- {
				stack = append(stack, children[i])
			}
		}
	}
}

// Descendants lists everything id owns, directly or transitively, in
// pre-order. id itself is not included.
func Descendants(g modelgraph.Reader, id element.ID) []element.ID {
	var out []element.ID
	for cur := range OwnedSubtree(g, id) {
		if cur != id {
			out = append(out, cur)
		}
	}
	return out
}

// Ancestors lists the owner chain of id, nearest first.
func Ancestors(g modelgraph.Reader, id element.ID) []element.ID {
	var out []element.ID
	for cur, ok := g.Owner(id); ok; cur, ok = g.Owner(cur) {
		out = append(out, cur)
	}
	return out
}
