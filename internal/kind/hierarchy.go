package kind

import (
	"fmt"

	"github.com/specialistvlad/sysmlgraph/internal/dag"
)

// supertypesFirst orders every kind so that each direct supertype, as
// reported by direct, comes before its subtypes. Ties follow declaration
// order. A cycle is reported as a *dag.CycleError naming the kinds on it.
func supertypesFirst(direct func(Kind) []Kind) ([]Kind, error) {
	g := dag.New()
	for _, k := range all {
		g.AddNode(names[k])
	}
	for _, k := range all {
		for _, p := range direct(k) {
			if !p.Valid() {
				return nil, fmt.Errorf("%s: invalid direct supertype %d", names[k], uint16(p))
			}
			if err := g.AddEdge(names[p], names[k]); err != nil {
				return nil, fmt.Errorf("%s: %w", names[k], err)
			}
		}
	}

	ids, err := g.TopologicalOrder()
	if err != nil {
		return nil, err
	}
	order := make([]Kind, len(ids))
	for i, id := range ids {
		order[i] = byName[id]
	}
	return order, nil
}
