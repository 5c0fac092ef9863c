package callgraph

import (
	"github.com/yourbasic/graph"

	"github.com/sablelang/sable/ir"
)

// StronglyConnectedComponents is an optional diagnostic over a built
// CallGraph, surfacing mutual-recursion clusters for inspection. Not
// load-bearing for any core correctness property (spec.md §8) —
// purely an inspection aid, grounded on awslabs-ar-go-tools/internal/
// graphutil/cycles.go's use of the same library for the same purpose
// over a call graph.
func StronglyConnectedComponents(g *CallGraph) [][]*ir.Method {
	methods := g.ReachableMethods()
	index := make(map[*ir.Method]int, len(methods))
	for i, m := range methods {
		index[m] = i
	}

	mg := graph.New(len(methods))
	for i, m := range methods {
		for _, e := range g.EdgesOf(m) {
			if j, ok := index[e.Callee]; ok {
				mg.AddCost(i, j, 1)
			}
		}
	}

	components := graph.StrongComponents(mg)
	out := make([][]*ir.Method, len(components))
	for i, comp := range components {
		members := make([]*ir.Method, len(comp))
		for j, idx := range comp {
			members[j] = methods[idx]
		}
		out[i] = members
	}
	return out
}
