package callgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sablelang/sable/callgraph"
	"github.com/sablelang/sable/ir"
)

func TestStronglyConnectedComponentsFindsMutualRecursion(t *testing.T) {
	g := callgraph.New()
	a := &ir.Method{Name: "a"}
	bm := &ir.Method{Name: "b"}
	c := &ir.Method{Name: "c"}
	g.AddReachable(a)
	g.AddReachable(bm)
	g.AddReachable(c)

	g.AddEdge(a, callgraph.Edge{Kind: callgraph.Static, CallSite: &ir.Stmt{Index: 1}, Callee: bm})
	g.AddEdge(bm, callgraph.Edge{Kind: callgraph.Static, CallSite: &ir.Stmt{Index: 2}, Callee: a})
	g.AddEdge(a, callgraph.Edge{Kind: callgraph.Static, CallSite: &ir.Stmt{Index: 3}, Callee: c})

	comps := callgraph.StronglyConnectedComponents(g)

	var found bool
	for _, comp := range comps {
		if len(comp) == 2 && containsMethod(comp, a) && containsMethod(comp, bm) {
			found = true
		}
	}
	assert.True(t, found)
}

func containsMethod(comp []*ir.Method, m *ir.Method) bool {
	for _, x := range comp {
		if x == m {
			return true
		}
	}
	return false
}
