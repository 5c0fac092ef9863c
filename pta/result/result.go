// Package result defines the read-only points-to projection shared by
// both pointer-analysis solvers (spec.md §4.9): "for each variable,
// the union over all of its context-sensitive incarnations of their
// points-to sets; the call-graph with context stripped when
// requested." ci.Result and cs.Result each implement this interface
// directly against their own pointer/object representations — a
// context-insensitive result has nothing to union, a
// context-sensitive one unions across CSVar incarnations.
package result

import (
	"github.com/sablelang/sable/callgraph"
	"github.com/sablelang/sable/heap"
	"github.com/sablelang/sable/ir"
)

// Result is satisfied by both pta/ci.Result and pta/cs.Result.
type Result interface {
	PointsToVar(v *ir.Var) []*heap.Obj
	PointsToStaticField(f *ir.Field) []*heap.Obj
	PointsToInstanceField(o *heap.Obj, f *ir.Field) []*heap.Obj
	PointsToArray(o *heap.Obj) []*heap.Obj
	CallGraph() *callgraph.CallGraph
}
