package ci

import (
	"github.com/sablelang/sable/callgraph"
	"github.com/sablelang/sable/heap"
	"github.com/sablelang/sable/ir"
)

// Result is the read-only points-to projection of spec.md §4.9,
// satisfying pta/result.Result. Context-insensitive, so there is
// nothing to union over — each accessor reads straight through to the
// interned pointer's points-to set.
type Result struct {
	pm *Manager
	cg *callgraph.CallGraph
}

func newResult(cg *callgraph.CallGraph, pm *Manager) *Result {
	return &Result{pm: pm, cg: cg}
}

func toSlice(pts PointsToSet) []*heap.Obj {
	var out []*heap.Obj
	pts.ForEach(func(o *heap.Obj) { out = append(out, o) })
	return out
}

func (r *Result) PointsToVar(v *ir.Var) []*heap.Obj {
	p, ok := r.pm.vars[v]
	if !ok {
		return nil
	}
	return toSlice(*p.PointsTo())
}

func (r *Result) PointsToStaticField(f *ir.Field) []*heap.Obj {
	p, ok := r.pm.statics[f]
	if !ok {
		return nil
	}
	return toSlice(*p.PointsTo())
}

func (r *Result) PointsToInstanceField(o *heap.Obj, f *ir.Field) []*heap.Obj {
	p, ok := r.pm.instance[instanceKey{obj: o, field: f}]
	if !ok {
		return nil
	}
	return toSlice(*p.PointsTo())
}

func (r *Result) PointsToArray(o *heap.Obj) []*heap.Obj {
	p, ok := r.pm.arrays[o]
	if !ok {
		return nil
	}
	return toSlice(*p.PointsTo())
}

func (r *Result) CallGraph() *callgraph.CallGraph { return r.cg }
