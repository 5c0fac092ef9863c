package cs

import (
	"github.com/sablelang/sable/callgraph"
	"github.com/sablelang/sable/heap"
	"github.com/sablelang/sable/ir"
	"github.com/sablelang/sable/pta/cs/element"
	"github.com/sablelang/sable/pta/result"
)

var _ result.Result = (*Result)(nil)

// Result is spec.md §4.9's context-stripped projection of a
// context-sensitive run: every accessor unions across every
// interned context of the requested variable or object, satisfying
// pta/result.Result the same way pta/ci.Result does.
type Result struct {
	cg *callgraph.CallGraph
	em *element.Manager
	pm *Manager
}

func newResult(cg *callgraph.CallGraph, em *element.Manager, pm *Manager) *Result {
	return &Result{cg: cg, em: em, pm: pm}
}

func toHeapObjSlice(pts PointsToSet) []*heap.Obj {
	seen := map[*heap.Obj]bool{}
	var out []*heap.Obj
	pts.ForEach(func(o *element.CSObj) {
		if !seen[o.Obj] {
			seen[o.Obj] = true
			out = append(out, o.Obj)
		}
	})
	return out
}

func (r *Result) PointsToVar(v *ir.Var) []*heap.Obj {
	union := NewPointsToSet()
	for _, cv := range r.em.VarsOf(v) {
		if p, ok := r.pm.vars[cv]; ok {
			union.AddAll(*p.PointsTo())
		}
	}
	return toHeapObjSlice(union)
}

func (r *Result) PointsToStaticField(f *ir.Field) []*heap.Obj {
	p, ok := r.pm.statics[f]
	if !ok {
		return nil
	}
	return toHeapObjSlice(*p.PointsTo())
}

func (r *Result) PointsToInstanceField(o *heap.Obj, f *ir.Field) []*heap.Obj {
	union := NewPointsToSet()
	for _, co := range r.em.ObjsOf(o) {
		if p, ok := r.pm.instance[csInstanceKey{obj: co, field: f}]; ok {
			union.AddAll(*p.PointsTo())
		}
	}
	return toHeapObjSlice(union)
}

func (r *Result) PointsToArray(o *heap.Obj) []*heap.Obj {
	union := NewPointsToSet()
	for _, co := range r.em.ObjsOf(o) {
		if p, ok := r.pm.arrays[co]; ok {
			union.AddAll(*p.PointsTo())
		}
	}
	return toHeapObjSlice(union)
}

func (r *Result) CallGraph() *callgraph.CallGraph { return r.cg }
