package cs

import (
	"github.com/sirupsen/logrus"

	"github.com/sablelang/sable/callgraph"
	"github.com/sablelang/sable/heap"
	"github.com/sablelang/sable/ir"
	"github.com/sablelang/sable/pta/cs/context"
	"github.com/sablelang/sable/pta/cs/element"
	"github.com/sablelang/sable/pta/cs/selector"
	"github.com/sablelang/sable/utils/worklist"
	"github.com/sablelang/sable/world"
)

var Log = logrus.New()

type wlEntry struct {
	ptr Pointer
	pts PointsToSet
}

type edgeKey struct {
	cs     *element.CSCallSite
	callee *element.CSMethod
}

// Solver runs the context-sensitive pointer analysis of spec.md §4.8,
// grounded on A6's pta/cs/Solver.java. CG stays method-level (the
// context-stripped view spec.md §4.9 expects of a CallGraph); cs-level
// reachability and call-edge dedup are tracked separately so a method
// visited under two distinct contexts is processed, and wired, twice.
type Solver struct {
	World *world.World
	Sel   selector.Selector
	Pool  *context.Pool
	EM    *element.Manager
	CG    *callgraph.CallGraph
	PM    *Manager
	PFG   *PFG

	reachable map[*element.CSMethod]bool
	edges     map[edgeKey]bool
	wl        worklist.Worklist[wlEntry]
}

func NewSolver(w *world.World, sel selector.Selector) *Solver {
	pool := context.NewPool()
	return &Solver{
		World:     w,
		Sel:       sel,
		Pool:      pool,
		EM:        element.NewManager(pool),
		CG:        callgraph.New(),
		PM:        NewManager(),
		PFG:       NewPFG(),
		reachable: map[*element.CSMethod]bool{},
		edges:     map[edgeKey]bool{},
	}
}

// Analyze implements spec.md §4.8's initialize + analyze, the same
// shape as pta/ci.Solver.Analyze with every entity contextualized.
func (s *Solver) Analyze() *Result {
	s.initialize()
	s.analyze()
	return newResult(s.CG, s.EM, s.PM)
}

func (s *Solver) initialize() {
	entryCtx := s.Sel.EmptyContext()
	entryCSM := s.EM.CSMethodOf(entryCtx, s.World.Entry)
	s.addReachable(entryCSM)
}

func (s *Solver) addReachable(csm *element.CSMethod) {
	if s.reachable[csm] {
		return
	}
	s.reachable[csm] = true
	s.CG.AddReachable(csm.Method)
	theIR := csm.Method.IR()
	if theIR == nil {
		return
	}
	for _, stmt := range theIR.Stmts {
		s.visit(csm, stmt)
	}
}

func (s *Solver) visit(csm *element.CSMethod, stmt *ir.Stmt) {
	switch stmt.Kind {
	case ir.KindNew:
		obj := s.World.Heap.GetObj(stmt)
		heapCtx := s.Sel.SelectHeapContext(csm, obj)
		csObj := s.EM.CSObjOf(heapCtx, obj)
		lv := s.EM.CSVarOf(csm.Context, stmt.LValue)
		s.wl.Add(wlEntry{ptr: s.PM.CSVarPtr(lv), pts: NewPointsToSet(csObj)})

	case ir.KindCopy, ir.KindCast:
		from := s.PM.CSVarPtr(s.EM.CSVarOf(csm.Context, stmt.From))
		to := s.PM.CSVarPtr(s.EM.CSVarOf(csm.Context, stmt.LValue))
		s.addPFGEdge(from, to)

	case ir.KindLoadField:
		if stmt.Base == nil {
			to := s.PM.CSVarPtr(s.EM.CSVarOf(csm.Context, stmt.LValue))
			s.addPFGEdge(s.PM.StaticField(stmt.Field), to)
		}

	case ir.KindStoreField:
		if stmt.Base == nil {
			from := s.PM.CSVarPtr(s.EM.CSVarOf(csm.Context, stmt.From))
			s.addPFGEdge(from, s.PM.StaticField(stmt.Field))
		}

	case ir.KindInvoke:
		if stmt.Static {
			callee := stmt.Ref.DeclaringClass.DeclaredMethod(stmt.Ref.Subsig)
			if callee == nil {
				return
			}
			csCallSite := s.EM.CSCallSiteOf(csm.Context, stmt)
			calleeCtx := s.Sel.SelectContext(csCallSite, callee)
			calleeCSM := s.EM.CSMethodOf(calleeCtx, callee)
			if s.addCSEdge(csCallSite, calleeCSM, callgraph.Static) {
				s.addReachable(calleeCSM)
				s.wireCallArgsAndReturn(csm.Context, stmt, calleeCSM)
			}
		}
	}
}

func (s *Solver) addPFGEdge(src, tgt Pointer) {
	if !s.PFG.AddEdge(src, tgt) {
		return
	}
	Log.Tracef("pfg: new edge")
	if src.PointsTo().Len() > 0 {
		s.wl.Add(wlEntry{ptr: tgt, pts: *src.PointsTo()})
	}
}

func (s *Solver) analyze() {
	s.wl.Process(func(e wlEntry, add func(wlEntry)) {
		diff := e.ptr.PointsTo().AddAll(e.pts)
		if diff.Len() == 0 {
			return
		}
		for _, succ := range s.PFG.Succs(e.ptr) {
			add(wlEntry{ptr: succ, pts: diff})
		}
		if vp, ok := e.ptr.(*CSVarPtr); ok {
			diff.ForEach(func(o *element.CSObj) {
				s.wireInstanceAccesses(vp.CSVar, o)
				s.processCall(vp.CSVar, o)
			})
		}
	})
}

func (s *Solver) wireInstanceAccesses(v *element.CSVar, o *element.CSObj) {
	for _, stmt := range v.Var.LoadFields() {
		to := s.PM.CSVarPtr(s.EM.CSVarOf(v.Context, stmt.LValue))
		s.addPFGEdge(s.PM.InstanceField(o, stmt.Field), to)
	}
	for _, stmt := range v.Var.StoreFields() {
		from := s.PM.CSVarPtr(s.EM.CSVarOf(v.Context, stmt.From))
		s.addPFGEdge(from, s.PM.InstanceField(o, stmt.Field))
	}
	for _, stmt := range v.Var.LoadArrays() {
		to := s.PM.CSVarPtr(s.EM.CSVarOf(v.Context, stmt.LValue))
		s.addPFGEdge(s.PM.ArrayIndex(o), to)
	}
	for _, stmt := range v.Var.StoreArrays() {
		from := s.PM.CSVarPtr(s.EM.CSVarOf(v.Context, stmt.From))
		s.addPFGEdge(from, s.PM.ArrayIndex(o))
	}
}

// processCall implements spec.md §4.8's processCall(v, recv): resolve
// v's invoke statements against recv's dynamic type, select a callee
// context from the receiver object, and seed the callee's `this`
// pointer with exactly recv — mirroring pta/ci.Solver.processCall's
// precise-dispatch rationale, now per-context.
func (s *Solver) processCall(v *element.CSVar, recv *element.CSObj) {
	for _, cs := range v.Var.Invokes() {
		callee := dispatchOn(recv.Obj, cs.Ref.Subsig)
		if callee == nil {
			continue
		}
		csCallSite := s.EM.CSCallSiteOf(v.Context, cs)
		calleeCtx := s.Sel.SelectContextInstance(csCallSite, recv, callee)
		calleeCSM := s.EM.CSMethodOf(calleeCtx, callee)

		if calleeIR := callee.IR(); calleeIR != nil {
			thisVar := s.EM.CSVarOf(calleeCtx, calleeIR.This)
			s.wl.Add(wlEntry{ptr: s.PM.CSVarPtr(thisVar), pts: NewPointsToSet(recv)})
		}

		kind := classify(cs)
		if s.addCSEdge(csCallSite, calleeCSM, kind) {
			s.addReachable(calleeCSM)
			s.wireCallArgsAndReturn(v.Context, cs, calleeCSM)
		}
	}
}

func (s *Solver) wireCallArgsAndReturn(callerCtx *context.Context, cs *ir.Stmt, calleeCSM *element.CSMethod) {
	calleeIR := calleeCSM.Method.IR()
	if calleeIR == nil {
		return
	}
	for i, arg := range cs.Args {
		if i < len(calleeIR.Params) {
			from := s.PM.CSVarPtr(s.EM.CSVarOf(callerCtx, arg))
			to := s.PM.CSVarPtr(s.EM.CSVarOf(calleeCSM.Context, calleeIR.Params[i]))
			s.addPFGEdge(from, to)
		}
	}
	if cs.LValue != nil {
		for _, rv := range calleeIR.ReturnVars {
			from := s.PM.CSVarPtr(s.EM.CSVarOf(calleeCSM.Context, rv))
			to := s.PM.CSVarPtr(s.EM.CSVarOf(callerCtx, cs.LValue))
			s.addPFGEdge(from, to)
		}
	}
}

// addCSEdge dedups per (call site, callee) *context* pair, and
// forwards into the project-level CallGraph for spec.md §4.9's
// context-stripped view (itself idempotent, so calling it again for a
// second context of the same method/callsite pair is harmless).
func (s *Solver) addCSEdge(cs *element.CSCallSite, callee *element.CSMethod, kind callgraph.CallKind) bool {
	s.CG.AddEdge(cs.CallSite.Method, callgraph.Edge{Kind: kind, CallSite: cs.CallSite, Callee: callee.Method})
	k := edgeKey{cs: cs, callee: callee}
	if s.edges[k] {
		return false
	}
	s.edges[k] = true
	return true
}

func dispatchOn(recv *heap.Obj, sig ir.Subsignature) *ir.Method {
	if recv.Type == nil || recv.Type.Class == nil {
		return nil
	}
	for c := recv.Type.Class; c != nil; c = c.SuperClass() {
		if m := c.DeclaredMethod(sig); m != nil && !m.Abstract {
			return m
		}
	}
	return nil
}

func classify(cs *ir.Stmt) callgraph.CallKind {
	switch {
	case cs.Interface:
		return callgraph.Interface
	case cs.Dynamic:
		return callgraph.Dynamic
	case cs.Special:
		return callgraph.Special
	case cs.Virtual:
		return callgraph.Virtual
	default:
		return callgraph.Other
	}
}
