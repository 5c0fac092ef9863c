package ci

import (
	"github.com/sirupsen/logrus"

	"github.com/sablelang/sable/callgraph"
	"github.com/sablelang/sable/heap"
	"github.com/sablelang/sable/ir"
	"github.com/sablelang/sable/utils/worklist"
	"github.com/sablelang/sable/world"
)

// Log is the package-level logger PFG-edge insertion traces through
// at Trace level, matching the ambient logging convention.
var Log = logrus.New()

type wlEntry struct {
	ptr Pointer
	pts PointsToSet
}

// Solver runs the context-insensitive pointer analysis of spec.md
// §4.7, grounded on A5's pta/ci/Solver.java.
type Solver struct {
	World *world.World
	CG    *callgraph.CallGraph
	PM    *Manager
	PFG   *PFG
	wl    worklist.Worklist[wlEntry]
}

func NewSolver(w *world.World) *Solver {
	return &Solver{
		World: w,
		CG:    callgraph.New(),
		PM:    NewManager(),
		PFG:   NewPFG(),
	}
}

// Analyze implements spec.md §4.7's initialize + analyze.
func (s *Solver) Analyze() *Result {
	s.initialize()
	s.analyze()
	return newResult(s.CG, s.PM)
}

func (s *Solver) initialize() {
	s.addReachable(s.World.Entry)
}

// addReachable implements spec.md §4.7's addReachable(m): record the
// method and replay every statement through the visitor.
func (s *Solver) addReachable(m *ir.Method) {
	if !s.CG.AddReachable(m) {
		return
	}
	theIR := m.IR()
	if theIR == nil {
		return
	}
	for _, stmt := range theIR.Stmts {
		s.visit(m, stmt)
	}
}

func (s *Solver) visit(m *ir.Method, stmt *ir.Stmt) {
	switch stmt.Kind {
	case ir.KindNew:
		obj := s.World.Heap.GetObj(stmt)
		s.wl.Add(wlEntry{ptr: s.PM.VarPtr(stmt.LValue), pts: NewPointsToSet(obj)})

	case ir.KindCopy, ir.KindCast:
		s.addPFGEdge(s.PM.VarPtr(stmt.From), s.PM.VarPtr(stmt.LValue))

	case ir.KindLoadField:
		if stmt.Base == nil {
			s.addPFGEdge(s.PM.StaticField(stmt.Field), s.PM.VarPtr(stmt.LValue))
		}
		// instance loads are wired lazily, see wireInstanceAccesses.

	case ir.KindStoreField:
		if stmt.Base == nil {
			s.addPFGEdge(s.PM.VarPtr(stmt.From), s.PM.StaticField(stmt.Field))
		}

	case ir.KindInvoke:
		if stmt.Static {
			callee := stmt.Ref.DeclaringClass.DeclaredMethod(stmt.Ref.Subsig)
			if callee != nil && s.CG.AddEdge(m, callgraph.Edge{Kind: callgraph.Static, CallSite: stmt, Callee: callee}) {
				s.addReachable(callee)
				s.wireCallArgsAndReturn(stmt, callee)
			}
		}
	}
}

// addPFGEdge implements spec.md §4.7's addPFGEdge(source, target):
// insert; if new and source.pts ≠ ∅, enqueue (target, source.pts).
func (s *Solver) addPFGEdge(src, tgt Pointer) {
	if !s.PFG.AddEdge(src, tgt) {
		return
	}
	Log.Tracef("pfg: new edge")
	if src.PointsTo().Len() > 0 {
		s.wl.Add(wlEntry{ptr: tgt, pts: *src.PointsTo()})
	}
}

// analyze implements spec.md §4.7's main worklist loop.
func (s *Solver) analyze() {
	s.wl.Process(func(e wlEntry, add func(wlEntry)) {
		diff := e.ptr.PointsTo().AddAll(e.pts)
		if diff.Len() == 0 {
			return
		}
		for _, succ := range s.PFG.Succs(e.ptr) {
			add(wlEntry{ptr: succ, pts: diff})
		}
		if vp, ok := e.ptr.(*VarPtr); ok {
			diff.ForEach(func(o *heap.Obj) {
				s.wireInstanceAccesses(vp.Var, o)
				s.processCall(vp.Var, o)
			})
		}
	})
}

// wireInstanceAccesses lazily wires instance field/array edges for v
// once v's points-to set gains object o (spec.md §4.7).
func (s *Solver) wireInstanceAccesses(v *ir.Var, o *heap.Obj) {
	for _, stmt := range v.LoadFields() {
		s.addPFGEdge(s.PM.InstanceField(o, stmt.Field), s.PM.VarPtr(stmt.LValue))
	}
	for _, stmt := range v.StoreFields() {
		s.addPFGEdge(s.PM.VarPtr(stmt.From), s.PM.InstanceField(o, stmt.Field))
	}
	for _, stmt := range v.LoadArrays() {
		s.addPFGEdge(s.PM.ArrayIndex(o), s.PM.VarPtr(stmt.LValue))
	}
	for _, stmt := range v.StoreArrays() {
		s.addPFGEdge(s.PM.VarPtr(stmt.From), s.PM.ArrayIndex(o))
	}
}

// processCall implements spec.md §4.7's processCall(v, recv): resolve
// each invoke statement rooted at v against recv's dynamic type,
// following the call-kind priority of SPEC_FULL.md §12 (interface,
// dynamic, special, virtual, else other), grounded on A5/A6's
// getInvokeJMethodEdge.
func (s *Solver) processCall(v *ir.Var, recv *heap.Obj) {
	for _, cs := range v.Invokes() {
		callee := dispatchOn(recv, cs.Ref.Subsig)
		if callee == nil {
			continue
		}
		thisPtr := s.PM.VarPtr(callee.IR().This)
		s.wl.Add(wlEntry{ptr: thisPtr, pts: NewPointsToSet(recv)})

		kind := classify(cs)
		if s.CG.AddEdge(cs.Method, callgraph.Edge{Kind: kind, CallSite: cs, Callee: callee}) {
			s.addReachable(callee)
			s.wireCallArgsAndReturn(cs, callee)
		}
	}
}

func (s *Solver) wireCallArgsAndReturn(cs *ir.Stmt, callee *ir.Method) {
	calleeIR := callee.IR()
	if calleeIR == nil {
		return
	}
	for i, arg := range cs.Args {
		if i < len(calleeIR.Params) {
			s.addPFGEdge(s.PM.VarPtr(arg), s.PM.VarPtr(calleeIR.Params[i]))
		}
	}
	if cs.LValue != nil {
		for _, rv := range calleeIR.ReturnVars {
			s.addPFGEdge(s.PM.VarPtr(rv), s.PM.VarPtr(cs.LValue))
		}
	}
}

// dispatchOn walks recv's concrete type's superclass chain for the
// first concrete declaration of sig — the real-receiver-type version
// of callgraph's dispatch, used once the dynamic type is known.
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

// classify implements the call-kind priority test of SPEC_FULL.md
// §12: isInterface, then isDynamic, then isSpecial, then isVirtual,
// else OTHER.
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
