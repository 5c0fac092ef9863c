// Package deadcode implements the dead-code detector of spec.md §4.4,
// fusing constant propagation and live-variable results. Grounded on
// A3's dataflow/analysis/DeadCodeDetection.java.
package deadcode

import (
	"sort"

	"github.com/sablelang/sable/cfg"
	"github.com/sablelang/sable/dataflow/constprop"
	"github.com/sablelang/sable/dataflow/fact"
	"github.com/sablelang/sable/ir"
)

// Detector runs the CFG-reachability-under-branch-simplification
// traversal and reports, for a single method, every statement the
// traversal never marks reachable plus every reachable assignment
// whose left side is dead — together the method's dead code.
type Detector struct{}

func New() *Detector { return &Detector{} }

// Analyze implements spec.md §4.4's analyze(ir) → SortedSet<Stmt>.
func (*Detector) Analyze(
	theIR *ir.IR,
	g *cfg.CFG[*ir.Stmt],
	cp *fact.DataflowResult[*ir.Stmt, fact.CPFact],
	lv *fact.DataflowResult[*ir.Stmt, fact.SetFact[*ir.Var]],
) []*ir.Stmt {
	reachable := map[*ir.Stmt]bool{}
	useless := map[*ir.Stmt]bool{}
	seen := map[*ir.Stmt]bool{}

	var queue []*ir.Stmt
	enqueue := func(s *ir.Stmt) {
		// Mark-on-enqueue (spec.md §9's decided Open Question: avoids
		// the reference implementation's duplicate-but-harmless
		// enqueue-before-seen behavior).
		if seen[s] {
			return
		}
		seen[s] = true
		queue = append(queue, s)
	}

	enqueue(g.Entry())

	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		reachable[s] = true

		switch {
		case isAssignmentLike(s.Kind):
			if v, ok := s.Def(); ok && v != nil && hasNoSideEffect(s) && !lv.Out(s).Contains(v) {
				useless[s] = true
			}
			enqueueAll(g, s, enqueue)

		case s.Kind == ir.KindIf:
			val := constprop.Evaluate(s.Cond, cp.In(s))
			switch {
			case val.IsConstant() && val.Int() == 1:
				enqueueByKind(g, s, cfg.IfTrue, enqueue)
			case val.IsConstant() && val.Int() == 0:
				enqueueByKind(g, s, cfg.IfFalse, enqueue)
			default:
				enqueueAll(g, s, enqueue)
			}

		case s.Kind == ir.KindSwitch:
			val := cp.In(s).Get(s.SwitchVar)
			if val.IsConstant() {
				matched := false
				for _, e := range g.OutEdges(s) {
					if e.Kind == cfg.SwitchCase && e.Value == val.Int() {
						enqueue(e.To)
						matched = true
					}
				}
				if !matched {
					for _, e := range g.OutEdges(s) {
						if e.Kind == cfg.SwitchDefault {
							enqueue(e.To)
						}
					}
				}
			} else {
				// NAC (or UNDEF, unreachable in practice): enqueue
				// every successor, default included — spec.md §9's
				// second decided Open Question.
				enqueueAll(g, s, enqueue)
			}

		default:
			enqueueAll(g, s, enqueue)
		}
	}

	var dead []*ir.Stmt
	for _, s := range theIR.Stmts {
		if !reachable[s] || useless[s] {
			dead = append(dead, s)
		}
	}
	sort.Slice(dead, func(i, j int) bool { return dead[i].Index < dead[j].Index })
	return dead
}

func enqueueAll(g *cfg.CFG[*ir.Stmt], s *ir.Stmt, enqueue func(*ir.Stmt)) {
	for _, e := range g.OutEdges(s) {
		enqueue(e.To)
	}
}

func enqueueByKind(g *cfg.CFG[*ir.Stmt], s *ir.Stmt, kind cfg.Kind, enqueue func(*ir.Stmt)) {
	for _, e := range g.OutEdges(s) {
		if e.Kind == kind {
			enqueue(e.To)
		}
	}
}

func isAssignmentLike(k ir.Kind) bool {
	switch k {
	case ir.KindAssign, ir.KindNew, ir.KindCopy, ir.KindLoadField, ir.KindLoadArray, ir.KindCast:
		return true
	default:
		return false
	}
}

// hasNoSideEffect implements spec.md §4.4's rule: false for heap
// allocation, a cast, a field access, an array access, or integer
// DIV/REM; true otherwise.
func hasNoSideEffect(s *ir.Stmt) bool {
	switch s.Kind {
	case ir.KindNew, ir.KindCast, ir.KindLoadField, ir.KindLoadArray:
		return false
	case ir.KindAssign:
		return !containsDivOrRem(s.RValue)
	default:
		return true
	}
}

func containsDivOrRem(e ir.Exp) bool {
	x, ok := e.(*ir.ArithmeticExp)
	if !ok {
		return false
	}
	if x.Op == ir.Div || x.Op == ir.Rem {
		return true
	}
	return containsDivOrRem(x.X) || containsDivOrRem(x.Y)
}
