// Package livevar implements the backward may-analysis of spec.md
// §4.3, grounded on the teacher's analysis/livevars backward-worklist
// shape (transfer re-evaluated from successors, union as meet).
package livevar

import (
	"github.com/sablelang/sable/cfg"
	"github.com/sablelang/sable/dataflow/fact"
	"github.com/sablelang/sable/ir"
)

type Analysis struct{}

func New() *Analysis { return &Analysis{} }

func (*Analysis) IsForward() bool { return false }

func (*Analysis) NewBoundaryFact(g *cfg.CFG[*ir.Stmt]) fact.SetFact[*ir.Var] {
	return fact.NewSetFact[*ir.Var]()
}

func (*Analysis) NewInitialFact() fact.SetFact[*ir.Var] { return fact.NewSetFact[*ir.Var]() }

// MeetInto is set union (spec.md §4.3's "meet is union").
func (*Analysis) MeetInto(src, dst fact.SetFact[*ir.Var]) fact.SetFact[*ir.Var] {
	dst, _ = dst.Union(src)
	return dst
}

// TransferNode implements in := (out \ def(n)) ∪ uses(n) (spec.md
// §4.3). The solver detects whether in changed via SetFact's Equal.
func (*Analysis) TransferNode(n *ir.Stmt, out fact.SetFact[*ir.Var]) fact.SetFact[*ir.Var] {
	in := fact.NewSetFact[*ir.Var]()
	def, hasDef := n.Def()
	out.ForEach(func(v *ir.Var) {
		if hasDef && v == def {
			return
		}
		in = in.Add(v)
	})
	for _, v := range n.Uses() {
		in = in.Add(v)
	}
	return in
}
