package deadcode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sablelang/sable/cfg"
	"github.com/sablelang/sable/dataflow/constprop"
	"github.com/sablelang/sable/dataflow/deadcode"
	"github.com/sablelang/sable/dataflow/fact"
	"github.com/sablelang/sable/dataflow/livevar"
	"github.com/sablelang/sable/dataflow/solver"
	"github.com/sablelang/sable/ir"
	"github.com/sablelang/sable/ir/irtest"
)

func analyze(t *testing.T, theIR *ir.IR) ([]*ir.Stmt, *cfg.CFG[*ir.Stmt]) {
	t.Helper()
	g := cfg.Build(theIR)
	cp := solver.Solve[*ir.Stmt, fact.CPFact](g, constprop.New(theIR))
	lv := solver.Solve[*ir.Stmt, fact.SetFact[*ir.Var]](g, livevar.New())
	dead := deadcode.New().Analyze(theIR, g, cp, lv)
	return dead, g
}

// x = 1; if x == 1 { a = 1; return a } else { b = 2; return b } — the
// false branch is unreachable once x's constant value folds the
// condition to always-true.
func TestUnreachableBranchIsDead(t *testing.T) {
	_, _, b := irtest.Method("C")
	x := irtest.IntVar(b, "x")
	a := irtest.IntVar(b, "a")
	bv := irtest.IntVar(b, "b")

	irtest.Assign(b, x, irtest.Lit(1))                        // 0
	irtest.If(b, irtest.Cond(ir.Eq, x, irtest.Lit(1)), 2, 4)   // 1
	irtest.Assign(b, a, irtest.Lit(1))                         // 2
	irtest.Return(b, a)                                        // 3
	assignB := irtest.Assign(b, bv, irtest.Lit(2))             // 4
	retB := irtest.Return(b, bv)                               // 5
	theIR := b.Build()

	dead, _ := analyze(t, theIR)

	assert.Contains(t, dead, assignB)
	assert.Contains(t, dead, retB)
}

// x = 1; y = 2 (never used); return x — y's assignment is reachable
// but useless.
func TestUselessAssignmentIsDead(t *testing.T) {
	_, _, b := irtest.Method("C")
	x := irtest.IntVar(b, "x")
	y := irtest.IntVar(b, "y")

	irtest.Assign(b, x, irtest.Lit(1))
	assignY := irtest.Assign(b, y, irtest.Lit(2))
	irtest.Return(b, x)
	theIR := b.Build()

	dead, _ := analyze(t, theIR)

	assert.Contains(t, dead, assignY)
}

// A division assignment is never useless even when its result is
// unused, since evaluating it can raise (spec.md §4.4's DIV/REM
// exception).
func TestDivisionAssignmentNeverUseless(t *testing.T) {
	_, _, b := irtest.Method("C")
	p := irtest.IntParam(b, "p")
	q := irtest.IntParam(b, "q")
	y := irtest.IntVar(b, "y")

	assignY := irtest.Assign(b, y, irtest.Arith(ir.Div, p, q))
	irtest.Return(b, p)
	theIR := b.Build()

	dead, _ := analyze(t, theIR)

	assert.NotContains(t, dead, assignY)
}
