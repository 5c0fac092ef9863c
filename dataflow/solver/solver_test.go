package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sablelang/sable/cfg"
	"github.com/sablelang/sable/dataflow/constprop"
	"github.com/sablelang/sable/dataflow/fact"
	"github.com/sablelang/sable/dataflow/solver"
	"github.com/sablelang/sable/ir"
	"github.com/sablelang/sable/ir/irtest"
)

// i = 0; loop: if i < 10 { i = i + 1; goto loop } else return i — a
// back edge forces the forward solver around more than once before it
// reaches a fixed point; i should still resolve to NAC at the loop
// head because two different constants (0 and i+1) flow in.
func TestForwardSolverHandlesLoopBackEdge(t *testing.T) {
	_, _, b := irtest.Method("C")
	i := irtest.IntVar(b, "i")
	irtest.Assign(b, i, irtest.Lit(0)) // 0
	ifStmt := irtest.If(b, irtest.Cond(ir.Lt, i, irtest.Lit(10)), 2, 4) // 1
	irtest.Assign(b, i, irtest.Arith(ir.Add, i, irtest.Lit(1)))        // 2
	irtest.Goto(b, 1)                                                  // 3
	ret := irtest.Return(b, i)                                         // 4
	theIR := b.Build()

	g := cfg.Build(theIR)
	result := solver.Solve[*ir.Stmt, fact.CPFact](g, constprop.New(theIR))

	assert.True(t, result.In(ifStmt).Get(i).IsNAC())
	assert.True(t, result.In(ret).Get(i).IsNAC())
}

// Unreachable nodes keep their initial (UNDEF-everywhere) fact rather
// than any boundary value — the solver visits them once from its
// seeded worklist, but with no predecessors their input stays empty.
func TestUnreachedNodeKeepsInitialFact(t *testing.T) {
	_, _, b := irtest.Method("C")
	x := irtest.IntVar(b, "x")
	irtest.Goto(b, 2)                  // 0
	unreached := irtest.Assign(b, x, irtest.Lit(9)) // 1, unreachable
	irtest.Return(b, x)                // 2
	theIR := b.Build()

	g := cfg.Build(theIR)
	result := solver.Solve[*ir.Stmt, fact.CPFact](g, constprop.New(theIR))

	assert.Equal(t, 0, result.In(unreached).Len())
}
