package livevar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sablelang/sable/cfg"
	"github.com/sablelang/sable/dataflow/fact"
	"github.com/sablelang/sable/dataflow/livevar"
	"github.com/sablelang/sable/dataflow/solver"
	"github.com/sablelang/sable/ir"
	"github.com/sablelang/sable/ir/irtest"
)

// x = 1; y = 2; return x — y is dead right after its definition.
func TestDeadAssignmentIsNotLiveAfterDefinition(t *testing.T) {
	_, _, b := irtest.Method("C")
	x := irtest.IntVar(b, "x")
	y := irtest.IntVar(b, "y")
	assignX := irtest.Assign(b, x, irtest.Lit(1))
	assignY := irtest.Assign(b, y, irtest.Lit(2))
	irtest.Return(b, x)
	theIR := b.Build()

	g := cfg.Build(theIR)
	result := solver.Solve[*ir.Stmt, fact.SetFact[*ir.Var]](g, livevar.New())

	assert.True(t, result.Out(assignX).Contains(x))
	assert.False(t, result.Out(assignY).Contains(y))
}

// x = p; y = x + 1; return y — x is live between its definition and use.
func TestUseKeepsVariableLiveBackward(t *testing.T) {
	_, _, b := irtest.Method("C")
	p := irtest.IntParam(b, "p")
	x := irtest.IntVar(b, "x")
	y := irtest.IntVar(b, "y")
	assignX := irtest.Assign(b, x, p)
	irtest.Assign(b, y, irtest.Arith(ir.Add, x, irtest.Lit(1)))
	irtest.Return(b, y)
	theIR := b.Build()

	g := cfg.Build(theIR)
	result := solver.Solve[*ir.Stmt, fact.SetFact[*ir.Var]](g, livevar.New())

	assert.True(t, result.Out(assignX).Contains(x))
}
