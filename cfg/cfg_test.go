package cfg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sablelang/sable/cfg"
	"github.com/sablelang/sable/ir"
	"github.com/sablelang/sable/ir/irtest"
)

func TestBuildIfBranches(t *testing.T) {
	_, _, b := irtest.Method("C")
	x := irtest.IntVar(b, "x")

	ifStmt := irtest.If(b, irtest.Cond(ir.Eq, x, irtest.Lit(0)), 2, 3)
	irtest.Goto(b, 3) // index 1, unreachable but keeps indices stable
	irtest.Return(b, x)
	irtest.Return(b, x)
	theIR := b.Build()

	g := cfg.Build(theIR)

	kinds := map[cfg.Kind]bool{}
	for _, e := range g.OutEdges(ifStmt) {
		kinds[e.Kind] = true
	}
	assert.True(t, kinds[cfg.IfTrue])
	assert.True(t, kinds[cfg.IfFalse])
}

func TestBuildSwitchDefault(t *testing.T) {
	_, _, b := irtest.Method("C")
	v := irtest.IntVar(b, "v")

	sw := irtest.Switch(b, v, []ir.SwitchCase{{Value: 1, Target: 2}}, 3)
	irtest.Goto(b, 3)
	irtest.Return(b, v)
	irtest.Return(b, v)
	theIR := b.Build()

	g := cfg.Build(theIR)

	var sawDefault, sawCase bool
	for _, e := range g.OutEdges(sw) {
		switch e.Kind {
		case cfg.SwitchDefault:
			sawDefault = true
		case cfg.SwitchCase:
			sawCase = true
		}
	}
	assert.True(t, sawDefault)
	assert.True(t, sawCase)
}

func TestBuildReturnFlowsToExit(t *testing.T) {
	_, _, b := irtest.Method("C")
	v := irtest.IntVar(b, "v")
	ret := irtest.Return(b, v)
	theIR := b.Build()

	g := cfg.Build(theIR)

	succs := g.SuccNodes(ret)
	assert.Equal(t, []*ir.Stmt{g.Exit()}, succs)
}
