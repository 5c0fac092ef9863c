package ir_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sablelang/sable/ir"
	"github.com/sablelang/sable/ir/irtest"
)

func TestBuilderPopulatesBackReferences(t *testing.T) {
	_, _, b := irtest.Method("C")
	v := irtest.IntVar(b, "v")
	w := irtest.IntVar(b, "w")
	f := &ir.Field{Name: "x", Type: ir.Primitive(ir.Int)}

	load := irtest.LoadField(b, v, w, f)
	store := irtest.StoreField(b, w, f, v)
	irtest.Return(b, v)

	theIR := b.Build()

	assert.Equal(t, []*ir.Stmt{load}, w.LoadFields())
	assert.Equal(t, []*ir.Stmt{store}, w.StoreFields())
	assert.Equal(t, []*ir.Var{v}, theIR.ReturnVars)
}

func TestStmtDefAndUses(t *testing.T) {
	_, _, b := irtest.Method("C")
	x := irtest.IntVar(b, "x")
	y := irtest.IntVar(b, "y")
	assign := irtest.Assign(b, x, irtest.Arith(ir.Add, y, irtest.Lit(1)))
	b.Build()

	def, ok := assign.Def()
	assert.True(t, ok)
	assert.Same(t, x, def)
	assert.Equal(t, []*ir.Var{y}, assign.Uses())
}

func TestHierarchyLinkPopulatesReverseEdges(t *testing.T) {
	h := ir.NewHierarchy()
	base := ir.NewClass("Base", false)
	sub := ir.NewClass("Sub", false)
	sub.Super = base
	iface := ir.NewClass("Iface", true)
	impl := ir.NewClass("Impl", false)
	impl.Interfaces = []*ir.Class{iface}

	h.AddClass(base)
	h.AddClass(sub)
	h.AddClass(iface)
	h.AddClass(impl)
	h.Link()

	assert.Contains(t, base.DirectSubclasses(), sub)
	assert.Contains(t, iface.DirectImplementors(), impl)
}
