package selector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sablelang/sable/heap"
	"github.com/sablelang/sable/ir"
	"github.com/sablelang/sable/pta/cs/context"
	"github.com/sablelang/sable/pta/cs/element"
	"github.com/sablelang/sable/pta/cs/selector"
)

func TestEmptyContextIsSharedAcrossSelectorsOnTheSamePool(t *testing.T) {
	pool := context.NewPool()
	css := selector.NewCallSiteSelector(pool, 1)
	objs := selector.NewObjSelector(pool, 1)

	e1 := css.EmptyContext()
	e2 := objs.EmptyContext()
	assert.Same(t, e1, e2)
	assert.Equal(t, 0, e1.Len())
}

func TestCallSiteSelectorAppendsTheCallSite(t *testing.T) {
	pool := context.NewPool()
	em := element.NewManager(pool)
	sel := selector.NewCallSiteSelector(pool, 1)

	entryCtx := sel.EmptyContext()
	callee := &ir.Method{Name: "callee"}
	site := &ir.Stmt{Kind: ir.KindInvoke}
	csCall := em.CSCallSiteOf(entryCtx, site)

	got := sel.SelectContext(csCall, callee)
	assert.Equal(t, 1, got.Len())
	last, ok := got.Last()
	assert.True(t, ok)
	assert.Same(t, site, last)

	// SelectContextInstance ignores the receiver for call-site sensitivity.
	recv := &element.CSObj{HeapContext: entryCtx, Obj: &heap.Obj{}}
	gotInstance := sel.SelectContextInstance(csCall, recv, callee)
	assert.Equal(t, got.Elems(), gotInstance.Elems())
}

func TestObjSelectorContextInstanceAppendsTheReceiver(t *testing.T) {
	pool := context.NewPool()
	sel := selector.NewObjSelector(pool, 1)

	entryCtx := sel.EmptyContext()
	callee := &ir.Method{Name: "callee"}
	site := &ir.Stmt{Kind: ir.KindInvoke}
	recvObj := &heap.Obj{Alloc: &ir.Stmt{Index: 1}}
	recv := &element.CSObj{HeapContext: entryCtx, Obj: recvObj}
	csCall := &element.CSCallSite{Context: entryCtx, CallSite: site}

	got := sel.SelectContextInstance(csCall, recv, callee)
	assert.Equal(t, 1, got.Len())
	last, ok := got.Last()
	assert.True(t, ok)
	assert.Same(t, recvObj, last)
}

func TestObjSelectorHeapContextTruncatesTheMethodContext(t *testing.T) {
	pool := context.NewPool()
	sel := selector.NewObjSelector(pool, 2)

	a, b := &heap.Obj{Alloc: &ir.Stmt{Index: 1}}, &heap.Obj{Alloc: &ir.Stmt{Index: 2}}
	ctx := pool.Intern(context.Append(context.Append(context.Empty, a, 10), b, 10))
	m := &element.CSMethod{Context: ctx, Method: &ir.Method{Name: "m"}}

	got := sel.SelectHeapContext(m, &heap.Obj{})
	assert.Equal(t, 1, got.Len())
	last, _ := got.Last()
	assert.Same(t, b, last)
}

func TestTypeSelectorContextInstanceAppendsTheContainerType(t *testing.T) {
	pool := context.NewPool()
	sel := selector.NewTypeSelector(pool, 1)

	c := ir.NewClass("C", false)
	t1 := ir.ClassType(c)
	entryCtx := sel.EmptyContext()
	recvObj := &heap.Obj{Alloc: &ir.Stmt{Index: 3}, Type: t1}
	recv := &element.CSObj{HeapContext: entryCtx, Obj: recvObj}
	csCall := &element.CSCallSite{Context: entryCtx, CallSite: &ir.Stmt{Kind: ir.KindInvoke}}

	got := sel.SelectContextInstance(csCall, recv, &ir.Method{Name: "callee"})
	assert.Equal(t, 1, got.Len())
	last, _ := got.Last()
	assert.Same(t, t1, last)
}
