// Package selector implements spec.md §4.8's ContextSelector and the
// six k-limited selectors its table names, grounded on A6's
// pta/core/cs/selector/_2ObjSelector.java and _2TypeSelector.java
// (call-site and type selectors follow the same shape with a
// different element type, per the spec's own table).
package selector

import (
	"github.com/sablelang/sable/heap"
	"github.com/sablelang/sable/ir"
	"github.com/sablelang/sable/pta/cs/context"
	"github.com/sablelang/sable/pta/cs/element"
)

// Selector is spec.md §4.8's ContextSelector capability bundle. obj in
// SelectHeapContext is the bare allocated object, not yet wrapped in a
// context — contexts for it are exactly what this method computes.
type Selector interface {
	EmptyContext() *context.Context
	SelectContext(caller *element.CSCallSite, callee *ir.Method) *context.Context
	SelectContextInstance(caller *element.CSCallSite, recv *element.CSObj, callee *ir.Method) *context.Context
	SelectHeapContext(m *element.CSMethod, obj *heap.Obj) *context.Context
}

// callSiteSelector implements 1- and 2-call-site sensitivity: element
// type is the call site itself.
type callSiteSelector struct {
	pool *context.Pool
	k    int
}

func NewCallSiteSelector(pool *context.Pool, k int) Selector { return &callSiteSelector{pool: pool, k: k} }

func (s *callSiteSelector) EmptyContext() *context.Context { return s.pool.Intern(context.Empty) }

func (s *callSiteSelector) SelectContext(caller *element.CSCallSite, _ *ir.Method) *context.Context {
	return s.pool.Intern(context.Append(*caller.Context, context.Element(caller.CallSite), s.k-1))
}

func (s *callSiteSelector) SelectContextInstance(caller *element.CSCallSite, _ *element.CSObj, _ *ir.Method) *context.Context {
	return s.SelectContext(caller, nil)
}

func (s *callSiteSelector) SelectHeapContext(m *element.CSMethod, _ *heap.Obj) *context.Context {
	return s.pool.Intern(m.Context.Truncate(s.k - 1))
}

// objSelector implements 1- and 2-object sensitivity: element type is
// the allocated Obj.
type objSelector struct {
	pool *context.Pool
	k    int
}

func NewObjSelector(pool *context.Pool, k int) Selector { return &objSelector{pool: pool, k: k} }

func (s *objSelector) EmptyContext() *context.Context { return s.pool.Intern(context.Empty) }

func (s *objSelector) SelectContext(caller *element.CSCallSite, _ *ir.Method) *context.Context {
	return s.pool.Intern(caller.Context.Truncate(s.k))
}

func (s *objSelector) SelectContextInstance(_ *element.CSCallSite, recv *element.CSObj, _ *ir.Method) *context.Context {
	return s.pool.Intern(context.Append(*recv.HeapContext, context.Element(recv.Obj), s.k-1))
}

func (s *objSelector) SelectHeapContext(m *element.CSMethod, _ *heap.Obj) *context.Context {
	return s.pool.Intern(m.Context.Truncate(s.k - 1))
}

// typeSelector implements 1- and 2-type sensitivity: element type is
// the allocated object's container type.
type typeSelector struct {
	pool *context.Pool
	k    int
}

func NewTypeSelector(pool *context.Pool, k int) Selector { return &typeSelector{pool: pool, k: k} }

func (s *typeSelector) EmptyContext() *context.Context { return s.pool.Intern(context.Empty) }

func (s *typeSelector) SelectContext(caller *element.CSCallSite, _ *ir.Method) *context.Context {
	return s.pool.Intern(caller.Context.Truncate(s.k))
}

func (s *typeSelector) SelectContextInstance(_ *element.CSCallSite, recv *element.CSObj, _ *ir.Method) *context.Context {
	return s.pool.Intern(context.Append(*recv.HeapContext, context.Element(recv.ContainerType()), s.k-1))
}

func (s *typeSelector) SelectHeapContext(m *element.CSMethod, _ *heap.Obj) *context.Context {
	return s.pool.Intern(m.Context.Truncate(s.k - 1))
}
