// Package element wraps the context-insensitive domain entities with
// interned contexts (spec.md §3's "CSObj = (heapContext, Obj)" and the
// parallel treatment of variables, call sites, and methods in a
// context-sensitive analysis).
package element

import (
	"github.com/sablelang/sable/heap"
	"github.com/sablelang/sable/ir"
	"github.com/sablelang/sable/pta/cs/context"
)

type CSVar struct {
	Context *context.Context
	Var     *ir.Var
}

type CSObj struct {
	HeapContext *context.Context
	Obj         *heap.Obj
}

// ContainerType is the type a selector uses for type-sensitivity:
// spec.md §4.8's "Obj's container type".
func (o *CSObj) ContainerType() *ir.Type { return o.Obj.Type }

type CSCallSite struct {
	Context  *context.Context
	CallSite *ir.Stmt
}

type CSMethod struct {
	Context *context.Context
	Method  *ir.Method
}

// Manager interns every (context, entity) pair, mirroring pta/ci's
// Manager but adding the context dimension to every key.
type Manager struct {
	pool *context.Pool

	vars       map[varKey]*CSVar
	objs       map[objKey]*CSObj
	callSites  map[csKey]*CSCallSite
	methods    map[methodKey]*CSMethod
}

type varKey struct {
	ctx *context.Context
	v   *ir.Var
}
type objKey struct {
	ctx *context.Context
	o   *heap.Obj
}
type csKey struct {
	ctx *context.Context
	cs  *ir.Stmt
}
type methodKey struct {
	ctx *context.Context
	m   *ir.Method
}

func NewManager(pool *context.Pool) *Manager {
	return &Manager{
		pool:      pool,
		vars:      map[varKey]*CSVar{},
		objs:      map[objKey]*CSObj{},
		callSites: map[csKey]*CSCallSite{},
		methods:   map[methodKey]*CSMethod{},
	}
}

func (m *Manager) Pool() *context.Pool { return m.pool }

func (m *Manager) CSVarOf(ctx *context.Context, v *ir.Var) *CSVar {
	k := varKey{ctx: ctx, v: v}
	if p, ok := m.vars[k]; ok {
		return p
	}
	p := &CSVar{Context: ctx, Var: v}
	m.vars[k] = p
	return p
}

func (m *Manager) CSObjOf(heapCtx *context.Context, o *heap.Obj) *CSObj {
	k := objKey{ctx: heapCtx, o: o}
	if p, ok := m.objs[k]; ok {
		return p
	}
	p := &CSObj{HeapContext: heapCtx, Obj: o}
	m.objs[k] = p
	return p
}

func (m *Manager) CSCallSiteOf(ctx *context.Context, cs *ir.Stmt) *CSCallSite {
	k := csKey{ctx: ctx, cs: cs}
	if p, ok := m.callSites[k]; ok {
		return p
	}
	p := &CSCallSite{Context: ctx, CallSite: cs}
	m.callSites[k] = p
	return p
}

func (m *Manager) CSMethodOf(ctx *context.Context, meth *ir.Method) *CSMethod {
	k := methodKey{ctx: ctx, m: meth}
	if p, ok := m.methods[k]; ok {
		return p
	}
	p := &CSMethod{Context: ctx, Method: meth}
	m.methods[k] = p
	return p
}

// VarsOf lists every interned incarnation of an underlying variable,
// for the context-stripped projection of spec.md §4.9.
func (m *Manager) VarsOf(v *ir.Var) []*CSVar {
	var out []*CSVar
	for k, p := range m.vars {
		if k.v == v {
			out = append(out, p)
		}
	}
	return out
}

func (m *Manager) ObjsOf(o *heap.Obj) []*CSObj {
	var out []*CSObj
	for k, p := range m.objs {
		if k.o == o {
			out = append(out, p)
		}
	}
	return out
}
