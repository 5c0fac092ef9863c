// Package ci implements the context-insensitive pointer analysis of
// spec.md §4.7, grounded on A5's pta/ci/Solver.java.
package ci

import (
	"github.com/sablelang/sable/heap"
	"github.com/sablelang/sable/ir"
)

// Pointer is spec.md §3's PFG node: a variable pointer, a static-field
// pointer, an instance-field pointer, or an array-index pointer. Each
// variant is a distinct, interned concrete type so map-key identity
// is plain pointer identity.
type Pointer interface {
	isPointer()
	PointsTo() *PointsToSet
}

type base struct {
	pts PointsToSet
}

func (b *base) PointsTo() *PointsToSet { return &b.pts }

type VarPtr struct {
	base
	Var *ir.Var
}

func (*VarPtr) isPointer() {}

type StaticFieldPtr struct {
	base
	Field *ir.Field
}

func (*StaticFieldPtr) isPointer() {}

type InstanceFieldPtr struct {
	base
	Obj   *heap.Obj
	Field *ir.Field
}

func (*InstanceFieldPtr) isPointer() {}

type ArrayIndexPtr struct {
	base
	Obj *heap.Obj
}

func (*ArrayIndexPtr) isPointer() {}

// Manager interns pointer nodes per spec.md §4.6's pointer factories:
// getVarPtr, getStaticField, getInstanceField, getArrayIndex.
type Manager struct {
	vars     map[*ir.Var]*VarPtr
	statics  map[*ir.Field]*StaticFieldPtr
	instance map[instanceKey]*InstanceFieldPtr
	arrays   map[*heap.Obj]*ArrayIndexPtr
}

type instanceKey struct {
	obj   *heap.Obj
	field *ir.Field
}

func NewManager() *Manager {
	return &Manager{
		vars:     map[*ir.Var]*VarPtr{},
		statics:  map[*ir.Field]*StaticFieldPtr{},
		instance: map[instanceKey]*InstanceFieldPtr{},
		arrays:   map[*heap.Obj]*ArrayIndexPtr{},
	}
}

func (m *Manager) VarPtr(v *ir.Var) *VarPtr {
	if p, ok := m.vars[v]; ok {
		return p
	}
	p := &VarPtr{Var: v}
	m.vars[v] = p
	return p
}

func (m *Manager) StaticField(f *ir.Field) *StaticFieldPtr {
	if p, ok := m.statics[f]; ok {
		return p
	}
	p := &StaticFieldPtr{Field: f}
	m.statics[f] = p
	return p
}

func (m *Manager) InstanceField(o *heap.Obj, f *ir.Field) *InstanceFieldPtr {
	k := instanceKey{obj: o, field: f}
	if p, ok := m.instance[k]; ok {
		return p
	}
	p := &InstanceFieldPtr{Obj: o, Field: f}
	m.instance[k] = p
	return p
}

func (m *Manager) ArrayIndex(o *heap.Obj) *ArrayIndexPtr {
	if p, ok := m.arrays[o]; ok {
		return p
	}
	p := &ArrayIndexPtr{Obj: o}
	m.arrays[o] = p
	return p
}
