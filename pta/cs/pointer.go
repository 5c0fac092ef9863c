// Package cs implements the context-sensitive pointer analysis of
// spec.md §4.8, grounded on A6's pta/core/cs/CSCallGraph.java and
// pta/cs/Solver.java. It mirrors pta/ci's shape with every node
// carrying a context, selected through a pluggable
// pta/cs/selector.Selector.
package cs

import (
	"github.com/sablelang/sable/ir"
	"github.com/sablelang/sable/pta/cs/element"
)

// Pointer mirrors pta/ci.Pointer but over context-sensitive entities.
// Static-field pointers stay context-insensitive — spec.md §4.8 never
// contextualizes static state.
type Pointer interface {
	isPointer()
	PointsTo() *PointsToSet
}

type base struct {
	pts PointsToSet
}

func (b *base) PointsTo() *PointsToSet { return &b.pts }

type CSVarPtr struct {
	base
	CSVar *element.CSVar
}

func (*CSVarPtr) isPointer() {}

type StaticFieldPtr struct {
	base
	Field *ir.Field
}

func (*StaticFieldPtr) isPointer() {}

type CSInstanceFieldPtr struct {
	base
	Obj   *element.CSObj
	Field *ir.Field
}

func (*CSInstanceFieldPtr) isPointer() {}

type CSArrayIndexPtr struct {
	base
	Obj *element.CSObj
}

func (*CSArrayIndexPtr) isPointer() {}

// Manager interns pointer nodes, analogous to pta/ci.Manager.
type Manager struct {
	vars     map[*element.CSVar]*CSVarPtr
	statics  map[*ir.Field]*StaticFieldPtr
	instance map[csInstanceKey]*CSInstanceFieldPtr
	arrays   map[*element.CSObj]*CSArrayIndexPtr
}

type csInstanceKey struct {
	obj   *element.CSObj
	field *ir.Field
}

func NewManager() *Manager {
	return &Manager{
		vars:     map[*element.CSVar]*CSVarPtr{},
		statics:  map[*ir.Field]*StaticFieldPtr{},
		instance: map[csInstanceKey]*CSInstanceFieldPtr{},
		arrays:   map[*element.CSObj]*CSArrayIndexPtr{},
	}
}

func (m *Manager) CSVarPtr(v *element.CSVar) *CSVarPtr {
	if p, ok := m.vars[v]; ok {
		return p
	}
	p := &CSVarPtr{CSVar: v}
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

func (m *Manager) InstanceField(o *element.CSObj, f *ir.Field) *CSInstanceFieldPtr {
	k := csInstanceKey{obj: o, field: f}
	if p, ok := m.instance[k]; ok {
		return p
	}
	p := &CSInstanceFieldPtr{Obj: o, Field: f}
	m.instance[k] = p
	return p
}

func (m *Manager) ArrayIndex(o *element.CSObj) *CSArrayIndexPtr {
	if p, ok := m.arrays[o]; ok {
		return p
	}
	p := &CSArrayIndexPtr{Obj: o}
	m.arrays[o] = p
	return p
}
