// Package heap models abstract objects: spec.md §3's "Obj, identified
// by its creation site (allocation statement); carries a type."
package heap

import (
	"fmt"

	"github.com/sablelang/sable/ir"
)

// Obj is an abstract heap object. Two Objs are the same iff they share
// an allocation site — Model interns them per site (spec.md §6:
// "getObj(allocSite) → Obj (interned per site)").
type Obj struct {
	Alloc *ir.Stmt // the KindNew statement that allocated this object
	Type  *ir.Type
}

func (o *Obj) String() string { return fmt.Sprintf("New@%d", o.Alloc.Index) }

// Model interns one Obj per allocation-site statement.
type Model struct {
	objs map[*ir.Stmt]*Obj
}

func NewModel() *Model {
	return &Model{objs: map[*ir.Stmt]*Obj{}}
}

// GetObj returns the interned abstract object for an allocation site,
// creating it on first request.
func (m *Model) GetObj(allocSite *ir.Stmt) *Obj {
	if o, ok := m.objs[allocSite]; ok {
		return o
	}
	o := &Obj{Alloc: allocSite, Type: allocSite.Alloc}
	m.objs[allocSite] = o
	return o
}
