// Package fact holds the per-node abstract environments the dataflow
// solver carries: CPFact for constant propagation, SetFact[T] for
// live variables, and the DataflowResult both are stored in.
// Persistent maps/sets come from the teacher's immutable.Map usage
// (analysis/livevars) via the barrenszeppelin/immutable generics fork
// already pinned in go.mod.
package fact

import (
	"github.com/benbjohnson/immutable"

	"github.com/sablelang/sable/ir"
	"github.com/sablelang/sable/lattice"
	"github.com/sablelang/sable/utils"
)

// CPFact is a partial mapping var → Value; an absent key is UNDEF
// (spec.md §3).
type CPFact struct {
	m *immutable.Map[*ir.Var, lattice.Value]
}

func NewCPFact() CPFact {
	return CPFact{m: immutable.NewMap[*ir.Var, lattice.Value](utils.PointerHasher[*ir.Var]{})}
}

// Get returns v's value, UNDEF if absent.
func (f CPFact) Get(v *ir.Var) lattice.Value {
	if f.m == nil {
		return lattice.Undef
	}
	val, ok := f.m.Get(v)
	if !ok {
		return lattice.Undef
	}
	return val
}

// Update sets v ↦ val, removing the entry when val is UNDEF so that
// two facts compare equal iff their non-UNDEF entries coincide
// (spec.md §3's CPFact invariant). Returns the updated fact.
func (f CPFact) Update(v *ir.Var, val lattice.Value) CPFact {
	m := f.m
	if m == nil {
		m = immutable.NewMap[*ir.Var, lattice.Value](utils.PointerHasher[*ir.Var]{})
	}
	if val.IsUndef() {
		return CPFact{m: m.Delete(v)}
	}
	return CPFact{m: m.Set(v, val)}
}

// Copy returns an independent value with the same entries (the
// underlying immutable.Map makes this O(1) and safe to alias further).
func (f CPFact) Copy() CPFact { return CPFact{m: f.m} }

// CopyFrom returns a fact holding other's entries, reporting whether
// they differ from the receiver's (the receiver itself is unchanged) —
// spec.md §8's round-trip property expects Copy then CopyFrom to
// report false.
func (f CPFact) CopyFrom(other CPFact) (CPFact, bool) {
	if f.Equal(other) {
		return f, false
	}
	return CPFact{m: other.m}, true
}

func (f CPFact) Equal(other CPFact) bool {
	if f.Len() != other.Len() {
		return false
	}
	for it := f.Iterator(); !it.done(); {
		v, val := it.next()
		ov := other.Get(v)
		if !ov.Eq(val) {
			return false
		}
	}
	return true
}

func (f CPFact) Len() int {
	if f.m == nil {
		return 0
	}
	return f.m.Len()
}

type cpIter struct {
	it *immutable.MapIterator[*ir.Var, lattice.Value]
}

func (f CPFact) Iterator() cpIter {
	if f.m == nil {
		return cpIter{}
	}
	return cpIter{it: f.m.Iterator()}
}

func (it cpIter) done() bool {
	return it.it == nil || it.it.Done()
}

func (it cpIter) next() (*ir.Var, lattice.Value) {
	v, val, _ := it.it.Next()
	return v, val
}

// ForEach calls do for every non-UNDEF entry.
func (f CPFact) ForEach(do func(v *ir.Var, val lattice.Value)) {
	for it := f.Iterator(); !it.done(); {
		v, val := it.next()
		do(v, val)
	}
}
