package fact

import (
	"github.com/benbjohnson/immutable"

	"github.com/sablelang/sable/utils"
)

// SetFact is a generic set with a destructive-feeling Union that
// reports growth, per spec.md §3. Backed by the same pointer-hashed
// immutable.Map the teacher's livevars analysis uses, keyed on T
// (expected to be a pointer type such as *ir.Var).
type SetFact[T comparable] struct {
	m *immutable.Map[T, struct{}]
}

func NewSetFact[T comparable]() SetFact[T] {
	return SetFact[T]{m: immutable.NewMap[T, struct{}](utils.PointerHasher[T]{})}
}

func (s SetFact[T]) Contains(v T) bool {
	if s.m == nil {
		return false
	}
	_, ok := s.m.Get(v)
	return ok
}

func (s SetFact[T]) Add(v T) SetFact[T] {
	m := s.m
	if m == nil {
		m = immutable.NewMap[T, struct{}](utils.PointerHasher[T]{})
	}
	return SetFact[T]{m: m.Set(v, struct{}{})}
}

func (s SetFact[T]) Remove(v T) SetFact[T] {
	if s.m == nil {
		return s
	}
	return SetFact[T]{m: s.m.Delete(v)}
}

func (s SetFact[T]) Len() int {
	if s.m == nil {
		return 0
	}
	return s.m.Len()
}

// Union returns s grown with every element of other, reporting whether
// it grew (spec.md §3's "destructive union returning whether it
// grew"). s itself is left unchanged; callers use the returned set.
func (s SetFact[T]) Union(other SetFact[T]) (SetFact[T], bool) {
	grew := false
	m := s.m
	if m == nil {
		m = immutable.NewMap[T, struct{}](utils.PointerHasher[T]{})
	}
	other.ForEach(func(v T) {
		if _, ok := m.Get(v); !ok {
			m = m.Set(v, struct{}{})
			grew = true
		}
	})
	return SetFact[T]{m: m}, grew
}

func (s SetFact[T]) ForEach(do func(T)) {
	if s.m == nil {
		return
	}
	for it := s.m.Iterator(); !it.Done(); {
		v, _, _ := it.Next()
		do(v)
	}
}

func (s SetFact[T]) Equal(other SetFact[T]) bool {
	if s.Len() != other.Len() {
		return false
	}
	eq := true
	s.ForEach(func(v T) {
		if !other.Contains(v) {
			eq = false
		}
	})
	return eq
}
