package cs

import "github.com/sablelang/sable/pta/cs/element"

// PointsToSet is pta/ci.PointsToSet's context-sensitive counterpart:
// a monotone set of CSObj, each a (heap context, Obj) pair.
type PointsToSet struct {
	objs map[*element.CSObj]bool
}

func NewPointsToSet(objs ...*element.CSObj) PointsToSet {
	s := PointsToSet{objs: map[*element.CSObj]bool{}}
	for _, o := range objs {
		s.objs[o] = true
	}
	return s
}

func (s PointsToSet) Contains(o *element.CSObj) bool { return s.objs[o] }

func (s PointsToSet) Len() int { return len(s.objs) }

func (s PointsToSet) ForEach(do func(*element.CSObj)) {
	for o := range s.objs {
		do(o)
	}
}

// AddAll mirrors pta/ci.PointsToSet.AddAll: destructive union,
// returning the diff.
func (s *PointsToSet) AddAll(other PointsToSet) PointsToSet {
	if s.objs == nil {
		s.objs = map[*element.CSObj]bool{}
	}
	diff := NewPointsToSet()
	other.ForEach(func(o *element.CSObj) {
		if !s.objs[o] {
			s.objs[o] = true
			diff.objs[o] = true
		}
	})
	return diff
}
