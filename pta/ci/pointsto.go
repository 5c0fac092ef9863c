package ci

import "github.com/sablelang/sable/heap"

// PointsToSet is a monotone set of abstract objects (spec.md §3: "a
// monotone points-to set... points-to sets only grow").
type PointsToSet struct {
	objs map[*heap.Obj]bool
}

func NewPointsToSet(objs ...*heap.Obj) PointsToSet {
	s := PointsToSet{objs: map[*heap.Obj]bool{}}
	for _, o := range objs {
		s.objs[o] = true
	}
	return s
}

func (s PointsToSet) Contains(o *heap.Obj) bool { return s.objs[o] }

func (s PointsToSet) Len() int { return len(s.objs) }

func (s PointsToSet) ForEach(do func(*heap.Obj)) {
	for o := range s.objs {
		do(o)
	}
}

// AddAll destructively extends the receiver with every object of
// other, returning the objects that were actually new (the diff the
// propagator needs — spec.md §4.6/§4.7's "compute diff = pts \ p.pts;
// extend p.pts by diff").
func (s *PointsToSet) AddAll(other PointsToSet) PointsToSet {
	if s.objs == nil {
		s.objs = map[*heap.Obj]bool{}
	}
	diff := NewPointsToSet()
	other.ForEach(func(o *heap.Obj) {
		if !s.objs[o] {
			s.objs[o] = true
			diff.objs[o] = true
		}
	})
	return diff
}
