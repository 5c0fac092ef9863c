package callgraph

import "github.com/sablelang/sable/ir"

// CHABuilder constructs a CallGraph by class-hierarchy analysis
// (spec.md §4.5): BFS from the entry method, resolving every call
// site's candidate callees by sound, imprecise hierarchy enumeration.
type CHABuilder struct {
	Hierarchy *ir.Hierarchy
	Entry     *ir.Method
}

func NewCHABuilder(h *ir.Hierarchy, entry *ir.Method) *CHABuilder {
	return &CHABuilder{Hierarchy: h, Entry: entry}
}

func (b *CHABuilder) Build() *CallGraph {
	g := New()
	var queue []*ir.Method
	enqueue := func(m *ir.Method) {
		if m != nil && g.AddReachable(m) {
			queue = append(queue, m)
		}
	}
	enqueue(b.Entry)

	for len(queue) > 0 {
		m := queue[0]
		queue = queue[1:]
		for _, cs := range CallSitesIn(m) {
			kind, callees := b.resolve(cs)
			for _, callee := range callees {
				if callee == nil {
					continue
				}
				if g.AddEdge(m, Edge{Kind: kind, CallSite: cs, Callee: callee}) {
					enqueue(callee)
				}
			}
		}
	}
	return g
}

// resolve implements spec.md §4.5's resolve(cs).
func (b *CHABuilder) resolve(cs *ir.Stmt) (CallKind, []*ir.Method) {
	switch {
	case cs.Static:
		return Static, []*ir.Method{cs.Ref.DeclaringClass.DeclaredMethod(cs.Ref.Subsig)}
	case cs.Special:
		return Special, []*ir.Method{dispatch(cs.Ref.DeclaringClass, cs.Ref.Subsig)}
	case cs.Interface:
		return Interface, b.virtualCandidates(cs.Ref.DeclaringClass, cs.Ref.Subsig)
	case cs.Virtual:
		return Virtual, b.virtualCandidates(cs.Ref.DeclaringClass, cs.Ref.Subsig)
	case cs.Dynamic:
		return Dynamic, nil
	default:
		return Other, nil
	}
}

// virtualCandidates walks the declaring class together with, transitively,
// every direct subclass, direct sub-interface, and direct implementor,
// collecting dispatch(c, subsig) for each visited class — spec.md
// §4.5's VIRTUAL/INTERFACE resolution rule.
func (b *CHABuilder) virtualCandidates(c *ir.Class, sig ir.Subsignature) []*ir.Method {
	var candidates []*ir.Method
	visited := map[*ir.Class]bool{}
	queue := []*ir.Class{c}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if visited[cur] {
			continue
		}
		visited[cur] = true

		if m := dispatch(cur, sig); m != nil {
			candidates = append(candidates, m)
		}
		queue = append(queue, b.Hierarchy.DirectSubclassesOf(cur)...)
		queue = append(queue, b.Hierarchy.DirectSubinterfacesOf(cur)...)
		queue = append(queue, b.Hierarchy.DirectImplementorsOf(cur)...)
	}
	return candidates
}

// dispatch implements spec.md §4.5's dispatch(c, sig): if c declares a
// concrete method with sig, return it; else recurse to the
// superclass; null at the root.
func dispatch(c *ir.Class, sig ir.Subsignature) *ir.Method {
	for cur := c; cur != nil; cur = cur.SuperClass() {
		if m := cur.DeclaredMethod(sig); m != nil && !m.Abstract {
			return m
		}
	}
	return nil
}
