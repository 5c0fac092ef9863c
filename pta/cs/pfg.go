package cs

// PFG is pta/ci.PFG's context-sensitive counterpart: nodes are this
// package's Pointer, one per (context, entity) pair.
type PFG struct {
	succs map[Pointer]map[Pointer]bool
}

func NewPFG() *PFG {
	return &PFG{succs: map[Pointer]map[Pointer]bool{}}
}

func (g *PFG) AddEdge(src, tgt Pointer) bool {
	m := g.succs[src]
	if m == nil {
		m = map[Pointer]bool{}
		g.succs[src] = m
	}
	if m[tgt] {
		return false
	}
	m[tgt] = true
	return true
}

func (g *PFG) Succs(src Pointer) []Pointer {
	m := g.succs[src]
	out := make([]Pointer, 0, len(m))
	for p := range m {
		out = append(out, p)
	}
	return out
}
