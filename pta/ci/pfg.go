package ci

// PFG is the pointer-flow graph: nodes are Pointers, edges unlabeled
// and directed (spec.md §3, §4.6).
type PFG struct {
	succs map[Pointer]map[Pointer]bool
}

func NewPFG() *PFG {
	return &PFG{succs: map[Pointer]map[Pointer]bool{}}
}

// AddEdge inserts src → tgt, reporting whether it was new (spec.md
// §4.6's "addEdge(src, tgt) → bool: inserts the edge; true iff new").
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

// Succs iterates src's successors (spec.md §4.6's "PFG.succs(p)").
func (g *PFG) Succs(src Pointer) []Pointer {
	m := g.succs[src]
	out := make([]Pointer, 0, len(m))
	for p := range m {
		out = append(out, p)
	}
	return out
}
