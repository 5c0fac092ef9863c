// Package cfg builds and represents the control-flow graph the
// dataflow solver and pointer analyses both walk (spec.md §3, §6).
package cfg

// Kind tags a CFG edge the way spec.md §3 requires: fall-through,
// IF_TRUE, IF_FALSE, SWITCH_CASE(v), SWITCH_DEFAULT.
type Kind int

const (
	FallThrough Kind = iota
	IfTrue
	IfFalse
	SwitchCase
	SwitchDefault
)

// Edge is a directed CFG edge; Value is only meaningful for
// SwitchCase.
type Edge[N any] struct {
	From, To N
	Kind     Kind
	Value    int32
}

// CFG is generic over its node type so the dataflow solver and tests
// can share one representation without depending on package ir for
// anything but the node type itself (spec.md §3's CFG<N>).
type CFG[N comparable] struct {
	entry, exit N
	nodes       []N
	succs       map[N][]Edge[N]
	preds       map[N][]Edge[N]
}

func New[N comparable](entry, exit N) *CFG[N] {
	return &CFG[N]{
		entry: entry,
		exit:  exit,
		succs: map[N][]Edge[N]{},
		preds: map[N][]Edge[N]{},
	}
}

func (g *CFG[N]) Entry() N { return g.entry }
func (g *CFG[N]) Exit() N  { return g.exit }

func (g *CFG[N]) Nodes() []N { return g.nodes }

// AddNode registers a node with no outgoing edges yet (used for
// unreachable-by-construction nodes, e.g. a bare NopStmt exit).
func (g *CFG[N]) AddNode(n N) {
	if _, ok := g.succs[n]; !ok {
		g.nodes = append(g.nodes, n)
		g.succs[n] = nil
		g.preds[n] = nil
	}
}

func (g *CFG[N]) AddEdge(e Edge[N]) {
	g.AddNode(e.From)
	g.AddNode(e.To)
	g.succs[e.From] = append(g.succs[e.From], e)
	g.preds[e.To] = append(g.preds[e.To], e)
}

func (g *CFG[N]) Succs(n N) []Edge[N] { return g.succs[n] }
func (g *CFG[N]) Preds(n N) []Edge[N] { return g.preds[n] }

func (g *CFG[N]) OutEdges(n N) []Edge[N] { return g.succs[n] }

// SuccNodes and PredNodes project edges down to bare nodes, for
// callers (the dataflow solver) that only need adjacency, not kind.
func (g *CFG[N]) SuccNodes(n N) []N {
	edges := g.succs[n]
	out := make([]N, len(edges))
	for i, e := range edges {
		out[i] = e.To
	}
	return out
}

func (g *CFG[N]) PredNodes(n N) []N {
	edges := g.preds[n]
	out := make([]N, len(edges))
	for i, e := range edges {
		out[i] = e.From
	}
	return out
}
