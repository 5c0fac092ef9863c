// Package callgraph implements the call-graph data structure shared
// by CHA and both pointer-analysis solvers (spec.md §3, §4.5), plus
// the CHA builder itself (spec.md §4.5), grounded on A4's
// graph/callgraph/CHABuilder.java.
package callgraph

import "github.com/sablelang/sable/ir"

type CallKind int

const (
	Static CallKind = iota
	Special
	Virtual
	Interface
	Dynamic
	Other
)

// Edge is a call-graph edge: a call kind, the call site it came from,
// and the resolved callee.
type Edge struct {
	Kind     CallKind
	CallSite *ir.Stmt
	Callee   *ir.Method
}

// CallGraph is the result spec.md §3 describes: methods as nodes, a
// set of (kind, call-site, callee) edges, idempotent insertion.
type CallGraph struct {
	reachable map[*ir.Method]bool
	order     []*ir.Method
	edges     map[*ir.Method][]Edge // edges keyed by caller
	edgeSet   map[edgeKey]bool
}

type edgeKey struct {
	cs     *ir.Stmt
	callee *ir.Method
}

func New() *CallGraph {
	return &CallGraph{
		reachable: map[*ir.Method]bool{},
		edges:     map[*ir.Method][]Edge{},
		edgeSet:   map[edgeKey]bool{},
	}
}

func (g *CallGraph) IsReachable(m *ir.Method) bool { return g.reachable[m] }

// AddReachable records m as reachable, returning whether it is new.
func (g *CallGraph) AddReachable(m *ir.Method) bool {
	if g.reachable[m] {
		return false
	}
	g.reachable[m] = true
	g.order = append(g.order, m)
	return true
}

func (g *CallGraph) ReachableMethods() []*ir.Method { return g.order }

// AddEdge inserts an edge, reporting whether it was new (spec.md §3's
// "addEdge is idempotent and returns whether the edge was new").
func (g *CallGraph) AddEdge(caller *ir.Method, e Edge) bool {
	key := edgeKey{cs: e.CallSite, callee: e.Callee}
	if g.edgeSet[key] {
		return false
	}
	g.edgeSet[key] = true
	g.edges[caller] = append(g.edges[caller], e)
	return true
}

func (g *CallGraph) EdgesOf(caller *ir.Method) []Edge { return g.edges[caller] }

func (g *CallGraph) AllEdges() []Edge {
	var all []Edge
	for _, m := range g.order {
		all = append(all, g.edges[m]...)
	}
	return all
}

// CallSitesIn returns the invoke statements within m's body, or nil
// for a method with no IR attached (abstract/native).
func CallSitesIn(m *ir.Method) []*ir.Stmt {
	theIR := m.IR()
	if theIR == nil {
		return nil
	}
	var sites []*ir.Stmt
	for _, s := range theIR.Stmts {
		if s.Kind == ir.KindInvoke {
			sites = append(sites, s)
		}
	}
	return sites
}
