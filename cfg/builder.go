package cfg

import "github.com/sablelang/sable/ir"

// Build derives a CFG[*ir.Stmt] from a method body's linear statement
// sequence and the explicit branch targets recorded on If/Switch/Goto
// statements (spec.md §6's "CFG builder... edges expose their kind
// and, for switch edges, the case value"). Entry is stmts[0]; a
// synthetic exit node is appended and wired from every Return/falling
// off the end of the statement list.
func Build(theIR *ir.IR) *CFG[*ir.Stmt] {
	stmts := theIR.Stmts
	exit := &ir.Stmt{Index: len(stmts), Kind: ir.KindNop}

	var entry *ir.Stmt
	if len(stmts) > 0 {
		entry = stmts[0]
	} else {
		entry = exit
	}

	g := New[*ir.Stmt](entry, exit)
	g.AddNode(exit)

	at := func(idx int) *ir.Stmt {
		if idx < 0 || idx >= len(stmts) {
			return exit
		}
		return stmts[idx]
	}

	for i, s := range stmts {
		g.AddNode(s)
		switch s.Kind {
		case ir.KindIf:
			g.AddEdge(Edge[*ir.Stmt]{From: s, To: at(s.TrueTarget), Kind: IfTrue})
			g.AddEdge(Edge[*ir.Stmt]{From: s, To: at(s.FalseTarget), Kind: IfFalse})
		case ir.KindSwitch:
			for _, c := range s.Cases {
				g.AddEdge(Edge[*ir.Stmt]{From: s, To: at(c.Target), Kind: SwitchCase, Value: c.Value})
			}
			g.AddEdge(Edge[*ir.Stmt]{From: s, To: at(s.DefaultTarget), Kind: SwitchDefault})
		case ir.KindGoto:
			g.AddEdge(Edge[*ir.Stmt]{From: s, To: at(s.GotoTarget), Kind: FallThrough})
		case ir.KindReturn:
			g.AddEdge(Edge[*ir.Stmt]{From: s, To: exit, Kind: FallThrough})
		default:
			g.AddEdge(Edge[*ir.Stmt]{From: s, To: at(i + 1), Kind: FallThrough})
		}
	}

	return g
}
