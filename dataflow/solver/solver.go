// Package solver implements the generic monotone worklist fixed-point
// engine of spec.md §4.1, parameterized by an Analysis. Grounded on
// the teacher's forward/backward pattern in analysis/livevars and
// A3's WorkListSolver.java (forward: queue seeded with all nodes, pop,
// meet predecessors, transfer, enqueue changed successors; backward:
// round-robin whole-CFG sweep until a pass makes no change).
package solver

import (
	"github.com/sirupsen/logrus"

	"github.com/sablelang/sable/cfg"
	"github.com/sablelang/sable/dataflow/fact"
	"github.com/sablelang/sable/utils/worklist"
)

// Analysis is the narrow capability bundle every dataflow client
// implements (spec.md §4.1, §9's "interfaces as capabilities"). F's
// fact.Eq constraint lets Solve detect "did out/in change" itself,
// rather than every analysis recomputing that bool by hand.
type Analysis[N comparable, F fact.Eq[F]] interface {
	IsForward() bool
	NewBoundaryFact(g *cfg.CFG[N]) F
	NewInitialFact() F
	// MeetInto joins src into dst and returns the joined fact; callers
	// use the returned value.
	MeetInto(src, dst F) F
	// TransferNode recomputes the node's output fact from its input.
	TransferNode(n N, in F) F
}

// Log is the package-level logger solver calls trace worklist
// iterations through at Debug, matching the ambient logging
// convention (SPEC_FULL.md §10) rather than threading a logger
// through every call.
var Log = logrus.New()

// Solve runs an Analysis to a fixed point over g and returns the
// totalized in/out result (spec.md §4.1).
func Solve[N comparable, F fact.Eq[F]](g *cfg.CFG[N], a Analysis[N, F]) *fact.DataflowResult[N, F] {
	if a.IsForward() {
		return solveForward(g, a)
	}
	return solveBackward(g, a)
}

func solveForward[N comparable, F fact.Eq[F]](g *cfg.CFG[N], a Analysis[N, F]) *fact.DataflowResult[N, F] {
	result := fact.NewDataflowResult[N, F]()
	nodes := g.Nodes()
	for _, n := range nodes {
		result.SetIn(n, a.NewInitialFact())
		result.SetOut(n, a.NewInitialFact())
	}
	result.SetIn(g.Entry(), a.NewBoundaryFact(g))

	wl := worklist.Empty[N]()
	for _, n := range nodes {
		wl.Add(n)
	}

	wl.Process(func(n N, add func(N)) {
		in := a.NewInitialFact()
		for _, e := range g.Preds(n) {
			in = a.MeetInto(result.Out(e.From), in)
		}
		if n == g.Entry() {
			in = a.MeetInto(result.In(n), in)
		}
		result.SetIn(n, in)

		prevOut := result.Out(n)
		out := a.TransferNode(n, in)
		if !out.Equal(prevOut) {
			Log.Debug("solver: forward transfer changed out")
			result.SetOut(n, out)
			for _, e := range g.Succs(n) {
				add(e.To)
			}
		}
	})

	return result
}

func solveBackward[N comparable, F fact.Eq[F]](g *cfg.CFG[N], a Analysis[N, F]) *fact.DataflowResult[N, F] {
	result := fact.NewDataflowResult[N, F]()
	nodes := g.Nodes()
	for _, n := range nodes {
		result.SetIn(n, a.NewInitialFact())
		result.SetOut(n, a.NewInitialFact())
	}
	result.SetOut(g.Exit(), a.NewBoundaryFact(g))

	for {
		changedAny := false
		for _, n := range nodes {
			out := a.NewInitialFact()
			for _, e := range g.Succs(n) {
				out = a.MeetInto(result.In(e.To), out)
			}
			if n == g.Exit() {
				out = a.MeetInto(result.Out(n), out)
			}
			result.SetOut(n, out)

			prevIn := result.In(n)
			in := a.TransferNode(n, out)
			if !in.Equal(prevIn) {
				result.SetIn(n, in)
				changedAny = true
			}
		}
		if !changedAny {
			break
		}
	}

	return result
}
