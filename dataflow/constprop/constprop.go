// Package constprop implements integer constant propagation
// (spec.md §4.2), grounded on A4's
// dataflow/analysis/constprop/ConstantPropagation.java.
package constprop

import (
	"github.com/sablelang/sable/cfg"
	"github.com/sablelang/sable/dataflow/fact"
	"github.com/sablelang/sable/ir"
	"github.com/sablelang/sable/lattice"
)

// Analysis is the constant-propagation dataflow.Analysis instance:
// forward, over CPFact. Params are the owning method's formal
// parameters, needed to build the boundary fact (spec.md §4.2);
// a bare CFG[*ir.Stmt] cannot recover them on its own.
type Analysis struct {
	Params []*ir.Var
}

func New(theIR *ir.IR) *Analysis { return &Analysis{Params: theIR.Params} }

func (*Analysis) IsForward() bool { return true }

// NewBoundaryFact maps every integer-capable formal parameter to NAC;
// every other variable is implicitly UNDEF (spec.md §4.2).
func (a *Analysis) NewBoundaryFact(g *cfg.CFG[*ir.Stmt]) fact.CPFact {
	f := fact.NewCPFact()
	for _, p := range a.Params {
		if p.Type.CanHoldInt() {
			f = f.Update(p, lattice.Nac)
		}
	}
	return f
}

func (*Analysis) NewInitialFact() fact.CPFact { return fact.NewCPFact() }

// MeetInto implements spec.md §4.2's meetValue, applied pointwise over
// every variable appearing in either fact.
func (*Analysis) MeetInto(src, dst fact.CPFact) fact.CPFact {
	src.ForEach(func(v *ir.Var, val lattice.Value) {
		dst = dst.Update(v, lattice.Meet(dst.Get(v), val))
	})
	return dst
}

// TransferNode implements spec.md §4.2's transferNode: copy in,
// update the defined variable (if integer-capable) with evaluate().
// The solver itself detects whether the result changed (via CPFact's
// Equal), which is also what spec.md §3's CPFact.copyFrom reports for
// direct callers exercising the round-trip property (spec.md §8.7).
func (*Analysis) TransferNode(n *ir.Stmt, in fact.CPFact) fact.CPFact {
	work := in.Copy()
	if v, ok := n.Def(); ok && v.Type.CanHoldInt() {
		var val lattice.Value
		if n.Kind == ir.KindAssign {
			val = Evaluate(n.RValue, in)
		} else {
			// New, LoadField, LoadArray, Invoke: "anything else → NAC"
			// (spec.md §4.2's evaluate table, applied to definitions
			// whose right-hand side isn't a plain Exp).
			val = lattice.Nac
		}
		work = work.Update(v, val)
	}
	return work
}

// Evaluate implements spec.md §4.2's evaluate() table.
func Evaluate(e ir.Exp, in fact.CPFact) lattice.Value {
	switch x := e.(type) {
	case *ir.Var:
		return in.Get(x)
	case ir.IntLiteral:
		return lattice.Constant(x.Value)
	case *ir.ArithmeticExp:
		return evalArith(x, in)
	case *ir.ShiftExp:
		return evalShift(x, in)
	case *ir.BitwiseExp:
		return evalBitwise(x, in)
	case *ir.ConditionExp:
		return evalCondition(x, in)
	default:
		return lattice.Nac
	}
}

func evalArith(x *ir.ArithmeticExp, in fact.CPFact) lattice.Value {
	a, b := Evaluate(x.X, in), Evaluate(x.Y, in)
	if a.IsUndef() || b.IsUndef() {
		return lattice.Undef
	}
	if (x.Op == ir.Div || x.Op == ir.Rem) && b.IsConstant() && b.Int() == 0 {
		return lattice.Undef
	}
	if !a.IsConstant() || !b.IsConstant() {
		return lattice.Nac
	}
	av, bv := a.Int(), b.Int()
	switch x.Op {
	case ir.Add:
		return lattice.Constant(av + bv)
	case ir.Sub:
		return lattice.Constant(av - bv)
	case ir.Mul:
		return lattice.Constant(av * bv)
	case ir.Div:
		return lattice.Constant(av / bv)
	case ir.Rem:
		return lattice.Constant(av % bv)
	default:
		return lattice.Nac
	}
}

func evalShift(x *ir.ShiftExp, in fact.CPFact) lattice.Value {
	a, b := Evaluate(x.X, in), Evaluate(x.Y, in)
	if a.IsUndef() || b.IsUndef() {
		return lattice.Undef
	}
	if !a.IsConstant() || !b.IsConstant() {
		return lattice.Nac
	}
	av, bv := a.Int(), uint32(b.Int())&31
	switch x.Op {
	case ir.Shl:
		return lattice.Constant(av << bv)
	case ir.Shr:
		return lattice.Constant(av >> bv)
	case ir.UShr:
		return lattice.Constant(int32(uint32(av) >> bv))
	default:
		return lattice.Nac
	}
}

func evalBitwise(x *ir.BitwiseExp, in fact.CPFact) lattice.Value {
	a, b := Evaluate(x.X, in), Evaluate(x.Y, in)
	if a.IsUndef() || b.IsUndef() {
		return lattice.Undef
	}
	if !a.IsConstant() || !b.IsConstant() {
		return lattice.Nac
	}
	av, bv := a.Int(), b.Int()
	switch x.Op {
	case ir.And:
		return lattice.Constant(av & bv)
	case ir.Or:
		return lattice.Constant(av | bv)
	case ir.Xor:
		return lattice.Constant(av ^ bv)
	default:
		return lattice.Nac
	}
}

func evalCondition(x *ir.ConditionExp, in fact.CPFact) lattice.Value {
	a, b := Evaluate(x.X, in), Evaluate(x.Y, in)
	if a.IsUndef() || b.IsUndef() {
		return lattice.Undef
	}
	if !a.IsConstant() || !b.IsConstant() {
		return lattice.Nac
	}
	av, bv := a.Int(), b.Int()
	var result bool
	switch x.Op {
	case ir.Eq:
		result = av == bv
	case ir.Ne:
		result = av != bv
	case ir.Lt:
		result = av < bv
	case ir.Gt:
		result = av > bv
	case ir.Le:
		result = av <= bv
	case ir.Ge:
		result = av >= bv
	default:
		return lattice.Nac
	}
	if result {
		return lattice.Constant(1)
	}
	return lattice.Constant(0)
}
