// Package irtest provides small helpers for hand-assembling ir.IR
// values in tests, standing in for the parser/class-loader spec.md §6
// treats as an external collaborator.
package irtest

import "github.com/sablelang/sable/ir"

// Method builds a single concrete static method named "test" on a
// fresh class, with no parameters beyond what IntParam adds. It
// returns the Builder so the caller appends statements directly.
func Method(className string) (*ir.Class, *ir.Method, *ir.Builder) {
	c := ir.NewClass(className, false)
	m := &ir.Method{Name: "test", Subsig: "test()", DeclaringClass: c, Static: true, ReturnType: nil}
	c.AddMethod(m)
	return c, m, ir.NewBuilder(m)
}

func IntVar(b *ir.Builder, name string) *ir.Var {
	v := &ir.Var{Name: name, Type: ir.Primitive(ir.Int)}
	b.AddVar(v)
	return v
}

func IntParam(b *ir.Builder, name string) *ir.Var {
	v := &ir.Var{Name: name, Type: ir.Primitive(ir.Int)}
	b.AddParam(v)
	return v
}

func RefVar(b *ir.Builder, name string, t *ir.Type) *ir.Var {
	v := &ir.Var{Name: name, Type: t}
	b.AddVar(v)
	return v
}

// Assign appends `v = e`.
func Assign(b *ir.Builder, v *ir.Var, e ir.Exp) *ir.Stmt {
	return b.Add(&ir.Stmt{Kind: ir.KindAssign, LValue: v, RValue: e})
}

// Lit builds a constant integer literal expression.
func Lit(k int32) ir.Exp { return ir.IntLiteral{Value: k} }

func Arith(op ir.ArithOp, x, y ir.Exp) ir.Exp { return &ir.ArithmeticExp{Op: op, X: x, Y: y} }
func Shift(op ir.ShiftOp, x, y ir.Exp) ir.Exp { return &ir.ShiftExp{Op: op, X: x, Y: y} }
func Bit(op ir.BitOp, x, y ir.Exp) ir.Exp     { return &ir.BitwiseExp{Op: op, X: x, Y: y} }
func Cond(op ir.CondOp, x, y ir.Exp) *ir.ConditionExp {
	return &ir.ConditionExp{Op: op, X: x, Y: y}
}

// New appends `v = new T`.
func New(b *ir.Builder, v *ir.Var, t *ir.Type) *ir.Stmt {
	return b.Add(&ir.Stmt{Kind: ir.KindNew, LValue: v, Alloc: t})
}

// Copy appends `v = w`.
func Copy(b *ir.Builder, v, w *ir.Var) *ir.Stmt {
	return b.Add(&ir.Stmt{Kind: ir.KindCopy, LValue: v, From: w})
}

// LoadField appends `v = base.f` (base == nil for a static field).
func LoadField(b *ir.Builder, v *ir.Var, base *ir.Var, f *ir.Field) *ir.Stmt {
	return b.Add(&ir.Stmt{Kind: ir.KindLoadField, LValue: v, Base: base, Field: f})
}

// StoreField appends `base.f = v` (base == nil for a static field).
func StoreField(b *ir.Builder, base *ir.Var, f *ir.Field, v *ir.Var) *ir.Stmt {
	return b.Add(&ir.Stmt{Kind: ir.KindStoreField, Base: base, Field: f, From: v})
}

func LoadArray(b *ir.Builder, v *ir.Var, base *ir.Var) *ir.Stmt {
	return b.Add(&ir.Stmt{Kind: ir.KindLoadArray, LValue: v, Base: base})
}

func StoreArray(b *ir.Builder, base *ir.Var, v *ir.Var) *ir.Stmt {
	return b.Add(&ir.Stmt{Kind: ir.KindStoreArray, Base: base, From: v})
}

// Invoke appends a call. ret may be nil for a void/unused-result call.
func Invoke(b *ir.Builder, ret *ir.Var, base *ir.Var, ref *ir.MethodRef, args []*ir.Var, kind InvokeKind) *ir.Stmt {
	s := &ir.Stmt{Kind: ir.KindInvoke, LValue: ret, Base: base, Ref: ref, Args: args}
	switch kind {
	case Static:
		s.Static = true
	case Special:
		s.Special = true
	case Virtual:
		s.Virtual = true
	case InterfaceCall:
		s.Interface = true
	case Dynamic:
		s.Dynamic = true
	}
	return b.Add(s)
}

type InvokeKind int

const (
	Static InvokeKind = iota
	Special
	Virtual
	InterfaceCall
	Dynamic
)

// If appends a conditional branch; target indices refer to statement
// indices that will exist once all statements have been added.
func If(b *ir.Builder, cond *ir.ConditionExp, trueTarget, falseTarget int) *ir.Stmt {
	return b.Add(&ir.Stmt{Kind: ir.KindIf, Cond: cond, TrueTarget: trueTarget, FalseTarget: falseTarget})
}

func Switch(b *ir.Builder, v *ir.Var, cases []ir.SwitchCase, defaultTarget int) *ir.Stmt {
	return b.Add(&ir.Stmt{Kind: ir.KindSwitch, SwitchVar: v, Cases: cases, DefaultTarget: defaultTarget})
}

func Goto(b *ir.Builder, target int) *ir.Stmt {
	return b.Add(&ir.Stmt{Kind: ir.KindGoto, GotoTarget: target})
}

func Return(b *ir.Builder, v *ir.Var) *ir.Stmt {
	var rv []*ir.Var
	if v != nil {
		rv = []*ir.Var{v}
	}
	return b.Add(&ir.Stmt{Kind: ir.KindReturn, ReturnVars: rv})
}

func Nop(b *ir.Builder) *ir.Stmt {
	return b.Add(&ir.Stmt{Kind: ir.KindNop})
}
