package ir

// Kind tags the closed set of statement variants. Dispatch over Stmt
// is a switch on Kind (spec.md §9's "tagged-variant match"), not open
// polymorphism — the statement set never grows at runtime.
type Kind int

const (
	KindAssign Kind = iota
	KindNew
	KindCopy
	KindLoadField
	KindStoreField
	KindLoadArray
	KindStoreArray
	KindCast
	KindInvoke
	KindIf
	KindSwitch
	KindGoto
	KindReturn
	KindNop
)

// Stmt is one three-address-style instruction. Not every field is
// meaningful for every Kind; see the per-Kind comment on each field.
type Stmt struct {
	Index  int
	Kind   Kind
	Method *Method // owning method, set by Builder.Add

	LValue *Var // KindAssign/New/Copy/LoadField/LoadArray/Cast/Invoke (return value, nilable for Invoke/KindReturn)
	RValue Exp  // KindAssign only

	From *Var // KindCopy, KindCast: source variable

	Base *Var // KindLoadField/StoreField/LoadArray/StoreArray/Invoke: receiver (nil = static field access or static call)

	Field *Field // KindLoadField/StoreField

	Alloc *Type // KindNew: the allocated type

	Ref       *MethodRef // KindInvoke: statically-written callee
	Args      []*Var     // KindInvoke
	Static    bool       // KindInvoke: invokestatic
	Special   bool       // KindInvoke: invokespecial
	Virtual   bool       // KindInvoke: invokevirtual
	Interface bool       // KindInvoke: invokeinterface
	Dynamic   bool       // KindInvoke: invokedynamic

	Cond        *ConditionExp // KindIf
	TrueTarget  int           // KindIf: statement index taken when Cond is true
	FalseTarget int           // KindIf: statement index taken when Cond is false (an index outside the statement list leads to the exit node)

	SwitchVar      *Var          // KindSwitch
	Cases          []SwitchCase  // KindSwitch
	DefaultTarget  int           // KindSwitch

	GotoTarget int // KindGoto

	ReturnVars []*Var // KindReturn (0 or 1 elements for this IR's scalar returns)
}

// SwitchCase pairs a constant case value with the statement index it
// branches to, i.e. spec.md §3's SWITCH_CASE(v) edge kind.
type SwitchCase struct {
	Value  int32
	Target int
}

// Def reports the variable this statement defines, if any. Used by
// live-variable analysis (spec.md §4.3) and the useless-assignment
// check in dead-code detection (spec.md §4.4).
func (s *Stmt) Def() (*Var, bool) {
	if s.LValue != nil {
		return s.LValue, true
	}
	return nil, false
}

// Uses reports the variables this statement reads.
func (s *Stmt) Uses() []*Var {
	var vs []*Var
	add := func(v *Var) {
		if v != nil {
			vs = append(vs, v)
		}
	}
	switch s.Kind {
	case KindAssign:
		vs = append(vs, expVars(s.RValue)...)
	case KindCopy, KindCast:
		add(s.From)
	case KindLoadField, KindLoadArray:
		add(s.Base)
	case KindStoreField:
		add(s.Base)
		add(s.From)
	case KindStoreArray:
		add(s.Base)
		add(s.From)
	case KindInvoke:
		add(s.Base)
		vs = append(vs, s.Args...)
	case KindIf:
		vs = append(vs, expVars(s.Cond)...)
	case KindSwitch:
		add(s.SwitchVar)
	case KindReturn:
		vs = append(vs, s.ReturnVars...)
	}
	return vs
}

func expVars(e Exp) []*Var {
	switch x := e.(type) {
	case *Var:
		return []*Var{x}
	case IntLiteral:
		return nil
	case *ArithmeticExp:
		return append(expVars(x.X), expVars(x.Y)...)
	case *ShiftExp:
		return append(expVars(x.X), expVars(x.Y)...)
	case *BitwiseExp:
		return append(expVars(x.X), expVars(x.Y)...)
	case *ConditionExp:
		return append(expVars(x.X), expVars(x.Y)...)
	default:
		return nil
	}
}
