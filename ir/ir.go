package ir

// IR is a built method body: a flat, indexed statement sequence plus
// its variables. Statement indices are stable once built and are what
// dead-code detection (spec.md §4.4) sorts its result by.
type IR struct {
	Method     *Method
	Params     []*Var
	This       *Var // nil for static methods
	Vars       []*Var
	Stmts      []*Stmt
	ReturnVars []*Var
}

// Builder assembles an IR incrementally: register variables, append
// statements (indices are assigned in append order), then Build to
// freeze the statement list and populate every variable's
// store/load/invoke back-references (spec.md §6).
type Builder struct {
	method *Method
	this   *Var
	params []*Var
	vars   []*Var
	stmts  []*Stmt
}

func NewBuilder(m *Method) *Builder {
	return &Builder{method: m}
}

func (b *Builder) SetThis(v *Var) *Builder {
	v.This = true
	v.Method = b.method
	b.this = v
	b.vars = append(b.vars, v)
	return b
}

func (b *Builder) AddParam(v *Var) *Builder {
	v.Param = true
	v.Method = b.method
	b.params = append(b.params, v)
	b.vars = append(b.vars, v)
	return b
}

func (b *Builder) AddVar(v *Var) *Builder {
	v.Method = b.method
	b.vars = append(b.vars, v)
	return b
}

// Add appends a statement, assigning it the next statement index.
func (b *Builder) Add(s *Stmt) *Stmt {
	s.Index = len(b.stmts)
	s.Method = b.method
	b.stmts = append(b.stmts, s)
	return s
}

func (b *Builder) Build() *IR {
	for _, s := range b.stmts {
		switch s.Kind {
		case KindLoadField:
			if s.Base != nil {
				s.Base.loadFields = append(s.Base.loadFields, s)
			}
		case KindStoreField:
			if s.Base != nil {
				s.Base.storeFields = append(s.Base.storeFields, s)
			}
		case KindLoadArray:
			if s.Base != nil {
				s.Base.loadArrays = append(s.Base.loadArrays, s)
			}
		case KindStoreArray:
			if s.Base != nil {
				s.Base.storeArrays = append(s.Base.storeArrays, s)
			}
		case KindInvoke:
			if s.Base != nil {
				s.Base.invokes = append(s.Base.invokes, s)
			}
		}
	}

	var returnVars []*Var
	for _, s := range b.stmts {
		if s.Kind == KindReturn {
			returnVars = append(returnVars, s.ReturnVars...)
		}
	}

	theIR := &IR{
		Method:     b.method,
		Params:     b.params,
		This:       b.this,
		Vars:       b.vars,
		Stmts:      b.stmts,
		ReturnVars: returnVars,
	}
	b.method.SetIR(theIR)
	return theIR
}
