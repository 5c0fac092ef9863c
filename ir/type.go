// Package ir defines the class-based three-address intermediate
// representation consumed by the dataflow and pointer-analysis cores,
// together with the class-hierarchy service that accompanies it.
//
// Var, Stmt, Class and Method are mutually referential (a Method owns
// an IR built of Stmts that reference Classes, and a Class owns
// Methods) so they live in a single package rather than being split
// across ir/classes, which would force an import cycle.
package ir

// TypeKind distinguishes primitive and reference types. Only the
// integer-capable kinds matter to constant propagation; reference
// kinds exist so Var.Type can describe allocation and field types.
type TypeKind int

const (
	Byte TypeKind = iota
	Short
	Int
	Char
	Boolean
	Long
	Float
	Double
	Reference
)

// Type is either a primitive TypeKind or a reference to a declared Class.
type Type struct {
	Kind  TypeKind
	Class *Class // non-nil iff Kind == Reference
}

func Primitive(k TypeKind) *Type { return &Type{Kind: k} }

func ClassType(c *Class) *Type { return &Type{Kind: Reference, Class: c} }

// CanHoldInt reports whether a value of this type is tracked by
// constant propagation: byte, short, int, char, boolean.
func (t *Type) CanHoldInt() bool {
	switch t.Kind {
	case Byte, Short, Int, Char, Boolean:
		return true
	default:
		return false
	}
}

func (t *Type) String() string {
	if t.Kind == Reference {
		if t.Class == nil {
			return "<unresolved>"
		}
		return t.Class.Name
	}
	return [...]string{"byte", "short", "int", "char", "boolean", "long", "float", "double"}[t.Kind]
}
