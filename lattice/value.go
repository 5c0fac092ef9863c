// Package lattice implements the three-point flat lattice spec.md §3
// names Value: UNDEF (bottom), CONSTANT(i32), NAC (top). Modeled after
// the teacher's FlatLattice/flatElement split: a public Meet function
// plus Leq/Eq/Height methods on Value.
package lattice

import (
	"strconv"

	"github.com/fatih/color"
)

// Colorize toggles ANSI coloring in Value.String(); off by default so
// test and library output is plain, flippable for interactive use the
// way the teacher's colorize helpers are.
var Colorize = false

type kind int

const (
	undef kind = iota
	constant
	nac
)

// Value is UNDEF, CONSTANT(i), or NAC. The zero Value is UNDEF.
type Value struct {
	kind kind
	i    int32
}

var (
	Undef = Value{kind: undef}
	Nac   = Value{kind: nac}
)

func Constant(i int32) Value { return Value{kind: constant, i: i} }

func (v Value) IsUndef() bool    { return v.kind == undef }
func (v Value) IsConstant() bool { return v.kind == constant }
func (v Value) IsNAC() bool      { return v.kind == nac }

// Int returns the constant's value; only meaningful when IsConstant.
func (v Value) Int() int32 { return v.i }

// Height places a value in its lattice's height ordering: 0 for
// UNDEF, 1 for any CONSTANT, 2 for NAC.
func (v Value) Height() int {
	switch v.kind {
	case undef:
		return 0
	case nac:
		return 2
	default:
		return 1
	}
}

// Leq is the lattice order: UNDEF ⊑ c ⊑ NAC, c ⊑ c, and two distinct
// constants are incomparable (Leq returns false both ways).
func (a Value) Leq(b Value) bool {
	if a.kind == undef || b.kind == nac {
		return true
	}
	if a.kind == nac || b.kind == undef {
		return false
	}
	return a.i == b.i
}

func (a Value) Eq(b Value) bool { return a.kind == b.kind && (a.kind != constant || a.i == b.i) }

// Meet implements spec.md §4.2's meetValue: NAC absorbs, UNDEF is
// identity, equal constants yield that constant, unequal constants
// yield NAC.
func Meet(a, b Value) Value {
	switch {
	case a.kind == nac || b.kind == nac:
		return Nac
	case a.kind == undef:
		return b
	case b.kind == undef:
		return a
	case a.i == b.i:
		return a
	default:
		return Nac
	}
}

func (v Value) String() string {
	var s string
	switch v.kind {
	case undef:
		s = "UNDEF"
	case nac:
		s = "NAC"
	default:
		s = strconv.FormatInt(int64(v.i), 10)
	}
	if !Colorize {
		return s
	}
	switch v.kind {
	case undef:
		return color.New(color.FgBlue).Sprint(s)
	case nac:
		return color.New(color.FgRed).Sprint(s)
	default:
		return color.New(color.FgGreen).Sprint(s)
	}
}
