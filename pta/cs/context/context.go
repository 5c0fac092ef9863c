// Package context implements spec.md §3's Context: "a bounded ordered
// sequence of elements... value-typed and interned; equality is
// structural. The empty context is a distinguished constant." Element
// type depends on the selector in use (call site, allocation object,
// or container type — spec.md §4.8); all three are always pointers in
// this module's IR, so a single interned, reflect-hashed
// representation serves every selector.
package context

import (
	"reflect"

	"github.com/sablelang/sable/utils"
	"github.com/sablelang/sable/utils/hmap"
)

// Element is a context element: a call site (*ir.Stmt), a heap object
// (*cs/element.CSObj's underlying identity), or a container type
// (*ir.Type). Always a pointer.
type Element interface{}

// Context is spec.md §3's value-typed, structurally-equal sequence.
type Context struct {
	elems []Element
}

// Empty is the distinguished empty context.
var Empty = Context{}

func (c Context) Len() int        { return len(c.elems) }
func (c Context) Elems() []Element { return c.elems }

func (c Context) Last() (Element, bool) {
	if len(c.elems) == 0 {
		return nil, false
	}
	return c.elems[len(c.elems)-1], true
}

// Truncate keeps only the last k elements, per spec.md §4.8's
// k-limiting rule ("truncate to the last k elements before
// appending").
func (c Context) Truncate(k int) Context {
	if k < 0 {
		panic("context: negative k")
	}
	if len(c.elems) <= k {
		return c
	}
	return Context{elems: c.elems[len(c.elems)-k:]}
}

// Append returns truncate(c, k) with e appended, so the result holds
// at most k+1 elements; no further truncation is applied. The
// selectors in pta/cs/selector pass their own k minus one, which keeps
// every context they build at most k elements long.
func Append(c Context, e Element, k int) Context {
	truncated := c.Truncate(k)
	elems := make([]Element, len(truncated.elems)+1)
	copy(elems, truncated.elems)
	elems[len(elems)-1] = e
	return Context{elems: elems}
}

type hasher struct{}

func (hasher) Hash(c Context) uint32 {
	hs := make([]uint32, len(c.elems))
	for i, e := range c.elems {
		hs[i] = pointerHash(e)
	}
	return utils.HashCombine(hs...)
}

func (hasher) Equal(a, b Context) bool {
	if len(a.elems) != len(b.elems) {
		return false
	}
	for i := range a.elems {
		if a.elems[i] != b.elems[i] {
			return false
		}
	}
	return true
}

func pointerHash(e Element) uint32 {
	p := reflect.ValueOf(e).Pointer()
	return uint32(p ^ (p >> 32))
}

var _ utils.Hasher[Context] = hasher{}

// Pool hash-conses contexts so that, once interned, equality between
// two Contexts reduces to pointer/id equality on the canonical
// representative (spec.md §9's "Context interning"). Intern returns a
// *Context so callers (CSVar/CSObj/CSMethod keys) can use ordinary Go
// map-key equality — a bare Context is not comparable, since it holds
// a slice.
type Pool struct {
	m *hmap.Map[Context, *Context]
}

func NewPool() *Pool {
	return &Pool{m: hmap.NewMap[*Context, Context](hasher{})}
}

func (p *Pool) Intern(c Context) *Context {
	if v, ok := p.m.GetOk(c); ok {
		return v
	}
	v := &c
	p.m.Set(c, v)
	return v
}
