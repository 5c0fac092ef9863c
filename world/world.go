// Package world bundles the external collaborators every solver needs
// — entry method, class hierarchy, heap model — as an explicit context
// object passed by pointer, rather than the ambient singleton spec.md
// §9 warns against ("pass it as an explicit context object to every
// subsystem").
package world

import (
	"github.com/sablelang/sable/heap"
	"github.com/sablelang/sable/ir"
)

type World struct {
	Entry     *ir.Method
	Hierarchy *ir.Hierarchy
	Heap      *heap.Model
}

func New(entry *ir.Method, hierarchy *ir.Hierarchy) *World {
	return &World{Entry: entry, Hierarchy: hierarchy, Heap: heap.NewModel()}
}
