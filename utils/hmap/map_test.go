package hmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sablelang/sable/utils"
	"github.com/sablelang/sable/utils/hmap"
)

// collidingHasher sends every key to the same bucket, forcing Set/GetOk
// to walk the collision list rather than hitting on the first node.
type collidingHasher struct{}

func (collidingHasher) Hash(string) uint32     { return 0 }
func (collidingHasher) Equal(a, b string) bool { return a == b }

var _ utils.Hasher[string] = collidingHasher{}

func TestSetAndGetThroughHashCollisions(t *testing.T) {
	m := hmap.NewMap[int, string](collidingHasher{})
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)

	assert.Equal(t, 1, m.Get("a"))
	assert.Equal(t, 2, m.Get("b"))
	assert.Equal(t, 3, m.Get("c"))
}

func TestSetOverwritesExistingKey(t *testing.T) {
	m := hmap.NewMap[int, string](collidingHasher{})
	m.Set("a", 1)
	m.Set("a", 2)
	assert.Equal(t, 2, m.Get("a"))
}

func TestGetOkReportsMissingKey(t *testing.T) {
	m := hmap.NewMap[int, string](collidingHasher{})
	m.Set("a", 1)

	v, ok := m.GetOk("missing")
	assert.False(t, ok)
	assert.Equal(t, 0, v)
}
