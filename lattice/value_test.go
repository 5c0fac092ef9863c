package lattice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeq(t *testing.T) {
	assert.True(t, Undef.Leq(Constant(1)))
	assert.True(t, Undef.Leq(Nac))
	assert.True(t, Constant(1).Leq(Nac))
	assert.True(t, Constant(1).Leq(Constant(1)))
	assert.False(t, Constant(1).Leq(Constant(2)))
	assert.False(t, Nac.Leq(Constant(1)))
}

func TestMeet(t *testing.T) {
	assert.Equal(t, Undef, Meet(Undef, Undef))
	assert.Equal(t, Constant(3), Meet(Undef, Constant(3)))
	assert.Equal(t, Constant(3), Meet(Constant(3), Undef))
	assert.Equal(t, Constant(3), Meet(Constant(3), Constant(3)))
	assert.Equal(t, Nac, Meet(Constant(3), Constant(4)))
	assert.Equal(t, Nac, Meet(Nac, Constant(3)))
	assert.Equal(t, Nac, Meet(Nac, Nac))
}

func TestHeight(t *testing.T) {
	assert.Less(t, Undef.Height(), Constant(1).Height())
	assert.Less(t, Constant(1).Height(), Nac.Height())
}

func TestEq(t *testing.T) {
	assert.True(t, Constant(5).Eq(Constant(5)))
	assert.False(t, Constant(5).Eq(Constant(6)))
	assert.True(t, Undef.Eq(Undef))
	assert.True(t, Nac.Eq(Nac))
}

func TestAccessors(t *testing.T) {
	assert.True(t, Undef.IsUndef())
	assert.True(t, Constant(7).IsConstant())
	assert.Equal(t, int32(7), Constant(7).Int())
	assert.True(t, Nac.IsNAC())
}
