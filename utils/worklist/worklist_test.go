package worklist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sablelang/sable/utils/worklist"
)

func TestStartProcessesInFIFOOrderUntilDry(t *testing.T) {
	var order []int
	worklist.Start(1, func(next int, add func(int)) {
		order = append(order, next)
		if next < 3 {
			add(next + 1)
		}
	})
	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestStartVSeedsMultipleElements(t *testing.T) {
	var seen []int
	worklist.StartV([]int{10, 20}, func(next int, add func(int)) {
		seen = append(seen, next)
	})
	assert.ElementsMatch(t, []int{10, 20}, seen)
}

func TestAddAndGetNextIsFIFO(t *testing.T) {
	w := worklist.Empty[int]()
	assert.True(t, w.IsEmpty())

	w.Add(5)
	w.Add(6)
	assert.False(t, w.IsEmpty())
	assert.Equal(t, 5, w.GetNext())
	assert.Equal(t, 6, w.GetNext())
	assert.True(t, w.IsEmpty())
}
