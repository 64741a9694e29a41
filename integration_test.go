// ABOUTME: Integration tests exercising the heap through its public API
// ABOUTME: End-to-end allocation, mutation, and collection scenarios

package garbagecollector_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andristarr/garbage-collector/heap"
)

func newHeap(t *testing.T, maxStack int) *heap.Heap {
	t.Helper()
	h := heap.New(maxStack)
	h.SetOutput(io.Discard)
	return h
}

func TestRootedIntsSurviveCollection(t *testing.T) {
	h := newHeap(t, 10)

	_, err := h.PushInt(1)
	require.NoError(t, err)
	_, err = h.PushInt(2)
	require.NoError(t, err)

	h.Collect()

	assert.Equal(t, 2, h.NumObjects())
}

func TestPoppedIntsAreCollected(t *testing.T) {
	h := newHeap(t, 10)

	_, err := h.PushInt(1)
	require.NoError(t, err)
	_, err = h.PushInt(2)
	require.NoError(t, err)

	_, err = h.Pop()
	require.NoError(t, err)
	_, err = h.Pop()
	require.NoError(t, err)

	h.Collect()

	assert.Equal(t, 0, h.NumObjects())
}

func TestNestedPairsStayReachable(t *testing.T) {
	h := newHeap(t, 10)

	_, err := h.PushInt(1)
	require.NoError(t, err)
	_, err = h.PushInt(2)
	require.NoError(t, err)
	p1, err := h.PushPair()
	require.NoError(t, err)
	_, err = h.PushInt(3)
	require.NoError(t, err)
	_, err = h.PushInt(4)
	require.NoError(t, err)
	p2, err := h.PushPair()
	require.NoError(t, err)
	p3, err := h.PushPair()
	require.NoError(t, err)

	// The outer pair combines the two inner ones: deeper operand is the
	// head, most recent the tail.
	head, err := h.PairHead(p3)
	require.NoError(t, err)
	tail, err := h.PairTail(p3)
	require.NoError(t, err)
	assert.Equal(t, p1, head)
	assert.Equal(t, p2, tail)

	h.Collect()

	assert.Equal(t, 7, h.NumObjects())
	assert.Equal(t, 1, h.RootLen())
}

func TestMutualCycleSurvivesWhileRooted(t *testing.T) {
	h := newHeap(t, 10)

	_, err := h.PushInt(1)
	require.NoError(t, err)
	_, err = h.PushInt(2)
	require.NoError(t, err)
	a, err := h.PushPair()
	require.NoError(t, err)
	_, err = h.PushInt(3)
	require.NoError(t, err)
	_, err = h.PushInt(4)
	require.NoError(t, err)
	b, err := h.PushPair()
	require.NoError(t, err)

	require.NoError(t, h.SetPairTail(a, b))
	require.NoError(t, h.SetPairTail(b, a))

	h.Collect()

	// Both pairs plus their head ints survive; the replaced tail ints
	// are gone and marking terminated despite the cycle.
	assert.Equal(t, 4, h.NumObjects())
}

func TestCollectionSummaryOutput(t *testing.T) {
	h := heap.New(10)
	var buf bytes.Buffer
	h.SetOutput(&buf)

	_, err := h.PushInt(1)
	require.NoError(t, err)
	_, err = h.PushInt(2)
	require.NoError(t, err)
	_, err = h.Pop()
	require.NoError(t, err)
	_, err = h.Pop()
	require.NoError(t, err)

	stats := h.Collect()

	assert.Equal(t, 2, stats.Reclaimed)
	assert.Equal(t, 0, stats.Live)
	assert.Equal(t, "Collected 2 objects, 0 remaining.\n", buf.String())
}

func TestChurnManyGenerations(t *testing.T) {
	h := newHeap(t, 10)

	// Allocate well past the initial threshold while keeping only one
	// root alive; implicit collections must keep the heap bounded.
	keep, err := h.PushInt(0)
	require.NoError(t, err)
	for i := 1; i <= 100; i++ {
		_, err := h.PushInt(uint64(i))
		require.NoError(t, err)
		_, err = h.Pop()
		require.NoError(t, err)
	}

	assert.Greater(t, h.Stats().Collections, 0)
	assert.LessOrEqual(t, h.NumObjects(), 2*heap.DefaultMaxObjects)

	h.Collect()
	assert.Equal(t, 1, h.NumObjects())

	v, err := h.IntValue(keep)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), v)
}
