package cnm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nucleus/cnm-core/pkg/cnm"
)

func TestBinaryMaxHeapEmpty(t *testing.T) {
	h := cnm.NewBinaryMaxHeap[string]()
	require.Equal(t, 0, h.Len())
	_, _, ok := h.TryTop()
	require.False(t, ok)
}

func TestBinaryMaxHeapAddOrdersByValue(t *testing.T) {
	h := cnm.NewBinaryMaxHeap[string]()
	require.NoError(t, h.Add("a", 1.0))
	require.NoError(t, h.Add("b", 3.0))
	require.NoError(t, h.Add("c", 2.0))

	key, value, ok := h.TryTop()
	require.True(t, ok)
	require.Equal(t, "b", key)
	require.Equal(t, float32(3.0), value)
	require.Equal(t, 3, h.Len())
}

func TestBinaryMaxHeapAddDuplicateKeyIsInternalError(t *testing.T) {
	h := cnm.NewBinaryMaxHeap[string]()
	require.NoError(t, h.Add("a", 1.0))
	err := h.Add("a", 2.0)
	require.Error(t, err)
}

func TestBinaryMaxHeapUpdatePromotesToTop(t *testing.T) {
	h := cnm.NewBinaryMaxHeap[string]()
	require.NoError(t, h.Add("a", 1.0))
	require.NoError(t, h.Add("b", 2.0))
	require.NoError(t, h.Add("c", 3.0))

	h.Update("a", 10.0)
	key, value, ok := h.TryTop()
	require.True(t, ok)
	require.Equal(t, "a", key)
	require.Equal(t, float32(10.0), value)
}

func TestBinaryMaxHeapUpdateDemotesFromTop(t *testing.T) {
	h := cnm.NewBinaryMaxHeap[string]()
	require.NoError(t, h.Add("a", 5.0))
	require.NoError(t, h.Add("b", 1.0))

	h.Update("a", -5.0)
	key, value, ok := h.TryTop()
	require.True(t, ok)
	require.Equal(t, "b", key)
	require.Equal(t, float32(1.0), value)
}

func TestBinaryMaxHeapUpdateAbsentKeyIsNoop(t *testing.T) {
	h := cnm.NewBinaryMaxHeap[string]()
	require.NoError(t, h.Add("a", 1.0))
	h.Update("missing", 99.0)
	require.Equal(t, 1, h.Len())
}

func TestBinaryMaxHeapRemoveRestoresHeapOrder(t *testing.T) {
	h := cnm.NewBinaryMaxHeap[string]()
	require.NoError(t, h.Add("a", 5.0))
	require.NoError(t, h.Add("b", 4.0))
	require.NoError(t, h.Add("c", 3.0))
	require.NoError(t, h.Add("d", 2.0))

	h.Remove("a")
	require.Equal(t, 3, h.Len())
	require.False(t, h.Contains("a"))

	key, value, ok := h.TryTop()
	require.True(t, ok)
	require.Equal(t, "b", key)
	require.Equal(t, float32(4.0), value)
}

func TestBinaryMaxHeapRemoveAbsentKeyIsNoop(t *testing.T) {
	h := cnm.NewBinaryMaxHeap[string]()
	require.NoError(t, h.Add("a", 1.0))
	h.Remove("missing")
	require.Equal(t, 1, h.Len())
}

func TestBinaryMaxHeapDrainYieldsDescendingOrder(t *testing.T) {
	h := cnm.NewBinaryMaxHeap[int]()
	values := []float32{5, 1, 9, 3, 7, 2, 8, 4, 6, 0}
	for i, v := range values {
		require.NoError(t, h.Add(i, v))
	}

	var drained []float32
	for h.Len() > 0 {
		key, value, ok := h.TryTop()
		require.True(t, ok)
		drained = append(drained, value)
		h.Remove(key)
	}

	require.Len(t, drained, len(values))
	for i := 1; i < len(drained); i++ {
		require.GreaterOrEqual(t, drained[i-1], drained[i])
	}
}

func TestBinaryMaxHeapContains(t *testing.T) {
	h := cnm.NewBinaryMaxHeap[string]()
	require.False(t, h.Contains("a"))
	require.NoError(t, h.Add("a", 1.0))
	require.True(t, h.Contains("a"))
	h.Remove("a")
	require.False(t, h.Contains("a"))
}
