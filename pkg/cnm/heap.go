package cnm

import (
	"errors"

	"github.com/nucleus/cnm-core/pkg/cnmerr"
)

// BinaryMaxHeap is a generic indexed max-heap keyed by a comparable
// identity (typically a pointer), valued by a float32. It maintains an
// auxiliary key->index map so Remove and Update are O(log n) rather than
// O(n), per the Wakita-Tsurumi requirement that third-party global-heap
// touches during a merge stay logarithmic.
//
// Ordering among equal values is unspecified by this type; ties are broken
// by the order entries were sifted, which is itself determined by insertion
// order. That makes runs on identical input reproducible without imposing
// any particular tie-break rule on callers.
type BinaryMaxHeap[K comparable] struct {
	entries []heapEntry[K]
	index   map[K]int
}

type heapEntry[K comparable] struct {
	key   K
	value float32
}

// NewBinaryMaxHeap returns an empty heap.
func NewBinaryMaxHeap[K comparable]() *BinaryMaxHeap[K] {
	return &BinaryMaxHeap[K]{
		index: make(map[K]int),
	}
}

// Len returns the number of entries currently in the heap.
func (h *BinaryMaxHeap[K]) Len() int {
	return len(h.entries)
}

// Contains reports whether key is currently in the heap.
func (h *BinaryMaxHeap[K]) Contains(key K) bool {
	_, ok := h.index[key]
	return ok
}

// Add inserts key with value. It returns an Internal error if key is
// already present — duplicate keys would silently corrupt the index map.
func (h *BinaryMaxHeap[K]) Add(key K, value float32) error {
	if _, ok := h.index[key]; ok {
		return cnmerr.Internal("BinaryMaxHeap.Add", "heap-unique-key", errDuplicateHeapKey)
	}
	h.entries = append(h.entries, heapEntry[K]{key: key, value: value})
	i := len(h.entries) - 1
	h.index[key] = i
	h.siftUp(i)
	return nil
}

// TryTop returns the maximum entry without removing it. ok is false when
// the heap is empty.
func (h *BinaryMaxHeap[K]) TryTop() (key K, value float32, ok bool) {
	if len(h.entries) == 0 {
		return key, 0, false
	}
	top := h.entries[0]
	return top.key, top.value, true
}

// Remove deletes key from the heap in O(log n). It is a no-op if key is
// absent.
func (h *BinaryMaxHeap[K]) Remove(key K) {
	i, ok := h.index[key]
	if !ok {
		return
	}
	h.removeAt(i)
}

// Update changes key's value and restores heap order. It is a no-op if key
// is absent.
func (h *BinaryMaxHeap[K]) Update(key K, newValue float32) {
	i, ok := h.index[key]
	if !ok {
		return
	}
	old := h.entries[i].value
	h.entries[i].value = newValue
	switch {
	case newValue > old:
		h.siftUp(i)
	case newValue < old:
		h.siftDown(i)
	}
}

func (h *BinaryMaxHeap[K]) removeAt(i int) {
	last := len(h.entries) - 1
	h.swap(i, last)
	delete(h.index, h.entries[last].key)
	h.entries = h.entries[:last]
	if i < len(h.entries) {
		h.siftDown(i)
		h.siftUp(i)
	}
}

func (h *BinaryMaxHeap[K]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.entries[parent].value >= h.entries[i].value {
			return
		}
		h.swap(parent, i)
		i = parent
	}
}

func (h *BinaryMaxHeap[K]) siftDown(i int) {
	n := len(h.entries)
	for {
		left, right := 2*i+1, 2*i+2
		largest := i
		if left < n && h.entries[left].value > h.entries[largest].value {
			largest = left
		}
		if right < n && h.entries[right].value > h.entries[largest].value {
			largest = right
		}
		if largest == i {
			return
		}
		h.swap(i, largest)
		i = largest
	}
}

func (h *BinaryMaxHeap[K]) swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
	h.index[h.entries[i].key] = i
	h.index[h.entries[j].key] = j
}

var errDuplicateHeapKey = errors.New("key already present in heap")
