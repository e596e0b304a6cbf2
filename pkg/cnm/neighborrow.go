package cnm

import "sort"

// neighborSlot is one (neighbor-community-id, PairEntry) binding, kept in a
// NeighborRow sorted ascending by id.
type neighborSlot struct {
	id    int
	entry *PairEntry
}

// NeighborRow is a community's ordered mapping from neighbor-community-id
// to PairEntry. Ordering by integer key lets the Merger walk two rows with
// a single linear-time parallel-cursor merge (spec.md section 4.3):
// a hash map would force an O(|rowA|*|rowB|) join or an extra per-merge
// sort. It also tracks the entry with the current maximum DeltaQ so a
// community's best neighbor is an O(1) read.
type NeighborRow struct {
	slots []neighborSlot
	index map[int]int // neighbor id -> position in slots
	best  *PairEntry
}

// NewNeighborRow returns an empty row.
func NewNeighborRow() *NeighborRow {
	return &NeighborRow{index: make(map[int]int)}
}

// Len returns the number of distinct neighbors.
func (r *NeighborRow) Len() int {
	return len(r.slots)
}

// Best returns the entry with the current maximum DeltaQ, or nil if the
// row is empty.
func (r *NeighborRow) Best() *PairEntry {
	return r.best
}

// Has reports whether id is present.
func (r *NeighborRow) Has(id int) bool {
	_, ok := r.index[id]
	return ok
}

// Get returns the entry keyed by id, or nil if absent.
func (r *NeighborRow) Get(id int) *PairEntry {
	if i, ok := r.index[id]; ok {
		return r.slots[i].entry
	}
	return nil
}

// At returns the i-th entry in ascending key order, used by the Merger's
// linear row merge for random access into either side's cursor position.
func (r *NeighborRow) At(i int) (id int, entry *PairEntry) {
	s := r.slots[i]
	return s.id, s.entry
}

// Insert adds entry keyed by id. It is the caller's responsibility to
// guarantee id is not already present — the Initializer treats a duplicate
// insert as "collapse the parallel edge" and skips it, and the Merger's
// parallel-cursor walk emits each neighbor id once.
func (r *NeighborRow) Insert(id int, entry *PairEntry) {
	i := sort.Search(len(r.slots), func(i int) bool { return r.slots[i].id >= id })
	r.slots = append(r.slots, neighborSlot{})
	copy(r.slots[i+1:], r.slots[i:])
	r.slots[i] = neighborSlot{id: id, entry: entry}
	r.reindexFrom(i)

	if r.best == nil || entry.DeltaQ > r.best.DeltaQ {
		r.best = entry
	}
}

// Remove deletes the entry keyed by id, if present, and rescans for a new
// best if the removed entry was it.
func (r *NeighborRow) Remove(id int) {
	i, ok := r.index[id]
	if !ok {
		return
	}
	removed := r.slots[i].entry
	r.slots = append(r.slots[:i], r.slots[i+1:]...)
	delete(r.index, id)
	r.reindexFrom(i)

	if r.best == removed {
		r.rescanBest()
	}
}

// Update changes the DeltaQ of the entry keyed by id in place and keeps
// best consistent: if the entry was best and its value dropped, rescan; if
// another entry now exceeds best, adopt it.
func (r *NeighborRow) Update(id int, newDeltaQ float32) {
	entry := r.Get(id)
	if entry == nil {
		return
	}
	wasBest := entry == r.best
	entry.DeltaQ = newDeltaQ

	if wasBest {
		r.rescanBest()
		return
	}
	if r.best == nil || newDeltaQ > r.best.DeltaQ {
		r.best = entry
	}
}

// SetBest forces best to entry without rescanning. Nothing in this package
// calls it: the Merger relies on Insert tracking the maximum as it fills
// the merged row.
func (r *NeighborRow) SetBest(entry *PairEntry) {
	r.best = entry
}

// Each calls fn for every (id, entry) pair in ascending id order.
func (r *NeighborRow) Each(fn func(id int, entry *PairEntry)) {
	for _, s := range r.slots {
		fn(s.id, s.entry)
	}
}

func (r *NeighborRow) rescanBest() {
	r.best = nil
	for _, s := range r.slots {
		if r.best == nil || s.entry.DeltaQ > r.best.DeltaQ {
			r.best = s.entry
		}
	}
}

func (r *NeighborRow) reindexFrom(i int) {
	for ; i < len(r.slots); i++ {
		r.index[r.slots[i].id] = i
	}
}
