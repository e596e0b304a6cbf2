package cnm

// GlobalHeap is a BinaryMaxHeap keyed by Community reference and valued by
// that community's current best neighbor DeltaQ. It holds exactly one
// entry per live community that has at least one neighbor; isolated
// communities never appear in it.
//
// This is the Wakita-Tsurumi half of the two-level heap: because every
// community already caches its own best pair, finding the global maximum
// is an O(1) heap-top read instead of an O(|pairs|) scan, and a merge only
// has to touch as many GlobalHeap entries as third communities it affects.
type GlobalHeap struct {
	heap *BinaryMaxHeap[*Community]
}

// NewGlobalHeap returns an empty GlobalHeap.
func NewGlobalHeap() *GlobalHeap {
	return &GlobalHeap{heap: NewBinaryMaxHeap[*Community]()}
}

// Len returns the number of communities currently tracked.
func (g *GlobalHeap) Len() int {
	return g.heap.Len()
}

// Push adds c to the heap valued by its current Best().DeltaQ. The caller
// must ensure c.Best() is non-nil before calling Push.
func (g *GlobalHeap) Push(c *Community) error {
	return g.heap.Add(c, c.Best().DeltaQ)
}

// Remove drops c from the heap; a no-op if c is absent (e.g. it already
// had no neighbors).
func (g *GlobalHeap) Remove(c *Community) {
	g.heap.Remove(c)
}

// Sync reconciles c's heap entry with its current Best(): removes c if it
// has no neighbors left, updates its value if it is already tracked, or
// pushes it fresh if this is the first time it has gained a neighbor.
func (g *GlobalHeap) Sync(c *Community) error {
	best := c.Best()
	if best == nil {
		g.heap.Remove(c)
		return nil
	}
	if g.heap.Contains(c) {
		g.heap.Update(c, best.DeltaQ)
		return nil
	}
	return g.heap.Add(c, best.DeltaQ)
}

// TryTop returns the community with the current global maximum best
// DeltaQ, or ok=false if the heap is empty.
func (g *GlobalHeap) TryTop() (c *Community, deltaQ float32, ok bool) {
	return g.heap.TryTop()
}
