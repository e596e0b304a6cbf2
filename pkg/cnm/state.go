package cnm

// engineState is the mutable working set the Initializer builds and the
// Merger and Driver operate on: the communities list, the global heap, and
// the scalars every merge needs (edge count, id allocator).
//
// Per spec.md section 5, this is exclusively owned by the single executing
// goroutine for the lifetime of a TryCompute call; nothing here is
// synchronized.
type engineState struct {
	ids        *IdGenerator
	edgeCount  int
	byID       map[int]*Community
	order      []int // creation order of ids currently or once in byID
	globalHeap *GlobalHeap
}

func newEngineState(edgeCount int) *engineState {
	return &engineState{
		ids:        NewIdGenerator(),
		edgeCount:  edgeCount,
		byID:       make(map[int]*Community),
		globalHeap: NewGlobalHeap(),
	}
}

// add registers a newly created live community.
func (s *engineState) add(c *Community) {
	s.byID[c.id] = c
	s.order = append(s.order, c.id)
}

// retire removes a community from the live set, marking it Retired. It
// does not touch the GlobalHeap or any other community's NeighborRow —
// callers are responsible for that as part of the merge procedure.
func (s *engineState) retire(c *Community) {
	c.state = Retired
	delete(s.byID, c.id)
}

// liveCommunities returns every live community in creation order.
func (s *engineState) liveCommunities() []*Community {
	out := make([]*Community, 0, len(s.byID))
	for _, id := range s.order {
		if c, ok := s.byID[id]; ok {
			out = append(out, c)
		}
	}
	return out
}

// twoM returns 2*m, precomputed once per call site per spec.md section 4.5.
func (s *engineState) twoM() float32 {
	return 2.0 * float32(s.edgeCount)
}
