package cnm

// State tracks a Community's position in the one-way lifecycle described
// in spec.md section 4.7: Live until the Merger consumes it as one of a
// merge's two inputs, then Retired forever.
type State int

const (
	// Live communities may still be merged.
	Live State = iota
	// Retired communities have been consumed by a merge and must not be
	// referenced by any NeighborRow or GlobalHeap entry.
	Retired
)

// Community is a node in the agglomeration: a set of original vertices
// treated as one, together with the bookkeeping the engine needs to find
// and apply its next best merge.
type Community struct {
	id        int
	vertices  []VertexID
	degree    int
	neighbors *NeighborRow
	state     State
}

// newCommunity allocates a fresh, live Community. Only the Initializer and
// Merger call this — it is the sole place ids are bound to a Community.
func newCommunity(id int, vertices []VertexID, degree int) *Community {
	return &Community{
		id:        id,
		vertices:  vertices,
		degree:    degree,
		neighbors: NewNeighborRow(),
		state:     Live,
	}
}

// ID returns the community's process-wide unique id.
func (c *Community) ID() int {
	return c.id
}

// Vertices returns the external vertex handles currently in this
// community. This is the only member of Community that is part of the
// public contract exposed to callers (spec.md section 6).
func (c *Community) Vertices() []VertexID {
	return c.vertices
}

// Degree returns the sum of adjacent-vertex-counts over this community's
// members, self-loops included per the source graph's convention.
func (c *Community) Degree() int {
	return c.degree
}

// Neighbors returns the community's ordered neighbor row.
func (c *Community) Neighbors() *NeighborRow {
	return c.neighbors
}

// Best returns the neighbor entry with the current maximum DeltaQ, or nil
// if the community has no neighbors. It reads straight through to the
// NeighborRow, which maintains the maximum incrementally on every Insert,
// Update, and Remove (spec.md section 4.3) — so there is no separate cache
// to fall out of sync.
func (c *Community) Best() *PairEntry {
	return c.neighbors.Best()
}

// State reports whether this Community is still live.
func (c *Community) State() State {
	return c.state
}
