package cnm

// PairEntry is the back-edge information stored in a NeighborRow: a
// reference to the community at the other end of the pair and the current
// modularity gain of merging with it.
//
// A pair between A and B is represented twice — once in A.neighbors keyed
// by B.id, once in B.neighbors keyed by A.id — and the two DeltaQ values
// must always be kept equal; the Merger and NeighborRow together are
// responsible for that symmetry.
type PairEntry struct {
	Neighbor *Community
	DeltaQ   float32
}
