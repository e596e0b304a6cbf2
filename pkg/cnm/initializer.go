package cnm

// build constructs the initial engineState for graph: one community per
// vertex, neighbor rows wired from adjacency, initial DeltaQ values set,
// and the global heap seeded. This implements spec.md section 4.4.
func build(graph Graph) (*engineState, error) {
	const op = "Initializer.build"
	if graph == nil {
		return nil, invalidArg(op, "graph is nil")
	}

	state := newEngineState(graph.EdgeCount())

	vertices := graph.Vertices()
	byVertex := make(map[VertexID]*Community, len(vertices))

	// Step 1-2: one community per vertex, plus a vertex -> community index.
	for _, v := range vertices {
		degree := len(v.AdjacentVertexIDs())
		c := newCommunity(state.ids.Next(), []VertexID{v.ID()}, degree)
		state.add(c)
		byVertex[v.ID()] = c
	}

	// Step 3: wire neighbor rows from adjacency. Self-loops are skipped.
	// Parallel edges collapse: a second insert attempt for an id already
	// present in the row is dropped rather than merged, per spec.md
	// section 9 open question 3 (set-of-neighbors semantics).
	for _, v := range vertices {
		cv := byVertex[v.ID()]
		for _, uID := range v.AdjacentVertexIDs() {
			if uID == v.ID() {
				continue
			}
			cu, ok := byVertex[uID]
			if !ok {
				return nil, invalidArg(op, "adjacency references unknown vertex id")
			}
			if cv.neighbors.Has(cu.id) {
				continue
			}
			cv.neighbors.Insert(cu.id, &PairEntry{Neighbor: cu})
		}
	}

	// Step 4: initial DeltaQ for every wired pair, eq. ΔQ_ij = 1/2m - kikj/(2m)^2.
	twoM := state.twoM()
	for _, c := range state.liveCommunities() {
		c.neighbors.Each(func(_ int, entry *PairEntry) {
			entry.DeltaQ = initialDeltaQ(c.degree, entry.Neighbor.degree, twoM)
		})
		// DeltaQ was written in place, bypassing the row's incremental
		// tracking, so recompute best now that every value is final.
		c.neighbors.rescanBest()
	}

	// Step 5: seed the global heap with every community that has a best
	// neighbor (recomputed at the end of step 4).
	for _, c := range state.liveCommunities() {
		if c.Best() != nil {
			if err := state.globalHeap.Push(c); err != nil {
				return nil, err
			}
		}
	}

	return state, nil
}

// initialDeltaQ computes the modularity gain of merging two singleton
// communities sharing a connecting edge: 1/(2m) - (ki*kj)/(2m)^2.
func initialDeltaQ(ki, kj int, twoM float32) float32 {
	if twoM == 0 {
		return 0
	}
	return 1.0/twoM - (float32(ki)*float32(kj))/(twoM*twoM)
}
