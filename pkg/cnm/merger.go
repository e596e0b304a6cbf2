package cnm

// merge implements spec.md section 4.5: replace communities a and b with a
// freshly minted community n, splicing their neighbor rows together with
// equations 10a/10b/10c and propagating every affected third community's
// row, best, and global-heap entry incrementally.
func merge(state *engineState, a, b *Community) (*Community, error) {
	const op = "Merger.merge"
	if a == nil || b == nil {
		return nil, invalidArg(op, "both communities must be non-nil")
	}
	if a.state != Live || b.state != Live {
		return nil, internalErr(op, "lifecycle", errMergeRetiredCommunity)
	}
	if a.id == b.id {
		return nil, internalErr(op, "P6", errSelfMerge)
	}

	// (a) Create N.
	n := newCommunity(
		state.ids.Next(),
		append(append([]VertexID{}, a.vertices...), b.vertices...),
		a.degree+b.degree,
	)

	// (b) Row merge with incremental propagation to every third community.
	if err := rowMerge(state, a, b, n); err != nil {
		return nil, err
	}

	// (c) N.best is already correct: NeighborRow tracked the maximum while
	// rowMerge inserted each entry, so no rescan is needed here.

	// (d) Retire A and B, admit N.
	state.globalHeap.Remove(a)
	state.globalHeap.Remove(b)
	state.retire(a)
	state.retire(b)
	state.add(n)
	if n.Best() != nil {
		if err := state.globalHeap.Push(n); err != nil {
			return nil, err
		}
	}

	return n, nil
}

// rowMerge walks a.neighbors and b.neighbors with a parallel cursor in
// ascending key order, producing n's row and editing every third
// community's row, best, and global-heap entry along the way.
func rowMerge(state *engineState, a, b, n *Community) error {
	twoM := state.twoM()
	rowA, rowB := a.neighbors, b.neighbors
	i, j := 0, 0

	for i < rowA.Len() || j < rowB.Len() {
		if i < rowA.Len() {
			if aID, _ := rowA.At(i); aID == b.id {
				i++
				continue
			}
		}
		if j < rowB.Len() {
			if bID, _ := rowB.At(j); bID == a.id {
				j++
				continue
			}
		}

		var k *Community
		var q float32

		switch {
		case i < rowA.Len() && j < rowB.Len():
			aID, aEntry := rowA.At(i)
			bID, bEntry := rowB.At(j)
			switch {
			case aID == bID: // eq. 10a: both sides connected to k
				k = aEntry.Neighbor
				q = aEntry.DeltaQ + bEntry.DeltaQ
				i++
				j++
			case aID < bID: // eq. 10b: only a connected to k
				k = aEntry.Neighbor
				q = aEntry.DeltaQ - 2*(float32(b.degree)/twoM)*(float32(k.degree)/twoM)
				i++
			default: // eq. 10c: only b connected to k
				k = bEntry.Neighbor
				q = bEntry.DeltaQ - 2*(float32(a.degree)/twoM)*(float32(k.degree)/twoM)
				j++
			}
		case i < rowA.Len():
			_, aEntry := rowA.At(i)
			k = aEntry.Neighbor
			q = aEntry.DeltaQ - 2*(float32(b.degree)/twoM)*(float32(k.degree)/twoM)
			i++
		default:
			_, bEntry := rowB.At(j)
			k = bEntry.Neighbor
			q = bEntry.DeltaQ - 2*(float32(a.degree)/twoM)*(float32(k.degree)/twoM)
			j++
		}

		n.neighbors.Insert(k.id, &PairEntry{Neighbor: k, DeltaQ: q})

		k.neighbors.Remove(a.id)
		k.neighbors.Remove(b.id)
		k.neighbors.Insert(n.id, &PairEntry{Neighbor: n, DeltaQ: q})
		if err := state.globalHeap.Sync(k); err != nil {
			return err
		}
	}
	return nil
}
