// Package cnm implements agglomerative modularity-maximization community
// detection for undirected graphs: the Clauset-Newman-Moore algorithm with
// the Wakita-Tsurumi two-level heap arrangement (a global max-heap over
// per-community max-heaps of DeltaQ values, with incremental updates on
// every merge).
//
// The package owns exactly the core: the heap and row data structures, the
// initial-partition builder, the merge procedure (equations 10a/10b/10c of
// Clauset-Newman-Moore), and the pop-max driver loop. It does not own a
// graph representation, progress UI, input parsing, or serialization —
// those are external collaborators satisfying the Graph and Vertex
// interfaces in graph.go.
//
// Edges are unweighted (weight 1) and undirected; parallel edges and
// self-loops are tolerated on input but do not introduce weighting.
// DeltaQ arithmetic is single precision (float32), matching the reference
// implementation this package's merge sequence is bit-compatible with.
package cnm
