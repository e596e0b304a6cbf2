package cnm_test

import "github.com/nucleus/cnm-core/pkg/cnm"

// testVertex and testGraph are a minimal stand-in for the external graph
// collaborator spec.md describes (section 6): just enough to satisfy
// cnm.Graph and cnm.Vertex for exercising the engine in isolation from any
// concrete graph implementation.
type testVertex struct {
	id        cnm.VertexID
	adjacent  []cnm.VertexID
}

func (v *testVertex) ID() cnm.VertexID               { return v.id }
func (v *testVertex) AdjacentVertexIDs() []cnm.VertexID { return v.adjacent }

type testGraph struct {
	vertices []*testVertex
	edges    int
}

func (g *testGraph) Vertices() []cnm.Vertex {
	out := make([]cnm.Vertex, len(g.vertices))
	for i, v := range g.vertices {
		out[i] = v
	}
	return out
}

func (g *testGraph) VertexCount() int { return len(g.vertices) }
func (g *testGraph) EdgeCount() int   { return g.edges }

// newUndirectedGraph builds a testGraph from a vertex count and an edge
// list, wiring both directions of each edge into the relevant vertices'
// adjacency (including self-loops, which appear twice per occurrence).
func newUndirectedGraph(n int, edges [][2]int) *testGraph {
	verts := make([]*testVertex, n)
	for i := range verts {
		verts[i] = &testVertex{id: cnm.VertexID(i)}
	}
	for _, e := range edges {
		a, b := e[0], e[1]
		verts[a].adjacent = append(verts[a].adjacent, cnm.VertexID(b))
		if a != b {
			verts[b].adjacent = append(verts[b].adjacent, cnm.VertexID(a))
		} else {
			// self-loop: source convention counts it twice toward degree.
			verts[a].adjacent = append(verts[a].adjacent, cnm.VertexID(b))
		}
	}
	return &testGraph{vertices: verts, edges: len(edges)}
}
