package httpapi

import (
	"fmt"

	"github.com/nucleus/cnm-core/pkg/cnm"
	"github.com/nucleus/cnm-core/pkg/graphmodel"
)

// buildGraph turns a vertex count and a 0-indexed edge list into a
// graphmodel.Graph, rejecting edges that reference an id outside
// [0, vertexCount).
func buildGraph(vertexCount int, edges [][2]int) (*graphmodel.Graph, error) {
	if vertexCount < 0 {
		return nil, fmt.Errorf("vertexCount must not be negative")
	}

	g := graphmodel.New()
	ids := make([]cnm.VertexID, vertexCount)
	for i := 0; i < vertexCount; i++ {
		ids[i] = g.AddVertex(nil)
	}

	for _, e := range edges {
		if e[0] < 0 || e[0] >= vertexCount || e[1] < 0 || e[1] >= vertexCount {
			return nil, fmt.Errorf("edge [%d, %d] references a vertex outside [0, %d)", e[0], e[1], vertexCount)
		}
		if err := g.AddEdge(ids[e[0]], ids[e[1]]); err != nil {
			return nil, err
		}
	}
	return g, nil
}
