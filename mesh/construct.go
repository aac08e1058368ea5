package mesh

import (
	"fmt"

	"github.com/notargets/dualmesh/mesh/linalg"
	"github.com/notargets/dualmesh/mesh/types"
)

// AddVertex installs or overwrites vertex id with position r and normal n.
// The caller contract (spec.md S4.1) is that ids are in range; a negative id
// is a structural bug and panics, while any non-negative id grows the vertex
// table to fit it.
func (m *Mesh) AddVertex(r, n linalg.Vec3, id int) {
	if id < 0 {
		panic(fmt.Errorf("add_vertex: id %d out of range", id))
	}
	for len(m.Vertices) <= id {
		m.Vertices = append(m.Vertices, newVertex(len(m.Vertices)))
	}
	v := &m.Vertices[id]
	v.R, v.N = r, n
}

// edgeLookup returns the half-edge id for directed pair (from,to), or NoID.
func (m *Mesh) edgeLookup(from, to int) int {
	if id, ok := m.edgeMap[types.NewDirectedEdgeKey(from, to)]; ok {
		return id
	}
	return NoID
}

// AddEdge inserts a directed half-edge from u to v if (u,v) is not already
// present. Idempotent per ordered pair: the opposite direction (v,u) must
// be added with a separate call. Returns the half-edge id (new or existing).
func (m *Mesh) AddEdge(u, v int) int {
	if existing := m.edgeLookup(u, v); existing != NoID {
		return existing
	}
	if u < 0 || u >= len(m.Vertices) || v < 0 || v >= len(m.Vertices) {
		panic(fmt.Errorf("add_edge: vertex id out of range for pair (%d,%d)", u, v))
	}
	id := len(m.HalfEdges)
	m.HalfEdges = append(m.HalfEdges, newHalfEdge(id, u, v))

	vu := &m.Vertices[u]
	vu.Edges = append(vu.Edges, id)
	vu.Neigh = append(vu.Neigh, v)
	vu.Attached = true
	m.Vertices[v].Attached = true

	m.edgeMap[types.NewDirectedEdgeKey(u, v)] = id
	return id
}

// AddFace installs an externally supplied face record, e.g. from a loader
// that already knows the topology and skips GenerateFaces. vertices must
// already be in counterclockwise order as seen along the owning normals;
// edges is the aligned list of half-edge ids already present via AddEdge.
func (m *Mesh) AddFace(vertices, edges []int, isHole bool) int {
	if len(vertices) != len(edges) {
		panic(fmt.Errorf("add_face: vertices/edges length mismatch (%d vs %d)", len(vertices), len(edges)))
	}
	id := len(m.Faces)
	f := newFace(id)
	f.Vertices = append([]int(nil), vertices...)
	f.Edges = append([]int(nil), edges...)
	f.NSides = len(vertices)
	f.IsHole = isHole
	if f.NSides > 3 && !isHole {
		m.IsTriangulation = false
	}
	m.Faces = append(m.Faces, f)
	n := len(edges)
	for i, e := range edges {
		he := &m.HalfEdges[e]
		he.Face = id
		he.Next = edges[(i+1)%n]
	}
	return id
}
