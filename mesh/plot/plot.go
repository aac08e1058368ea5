// Package plot flattens a mesh's dual cells into a point+polygon buffer an
// external renderer can draw, and offers an optional avs chart2d hook for
// doing that rendering directly (spec.md S4.5).
package plot

import (
	"github.com/notargets/dualmesh/mesh"
	"github.com/notargets/dualmesh/mesh/linalg"
)

// Polygon is one flattened dual cell: indices into Buffer.Points, in
// rotational order, plus the cached area/perimeter of the vertex it
// came from.
type Polygon struct {
	VertexID     int
	PointIndices []int
	Area         float64
	Perimeter    float64
}

// Buffer is the point+polygon output of Area. Treat it as read-only: it is
// rebuilt fresh on every call, never mutated in place by the mesh.
type Buffer struct {
	Points   []linalg.Vec3
	Polygons []Polygon
}

// Area flattens every attached vertex's dual cell into a Buffer
// (mesh.plot_area in spec.md S4.5). Point indices are assigned first to
// boundary vertex positions (when includeBoundary is true) and then to
// each unique non-hole face center as it is first referenced. Interior
// vertices always contribute a polygon of face-center indices; boundary
// vertices contribute one only when includeBoundary is true, and it leads
// with the vertex's own point index ahead of its face centers.
func Area(m *mesh.Mesh, includeBoundary bool) *Buffer {
	buf := &Buffer{}
	vertexPoint := make(map[int]int)
	facePoint := make(map[int]int)

	if includeBoundary {
		for v := range m.Vertices {
			vert := &m.Vertices[v]
			if !vert.Attached || !vert.Boundary {
				continue
			}
			vertexPoint[v] = len(buf.Points)
			buf.Points = append(buf.Points, vert.R)
		}
	}

	facePointIndex := func(f int) int {
		if idx, ok := facePoint[f]; ok {
			return idx
		}
		idx := len(buf.Points)
		buf.Points = append(buf.Points, m.Faces[f].Rc)
		facePoint[f] = idx
		return idx
	}

	for v := range m.Vertices {
		vert := &m.Vertices[v]
		if !vert.Attached {
			continue
		}
		if vert.Boundary && !includeBoundary {
			continue
		}

		var indices []int
		if vert.Boundary {
			indices = make([]int, 0, len(vert.Dual)+1)
			indices = append(indices, vertexPoint[v])
		} else {
			indices = make([]int, 0, len(vert.Dual))
		}
		for _, f := range vert.Dual {
			indices = append(indices, facePointIndex(f))
		}

		buf.Polygons = append(buf.Polygons, Polygon{
			VertexID:     v,
			PointIndices: indices,
			Area:         vert.Area,
			Perimeter:    vert.Perim,
		})
	}
	return buf
}
