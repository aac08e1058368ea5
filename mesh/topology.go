package mesh

import (
	"fmt"
	"math"

	"github.com/notargets/dualmesh/mesh/linalg"
	"github.com/notargets/dualmesh/mesh/types"
)

// GenerateFaces discovers every face (including hole faces) by walking
// unvisited half-edges, turning at each vertex onto the outgoing half-edge
// that makes the sharpest left turn, i.e. the smallest interior angle
// (spec.md S4.1). A face with more than
// three sides is recorded as a hole; any other face with more than three
// sides clears the triangulation flag.
func (m *Mesh) GenerateFaces() {
	for i := range m.HalfEdges {
		m.HalfEdges[i].Visited = false
	}
	m.Faces = nil

	for i := range m.HalfEdges {
		seedEdge := &m.HalfEdges[i]
		if seedEdge.Visited {
			continue
		}
		m.traceFace(seedEdge.ID)
	}
}

func (m *Mesh) traceFace(seedID int) {
	seed := m.HalfEdges[seedID].From
	vn := m.HalfEdges[seedID].To
	vp := seed

	m.HalfEdges[seedID].Visited = true
	vertices := []int{seed, vn}
	edges := []int{seedID}
	prevEdgeID := seedID

	for vn != seed {
		nextEdgeID := m.pickNextFaceEdge(vp, vn)
		if nextEdgeID == NoID {
			panic(fmt.Errorf("generate_faces: no unvisited outgoing half-edge at vertex %d to close face", vn))
		}
		m.HalfEdges[prevEdgeID].Next = nextEdgeID
		m.HalfEdges[nextEdgeID].Visited = true

		vp = vn
		vn = m.HalfEdges[nextEdgeID].To
		vertices = append(vertices, vn)
		edges = append(edges, nextEdgeID)
		prevEdgeID = nextEdgeID
	}
	m.HalfEdges[prevEdgeID].Next = seedID
	// vn == seed closes the cycle; drop the duplicated closing vertex.
	vertices = vertices[:len(vertices)-1]

	id := len(m.Faces)
	f := newFace(id)
	f.Vertices = vertices
	f.Edges = edges
	f.NSides = len(vertices)
	if f.NSides > 3 {
		f.IsHole = true
	} else {
		f.IsHole = false
	}
	if f.NSides > 3 && !f.IsHole {
		m.IsTriangulation = false
	}
	m.Faces = append(m.Faces, f)
	for _, e := range edges {
		m.HalfEdges[e].Face = id
	}
}

// pickNextFaceEdge selects, among vn's unvisited outgoing half-edges
// (excluding the one pointing straight back to vp), the one whose turn
// from the incoming direction (r_vn - r_vp) is the smallest measured as
// pi - signedAngle(incoming, outgoing, N_vn).
func (m *Mesh) pickNextFaceEdge(vp, vn int) int {
	inDir := linalg.Sub(m.Vertices[vn].R, m.Vertices[vp].R)
	normal := m.Vertices[vn].N

	best := NoID
	bestVal := math.Inf(1)
	for _, e := range m.Vertices[vn].Edges {
		he := &m.HalfEdges[e]
		if he.Visited {
			continue
		}
		if he.To == vp {
			continue
		}
		outDir := linalg.Sub(m.Vertices[he.To].R, m.Vertices[vn].R)
		val := math.Pi - linalg.SignedAngle(inDir, outDir, normal)
		if val < bestVal {
			bestVal = val
			best = e
		}
	}
	return best
}

// Postprocess re-derives boundary bookkeeping and pairs every half-edge to
// its opposite. When order is true it also calls OrderStar on every vertex.
func (m *Mesh) Postprocess(order bool) {
	m.BoundaryEdges = nil
	m.BoundaryPairs = nil

	for fi := range m.Faces {
		f := &m.Faces[fi]
		if !f.IsHole {
			continue
		}
		for _, v := range f.Vertices {
			m.Vertices[v].Boundary = true
		}
		for _, e := range f.Edges {
			he := &m.HalfEdges[e]
			he.Boundary = true
			m.BoundaryEdges = append(m.BoundaryEdges, e)
			m.BoundaryPairs = append(m.BoundaryPairs,
				types.MeshEdgePair{From: he.From, To: he.To},
				types.MeshEdgePair{From: he.To, To: he.From},
			)
		}
	}

	for i := range m.HalfEdges {
		he := &m.HalfEdges[i]
		if he.Pair != NoID {
			continue
		}
		pairID := m.edgeLookup(he.To, he.From)
		if pairID == NoID {
			panic(fmt.Errorf("postprocess: half-edge %d (%d->%d) has no opposite", he.ID, he.From, he.To))
		}
		he.Pair = pairID
		m.HalfEdges[pairID].Pair = he.ID
	}

	if order {
		for i := range m.Vertices {
			if m.Vertices[i].Attached {
				m.OrderStar(i)
			}
		}
	}
}

// OrderStar walks v's outgoing half-edges so that consecutive entries
// share a face, building the aligned Edges/Neigh/Faces/Dual lists,
// correcting orientation once by checking the sign of DualArea, and (for
// boundary vertices) rotating the hole face to the end of Faces.
func (m *Mesh) OrderStar(v int) {
	vert := &m.Vertices[v]
	if len(vert.Edges) == 0 {
		return
	}

	orderedEdges := make([]int, 0, len(vert.Edges))
	orderedNeigh := make([]int, 0, len(vert.Edges))
	orderedFaces := make([]int, 0, len(vert.Edges))

	start := vert.Edges[0]
	e := start
	for {
		he := &m.HalfEdges[e]
		orderedEdges = append(orderedEdges, e)
		orderedNeigh = append(orderedNeigh, he.To)
		orderedFaces = append(orderedFaces, he.Face)
		pair := m.HalfEdges[he.Pair]
		next := pair.Next
		if next == NoID || m.HalfEdges[next].From != v {
			break // open fan: no further outgoing half-edge to walk to
		}
		if next == start {
			break // closed fan: back at the seed, star is complete
		}
		e = next
		if len(orderedEdges) > len(m.HalfEdges) {
			panic(fmt.Errorf("order_star: vertex %d star walk failed to close", v))
		}
	}

	vert.Edges = orderedEdges
	vert.Neigh = orderedNeigh
	vert.Faces = orderedFaces
	vert.Ordered = true

	if vert.Boundary {
		m.rotateHoleLast(v)
	}
	m.rebuildDual(v)

	// The sign check reads face centers, which are not yet computed when
	// OrderStar runs from Postprocess.
	for _, f := range vert.Dual {
		m.ComputeCentre(f, false)
	}

	if m.DualArea(v) < 0 {
		reverseInts(vert.Edges)
		reverseInts(vert.Neigh)
		reverseInts(vert.Faces)
		if vert.Boundary {
			m.rotateHoleLast(v)
		}
		m.rebuildDual(v)
		m.DualArea(v)
	}
}

// rebuildDual recomputes vert.Dual (non-hole face ids, in current Faces
// order) from the already-ordered Faces list.
func (m *Mesh) rebuildDual(v int) {
	vert := &m.Vertices[v]
	dual := make([]int, 0, len(vert.Faces))
	for _, f := range vert.Faces {
		if f != NoID && !m.Faces[f].IsHole {
			dual = append(dual, f)
		}
	}
	vert.Dual = dual
}

// rotateHoleLast rotates a boundary vertex's Edges/Neigh/Faces lists so the
// hole face sits last in Faces (invariant 6), which places the two real
// faces flanking the boundary gap at Faces[0] and Faces[n-2] -- exactly the
// indices angle_factor and angle_factor_deriv read.
func (m *Mesh) rotateHoleLast(v int) {
	vert := &m.Vertices[v]
	holeIdx := -1
	for i, f := range vert.Faces {
		if f != NoID && m.Faces[f].IsHole {
			holeIdx = i
			break
		}
	}
	if holeIdx == -1 {
		return
	}
	n := len(vert.Faces)
	shift := (holeIdx + 1) % n
	vert.Edges = rotateInts(vert.Edges, shift)
	vert.Neigh = rotateInts(vert.Neigh, shift)
	vert.Faces = rotateInts(vert.Faces, shift)
}

func rotateInts(s []int, shift int) []int {
	n := len(s)
	if n == 0 {
		return s
	}
	shift = ((shift % n) + n) % n
	out := make([]int, n)
	for i := 0; i < n; i++ {
		out[i] = s[(i+shift)%n]
	}
	return out
}

func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
