package mesh

import (
	"fmt"
	"math"

	"github.com/notargets/dualmesh/mesh/types"
)

// OppositeVertex returns the third vertex of e's (triangle) face -- the one
// vertex that is neither e.From nor e.To. Panics if e is a boundary
// half-edge or its face is not a triangle.
func (m *Mesh) OppositeVertex(e int) int {
	he := m.HalfEdges[e]
	if he.Boundary {
		panic(fmt.Errorf("opposite_vertex: half-edge %d is a boundary edge", e))
	}
	f := &m.Faces[he.Face]
	if f.NSides != 3 {
		panic(fmt.Errorf("opposite_vertex: face %d is not a triangle", he.Face))
	}
	for _, v := range f.Vertices {
		if v != he.From && v != he.To {
			return v
		}
	}
	panic(fmt.Errorf("opposite_vertex: face %d has no vertex distinct from half-edge %d", he.Face, e))
}

// EdgeFlip replaces the diagonal shared by e's two triangles with the
// diagonal joining their opposite vertices (spec.md S4.4). No-op unless the
// mesh is a triangulation and neither e nor its pair is a boundary edge.
func (m *Mesh) EdgeFlip(e int) {
	he := &m.HalfEdges[e]
	if !m.IsTriangulation || he.Boundary {
		return
	}
	pairID := he.Pair
	pair := &m.HalfEdges[pairID]
	if pair.Boundary {
		return
	}

	fID, fpID := he.Face, pair.Face
	f, fp := &m.Faces[fID], &m.Faces[fpID]
	if f.NSides != 3 || fp.NSides != 3 {
		return
	}

	e1 := he.Next
	e2 := m.HalfEdges[e1].Next
	e3 := pair.Next
	e4 := m.HalfEdges[e3].Next
	if m.HalfEdges[e2].Next != e || m.HalfEdges[e4].Next != pairID {
		panic(fmt.Errorf("edge_flip: faces %d/%d are not a consistent triangle pair", fID, fpID))
	}

	v1, v2 := he.From, he.To
	v3 := m.OppositeVertex(e)
	v4 := m.OppositeVertex(pairID)

	delete(m.edgeMap, types.NewDirectedEdgeKey(v1, v2))
	delete(m.edgeMap, types.NewDirectedEdgeKey(v2, v1))

	he.From, he.To = v4, v3
	pair.From, pair.To = v3, v4

	he.Next = e2
	m.HalfEdges[e2].Next = e3
	m.HalfEdges[e3].Next = e

	pair.Next = e4
	m.HalfEdges[e4].Next = e1
	m.HalfEdges[e1].Next = pairID

	m.HalfEdges[e3].Face = fID
	m.HalfEdges[e1].Face = fpID

	f.Vertices = []int{v4, v3, v1}
	f.Edges = []int{e, e2, e3}
	f.NSides = 3
	fp.Vertices = []int{v3, v4, v2}
	fp.Edges = []int{pairID, e4, e1}
	fp.NSides = 3

	m.edgeMap[types.NewDirectedEdgeKey(v4, v3)] = e
	m.edgeMap[types.NewDirectedEdgeKey(v3, v4)] = pairID

	m.ComputeCentre(fID, false)
	m.ComputeAngles(fID)
	m.FaceArea(fID)
	m.CircumRadius(fID)
	m.FCJacobian(fID)
	m.ComputeCentre(fpID, false)
	m.ComputeAngles(fpID)
	m.FaceArea(fpID)
	m.CircumRadius(fpID)
	m.FCJacobian(fpID)

	// e2, e4 keep their old outgoing vertex (v3, v4) and remain valid star
	// seeds; e3, e1 likewise still start at v1, v2 respectively.
	m.Vertices[v1].Edges = []int{e3}
	m.Vertices[v2].Edges = []int{e1}
	m.Vertices[v3].Edges = []int{e2}
	m.Vertices[v4].Edges = []int{e4}
	for _, v := range [4]int{v1, v2, v3, v4} {
		m.OrderStar(v)
		m.DualPerimeter(v)
	}
}

// Equiangulate repeatedly flips interior edges whose two flanking angles
// sum to more than pi (the Delaunay test, spec.md S4.4), until no edge in
// a full pass needs flipping. Panics if it fails to converge within a
// generous bound, which signals a degenerate or cyclic flip sequence.
func (m *Mesh) Equiangulate() {
	if !m.IsTriangulation {
		return
	}
	maxPasses := 10*len(m.HalfEdges) + 10
	for pass := 0; pass < maxPasses; pass++ {
		flipped := false
		for i := range m.HalfEdges {
			he := &m.HalfEdges[i]
			if he.Boundary || he.ID > he.Pair {
				continue // visit each undirected edge once, boundary edges never flip
			}
			pair := m.HalfEdges[he.Pair]
			if pair.Boundary {
				continue
			}
			fA, fB := &m.Faces[he.Face], &m.Faces[pair.Face]
			if fA.NSides != 3 || fB.NSides != 3 {
				continue
			}
			vA := m.OppositeVertex(he.ID)
			vB := m.OppositeVertex(he.Pair)
			alpha := signedAngleAt(fA, vA)
			beta := signedAngleAt(fB, vB)
			if alpha+beta > math.Pi {
				m.EdgeFlip(he.ID)
				flipped = true
			}
		}
		if !flipped {
			return
		}
	}
	panic(fmt.Errorf("equiangulate: exceeded %d passes without converging", maxPasses))
}

func signedAngleAt(f *Face, vertexID int) float64 {
	for i, v := range f.Vertices {
		if v == vertexID {
			return f.signedAngles[i]
		}
	}
	panic(fmt.Errorf("signed_angle_at: face %d has no vertex %d", f.ID, vertexID))
}

// updateFaceProperties recomputes Boundary/Obtuse on every triangle and
// enqueues onto ObtuseBoundary the hole-owned half-edge of any boundary
// triangle whose apex angle (opposite the shared boundary edge) is obtuse
// and has not already been attempted (spec.md S4.4).
func (m *Mesh) updateFaceProperties() {
	for i := range m.Faces {
		f := &m.Faces[i]
		if f.IsHole {
			continue
		}
		f.Boundary = false
		for _, fe := range f.Edges {
			if m.HalfEdges[m.HalfEdges[fe].Pair].Boundary {
				f.Boundary = true
				break
			}
		}
		f.Obtuse = false
		if !f.Boundary || f.NSides != 3 {
			continue
		}
		for _, fe := range f.Edges {
			holeEdge := m.HalfEdges[fe].Pair
			if !m.HalfEdges[holeEdge].Boundary {
				continue
			}
			apex := m.OppositeVertex(fe)
			idx := indexOfInt(f.Vertices, apex)
			if f.Angles[idx] < 0 {
				f.Obtuse = true
				if !m.HalfEdges[holeEdge].AttemptedRemoval {
					m.ObtuseBoundary = append(m.ObtuseBoundary, holeEdge)
				}
			}
		}
	}
}

// RemoveObtuseBoundary clears every edge's attempted-removal flag, then
// repeatedly recomputes boundary/obtuse face properties and drains the
// resulting queue through RemoveEdgePair, until a pass finds nothing left
// to remove (spec.md S4.4).
func (m *Mesh) RemoveObtuseBoundary() {
	for i := range m.HalfEdges {
		m.HalfEdges[i].AttemptedRemoval = false
	}
	maxRounds := len(m.HalfEdges) + 1
	for round := 0; round < maxRounds; round++ {
		m.ObtuseBoundary = nil
		m.updateFaceProperties()
		if len(m.ObtuseBoundary) == 0 {
			return
		}
		for len(m.ObtuseBoundary) > 0 {
			front := m.ObtuseBoundary[0]
			m.ObtuseBoundary = m.ObtuseBoundary[1:]
			m.RemoveEdgePair(front)
		}
	}
}

// RemoveEdgePair absorbs the boundary-adjacent triangle across half-edge e
// into the hole face, given e is itself a hole-owned (boundary) half-edge.
// No-op if e is not boundary, its interior face is not a triangle, or the
// triangle is "regular" (all three vertices already boundary, so removing
// it would detach an interior region rather than retreat the boundary by
// one spike) -- spec.md S4.4.
func (m *Mesh) RemoveEdgePair(e int) {
	he := &m.HalfEdges[e]
	pairID := he.Pair
	pair := &m.HalfEdges[pairID]
	he.AttemptedRemoval = true
	pair.AttemptedRemoval = true
	if !he.Boundary {
		return
	}

	faceID := pair.Face
	holeID := he.Face
	face := &m.Faces[faceID]
	holeFace := &m.Faces[holeID]
	if face.NSides != 3 {
		return
	}

	allBoundary := true
	for _, v := range face.Vertices {
		if !m.Vertices[v].Boundary {
			allBoundary = false
			break
		}
	}
	if allBoundary {
		return
	}

	v1, v2 := he.From, he.To
	v3 := NoID
	for _, v := range face.Vertices {
		if v != v1 && v != v2 {
			v3 = v
			break
		}
	}

	removeIntFromSlice(&m.Vertices[v1].Edges, e)
	removeIntFromSlice(&m.Vertices[v2].Edges, pairID)
	removeIntFromSlice(&m.Vertices[v1].Faces, faceID)
	removeIntFromSlice(&m.Vertices[v2].Faces, faceID)
	removeIntFromSlice(&m.Vertices[v1].Dual, faceID)
	removeIntFromSlice(&m.Vertices[v2].Dual, faceID)
	removeIntFromSlice(&m.Vertices[v1].Neigh, v2)
	removeIntFromSlice(&m.Vertices[v2].Neigh, v1)

	delete(m.edgeMap, types.NewDirectedEdgeKey(v1, v2))
	delete(m.edgeMap, types.NewDirectedEdgeKey(v2, v1))

	m.Vertices[v3].Boundary = true
	holeFace.Vertices = append(holeFace.Vertices, v3)
	holeFace.NSides = len(holeFace.Vertices)
	replaceIntInSlice(m.Vertices[v3].Faces, faceID, holeID)
	removeIntFromSlice(&m.Vertices[v3].Dual, faceID)

	for _, fe := range face.Edges {
		if fe == pairID {
			continue
		}
		oe := &m.HalfEdges[fe]
		oe.Face = holeID
		oe.Boundary = true
		holeFace.Edges = append(holeFace.Edges, fe)
		m.BoundaryEdges = append(m.BoundaryEdges, fe)
	}

	removed := sortedPair(e, pairID)
	m.compactHalfEdges(removed)
	m.compactFaces([]int{faceID})

	for _, v := range [3]int{v1, v2, v3} {
		if len(m.Vertices[v].Edges) > 0 {
			m.OrderStar(v)
		}
	}
}

// compactHalfEdges removes the half-edges at the given sorted, distinct ids
// from m.HalfEdges, renumbering every surviving reference: ids above a
// removed id drop by the count of removed ids below them, per spec.md S9's
// fixed renumbering policy (the edge map is simply rebuilt, since every id
// in it may have shifted).
func (m *Mesh) compactHalfEdges(removed []int) {
	if len(removed) == 0 {
		return
	}
	removedSet := make(map[int]bool, len(removed))
	for _, r := range removed {
		removedSet[r] = true
	}
	remap := func(id int) int {
		if id == NoID || removedSet[id] {
			return NoID
		}
		shift := 0
		for _, r := range removed {
			if r < id {
				shift++
			}
		}
		return id - shift
	}

	newHalfEdges := make([]HalfEdge, 0, len(m.HalfEdges)-len(removed))
	for i := range m.HalfEdges {
		if removedSet[i] {
			continue
		}
		he := m.HalfEdges[i]
		he.ID = remap(i)
		he.Pair = remap(he.Pair)
		he.Next = remap(he.Next)
		newHalfEdges = append(newHalfEdges, he)
	}
	m.HalfEdges = newHalfEdges

	for i := range m.Faces {
		edges := m.Faces[i].Edges
		for j := range edges {
			edges[j] = remap(edges[j])
		}
	}
	for i := range m.Vertices {
		v := &m.Vertices[i]
		for j := range v.Edges {
			v.Edges[j] = remap(v.Edges[j])
		}
	}
	for i := range m.BoundaryEdges {
		m.BoundaryEdges[i] = remap(m.BoundaryEdges[i])
	}
	for i := range m.ObtuseBoundary {
		m.ObtuseBoundary[i] = remap(m.ObtuseBoundary[i])
	}

	newMap := make(map[types.DirectedEdgeKey]int, len(m.edgeMap))
	for i := range m.HalfEdges {
		he := &m.HalfEdges[i]
		newMap[types.NewDirectedEdgeKey(he.From, he.To)] = he.ID
	}
	m.edgeMap = newMap
}

// compactFaces removes the faces at the given ids from m.Faces, renumbering
// every surviving face reference the same way compactHalfEdges does for
// half-edges.
func (m *Mesh) compactFaces(removed []int) {
	if len(removed) == 0 {
		return
	}
	removedSet := make(map[int]bool, len(removed))
	for _, r := range removed {
		removedSet[r] = true
	}
	remap := func(id int) int {
		if id == NoID || removedSet[id] {
			return NoID
		}
		shift := 0
		for _, r := range removed {
			if r < id {
				shift++
			}
		}
		return id - shift
	}

	newFaces := make([]Face, 0, len(m.Faces)-len(removed))
	for i := range m.Faces {
		if removedSet[i] {
			continue
		}
		f := m.Faces[i]
		f.ID = remap(i)
		newFaces = append(newFaces, f)
	}
	m.Faces = newFaces

	for i := range m.HalfEdges {
		m.HalfEdges[i].Face = remap(m.HalfEdges[i].Face)
	}
	for i := range m.Vertices {
		v := &m.Vertices[i]
		for j := range v.Faces {
			v.Faces[j] = remap(v.Faces[j])
		}
		for j := range v.Dual {
			v.Dual[j] = remap(v.Dual[j])
		}
	}
}
