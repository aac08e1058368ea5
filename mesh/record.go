package mesh

import (
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/dualmesh/mesh/linalg"
	"github.com/notargets/dualmesh/mesh/types"
)

// NoID marks an unset id field (no pair, no next, no face, ...).
const NoID = -1

// Vertex is a passive data carrier for one node of the cell complex: its
// position, outward normal, and the ordered star of incident half-edges,
// neighbors, faces, and dual-cell bookkeeping built by OrderStar.
type Vertex struct {
	ID int

	R linalg.Vec3 // position, written by the driver every step
	N linalg.Vec3 // outward unit normal, written by the driver every step

	Boundary bool
	Attached bool
	Ordered  bool

	Area  float64 // cached dual_area(v), signed
	Perim float64 // cached dual_perimeter(v)

	Edges []int // outgoing half-edge ids, star order after OrderStar
	Neigh []int // neighbor vertex ids, aligned with Edges
	Faces []int // incident face ids (includes the hole face for boundary vertices), aligned with Edges
	Dual  []int // incident non-hole face ids only, in star order

	// AngleDef[0] is d(angle_factor)/dr_self; AngleDef[1:] aligns with Edges
	// and holds d(angle_factor)/dr_{to(edges[e])}.
	AngleDef []linalg.Vec3
}

func newVertex(id int) Vertex {
	return Vertex{ID: id}
}

// HalfEdge is the directed side of one edge of the complex.
type HalfEdge struct {
	ID int

	From, To int
	Pair     int // NoID until postprocess pairs it
	Next     int // NoID until a face is discovered
	Face     int // NoID until a face is discovered
	Dual     int // opaque handle for consumers, NoID if unset

	Boundary         bool
	Visited          bool
	AttemptedRemoval bool
}

func newHalfEdge(id, from, to int) HalfEdge {
	return HalfEdge{
		ID: id, From: from, To: to,
		Pair: NoID, Next: NoID, Face: NoID, Dual: NoID,
	}
}

// Face is a passive data carrier for one polygon of the complex, or for the
// hole sentinel that absorbs a boundary component's outer half-edges.
type Face struct {
	ID int

	Vertices []int // counterclockwise as seen along the owning vertices' N
	Edges    []int // bounding half-edge ids, aligned with Vertices
	NSides   int

	Rc     linalg.Vec3 // face center
	Angles []float64   // cos(interior angle), aligned with Vertices

	// signedAngles mirrors Angles but stores the signed interior angle
	// (positive for a CCW-oriented triangle); only this cache drives the
	// equiangulate flip test, per spec.md's resolution of the cosine vs.
	// signed-angle ambiguity.
	signedAngles []float64

	Area   float64
	Radius float64

	IsHole   bool
	Boundary bool
	Obtuse   bool

	// Drcdr[p] = d(rc)/d(r_{Vertices[p]}), triangles only (len 3), nil otherwise.
	Drcdr []*mat.Dense
}

func newFace(id int) Face {
	return Face{ID: id}
}

// Mesh aggregates the three entity tables plus the lookup structures that
// make half-edge topology and boundary bookkeeping O(1).
type Mesh struct {
	Vertices  []Vertex
	HalfEdges []HalfEdge
	Faces     []Face

	edgeMap map[types.DirectedEdgeKey]int

	BoundaryEdges []int // boundary half-edge ids
	BoundaryPairs []types.MeshEdgePair

	ObtuseBoundary []int // half-edge ids queued for remove_edge_pair

	IsTriangulation bool
}

// NewMesh returns an empty mesh, ready for AddVertex/AddEdge.
func NewMesh() *Mesh {
	m := &Mesh{}
	m.Reset()
	return m
}

// Reset tears the mesh down to empty, as if newly constructed.
func (m *Mesh) Reset() {
	m.Vertices = nil
	m.HalfEdges = nil
	m.Faces = nil
	m.edgeMap = make(map[types.DirectedEdgeKey]int)
	m.BoundaryEdges = nil
	m.BoundaryPairs = nil
	m.ObtuseBoundary = nil
	m.IsTriangulation = true
}
