package mesh

import (
	"math"

	"github.com/notargets/dualmesh/mesh/linalg"
)

// buildHexagon returns a regular hexagon: a center vertex (id 0) and six
// outer vertices (ids 1-6) on the unit circle, triangulated as a fan of six
// equilateral triangles, with the rim closed off by a single hole face
// (spec.md S8 seed scenario 1).
func buildHexagon() *Mesh {
	m := NewMesh()
	n := linalg.NewVec3(0, 0, 1)
	m.AddVertex(linalg.NewVec3(0, 0, 0), n, 0)
	for k := 0; k < 6; k++ {
		theta := float64(k) * math.Pi / 3
		m.AddVertex(linalg.NewVec3(math.Cos(theta), math.Sin(theta), 0), n, 1+k)
	}

	for k := 0; k < 6; k++ {
		o := 1 + k
		onext := 1 + (k+1)%6
		m.AddEdge(0, o)
		m.AddEdge(o, onext)
		m.AddEdge(onext, 0)
		m.AddEdge(onext, o)
	}

	m.GenerateFaces()
	m.Postprocess(true)
	m.GenerateDualMesh()
	return m
}

// buildObtuseSpike returns a four-vertex, three-triangle patch where P, Q
// are boundary and R is interior (surrounded by T1=(P,Q,R), T2=(P,R,S),
// T3=(R,Q,S)), with an obtuse apex angle at R opposite the boundary edge
// P-Q (spec.md S8 seed scenario 3, extended with S so R starts interior,
// satisfying remove_edge_pair's "at least one interior vertex" precondition).
func buildObtuseSpike() *Mesh {
	m := NewMesh()
	n := linalg.NewVec3(0, 0, 1)
	m.AddVertex(linalg.NewVec3(0, 0, 0), n, 0)   // P
	m.AddVertex(linalg.NewVec3(2, 0, 0), n, 1)   // Q
	m.AddVertex(linalg.NewVec3(1, 0.1, 0), n, 2) // R
	m.AddVertex(linalg.NewVec3(1, 1, 0), n, 3)   // S

	P, Q, R, S := 0, 1, 2, 3
	// T1 = (P,Q,R)
	t1 := []int{m.AddEdge(P, Q), m.AddEdge(Q, R), m.AddEdge(R, P)}
	// T2 = (P,R,S)
	t2 := []int{m.AddEdge(P, R), m.AddEdge(R, S), m.AddEdge(S, P)}
	// T3 = (R,Q,S)
	t3 := []int{m.AddEdge(R, Q), m.AddEdge(Q, S), m.AddEdge(S, R)}
	// hole = (Q,P,S): three-sided, so it is declared through AddFace;
	// GenerateFaces marks only faces with more than three sides as holes.
	hole := []int{m.AddEdge(Q, P), m.AddEdge(P, S), m.AddEdge(S, Q)}

	m.AddFace([]int{P, Q, R}, t1, false)
	m.AddFace([]int{P, R, S}, t2, false)
	m.AddFace([]int{R, Q, S}, t3, false)
	m.AddFace([]int{Q, P, S}, hole, true)
	m.Postprocess(true)
	m.GenerateDualMesh()
	return m
}

// buildFlippableDiamond returns a two-triangle patch (A,B,C)/(A,D,B) sharing
// edge A-B, with C placed close to the A-B line so the apex angles at C and
// D sum past pi: the flip criterion of spec.md S4.4 holds and equiangulate
// must replace diagonal A-B with C-D.
func buildFlippableDiamond() *Mesh {
	m := NewMesh()
	n := linalg.NewVec3(0, 0, 1)
	m.AddVertex(linalg.NewVec3(0, 0, 0), n, 0)   // A
	m.AddVertex(linalg.NewVec3(1, 0, 0), n, 1)   // B
	m.AddVertex(linalg.NewVec3(0.5, 0.1, 0), n, 2)  // C
	m.AddVertex(linalg.NewVec3(0.5, -0.9, 0), n, 3) // D

	A, B, C, D := 0, 1, 2, 3
	// T1 = (A,B,C)
	m.AddEdge(A, B)
	m.AddEdge(B, C)
	m.AddEdge(C, A)
	// T2 = (A,D,B)
	m.AddEdge(A, D)
	m.AddEdge(D, B)
	m.AddEdge(B, A)
	// hole = (A,C,B,D): the quadrilateral outer boundary, pairing T1's
	// B->C/C->A and T2's D->B/A->D.
	m.AddEdge(C, B)
	m.AddEdge(D, A)
	m.AddEdge(A, C)
	m.AddEdge(B, D)

	m.GenerateFaces()
	m.Postprocess(true)
	m.GenerateDualMesh()
	return m
}
