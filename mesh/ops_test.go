package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Seed scenario 2 (spec.md S8, adapted coordinates -- see buildFlippableDiamond):
// two triangles sharing diagonal A-B, with C placed close enough to the
// A-B line that the apex angles at C and D sum past pi, so equiangulate
// must replace the diagonal with C-D.
func TestEquiangulateFlipsIllegalDiagonal(t *testing.T) {
	m := buildFlippableDiamond()
	A, B, C, D := 0, 1, 2, 3

	abBefore := m.edgeLookup(A, B)
	assert.NotEqual(t, NoID, abBefore, "A-B must exist before equiangulation")
	assert.Equal(t, NoID, m.edgeLookup(C, D), "C-D must not exist yet")

	m.Equiangulate()

	assert.Equal(t, NoID, m.edgeLookup(A, B), "A-B should have been flipped away")
	assert.Equal(t, NoID, m.edgeLookup(B, A), "B-A should have been flipped away")
	assert.NotEqual(t, NoID, m.edgeLookup(C, D), "C-D should now exist")
	assert.NotEqual(t, NoID, m.edgeLookup(D, C), "D-C should now exist")

	assert.NoError(t, m.Validate())
}

// A second equiangulate() pass after convergence must be a fixed point: no
// further flips occur.
func TestEquiangulateIsIdempotentAtFixedPoint(t *testing.T) {
	m := buildFlippableDiamond()
	m.Equiangulate()
	cd := m.edgeLookup(2, 3)
	assert.NotEqual(t, NoID, cd)

	m.Equiangulate()
	assert.Equal(t, cd, m.edgeLookup(2, 3), "edge id for C-D must be unchanged by a second pass")
	assert.NoError(t, m.Validate())
}

func TestEdgeFlipPreservesHalfEdgeCount(t *testing.T) {
	m := buildFlippableDiamond()
	before := len(m.HalfEdges)
	ab := m.edgeLookup(0, 1)
	m.EdgeFlip(ab)
	assert.Equal(t, before, len(m.HalfEdges))
	assert.NoError(t, m.Validate())
}

func TestOppositeVertex(t *testing.T) {
	m := buildFlippableDiamond()
	ab := m.edgeLookup(0, 1) // triangle (A,B,C): opposite A-B is C
	assert.Equal(t, 2, m.OppositeVertex(ab))
}

// Seed scenario 3 (spec.md S8, extended with a fourth vertex S so that R
// starts interior): the obtuse spike triangle P-Q-R is absorbed into the
// hole, leaving R marked boundary.
func TestRemoveObtuseBoundaryAbsorbsSpike(t *testing.T) {
	m := buildObtuseSpike()
	P, Q, R := 0, 1, 2

	assert.False(t, m.Vertices[R].Boundary, "R must start interior")
	facesBefore := len(m.Faces)

	m.RemoveObtuseBoundary()

	assert.True(t, m.Vertices[R].Boundary, "R must end up on the boundary")
	assert.Equal(t, NoID, m.edgeLookup(P, Q), "the P-Q edge pair must be gone")
	assert.Equal(t, facesBefore-1, len(m.Faces), "exactly one triangle removed")
	assert.NoError(t, m.Validate())
}

// A triangle with all three vertices already boundary is "regular" and
// must not be removed even if flagged obtuse.
func TestRemoveEdgePairSkipsRegularTriangle(t *testing.T) {
	m := buildObtuseSpike()
	P, Q, R := 0, 1, 2
	// Force R boundary without actually removing anything, then ensure a
	// direct removal attempt on the now-regular P-Q-R triangle is a no-op.
	m.Vertices[R].Boundary = true
	pq := m.edgeLookup(P, Q)
	qp := m.edgeLookup(Q, P)
	before := len(m.Faces)
	m.RemoveEdgePair(qp)
	assert.Equal(t, before, len(m.Faces), "a fully-boundary triangle must not be removed")
	assert.Equal(t, pq, m.edgeLookup(P, Q))
}
