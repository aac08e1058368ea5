package mesh

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/dualmesh/mesh/linalg"
)

// Seed scenario 4 (spec.md S8): FCJacobian's closed-form drcdr[p] must agree
// with a central finite difference of ComputeCircumcentre under a small
// perturbation of vertex p, for every coordinate direction.
func TestFCJacobianMatchesFiniteDifference(t *testing.T) {
	m := NewMesh()
	n := linalg.NewVec3(0, 0, 1)
	m.AddVertex(linalg.NewVec3(1, 0, 0), n, 0)
	m.AddVertex(linalg.NewVec3(-0.5, 0.8660254, 0), n, 1)
	m.AddVertex(linalg.NewVec3(-0.5, -0.8660254, 0), n, 2)

	e0 := m.AddEdge(0, 1)
	e1 := m.AddEdge(1, 2)
	e2 := m.AddEdge(2, 0)
	fid := m.AddFace([]int{0, 1, 2}, []int{e0, e1, e2}, false)

	m.ComputeCircumcentre(fid)
	drcdr := m.FCJacobian(fid)
	assert.Len(t, drcdr, 3)

	const h = 1e-5
	directions := []linalg.Vec3{
		linalg.NewVec3(1, 0, 0),
		linalg.NewVec3(0, 1, 0),
		linalg.NewVec3(0, 0, 1),
	}

	for p := 0; p < 3; p++ {
		orig := m.Vertices[m.Faces[fid].Vertices[p]].R
		for axis, dir := range directions {
			m.Vertices[m.Faces[fid].Vertices[p]].R = linalg.Add(orig, linalg.Scale(dir, h))
			rcPlus := m.ComputeCircumcentre(fid)
			m.Vertices[m.Faces[fid].Vertices[p]].R = linalg.Sub(orig, linalg.Scale(dir, h))
			rcMinus := m.ComputeCircumcentre(fid)
			m.Vertices[m.Faces[fid].Vertices[p]].R = orig

			fd := linalg.Scale(linalg.Sub(rcPlus, rcMinus), 1/(2*h))

			var col [3]float64
			for row := 0; row < 3; row++ {
				col[row] = drcdr[p].At(row, axis)
			}
			analytic := linalg.NewVec3(col[0], col[1], col[2])

			assert.InDelta(t, analytic.X, fd.X, 1e-4, "p=%d axis=%d X", p, axis)
			assert.InDelta(t, analytic.Y, fd.Y, 1e-4, "p=%d axis=%d Y", p, axis)
			assert.InDelta(t, analytic.Z, fd.Z, 1e-4, "p=%d axis=%d Z", p, axis)
		}
	}
	// restore the cached circumcenter/geometry for the unperturbed triangle
	m.ComputeCircumcentre(fid)
}

func TestFCJacobianPanicsOnNonTriangle(t *testing.T) {
	m := NewMesh()
	n := linalg.NewVec3(0, 0, 1)
	for i, p := range []linalg.Vec3{
		linalg.NewVec3(0, 0, 0),
		linalg.NewVec3(1, 0, 0),
		linalg.NewVec3(1, 1, 0),
		linalg.NewVec3(0, 1, 0),
	} {
		m.AddVertex(p, n, i)
	}
	e0 := m.AddEdge(0, 1)
	e1 := m.AddEdge(1, 2)
	e2 := m.AddEdge(2, 3)
	e3 := m.AddEdge(3, 0)
	fid := m.AddFace([]int{0, 1, 2, 3}, []int{e0, e1, e2, e3}, false)

	assert.Panics(t, func() { m.FCJacobian(fid) })
}

func TestEquilateralCircumcentreIsCentroid(t *testing.T) {
	m := NewMesh()
	n := linalg.NewVec3(0, 0, 1)
	m.AddVertex(linalg.NewVec3(1, 0, 0), n, 0)
	m.AddVertex(linalg.NewVec3(-0.5, math.Sqrt(3)/2, 0), n, 1)
	m.AddVertex(linalg.NewVec3(-0.5, -math.Sqrt(3)/2, 0), n, 2)
	e0 := m.AddEdge(0, 1)
	e1 := m.AddEdge(1, 2)
	e2 := m.AddEdge(2, 0)
	fid := m.AddFace([]int{0, 1, 2}, []int{e0, e1, e2}, false)

	rc := m.ComputeCircumcentre(fid)
	assert.InDelta(t, 0, rc.X, 1e-9)
	assert.InDelta(t, 0, rc.Y, 1e-9)

	r := m.CircumRadius(fid)
	assert.InDelta(t, 1, r, 1e-9)
}
