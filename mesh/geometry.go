package mesh

import (
	"fmt"
	"math"

	"github.com/notargets/dualmesh/mesh/linalg"
)

// faceNormal returns a representative normal for a face, taken from its
// first interior corner; used only to orient the signed-angle cache, never
// exposed directly (faces do not carry their own stored normal, per
// spec.md's data model -- normals live on vertices).
func (m *Mesh) faceNormal(f *Face) linalg.Vec3 {
	n := f.NSides
	if n < 3 {
		return linalg.Vec3{}
	}
	a := m.Vertices[f.Vertices[0]].R
	b := m.Vertices[f.Vertices[1]].R
	c := m.Vertices[f.Vertices[2]].R
	return linalg.Normalize(linalg.Cross(linalg.Sub(b, a), linalg.Sub(c, a)))
}

// ComputeCircumcentre computes the barycentric-weighted circumcenter of a
// triangle face (spec.md S4.2); panics if f is not a triangle.
func (m *Mesh) ComputeCircumcentre(fid int) linalg.Vec3 {
	f := &m.Faces[fid]
	if f.NSides != 3 {
		panic(fmt.Errorf("compute_circumcentre: face %d is not a triangle", fid))
	}
	ri := m.Vertices[f.Vertices[0]].R
	rj := m.Vertices[f.Vertices[1]].R
	rk := m.Vertices[f.Vertices[2]].R

	a := linalg.Sub(rk, rj) // rjk
	b := linalg.Sub(ri, rk) // rki
	c := linalg.Sub(rj, ri) // rij

	alpha2 := linalg.NormSq(a)
	beta2 := linalg.NormSq(b)
	gamma2 := linalg.NormSq(c)
	L2 := alpha2 + beta2 + gamma2

	lam1 := alpha2 * (L2 - 2*alpha2)
	lam2 := beta2 * (L2 - 2*beta2)
	lam3 := gamma2 * (L2 - 2*gamma2)
	Lam := lam1 + lam2 + lam3

	rc := linalg.Scale(linalg.Add(linalg.Add(linalg.Scale(ri, lam1), linalg.Scale(rj, lam2)), linalg.Scale(rk, lam3)), 1/Lam)
	f.Rc = rc
	return rc
}

// ComputeGeometricCentre is the arithmetic mean of a face's vertex positions.
func (m *Mesh) ComputeGeometricCentre(fid int) linalg.Vec3 {
	f := &m.Faces[fid]
	var sum linalg.Vec3
	for _, v := range f.Vertices {
		sum = linalg.Add(sum, m.Vertices[v].R)
	}
	rc := linalg.Scale(sum, 1/float64(len(f.Vertices)))
	f.Rc = rc
	return rc
}

// ComputeCentre dispatches to the circumcenter for triangles and the
// geometric center for polygons. alwaysGeometric lets a caller force the
// geometric-center path even for triangles (spec.md's "future toggle").
func (m *Mesh) ComputeCentre(fid int, alwaysGeometric bool) linalg.Vec3 {
	f := &m.Faces[fid]
	if f.NSides == 3 && !alwaysGeometric {
		return m.ComputeCircumcentre(fid)
	}
	return m.ComputeGeometricCentre(fid)
}

// ComputeAngles fills Angles (cosine of each interior angle) and the
// internal signedAngles cache used by the equiangulate flip test.
func (m *Mesh) ComputeAngles(fid int) {
	f := &m.Faces[fid]
	n := f.NSides
	angles := make([]float64, n)
	signed := make([]float64, n)
	normal := m.faceNormal(f)
	for i := 0; i < n; i++ {
		prev := f.Vertices[(i-1+n)%n]
		next := f.Vertices[(i+1)%n]
		cur := f.Vertices[i]
		toNext := linalg.Sub(m.Vertices[next].R, m.Vertices[cur].R)
		toPrev := linalg.Sub(m.Vertices[prev].R, m.Vertices[cur].R)
		nn, np := linalg.Norm(toNext), linalg.Norm(toPrev)
		if nn < linalg.Tol || np < linalg.Tol {
			angles[i] = 1
			signed[i] = 0
			continue
		}
		angles[i] = linalg.Dot(toNext, toPrev) / (nn * np)
		signed[i] = linalg.SignedAngle(toNext, toPrev, normal)
	}
	f.Angles = angles
	f.signedAngles = signed
}

// FaceArea is the true Euclidean area of the polygon (triangle-fan from
// the first vertex), independent of the center used for dual-area work.
func (m *Mesh) FaceArea(fid int) float64 {
	f := &m.Faces[fid]
	if f.NSides < 3 {
		return 0
	}
	r0 := m.Vertices[f.Vertices[0]].R
	var sum linalg.Vec3
	for i := 1; i < f.NSides-1; i++ {
		ri := m.Vertices[f.Vertices[i]].R
		rj := m.Vertices[f.Vertices[i+1]].R
		sum = linalg.Add(sum, linalg.Cross(linalg.Sub(ri, r0), linalg.Sub(rj, r0)))
	}
	area := 0.5 * linalg.Norm(sum)
	f.Area = area
	return area
}

// CircumRadius is the distance from rc to any triangle vertex, and zero
// for non-triangles.
func (m *Mesh) CircumRadius(fid int) float64 {
	f := &m.Faces[fid]
	if f.NSides != 3 {
		f.Radius = 0
		return 0
	}
	r := linalg.Norm(linalg.Sub(m.Vertices[f.Vertices[0]].R, f.Rc))
	f.Radius = r
	return r
}

// DualArea computes the signed dual-cell area of vertex v from its ordered
// star of face centers (spec.md S4.2), caching the result on the vertex.
// Panics if v is not ordered.
func (m *Mesh) DualArea(v int) float64 {
	vert := &m.Vertices[v]
	if !vert.Ordered {
		panic(fmt.Errorf("dual_area: vertex %d is not ordered", v))
	}
	dual := vert.Dual
	n := len(dual)
	if n == 0 {
		vert.Area = 0
		return 0
	}
	var sum float64
	if !vert.Boundary {
		for mu := 0; mu < n; mu++ {
			rmu := m.Faces[dual[mu]].Rc
			rnext := m.Faces[dual[(mu+1)%n]].Rc
			sum += linalg.Dot(linalg.Cross(rmu, rnext), vert.N)
		}
	} else {
		rv := vert.R
		sum += linalg.Dot(linalg.Cross(rv, m.Faces[dual[0]].Rc), vert.N)
		for mu := 0; mu < n-1; mu++ {
			rmu := m.Faces[dual[mu]].Rc
			rnext := m.Faces[dual[mu+1]].Rc
			sum += linalg.Dot(linalg.Cross(rmu, rnext), vert.N)
		}
		sum += linalg.Dot(linalg.Cross(m.Faces[dual[n-1]].Rc, rv), vert.N)
	}
	area := 0.5 * sum
	vert.Area = area
	return area
}

// DualPerimeter sums the Euclidean distance between consecutive face
// centers in v's ordered star, with the vertex itself closing the ends on
// a boundary vertex.
func (m *Mesh) DualPerimeter(v int) float64 {
	vert := &m.Vertices[v]
	if !vert.Ordered {
		panic(fmt.Errorf("dual_perimeter: vertex %d is not ordered", v))
	}
	dual := vert.Dual
	n := len(dual)
	if n == 0 {
		vert.Perim = 0
		return 0
	}
	var perim float64
	if !vert.Boundary {
		for mu := 0; mu < n; mu++ {
			perim += linalg.Norm(linalg.Sub(m.Faces[dual[(mu+1)%n]].Rc, m.Faces[dual[mu]].Rc))
		}
	} else {
		rv := vert.R
		perim += linalg.Norm(linalg.Sub(m.Faces[dual[0]].Rc, rv))
		for mu := 0; mu < n-1; mu++ {
			perim += linalg.Norm(linalg.Sub(m.Faces[dual[mu+1]].Rc, m.Faces[dual[mu]].Rc))
		}
		perim += linalg.Norm(linalg.Sub(rv, m.Faces[dual[n-1]].Rc))
	}
	vert.Perim = perim
	return perim
}

// AngleFactor returns 1 for non-boundary vertices, the fraction of 2*pi not
// consumed by the dual boundary turn for boundary vertices with at least
// three incident faces, and 0 for a detached or under-connected corner.
func (m *Mesh) AngleFactor(v int) float64 {
	vert := &m.Vertices[v]
	if !vert.Boundary {
		return 1
	}
	if !vert.Attached || len(vert.Faces) < 3 {
		return 0
	}
	n := len(vert.Faces)
	f0 := vert.Faces[0]
	fn := vert.Faces[n-2]
	u1 := linalg.Sub(m.Faces[f0].Rc, vert.R)
	u2 := linalg.Sub(m.Faces[fn].Rc, vert.R)
	n1, n2 := linalg.Norm(u1), linalg.Norm(u2)
	if n1 < linalg.Tol || n2 < linalg.Tol {
		return 0
	}
	cosTheta := linalg.Dot(u1, u2) / (n1 * n2)
	cosTheta = clamp(cosTheta, -1, 1)
	theta := math.Acos(cosTheta)
	if linalg.Dot(linalg.Cross(u1, u2), vert.N) > 0 {
		theta = 2*math.Pi - theta
	}
	return (2*math.Pi - theta) / (2 * math.Pi)
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
