package mesh

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/dualmesh/mesh/linalg"
)

// FCJacobian computes drcdr[p] = d(rc)/d(r_{Vertices[p]}) for p in {0,1,2}
// of a triangle face via exact differentiation of the barycentric
// circumcenter (spec.md S4.3). Panics if f is not a triangle or if the
// weight sum is degenerate (collinear triangle).
func (m *Mesh) FCJacobian(fid int) []*mat.Dense {
	f := &m.Faces[fid]
	if f.NSides != 3 {
		panic(fmt.Errorf("fc_jacobian: face %d is not a triangle", fid))
	}
	ri := m.Vertices[f.Vertices[0]].R
	rj := m.Vertices[f.Vertices[1]].R
	rk := m.Vertices[f.Vertices[2]].R

	a := linalg.Sub(rk, rj) // rjk, opposite i
	b := linalg.Sub(ri, rk) // rki, opposite j
	c := linalg.Sub(rj, ri) // rij, opposite k

	alpha2 := linalg.NormSq(a)
	beta2 := linalg.NormSq(b)
	gamma2 := linalg.NormSq(c)
	L2 := alpha2 + beta2 + gamma2

	lam1 := alpha2 * (L2 - 2*alpha2)
	lam2 := beta2 * (L2 - 2*beta2)
	lam3 := gamma2 * (L2 - 2*gamma2)
	Lam := lam1 + lam2 + lam3
	if math.Abs(Lam) < linalg.Tol {
		panic(fmt.Errorf("fc_jacobian: face %d has a degenerate (collinear) triangle", fid))
	}

	// d(alpha2)/dr_p, d(beta2)/dr_p, d(gamma2)/dr_p for p = i,j,k (index 0,1,2)
	dAlpha2 := [3]linalg.Vec3{{}, linalg.Scale(a, -2), linalg.Scale(a, 2)}
	dBeta2 := [3]linalg.Vec3{linalg.Scale(b, 2), {}, linalg.Scale(b, -2)}
	dGamma2 := [3]linalg.Vec3{linalg.Scale(c, -2), linalg.Scale(c, 2), {}}

	rq := [3]linalg.Vec3{ri, rj, rk}
	lamQ := [3]float64{lam1, lam2, lam3}
	sq := [3]float64{alpha2, beta2, gamma2}

	drcdr := make([]*mat.Dense, 3)
	for p := 0; p < 3; p++ {
		dL2 := linalg.Add(linalg.Add(dAlpha2[p], dBeta2[p]), dGamma2[p])
		dSq := [3]linalg.Vec3{dAlpha2[p], dBeta2[p], dGamma2[p]}

		var dLam [3]linalg.Vec3
		var dLamTotal linalg.Vec3
		for q := 0; q < 3; q++ {
			// d(lambda_q)/dr_p = dSq[q]*(L2-2*sq[q]) + sq[q]*(dL2-2*dSq[q])
			term1 := linalg.Scale(dSq[q], L2-2*sq[q])
			term2 := linalg.Scale(linalg.Sub(dL2, linalg.Scale(dSq[q], 2)), sq[q])
			dLam[q] = linalg.Add(term1, term2)
			dLamTotal = linalg.Add(dLamTotal, dLam[q])
		}

		mat3 := mat.NewDense(3, 3, nil)
		for q := 0; q < 3; q++ {
			// d(lambda_q/Lam)/dr_p = (Lam*dLam[q] - lamQ[q]*dLamTotal) / Lam^2
			num := linalg.Sub(linalg.Scale(dLam[q], Lam), linalg.Scale(dLamTotal, lamQ[q]))
			dWeight := linalg.Scale(num, 1/(Lam*Lam))
			outer := linalg.Outer(rq[q], dWeight)
			mat3.Add(mat3, outer)
		}
		drcdr[p] = linalg.AddScaled(mat3, linalg.Identity3(), lamQ[p]/Lam)
	}

	f.Drcdr = drcdr
	return drcdr
}

// jacobianAt returns drcdr[idx] for the index of vertexID within f.Vertices,
// or nil if vertexID is not one of f's three vertices (treated as the zero
// matrix by the caller).
func jacobianAt(f *Face, vertexID int) *mat.Dense {
	if f.Drcdr == nil {
		return nil
	}
	for idx, v := range f.Vertices {
		if v == vertexID {
			return f.Drcdr[idx]
		}
	}
	return nil
}

// AngleFactorDeriv fills AngleDef for a boundary vertex v: AngleDef[0] is
// d(angle_factor)/dr_v, and AngleDef[e+1] accumulates d(angle_factor)/dr_p
// for p = to(edges[e]), e in {0,1} (the two endpoints of the first
// flanking triangle) and e in {n-2,n-1} (the second). Non-boundary
// vertices, or boundary vertices whose flanking faces are not both
// triangles, leave AngleDef empty (spec.md S4.3/S7).
//
// d(c)/dr_p splits into an f1-only partial (depends only on f1's jacobian)
// and an fn-only partial (depends only on fn's jacobian); the two sum to
// the full derivative. For a vertex with exactly three incident faces
// (the common case: two flanking triangles and nothing else), edges[1]
// and edges[n-2] name the same shared neighbor, and each partial must be
// accumulated there exactly once rather than the full combined derivative
// being added twice.
func (m *Mesh) AngleFactorDeriv(v int) {
	vert := &m.Vertices[v]
	vert.AngleDef = nil
	if !vert.Boundary {
		return
	}
	n := len(vert.Faces)
	if n < 3 {
		return
	}
	f1id, fnid := vert.Faces[0], vert.Faces[n-2]
	f1, fn := &m.Faces[f1id], &m.Faces[fnid]
	if f1.NSides != 3 || fn.NSides != 3 {
		return
	}

	u1 := linalg.Sub(f1.Rc, vert.R)
	u2 := linalg.Sub(fn.Rc, vert.R)
	n1, n2 := linalg.Norm(u1), linalg.Norm(u2)
	if n1 < linalg.Tol || n2 < linalg.Tol {
		return
	}
	u1hat, u2hat := linalg.Scale(u1, 1/n1), linalg.Scale(u2, 1/n2)
	c := linalg.Dot(u1, u2) / (n1 * n2)

	var sign float64 = -1
	if linalg.Dot(linalg.Cross(u1, u2), vert.N) < 0 {
		sign = 1
	}

	var k float64
	if math.Abs(c) < 1 {
		k = sign / (2 * math.Pi * math.Sqrt(1-c*c))
	}

	// dcdpF1 is the part of d(c)/dr_p driven by f1's jacobian alone:
	// d(u1)/dr_p . u2 / (n1*n2) - c * (u1hat . d(u1)/dr_p) / n1.
	dcdpF1 := func(p int, isSelf bool) linalg.Vec3 {
		j1p := jacobianAt(f1, p)
		var selfA, selfB linalg.Vec3
		if isSelf {
			selfA = u2
			selfB = u1hat
		}
		a1 := linalg.Sub(linalg.LeftVecMul(u2, j1p), selfA)
		term1 := linalg.Scale(a1, 1/(n1*n2))

		b1 := linalg.Sub(linalg.LeftVecMul(u1hat, j1p), selfB)
		term2 := linalg.Scale(b1, c/n1)

		return linalg.Sub(term1, term2)
	}

	// dcdpFn is the complementary part driven by fn's jacobian alone:
	// u1 . d(u2)/dr_p / (n1*n2) - c * (u2hat . d(u2)/dr_p) / n2.
	dcdpFn := func(p int, isSelf bool) linalg.Vec3 {
		jnp := jacobianAt(fn, p)
		var selfA, selfB linalg.Vec3
		if isSelf {
			selfA = u1
			selfB = u2hat
		}
		a2 := linalg.Sub(linalg.LeftVecMul(u1, jnp), selfA)
		term1 := linalg.Scale(a2, 1/(n1*n2))

		b2 := linalg.Sub(linalg.LeftVecMul(u2hat, jnp), selfB)
		term2 := linalg.Scale(b2, c/n2)

		return linalg.Sub(term1, term2)
	}

	def := make([]linalg.Vec3, len(vert.Edges)+1)
	def[0] = linalg.Scale(linalg.Add(dcdpF1(v, true), dcdpFn(v, true)), k)

	accumulate := func(e int, f1Partial bool) {
		p := vert.Neigh[e]
		var contribution linalg.Vec3
		if f1Partial {
			contribution = linalg.Scale(dcdpF1(p, false), k)
		} else {
			contribution = linalg.Scale(dcdpFn(p, false), k)
		}
		def[e+1] = linalg.Add(def[e+1], contribution)
	}
	accumulate(0, true)
	accumulate(1, true)
	accumulate(n-2, false)
	accumulate(n-1, false)

	vert.AngleDef = def
}
