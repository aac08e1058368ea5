package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/dualmesh/mesh/linalg"
)

// indexOfAngleDef maps a perturbed vertex p back to its slot in v's AngleDef:
// index 0 for the self term, or e+1 where Neigh[e] == p.
func indexOfAngleDef(m *Mesh, v, p int) int {
	if p == v {
		return 0
	}
	for e, n := range m.Vertices[v].Neigh {
		if n == p {
			return e + 1
		}
	}
	panic("p is not v or one of its neighbors")
}

// recomputeIncidentCentres recalls ComputeCircumcentre for every triangle in
// p's star, as AngleFactor(v) only ever reads cached face centers.
func recomputeIncidentCentres(m *Mesh, p int) {
	for _, fid := range m.Vertices[p].Dual {
		if m.Faces[fid].NSides == 3 {
			m.ComputeCircumcentre(fid)
		}
	}
}

// Seed scenario 1 (spec.md S8), boundary vertex with n==3: AngleFactorDeriv's
// AngleDef entries must agree with a central finite difference of
// AngleFactor, both for the self term and for the shared-neighbor term
// (Neigh[1] == Neigh[n-2] here), the exact case the f1/fn partial split
// guards against double-counting.
func TestAngleFactorDerivMatchesFiniteDifference(t *testing.T) {
	const h = 1e-5
	v := 1 // outer vertex, flanked by T0 (f1) and T5 (fn)

	directions := []linalg.Vec3{
		linalg.NewVec3(1, 0, 0),
		linalg.NewVec3(0, 1, 0),
		linalg.NewVec3(0, 0, 1),
	}

	// 2 (f1-only neighbor), 0 (shared neighbor, both f1 and fn), 6
	// (fn-only neighbor), and v itself (depends on both).
	for _, p := range []int{2, 0, 6, v} {
		m := buildHexagon()
		m.AngleFactorDeriv(v)
		idx := indexOfAngleDef(m, v, p)
		def := m.Vertices[v].AngleDef[idx]

		for axis, dir := range directions {
			orig := m.Vertices[p].R

			m.Vertices[p].R = linalg.Add(orig, linalg.Scale(dir, h))
			recomputeIncidentCentres(m, p)
			afPlus := m.AngleFactor(v)

			m.Vertices[p].R = linalg.Sub(orig, linalg.Scale(dir, h))
			recomputeIncidentCentres(m, p)
			afMinus := m.AngleFactor(v)

			m.Vertices[p].R = orig
			recomputeIncidentCentres(m, p)

			fd := (afPlus - afMinus) / (2 * h)
			var analytic float64
			switch axis {
			case 0:
				analytic = def.X
			case 1:
				analytic = def.Y
			case 2:
				analytic = def.Z
			}
			assert.InDelta(t, fd, analytic, 1e-4, "p=%d axis=%d", p, axis)
		}
	}
}
