package mesh

// GenerateDualMesh populates face centers and interior angles for every
// non-hole face, then derives per-vertex dual areas/perimeters and
// per-triangle Jacobians and boundary angle-factor gradients. Call once
// after Postprocess(true); call UpdateDualMesh thereafter as positions and
// normals change (spec.md S2 dataflow).
func (m *Mesh) GenerateDualMesh() {
	m.refreshFaces()
	m.refreshVertices()
}

// UpdateDualMesh recomputes every derived quantity after the driver has
// written new vertex positions/normals in place. Topology is assumed
// unchanged; call the topological ops (EdgeFlip, Equiangulate,
// RemoveObtuseBoundary) separately, then call this again before reading.
func (m *Mesh) UpdateDualMesh() {
	m.refreshFaces()
	m.refreshVertices()
}

func (m *Mesh) refreshFaces() {
	for i := range m.Faces {
		f := &m.Faces[i]
		if f.IsHole {
			continue
		}
		m.ComputeCentre(i, false)
		m.ComputeAngles(i)
		m.FaceArea(i)
		m.CircumRadius(i)
		if f.NSides == 3 {
			m.FCJacobian(i)
		} else {
			f.Drcdr = nil
		}
	}
}

func (m *Mesh) refreshVertices() {
	for i := range m.Vertices {
		if !m.Vertices[i].Ordered {
			continue
		}
		m.DualArea(i)
		m.DualPerimeter(i)
		m.AngleFactorDeriv(i)
	}
}
