package plot_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/dualmesh/mesh"
	"github.com/notargets/dualmesh/mesh/linalg"
	"github.com/notargets/dualmesh/mesh/plot"
)

func buildHexagon() *mesh.Mesh {
	m := mesh.NewMesh()
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

func TestAreaIncludesBoundary(t *testing.T) {
	m := buildHexagon()
	buf := plot.Area(m, true)

	// 6 boundary vertex points + 6 unique triangle circumcenters.
	assert.Equal(t, 12, len(buf.Points))
	// One polygon per attached vertex: center + 6 outer.
	assert.Equal(t, 7, len(buf.Polygons))

	for _, poly := range buf.Polygons {
		if poly.VertexID == 0 {
			assert.Len(t, poly.PointIndices, 6, "center polygon has 6 face-center corners")
		} else {
			assert.Len(t, poly.PointIndices, 3, "boundary polygon is self + 2 face centers")
		}
	}
}

func TestAreaExcludesBoundary(t *testing.T) {
	m := buildHexagon()
	buf := plot.Area(m, false)

	assert.Equal(t, 1, len(buf.Polygons), "only the interior center vertex contributes a polygon")
	assert.Equal(t, 0, buf.Polygons[0].VertexID)
	assert.Len(t, buf.Polygons[0].PointIndices, 6)
}
