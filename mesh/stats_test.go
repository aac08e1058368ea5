package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatsCountsHexagon(t *testing.T) {
	m := buildHexagon()
	s := m.Stats()
	assert.Equal(t, 7, s.NumVertices)
	assert.Equal(t, 24, s.NumHalfEdges)
	assert.Equal(t, 7, s.NumFaces) // 6 triangles + 1 hole
	assert.Equal(t, 1, s.NumBoundaryComponents)
	assert.True(t, s.IsTriangulation)
}

func TestValidateCatchesBrokenPair(t *testing.T) {
	m := buildHexagon()
	broken := m.HalfEdges[0].Pair
	m.HalfEdges[broken].Pair = NoID
	err := m.Validate()
	assert.Error(t, err)
}
