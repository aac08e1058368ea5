// Package config loads a YAML description of a mesh's initial vertices and
// half-edges and drives the mesh package's construction calls, standing in
// for the external loader spec.md's dataflow (S2) assumes but never
// specifies a format for.
package config

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/notargets/dualmesh/mesh"
	"github.com/notargets/dualmesh/mesh/linalg"
)

// VertexConfig is one vertex's position, normal, and id.
type VertexConfig struct {
	ID     int     `yaml:"id"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Z      float64 `yaml:"z"`
	Nx     float64 `yaml:"nx"`
	Ny     float64 `yaml:"ny"`
	Nz     float64 `yaml:"nz"`
}

// EdgeConfig is one directed half-edge to insert via add_edge.
type EdgeConfig struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
}

// FaceConfig is an externally supplied face record, for loaders that
// already know the topology and want to skip generate_faces.
type FaceConfig struct {
	Vertices []int `yaml:"vertices"`
	Edges    []int `yaml:"edges"`
	IsHole   bool  `yaml:"isHole"`
}

// MeshConfig is the top-level YAML document driving Build.
type MeshConfig struct {
	Title    string         `yaml:"title"`
	Vertices []VertexConfig `yaml:"vertices"`
	Edges    []EdgeConfig   `yaml:"edges"`
	Faces    []FaceConfig   `yaml:"faces"`
	Order    bool           `yaml:"order"`
}

// Parse unmarshals a MeshConfig from YAML bytes.
func (c *MeshConfig) Parse(data []byte) error {
	return yaml.Unmarshal(data, c)
}

// Build resets m and replays the configuration: every vertex via add_vertex,
// every edge via add_edge, every explicit face via add_face, then
// postprocess(order). If no Faces are supplied, the caller is expected to
// call m.GenerateFaces() before Postprocess -- Build does that itself when
// c.Faces is empty, mirroring the "discover from half-edges" path of
// spec.md S4.1.
func Build(m *mesh.Mesh, c *MeshConfig) error {
	m.Reset()

	for _, v := range c.Vertices {
		if v.ID < 0 {
			return fmt.Errorf("config: vertex id %d out of range", v.ID)
		}
		m.AddVertex(linalg.NewVec3(v.X, v.Y, v.Z), linalg.NewVec3(v.Nx, v.Ny, v.Nz), v.ID)
	}

	for _, e := range c.Edges {
		m.AddEdge(e.From, e.To)
	}

	if len(c.Faces) > 0 {
		for _, f := range c.Faces {
			m.AddFace(f.Vertices, f.Edges, f.IsHole)
		}
	} else {
		m.GenerateFaces()
	}

	m.Postprocess(c.Order)
	return nil
}
