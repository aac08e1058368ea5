package types

// MeshEdgePair is a directed (from,to) vertex pair. The mesh's boundary pair
// list stores every boundary edge in both orientations.
type MeshEdgePair struct {
	From, To int
}
