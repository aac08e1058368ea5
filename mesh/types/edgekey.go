package types

import (
	"fmt"
	"math"
)

/*
DirectedEdgeKey packs a directed (from,to) vertex pair into a single
uint64 so the mesh's half-edge lookup map can use a plain Go map with a
scalar key instead of a [2]int key or a string. Unlike an undirected edge
key (which canonicalizes the pair into ascending order, losing
direction) this key keeps "from" and "to" distinct: (u,v) and (v,u) pack
to different keys, which is exactly what a directed half-edge map needs.
*/
type DirectedEdgeKey uint64

// NewDirectedEdgeKey packs (from,to) as from<<32|to.
func NewDirectedEdgeKey(from, to int) DirectedEdgeKey {
	const limit = math.MaxUint32
	if from < 0 || from > limit || to < 0 || to > limit {
		panic(fmt.Errorf("unable to pack vertex pair (%d,%d) into a directed edge key", from, to))
	}
	return DirectedEdgeKey(uint64(from)<<32 | uint64(to))
}

// Vertices unpacks the key back into its (from,to) pair.
func (k DirectedEdgeKey) Vertices() (from, to int) {
	from = int(uint64(k) >> 32)
	to = int(uint64(k) & math.MaxUint32)
	return
}

// Reverse returns the key for the opposite-direction pair (to,from).
func (k DirectedEdgeKey) Reverse() DirectedEdgeKey {
	from, to := k.Vertices()
	return NewDirectedEdgeKey(to, from)
}
