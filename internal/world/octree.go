package world

import "voxelchunk/internal/voxel"

// Octree is the shape's optional sparse voxel accelerator (spec.md §1, §4.5
// step 1: "use the shape's octree if present... otherwise use
// NeighborSampler"). Coordinates are in shape space, not chunk-local — the
// same absolute frame GetLightOrDefault uses. It is out of scope as a real
// implementation; this is the narrow read interface the mesher needs.
type Octree interface {
	// Get returns the voxel at absolute shape coordinates, and whether that
	// position is covered by the tree at all (false covers both "empty" and
	// "never inserted").
	Get(x, y, z int) (voxel.Voxel, bool)
}

// SparseOctree is a reference Octree: a flat coordinate map standing in for
// a real sparse tree. Like world.MapChunkIndex it is map-based, but it uses
// one map keyed by the (x,y,z) triple rather than that index's nested maps,
// and it implements no octree subdivision.
type SparseOctree struct {
	cells map[[3]int]voxel.Voxel
}

// NewSparseOctree returns an empty accelerator.
func NewSparseOctree() *SparseOctree {
	return &SparseOctree{cells: make(map[[3]int]voxel.Voxel)}
}

// Set stores v at absolute shape coordinates (x,y,z).
func (o *SparseOctree) Set(x, y, z int, v voxel.Voxel) {
	o.cells[[3]int{x, y, z}] = v
}

// Get implements Octree.
func (o *SparseOctree) Get(x, y, z int) (voxel.Voxel, bool) {
	v, ok := o.cells[[3]int{x, y, z}]
	return v, ok
}
