package meshing

import (
	"voxelchunk/internal/voxel"
	"voxelchunk/internal/world"
)

// VoxelSource abstracts over the two ways a voxel outside the current
// chunk's own storage can be read (spec.md §4.5 step 1, Design Note 3):
// through the shape's octree when present, or through NeighborSampler
// otherwise. Collapsing both into one interface removes the "if octree !=
// nil" branch the original repeats at every lookup site. Coordinates are
// chunk-local and may be one step outside [0,W)×[0,H)×[0,D) on any axis,
// same contract as NeighborSampler.Sample.
type VoxelSource interface {
	Sample(x, y, z int) (voxel.Voxel, bool)
}

// octreeSource reads through a shape's sparse accelerator, translating
// chunk-local coordinates into the absolute shape-space coordinates the
// octree indexes by.
type octreeSource struct {
	octree                     world.Octree
	originX, originY, originZ int
}

func (s octreeSource) Sample(x, y, z int) (voxel.Voxel, bool) {
	return s.octree.Get(s.originX+x, s.originY+y, s.originZ+z)
}

// samplerSource reads through the chunk's own storage and its 26-neighbor
// links via NeighborSampler, for shapes with no octree.
type samplerSource struct {
	chunk *world.Chunk
}

func (s samplerSource) Sample(x, y, z int) (voxel.Voxel, bool) {
	return world.NeighborSampler{}.Sample(s.chunk, x, y, z)
}
