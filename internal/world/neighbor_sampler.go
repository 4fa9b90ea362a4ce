package world

import "voxelchunk/internal/voxel"

// NeighborSampler reads a voxel at a local coordinate that may lie one step
// outside the chunk's bounds on any axis, walking into the appropriate
// linked neighbor when it does (spec.md §4.3). It is grounded on
// _chunk_get_block_including_neighbors's 27-case dispatch table, generalized
// from that function's hand-written switch to a direction computed from the
// three per-axis overflow signs.
type NeighborSampler struct{}

// axisOverflow classifies a single coordinate against [0, size): 0 if
// in-range, -1 if one step below, +1 if one step above. Any other value is
// out of the "at most one step past the face" contract NeighborSampler
// promises its callers.
func axisOverflow(v, size int) int {
	switch {
	case v < 0:
		return -1
	case v >= size:
		return 1
	default:
		return 0
	}
}

func rebase(v, size, overflow int) int {
	switch overflow {
	case -1:
		return v + size
	case 1:
		return v - size
	default:
		return v
	}
}

// Sample returns the voxel at local (x,y,z) relative to chunk, where each
// coordinate may be one step outside [0,W), [0,H), [0,D). If all three are
// in-range, this is exactly chunk.Get. Otherwise it computes the direction
// whose sign matches each axis's overflow, rebases the coordinate into that
// neighbor's local frame, and reads through the link — or reports false if
// no neighbor is installed there.
func (NeighborSampler) Sample(chunk *Chunk, x, y, z int) (voxel.Voxel, bool) {
	ox := axisOverflow(x, ChunkWidth)
	oy := axisOverflow(y, ChunkHeight)
	oz := axisOverflow(z, ChunkDepth)

	if ox == 0 && oy == 0 && oz == 0 {
		return chunk.Get(x, y, z), true
	}

	d := DirectionFromSigns(ox, oy, oz)
	n, ok := chunk.Neighbor(d)
	if !ok {
		return voxel.Voxel{}, false
	}

	rx := rebase(x, ChunkWidth, ox)
	ry := rebase(y, ChunkHeight, oy)
	rz := rebase(z, ChunkDepth, oz)
	return n.Get(rx, ry, rz), true
}
