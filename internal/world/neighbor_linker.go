package world

import "voxelchunk/internal/profiling"

// NeighborLinker wires and unwires a chunk's 26 neighbor links against a
// ChunkIndex, implementing the "hello"/"goodbye" protocol of spec.md §4.4
// (grounded on chunk_move_in_neighborhood/chunk_leave_neighborhood in the
// original engine).
type NeighborLinker struct{}

// Install wires all 26 links between chunk and whatever chunks currently
// occupy chunk.pos + vec(d) for each direction d, querying index with at
// most 9 sub-tree descents: 3 x-prefixes, each crossed with 3 y-prefixes,
// each yielding 3 cheap z-leaf reads.
//
// For every neighbor n found, sets chunk.neighbors[d] = n and
// n.neighbors[opposite(d)] = chunk — both ends of the link in the same
// step, so the symmetry invariant holds the instant install returns.
func (NeighborLinker) Install(index ChunkIndex, chunk *Chunk) {
	defer profiling.Track("world.NeighborLinker.Install")()

	q := index.Query()
	for dx := -1; dx <= 1; dx++ {
		if !q.AdvanceX(chunk.x + int32(dx)) {
			continue
		}
		for dy := -1; dy <= 1; dy++ {
			if !q.AdvanceY(chunk.y + int32(dy)) {
				continue
			}
			for dz := -1; dz <= 1; dz++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				n, ok := q.Z(chunk.z + int32(dz))
				if !ok || n == nil {
					continue
				}
				d := DirectionFromSigns(dx, dy, dz)
				chunk.setNeighbor(d, n)
				n.setNeighbor(d.Opposite(), chunk)
			}
		}
	}
}

// Unlink performs the "goodbye" protocol: for every currently-set
// chunk.neighbors[d], clears chunk.neighbors[d] *and* clears that neighbor's
// slot opposite(d), restoring the symmetry invariant by removing both ends.
// This is a strengthening over the original engine, which left the departing
// chunk's own slots stale until a separate final pass zeroed them; clearing
// both ends here means no observer ever sees a one-sided link once Unlink
// returns.
//
// Tolerates chunk.neighbors[d] already being empty.
func (NeighborLinker) Unlink(chunk *Chunk) {
	defer profiling.Track("world.NeighborLinker.Unlink")()

	for _, d := range AllDirections() {
		n := chunk.neighbors[d]
		if n == nil {
			continue
		}
		chunk.setNeighbor(d, nil)
		n.setNeighbor(d.Opposite(), nil)
	}
}
