package world

import (
	"sync"

	"voxelchunk/internal/profiling"
)

// ChunkCoord is a chunk's position in the world's chunk grid, in chunk units.
type ChunkCoord struct {
	X, Y, Z int32
}

// ChunkIndex is the external spatial index of chunks (spec.md §1: "out of
// scope, specified only through the narrow interface it exposes"). The real
// index lives outside this module; NeighborLinker reads through this
// interface only, and never mutates it.
type ChunkIndex interface {
	// Query returns a fresh batched-query cursor over the index. The index
	// must not be mutated while a query is in use.
	Query() ChunkIndexQuery
}

// ChunkIndexQuery is the batched point-query protocol spec.md §6 requires:
// "reset, advance(x), advance(y), get(z) semantics enabling prefix sharing"
// so NeighborLinker can fetch 27 adjacent cells with at most 9 sub-tree
// descents (3 x-prefixes × 3 y-prefixes, each followed by 3 cheap z-leaf
// reads) instead of 27 independent lookups.
type ChunkIndexQuery interface {
	// Reset clears any cached x/y prefix, so a new x-prefix can be entered.
	Reset()
	// AdvanceX descends into the x-prefix. Returns false if nothing is
	// indexed at that x; the query then has no y-prefix until the next
	// successful AdvanceX.
	AdvanceX(x int32) bool
	// AdvanceY descends into the y-prefix below the current x-prefix.
	// Returns false if nothing is indexed at that (x,y) pair.
	AdvanceY(y int32) bool
	// Z reads the leaf at the current (x,y) prefix and the given z.
	Z(z int32) (*Chunk, bool)
}

// MapChunkIndex is a reference ChunkIndex: a three-level nested map
// (x -> y -> z -> *Chunk) guarded by a single RWMutex. It plays the role the
// teacher's ChunkStore plays for block storage, adapted from a flat
// coordinate map plus column-index to a structure that shares prefixes along
// all three axes, matching the traversal order NeighborLinker drives.
type MapChunkIndex struct {
	mu   sync.RWMutex
	byX  map[int32]map[int32]map[int32]*Chunk
	size int
}

// NewMapChunkIndex returns an empty index.
func NewMapChunkIndex() *MapChunkIndex {
	return &MapChunkIndex{byX: make(map[int32]map[int32]map[int32]*Chunk)}
}

// Get returns the chunk at coord, if indexed.
func (idx *MapChunkIndex) Get(coord ChunkCoord) (*Chunk, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	byY, ok := idx.byX[coord.X]
	if !ok {
		return nil, false
	}
	byZ, ok := byY[coord.Y]
	if !ok {
		return nil, false
	}
	c, ok := byZ[coord.Z]
	return c, ok
}

// Put indexes c at coord, replacing whatever was there.
func (idx *MapChunkIndex) Put(coord ChunkCoord, c *Chunk) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	byY, ok := idx.byX[coord.X]
	if !ok {
		byY = make(map[int32]map[int32]*Chunk)
		idx.byX[coord.X] = byY
	}
	byZ, ok := byY[coord.Y]
	if !ok {
		byZ = make(map[int32]*Chunk)
		byY[coord.Y] = byZ
	}
	if _, existed := byZ[coord.Z]; !existed {
		idx.size++
	}
	byZ[coord.Z] = c
}

// Delete removes whatever chunk is indexed at coord, pruning empty prefixes.
func (idx *MapChunkIndex) Delete(coord ChunkCoord) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	byY, ok := idx.byX[coord.X]
	if !ok {
		return
	}
	byZ, ok := byY[coord.Y]
	if !ok {
		return
	}
	if _, existed := byZ[coord.Z]; !existed {
		return
	}
	delete(byZ, coord.Z)
	idx.size--
	if len(byZ) == 0 {
		delete(byY, coord.Y)
	}
	if len(byY) == 0 {
		delete(idx.byX, coord.X)
	}
}

// Len returns the number of indexed chunks.
func (idx *MapChunkIndex) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.size
}

// Query implements ChunkIndex.
func (idx *MapChunkIndex) Query() ChunkIndexQuery {
	return &mapChunkQuery{idx: idx}
}

type mapChunkQuery struct {
	idx *MapChunkIndex
	byY map[int32]map[int32]*Chunk
	byZ map[int32]*Chunk
}

func (q *mapChunkQuery) Reset() {
	q.byY = nil
	q.byZ = nil
}

func (q *mapChunkQuery) AdvanceX(x int32) bool {
	defer profiling.Track("world.ChunkIndexQuery.AdvanceX")()
	q.idx.mu.RLock()
	defer q.idx.mu.RUnlock()
	byY, ok := q.idx.byX[x]
	q.byY = byY
	q.byZ = nil
	return ok
}

func (q *mapChunkQuery) AdvanceY(y int32) bool {
	if q.byY == nil {
		q.byZ = nil
		return false
	}
	q.idx.mu.RLock()
	defer q.idx.mu.RUnlock()
	byZ, ok := q.byY[y]
	q.byZ = byZ
	return ok
}

func (q *mapChunkQuery) Z(z int32) (*Chunk, bool) {
	if q.byZ == nil {
		return nil, false
	}
	q.idx.mu.RLock()
	defer q.idx.mu.RUnlock()
	c, ok := q.byZ[z]
	return c, ok
}
