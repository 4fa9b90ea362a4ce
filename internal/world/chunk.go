// Package world implements the chunk data structure, its 26-neighbor graph,
// and the cross-chunk voxel sampling used by the mesher (spec.md §3-4.3).
package world

import "voxelchunk/internal/voxel"

// ArenaKind selects which of a chunk's two vertex-buffer arena handles is
// being attached or read.
type ArenaKind int

const (
	ArenaOpaque ArenaKind = iota
	ArenaTransparent
)

// ArenaHandle is an opaque reference into the vertex-buffer memory arena
// (spec.md §3: "the chunk owns the slot but not the arena memory"). The core
// never dereferences it; it is stored and returned verbatim.
type ArenaHandle any

// Box is an axis-aligned bounding box in chunk-local coordinates, as
// returned by Chunk.BBox.
type Box struct {
	MinX, MinY, MinZ int
	MaxX, MaxY, MaxZ int
}

// Chunk owns a dense W×H×D array of optional voxels plus the bookkeeping
// spec.md §3 requires: occupancy count, dirty flag, 26 neighbor links, and
// the two vertex-buffer arena handles.
//
// blocks is laid out x, z, y (Z before Y) so the mesher's triple loop (x
// outer, z middle, y inner) walks contiguous memory — an intentional cache
// decision carried over from the original engine's
// blocks[CHUNK_WIDTH][CHUNK_DEPTH][CHUNK_HEIGHT] and the teacher's
// Section.blocks flat-array layout.
type Chunk struct {
	x, y, z int32

	blocks []voxel.Voxel
	count  uint32

	neighbors [NumDirections]*Chunk

	vbmaOpaque      ArenaHandle
	vbmaTransparent ArenaHandle

	dirty bool
}

// NewChunk creates an empty chunk at the given grid position.
func NewChunk(x, y, z int32) *Chunk {
	return &Chunk{
		x:      x,
		y:      y,
		z:      z,
		blocks: make([]voxel.Voxel, ChunkWidth*ChunkDepth*ChunkHeight),
	}
}

// Pos returns the chunk's immutable grid position.
func (c *Chunk) Pos() (x, y, z int32) {
	return c.x, c.y, c.z
}

// Count returns the number of occupied slots.
func (c *Chunk) Count() uint32 {
	return c.count
}

func inRange(x, y, z int) bool {
	return x >= 0 && x < ChunkWidth && y >= 0 && y < ChunkHeight && z >= 0 && z < ChunkDepth
}

func index(x, y, z int) int {
	return x*ChunkDepth*ChunkHeight + z*ChunkHeight + y
}

// Get returns the voxel at local coordinates, or the zero-value (air) voxel
// if out of range. Out-of-range is not an error: it lets the mesher's
// boundary logic be expressed as "sample, and if empty, maybe fall through
// to the neighbor" (spec.md §4.2).
func (c *Chunk) Get(x, y, z int) voxel.Voxel {
	if !inRange(x, y, z) {
		return voxel.Voxel{}
	}
	return c.blocks[index(x, y, z)]
}

// Add inserts v at local coordinates iff the slot is empty. Returns whether
// the insert happened; it never overwrites an occupied slot.
func (c *Chunk) Add(x, y, z int, v voxel.Voxel) bool {
	if !inRange(x, y, z) || v.IsAir() {
		return false
	}
	i := index(x, y, z)
	if !c.blocks[i].IsAir() {
		return false
	}
	c.blocks[i] = v
	c.count++
	c.dirty = true
	return true
}

// Remove clears the slot at local coordinates. Returns whether a voxel was
// actually removed.
func (c *Chunk) Remove(x, y, z int) bool {
	if !inRange(x, y, z) {
		return false
	}
	i := index(x, y, z)
	if c.blocks[i].IsAir() {
		return false
	}
	c.blocks[i] = voxel.Voxel{}
	c.count--
	c.dirty = true
	return true
}

// Paint updates the color of an occupied slot. Returns whether the color
// changed: painting an empty slot, or painting a slot with the color it
// already has, is a no-op and returns false.
func (c *Chunk) Paint(x, y, z int, color uint16) bool {
	if !inRange(x, y, z) {
		return false
	}
	i := index(x, y, z)
	if c.blocks[i].IsAir() {
		return false
	}
	if c.blocks[i].ColorIndex == color {
		return false
	}
	c.blocks[i].ColorIndex = color
	c.dirty = true
	return true
}

// BBox scans all cells and returns the box around the occupied cells: Min
// is the lowest occupied coordinate on each axis and Max is one past the
// highest (the far corner of the last occupied cell). The second return is
// false for an empty chunk, in which case the box is the zero value
// (spec.md §7, "Empty bounding box").
func (c *Chunk) BBox() (Box, bool) {
	found := false
	var box Box
	for x := 0; x < ChunkWidth; x++ {
		for z := 0; z < ChunkDepth; z++ {
			for y := 0; y < ChunkHeight; y++ {
				if c.blocks[index(x, y, z)].IsAir() {
					continue
				}
				if !found {
					box = Box{MinX: x, MinY: y, MinZ: z, MaxX: x, MaxY: y, MaxZ: z}
					found = true
					continue
				}
				if x < box.MinX {
					box.MinX = x
				}
				if y < box.MinY {
					box.MinY = y
				}
				if z < box.MinZ {
					box.MinZ = z
				}
				if x > box.MaxX {
					box.MaxX = x
				}
				if y > box.MaxY {
					box.MaxY = y
				}
				if z > box.MaxZ {
					box.MaxZ = z
				}
			}
		}
	}
	if !found {
		return Box{}, false
	}
	box.MaxX++
	box.MaxY++
	box.MaxZ++
	return box, true
}

// SetDirty sets the dirty flag.
func (c *Chunk) SetDirty(dirty bool) {
	c.dirty = dirty
}

// IsDirty reports the dirty flag.
func (c *Chunk) IsDirty() bool {
	return c.dirty
}

// AttachVBMA stores an arena handle of the given kind.
func (c *Chunk) AttachVBMA(kind ArenaKind, handle ArenaHandle) {
	switch kind {
	case ArenaOpaque:
		c.vbmaOpaque = handle
	case ArenaTransparent:
		c.vbmaTransparent = handle
	}
}

// VBMA retrieves the arena handle of the given kind, and whether one was
// ever attached.
func (c *Chunk) VBMA(kind ArenaKind) (ArenaHandle, bool) {
	var h ArenaHandle
	switch kind {
	case ArenaOpaque:
		h = c.vbmaOpaque
	case ArenaTransparent:
		h = c.vbmaTransparent
	}
	return h, h != nil
}

// Neighbor returns the chunk linked at direction d, if any.
func (c *Chunk) Neighbor(d Direction) (*Chunk, bool) {
	n := c.neighbors[d]
	return n, n != nil
}

// setNeighbor installs (or clears, with nil) the link at direction d.
// Unexported: only NeighborLinker is allowed to mutate the neighbor table,
// so the hello/goodbye protocol stays the single place the symmetry
// invariant is maintained.
func (c *Chunk) setNeighbor(d Direction, n *Chunk) {
	c.neighbors[d] = n
}
