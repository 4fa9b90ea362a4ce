package meshing

import (
	"reflect"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voxelchunk/internal/voxel"
	"voxelchunk/internal/world"
)

func newTestShape(palette *voxel.StaticPalette) *world.DefaultShape {
	return world.NewDefaultShape(palette)
}

// S1: single opaque voxel, no neighbors.
func TestEmitSingleVoxelEmitsSixFaces(t *testing.T) {
	palette := voxel.NewStaticPalette()
	atlasIdx := palette.Register(7, false)
	shape := newTestShape(palette)

	chunk := world.NewChunk(0, 0, 0)
	chunk.Add(0, 0, 0, voxel.Voxel{ColorIndex: atlasIdx})

	w := &SliceWriter{}
	var m Mesher
	m.Emit(shape, chunk, w, w)

	require.Len(t, w.Faces, 6)
	wantOrder := []FaceID{FaceLeft, FaceRight, FaceBack, FaceFront, FaceTop, FaceDown}
	for i, rec := range w.Faces {
		assert.Equal(t, wantOrder[i], rec.Face)
		assert.Equal(t, uint16(7), rec.AtlasColor)
		assert.Equal(t, AOCorners{0, 0, 0, 0}, rec.AO, "face %v", rec.Face)
	}
	assert.Equal(t, mgl32.Vec3{0, 0.5, 0.5}, w.Faces[0].Anchor)
	assert.Equal(t, mgl32.Vec3{1, 0.5, 0.5}, w.Faces[1].Anchor)
	assert.Equal(t, mgl32.Vec3{0.5, 0.5, 0}, w.Faces[2].Anchor)
	assert.Equal(t, mgl32.Vec3{0.5, 0.5, 1}, w.Faces[3].Anchor)
	assert.Equal(t, mgl32.Vec3{0.5, 1, 0.5}, w.Faces[4].Anchor)
	assert.Equal(t, mgl32.Vec3{0.5, 0, 0.5}, w.Faces[5].Anchor)
	assert.True(t, w.Flushed())
}

// S2: two face-to-face opaque voxels cull their shared faces.
func TestEmitFaceToFaceCullsSharedFaces(t *testing.T) {
	palette := voxel.NewStaticPalette()
	atlasIdx := palette.Register(1, false)
	shape := newTestShape(palette)

	chunk := world.NewChunk(0, 0, 0)
	chunk.Add(0, 0, 0, voxel.Voxel{ColorIndex: atlasIdx})
	chunk.Add(1, 0, 0, voxel.Voxel{ColorIndex: atlasIdx})

	w := &SliceWriter{}
	var m Mesher
	m.Emit(shape, chunk, w, w)

	require.Len(t, w.Faces, 10)
	counts := countFaces(w.Faces)
	assert.Equal(t, 1, counts[FaceRight], "voxel(0,0,0)'s RIGHT face should be culled by its neighbor")
	assert.Equal(t, 1, counts[FaceLeft], "voxel(1,0,0)'s LEFT face should be culled by its neighbor")
	assert.Equal(t, 2, counts[FaceBack])
	assert.Equal(t, 2, counts[FaceFront])
	assert.Equal(t, 2, counts[FaceTop])
	assert.Equal(t, 2, counts[FaceDown])
}

func countFaces(faces []FaceRecord) map[FaceID]int {
	counts := make(map[FaceID]int)
	for _, rec := range faces {
		counts[rec.Face]++
	}
	return counts
}

// S3-style AO corner test: place AO casters so one corner of the LEFT face
// has both its edge neighbors set, producing ao=3, while the opposite
// corner sees no caster and stays at 0.
func TestEmitAOCorner(t *testing.T) {
	palette := voxel.NewStaticPalette()
	atlasIdx := palette.Register(1, false)
	shape := newTestShape(palette)

	chunk := world.NewChunk(0, 0, 0)
	chunk.Add(1, 1, 1, voxel.Voxel{ColorIndex: atlasIdx})
	// LEFT face ring of (1,1,1) lives at x=0; corner0's two edges are at
	// (du,dv) = (-1,0) and (0,1) in the face's (y,z) plane, i.e. local
	// (0,0,1) and (0,1,2).
	chunk.Add(0, 0, 1, voxel.Voxel{ColorIndex: atlasIdx})
	chunk.Add(0, 1, 2, voxel.Voxel{ColorIndex: atlasIdx})

	w := &SliceWriter{}
	var m Mesher
	m.Emit(shape, chunk, w, w)

	// The casters at x=0 emit LEFT faces of their own first (x-outer order);
	// pick the one anchored on voxel (1,1,1).
	var left *FaceRecord
	for i := range w.Faces {
		if w.Faces[i].Face == FaceLeft && w.Faces[i].Anchor == (mgl32.Vec3{1, 1.5, 1.5}) {
			left = &w.Faces[i]
			break
		}
	}
	require.NotNil(t, left)
	assert.Equal(t, uint8(3), left.AO[0], "corner0 should be fully occluded")
	assert.Equal(t, uint8(0), left.AO[2], "opposite corner should see no casters")
}

// Invariant 7: repeated Emit on an unchanged chunk is deterministic.
func TestEmitIsDeterministic(t *testing.T) {
	palette := voxel.NewStaticPalette()
	atlasIdx := palette.Register(3, false)
	shape := newTestShape(palette)

	chunk := world.NewChunk(0, 0, 0)
	chunk.Add(0, 0, 0, voxel.Voxel{ColorIndex: atlasIdx})
	chunk.Add(2, 2, 2, voxel.Voxel{ColorIndex: atlasIdx})

	w1 := &SliceWriter{}
	w2 := &SliceWriter{}
	var m Mesher
	m.Emit(shape, chunk, w1, w1)
	m.Emit(shape, chunk, w2, w2)

	assert.True(t, reflect.DeepEqual(w1.Faces, w2.Faces))
}

// S4: cross-chunk occlusion appears after Install and disappears after Unlink.
func TestEmitCrossChunkOcclusion(t *testing.T) {
	palette := voxel.NewStaticPalette()
	atlasIdx := palette.Register(1, false)
	shape := newTestShape(palette)

	idx := world.NewMapChunkIndex()
	a := world.NewChunk(0, 0, 0)
	b := world.NewChunk(1, 0, 0)
	idx.Put(world.ChunkCoord{X: 0, Y: 0, Z: 0}, a)
	idx.Put(world.ChunkCoord{X: 1, Y: 0, Z: 0}, b)

	a.Add(world.ChunkWidth-1, 0, 0, voxel.Voxel{ColorIndex: atlasIdx})
	b.Add(0, 0, 0, voxel.Voxel{ColorIndex: atlasIdx})

	var linker world.NeighborLinker
	linker.Install(idx, a)
	linker.Install(idx, b)

	var m Mesher

	w := &SliceWriter{}
	m.Emit(shape, a, w, w)
	for _, rec := range w.Faces {
		assert.NotEqual(t, FaceRight, rec.Face, "RIGHT face should be occluded by installed neighbor")
	}

	linker.Unlink(a)
	w2 := &SliceWriter{}
	m.Emit(shape, a, w2, w2)
	found := false
	for _, rec := range w2.Faces {
		if rec.Face == FaceRight {
			found = true
		}
	}
	assert.True(t, found, "RIGHT face should reappear once the neighbor is unlinked")
}

// S5: transparent adjacency, option off — no inner face between same-color
// transparent voxels.
func TestEmitTransparentAdjacencySameColorOptionOff(t *testing.T) {
	palette := voxel.NewStaticPalette()
	waterIdx := palette.Register(2, true)
	shape := newTestShape(palette)
	shape.SetDrawInnerTransparentFaces(false)

	chunk := world.NewChunk(0, 0, 0)
	chunk.Add(0, 0, 0, voxel.Voxel{ColorIndex: waterIdx})
	chunk.Add(1, 0, 0, voxel.Voxel{ColorIndex: waterIdx})

	w := &SliceWriter{}
	var m Mesher
	m.Emit(shape, chunk, w, w)

	require.Len(t, w.Faces, 10)
	counts := countFaces(w.Faces)
	assert.Equal(t, 1, counts[FaceRight], "inner RIGHT face should be culled")
	assert.Equal(t, 1, counts[FaceLeft], "inner LEFT face should be culled")
}

// S6: transparent adjacency, option on, different colors — inner face is
// emitted and routed to the transparent writer.
func TestEmitTransparentAdjacencyDifferentColorOptionOn(t *testing.T) {
	palette := voxel.NewStaticPalette()
	waterIdx := palette.Register(2, true)
	lavaIdx := palette.Register(3, true)
	shape := newTestShape(palette)
	shape.SetDrawInnerTransparentFaces(true)

	chunk := world.NewChunk(0, 0, 0)
	chunk.Add(0, 0, 0, voxel.Voxel{ColorIndex: waterIdx})
	chunk.Add(1, 0, 0, voxel.Voxel{ColorIndex: lavaIdx})

	opaque := &SliceWriter{}
	transparent := &SliceWriter{}
	var m Mesher
	m.Emit(shape, chunk, opaque, transparent)

	assert.Empty(t, opaque.Faces)
	require.Len(t, transparent.Faces, 12, "neither voxel's inner face should be culled when colors differ and the option is on")
	counts := countFaces(transparent.Faces)
	assert.Equal(t, 2, counts[FaceRight])
	assert.Equal(t, 2, counts[FaceLeft])
}
