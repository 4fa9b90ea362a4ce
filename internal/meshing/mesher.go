// Package meshing implements the face-culling meshing pass: per-voxel face
// visibility, ambient occlusion, and smoothed vertex lighting (spec.md
// §4.5), grounded on chunk_write_vertices in the original engine.
package meshing

import (
	"github.com/go-gl/mathgl/mgl32"

	"voxelchunk/internal/profiling"
	"voxelchunk/internal/voxel"
	"voxelchunk/internal/world"
)

// Mesher emits the visible surface of one chunk as a stream of face
// records. It carries no state of its own: every call to Emit builds its
// own meshWorkspace, so distinct chunks can be meshed concurrently without
// sharing scratch (Design Note 5) — a prerequisite for spec §5's
// data-parallel meshing guarantee.
type Mesher struct{}

// meshWorkspace is the per-invocation scratch Design Note 5 calls for,
// replacing the original's function-scope statics: the voxel source, the
// shape being read, its palette, and the chunk's origin in shape space.
type meshWorkspace struct {
	source                     VoxelSource
	shape                      world.Shape
	palette                    voxel.Palette
	originX, originY, originZ int
}

type axialNeighbor struct {
	v                                        voxel.Voxel
	ok, solid, opaque, transparent, aoCaster bool
	lightCaster                              bool
}

// Emit meshes chunk against shape, writing opaque-voxel faces to opaqueOut
// and transparent-voxel faces to transparentOut (the same writer as opaqueOut
// when EnableTransparency is off). Voxels are visited x outer, z middle, y
// inner — the cache-friendly order spec.md §4.5 requires matching Chunk's
// storage layout — and faces within a voxel in the fixed order LEFT, RIGHT,
// BACK, FRONT, TOP, DOWN. The chunk's dirty flag is left untouched; the
// caller clears it after a successful Emit (spec.md §4.5, "Complete
// traversal").
func (Mesher) Emit(shape world.Shape, chunk *world.Chunk, opaqueOut, transparentOut FaceWriter) {
	defer profiling.Track("meshing.Mesher.Emit")()

	cx, cy, cz := chunk.Pos()
	ws := &meshWorkspace{
		shape:   shape,
		palette: shape.Palette(),
		originX: int(cx) * world.ChunkWidth,
		originY: int(cy) * world.ChunkHeight,
		originZ: int(cz) * world.ChunkDepth,
	}
	if oc, ok := shape.Octree(); ok {
		ws.source = octreeSource{octree: oc, originX: ws.originX, originY: ws.originY, originZ: ws.originZ}
	} else {
		ws.source = samplerSource{chunk: chunk}
	}

	transparentWriter := opaqueOut
	if EnableTransparency {
		transparentWriter = transparentOut
	}

	for x := 0; x < world.ChunkWidth; x++ {
		for z := 0; z < world.ChunkDepth; z++ {
			for y := 0; y < world.ChunkHeight; y++ {
				v := chunk.Get(x, y, z)
				if v.IsAir() {
					continue
				}
				ws.emitVoxel(x, y, z, v, opaqueOut, transparentWriter)
			}
		}
	}

	opaqueOut.Done()
	if transparentWriter != opaqueOut {
		transparentWriter.Done()
	}
}

// emitVoxel resolves the 6 axial neighbors once (spec.md §4.5 step 1), then
// decides and emits each visible face (steps 2-3).
func (ws *meshWorkspace) emitVoxel(x, y, z int, v voxel.Voxel, opaqueOut, transparentOut FaceWriter) {
	_, vOpaque, vTransparent, _, _ := voxel.Classify(v, ws.palette)
	// Looked up once per solid voxel, not once per face, matching the
	// original's per-voxel (not per-face) palette lookup.
	atlasIdx := ws.palette.AtlasIndex(v.ColorIndex)

	var axials [6]axialNeighbor
	for i, face := range faceOrder {
		off := faceAxial[face]
		nv, ok := ws.source.Sample(x+off[0], y+off[1], z+off[2])
		a := axialNeighbor{v: nv, ok: ok}
		if ok {
			a.solid, a.opaque, a.transparent, a.aoCaster, a.lightCaster = voxel.Classify(nv, ws.palette)
		} else {
			a.lightCaster = true
		}
		axials[i] = a
	}

	for i, face := range faceOrder {
		a := axials[i]

		var visible bool
		switch {
		case vOpaque:
			visible = !a.opaque
		case !ws.shape.DrawInnerTransparentFaces():
			visible = !a.solid
		default:
			visible = !a.solid || (a.transparent && a.v.ColorIndex != v.ColorIndex)
		}
		if !visible {
			continue
		}

		rec := ws.buildFace(x, y, z, v, face, atlasIdx, a)
		if vTransparent {
			transparentOut.Write(rec)
		} else {
			opaqueOut.Write(rec)
		}
	}
}

// buildFace fetches one face's 8-position ring (step 3a), computes each
// corner's AO (3b) and smoothed vertex light (3c), and assembles the record
// (3d).
func (ws *meshWorkspace) buildFace(x, y, z int, v voxel.Voxel, face FaceID, atlasIdx uint16, axial axialNeighbor) FaceRecord {
	offA := faceAxial[face]
	axialLight := ws.lightAt(x+offA[0], y+offA[1], z+offA[2], !axial.ok || axial.opaque)

	var ringAt [3][3]ringSample // indexed [du+1][dv+1]
	for _, duv := range ringCells {
		off := ringOffset(face, duv[0], duv[1])
		nv, ok := ws.source.Sample(x+off[0], y+off[1], z+off[2])
		var rs ringSample
		rs.ok = ok
		rs.voxel = nv
		if ok {
			_, _, _, rs.aoCaster, rs.lightCaster = voxel.Classify(nv, ws.palette)
		} else {
			rs.lightCaster = true
		}
		rs.light = ws.lightAt(x+off[0], y+off[1], z+off[2], !ok || voxel.Opaque(nv, ws.palette))
		ringAt[duv[0]+1][duv[1]+1] = rs
	}

	var ao AOCorners
	var vlights [4]world.VertexLight
	for i, c := range cornerOrder {
		e1 := ringAt[c.edge1[0]+1][c.edge1[1]+1]
		e2 := ringAt[c.edge2[0]+1][c.edge2[1]+1]
		dg := ringAt[c.diag[0]+1][c.diag[1]+1]

		ao[i] = computeAO(e1.aoCaster, e2.aoCaster, dg.aoCaster)

		vl := axialLight
		if GlobalLightingSmoothingEnabled && (e1.lightCaster || e2.lightCaster) {
			vl = smoothLight(axialLight, dg, e1, e2)
		}
		vlights[i] = vl
	}

	anchor := mgl32.Vec3{float32(x), float32(y), float32(z)}.Add(faceAnchor[face])
	return FaceRecord{
		Anchor:     anchor,
		AtlasColor: atlasIdx,
		Face:       face,
		AO:         ao,
		VLight:     vlights,
	}
}

// lightAt samples the shape's light grid at the chunk-local cell (lx,ly,lz),
// translating to absolute shape coordinates. useDefault matches
// shape_get_light_or_default's original call convention: true whenever the
// position itself would be un-lit (absent or opaque).
func (ws *meshWorkspace) lightAt(lx, ly, lz int, useDefault bool) world.VertexLight {
	return ws.shape.GetLightOrDefault(ws.originX+lx, ws.originY+ly, ws.originZ+lz, useDefault)
}
