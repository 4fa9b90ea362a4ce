// Package voxel defines the voxel value stored in a chunk slot and the
// palette-derived predicates the mesher uses to decide face visibility,
// ambient-occlusion casting, and light casting.
package voxel

// AirColorIndex is the reserved palette index meaning "no voxel here". A
// Voxel's zero value is air, so an empty chunk slot needs no sentinel beyond
// the type's zero value.
const AirColorIndex uint16 = 0

// TransparentIsAOCaster is a compile-time knob (spec.md Design Note 6):
// when true, transparent solid voxels also cast ambient occlusion, not just
// opaque ones. Off by default, matching the original engine's default build.
const TransparentIsAOCaster = false

// Voxel stores a palette color index. The zero value represents an empty
// (air) slot.
type Voxel struct {
	ColorIndex uint16
}

// IsAir reports whether the voxel is the reserved air color.
func (v Voxel) IsAir() bool {
	return v.ColorIndex == AirColorIndex
}

// Palette maps a color index to atlas/transparency information. The real
// palette (texture atlas, color table) lives outside this module; this is
// the narrow interface the mesher reads through.
type Palette interface {
	// AtlasIndex returns the texture-atlas slot for a color index.
	AtlasIndex(color uint16) uint16
	// IsTransparent reports whether a color index is classified transparent.
	IsTransparent(color uint16) bool
}

// Solid reports whether v occupies space at all (is not air).
func Solid(v Voxel) bool {
	return !v.IsAir()
}

// Opaque reports whether v is solid and fully occluding.
func Opaque(v Voxel, p Palette) bool {
	return Solid(v) && !p.IsTransparent(v.ColorIndex)
}

// Transparent reports whether v is solid but admits light/vision.
func Transparent(v Voxel, p Palette) bool {
	return Solid(v) && p.IsTransparent(v.ColorIndex)
}

// AOCaster reports whether v should darken adjacent corners during ambient
// occlusion computation. Normally only opaque voxels cast AO; with
// TransparentIsAOCaster enabled, any solid voxel does.
func AOCaster(v Voxel, p Palette) bool {
	if TransparentIsAOCaster {
		return Solid(v)
	}
	return Opaque(v, p)
}

// LightCaster reports whether v lets light propagate from it, which is true
// exactly for non-solid (air) positions.
func LightCaster(v Voxel) bool {
	return !Solid(v)
}

// Classify computes all five palette-derived predicates with a single
// palette lookup, matching the combined classifier block_is_any() exposes in
// the original engine so callers need not repeat the lookup per flag.
func Classify(v Voxel, p Palette) (solid, opaque, transparent, aoCaster, lightCaster bool) {
	solid = Solid(v)
	if !solid {
		return false, false, false, false, true
	}
	transparent = p.IsTransparent(v.ColorIndex)
	opaque = !transparent
	if TransparentIsAOCaster {
		aoCaster = true
	} else {
		aoCaster = opaque
	}
	lightCaster = false
	return
}
