package world

import "voxelchunk/internal/voxel"

// VertexLight is a (ambient, r, g, b) tuple of 4-bit channels sampled from
// the shape's light grid (spec.md GLOSSARY). Each field is stored as a full
// byte for addressability but callers must only ever set the low nibble
// (0..15); Mesher masks with 0x0F wherever the spec requires it.
type VertexLight struct {
	Ambient, R, G, B uint8
}

// DefaultVertexLight is what GetLightOrDefault returns when useDefault is
// true — full ambient, no color, matching the original engine's fallback for
// positions that have never been lit (absent or opaque-occluded).
var DefaultVertexLight = VertexLight{Ambient: 15}

// Shape is the owning object a chunk belongs to (spec.md §1, §6): it exposes
// the optional octree accelerator, the palette, per-voxel light samples, and
// one rendering policy flag. Out of scope as a real implementation — this is
// the narrow interface Mesher reads through.
type Shape interface {
	// Octree returns the shape's sparse accelerator, if it has one.
	Octree() (Octree, bool)
	// Palette returns the shape's color palette.
	Palette() voxel.Palette
	// GetLightOrDefault samples the light grid at absolute shape coordinates.
	// When useDefault is true the caller has already determined the sample
	// would be meaningless (position absent or opaque), and the shape must
	// return DefaultVertexLight instead of consulting its grid.
	GetLightOrDefault(x, y, z int, useDefault bool) VertexLight
	// DrawInnerTransparentFaces reports whether adjacent same-opacity
	// transparent voxels of different colors should still emit a shared
	// face (spec.md §4.5 step 2, third bullet).
	DrawInnerTransparentFaces() bool
}

// DefaultShape is a reference Shape: a flat light-sample map plus an
// optional octree and palette, sized for tests rather than a real game
// world. Grounded on the same map-based storage idiom as MapChunkIndex.
type DefaultShape struct {
	octree                     Octree
	palette                    voxel.Palette
	lights                     map[[3]int]VertexLight
	drawInnerTransparentFaces bool
}

// NewDefaultShape returns a shape with no octree, the given palette, and an
// empty light grid (every unset position reads as the zero VertexLight when
// useDefault is false).
func NewDefaultShape(palette voxel.Palette) *DefaultShape {
	return &DefaultShape{
		palette: palette,
		lights:  make(map[[3]int]VertexLight),
	}
}

// SetOctree attaches an accelerator (nil clears it).
func (s *DefaultShape) SetOctree(o Octree) { s.octree = o }

// SetDrawInnerTransparentFaces sets the rendering policy flag.
func (s *DefaultShape) SetDrawInnerTransparentFaces(v bool) { s.drawInnerTransparentFaces = v }

// SetLight stores a light sample at absolute shape coordinates.
func (s *DefaultShape) SetLight(x, y, z int, l VertexLight) {
	s.lights[[3]int{x, y, z}] = l
}

// Octree implements Shape.
func (s *DefaultShape) Octree() (Octree, bool) {
	return s.octree, s.octree != nil
}

// Palette implements Shape.
func (s *DefaultShape) Palette() voxel.Palette {
	return s.palette
}

// GetLightOrDefault implements Shape.
func (s *DefaultShape) GetLightOrDefault(x, y, z int, useDefault bool) VertexLight {
	if useDefault {
		return DefaultVertexLight
	}
	return s.lights[[3]int{x, y, z}]
}

// DrawInnerTransparentFaces implements Shape.
func (s *DefaultShape) DrawInnerTransparentFaces() bool {
	return s.drawInnerTransparentFaces
}
