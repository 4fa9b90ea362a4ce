package meshing

import (
	"voxelchunk/internal/voxel"
	"voxelchunk/internal/world"
)

// ringSample is one of a face's 8 diagonal/edge ring positions, carrying
// both flags the AO/light-smoothing steps need plus the sampled light value
// (spec.md §4.5 step 3a: "each of the 8 positions contributes two flags...
// and a sampled vlight").
type ringSample struct {
	ok          bool
	voxel       voxel.Voxel
	aoCaster    bool
	lightCaster bool
	light       world.VertexLight
}

// computeAO implements the 4-way corner formula of spec.md §4.5 step 3b.
// s1, s2 are the two edge-neighbor AO-caster flags adjacent to the corner;
// c is the corner-diagonal AO-caster flag.
func computeAO(s1, s2, c bool) uint8 {
	switch {
	case s1 && s2:
		return 3
	case c && (s1 || s2):
		return 2
	case c || s1 || s2:
		return 1
	default:
		return 0
	}
}

// smoothLight implements spec.md §4.5 step 3c's vertex-light smoothing: the
// axial sample is the base value; each of the three ring samples (the two
// edges and the diagonal) whose light-caster flag is set contributes to a
// running average for r/g/b, and to the active ambient policy
// (average/min/max, a compile-time constant).
func smoothLight(axial world.VertexLight, diag, edge1, edge2 ringSample) world.VertexLight {
	type contribution struct {
		flag  bool
		light world.VertexLight
	}
	samples := [3]contribution{
		{diag.lightCaster, diag.light},
		{edge1.lightCaster, edge1.light},
		{edge2.lightCaster, edge2.light},
	}

	rAcc, gAcc, bAcc := int(axial.R), int(axial.G), int(axial.B)
	rCount, gCount, bCount := 1, 1, 1
	aAcc, aCount := int(axial.Ambient), 1
	aMin, aMax := int(axial.Ambient), int(axial.Ambient)

	for _, s := range samples {
		if !s.flag {
			continue
		}
		rAcc += int(s.light.R)
		rCount++
		gAcc += int(s.light.G)
		gCount++
		bAcc += int(s.light.B)
		bCount++
		aAcc += int(s.light.Ambient)
		aCount++
		if int(s.light.Ambient) < aMin {
			aMin = int(s.light.Ambient)
		}
		if int(s.light.Ambient) > aMax {
			aMax = int(s.light.Ambient)
		}
	}

	var ambient uint8
	switch VertexLightSmoothing {
	case LightSmoothingMin:
		ambient = uint8(aMin & 0x0F)
	case LightSmoothingMax:
		ambient = uint8(aMax & 0x0F)
	default:
		ambient = uint8((aAcc / aCount) & 0x0F)
	}

	return world.VertexLight{
		Ambient: ambient,
		R:       uint8((rAcc / rCount) & 0x0F),
		G:       uint8((gAcc / gCount) & 0x0F),
		B:       uint8((bAcc / bCount) & 0x0F),
	}
}
