package meshing

// Compile-time knobs (spec.md §6, Design Note 6). These are Go constants,
// never runtime configuration, so the branches they guard collapse at
// compile time the same way the original engine's #ifdef/#if blocks do.

// EnableTransparency gates whether transparent voxels route to a distinct
// writer (true) or share the opaque writer (false).
const EnableTransparency = true

// GlobalLightingSmoothingEnabled gates whether vertex light is smoothed
// against ring samples at all. When false, VertexLightSmoothing step is a
// no-op and the axial sample is used verbatim.
const GlobalLightingSmoothingEnabled = true

// LightSmoothingPolicy selects how the ambient channel is combined during
// vertex-light smoothing; the RGB channels always average.
type LightSmoothingPolicy int

const (
	LightSmoothingAverage LightSmoothingPolicy = iota
	LightSmoothingMin
	LightSmoothingMax
)

// VertexLightSmoothing is the active ambient-channel policy.
const VertexLightSmoothing = LightSmoothingAverage
