package meshing

import "github.com/go-gl/mathgl/mgl32"

// faceOrder is the fixed visitation order spec.md §4.5 step 3 and §5 require
// for deterministic emission.
var faceOrder = [6]FaceID{FaceLeft, FaceRight, FaceBack, FaceFront, FaceTop, FaceDown}

// faceAxial is the axis-aligned neighbor offset that determines a face's
// visibility (spec.md §4.5 step 1-2): the single voxel directly across that
// face.
var faceAxial = map[FaceID][3]int{
	FaceLeft:  {-1, 0, 0},
	FaceRight: {1, 0, 0},
	FaceBack:  {0, 0, -1},
	FaceFront: {0, 0, 1},
	FaceTop:   {0, 1, 0},
	FaceDown:  {0, -1, 0},
}

// faceAnchor is the anchor offset table of spec.md §4.5 ("Anchor offsets per
// face"), local to the voxel's min corner.
var faceAnchor = map[FaceID]mgl32.Vec3{
	FaceLeft:  {0, 0.5, 0.5},
	FaceRight: {1, 0.5, 0.5},
	FaceBack:  {0.5, 0.5, 0},
	FaceFront: {0.5, 0.5, 1},
	FaceTop:   {0.5, 1, 0.5},
	FaceDown:  {0.5, 0, 0.5},
}

// faceAxes describes how a face's ring plane embeds into (x,y,z): the
// ring's two free axes (u then v) and the fixed (normal) axis and its sign,
// which equals faceAxial's nonzero component. Generalizes the original's
// LEFT-face ring (fixed x=-1, varying y,z) to the other five faces by
// rotating which axis is fixed (spec.md §4.5, "the same pattern (rotate the
// ring) applies to the remaining five faces").
type faceAxes struct {
	normalAxis         int // 0=x, 1=y, 2=z
	normalSign         int
	uAxis, vAxis       int
}

var faceAxesTable = map[FaceID]faceAxes{
	FaceLeft:  {normalAxis: 0, normalSign: -1, uAxis: 1, vAxis: 2},
	FaceRight: {normalAxis: 0, normalSign: 1, uAxis: 1, vAxis: 2},
	FaceBack:  {normalAxis: 2, normalSign: -1, uAxis: 0, vAxis: 1},
	FaceFront: {normalAxis: 2, normalSign: 1, uAxis: 0, vAxis: 1},
	FaceTop:   {normalAxis: 1, normalSign: 1, uAxis: 0, vAxis: 2},
	FaceDown:  {normalAxis: 1, normalSign: -1, uAxis: 0, vAxis: 2},
}

// ringOffset returns the (dx,dy,dz) offset of a ring cell at in-plane
// coordinates (du,dv), each in {-1,0,1}, for the given face.
func ringOffset(face FaceID, du, dv int) [3]int {
	a := faceAxesTable[face]
	var off [3]int
	off[a.normalAxis] = a.normalSign
	off[a.uAxis] = du
	off[a.vAxis] = dv
	return off
}

// cornerSpec names the two edge-neighbor ring cells and the corner-diagonal
// ring cell that feed one corner's AO and light-smoothing computation
// (spec.md §4.5 step 3b/3c).
type cornerSpec struct {
	edge1, edge2, diag [2]int // (du,dv) ring coordinates
}

// cornerOrder is the 4-corner winding shared by all faces once projected
// through faceAxes: walking (du,dv) clockwise through the four
// off-axis quadrants, pairing each corner with the two edge cells adjacent
// to it and the one diagonal cell, exactly as chunk.c does for its LEFT
// face's ao1..ao4 (bottomLeft/leftFront/bottomLeftFront, rotated for the
// other three corners).
var cornerOrder = [4]cornerSpec{
	{edge1: [2]int{-1, 0}, edge2: [2]int{0, 1}, diag: [2]int{-1, 1}},
	{edge1: [2]int{1, 0}, edge2: [2]int{0, 1}, diag: [2]int{1, 1}},
	{edge1: [2]int{1, 0}, edge2: [2]int{0, -1}, diag: [2]int{1, -1}},
	{edge1: [2]int{-1, 0}, edge2: [2]int{0, -1}, diag: [2]int{-1, -1}},
}

// ringCells are the 8 (du,dv) ring coordinates surrounding the axial center,
// in the fixed order the original's named locals enumerate them
// (topLeftBack, topLeft, topLeftFront, leftBack, leftFront, bottomLeftBack,
// bottomLeft, bottomLeftFront, generalized here as a (du,dv) walk).
var ringCells = [8][2]int{
	{1, -1}, {1, 0}, {1, 1},
	{0, -1} /* center (0,0) excluded */, {0, 1},
	{-1, -1}, {-1, 0}, {-1, 1},
}
