package meshing

import (
	"github.com/go-gl/mathgl/mgl32"

	"voxelchunk/internal/world"
)

// FaceID names one of a voxel's 6 faces. Values are chosen from rendering
// semantics rather than the original engine's labels, which the spec (Open
// Question 3) notes are swapped for BACK/FRONT; this ordering is also the
// fixed emission order spec.md §5 requires.
type FaceID int

const (
	FaceLeft FaceID = iota
	FaceRight
	FaceBack  // quad at z-1, facing -Z
	FaceFront // quad at z+1, facing +Z
	FaceTop
	FaceDown
)

func (f FaceID) String() string {
	switch f {
	case FaceLeft:
		return "LEFT"
	case FaceRight:
		return "RIGHT"
	case FaceBack:
		return "BACK"
	case FaceFront:
		return "FRONT"
	case FaceTop:
		return "TOP"
	case FaceDown:
		return "DOWN"
	default:
		return "UNKNOWN"
	}
}

// AOCorners holds the four per-corner ambient-occlusion values (0..3) of one
// face, in the fixed winding order spec.md §4.5 defines per face.
type AOCorners [4]uint8

// FaceRecord is one emitted quad: spec.md §4.5's record shape.
type FaceRecord struct {
	Anchor     mgl32.Vec3
	AtlasColor uint16
	Face       FaceID
	AO         AOCorners
	VLight     [4]world.VertexLight
}

// FaceWriter accepts face records; placement/packing into the vertex-buffer
// arena is opaque to the core (spec.md §1, §6). The mesher calls Write once
// per visible face and Done once per writer at the end of a traversal.
type FaceWriter interface {
	Write(rec FaceRecord)
	Done()
}

// SliceWriter is a reference FaceWriter that simply records every face into
// a slice, for tests and simple embedders.
type SliceWriter struct {
	Faces []FaceRecord
	done  bool
}

// Write implements FaceWriter.
func (w *SliceWriter) Write(rec FaceRecord) {
	w.Faces = append(w.Faces, rec)
}

// Done implements FaceWriter.
func (w *SliceWriter) Done() {
	w.done = true
}

// Flushed reports whether Done has been called.
func (w *SliceWriter) Flushed() bool {
	return w.done
}
