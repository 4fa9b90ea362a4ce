package world

import (
	"testing"

	"voxelchunk/internal/voxel"
)

func TestNewChunkIsEmpty(t *testing.T) {
	c := NewChunk(0, 0, 0)
	if c.Count() != 0 {
		t.Fatalf("new chunk count = %d, want 0", c.Count())
	}
	if _, ok := c.BBox(); ok {
		t.Fatal("bbox of empty chunk reported non-empty")
	}
}

func TestAddGetRoundTrip(t *testing.T) {
	c := NewChunk(0, 0, 0)
	v := voxel.Voxel{ColorIndex: 7}
	if !c.Add(1, 2, 3, v) {
		t.Fatal("Add returned false on empty slot")
	}
	if c.Count() != 1 {
		t.Fatalf("count = %d, want 1", c.Count())
	}
	if got := c.Get(1, 2, 3); got != v {
		t.Fatalf("Get = %+v, want %+v", got, v)
	}
}

func TestAddRejectsOccupiedSlot(t *testing.T) {
	c := NewChunk(0, 0, 0)
	v1 := voxel.Voxel{ColorIndex: 1}
	v2 := voxel.Voxel{ColorIndex: 2}
	c.Add(0, 0, 0, v1)
	if c.Add(0, 0, 0, v2) {
		t.Fatal("Add into occupied slot returned true")
	}
	if got := c.Get(0, 0, 0); got != v1 {
		t.Fatalf("occupied slot was overwritten: got %+v", got)
	}
}

func TestAddRejectsAirVoxel(t *testing.T) {
	c := NewChunk(0, 0, 0)
	if c.Add(0, 0, 0, voxel.Voxel{}) {
		t.Fatal("Add accepted the air voxel")
	}
	if c.Count() != 0 {
		t.Fatalf("count = %d, want 0", c.Count())
	}
}

func TestRemoveRestoresCount(t *testing.T) {
	c := NewChunk(0, 0, 0)
	c.Add(4, 4, 4, voxel.Voxel{ColorIndex: 9})
	before := c.Count()
	if !c.Remove(4, 4, 4) {
		t.Fatal("Remove returned false on occupied slot")
	}
	if c.Count() != before-1 {
		t.Fatalf("count after remove = %d, want %d", c.Count(), before-1)
	}
	if !c.Get(4, 4, 4).IsAir() {
		t.Fatal("slot still occupied after Remove")
	}
	if c.Remove(4, 4, 4) {
		t.Fatal("Remove on empty slot returned true")
	}
}

func TestPaintOnlyChangesOccupiedSlots(t *testing.T) {
	c := NewChunk(0, 0, 0)
	if c.Paint(0, 0, 0, 5) {
		t.Fatal("Paint changed an empty slot")
	}
	c.Add(0, 0, 0, voxel.Voxel{ColorIndex: 1})
	if !c.Paint(0, 0, 0, 2) {
		t.Fatal("Paint on occupied slot returned false")
	}
	if got := c.Get(0, 0, 0).ColorIndex; got != 2 {
		t.Fatalf("color after paint = %d, want 2", got)
	}
	if c.Paint(0, 0, 0, 2) {
		t.Fatal("Paint with identical color reported a change")
	}
}

func TestGetOutOfRangeReturnsAir(t *testing.T) {
	c := NewChunk(0, 0, 0)
	c.Add(0, 0, 0, voxel.Voxel{ColorIndex: 1})
	if got := c.Get(-1, 0, 0); !got.IsAir() {
		t.Fatalf("out-of-range Get = %+v, want air", got)
	}
	if got := c.Get(ChunkWidth, 0, 0); !got.IsAir() {
		t.Fatalf("out-of-range Get = %+v, want air", got)
	}
}

func TestBBoxCoversAllOccupiedCells(t *testing.T) {
	c := NewChunk(0, 0, 0)
	c.Add(2, 3, 1, voxel.Voxel{ColorIndex: 1})
	c.Add(5, 0, 4, voxel.Voxel{ColorIndex: 1})
	box, ok := c.BBox()
	if !ok {
		t.Fatal("bbox reported empty for populated chunk")
	}
	want := Box{MinX: 2, MinY: 0, MinZ: 1, MaxX: 6, MaxY: 4, MaxZ: 5}
	if box != want {
		t.Fatalf("bbox = %+v, want %+v", box, want)
	}
}

func TestDirtyFlag(t *testing.T) {
	c := NewChunk(0, 0, 0)
	if c.IsDirty() {
		t.Fatal("new chunk starts dirty")
	}
	c.Add(0, 0, 0, voxel.Voxel{ColorIndex: 1})
	if !c.IsDirty() {
		t.Fatal("mutation did not set dirty flag")
	}
	c.SetDirty(false)
	if c.IsDirty() {
		t.Fatal("SetDirty(false) did not clear the flag")
	}
}

func TestVBMARoundTrip(t *testing.T) {
	c := NewChunk(0, 0, 0)
	if _, ok := c.VBMA(ArenaOpaque); ok {
		t.Fatal("fresh chunk reports an opaque arena handle")
	}
	c.AttachVBMA(ArenaOpaque, 42)
	h, ok := c.VBMA(ArenaOpaque)
	if !ok || h != 42 {
		t.Fatalf("VBMA(ArenaOpaque) = (%v, %v), want (42, true)", h, ok)
	}
	if _, ok := c.VBMA(ArenaTransparent); ok {
		t.Fatal("transparent arena handle set unexpectedly")
	}
}
