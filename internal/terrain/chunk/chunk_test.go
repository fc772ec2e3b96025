package chunk

import (
	"math"
	"testing"
)

func TestCoordDistanceChebyshev(t *testing.T) {
	cases := []struct {
		a, b Coord
		want int
	}{
		{Coord{0, 0}, Coord{3, 4}, 4},
		{Coord{0, 0}, Coord{-3, 4}, 4},
		{Coord{2, 2}, Coord{2, 2}, 0},
		{Coord{-5, 0}, Coord{5, 0}, 10},
		{Coord{1, 1}, Coord{2, -7}, 8},
	}
	for _, c := range cases {
		if got := c.a.DistanceTo(c.b); got != c.want {
			t.Errorf("DistanceTo(%v, %v) = %d, want %d", c.a, c.b, got, c.want)
		}
		if got := c.b.DistanceTo(c.a); got != c.want {
			t.Errorf("distance not symmetric for %v, %v", c.a, c.b)
		}
	}
}

func TestCoordAtFloors(t *testing.T) {
	if got := (CoordAt(10, 10, 64)); got != (Coord{0, 0}) {
		t.Errorf("CoordAt(10,10) = %v, want {0 0}", got)
	}
	if got := (CoordAt(-1, -1, 64)); got != (Coord{-1, -1}) {
		t.Errorf("CoordAt(-1,-1) = %v, want {-1 -1}", got)
	}
	if got := (CoordAt(64, 127.9, 64)); got != (Coord{1, 1}) {
		t.Errorf("CoordAt(64,127.9) = %v, want {1 1}", got)
	}
}

func TestNewDataClampsResolution(t *testing.T) {
	if got := NewData(2).Resolution(); got != MinResolution {
		t.Errorf("resolution = %d, want clamp to %d", got, MinResolution)
	}
	if got := NewData(10000).Resolution(); got != MaxResolution {
		t.Errorf("resolution = %d, want clamp to %d", got, MaxResolution)
	}
	if got := NewData(33).Resolution(); got != 33 {
		t.Errorf("resolution = %d, want 33", got)
	}
}

func TestDataSampleBilinear(t *testing.T) {
	d := NewData(8)
	heights := make([]float64, 64)
	for i := range heights {
		heights[i] = float64(i) / 63
	}
	d.SetHeights(heights)

	if got := d.Sample(0, 0); got != heights[0] {
		t.Errorf("Sample(0,0) = %f, want heights[0] = %f", got, heights[0])
	}
	if got := d.Sample(1, 1); got != heights[63] {
		t.Errorf("Sample(1,1) = %f, want heights[last] = %f", got, heights[63])
	}
	if got := d.Sample(1, 0); got != heights[7] {
		t.Errorf("Sample(1,0) = %f, want %f", got, heights[7])
	}

	// Linear along an axis: midpoint between two adjacent corner samples.
	u := 0.5 / 7 // halfway between x=0 and x=1 on row 0
	want := (heights[0] + heights[1]) / 2
	if got := d.Sample(u, 0); math.Abs(got-want) > 1e-12 {
		t.Errorf("Sample(%f,0) = %f, want %f", u, got, want)
	}

	// Out-of-range inputs clamp instead of exploding.
	if got := d.Sample(-3, 42); got != d.Sample(0, 1) {
		t.Errorf("clamped sample = %f, want %f", got, d.Sample(0, 1))
	}
}

func TestDataBounds(t *testing.T) {
	d := NewData(8)
	heights := make([]float64, 64)
	for i := range heights {
		heights[i] = 0.5
	}
	heights[10] = 0.1
	heights[50] = 0.9
	d.SetHeights(heights)

	min, max := d.Bounds()
	if min != 0.1 || max != 0.9 {
		t.Errorf("Bounds() = (%f, %f), want (0.1, 0.9)", min, max)
	}
}

func TestDataSetHeightsWrongLengthIgnored(t *testing.T) {
	d := NewData(8)
	d.SetHeights([]float64{1, 2, 3})
	if got := d.Heights()[0]; got != 0 {
		t.Errorf("wrong-length SetHeights mutated data: heights[0] = %f", got)
	}
}

func TestDataLodLevelDirtiesOnChange(t *testing.T) {
	d := NewData(8)
	d.MarkMeshBuilt()
	d.SetLodLevel(0) // unchanged
	if d.MeshDirty() {
		t.Error("setting the same LOD level should not dirty the mesh")
	}
	d.SetLodLevel(2)
	if !d.MeshDirty() {
		t.Error("changing the LOD level should dirty the mesh")
	}
}
