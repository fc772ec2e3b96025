package lod

import (
	"fmt"
	"math"
	"sort"
	"testing"
)

func TestNewConfigDoublesDistances(t *testing.T) {
	c := NewConfig(4, 100)
	want := []float64{100, 200, 400, 800}
	got := c.Distances()
	if len(got) != len(want) {
		t.Fatalf("Distances() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("distances[%d] = %f, want %f", i, got[i], want[i])
		}
	}
}

func TestNewConfigClamps(t *testing.T) {
	if got := NewConfig(0, 100).Levels(); got != 1 {
		t.Errorf("levels = %d, want clamp to 1", got)
	}
	if got := NewConfig(20, 100).Levels(); got != 8 {
		t.Errorf("levels = %d, want clamp to 8", got)
	}
	if got := NewConfig(2, -5).Distances()[0]; got != 1 {
		t.Errorf("base distance = %f, want fallback to 1", got)
	}
}

func TestLevelForBands(t *testing.T) {
	c := NewConfig(4, 100)
	cases := []struct {
		distance float64
		want     int
	}{
		{0, 0}, {50, 0}, {99.9, 0},
		{100, 1}, {150, 1},
		{350, 2},
		{800, 3}, {10000, 3},
	}
	for _, tc := range cases {
		if got := c.LevelFor(tc.distance); got != tc.want {
			t.Errorf("LevelFor(%f) = %d, want %d", tc.distance, got, tc.want)
		}
	}
}

func TestLevelForMonotonic(t *testing.T) {
	c := NewConfig(5, 37.5)
	prev := 0
	for d := 0.0; d < 2000; d += 1.5 {
		level := c.LevelFor(d)
		if level < prev {
			t.Fatalf("level decreased from %d to %d at distance %f", prev, level, d)
		}
		prev = level
	}
}

func TestMorphFactorRamp(t *testing.T) {
	c := NewConfig(4, 100)

	// Level 1 band is [100, 200): flat zero through 180, then linear to 1.
	if got := c.MorphFactor(100, 1); got != 0 {
		t.Errorf("MorphFactor at band start = %f, want 0", got)
	}
	if got := c.MorphFactor(180, 1); got != 0 {
		t.Errorf("MorphFactor at 80%% of band = %f, want 0", got)
	}
	if got := c.MorphFactor(190, 1); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("MorphFactor mid-ramp = %f, want 0.5", got)
	}
	if got := c.MorphFactor(199.999, 1); got < 0.99 {
		t.Errorf("MorphFactor at band end = %f, want ≈1", got)
	}

	// Level 0 band is [0, 100).
	if got := c.MorphFactor(90, 0); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("MorphFactor(90, 0) = %f, want 0.5", got)
	}

	// The coarsest level never morphs.
	if got := c.MorphFactor(5000, 3); got != 0 {
		t.Errorf("MorphFactor at coarsest level = %f, want 0", got)
	}
}

func TestMorphFactorDisabled(t *testing.T) {
	c := NewConfig(4, 100)
	c.SetMorphEnabled(false)
	if got := c.MorphFactor(195, 1); got != 0 {
		t.Errorf("MorphFactor with morph disabled = %f, want 0", got)
	}
}

func TestSelect(t *testing.T) {
	c := NewConfig(4, 100)
	s := c.Select(190)
	if s.Level != 1 {
		t.Errorf("Select(190).Level = %d, want 1", s.Level)
	}
	if math.Abs(s.MorphFactor-0.5) > 1e-12 {
		t.Errorf("Select(190).MorphFactor = %f, want 0.5", s.MorphFactor)
	}
}

func TestResolutionHalving(t *testing.T) {
	cases := []struct {
		base, level, want int
	}{
		{64, 0, 64}, {64, 1, 32}, {64, 2, 16}, {64, 3, 8},
		{64, 6, 2}, {64, 10, 2},
		{8, 2, 2}, {8, 3, 2},
	}
	for _, tc := range cases {
		if got := Resolution(tc.base, tc.level); got != tc.want {
			t.Errorf("Resolution(%d, %d) = %d, want %d", tc.base, tc.level, got, tc.want)
		}
	}
}

func TestGenerateIndicesCount(t *testing.T) {
	if got := len(GenerateIndices(4, 0)); got != 54 {
		t.Errorf("GenerateIndices(4, 0) has %d indices, want 54", got)
	}
	// 16 vertices per side at level 1 → 15×15 quads.
	if got := len(GenerateIndices(32, 1)); got != 15*15*6 {
		t.Errorf("GenerateIndices(32, 1) has %d indices, want %d", got, 15*15*6)
	}
}

func TestStitchedAllFineMatchesPlain(t *testing.T) {
	for _, res := range []int{4, 8, 16, 33} {
		plain := GenerateIndices(res, 0)
		stitched := GenerateStitchedIndices(res, 0, Uniform(0))
		if len(stitched) != len(plain) {
			t.Errorf("res %d: stitched all-fine has %d indices, plain has %d",
				res, len(stitched), len(plain))
		}
		if tris := triangleSet(t, stitched, res); len(tris) != len(plain)/3 {
			t.Errorf("res %d: stitched all-fine has duplicate triangles", res)
		}
	}
}

func TestStitchedCoarseNorthCount(t *testing.T) {
	// 5 vertices per side, north neighbor one level coarser: the north fan
	// drops one triangle per coarse segment versus the fine strip.
	got := GenerateStitchedIndices(5, 0, NeighborLevels{North: 1})
	if len(got) != 90 {
		t.Errorf("coarse-north stitched mesh has %d indices, want 90", len(got))
	}
}

func TestStitchedWindingAndCoverage(t *testing.T) {
	res := 8
	configs := []NeighborLevels{
		Uniform(0),
		{North: 1},
		{North: 1, South: 2, East: 1, West: 3},
		{North: 3, South: 3, East: 3, West: 3},
	}
	for _, nl := range configs {
		indices := GenerateStitchedIndices(res, 0, nl)
		n := Resolution(res, 0)

		area := 0.0
		for i := 0; i < len(indices); i += 3 {
			ax, az := vertexPos(indices[i], n)
			bx, bz := vertexPos(indices[i+1], n)
			cx, cz := vertexPos(indices[i+2], n)
			// Twice the signed area; positive means counter-clockwise
			// seen from +Y.
			cross := (bz-az)*(cx-ax) - (bx-ax)*(cz-az)
			if cross <= 0 {
				t.Fatalf("neighbors %+v: triangle %d has non-CCW winding", nl, i/3)
			}
			area += cross / 2
		}

		want := float64((n - 1) * (n - 1))
		if math.Abs(area-want) > 1e-9 {
			t.Errorf("neighbors %+v: covered area = %f, want %f", nl, area, want)
		}
		triangleSet(t, indices, res)
	}
}

func TestStitchedExtremeCoarseNeighbor(t *testing.T) {
	// The step clamps to the edge length: a huge level difference fans the
	// whole edge from one boundary corner to the other.
	indices := GenerateStitchedIndices(8, 0, NeighborLevels{North: 7})
	n := 8
	for i := 0; i < len(indices); i += 3 {
		for j := 0; j < 3; j++ {
			if int(indices[i+j]) >= n*n {
				t.Fatalf("index %d out of range", indices[i+j])
			}
		}
	}
}

func TestStitchLevel(t *testing.T) {
	if got := StitchLevel(1, 3); got != 2 {
		t.Errorf("StitchLevel(1, 3) = %d, want 2", got)
	}
	if got := StitchLevel(3, 1); got != 0 {
		t.Errorf("StitchLevel(3, 1) = %d, want 0 (finer neighbor)", got)
	}
	if got := StitchLevel(2, 2); got != 0 {
		t.Errorf("StitchLevel(2, 2) = %d, want 0", got)
	}
}

// triangleSet asserts every triangle is non-degenerate, in range, and unique,
// and returns the set keyed by sorted vertex triple.
func triangleSet(t *testing.T, indices []uint32, res int) map[string]bool {
	t.Helper()
	n := Resolution(res, 0)
	seen := make(map[string]bool)
	for i := 0; i < len(indices); i += 3 {
		tri := []uint32{indices[i], indices[i+1], indices[i+2]}
		if tri[0] == tri[1] || tri[1] == tri[2] || tri[0] == tri[2] {
			t.Fatalf("degenerate triangle %v", tri)
		}
		for _, idx := range tri {
			if int(idx) >= n*n {
				t.Fatalf("index %d out of range for %d vertices", idx, n*n)
			}
		}
		sorted := append([]uint32(nil), tri...)
		sort.Slice(sorted, func(a, b int) bool { return sorted[a] < sorted[b] })
		key := fmt.Sprint(sorted)
		if seen[key] {
			t.Fatalf("duplicate triangle %v", tri)
		}
		seen[key] = true
	}
	return seen
}

func vertexPos(idx uint32, n int) (x, z float64) {
	return float64(int(idx) % n), float64(int(idx) / n)
}
