package chunk

import (
	"math"

	"github.com/terraforge/terrain/internal/terrain/heightmap"
)

const (
	// MinResolution and MaxResolution bound the per-side sample count of a
	// chunk. Values outside the range are clamped at construction.
	MinResolution = 8
	MaxResolution = 256
)

// Data is a fixed-resolution grid of normalized elevation samples for one
// chunk, plus rendering bookkeeping. Heights are row-major with x fastest:
// index = z*resolution + x.
type Data struct {
	heights    []float64
	resolution int
	lodLevel   int
	meshDirty  bool
	minHeight  float64
	maxHeight  float64
}

// NewData creates an empty (all-zero) chunk at the given resolution,
// clamped to [MinResolution, MaxResolution].
func NewData(resolution int) *Data {
	if resolution < MinResolution {
		resolution = MinResolution
	}
	if resolution > MaxResolution {
		resolution = MaxResolution
	}
	return &Data{
		heights:    make([]float64, resolution*resolution),
		resolution: resolution,
		meshDirty:  true,
	}
}

// Resolution returns the per-side sample count.
func (d *Data) Resolution() int { return d.resolution }

// Heights exposes the raw sample buffer read-only; callers must not mutate
// it between ticks.
func (d *Data) Heights() []float64 { return d.heights }

// Bounds returns the (min, max) of the current samples.
func (d *Data) Bounds() (min, max float64) { return d.minHeight, d.maxHeight }

// LodLevel returns the detail level the chunk was last meshed at.
func (d *Data) LodLevel() int { return d.lodLevel }

// SetLodLevel records a new detail level and marks the mesh dirty if it
// changed.
func (d *Data) SetLodLevel(level int) {
	if level != d.lodLevel {
		d.lodLevel = level
		d.meshDirty = true
	}
}

// MeshDirty reports whether the mesh must be rebuilt.
func (d *Data) MeshDirty() bool { return d.meshDirty }

// MarkMeshBuilt clears the dirty flag after a mesh rebuild.
func (d *Data) MarkMeshBuilt() { d.meshDirty = false }

// SetHeights replaces the sample buffer. A buffer of the wrong length is
// ignored. Bounds are recomputed and the mesh marked dirty.
func (d *Data) SetHeights(heights []float64) {
	if len(heights) != len(d.heights) {
		return
	}
	copy(d.heights, heights)
	d.recomputeBounds()
	d.meshDirty = true
}

// Populate fills the chunk by sampling hm over the chunk's world-space grid.
func (d *Data) Populate(hm *heightmap.Heightmap, coord Coord, chunkWorldSize float64) {
	ox, oz := coord.WorldOrigin(chunkWorldSize)
	step := chunkWorldSize / float64(d.resolution-1)
	for z := 0; z < d.resolution; z++ {
		for x := 0; x < d.resolution; x++ {
			wx := ox + float64(x)*step
			wz := oz + float64(z)*step
			d.heights[z*d.resolution+x] = hm.Sample(wx, wz)
		}
	}
	d.recomputeBounds()
	d.meshDirty = true
}

// Sample bilinearly interpolates the height field at normalized coordinates
// u, v in [0,1]. Inputs outside the range are clamped.
func (d *Data) Sample(u, v float64) float64 {
	if !(u > 0) {
		u = 0
	} else if u > 1 {
		u = 1
	}
	if !(v > 0) {
		v = 0
	} else if v > 1 {
		v = 1
	}

	n := d.resolution
	fx := u * float64(n-1)
	fz := v * float64(n-1)
	x0 := int(fx)
	z0 := int(fz)
	if x0 > n-2 {
		x0 = n - 2
	}
	if z0 > n-2 {
		z0 = n - 2
	}
	tx := fx - float64(x0)
	tz := fz - float64(z0)

	h00 := d.heights[z0*n+x0]
	h10 := d.heights[z0*n+x0+1]
	h01 := d.heights[(z0+1)*n+x0]
	h11 := d.heights[(z0+1)*n+x0+1]

	top := h00 + (h10-h00)*tx
	bottom := h01 + (h11-h01)*tx
	return top + (bottom-top)*tz
}

func (d *Data) recomputeBounds() {
	min := math.MaxFloat64
	max := -math.MaxFloat64
	for _, h := range d.heights {
		if h < min {
			min = h
		}
		if h > max {
			max = h
		}
	}
	d.minHeight = min
	d.maxHeight = max
}
