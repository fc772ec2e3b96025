package heightmap

import "github.com/terraforge/terrain/internal/terrain/noise"

// MaxLayers is the number of noise layers a heightmap composites; extra
// layers passed to New are ignored.
const MaxLayers = 4

// Heightmap composites an ordered set of noise layers, and optionally a
// falloff mask, into a single normalized elevation per world coordinate.
type Heightmap struct {
	layers  []noise.Layer
	falloff Falloff
	seed    uint64
}

// New builds a Heightmap from up to MaxLayers layers. falloff may be nil.
func New(seed uint64, layers []noise.Layer, falloff Falloff) *Heightmap {
	if len(layers) > MaxLayers {
		layers = layers[:MaxLayers]
	}
	h := &Heightmap{
		layers:  make([]noise.Layer, len(layers)),
		falloff: falloff,
		seed:    seed,
	}
	copy(h.layers, layers)
	return h
}

// Seed returns the heightmap's base seed.
func (h *Heightmap) Seed() uint64 { return h.seed }

// Layers returns a copy of the configured layers.
func (h *Heightmap) Layers() []noise.Layer {
	out := make([]noise.Layer, len(h.layers))
	copy(out, h.layers)
	return out
}

// Sample returns the composited elevation at a world coordinate, always in
// [0,1]. Layer contributions are amplitude-normalized, so relative layer
// amplitudes determine their share of the result, not the absolute noise
// range. A zero-amplitude layer set resolves to a flat 0.5.
func (h *Heightmap) Sample(x, z float64) float64 {
	var sum, norm float64
	for _, l := range h.layers {
		sum += l.Amplitude * l.Sample(x, z, h.seed)
		norm += l.Amplitude
	}

	v := 0.5
	if norm > 1e-9 {
		v = sum / norm
	}

	if h.falloff != nil {
		v *= h.falloff.Sample(x, z)
	}

	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Generate bakes a width×height grid of samples centered at the origin into
// a row-major buffer. scale is the world-space distance between grid points.
func (h *Heightmap) Generate(width, height int, scale float64) []float64 {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if !(scale > 0) {
		scale = 1
	}

	out := make([]float64, width*height)
	halfW := float64(width-1) / 2
	halfH := float64(height-1) / 2
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			x := (float64(i) - halfW) * scale
			z := (float64(j) - halfH) * scale
			out[j*width+i] = h.Sample(x, z)
		}
	}
	return out
}
