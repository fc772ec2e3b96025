package terrain

import (
	"sort"

	"github.com/terraforge/terrain/internal/terrain/heightmap"
	"github.com/terraforge/terrain/internal/terrain/noise"
)

// Config describes one terrain instance. Zero or out-of-range fields are
// replaced with defaults at construction, never rejected.
type Config struct {
	Seed uint64

	// ChunkWorldSize is the world-space edge length of one chunk.
	ChunkWorldSize float64
	// ChunkResolution is the per-side sample count, clamped to [8,256].
	ChunkResolution int
	// ViewDistance is the streaming radius in chunks (Chebyshev).
	ViewDistance int
	// MaxHeight scales normalized elevation into world units.
	MaxHeight float64

	// LodLevels and LodBaseDistance parameterize the detail bands:
	// band i ends at LodBaseDistance × 2^i.
	LodLevels       int
	LodBaseDistance float64

	// Preset names the layer stack to synthesize from; see PresetNames.
	// Layers, when non-empty, overrides the preset's stack; Falloff, when
	// non-nil, overrides the preset's mask.
	Preset  string
	Layers  []noise.Layer
	Falloff heightmap.Falloff
}

// DefaultConfig returns a config for a mid-sized rolling-hills world.
func DefaultConfig() Config {
	return Config{
		Seed:            1,
		ChunkWorldSize:  64,
		ChunkResolution: 64,
		ViewDistance:    4,
		MaxHeight:       80,
		LodLevels:       4,
		LodBaseDistance: 128,
		Preset:          "default",
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if !(c.ChunkWorldSize > 0) {
		c.ChunkWorldSize = d.ChunkWorldSize
	}
	if c.ChunkResolution <= 0 {
		c.ChunkResolution = d.ChunkResolution
	}
	if c.ViewDistance < 0 {
		c.ViewDistance = 0
	}
	if !(c.MaxHeight > 0) {
		c.MaxHeight = d.MaxHeight
	}
	if c.LodLevels <= 0 {
		c.LodLevels = d.LodLevels
	}
	if !(c.LodBaseDistance > 0) {
		c.LodBaseDistance = d.LodBaseDistance
	}
	if c.Preset == "" {
		c.Preset = d.Preset
	}
	return c
}

// presets are the built-in layer stacks, keyed by name. Each mirrors a
// distinct landform profile; amplitudes are relative, the compositor
// normalizes them.
var presets = map[string]func() ([]noise.Layer, heightmap.Falloff){
	"default": func() ([]noise.Layer, heightmap.Falloff) {
		return []noise.Layer{
			noise.NewLayer(noise.Perlin, 1.0/512, 1.0, 4, 2, 0.5, 0),
			noise.NewLayer(noise.Perlin, 1.0/128, 0.35, 3, 2, 0.5, 1),
			noise.NewLayer(noise.Simplex, 1.0/32, 0.1, 2, 2, 0.5, 2),
		}, nil
	},
	"islands": func() ([]noise.Layer, heightmap.Falloff) {
		return []noise.Layer{
			noise.NewLayer(noise.Simplex, 1.0/384, 1.0, 4, 2, 0.5, 0),
			noise.NewLayer(noise.Perlin, 1.0/96, 0.3, 3, 2, 0.5, 1),
		}, heightmap.Island{Radius: 1024}
	},
	"mountains": func() ([]noise.Layer, heightmap.Falloff) {
		return []noise.Layer{
			noise.NewLayer(noise.Ridged, 1.0/640, 1.0, 5, 2.1, 0.55, 0),
			noise.NewLayer(noise.Perlin, 1.0/160, 0.25, 3, 2, 0.5, 1),
			noise.NewLayer(noise.Value, 1.0/40, 0.08, 2, 2, 0.5, 2),
		}, nil
	},
	"dunes": func() ([]noise.Layer, heightmap.Falloff) {
		return []noise.Layer{
			noise.NewLayer(noise.Billowed, 1.0/256, 1.0, 3, 2, 0.45, 0),
			noise.NewLayer(noise.Worley, 1.0/128, 0.2, 2, 2, 0.5, 1),
		}, nil
	},
}

// PresetNames returns the built-in preset names, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// presetFor resolves a preset name, falling back to "default" for unknown
// names.
func presetFor(name string) ([]noise.Layer, heightmap.Falloff) {
	if p, ok := presets[name]; ok {
		return p()
	}
	return presets["default"]()
}
