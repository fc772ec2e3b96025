// Package terrain ties the synthesis core together: a heightmap compositor
// feeding a streaming chunk cache, with per-chunk LOD selection and seam-safe
// mesh generation. It is the single entry point collaborators use; the
// subpackages stay independently testable.
package terrain

import (
	"math"

	"github.com/terraforge/terrain/internal/terrain/chunk"
	"github.com/terraforge/terrain/internal/terrain/heightmap"
	"github.com/terraforge/terrain/internal/terrain/lod"
	"github.com/terraforge/terrain/internal/terrain/mesh"
)

// VisibleChunk is one renderable chunk for the current viewer position.
type VisibleChunk struct {
	Coord     chunk.Coord
	Selection lod.Selection
	Neighbors lod.NeighborLevels
	Mesh      *mesh.Mesh
}

type meshEntry struct {
	mesh      *mesh.Mesh
	level     int
	neighbors lod.NeighborLevels
}

// Terrain owns one streamed world. All methods must be called from a single
// goroutine; one Update per simulation tick.
type Terrain struct {
	cfg    Config
	hm     *heightmap.Heightmap
	cache  *chunk.Cache
	lodCfg *lod.Config
	gen    *mesh.Generator

	meshes map[chunk.Coord]*meshEntry
}

// New builds a Terrain from cfg. Missing fields get defaults; the layer
// stack and falloff come from the named preset unless overridden.
func New(cfg Config) *Terrain {
	cfg = cfg.withDefaults()

	layers, falloff := presetFor(cfg.Preset)
	if len(cfg.Layers) > 0 {
		layers = cfg.Layers
	}
	if cfg.Falloff != nil {
		falloff = cfg.Falloff
	}

	hm := heightmap.New(cfg.Seed, layers, falloff)
	return &Terrain{
		cfg:    cfg,
		hm:     hm,
		cache:  chunk.NewCache(hm, cfg.ChunkWorldSize, cfg.ViewDistance, cfg.ChunkResolution),
		lodCfg: lod.NewConfig(cfg.LodLevels, cfg.LodBaseDistance),
		gen:    mesh.NewGenerator(cfg.ChunkWorldSize, cfg.MaxHeight),
		meshes: make(map[chunk.Coord]*meshEntry),
	}
}

// Close stops the cache's generation workers. The Terrain must not be used
// afterward.
func (t *Terrain) Close() { t.cache.Close() }

// Heightmap returns the underlying compositor for direct sampling (baking,
// queries outside the streamed window).
func (t *Terrain) Heightmap() *heightmap.Heightmap { return t.hm }

// Cache exposes the chunk cache for introspection.
func (t *Terrain) Cache() *chunk.Cache { return t.cache }

// Lod returns the detail-band configuration.
func (t *Terrain) Lod() *lod.Config { return t.lodCfg }

// Update runs one streaming tick: recenter the cache on the viewer and
// process the load/unload queues. It returns the chunks that finished
// loading and the ones evicted this tick.
func (t *Terrain) Update(viewerX, viewerZ float64) (loaded, unloaded []chunk.Coord) {
	t.cache.Update(viewerX, viewerZ)
	loaded, unloaded = t.cache.ProcessQueues()
	for _, coord := range unloaded {
		delete(t.meshes, coord)
	}
	return loaded, unloaded
}

// VisibleChunks returns a renderable mesh for every loaded chunk, with the
// detail level chosen by distance to the viewer and each border stitched
// against the neighbor's level. Meshes are cached and rebuilt only when the
// chunk's level, a neighbor's level, or the height data changed.
func (t *Terrain) VisibleChunks(viewerX, viewerZ float64) []VisibleChunk {
	coords := t.cache.LoadedCoords()

	// Levels first: every chunk's stitching depends on its neighbors'
	// selections, so the pass is split.
	levels := make(map[chunk.Coord]lod.Selection, len(coords))
	for _, coord := range coords {
		cx, cz := coord.Center(t.cache.ChunkWorldSize())
		levels[coord] = t.lodCfg.Select(math.Hypot(cx-viewerX, cz-viewerZ))
	}

	out := make([]VisibleChunk, 0, len(coords))
	for _, coord := range coords {
		sel := levels[coord]
		nl := lod.NeighborLevels{
			North: t.neighborLevel(levels, coord.North(), sel.Level),
			South: t.neighborLevel(levels, coord.South(), sel.Level),
			East:  t.neighborLevel(levels, coord.East(), sel.Level),
			West:  t.neighborLevel(levels, coord.West(), sel.Level),
		}

		data := t.cache.GetChunkData(coord)
		if data == nil {
			continue
		}
		data.SetLodLevel(sel.Level)

		entry := t.meshes[coord]
		if entry == nil || data.MeshDirty() || entry.level != sel.Level || entry.neighbors != nl {
			entry = &meshEntry{
				mesh:      t.gen.Build(data, coord, sel.Level, nl),
				level:     sel.Level,
				neighbors: nl,
			}
			t.meshes[coord] = entry
			data.MarkMeshBuilt()
		}

		out = append(out, VisibleChunk{
			Coord:     coord,
			Selection: sel,
			Neighbors: nl,
			Mesh:      entry.mesh,
		})
	}
	return out
}

// neighborLevel returns the neighbor's selected level, or the chunk's own
// level when the neighbor is not loaded — an absent neighbor must not force
// a coarse seam.
func (t *Terrain) neighborLevel(levels map[chunk.Coord]lod.Selection, coord chunk.Coord, own int) int {
	if sel, ok := levels[coord]; ok {
		return sel.Level
	}
	return own
}

// HeightAt samples the composited elevation at a world position, scaled to
// world units. It bypasses the cache; use it for gameplay queries that must
// not depend on streaming state.
func (t *Terrain) HeightAt(x, z float64) float64 {
	return t.hm.Sample(x, z) * t.cfg.MaxHeight
}
