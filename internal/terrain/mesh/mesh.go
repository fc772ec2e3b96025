// Package mesh turns chunk height data into renderable triangle meshes:
// interleaved position/normal/uv vertices plus a seam-stitched index buffer.
package mesh

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/terraforge/terrain/internal/terrain/chunk"
	"github.com/terraforge/terrain/internal/terrain/lod"
)

// Vertex is one mesh vertex. Positions are in world space, normals are unit
// length, UVs span [0,1] across the chunk.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	UV       mgl32.Vec2
}

// Mesh is an indexed triangle list for one chunk at one detail level.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// TriangleCount returns the number of triangles in the index buffer.
func (m *Mesh) TriangleCount() int { return len(m.Indices) / 3 }

// Generator builds chunk meshes. The zero value is not usable; construct
// with NewGenerator.
type Generator struct {
	chunkWorldSize float64
	maxHeight      float64
}

// NewGenerator creates a mesh generator. chunkWorldSize is the world-space
// edge length of one chunk, maxHeight scales normalized heights into world
// units. Non-positive inputs fall back to 1.
func NewGenerator(chunkWorldSize, maxHeight float64) *Generator {
	if !(chunkWorldSize > 0) {
		chunkWorldSize = 1
	}
	if !(maxHeight > 0) {
		maxHeight = 1
	}
	return &Generator{chunkWorldSize: chunkWorldSize, maxHeight: maxHeight}
}

// MaxHeight returns the world-space height scale.
func (g *Generator) MaxHeight() float64 { return g.maxHeight }

// Build generates the mesh for a chunk at the given detail level, with each
// border stitched against the neighbor levels. The chunk's stored heights are
// resampled bilinearly at the level's effective resolution, so coarser levels
// reuse the same data with fewer vertices.
func (g *Generator) Build(data *chunk.Data, coord chunk.Coord, level int, neighbors lod.NeighborLevels) *Mesh {
	base := data.Resolution()
	n := lod.Resolution(base, level)
	originX, originZ := coord.WorldOrigin(g.chunkWorldSize)

	vertices := make([]Vertex, 0, n*n)
	invN := 1.0 / float64(n-1)
	for z := 0; z < n; z++ {
		v := float64(z) * invN
		for x := 0; x < n; x++ {
			u := float64(x) * invN
			h := data.Sample(u, v)
			vertices = append(vertices, Vertex{
				Position: mgl32.Vec3{
					float32(originX + u*g.chunkWorldSize),
					float32(h * g.maxHeight),
					float32(originZ + v*g.chunkWorldSize),
				},
				Normal: g.normalAt(data, u, v, invN),
				UV:     mgl32.Vec2{float32(u), float32(v)},
			})
		}
	}

	return &Mesh{
		Vertices: vertices,
		Indices:  lod.GenerateStitchedIndices(base, level, neighbors),
	}
}

// normalAt estimates the surface normal by central differences over the
// height field, one vertex spacing to each side. Samples past the chunk edge
// clamp, which biases border normals slightly inward; acceptable, and the
// morph blend hides it.
func (g *Generator) normalAt(data *chunk.Data, u, v, eps float64) mgl32.Vec3 {
	hl := data.Sample(u-eps, v)
	hr := data.Sample(u+eps, v)
	hd := data.Sample(u, v-eps)
	hu := data.Sample(u, v+eps)

	span := 2 * eps * g.chunkWorldSize
	n := mgl32.Vec3{
		float32((hl - hr) * g.maxHeight),
		float32(span),
		float32((hd - hu) * g.maxHeight),
	}
	if n.Len() == 0 {
		return mgl32.Vec3{0, 1, 0}
	}
	return n.Normalize()
}
