package lod

// Seam-safe index generation. A chunk rendered next to a coarser neighbor
// leaves its shared border ring open and re-triangulates it as a fan that
// only touches border vertices at the neighbor's effective spacing, so the
// two meshes share the exact same edge geometry and no cracks appear.

// NeighborLevels carries the detail levels of the four adjacent chunks.
// Use the chunk's own level for missing neighbors.
type NeighborLevels struct {
	North, South, East, West int
}

// Uniform returns NeighborLevels with every edge at the given level.
func Uniform(level int) NeighborLevels {
	return NeighborLevels{North: level, South: level, East: level, West: level}
}

// GenerateIndices triangulates the full vertexRes×vertexRes grid for a base
// resolution at a detail level with two triangles per quad, no stitching.
// vertexRes = Resolution(base, level).
func GenerateIndices(resolution, level int) []uint32 {
	n := Resolution(resolution, level)
	indices := make([]uint32, 0, (n-1)*(n-1)*6)
	for z := 0; z < n-1; z++ {
		for x := 0; x < n-1; x++ {
			indices = appendQuad(indices, n, x, z)
		}
	}
	return indices
}

// GenerateStitchedIndices triangulates the grid with each of the four edges
// independently resolved against its neighbor's level. An edge facing a
// coarser neighbor (positive neighbor − current difference) is fanned at
// 2^difference vertex spacing; edges facing equal or finer neighbors are
// triangulated like the interior.
func GenerateStitchedIndices(resolution, level int, neighbors NeighborLevels) []uint32 {
	n := Resolution(resolution, level)
	if n <= 2 {
		return GenerateIndices(resolution, level)
	}

	indices := make([]uint32, 0, (n-1)*(n-1)*6)

	// Interior quads: the full grid minus the outer ring.
	for z := 1; z < n-2; z++ {
		for x := 1; x < n-2; x++ {
			indices = appendQuad(indices, n, x, z)
		}
	}

	for _, e := range edges(n) {
		step := stitchStep(level, e.neighborLevel(neighbors), n)
		if step == 1 {
			indices = appendEdgeStrip(indices, n, e)
		} else {
			indices = appendEdgeFan(indices, n, e, step)
		}
	}
	return indices
}

// StitchLevel returns the per-edge stitch amount: neighborLevel −
// currentLevel when positive, else 0.
func StitchLevel(current, neighbor int) int {
	if d := neighbor - current; d > 0 {
		return d
	}
	return 0
}

// stitchStep converts a level difference into a border vertex stride,
// clamped so a single fan segment never spans more than the whole edge.
func stitchStep(current, neighbor, n int) int {
	s := 1 << uint(StitchLevel(current, neighbor))
	if s > n-1 {
		s = n - 1
	}
	return s
}

// edge describes one border of the grid in edge-local coordinates: t runs
// along the edge, d is the depth (0 = boundary row, 1 = first inner row).
// flip marks edges whose local frame mirrors the winding order.
type edge struct {
	side string
	flip bool
	// index maps local (t, d) to a vertex index for grid side length n.
	index func(n, t, d int) int
}

func edges(n int) [4]edge {
	return [4]edge{
		{side: "north", flip: false, index: func(n, t, d int) int { return d*n + t }},
		{side: "south", flip: true, index: func(n, t, d int) int { return (n-1-d)*n + t }},
		{side: "west", flip: true, index: func(n, t, d int) int { return t*n + d }},
		{side: "east", flip: false, index: func(n, t, d int) int { return t*n + (n - 1 - d) }},
	}
}

func (e edge) neighborLevel(nl NeighborLevels) int {
	switch e.side {
	case "north":
		return nl.North
	case "south":
		return nl.South
	case "east":
		return nl.East
	default:
		return nl.West
	}
}

// appendQuad emits the two triangles of the quad whose minimum corner is
// (x, z), split along the (x,z)-(x+1,z+1) diagonal.
func appendQuad(indices []uint32, n, x, z int) []uint32 {
	a := uint32(z*n + x)
	b := uint32(z*n + x + 1)
	c := uint32((z+1)*n + x + 1)
	d := uint32((z+1)*n + x)
	return append(indices, a, d, c, a, c, b)
}

// appendEdgeStrip triangulates an edge at full resolution: the strip quads
// minus the corner columns, plus one corner half-triangle at each end. The
// opposite halves of the corner quads belong to the perpendicular edges, so
// every corner quad is covered exactly once whatever each edge decides.
func appendEdgeStrip(indices []uint32, n int, e edge) []uint32 {
	for t := 1; t < n-2; t++ {
		a := e.index(n, t, 0)
		b := e.index(n, t+1, 0)
		c := e.index(n, t+1, 1)
		d := e.index(n, t, 1)
		indices = appendTri(indices, e.flip, a, d, c)
		indices = appendTri(indices, e.flip, a, c, b)
	}
	// Corner halves, split along the same diagonals the fans use.
	indices = appendTri(indices, e.flip, e.index(n, 0, 0), e.index(n, 1, 1), e.index(n, 1, 0))
	indices = appendTri(indices, e.flip, e.index(n, n-2, 0), e.index(n, n-2, 1), e.index(n, n-1, 0))
	return indices
}

// appendEdgeFan triangulates an edge against a coarser neighbor: boundary
// vertices are used only at multiples of step, and each coarse segment is
// fanned against the run of inner-row vertices it spans. The runs are
// clamped to the interior, which leaves exactly the corner halves owned by
// the perpendicular edges uncovered.
func appendEdgeFan(indices []uint32, n int, e edge, step int) []uint32 {
	for a := 0; a < n-1; a += step {
		b := a + step
		if b > n-1 {
			b = n - 1
		}
		jLo := a
		if jLo < 1 {
			jLo = 1
		}
		jHi := b
		if jHi > n-2 {
			jHi = n - 2
		}
		for j := jLo; j < jHi; j++ {
			indices = appendTri(indices, e.flip, e.index(n, a, 0), e.index(n, j, 1), e.index(n, j+1, 1))
		}
		indices = appendTri(indices, e.flip, e.index(n, a, 0), e.index(n, jHi, 1), e.index(n, b, 0))
	}
	return indices
}

func appendTri(indices []uint32, flip bool, a, b, c int) []uint32 {
	if flip {
		b, c = c, b
	}
	return append(indices, uint32(a), uint32(b), uint32(c))
}
