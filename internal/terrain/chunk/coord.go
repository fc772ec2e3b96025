package chunk

import "math"

// Coord is an integer chunk-grid address.
type Coord struct {
	X, Z int
}

// DistanceTo returns the Chebyshev distance between coordinates — chunks are
// streamed in square rings around the viewer, so the relevant metric is the
// larger axis delta, not the Euclidean distance.
func (c Coord) DistanceTo(o Coord) int {
	dx := c.X - o.X
	if dx < 0 {
		dx = -dx
	}
	dz := c.Z - o.Z
	if dz < 0 {
		dz = -dz
	}
	if dx > dz {
		return dx
	}
	return dz
}

// CoordAt returns the chunk containing the world position (wx, wz) for a
// given chunk world size.
func CoordAt(wx, wz, chunkWorldSize float64) Coord {
	return Coord{
		X: int(math.Floor(wx / chunkWorldSize)),
		Z: int(math.Floor(wz / chunkWorldSize)),
	}
}

// WorldOrigin returns the world position of the chunk's minimum corner.
func (c Coord) WorldOrigin(chunkWorldSize float64) (x, z float64) {
	return float64(c.X) * chunkWorldSize, float64(c.Z) * chunkWorldSize
}

// Center returns the world position of the chunk's center.
func (c Coord) Center(chunkWorldSize float64) (x, z float64) {
	ox, oz := c.WorldOrigin(chunkWorldSize)
	return ox + chunkWorldSize/2, oz + chunkWorldSize/2
}

// North, South, East, West return the four axis neighbors. North is -Z.
func (c Coord) North() Coord { return Coord{c.X, c.Z - 1} }
func (c Coord) South() Coord { return Coord{c.X, c.Z + 1} }
func (c Coord) East() Coord  { return Coord{c.X + 1, c.Z} }
func (c Coord) West() Coord  { return Coord{c.X - 1, c.Z} }
