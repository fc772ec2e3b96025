package noise

import "math"

// Worley2D returns 2D cellular noise in [0,1]: the Euclidean distance to the
// nearest jittered feature point across the 3×3 cell neighborhood, clamped.
// One feature point is hashed per cell.
func Worley2D(x, y float64, seed uint64) float64 {
	cx := fastFloor(x)
	cy := fastFloor(y)

	minDist := math.MaxFloat64
	for oy := -1; oy <= 1; oy++ {
		for ox := -1; ox <= 1; ox++ {
			ix := cx + ox
			iy := cy + oy
			px := float64(ix) + hash01(seed, ix, iy)
			py := float64(iy) + hash01(seed^0x5bf0_3635, ix, iy)
			dx := px - x
			dy := py - y
			if d := dx*dx + dy*dy; d < minDist {
				minDist = d
			}
		}
	}
	return clamp01(math.Sqrt(minDist))
}
