package noise

import "math"

const sqrt2 = math.Sqrt2

// grad2 holds the eight unit gradient directions used by Perlin2D.
var grad2 = [8][2]float64{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{sqrt2 / 2, sqrt2 / 2}, {-sqrt2 / 2, sqrt2 / 2},
	{sqrt2 / 2, -sqrt2 / 2}, {-sqrt2 / 2, -sqrt2 / 2},
}

// Perlin2D returns 2D lattice-gradient noise in [0,1]. Each lattice corner
// gradient is hashed from (corner, seed), and the four corner contributions
// are blended with quintic interpolation.
func Perlin2D(x, y float64, seed uint64) float64 {
	x0 := fastFloor(x)
	y0 := fastFloor(y)
	fx := x - float64(x0)
	fy := y - float64(y0)

	d00 := gradDot(seed, x0, y0, fx, fy)
	d10 := gradDot(seed, x0+1, y0, fx-1, fy)
	d01 := gradDot(seed, x0, y0+1, fx, fy-1)
	d11 := gradDot(seed, x0+1, y0+1, fx-1, fy-1)

	u := fade(fx)
	v := fade(fy)
	n := lerp(lerp(d00, d10, u), lerp(d01, d11, u), v)

	// Unit gradients bound |n| by sqrt(2)/2; rescale to [-1,1], then to [0,1].
	return clamp01((n*sqrt2 + 1) * 0.5)
}

// gradDot returns the dot product of the hashed corner gradient with the
// offset from that corner to the sample point.
func gradDot(seed uint64, cx, cy int, dx, dy float64) float64 {
	g := grad2[hash2(seed, cx, cy)&7]
	return g[0]*dx + g[1]*dy
}
