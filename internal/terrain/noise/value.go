package noise

// Value2D returns 2D value noise in [0,1]: hashed scalars at the four
// surrounding lattice corners, blended with quintic interpolation.
func Value2D(x, y float64, seed uint64) float64 {
	x0 := fastFloor(x)
	y0 := fastFloor(y)
	fx := x - float64(x0)
	fy := y - float64(y0)

	v00 := hash01(seed, x0, y0)
	v10 := hash01(seed, x0+1, y0)
	v01 := hash01(seed, x0, y0+1)
	v11 := hash01(seed, x0+1, y0+1)

	u := fade(fx)
	v := fade(fy)
	return lerp(lerp(v00, v10, u), lerp(v01, v11, u), v)
}
