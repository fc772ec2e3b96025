package noise

import "math"

// A Func is a base noise function producing values in [0,1].
type Func func(x, y float64, seed uint64) float64

// octaveSeed derives a distinct seed per octave so successive octaves do not
// sample the same lattice at scaled coordinates.
func octaveSeed(seed uint64, octave int) uint64 {
	return mix64(seed + uint64(octave)*0xa0761d6478bd642f)
}

// FractalSum layers octaves of f, scaling frequency by lacunarity and
// amplitude by persistence per octave. The result is the amplitude-weighted
// average, so it stays in [0,1] regardless of octave count.
func FractalSum(f Func, x, y float64, seed uint64, octaves int, lacunarity, persistence float64) float64 {
	freq := 1.0
	amp := 1.0
	var sum, norm float64
	for o := 0; o < octaves; o++ {
		sum += amp * f(x*freq, y*freq, octaveSeed(seed, o))
		norm += amp
		freq *= lacunarity
		amp *= persistence
	}
	if norm == 0 {
		return 0.5
	}
	return clamp01(sum / norm)
}

// Billow folds each octave's signal through |2s-1|, producing puffy,
// crease-valleyed noise in [0,1].
func Billow(f Func, x, y float64, seed uint64, octaves int, lacunarity, persistence float64) float64 {
	freq := 1.0
	amp := 1.0
	var sum, norm float64
	for o := 0; o < octaves; o++ {
		signal := f(x*freq, y*freq, octaveSeed(seed, o))
		sum += amp * math.Abs(2*signal-1)
		norm += amp
		freq *= lacunarity
		amp *= persistence
	}
	if norm == 0 {
		return 0.5
	}
	return clamp01(sum / norm)
}

// RidgedMultifractal inverts each octave into a ridge (1-|2s-1|, squared)
// and feeds a running weight derived from the previous ridge into the next
// octave, so ridgelines reinforce across octaves. Output is in [0,1].
func RidgedMultifractal(f Func, x, y float64, seed uint64, octaves int, lacunarity, persistence float64) float64 {
	freq := 1.0
	amp := 1.0
	weight := 1.0
	var sum, norm float64
	for o := 0; o < octaves; o++ {
		signal := f(x*freq, y*freq, octaveSeed(seed, o))
		ridge := 1 - math.Abs(2*signal-1)
		ridge *= ridge
		ridge *= weight

		weight = clamp01(ridge * 2)

		sum += amp * ridge
		norm += amp
		freq *= lacunarity
		amp *= persistence
	}
	if norm == 0 {
		return 0.5
	}
	return clamp01(sum / norm)
}
