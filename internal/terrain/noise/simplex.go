package noise

import (
	"sync"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Simplex noise is backed by opensimplex generators. Generators are built
// lazily per seed and cached, so Simplex2D keeps the same pure
// (x, y, seed) → value shape as the other families.
var (
	simplexMu     sync.Mutex
	simplexBySeed = map[uint64]opensimplex.Noise{}
)

func simplexFor(seed uint64) opensimplex.Noise {
	simplexMu.Lock()
	defer simplexMu.Unlock()
	n, ok := simplexBySeed[seed]
	if !ok {
		n = opensimplex.NewNormalized(int64(seed))
		simplexBySeed[seed] = n
	}
	return n
}

// Simplex2D returns 2D simplex noise in [0,1] for the given seed.
func Simplex2D(x, y float64, seed uint64) float64 {
	return clamp01(simplexFor(seed).Eval2(x, y))
}
