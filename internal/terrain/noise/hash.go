package noise

// Deterministic lattice hashing shared by the noise families. All functions
// are pure: the same (seed, coordinates) always produce the same value.

// mix64 is the splitmix64 finalizer. It turns a weakly mixed word into a
// well-distributed one.
func mix64(z uint64) uint64 {
	z += 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// hash2 hashes a 2D lattice coordinate with a seed.
func hash2(seed uint64, x, y int) uint64 {
	ux := uint64(uint32(int32(x)))
	uy := uint64(uint32(int32(y)))
	return mix64(seed ^ (ux * 0x9e3779b97f4a7c15) ^ (uy * 0xbf58476d1ce4e5b9))
}

// hash01 maps a lattice coordinate to a uniform value in [0,1).
func hash01(seed uint64, x, y int) float64 {
	return float64(hash2(seed, x, y)>>11) / (1 << 53)
}

// fastFloor is floor for finite inputs without the math.Floor call overhead.
func fastFloor(x float64) int {
	xi := int(x)
	if x < float64(xi) {
		return xi - 1
	}
	return xi
}

// clamp01 clamps v to [0,1], mapping NaN to 0.
func clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// fade is the quintic interpolation curve 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
