package noise

// Family selects which base noise a layer samples.
type Family int

const (
	Perlin Family = iota
	Simplex
	Worley
	Ridged
	Billowed
	Value
)

// String returns the family name used in configuration files.
func (f Family) String() string {
	switch f {
	case Perlin:
		return "perlin"
	case Simplex:
		return "simplex"
	case Worley:
		return "worley"
	case Ridged:
		return "ridged"
	case Billowed:
		return "billow"
	case Value:
		return "value"
	default:
		return "unknown"
	}
}

// FamilyFromString parses a family name; unrecognized names fall back to
// Perlin.
func FamilyFromString(s string) Family {
	switch s {
	case "simplex":
		return Simplex
	case "worley":
		return Worley
	case "ridged":
		return Ridged
	case "billow":
		return Billowed
	case "value":
		return Value
	default:
		return Perlin
	}
}

const (
	minOctaves = 1
	maxOctaves = 16
)

// Layer is an immutable configuration for sampling one noise family.
// Frequency scales the input coordinates, Amplitude is the layer's relative
// weight when composited, and Octaves/Lacunarity/Persistence drive the
// fractal combinators.
type Layer struct {
	Family      Family
	Frequency   float64
	Amplitude   float64
	Octaves     int
	Lacunarity  float64
	Persistence float64
	SeedOffset  uint64
}

// NewLayer builds a Layer, clamping out-of-range parameters so sampling is
// always well defined: octaves to [1,16], non-positive frequency to 1,
// negative amplitude to 0, non-positive lacunarity/persistence to defaults.
func NewLayer(family Family, frequency, amplitude float64, octaves int, lacunarity, persistence float64, seedOffset uint64) Layer {
	if octaves < minOctaves {
		octaves = minOctaves
	}
	if octaves > maxOctaves {
		octaves = maxOctaves
	}
	if !(frequency > 0) {
		frequency = 1
	}
	if !(amplitude >= 0) {
		amplitude = 0
	}
	if !(lacunarity > 0) {
		lacunarity = 2
	}
	if !(persistence > 0) {
		persistence = 0.5
	}
	return Layer{
		Family:      family,
		Frequency:   frequency,
		Amplitude:   amplitude,
		Octaves:     octaves,
		Lacunarity:  lacunarity,
		Persistence: persistence,
		SeedOffset:  seedOffset,
	}
}

// Sample evaluates the layer at a world coordinate. The result is in [0,1]
// for any finite input and any seed.
func (l Layer) Sample(x, z float64, seed uint64) float64 {
	s := seed + l.SeedOffset
	fx := x * l.Frequency
	fz := z * l.Frequency

	switch l.Family {
	case Simplex:
		return FractalSum(Simplex2D, fx, fz, s, l.Octaves, l.Lacunarity, l.Persistence)
	case Worley:
		return FractalSum(Worley2D, fx, fz, s, l.Octaves, l.Lacunarity, l.Persistence)
	case Ridged:
		return RidgedMultifractal(Perlin2D, fx, fz, s, l.Octaves, l.Lacunarity, l.Persistence)
	case Billowed:
		return Billow(Perlin2D, fx, fz, s, l.Octaves, l.Lacunarity, l.Persistence)
	case Value:
		return FractalSum(Value2D, fx, fz, s, l.Octaves, l.Lacunarity, l.Persistence)
	default:
		return FractalSum(Perlin2D, fx, fz, s, l.Octaves, l.Lacunarity, l.Persistence)
	}
}
