package noise

import (
	"math"
	"testing"
)

var baseFuncs = map[string]Func{
	"Perlin2D":  Perlin2D,
	"Simplex2D": Simplex2D,
	"Value2D":   Value2D,
	"Worley2D":  Worley2D,
}

func TestBaseFuncsRange(t *testing.T) {
	for name, f := range baseFuncs {
		for i := 0; i < 10000; i++ {
			x := float64(i)*0.37 - 500
			y := float64(i)*0.53 - 500
			v := f(x, y, 42)
			if v < 0 || v > 1 || math.IsNaN(v) {
				t.Fatalf("%s(%f, %f) = %f, out of [0,1]", name, x, y, v)
			}
		}
	}
}

func TestBaseFuncsDeterministic(t *testing.T) {
	for name, f := range baseFuncs {
		for i := 0; i < 100; i++ {
			x := float64(i) * 0.13
			y := float64(i) * 0.29
			if f(x, y, 12345) != f(x, y, 12345) {
				t.Fatalf("%s not deterministic at (%f, %f)", name, x, y)
			}
		}
	}
}

func TestDifferentSeedsDifferentNoise(t *testing.T) {
	for name, f := range baseFuncs {
		different := false
		for i := 0; i < 100; i++ {
			x := float64(i) * 0.1
			y := float64(i) * 0.2
			if f(x, y, 1) != f(x, y, 2) {
				different = true
				break
			}
		}
		if !different {
			t.Errorf("%s: different seeds should produce different noise", name)
		}
	}
}

func TestFractalCombinatorsRange(t *testing.T) {
	combinators := map[string]func(Func, float64, float64, uint64, int, float64, float64) float64{
		"FractalSum":         FractalSum,
		"Billow":             Billow,
		"RidgedMultifractal": RidgedMultifractal,
	}
	for name, c := range combinators {
		for i := 0; i < 2000; i++ {
			x := float64(i)*0.21 - 200
			y := float64(i)*0.17 - 200
			v := c(Perlin2D, x, y, 7, 6, 2.0, 0.5)
			if v < 0 || v > 1 || math.IsNaN(v) {
				t.Fatalf("%s = %f at (%f, %f), out of [0,1]", name, v, x, y)
			}
		}
	}
}

func TestFractalSumZeroOctavesSafe(t *testing.T) {
	if got := FractalSum(Perlin2D, 1, 2, 0, 0, 2, 0.5); got != 0.5 {
		t.Errorf("FractalSum with zero octaves = %f, want 0.5", got)
	}
}

func TestPerlinSmoothness(t *testing.T) {
	// Adjacent samples should not differ by more than some reasonable amount.
	prev := Perlin2D(0, 0, 456)
	step := 0.01
	for i := 1; i < 1000; i++ {
		x := float64(i) * step
		curr := Perlin2D(x, 0, 456)
		if diff := math.Abs(curr - prev); diff > 0.1 {
			t.Fatalf("noise changed too rapidly at x=%f: diff=%f", x, diff)
		}
		prev = curr
	}
}

func TestLayerSampleRange(t *testing.T) {
	families := []Family{Perlin, Simplex, Worley, Ridged, Billowed, Value}
	for _, fam := range families {
		l := NewLayer(fam, 0.02, 1.0, 4, 2.0, 0.5, 11)
		for i := 0; i < 2000; i++ {
			x := float64(i)*1.7 - 1000
			z := float64(i)*2.3 - 1000
			v := l.Sample(x, z, 99)
			if v < 0 || v > 1 || math.IsNaN(v) {
				t.Fatalf("Layer(%s).Sample(%f, %f) = %f, out of [0,1]", fam, x, z, v)
			}
		}
	}
}

func TestLayerClamping(t *testing.T) {
	l := NewLayer(Perlin, -3, -1, 99, 0, -2, 0)
	if l.Octaves != 16 {
		t.Errorf("octaves = %d, want clamp to 16", l.Octaves)
	}
	if l.Frequency != 1 {
		t.Errorf("frequency = %f, want fallback 1", l.Frequency)
	}
	if l.Amplitude != 0 {
		t.Errorf("amplitude = %f, want clamp to 0", l.Amplitude)
	}
	if l.Lacunarity != 2 || l.Persistence != 0.5 {
		t.Errorf("lacunarity/persistence = %f/%f, want defaults 2/0.5", l.Lacunarity, l.Persistence)
	}

	if got := NewLayer(Perlin, 1, 1, 0, 2, 0.5, 0).Octaves; got != 1 {
		t.Errorf("octaves = %d, want clamp to 1", got)
	}
}

func TestLayerSeedOffsetDecorrelates(t *testing.T) {
	a := NewLayer(Perlin, 0.05, 1, 3, 2, 0.5, 0)
	b := NewLayer(Perlin, 0.05, 1, 3, 2, 0.5, 1000)

	different := false
	for i := 0; i < 100; i++ {
		x := float64(i) * 3.1
		if a.Sample(x, x, 5) != b.Sample(x, x, 5) {
			different = true
			break
		}
	}
	if !different {
		t.Error("layers with different seed offsets should not be identical")
	}
}

func TestFamilyStringRoundTrip(t *testing.T) {
	for _, fam := range []Family{Perlin, Simplex, Worley, Ridged, Billowed, Value} {
		if got := FamilyFromString(fam.String()); got != fam {
			t.Errorf("FamilyFromString(%q) = %v, want %v", fam.String(), got, fam)
		}
	}
	if got := FamilyFromString("nonsense"); got != Perlin {
		t.Errorf("unknown family = %v, want Perlin fallback", got)
	}
}
