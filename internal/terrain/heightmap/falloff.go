package heightmap

import "math"

// A Falloff shapes terrain boundaries: Sample returns a multiplier in [0,1]
// applied to the composited elevation. Implementations must be total — any
// finite input yields a finite value.
type Falloff interface {
	Sample(x, z float64) float64
}

// Island is a circular mask: exactly 1 at the center, exactly 0 at and
// beyond Radius, smoothstepped in between.
type Island struct {
	Radius float64
}

func (f Island) Sample(x, z float64) float64 {
	if f.Radius <= 0 {
		return 0
	}
	d := math.Hypot(x, z)
	if d >= f.Radius {
		return 0
	}
	return 1 - smoothstep(d/f.Radius)
}

// Square is the Chebyshev analogue of Island: the mask follows a square of
// half-extent HalfSize with a smoothstep transition.
type Square struct {
	HalfSize float64
}

func (f Square) Sample(x, z float64) float64 {
	if f.HalfSize <= 0 {
		return 0
	}
	d := math.Max(math.Abs(x), math.Abs(z))
	if d >= f.HalfSize {
		return 0
	}
	return 1 - smoothstep(d/f.HalfSize)
}

// Radial is a linear ring gradient: 1 inside Inner, 0 outside Outer. A
// zero-width ring degenerates to a hard step at Inner.
type Radial struct {
	Inner, Outer float64
}

func (f Radial) Sample(x, z float64) float64 {
	d := math.Hypot(x, z)
	if d <= f.Inner {
		return 1
	}
	if d >= f.Outer || f.Outer <= f.Inner {
		return 0
	}
	return (f.Outer - d) / (f.Outer - f.Inner)
}

// Cliff is a one-sided linear ramp along the projection of (x,z) onto
// Direction: full height up to Offset, dropping to 0 across Width beyond it.
// A degenerate direction disables the mask (returns 1); zero Width is a hard
// step at Offset.
type Cliff struct {
	DirX, DirZ float64
	Offset     float64
	Width      float64
}

func (f Cliff) Sample(x, z float64) float64 {
	length := math.Hypot(f.DirX, f.DirZ)
	if length == 0 {
		return 1
	}
	p := (x*f.DirX + z*f.DirZ) / length
	if p <= f.Offset {
		return 1
	}
	if f.Width <= 0 || p >= f.Offset+f.Width {
		return 0
	}
	return 1 - (p-f.Offset)/f.Width
}

// Func adapts a plain function into a Falloff. The result is clamped to
// [0,1] so a misbehaving callback cannot break the compositor's invariant.
type Func func(x, z float64) float64

func (f Func) Sample(x, z float64) float64 {
	v := f(x, z)
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// smoothstep is the cubic ease curve 3t^2 - 2t^3 for t in [0,1].
func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}
