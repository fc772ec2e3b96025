package lod

// Distance-based level-of-detail selection. A Config maps viewer distance to
// a discrete level plus a continuous morph factor used for geometry-blend
// transitions between adjacent levels.

const (
	minLevels = 1
	maxLevels = 8

	// morphStart is how far into a level's distance band the morph ramp
	// begins: the final 20% of the band blends toward the next level.
	morphStart = 0.8
)

// Config holds the LOD distance bands. distances[i] is the upper bound of
// level i and the sequence is strictly increasing.
type Config struct {
	levels       int
	distances    []float64
	morphEnabled bool
}

// NewConfig builds a Config with levels bands where distances[i] =
// baseDistance × 2^i, so each level covers double the range of the previous.
// levels is clamped to [1,8]; a non-positive baseDistance falls back to 1.
func NewConfig(levels int, baseDistance float64) *Config {
	if levels < minLevels {
		levels = minLevels
	}
	if levels > maxLevels {
		levels = maxLevels
	}
	if !(baseDistance > 0) {
		baseDistance = 1
	}

	distances := make([]float64, levels)
	d := baseDistance
	for i := range distances {
		distances[i] = d
		d *= 2
	}
	return &Config{levels: levels, distances: distances, morphEnabled: true}
}

// Levels returns the number of detail levels.
func (c *Config) Levels() int { return c.levels }

// Distances returns a copy of the per-level upper bounds.
func (c *Config) Distances() []float64 {
	out := make([]float64, len(c.distances))
	copy(out, c.distances)
	return out
}

// SetMorphEnabled toggles morph factor computation; when disabled,
// MorphFactor always returns 0.
func (c *Config) SetMorphEnabled(enabled bool) { c.morphEnabled = enabled }

// LevelFor returns the detail level for a viewer distance: the first level
// whose bound exceeds the distance, or the coarsest level. The result is
// monotonically non-decreasing in distance.
func (c *Config) LevelFor(distance float64) int {
	for i, bound := range c.distances {
		if distance < bound {
			return i
		}
	}
	return c.levels - 1
}

// MorphFactor returns the blend weight toward the next coarser level for a
// distance within the given level's band: 0 through the first 80% of the
// band, then a linear 0→1 ramp across the final 20%. The coarsest level
// always returns 0 — there is nothing to blend toward.
func (c *Config) MorphFactor(distance float64, level int) float64 {
	if !c.morphEnabled || level < 0 || level >= c.levels-1 {
		return 0
	}

	start := 0.0
	if level > 0 {
		start = c.distances[level-1]
	}
	end := c.distances[level]
	if end <= start {
		return 0
	}

	t := (distance - start) / (end - start)
	if t <= morphStart {
		return 0
	}
	m := (t - morphStart) / (1 - morphStart)
	if m > 1 {
		return 1
	}
	return m
}

// Selection is the result of one LOD query. It is recomputed per query and
// never persisted.
type Selection struct {
	Level       int
	MorphFactor float64
	Distance    float64
}

// Select computes the level and morph factor for a viewer distance.
func (c *Config) Select(distance float64) Selection {
	level := c.LevelFor(distance)
	return Selection{
		Level:       level,
		MorphFactor: c.MorphFactor(distance, level),
		Distance:    distance,
	}
}

// Resolution returns the effective per-side vertex count for a base
// resolution at a detail level: base >> level, floored at 2.
func Resolution(base, level int) int {
	if level < 0 {
		level = 0
	}
	r := base >> uint(level)
	if r < 2 {
		return 2
	}
	return r
}
