package chunk

import (
	"math"
	"sort"
	"sync"

	"github.com/terraforge/terrain/internal/terrain/heightmap"
)

// State is a chunk's position in its lifecycle. Absence from the cache map
// is the implicit initial state; removal is the terminal one.
type State int

const (
	Unloaded State = iota
	Loading
	Loaded
	Unloading
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Unloading:
		return "unloading"
	default:
		return "unloaded"
	}
}

// LoadsPerTick caps how many chunks ProcessQueues generates per call, and
// sizes the generation worker pool. Eviction is deliberately unthrottled:
// after a large viewer jump the resident set can exceed the view window for
// a few ticks while loads catch up, but stale chunks never linger.
const LoadsPerTick = 4

type entry struct {
	state State
	data  *Data
}

type genResult struct {
	coord Coord
	data  *Data
}

// Cache owns every chunk's lifecycle. It maps grid coordinates to chunk
// state, recomputes the load/unload queues when the viewer crosses a chunk
// boundary, and throttles population. All methods must be called from a
// single goroutine. Generation runs on a pool of worker goroutines fed
// through channels; ProcessQueues dispatches a batch and drains the results
// channel once per tick, so callers still observe synchronous tick
// semantics.
type Cache struct {
	hm             *heightmap.Heightmap
	chunkWorldSize float64
	viewDistance   int
	resolution     int

	chunks      map[Coord]*entry
	centerChunk Coord
	hasCenter   bool

	toLoad   []Coord
	toUnload []Coord

	work    chan Coord
	results chan genResult
	wg      sync.WaitGroup
	closed  bool
}

// NewCache creates a cache that populates chunks from hm at the given
// resolution. viewDistance is in chunks (Chebyshev).
func NewCache(hm *heightmap.Heightmap, chunkWorldSize float64, viewDistance, resolution int) *Cache {
	if !(chunkWorldSize > 0) {
		chunkWorldSize = 1
	}
	if viewDistance < 0 {
		viewDistance = 0
	}
	if resolution < MinResolution {
		resolution = MinResolution
	}
	if resolution > MaxResolution {
		resolution = MaxResolution
	}
	c := &Cache{
		hm:             hm,
		chunkWorldSize: chunkWorldSize,
		viewDistance:   viewDistance,
		resolution:     resolution,
		chunks:         make(map[Coord]*entry),
		work:           make(chan Coord, LoadsPerTick),
		results:        make(chan genResult, LoadsPerTick),
	}
	for i := 0; i < LoadsPerTick; i++ {
		c.wg.Add(1)
		go c.worker()
	}
	return c
}

// worker generates chunks off the tick goroutine. Heightmap sampling is
// pure, so workers share it without locking.
func (c *Cache) worker() {
	defer c.wg.Done()
	for coord := range c.work {
		data := NewData(c.resolution)
		data.Populate(c.hm, coord, c.chunkWorldSize)
		c.results <- genResult{coord: coord, data: data}
	}
}

// Close stops the generation workers. The cache must not be used afterward.
func (c *Cache) Close() {
	if c.closed {
		return
	}
	c.closed = true
	close(c.work)
	c.wg.Wait()
}

// ChunkWorldSize returns the world-space edge length of one chunk.
func (c *Cache) ChunkWorldSize() float64 { return c.chunkWorldSize }

// ViewDistance returns the streaming radius in chunks.
func (c *Cache) ViewDistance() int { return c.viewDistance }

// Resolution returns the per-side sample count of generated chunks.
func (c *Cache) Resolution() int { return c.resolution }

// CenterChunk returns the chunk the viewer was last seen in.
func (c *Cache) CenterChunk() Coord { return c.centerChunk }

// Update recenters the cache on the viewer's position. If the viewer is
// still in the same chunk as the previous call, the queues are left
// untouched — a small staleness window traded for skipping the ring scan.
func (c *Cache) Update(viewerX, viewerZ float64) {
	center := CoordAt(viewerX, viewerZ, c.chunkWorldSize)
	if c.hasCenter && center == c.centerChunk {
		return
	}
	c.centerChunk = center
	c.hasCenter = true
	c.recomputeQueues()
}

// recomputeQueues rebuilds both pending queues around the current center.
// Afterwards no coordinate appears in both queues.
func (c *Cache) recomputeQueues() {
	c.toLoad = c.toLoad[:0]
	c.toUnload = c.toUnload[:0]

	// Everything inside the view ring that is absent gets queued for load.
	// Entries still waiting from a previous recompute are re-queued, since
	// the queue was just cleared.
	for dz := -c.viewDistance; dz <= c.viewDistance; dz++ {
		for dx := -c.viewDistance; dx <= c.viewDistance; dx++ {
			coord := Coord{c.centerChunk.X + dx, c.centerChunk.Z + dz}
			e, ok := c.chunks[coord]
			if !ok {
				c.chunks[coord] = &entry{state: Loading}
				c.toLoad = append(c.toLoad, coord)
			} else if e.state == Loading {
				c.toLoad = append(c.toLoad, coord)
			}
		}
	}

	// Resident chunks beyond viewDistance+1 get queued for unload; the
	// extra ring of hysteresis avoids churn at chunk boundaries. Chunks
	// caught mid-unload that are back inside the window are resurrected —
	// their data is intact. Pending loads outside the ring are dropped
	// outright; they have no data yet.
	for coord, e := range c.chunks {
		d := coord.DistanceTo(c.centerChunk)
		switch e.state {
		case Loading:
			if d > c.viewDistance {
				delete(c.chunks, coord)
			}
		case Loaded, Unloading:
			if d > c.viewDistance+1 {
				e.state = Unloading
				c.toUnload = append(c.toUnload, coord)
			} else {
				e.state = Loaded
			}
		}
	}

	// Nearest chunks first. The scan order above is deterministic, so the
	// stable sort keeps equidistant chunks in scan order.
	center := c.centerChunk
	sort.SliceStable(c.toLoad, func(i, j int) bool {
		return c.toLoad[i].DistanceTo(center) < c.toLoad[j].DistanceTo(center)
	})
	sort.Slice(c.toUnload, func(i, j int) bool {
		a, b := c.toUnload[i], c.toUnload[j]
		if a.Z != b.Z {
			return a.Z < b.Z
		}
		return a.X < b.X
	})
}

// ProcessQueues performs one tick of streaming work: it dispatches up to
// LoadsPerTick pending chunks, nearest first, to the generation workers and
// collects the finished batch from the results channel, then drains the
// unload queue in full. It returns the coordinates that changed state this
// tick.
func (c *Cache) ProcessQueues() (loaded, unloaded []Coord) {
	n := LoadsPerTick
	if n > len(c.toLoad) {
		n = len(c.toLoad)
	}
	dispatched := 0
	for _, coord := range c.toLoad[:n] {
		e, ok := c.chunks[coord]
		if !ok || e.state != Loading {
			continue
		}
		c.work <- coord
		dispatched++
	}
	c.toLoad = c.toLoad[n:]

	// Collect the whole batch: a dispatched load always completes within
	// its tick. The state check drops results for coordinates the state
	// machine has moved on from.
	for i := 0; i < dispatched; i++ {
		res := <-c.results
		e, ok := c.chunks[res.coord]
		if !ok || e.state != Loading {
			continue
		}
		e.data = res.data
		e.state = Loaded
		loaded = append(loaded, res.coord)
	}

	for _, coord := range c.toUnload {
		e, ok := c.chunks[coord]
		if !ok || e.state != Unloading {
			continue
		}
		delete(c.chunks, coord)
		unloaded = append(unloaded, coord)
	}
	c.toUnload = c.toUnload[:0]

	return loaded, unloaded
}

// GenerateChunk installs an explicitly injected height buffer at coord,
// bypassing the queues. The resolution is derived from the buffer length,
// which must be a perfect square; other lengths are ignored.
func (c *Cache) GenerateChunk(coord Coord, heights []float64) {
	r := int(math.Round(math.Sqrt(float64(len(heights)))))
	if r < 2 || r*r != len(heights) {
		return
	}
	data := &Data{
		heights:    make([]float64, len(heights)),
		resolution: r,
		meshDirty:  true,
	}
	copy(data.heights, heights)
	data.recomputeBounds()
	c.chunks[coord] = &entry{state: Loaded, data: data}
}

// GetChunkData returns the chunk's data if it is resident (Loaded or
// Unloading), else nil. Callers must not retain the pointer across ticks.
func (c *Cache) GetChunkData(coord Coord) *Data {
	if e, ok := c.chunks[coord]; ok {
		return e.data
	}
	return nil
}

// StateOf returns the lifecycle state of coord.
func (c *Cache) StateOf(coord Coord) State {
	if e, ok := c.chunks[coord]; ok {
		return e.state
	}
	return Unloaded
}

// Len returns the number of tracked coordinates (any non-absent state).
func (c *Cache) Len() int { return len(c.chunks) }

// LoadedCoords returns every coordinate currently in the Loaded state, in
// deterministic (Z, X) order.
func (c *Cache) LoadedCoords() []Coord {
	coords := make([]Coord, 0, len(c.chunks))
	for coord, e := range c.chunks {
		if e.state == Loaded {
			coords = append(coords, coord)
		}
	}
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].Z != coords[j].Z {
			return coords[i].Z < coords[j].Z
		}
		return coords[i].X < coords[j].X
	})
	return coords
}

// PendingLoads returns a copy of the load queue, nearest first.
func (c *Cache) PendingLoads() []Coord {
	out := make([]Coord, len(c.toLoad))
	copy(out, c.toLoad)
	return out
}

// PendingUnloads returns a copy of the unload queue.
func (c *Cache) PendingUnloads() []Coord {
	out := make([]Coord, len(c.toUnload))
	copy(out, c.toUnload)
	return out
}
