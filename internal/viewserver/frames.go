package viewserver

import (
	"encoding/json"
	"fmt"

	"github.com/klauspost/compress/zstd"

	"github.com/terraforge/terrain/internal/terrain"
	"github.com/terraforge/terrain/internal/terrain/chunk"
)

// Frame types, server to client. The client mirrors these tags.
const (
	frameMesh   = "mesh"
	frameUnload = "unload"
	frameStats  = "stats"
)

// viewerMsg is the single client-to-server message: the viewer position.
type viewerMsg struct {
	Type string  `json:"type"`
	X    float64 `json:"x"`
	Z    float64 `json:"z"`
}

// meshFrame carries one chunk's renderable geometry. Attribute arrays are
// flat: positions and normals 3 floats per vertex, uvs 2.
type meshFrame struct {
	Type      string    `json:"type"`
	X         int       `json:"x"`
	Z         int       `json:"z"`
	Level     int       `json:"level"`
	Morph     float64   `json:"morph"`
	Positions []float32 `json:"positions"`
	Normals   []float32 `json:"normals"`
	UVs       []float32 `json:"uvs"`
	Indices   []uint32  `json:"indices"`
}

type unloadFrame struct {
	Type string `json:"type"`
	X    int    `json:"x"`
	Z    int    `json:"z"`
}

type statsFrame struct {
	Type           string `json:"type"`
	Loaded         int    `json:"loaded"`
	Tracked        int    `json:"tracked"`
	PendingLoads   int    `json:"pending_loads"`
	PendingUnloads int    `json:"pending_unloads"`
}

func newMeshFrame(vc terrain.VisibleChunk) meshFrame {
	nv := len(vc.Mesh.Vertices)
	f := meshFrame{
		Type:      frameMesh,
		X:         vc.Coord.X,
		Z:         vc.Coord.Z,
		Level:     vc.Selection.Level,
		Morph:     vc.Selection.MorphFactor,
		Positions: make([]float32, 0, nv*3),
		Normals:   make([]float32, 0, nv*3),
		UVs:       make([]float32, 0, nv*2),
		Indices:   vc.Mesh.Indices,
	}
	for _, v := range vc.Mesh.Vertices {
		f.Positions = append(f.Positions, v.Position.X(), v.Position.Y(), v.Position.Z())
		f.Normals = append(f.Normals, v.Normal.X(), v.Normal.Y(), v.Normal.Z())
		f.UVs = append(f.UVs, v.UV.X(), v.UV.Y())
	}
	return f
}

func newUnloadFrame(coord chunk.Coord) unloadFrame {
	return unloadFrame{Type: frameUnload, X: coord.X, Z: coord.Z}
}

func newStatsFrame(c *chunk.Cache) statsFrame {
	return statsFrame{
		Type:           frameStats,
		Loaded:         len(c.LoadedCoords()),
		Tracked:        c.Len(),
		PendingLoads:   len(c.PendingLoads()),
		PendingUnloads: len(c.PendingUnloads()),
	}
}

// encoder serializes frames to JSON, optionally zstd-compressed. Compressed
// frames go out as binary websocket messages, plain ones as text.
type encoder struct {
	zw *zstd.Encoder
}

func newEncoder(compress bool) (*encoder, error) {
	e := &encoder{}
	if compress {
		zw, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
		if err != nil {
			return nil, fmt.Errorf("init zstd encoder: %w", err)
		}
		e.zw = zw
	}
	return e, nil
}

// encode returns the wire bytes and whether they are binary (compressed).
func (e *encoder) encode(frame any) ([]byte, bool, error) {
	data, err := json.Marshal(frame)
	if err != nil {
		return nil, false, fmt.Errorf("marshal frame: %w", err)
	}
	if e.zw == nil {
		return data, false, nil
	}
	return e.zw.EncodeAll(data, nil), true, nil
}

func (e *encoder) close() {
	if e.zw != nil {
		e.zw.Close()
	}
}
