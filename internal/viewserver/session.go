package viewserver

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/terraforge/terrain/internal/terrain"
	"github.com/terraforge/terrain/internal/terrain/chunk"
	"github.com/terraforge/terrain/internal/terrain/mesh"
)

const writeTimeout = 5 * time.Second

// session drives one connected viewer: it owns a private Terrain instance,
// ticks it at the configured rate, and pushes the frame diff after every
// tick. The reader goroutine only records the viewer position; all terrain
// work happens on the tick loop.
type session struct {
	conn *websocket.Conn
	tr   *terrain.Terrain
	enc  *encoder
	log  *slog.Logger

	tickInterval time.Duration

	mu       sync.Mutex
	viewerX  float64
	viewerZ  float64
	hasMoved bool

	// sent tracks the last mesh pushed per chunk so unchanged chunks are
	// not resent.
	sent map[chunk.Coord]*mesh.Mesh
}

func newSession(conn *websocket.Conn, tr *terrain.Terrain, enc *encoder, tickInterval time.Duration, log *slog.Logger) *session {
	return &session{
		conn:         conn,
		tr:           tr,
		enc:          enc,
		log:          log,
		tickInterval: tickInterval,
		sent:         make(map[chunk.Coord]*mesh.Mesh),
	}
}

// run blocks until the context is cancelled or the connection drops.
func (s *session) run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer s.enc.close()

	go s.readLoop(cancel)

	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.tick(); err != nil {
				s.log.Debug("session tick ended", "error", err)
				return
			}
		}
	}
}

// readLoop consumes viewer-position messages until the connection errors.
func (s *session) readLoop(cancel context.CancelFunc) {
	defer cancel()
	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			return
		}
		var msg viewerMsg
		if err := json.Unmarshal(data, &msg); err != nil || msg.Type != "viewer" {
			continue
		}
		s.mu.Lock()
		s.viewerX, s.viewerZ = msg.X, msg.Z
		s.hasMoved = true
		s.mu.Unlock()
	}
}

func (s *session) tick() error {
	s.mu.Lock()
	x, z, moved := s.viewerX, s.viewerZ, s.hasMoved
	s.mu.Unlock()
	if !moved {
		return nil // no position yet, nothing to stream
	}

	_, unloaded := s.tr.Update(x, z)
	for _, coord := range unloaded {
		delete(s.sent, coord)
		if err := s.send(newUnloadFrame(coord)); err != nil {
			return err
		}
	}

	for _, vc := range s.tr.VisibleChunks(x, z) {
		if s.sent[vc.Coord] == vc.Mesh {
			continue
		}
		if err := s.send(newMeshFrame(vc)); err != nil {
			return err
		}
		s.sent[vc.Coord] = vc.Mesh
	}

	return s.send(newStatsFrame(s.tr.Cache()))
}

func (s *session) send(frame any) error {
	data, binary, err := s.enc.encode(frame)
	if err != nil {
		return err
	}
	msgType := websocket.TextMessage
	if binary {
		msgType = websocket.BinaryMessage
	}
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return s.conn.WriteMessage(msgType, data)
}
