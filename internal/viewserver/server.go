// Package viewserver streams chunk meshes to a browser viewer over
// websocket. It is a debug collaborator: each connection gets its own
// terrain instance, ticked server-side, with mesh/unload/stats frames pushed
// as the viewer moves.
package viewserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/terraforge/terrain/internal/config"
	"github.com/terraforge/terrain/internal/terrain"
)

// Server accepts websocket viewers and streams terrain to them.
type Server struct {
	cfg *config.Config
	log *slog.Logger

	upgrader websocket.Upgrader
}

// New creates a new Server with the given config and logger.
func New(cfg *config.Config, log *slog.Logger) *Server {
	return &Server{
		cfg: cfg,
		log: log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  64 * 1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true }, // dev default
		},
	}
}

// Handler returns the HTTP mux: /ws for the stream, / for a liveness probe.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "terrainview: preset=%s seed=%d\n", s.cfg.Preset, s.cfg.Seed)
	})
	return mux
}

// Start serves until the context is cancelled.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.Addr,
		Handler: s.Handler(),
		// Sessions watch the request context; parenting it to ctx makes
		// shutdown reach hijacked websocket connections too.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	s.log.Info("view server started",
		"addr", s.cfg.Addr,
		"preset", s.cfg.Preset,
		"seed", s.cfg.Seed,
		"viewDistance", s.cfg.ViewDistance,
		"compress", s.cfg.Compress,
	)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve on %s: %w", s.cfg.Addr, err)
	}
	s.log.Info("view server shutting down")
	return nil
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Error("websocket upgrade", "error", err)
		return
	}
	defer conn.Close()

	enc, err := newEncoder(s.cfg.Compress)
	if err != nil {
		s.log.Error("session setup", "error", err)
		return
	}

	tr := terrain.New(terrainConfig(s.cfg))
	defer tr.Close()
	s.log.Info("viewer connected", "remote", r.RemoteAddr)

	sess := newSession(conn, tr, enc, tickInterval(s.cfg.TickRate), s.log)
	sess.run(r.Context())

	s.log.Info("viewer disconnected", "remote", r.RemoteAddr)
}

func terrainConfig(cfg *config.Config) terrain.Config {
	return terrain.Config{
		Seed:            uint64(cfg.Seed),
		ChunkWorldSize:  cfg.ChunkWorldSize,
		ChunkResolution: cfg.ChunkResolution,
		ViewDistance:    cfg.ViewDistance,
		MaxHeight:       cfg.MaxHeight,
		LodLevels:       cfg.LodLevels,
		LodBaseDistance: cfg.LodBaseDistance,
		Preset:          cfg.Preset,
	}
}

func tickInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = 20
	}
	return time.Second / time.Duration(rate)
}
