// Package api provides the REST API of dabmux-gui.
// It exposes health, configuration, RC parameter and statistics endpoints
// for one ODR-DabMux instance via a Gin-based HTTP server, and optionally
// serves the web UI from a static directory.
package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/dabmux-gui/internal/api/handlers"
	"github.com/jroosing/dabmux-gui/internal/api/middleware"
	"github.com/jroosing/dabmux-gui/internal/config"
)

// Server is the dabmux-gui HTTP server.
//
// Security note: the API can change live multiplex parameters. Configure an
// API key before exposing it beyond localhost.
type Server struct {
	cfg        *config.Config
	logger     *slog.Logger
	engine     *gin.Engine
	httpServer *http.Server
}

// New builds the server. A nil mux is allowed; multiplexer endpoints then
// answer 503.
func New(cfg *config.Config, mux handlers.Mux, logger *slog.Logger) *Server {
	if cfg == nil {
		panic("api.New: cfg is nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.SlogRequestLogger(logger))

	h := handlers.New(cfg, mux, logger)
	RegisterRoutes(engine, h, cfg)
	if cfg.API.StaticDir != "" {
		MountStatic(engine, cfg.API.StaticDir, logger)
	}

	addr := net.JoinHostPort(cfg.API.Host, strconv.Itoa(cfg.API.Port))
	// WriteTimeout leaves room for a stats fetch, which is two sequential
	// exchanges of up to rc.Timeout each.
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return &Server{cfg: cfg, logger: logger, engine: engine, httpServer: httpServer}
}

func (s *Server) Addr() string {
	if s.httpServer == nil {
		return ""
	}
	return s.httpServer.Addr
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) ListenAndServe() error {
	s.logger.Info("api listening", "addr", s.Addr())
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
