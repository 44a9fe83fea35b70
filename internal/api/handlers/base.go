// Package handlers implements the REST API endpoint handlers for dabmux-gui.
//
// REST API Endpoints:
//
// System:
//   - GET /api/v1/health - GUI process and host health
//   - GET /api/v1/config - Effective configuration (API key redacted)
//
// Multiplexer:
//   - GET /api/v1/params - All RC parameters of the mux
//   - POST /api/v1/params - Set one RC parameter
//   - GET /api/v1/stats - Per-input statistics
//   - GET /api/v1/dashboard - Parameters and statistics with inline errors
//
// Every multiplexer endpoint performs its own synchronous exchange with the
// mux; nothing is cached and failed exchanges are never retried here.
//
// Authentication:
//
// If an API key is configured, every endpoint except /health requires the
// X-API-Key header.
//
// @title dabmux-gui API
// @version 1.0
// @description Control and monitoring API for ODR-DabMux.
//
// @license.name GPL-3.0
// @license.url https://www.gnu.org/licenses/gpl-3.0.html
//
// @BasePath /api/v1
//
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package handlers

import (
	"context"
	"log/slog"
	"time"

	"github.com/jroosing/dabmux-gui/internal/config"
	"github.com/jroosing/dabmux-gui/internal/rc"
)

// Mux is the part of the rc client the handlers depend on.
type Mux interface {
	ListParameters(ctx context.Context) ([]rc.Param, error)
	SetParameter(ctx context.Context, module, param, value string) error
	Stats(ctx context.Context) (rc.Stats, error)
}

// HostInfoFunc reports host metrics for the health endpoint.
type HostInfoFunc func(ctx context.Context) (HostSnapshot, error)

// HostSnapshot is a point-in-time view of the host.
type HostSnapshot struct {
	Hostname      string
	UptimeSeconds uint64
	Load1         float64
	Load5         float64
	Load15        float64
}

// Handler contains dependencies for API handlers.
type Handler struct {
	cfg       *config.Config
	mux       Mux
	logger    *slog.Logger
	startTime time.Time
	hostInfo  HostInfoFunc
}

// New creates a new Handler. A nil logger uses slog.Default().
func New(cfg *config.Config, mux Mux, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		cfg:       cfg,
		mux:       mux,
		logger:    logger,
		startTime: time.Now(),
		hostInfo:  GopsutilHostInfo,
	}
}

// SetHostInfoFunc replaces the host metrics source.
func (h *Handler) SetHostInfoFunc(fn HostInfoFunc) {
	h.hostInfo = fn
}
