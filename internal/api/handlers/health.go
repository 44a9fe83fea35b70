package handlers

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/dabmux-gui/internal/api/models"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
)

// GopsutilHostInfo reads host uptime and load averages.
func GopsutilHostInfo(ctx context.Context) (HostSnapshot, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return HostSnapshot{}, err
	}
	avg, err := load.AvgWithContext(ctx)
	if err != nil {
		return HostSnapshot{}, err
	}
	return HostSnapshot{
		Hostname:      info.Hostname,
		UptimeSeconds: info.Uptime,
		Load1:         avg.Load1,
		Load5:         avg.Load5,
		Load15:        avg.Load15,
	}, nil
}

// Health godoc
// @Summary Health check
// @Description Returns process uptime and, when available, host load
// @Tags system
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func (h *Handler) Health(c *gin.Context) {
	uptime := time.Since(h.startTime)
	resp := models.HealthResponse{
		Status:        "ok",
		Uptime:        uptime.Round(time.Second).String(),
		UptimeSeconds: int64(uptime.Seconds()),
		StartTime:     h.startTime,
		GoRoutines:    runtime.NumGoroutine(),
	}

	if h.hostInfo != nil {
		snap, err := h.hostInfo(c.Request.Context())
		if err != nil {
			h.logger.Debug("host info unavailable", "error", err)
		} else {
			resp.Host = &models.HostInfo{
				Hostname:      snap.Hostname,
				UptimeSeconds: snap.UptimeSeconds,
				Load1:         snap.Load1,
				Load5:         snap.Load5,
				Load15:        snap.Load15,
			}
		}
	}

	c.JSON(http.StatusOK, resp)
}

// GetConfig godoc
// @Summary Get current configuration
// @Description Returns the effective configuration (API key redacted)
// @Tags system
// @Produce json
// @Success 200 {object} models.ConfigResponse
// @Failure 500 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /config [get]
func (h *Handler) GetConfig(c *gin.Context) {
	if h.cfg == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "config unavailable"})
		return
	}

	c.JSON(http.StatusOK, models.ConfigResponse{
		Instance:       h.cfg.Instance.Name,
		RCEndpoint:     h.cfg.Mux.RCEndpoint,
		StatsEndpoint:  h.cfg.Mux.StatsEndpoint,
		SetReplyFormat: h.cfg.Mux.SetReplyFormat.String(),
		APIHost:        h.cfg.API.Host,
		APIPort:        h.cfg.API.Port,
		APIKeySet:      h.cfg.API.APIKey != "",
		LogLevel:       h.cfg.Logging.Level,
	})
}
