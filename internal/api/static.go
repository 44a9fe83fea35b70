package api

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
)

// MountStatic serves the web UI from dir. Unknown non-API paths fall back to
// index.html so client-side routes survive a reload.
func MountStatic(r *gin.Engine, dir string, logger *slog.Logger) {
	r.Use(static.Serve("/", static.LocalFile(dir, true)))

	index := filepath.Join(dir, "index.html")
	if _, err := os.Stat(index); err != nil {
		logger.Warn("static dir has no index.html", "dir", dir, "error", err)
		return
	}

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") || strings.HasPrefix(c.Request.URL.Path, "/swagger") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.File(index)
	})
}
