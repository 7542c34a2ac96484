package meta

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/user-validation/go-api-server/internal/config"
)

// Handler handles meta endpoints (health check)
type Handler struct {
	cfg       *config.Config
	startedAt time.Time
}

// NewHandler creates a new meta handler
func NewHandler(cfg *config.Config) *Handler {
	return &Handler{
		cfg:       cfg,
		startedAt: time.Now(),
	}
}

// Health reports liveness. The service has no downstream dependencies to probe.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"service": gin.H{
			"name":        h.cfg.App.Name,
			"environment": h.cfg.App.Env,
			"port":        h.cfg.App.Port,
		},
		"uptime": time.Since(h.startedAt).Truncate(time.Second).String(),
	})
}
