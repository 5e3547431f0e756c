package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/use-agent/tickerheat/models"
)

// Health returns a handler for GET /health.
//
// Health reflects process liveness only: it stays green even when the target
// site is unreachable, so monitoring probes never trigger a scrape.
func Health(startTime time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.HealthResponse{
			Status:    "ok",
			Service:   "heatmap-api",
			Version:   "0.1.0",
			Uptime:    time.Since(startTime).Round(time.Second).String(),
			Timestamp: time.Now().Format(time.RFC3339),
		})
	}
}
