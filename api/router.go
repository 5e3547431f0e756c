package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/use-agent/tickerheat/api/handler"
	"github.com/use-agent/tickerheat/api/middleware"
	"github.com/use-agent/tickerheat/cache"
	"github.com/use-agent/tickerheat/config"
	"github.com/use-agent/tickerheat/models"
)

// NewRouter creates a configured Gin engine with all routes and middleware.
//
// Middleware chain:
//
//	Global:   Recovery → Logger → CORS (configured local origins, GET only)
//	Scraping: RateLimit
//
// Docs and health stay outside the rate limiter so monitoring probes and
// documentation reads never compete with scrape traffic.
func NewRouter(
	svc handler.HeatmapService,
	cfg *config.Config,
	indicesCache *cache.Cache[*models.IndicesResponse],
	heatmapCache *cache.Cache[*models.HeatmapSnapshot],
	startTime time.Time,
) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
		AllowHeaders: []string{"Content-Type"},
		MaxAge:       12 * time.Hour,
	}))

	r.GET("/", handler.Docs())
	r.GET("/health", handler.Health(startTime))

	// Scrape-backed endpoints share the rate limiter.
	limited := r.Group("")
	limited.Use(middleware.RateLimit(cfg.RateLimit))
	limited.GET("/categories", handler.Categories())
	limited.GET("/indices", handler.Indices(svc, indicesCache))
	limited.GET("/heatmap", handler.Heatmap(svc, heatmapCache))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Error:   "Endpoint not found. Visit / for documentation.",
		})
	})

	return r
}
