package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/use-agent/tickerheat/cache"
	"github.com/use-agent/tickerheat/models"
)

// Heatmap returns a handler for GET /heatmap.
//
// Requires the index parameter, validates the category key, and serves a
// cached snapshot when one is fresh.
func Heatmap(svc HeatmapService, cc *cache.Cache[*models.HeatmapSnapshot]) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.DefaultQuery("category", "broad-market")
		index := c.Query("index")

		if index == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Success: false,
				Error:   "Missing required parameter: index",
			})
			return
		}
		if !models.ValidCategory(category) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Success: false,
				Error:   invalidCategoryMessage(),
			})
			return
		}

		cacheKey := cache.Key("heatmap", category, index)
		if cached, hit := cc.Get(cacheKey); hit {
			c.JSON(http.StatusOK, models.HeatmapResponse{Success: true, Data: cached})
			return
		}

		snapshot, err := svc.Heatmap(c.Request.Context(), category, index)
		if err != nil {
			respondError(c, err)
			return
		}
		cc.Set(cacheKey, snapshot)

		c.JSON(http.StatusOK, models.HeatmapResponse{Success: true, Data: snapshot})
	}
}
