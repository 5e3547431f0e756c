package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/use-agent/tickerheat/cache"
	"github.com/use-agent/tickerheat/models"
)

// Indices returns a handler for GET /indices.
//
// Validates the category key, serves a cached index list when one is fresh,
// otherwise triggers a scrape and caches the result.
func Indices(svc HeatmapService, cc *cache.Cache[*models.IndicesResponse]) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.DefaultQuery("category", "broad-market")
		if !models.ValidCategory(category) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Success: false,
				Error:   invalidCategoryMessage(),
			})
			return
		}

		cacheKey := cache.Key("indices", category)
		if cached, hit := cc.Get(cacheKey); hit {
			c.JSON(http.StatusOK, cached)
			return
		}

		indices, err := svc.Indices(c.Request.Context(), category)
		if err != nil {
			respondError(c, err)
			return
		}

		resp := &models.IndicesResponse{
			Success:      true,
			Category:     category,
			CategoryName: models.CategoryName(category),
			Total:        len(indices),
			Indices:      indices,
			Timestamp:    time.Now().Format(time.RFC3339),
		}
		cc.Set(cacheKey, resp)

		c.JSON(http.StatusOK, resp)
	}
}

// invalidCategoryMessage lists the valid keys, matching the envelope's
// plain-string error format.
func invalidCategoryMessage() string {
	return fmt.Sprintf("Invalid category. Use: %s", strings.Join(models.CategoryKeys(), ", "))
}
