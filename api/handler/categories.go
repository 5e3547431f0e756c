package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/use-agent/tickerheat/models"
)

// Categories returns a handler for GET /categories. The category table is
// static, so no scrape is involved.
func Categories() gin.HandlerFunc {
	return func(c *gin.Context) {
		cats := models.Categories()
		c.JSON(http.StatusOK, models.CategoriesResponse{
			Success:    true,
			Total:      len(cats),
			Categories: cats,
		})
	}
}
