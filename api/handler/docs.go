package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Docs returns a handler for GET /: a self-describing documentation payload.
func Docs() gin.HandlerFunc {
	doc := gin.H{
		"name":        "NSE Heatmap API",
		"version":     "1.0",
		"description": "Real-time NSE market heatmap data",
		"endpoints": gin.H{
			"GET /":                              "API documentation",
			"GET /health":                        "Health check",
			"GET /categories":                    "List all categories",
			"GET /indices?category=broad-market": "List indices for a category",
			"GET /heatmap?category=broad-market&index=NIFTY 50": "Get heatmap data",
		},
		"parameters": gin.H{
			"category": "Category key (broad-market, sectoral, thematic, strategy)",
			"index":    "Index name (e.g., NIFTY 50, NIFTY BANK)",
		},
		"examples": []string{
			"/categories",
			"/indices?category=broad-market",
			"/indices?category=sectoral",
			"/heatmap?category=broad-market&index=NIFTY 50",
			"/heatmap?category=sectoral&index=NIFTY BANK",
		},
	}

	return func(c *gin.Context) {
		c.JSON(http.StatusOK, doc)
	}
}
