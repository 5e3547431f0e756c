package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/use-agent/tickerheat/models"
)

// respondError maps an error to the right HTTP status and writes the uniform
// failure envelope. Internal error details (wrapped causes) never leak; only
// the boundary message does.
func respondError(c *gin.Context, err error) {
	var scrapeErr *models.ScrapeError
	if !errors.As(err, &scrapeErr) {
		scrapeErr = models.NewScrapeError(models.ErrCodeInternal, "internal server error", err)
	}

	c.JSON(mapErrorToStatus(scrapeErr), models.ErrorResponse{
		Success: false,
		Error:   scrapeErr.Message,
	})
}

// mapErrorToStatus translates error codes to HTTP status codes.
func mapErrorToStatus(e *models.ScrapeError) int {
	switch e.Code {
	case models.ErrCodeInvalidInput:
		return http.StatusBadRequest // 400
	case models.ErrCodeIndexNotFound:
		return http.StatusNotFound // 404
	case models.ErrCodeRateLimited:
		return http.StatusTooManyRequests // 429
	case models.ErrCodeNavigation, models.ErrCodeCategorySelect, models.ErrCodeEmptyResult:
		return http.StatusBadGateway // 502
	case models.ErrCodeTimeout:
		return http.StatusGatewayTimeout // 504
	default:
		return http.StatusInternalServerError // 500
	}
}
