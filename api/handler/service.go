package handler

import (
	"context"

	"github.com/use-agent/tickerheat/models"
)

// HeatmapService is the scraping surface the handlers depend on. The
// browser-backed scraper implements it; tests substitute stubs.
type HeatmapService interface {
	// Indices returns the index cards for a category.
	Indices(ctx context.Context, categoryKey string) ([]models.Index, error)

	// Heatmap returns the stock tiles for one index within a category.
	Heatmap(ctx context.Context, categoryKey, indexName string) (*models.HeatmapSnapshot, error)
}
