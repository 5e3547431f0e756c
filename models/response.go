package models

// ErrorResponse is the uniform failure envelope for every endpoint.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// HealthResponse is the response for GET /health. It reports process health
// only and never depends on the scraper being able to reach the target site.
type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Version   string `json:"version"`
	Uptime    string `json:"uptime"`
	Timestamp string `json:"timestamp"`
}

// CategoriesResponse is the response for GET /categories.
type CategoriesResponse struct {
	Success    bool       `json:"success"`
	Total      int        `json:"total"`
	Categories []Category `json:"categories"`
}

// IndicesResponse is the response for GET /indices.
type IndicesResponse struct {
	Success      bool    `json:"success"`
	Category     string  `json:"category"`
	CategoryName string  `json:"category_name"`
	Total        int     `json:"total"`
	Indices      []Index `json:"indices"`

	// Timestamp is when the index list was scraped, RFC 3339. Cached
	// responses keep the timestamp of the underlying scrape.
	Timestamp string `json:"timestamp"`
}

// HeatmapResponse is the response for GET /heatmap.
type HeatmapResponse struct {
	Success bool             `json:"success"`
	Data    *HeatmapSnapshot `json:"data"`
}
