package models

// Trend classifications derived from a tile's background color.
const (
	TrendGain    = "gain"
	TrendLoss    = "loss"
	TrendNeutral = "neutral"
	TrendUnknown = "unknown"
)

// Index is one index card scraped from a category view. Values are kept as
// rendered on the page (the site formats them with thousands separators and
// a percent sign); they are transient and recomputed per request.
type Index struct {
	// Name is the index display name, e.g. "NIFTY 50".
	Name string `json:"name"`

	// Value is the latest index level as shown on the card.
	Value string `json:"value"`

	// Change is the percent change as shown on the card, e.g. "+0.45%".
	Change string `json:"change"`
}

// Stock is one tile in a heatmap snapshot.
type Stock struct {
	// Symbol is the ticker symbol, unique within a snapshot.
	Symbol string `json:"symbol"`

	// Price is the last traded price, without thousands separators.
	Price string `json:"price"`

	// Change is the percent change for the tile.
	Change string `json:"change"`

	// Color is the tile's CSS background color, e.g. "rgb(34, 154, 22)".
	Color string `json:"color"`

	// Trend is "gain", "loss", "neutral" or "unknown", classified from Color.
	Trend string `json:"trend"`
}

// HeatmapSnapshot is the full scrape result for one index.
type HeatmapSnapshot struct {
	IndexName string `json:"index_name"`

	// Category is the display name of the category the index belongs to.
	Category string `json:"category"`

	TotalStocks int `json:"total_stocks"`

	// ScrapeTimestamp is when the snapshot was taken, RFC 3339.
	ScrapeTimestamp string `json:"scrape_timestamp"`

	Stocks []Stock `json:"stocks"`
}
