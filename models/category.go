package models

// Category is one grouping of market indices on the heatmap page.
type Category struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// categories is the static enumeration of heatmap categories. The keys are
// API-facing; the names must match the tab labels rendered on the page,
// since category selection clicks by display name.
var categories = []Category{
	{
		Key:         "broad-market",
		Name:        "Broad Market Indices",
		Description: "Major market indices like NIFTY 50, NIFTY NEXT 50",
	},
	{
		Key:         "sectoral",
		Name:        "Sectoral Indices",
		Description: "Sector-specific indices like NIFTY BANK, NIFTY IT",
	},
	{
		Key:         "thematic",
		Name:        "Thematic Indices",
		Description: "Theme-based indices",
	},
	{
		Key:         "strategy",
		Name:        "Strategy Indices",
		Description: "Strategy-based indices",
	},
}

// Categories returns the category table in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// CategoryName returns the display name for a category key,
// or "" when the key is unknown.
func CategoryName(key string) string {
	for _, c := range categories {
		if c.Key == key {
			return c.Name
		}
	}
	return ""
}

// ValidCategory reports whether key is a known category key.
func ValidCategory(key string) bool {
	return CategoryName(key) != ""
}

// CategoryKeys returns the valid keys in display order.
func CategoryKeys() []string {
	keys := make([]string, len(categories))
	for i, c := range categories {
		keys[i] = c.Key
	}
	return keys
}
