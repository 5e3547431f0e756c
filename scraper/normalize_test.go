package scraper

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ysmood/gson"

	"github.com/use-agent/tickerheat/models"
)

func TestSplitPriceLine(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		wantPrice  string
		wantChange string
	}{
		{"price only", "2456.30", "2456.30", ""},
		{"thousands separator", "1,234.56", "1234.56", ""},
		{"glued change", "1,234.56 -1.20%", "1234.56", "-1.20%"},
		{"positive change", "845.10 +0.45%", "845.10", "+0.45%"},
		{"empty", "", "", ""},
		{"not a number", "N/A", "", ""},
		{"whitespace", "   ", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, change := SplitPriceLine(tt.line)
			assert.Equal(t, tt.wantPrice, price)
			assert.Equal(t, tt.wantChange, change)
		})
	}
}

func TestValidSymbol(t *testing.T) {
	valid := []string{"RELIANCE", "TCS", "M&M", "BAJAJ-AUTO", "L&TFH", "3MINDIA", "J.K.CEMENT"}
	for _, s := range valid {
		assert.True(t, ValidSymbol(s), "%q should be a valid symbol", s)
	}

	invalid := []string{
		"",
		"X",                      // too short
		"1234",                   // no letters
		"12,345.60",              // price, not a symbol
		"SYMBOL/WITH/SLASHES",    // disallowed runes
		"AVERYLONGSYMBOLNAMEXX1", // over 20 chars
		"...",                    // separators only
	}
	for _, s := range invalid {
		assert.False(t, ValidSymbol(s), "%q should be rejected", s)
	}
}

func TestClassifyTrend(t *testing.T) {
	tests := []struct {
		color string
		want  string
	}{
		{"rgb(30, 160, 30)", models.TrendGain},
		{"rgba(200, 40, 40, 1)", models.TrendLoss},
		{"rgb(120, 125, 120)", models.TrendNeutral},
		{"rgb(100, 110, 0)", models.TrendNeutral}, // within the 20-point margin
		{"", models.TrendUnknown},
		{"unknown", models.TrendUnknown},
		{"#22aa22", models.TrendUnknown},
		{"rgb(not, numeric, at-all)", models.TrendUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyTrend(tt.color), "color %q", tt.color)
	}
}

func TestNormalizeStocks(t *testing.T) {
	tiles := []TileRecord{
		{Symbol: "RELIANCE", Price: "2,456.30 +1.45%", Color: "rgb(30, 160, 30)"},
		{Symbol: "TCS", Price: "3,890.00", Change: "-0.80%", Color: "rgb(200, 40, 40)"},
		{Symbol: "RELIANCE", Price: "2,456.30 +1.45%", Color: "rgb(30, 160, 30)"}, // dup
		{Symbol: "1234", Price: "10.00"},                                          // not a symbol
		{Symbol: "INFY", Price: "no-price"},                                       // unparseable price
	}

	stocks := NormalizeStocks(tiles)
	require.Len(t, stocks, 2)

	assert.Equal(t, "RELIANCE", stocks[0].Symbol)
	assert.Equal(t, "2456.30", stocks[0].Price)
	assert.Equal(t, "+1.45%", stocks[0].Change)
	assert.Equal(t, models.TrendGain, stocks[0].Trend)

	assert.Equal(t, "TCS", stocks[1].Symbol)
	assert.Equal(t, "3890.00", stocks[1].Price)
	assert.Equal(t, "-0.80%", stocks[1].Change)
	assert.Equal(t, models.TrendLoss, stocks[1].Trend)
}

func TestNormalizeStocks_UniqueSymbolsAndPercentChanges(t *testing.T) {
	tiles := []TileRecord{
		{Symbol: "SBIN", Price: "812.40 +0.10%", Color: "rgb(40, 150, 40)"},
		{Symbol: "HDFCBANK", Price: "1,690.00 -0.25%", Color: "rgb(180, 60, 60)"},
		{Symbol: "ICICIBANK", Price: "1,205.15 +2.00%", Color: "rgb(40, 150, 40)"},
		{Symbol: "SBIN", Price: "812.40 +0.10%", Color: "rgb(40, 150, 40)"},
	}

	stocks := NormalizeStocks(tiles)

	seen := make(map[string]bool)
	for _, s := range stocks {
		assert.False(t, seen[s.Symbol], "duplicate symbol %s in snapshot", s.Symbol)
		seen[s.Symbol] = true

		require.True(t, strings.HasSuffix(s.Change, "%"), "change %q should end in %%", s.Change)
		_, err := strconv.ParseFloat(strings.TrimSuffix(s.Change, "%"), 64)
		assert.NoError(t, err, "change %q should parse as a percentage", s.Change)
	}
}

func TestTileFromJSON(t *testing.T) {
	j := gson.NewFrom(`{"symbol":"TCS","price":"3,890.00","change":"-0.80%","color":"rgb(200, 40, 40)"}`)

	tile := TileFromJSON(j)
	assert.Equal(t, "TCS", tile.Symbol)
	assert.Equal(t, "3,890.00", tile.Price)
	assert.Equal(t, "-0.80%", tile.Change)
	assert.Equal(t, "rgb(200, 40, 40)", tile.Color)
}
