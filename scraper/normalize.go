package scraper

import (
	"strconv"
	"strings"

	"github.com/ysmood/gson"

	"github.com/use-agent/tickerheat/models"
)

// TileRecord is a raw heatmap tile as collected in-page, before
// normalization. Price may still carry thousands separators and may have
// the change glued onto the same line.
type TileRecord struct {
	Symbol string
	Price  string
	Change string
	Color  string
}

// TileFromJSON decodes one collected tile from the browser eval result.
func TileFromJSON(j gson.JSON) TileRecord {
	return TileRecord{
		Symbol: j.Get("symbol").Str(),
		Price:  j.Get("price").Str(),
		Change: j.Get("change").Str(),
		Color:  j.Get("color").Str(),
	}
}

// NormalizeStocks converts raw tile records into stock rows: splits glued
// price/change lines, strips thousands separators, validates symbols,
// classifies the trend and dedupes by symbol. Row order is preserved.
func NormalizeStocks(tiles []TileRecord) []models.Stock {
	stocks := make([]models.Stock, 0, len(tiles))
	seen := make(map[string]struct{}, len(tiles))

	for _, tile := range tiles {
		symbol := strings.TrimSpace(tile.Symbol)
		if !ValidSymbol(symbol) {
			continue
		}
		if _, dup := seen[symbol]; dup {
			continue
		}

		price, change := SplitPriceLine(tile.Price)
		if change == "" {
			change = strings.TrimSpace(tile.Change)
		}
		if price == "" {
			continue
		}

		seen[symbol] = struct{}{}
		stocks = append(stocks, models.Stock{
			Symbol: symbol,
			Price:  price,
			Change: change,
			Color:  tile.Color,
			Trend:  ClassifyTrend(tile.Color),
		})
	}
	return stocks
}

// SplitPriceLine splits a rendered price line like "1,234.56 -1.20%" into
// the bare price and the change token. Thousands separators are removed.
// The change is empty when the line holds only a price.
func SplitPriceLine(line string) (price, change string) {
	fields := strings.Fields(strings.ReplaceAll(line, ",", ""))
	if len(fields) == 0 {
		return "", ""
	}
	price = fields[0]
	if _, err := strconv.ParseFloat(price, 64); err != nil {
		return "", ""
	}
	if len(fields) > 1 {
		change = fields[1]
	}
	return price, change
}

// ValidSymbol reports whether s looks like a ticker symbol rather than
// navigation chrome: 2-20 chars, alphanumeric once separators are removed,
// contains at least one letter and is not purely numeric.
func ValidSymbol(s string) bool {
	if len(s) < 2 || len(s) > 20 {
		return false
	}

	stripped := strings.NewReplacer(" ", "", "&", "", "-", "", ".", "").Replace(s)
	if stripped == "" {
		return false
	}

	hasLetter := false
	for _, r := range stripped {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			hasLetter = true
		case r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return hasLetter
}

// ClassifyTrend derives gain/loss/neutral from a tile's CSS background
// color. The heatmap shades winners green and losers red; a clear margin
// between the channels avoids misreading the near-grey neutral shades.
func ClassifyTrend(color string) string {
	r, g, ok := parseRGB(color)
	if !ok {
		return models.TrendUnknown
	}
	switch {
	case g > r+20:
		return models.TrendGain
	case r > g+20:
		return models.TrendLoss
	default:
		return models.TrendNeutral
	}
}

// parseRGB extracts the red and green channels from "rgb(r, g, b)" or
// "rgba(r, g, b, a)" strings.
func parseRGB(color string) (r, g int, ok bool) {
	color = strings.TrimSpace(color)
	if !strings.HasPrefix(color, "rgb") {
		return 0, 0, false
	}

	open := strings.IndexByte(color, '(')
	end := strings.IndexByte(color, ')')
	if open < 0 || end <= open {
		return 0, 0, false
	}

	parts := strings.Split(color[open+1:end], ",")
	if len(parts) < 3 {
		return 0, 0, false
	}

	r, errR := strconv.Atoi(strings.TrimSpace(parts[0]))
	g, errG := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errR != nil || errG != nil {
		return 0, 0, false
	}
	return r, g, true
}
